package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/pc0808/easel/internal/delivery/http/helpers"
	"github.com/pc0808/easel/internal/domain"
)

// RegisterRequest is the request body for POST /auth/register
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (r RegisterRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Username) == "" {
		errs = append(errs, "username is required")
	}
	if r.Password == "" {
		errs = append(errs, "password is required")
	} else if len(r.Password) < 8 {
		errs = append(errs, "password must be at least 8 characters")
	}
	return errs
}

// LoginRequest is the request body for POST /auth/login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (l LoginRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(l.Username) == "" {
		errs = append(errs, "username is required")
	}
	if l.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// LoginResponse is the data payload for a successful login or registration.
type LoginResponse struct {
	Token string             `json:"token"`
	User  *domain.PublicUser `json:"user"`
}

// LoginSuccessResponse is the success response envelope for the auth routes.
type LoginSuccessResponse struct {
	Data  LoginResponse     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type AuthController struct {
	Logger      *slog.Logger
	Users       domain.UserService
	Tokens      domain.TokenIssuer
	TokenExpiry time.Duration
}

func NewAuthController(logger *slog.Logger, users domain.UserService, tokens domain.TokenIssuer, expiry time.Duration) *AuthController {
	return &AuthController{
		Logger:      logger,
		Users:       users,
		Tokens:      tokens,
		TokenExpiry: expiry,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Creates a user and an empty profile, then returns a bearer token for the new account.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Credentials"
// @Success 201 {object} controllers.LoginSuccessResponse "data contains the token and public user"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /auth/register [post]
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	user, err := c.Users.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	token, err := c.Tokens.Issue(user.ID, user.Username, c.TokenExpiry)
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, LoginResponse{Token: token, User: user.Public()})
}

// Login godoc
// @Summary Log in
// @Description Verifies the credentials and returns a bearer token. Unknown usernames and wrong passwords fail identically.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} controllers.LoginSuccessResponse "data contains the token and public user"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	user, err := c.Users.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	token, err := c.Tokens.Issue(user.ID, user.Username, c.TokenExpiry)
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, LoginResponse{Token: token, User: user.Public()})
}
