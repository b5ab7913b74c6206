package controllers

import (
	"log/slog"
	"net/http"

	"github.com/pc0808/easel/internal/delivery/http/helpers"
	"github.com/pc0808/easel/internal/domain"
)

type UserController struct {
	Logger  *slog.Logger
	Service domain.UserService
}

func NewUserController(logger *slog.Logger, svc domain.UserService) *UserController {
	return &UserController{Logger: logger, Service: svc}
}

// ListUsers godoc
// @Summary List accounts
// @Description Returns every account in public form, newest update first. With ?username= it returns the single exact match instead.
// @Tags users
// @Produce json
// @Param username query string false "Exact username to look up"
// @Success 200 {object} helpers.APIResponse "data contains a list of public users"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users [get]
func (c *UserController) ListUsers(w http.ResponseWriter, r *http.Request) {
	if username := r.URL.Query().Get("username"); username != "" {
		user, err := c.Service.GetByUsername(r.Context(), username)
		if err != nil {
			respondError(c.Logger, w, r, err)
			return
		}
		helpers.WriteJSONSuccess(w, http.StatusOK, []*domain.PublicUser{user.Public()})
		return
	}
	users, err := c.Service.GetAll(r.Context())
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	public := make([]*domain.PublicUser, 0, len(users))
	for _, user := range users {
		public = append(public, user.Public())
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, public)
}

// GetUser godoc
// @Summary Get an account by ID
// @Tags users
// @Produce json
// @Param userID path string true "User ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains the public user"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/{userID} [get]
func (c *UserController) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userID")
	if !ok {
		return
	}
	user, err := c.Service.GetByID(r.Context(), userID)
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, user.Public())
}

// GetMe godoc
// @Summary Get the authenticated account
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the public user"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/me [get]
func (c *UserController) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}
	user, err := c.Service.GetByID(r.Context(), userID)
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, user.Public())
}

// UpdateMeRequest is the request body for PATCH /users/me. Omitted fields are
// unchanged; no other account field can be updated.
type UpdateMeRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

// Validate implements Validator.
func (u UpdateMeRequest) Validate() []string {
	var errs []string
	if u.Username == nil && u.Password == nil {
		errs = append(errs, "nothing to update")
	}
	if u.Username != nil && *u.Username == "" {
		errs = append(errs, "username must not be empty")
	}
	return errs
}

// UpdateMe godoc
// @Summary Update the authenticated account
// @Description Changes username and/or password. A password change stores a fresh salt and hash.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body UpdateMeRequest true "Fields to update"
// @Success 200 {object} helpers.APIResponse "data contains the updated public user"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/me [patch]
func (c *UserController) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}
	var req UpdateMeRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	patch := domain.Patch{}
	if req.Username != nil {
		patch["username"] = *req.Username
	}
	if req.Password != nil {
		patch["password"] = *req.Password
	}
	user, err := c.Service.Update(r.Context(), userID, patch)
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, user.Public())
}

// DeleteMe godoc
// @Summary Delete the authenticated account
// @Description Removes the account together with its posts, boards, tag index entries, profile, and follow edges.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains a status message"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/me [delete]
func (c *UserController) DeleteMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}
	if err := c.Service.Delete(r.Context(), userID); err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "deleted"})
}
