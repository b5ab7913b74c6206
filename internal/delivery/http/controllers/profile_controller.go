package controllers

import (
	"log/slog"
	"net/http"

	"github.com/pc0808/easel/internal/delivery/http/helpers"
	"github.com/pc0808/easel/internal/domain"
)

type ProfileController struct {
	Logger  *slog.Logger
	Service domain.ProfileService
}

func NewProfileController(logger *slog.Logger, svc domain.ProfileService) *ProfileController {
	return &ProfileController{Logger: logger, Service: svc}
}

// ListProfiles godoc
// @Summary List profiles
// @Tags profiles
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains a list of profiles"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /profiles [get]
func (c *ProfileController) ListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := c.Service.GetAll(r.Context())
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, profiles)
}

// GetProfile godoc
// @Summary Get a user's profile
// @Tags profiles
// @Produce json
// @Param userID path string true "User ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains the profile"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/{userID}/profile [get]
func (c *ProfileController) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userID")
	if !ok {
		return
	}
	profile, err := c.Service.GetByUser(r.Context(), userID)
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, profile)
}

// UpdateProfileRequest is the request body for PATCH /users/me/profile.
// Omitted fields are unchanged.
type UpdateProfileRequest struct {
	Avatar    *string `json:"avatar"`
	Biography *string `json:"biography"`
}

// Validate implements Validator.
func (u UpdateProfileRequest) Validate() []string {
	var errs []string
	if u.Avatar == nil && u.Biography == nil {
		errs = append(errs, "nothing to update")
	}
	return errs
}

// UpdateMyProfile godoc
// @Summary Update the authenticated user's profile
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body UpdateProfileRequest true "Fields to update"
// @Success 200 {object} helpers.APIResponse "data contains the updated profile"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/me/profile [patch]
func (c *ProfileController) UpdateMyProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}
	var req UpdateProfileRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	patch := domain.Patch{}
	if req.Avatar != nil {
		patch[domain.FieldAvatar] = *req.Avatar
	}
	if req.Biography != nil {
		patch[domain.FieldBiography] = *req.Biography
	}
	profile, err := c.Service.Update(r.Context(), userID, patch)
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, profile)
}
