package controllers

import (
	"log/slog"
	"net/http"

	"github.com/pc0808/easel/internal/delivery/http/helpers"
	"github.com/pc0808/easel/internal/domain"
)

type FollowController struct {
	Logger  *slog.Logger
	Service domain.FollowService
}

func NewFollowController(logger *slog.Logger, svc domain.FollowService) *FollowController {
	return &FollowController{Logger: logger, Service: svc}
}

// Follow godoc
// @Summary Follow a user
// @Description The authenticated user starts following the named user. Following yourself or following twice fails.
// @Tags follows
// @Produce json
// @Security BearerAuth
// @Param userID path string true "User ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains a status message"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/me/following/{userID} [put]
func (c *FollowController) Follow(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}
	followee, ok := pathID(w, r, "userID")
	if !ok {
		return
	}
	if err := c.Service.Follow(r.Context(), userID, followee); err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "following"})
}

// Unfollow godoc
// @Summary Unfollow a user
// @Tags follows
// @Produce json
// @Security BearerAuth
// @Param userID path string true "User ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains a status message"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/me/following/{userID} [delete]
func (c *FollowController) Unfollow(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}
	followee, ok := pathID(w, r, "userID")
	if !ok {
		return
	}
	if err := c.Service.Unfollow(r.Context(), userID, followee); err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "unfollowed"})
}

// ListFollowing godoc
// @Summary List users someone follows
// @Tags follows
// @Produce json
// @Param userID path string true "User ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains a list of public users"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/{userID}/following [get]
func (c *FollowController) ListFollowing(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userID")
	if !ok {
		return
	}
	users, err := c.Service.GetFollowing(r.Context(), userID)
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, publicUsers(users))
}

// ListFollowers godoc
// @Summary List someone's followers
// @Tags follows
// @Produce json
// @Param userID path string true "User ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains a list of public users"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/{userID}/followers [get]
func (c *FollowController) ListFollowers(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userID")
	if !ok {
		return
	}
	users, err := c.Service.GetFollowers(r.Context(), userID)
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, publicUsers(users))
}

// FeedPosts godoc
// @Summary Posts from followed users
// @Description Returns posts authored by users the authenticated user follows, newest update first.
// @Tags follows
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains a list of posts"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /feed/posts [get]
func (c *FollowController) FeedPosts(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}
	posts, err := c.Service.FeedPosts(r.Context(), userID)
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, posts)
}

// FeedBoards godoc
// @Summary Boards from followed users
// @Description Returns boards authored by users the authenticated user follows, newest update first.
// @Tags follows
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains a list of boards"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /feed/boards [get]
func (c *FollowController) FeedBoards(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}
	boards, err := c.Service.FeedBoards(r.Context(), userID)
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, boards)
}

func publicUsers(users []*domain.User) []*domain.PublicUser {
	public := make([]*domain.PublicUser, 0, len(users))
	for _, user := range users {
		public = append(public, user.Public())
	}
	return public
}
