package controllers

import (
	"log/slog"
	"net/http"

	"github.com/pc0808/easel/internal/delivery/http/helpers"
	"github.com/pc0808/easel/internal/domain"
)

// CreatePostRequest is the request body for POST /posts.
type CreatePostRequest struct {
	Caption string   `json:"caption"`
	Content string   `json:"content"`
	Tagged  []string `json:"tagged"`
}

// Validate implements Validator.
func (c CreatePostRequest) Validate() []string {
	var errs []string
	if c.Content == "" {
		errs = append(errs, "content is required")
	}
	return errs
}

// UpdatePostRequest is the request body for PATCH /posts/{postID}. Omitted
// fields are unchanged; caption and content are the only updatable fields.
type UpdatePostRequest struct {
	Caption *string `json:"caption"`
	Content *string `json:"content"`
}

// Validate implements Validator.
func (u UpdatePostRequest) Validate() []string {
	var errs []string
	if u.Caption == nil && u.Content == nil {
		errs = append(errs, "nothing to update")
	}
	return errs
}

type PostController struct {
	Logger *slog.Logger
	Posts  domain.ContentService[string]
	Tags   domain.TagService
}

func NewPostController(logger *slog.Logger, posts domain.ContentService[string], tags domain.TagService) *PostController {
	return &PostController{Logger: logger, Posts: posts, Tags: tags}
}

// ListPosts godoc
// @Summary List posts
// @Description Returns posts, newest update first. With ?author= it returns that author's posts only.
// @Tags posts
// @Produce json
// @Param author query string false "Author ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains a list of posts"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /posts [get]
func (c *PostController) ListPosts(w http.ResponseWriter, r *http.Request) {
	filter := domain.Filter{}
	if author := r.URL.Query().Get("author"); author != "" {
		authorID, err := domain.ParseID(author)
		if err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid author")
			return
		}
		filter["author"] = authorID
	}
	posts, err := c.Posts.GetAll(r.Context(), filter)
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, posts)
}

// GetPost godoc
// @Summary Get a post by ID
// @Tags posts
// @Produce json
// @Param postID path string true "Post ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains the post"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /posts/{postID} [get]
func (c *PostController) GetPost(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(w, r, "postID")
	if !ok {
		return
	}
	post, err := c.Posts.GetByID(r.Context(), postID)
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, post)
}

// CreatePost godoc
// @Summary Create a post
// @Description Creates a post authored by the authenticated user. Tag names in tagged are created on demand and registered in the tag index.
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreatePostRequest true "Post data"
// @Success 201 {object} helpers.APIResponse "data contains the created post"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /posts [post]
func (c *PostController) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}
	var req CreatePostRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	post, err := c.Posts.Create(r.Context(), userID, req.Caption, req.Content, nil)
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	// Initial tags run through the same index-first protocol as the tag
	// routes, one name at a time.
	for _, name := range req.Tagged {
		if err := attachTag(r.Context(), c.Tags, c.Posts, name, post.ID); err != nil {
			respondError(c.Logger, w, r, err)
			return
		}
	}
	post, err = c.Posts.GetByID(r.Context(), post.ID)
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, post)
}

// UpdatePost godoc
// @Summary Update a post
// @Description Updates caption and/or content. Only the author can update.
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param postID path string true "Post ID (UUID)"
// @Param body body UpdatePostRequest true "Fields to update"
// @Success 200 {object} helpers.APIResponse "data contains the updated post"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /posts/{postID} [patch]
func (c *PostController) UpdatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}
	postID, ok := pathID(w, r, "postID")
	if !ok {
		return
	}
	var req UpdatePostRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Posts.IsAuthor(r.Context(), userID, postID); err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	patch := domain.Patch{}
	if req.Caption != nil {
		patch[domain.FieldCaption] = *req.Caption
	}
	if req.Content != nil {
		patch[domain.FieldContent] = *req.Content
	}
	post, err := c.Posts.Update(r.Context(), postID, patch)
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, post)
}

// DeletePost godoc
// @Summary Delete a post
// @Description Deletes the post. Only the author can delete. The tag index is cleaned before the post is removed.
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param postID path string true "Post ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains a status message"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /posts/{postID} [delete]
func (c *PostController) DeletePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}
	postID, ok := pathID(w, r, "postID")
	if !ok {
		return
	}
	if err := c.Posts.IsAuthor(r.Context(), userID, postID); err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	// Index first, then the post itself.
	if err := c.Tags.DeleteTagsForContent(r.Context(), []domain.ID{postID}); err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	if err := c.Posts.Delete(r.Context(), postID); err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "deleted"})
}
