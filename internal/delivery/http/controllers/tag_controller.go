package controllers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/pc0808/easel/internal/delivery/http/helpers"
	"github.com/pc0808/easel/internal/domain"
)

// CreateTagRequest is the request body for the tag creation routes.
type CreateTagRequest struct {
	Name string `json:"name"`
}

// Validate implements Validator.
func (c CreateTagRequest) Validate() []string {
	var errs []string
	if c.Name == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

// TagController serves one tag namespace. It is mounted twice, once for post
// tags and once for board tags, each with its own index and content service.
type TagController struct {
	Logger   *slog.Logger
	Tags     domain.TagService
	Contents domain.ContentTagger
	// Segment names the content path parameter, "postID" or "boardID".
	Segment string
}

func NewTagController(logger *slog.Logger, tags domain.TagService, contents domain.ContentTagger, segment string) *TagController {
	return &TagController{Logger: logger, Tags: tags, Contents: contents, Segment: segment}
}

// ListTags godoc
// @Summary Query tags
// @Description Returns tags in this namespace. ?name= filters by case-insensitive substring, ?content= by tagged content ID.
// @Tags tags
// @Produce json
// @Param name query string false "Name substring"
// @Param content query string false "Content ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains a list of tags"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /posts/tags [get]
func (c *TagController) ListTags(w http.ResponseWriter, r *http.Request) {
	query := domain.TagQuery{Name: r.URL.Query().Get("name")}
	if content := r.URL.Query().Get("content"); content != "" {
		contentID, err := domain.ParseID(content)
		if err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid content")
			return
		}
		query.ContentID = contentID
	}
	tags, err := c.Tags.Query(r.Context(), query)
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, tags)
}

// GetTag godoc
// @Summary Get a tag by name
// @Tags tags
// @Produce json
// @Param name path string true "Tag name"
// @Success 200 {object} helpers.APIResponse "data contains the tag"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /posts/tags/{name} [get]
func (c *TagController) GetTag(w http.ResponseWriter, r *http.Request) {
	tag, err := c.Tags.GetByName(r.Context(), r.PathValue("name"))
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, tag)
}

// CreateTag godoc
// @Summary Create a tag
// @Description Creates an empty tag. Names are lowercased; reserved names and duplicates are rejected.
// @Tags tags
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateTagRequest true "Tag name"
// @Success 201 {object} helpers.APIResponse "data contains the created tag"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /posts/tags [post]
func (c *TagController) CreateTag(w http.ResponseWriter, r *http.Request) {
	var req CreateTagRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	tag, err := c.Tags.Create(r.Context(), req.Name)
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, tag)
}

// TagContent godoc
// @Summary Tag a piece of content
// @Description Creates the tag on demand, records the content in the tag index, then mirrors the tag name onto the content. Only the content's author can tag it.
// @Tags tags
// @Produce json
// @Security BearerAuth
// @Param postID path string true "Content ID (UUID)"
// @Param name path string true "Tag name"
// @Success 200 {object} helpers.APIResponse "data contains the tag"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /posts/{postID}/tags/{name} [put]
func (c *TagController) TagContent(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}
	contentID, ok := pathID(w, r, c.Segment)
	if !ok {
		return
	}
	if err := c.Contents.IsAuthor(r.Context(), userID, contentID); err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	if err := attachTag(r.Context(), c.Tags, c.Contents, r.PathValue("name"), contentID); err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	tag, err := c.Tags.GetByName(r.Context(), r.PathValue("name"))
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, tag)
}

// UntagContent godoc
// @Summary Remove a tag from a piece of content
// @Description Removes the content from the tag index, then clears the mirrored name from the content. Only the content's author can untag it.
// @Tags tags
// @Produce json
// @Security BearerAuth
// @Param postID path string true "Content ID (UUID)"
// @Param name path string true "Tag name"
// @Success 200 {object} helpers.APIResponse "data contains a status message"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /posts/{postID}/tags/{name} [delete]
func (c *TagController) UntagContent(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}
	contentID, ok := pathID(w, r, c.Segment)
	if !ok {
		return
	}
	if err := c.Contents.IsAuthor(r.Context(), userID, contentID); err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	if err := detachTag(r.Context(), c.Tags, c.Contents, r.PathValue("name"), contentID); err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "untagged"})
}

// attachTag runs the two-step tagging protocol: the index is written first,
// then the tag name is mirrored onto the content record.
func attachTag(ctx context.Context, tags domain.TagService, contents domain.ContentTagger, name string, content domain.ID) error {
	tag, err := tags.GetOrCreateByName(ctx, name)
	if err != nil {
		return err
	}
	if err := tags.Attach(ctx, tag.ID, content); err != nil {
		return err
	}
	return contents.AddTag(ctx, tag.Name, content)
}

// detachTag is the inverse protocol, index first again.
func detachTag(ctx context.Context, tags domain.TagService, contents domain.ContentTagger, name string, content domain.ID) error {
	tag, err := tags.GetByName(ctx, name)
	if err != nil {
		return err
	}
	if err := tags.Detach(ctx, tag.ID, content); err != nil {
		return err
	}
	return contents.RemoveTag(ctx, tag.Name, content)
}
