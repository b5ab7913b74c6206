package controllers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/pc0808/easel/internal/delivery/http/helpers"
	"github.com/pc0808/easel/internal/domain"
)

// CreateBoardRequest is the request body for POST /boards. Boards start with
// no member posts; membership is managed through the member routes.
type CreateBoardRequest struct {
	Caption string   `json:"caption"`
	Tagged  []string `json:"tagged"`
}

// Validate implements Validator.
func (c CreateBoardRequest) Validate() []string {
	var errs []string
	if c.Caption == "" {
		errs = append(errs, "caption is required")
	}
	return errs
}

// UpdateBoardRequest is the request body for PATCH /boards/{boardID}.
type UpdateBoardRequest struct {
	Caption *string `json:"caption"`
}

// Validate implements Validator.
func (u UpdateBoardRequest) Validate() []string {
	var errs []string
	if u.Caption == nil {
		errs = append(errs, "nothing to update")
	}
	return errs
}

type BoardController struct {
	Logger *slog.Logger
	Boards domain.BoardService
	Tags   domain.TagService
}

func NewBoardController(logger *slog.Logger, boards domain.BoardService, tags domain.TagService) *BoardController {
	return &BoardController{Logger: logger, Boards: boards, Tags: tags}
}

// ListBoards godoc
// @Summary List boards
// @Description Returns boards, newest update first. With ?author= it returns that author's boards only.
// @Tags boards
// @Produce json
// @Param author query string false "Author ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains a list of boards"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /boards [get]
func (c *BoardController) ListBoards(w http.ResponseWriter, r *http.Request) {
	filter := domain.Filter{}
	if author := r.URL.Query().Get("author"); author != "" {
		authorID, err := domain.ParseID(author)
		if err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid author")
			return
		}
		filter["author"] = authorID
	}
	boards, err := c.Boards.GetAll(r.Context(), filter)
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, boards)
}

// GetBoard godoc
// @Summary Get a board by ID
// @Tags boards
// @Produce json
// @Param boardID path string true "Board ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains the board"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /boards/{boardID} [get]
func (c *BoardController) GetBoard(w http.ResponseWriter, r *http.Request) {
	boardID, ok := pathID(w, r, "boardID")
	if !ok {
		return
	}
	board, err := c.Boards.GetByID(r.Context(), boardID)
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, board)
}

// CreateBoard godoc
// @Summary Create a board
// @Description Creates an empty board authored by the authenticated user.
// @Tags boards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateBoardRequest true "Board data"
// @Success 201 {object} helpers.APIResponse "data contains the created board"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /boards [post]
func (c *BoardController) CreateBoard(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}
	var req CreateBoardRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	board, err := c.Boards.Create(r.Context(), userID, req.Caption, []domain.ID{}, nil)
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	for _, name := range req.Tagged {
		if err := attachTag(r.Context(), c.Tags, c.Boards, name, board.ID); err != nil {
			respondError(c.Logger, w, r, err)
			return
		}
	}
	board, err = c.Boards.GetByID(r.Context(), board.ID)
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, board)
}

// UpdateBoard godoc
// @Summary Update a board's caption
// @Description Only the author can update. Membership is managed through the member routes, not through update.
// @Tags boards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param boardID path string true "Board ID (UUID)"
// @Param body body UpdateBoardRequest true "Fields to update"
// @Success 200 {object} helpers.APIResponse "data contains the updated board"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /boards/{boardID} [patch]
func (c *BoardController) UpdateBoard(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}
	boardID, ok := pathID(w, r, "boardID")
	if !ok {
		return
	}
	var req UpdateBoardRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Boards.IsAuthor(r.Context(), userID, boardID); err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	board, err := c.Boards.Update(r.Context(), boardID, domain.Patch{domain.FieldCaption: *req.Caption})
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, board)
}

// DeleteBoard godoc
// @Summary Delete a board
// @Description Deletes the board. Only the author can delete. Member posts are untouched; the tag index is cleaned before the board is removed.
// @Tags boards
// @Produce json
// @Security BearerAuth
// @Param boardID path string true "Board ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains a status message"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /boards/{boardID} [delete]
func (c *BoardController) DeleteBoard(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}
	boardID, ok := pathID(w, r, "boardID")
	if !ok {
		return
	}
	if err := c.Boards.IsAuthor(r.Context(), userID, boardID); err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	if err := c.Tags.DeleteTagsForContent(r.Context(), []domain.ID{boardID}); err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	if err := c.Boards.Delete(r.Context(), boardID); err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// AddBoardPost godoc
// @Summary Add a post to a board
// @Description Only the board's author can add. Adding a post that is already in the board fails.
// @Tags boards
// @Produce json
// @Security BearerAuth
// @Param boardID path string true "Board ID (UUID)"
// @Param postID path string true "Post ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains the updated board"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /boards/{boardID}/posts/{postID} [put]
func (c *BoardController) AddBoardPost(w http.ResponseWriter, r *http.Request) {
	c.mutateMembership(w, r, c.Boards.AddPost)
}

// RemoveBoardPost godoc
// @Summary Remove a post from a board
// @Description Only the board's author can remove. Removing a post that is not in the board fails.
// @Tags boards
// @Produce json
// @Security BearerAuth
// @Param boardID path string true "Board ID (UUID)"
// @Param postID path string true "Post ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains the updated board"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /boards/{boardID}/posts/{postID} [delete]
func (c *BoardController) RemoveBoardPost(w http.ResponseWriter, r *http.Request) {
	c.mutateMembership(w, r, c.Boards.RemovePost)
}

func (c *BoardController) mutateMembership(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, board, post domain.ID) error) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}
	boardID, ok := pathID(w, r, "boardID")
	if !ok {
		return
	}
	postID, ok := pathID(w, r, "postID")
	if !ok {
		return
	}
	if err := c.Boards.IsAuthor(r.Context(), userID, boardID); err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	if err := op(r.Context(), boardID, postID); err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	board, err := c.Boards.GetByID(r.Context(), boardID)
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, board)
}
