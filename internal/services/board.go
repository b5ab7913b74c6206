package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/pc0808/easel/internal/domain"
)

// boardService is the board specialization of the content registry: the
// payload is the member post IDs, and membership mutation lives here so the
// duplicate check cannot be bypassed through Update.
type boardService struct {
	*contentRegistry[[]domain.ID]
	posts domain.ContentService[string]
}

// NewBoardService returns a BoardService owning the boards collection and
// validating member posts against the post registry.
func NewBoardService(boards domain.Collection[domain.Board], posts domain.ContentService[string], timeout time.Duration) domain.BoardService {
	return &boardService{
		contentRegistry: &contentRegistry[[]domain.ID]{contents: boards, contextTimeout: timeout},
		posts:           posts,
	}
}

// Update narrows the generic content update for boards: the member list
// changes only through AddPost and RemovePost, so a "content" patch is
// rejected like any other protected field.
func (s *boardService) Update(ctx context.Context, id domain.ID, patch domain.Patch) (*domain.Board, error) {
	if _, ok := patch[domain.FieldContent]; ok {
		return nil, &domain.FieldNotAllowedError{Field: domain.FieldContent}
	}
	return s.contentRegistry.Update(ctx, id, patch)
}

func (s *boardService) AddPost(ctx context.Context, board, post domain.ID) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	b, err := s.GetByID(ctx, board)
	if err != nil {
		return err
	}
	if err := s.posts.ContentExists(ctx, post); err != nil {
		return err
	}
	if slices.Contains(b.Content, post) {
		return fmt.Errorf("%w: already in board", domain.ErrBadValues)
	}
	members := append(slices.Clone(b.Content), post)
	// Conditional on the record just read: two concurrent adds cannot both
	// land, the loser gets ErrConflict instead of silently vanishing.
	err = s.contents.UpdateOneIf(ctx, domain.Filter{"id": board}, b.DateUpdated, domain.Patch{"content": members})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("add post to board: %w", err)
	}
	return nil
}

func (s *boardService) RemovePost(ctx context.Context, board, post domain.ID) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	b, err := s.GetByID(ctx, board)
	if err != nil {
		return err
	}
	if err := s.posts.ContentExists(ctx, post); err != nil {
		return err
	}
	members := slices.DeleteFunc(slices.Clone(b.Content), func(m domain.ID) bool { return m == post })
	if len(members) == len(b.Content) {
		return fmt.Errorf("%w: not in board", domain.ErrBadValues)
	}
	err = s.contents.UpdateOneIf(ctx, domain.Filter{"id": board}, b.DateUpdated, domain.Patch{"content": members})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("remove post from board: %w", err)
	}
	return nil
}

func (s *boardService) IsMember(ctx context.Context, board, post domain.ID) (bool, error) {
	b, err := s.GetByID(ctx, board)
	if err != nil {
		return false, err
	}
	return slices.Contains(b.Content, post), nil
}
