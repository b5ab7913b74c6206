package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/pc0808/easel/internal/domain"
)

// contentRegistry implements domain.ContentService over one collection. It
// is generic over the payload: posts carry a string, boards carry member
// IDs.
type contentRegistry[T any] struct {
	contents       domain.Collection[domain.Content[T]]
	contextTimeout time.Duration
}

// NewContentRegistry returns a ContentService owning the given collection.
func NewContentRegistry[T any](contents domain.Collection[domain.Content[T]], timeout time.Duration) domain.ContentService[T] {
	return &contentRegistry[T]{contents: contents, contextTimeout: timeout}
}

func (s *contentRegistry[T]) Create(ctx context.Context, author domain.ID, caption string, content T, tagged []string) (*domain.Content[T], error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if author.IsZero() {
		return nil, fmt.Errorf("%w: author is required", domain.ErrBadValues)
	}
	if tagged == nil {
		tagged = []string{}
	}
	doc := &domain.Content[T]{
		Author:  author,
		Caption: caption,
		Content: content,
		Tagged:  tagged,
	}
	if _, err := s.contents.CreateOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("create content: %w", err)
	}
	return doc, nil
}

func (s *contentRegistry[T]) GetByID(ctx context.Context, id domain.ID) (*domain.Content[T], error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	doc, err := s.contents.ReadOne(ctx, domain.Filter{"id": id})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get content: %w", err)
	}
	return doc, nil
}

func (s *contentRegistry[T]) GetByAuthor(ctx context.Context, author domain.ID) ([]*domain.Content[T], error) {
	return s.GetAll(ctx, domain.Filter{"author": author})
}

func (s *contentRegistry[T]) GetAll(ctx context.Context, filter domain.Filter) ([]*domain.Content[T], error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	docs, err := s.contents.ReadMany(ctx, filter, domain.ReadOptions{})
	if err != nil {
		return nil, fmt.Errorf("list contents: %w", err)
	}
	return docs, nil
}

func (s *contentRegistry[T]) Update(ctx context.Context, id domain.ID, patch domain.Patch) (*domain.Content[T], error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	for field := range patch {
		if field != domain.FieldCaption && field != domain.FieldContent {
			return nil, &domain.FieldNotAllowedError{Field: field}
		}
	}
	if err := s.contents.UpdateOne(ctx, domain.Filter{"id": id}, patch); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update content: %w", err)
	}
	return s.GetByID(ctx, id)
}

func (s *contentRegistry[T]) Delete(ctx context.Context, id domain.ID) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.contents.DeleteOne(ctx, domain.Filter{"id": id}); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete content: %w", err)
	}
	return nil
}

func (s *contentRegistry[T]) DeleteAllByAuthor(ctx context.Context, author domain.ID) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.contents.DeleteMany(ctx, domain.Filter{"author": author}); err != nil {
		return fmt.Errorf("delete contents by author: %w", err)
	}
	return nil
}

func (s *contentRegistry[T]) IsAuthor(ctx context.Context, user, id domain.ID) error {
	doc, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if doc.Author != user {
		return &domain.AuthorMismatchError{User: user, Content: id}
	}
	return nil
}

func (s *contentRegistry[T]) ContentExists(ctx context.Context, id domain.ID) error {
	_, err := s.GetByID(ctx, id)
	return err
}

func (s *contentRegistry[T]) GetTags(ctx context.Context, id domain.ID) ([]string, error) {
	doc, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return doc.Tagged, nil
}

func (s *contentRegistry[T]) AddTag(ctx context.Context, name string, id domain.ID) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	doc, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if slices.Contains(doc.Tagged, name) {
		return fmt.Errorf("%w: already tagged %q", domain.ErrBadValues, name)
	}
	tagged := append(slices.Clone(doc.Tagged), name)
	// Tagged is not a sanctioned Update field; tag bookkeeping writes the
	// collection directly, conditionally on the record it just read.
	err = s.contents.UpdateOneIf(ctx, domain.Filter{"id": id}, doc.DateUpdated, domain.Patch{"tagged": tagged})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("add tag: %w", err)
	}
	return nil
}

func (s *contentRegistry[T]) RemoveTag(ctx context.Context, name string, id domain.ID) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	doc, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	tagged := slices.DeleteFunc(slices.Clone(doc.Tagged), func(t string) bool { return t == name })
	if len(tagged) == len(doc.Tagged) {
		// Removing an absent tag is a no-op.
		return nil
	}
	err = s.contents.UpdateOneIf(ctx, domain.Filter{"id": id}, doc.DateUpdated, domain.Patch{"tagged": tagged})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("remove tag: %w", err)
	}
	return nil
}
