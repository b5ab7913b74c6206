package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/pc0808/easel/internal/domain"
)

// reservedTagNames can never be tag names; they collide with route segments
// and catch-all searches.
var reservedTagNames = map[string]struct{}{
	"all":    {},
	"tags":   {},
	"posts":  {},
	"boards": {},
	"users":  {},
}

// tagIndex implements domain.TagService for one kind of content. It holds
// the corresponding content service by reference only to check that tagged
// content exists.
type tagIndex struct {
	tags           domain.Collection[domain.Tag]
	contents       domain.ContentTagger
	contextTimeout time.Duration
}

// NewTagIndex returns a TagService owning the given tag collection and
// validating content IDs against contents.
func NewTagIndex(tags domain.Collection[domain.Tag], contents domain.ContentTagger, timeout time.Duration) domain.TagService {
	return &tagIndex{tags: tags, contents: contents, contextTimeout: timeout}
}

// normalizeTagName validates name and returns its canonical lowercase form.
func normalizeTagName(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: tag name must not be empty", domain.ErrBadValues)
	}
	if strings.HasPrefix(name, " ") {
		return "", fmt.Errorf("%w: tag name must not begin with a space", domain.ErrBadValues)
	}
	normalized := strings.ToLower(name)
	if _, blocked := reservedTagNames[normalized]; blocked {
		return "", fmt.Errorf("%w: tag name %q is reserved", domain.ErrBadValues, normalized)
	}
	return normalized, nil
}

func (s *tagIndex) Create(ctx context.Context, name string) (*domain.Tag, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	normalized, err := normalizeTagName(name)
	if err != nil {
		return nil, err
	}
	if _, err := s.tags.ReadOne(ctx, domain.Filter{"name": normalized}); err == nil {
		return nil, fmt.Errorf("%w: tag %q already exists", domain.ErrBadValues, normalized)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check tag name: %w", err)
	}
	tag := &domain.Tag{Name: normalized, ContentIDs: []domain.ID{}}
	if _, err := s.tags.CreateOne(ctx, tag); err != nil {
		// A racing create hits the unique name index and surfaces here as
		// ErrBadValues, same as losing the read-then-create check.
		if errors.Is(err, domain.ErrBadValues) {
			return nil, fmt.Errorf("%w: tag %q already exists", domain.ErrBadValues, normalized)
		}
		return nil, fmt.Errorf("create tag: %w", err)
	}
	return tag, nil
}

func (s *tagIndex) GetByName(ctx context.Context, name string) (*domain.Tag, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	normalized, err := normalizeTagName(name)
	if err != nil {
		return nil, err
	}
	tag, err := s.tags.ReadOne(ctx, domain.Filter{"name": normalized})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get tag: %w", err)
	}
	return tag, nil
}

func (s *tagIndex) GetOrCreateByName(ctx context.Context, name string) (*domain.Tag, error) {
	tag, err := s.GetByName(ctx, name)
	if err == nil {
		return tag, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	return s.Create(ctx, name)
}

func (s *tagIndex) Attach(ctx context.Context, tagID, content domain.ID) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	tag, err := s.getByID(ctx, tagID)
	if err != nil {
		return err
	}
	if err := s.contents.ContentExists(ctx, content); err != nil {
		return err
	}
	if slices.Contains(tag.ContentIDs, content) {
		return fmt.Errorf("%w: already tagged", domain.ErrBadValues)
	}
	ids := append(slices.Clone(tag.ContentIDs), content)
	err = s.tags.UpdateOneIf(ctx, domain.Filter{"id": tagID}, tag.DateUpdated, domain.Patch{"contentIds": ids})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("attach content to tag: %w", err)
	}
	return nil
}

func (s *tagIndex) Detach(ctx context.Context, tagID, content domain.ID) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	tag, err := s.getByID(ctx, tagID)
	if err != nil {
		return err
	}
	ids := slices.DeleteFunc(slices.Clone(tag.ContentIDs), func(id domain.ID) bool { return id == content })
	if len(ids) == len(tag.ContentIDs) {
		return fmt.Errorf("%w: not tagged", domain.ErrBadValues)
	}
	err = s.tags.UpdateOneIf(ctx, domain.Filter{"id": tagID}, tag.DateUpdated, domain.Patch{"contentIds": ids})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("detach content from tag: %w", err)
	}
	return nil
}

func (s *tagIndex) DeleteTagsForContent(ctx context.Context, contents []domain.ID) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	for _, content := range contents {
		tags, err := s.tags.ReadMany(ctx, domain.Filter{"contentIds": []domain.ID{content}}, domain.ReadOptions{})
		if err != nil {
			return fmt.Errorf("list tags for content: %w", err)
		}
		for _, tag := range tags {
			ids := slices.DeleteFunc(slices.Clone(tag.ContentIDs), func(id domain.ID) bool { return id == content })
			err := s.tags.UpdateOne(ctx, domain.Filter{"id": tag.ID}, domain.Patch{"contentIds": ids})
			if err != nil && !errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("clean tag %q: %w", tag.Name, err)
			}
		}
	}
	return nil
}

func (s *tagIndex) Query(ctx context.Context, q domain.TagQuery) ([]*domain.Tag, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	filter := domain.Filter{}
	if !q.ContentID.IsZero() {
		filter["contentIds"] = []domain.ID{q.ContentID}
	}
	opts := domain.ReadOptions{}
	if q.Name != "" {
		opts.Like = map[string]string{"name": strings.ToLower(q.Name)}
	}
	tags, err := s.tags.ReadMany(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("query tags: %w", err)
	}
	return tags, nil
}

func (s *tagIndex) getByID(ctx context.Context, id domain.ID) (*domain.Tag, error) {
	tag, err := s.tags.ReadOne(ctx, domain.Filter{"id": id})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get tag: %w", err)
	}
	return tag, nil
}
