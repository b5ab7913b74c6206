package domain

import "context"

// Tag maps a normalized (lowercase) name to the set of content IDs carrying
// it. The (name, content) pair is unique: a piece of content cannot carry
// the same tag twice.
// swagger:model Tag
type Tag struct {
	Base
	Name       string `json:"name"`
	ContentIDs []ID   `json:"contentIds"`
}

// TagQuery selects tags by partial name match and/or content membership.
// Zero fields match everything.
type TagQuery struct {
	Name      string
	ContentID ID
}

// TagService owns the tag index for one kind of content (post tags or board
// tags). It validates referenced content against the corresponding content
// service by ID.
//
// Attach and Detach mutate the index side only. Callers mirror the change on
// the content's own tag list afterwards, in that order, so the index stays
// the source of truth if the second write never happens.
type TagService interface {
	// Create stores a new tag with an empty content set. The name is
	// normalized to lowercase; empty, leading-space, reserved, and
	// (case-insensitively) duplicate names fail with ErrBadValues.
	Create(ctx context.Context, name string) (*Tag, error)
	// GetByName returns the tag with the normalized name, or ErrNotFound.
	GetByName(ctx context.Context, name string) (*Tag, error)
	// GetOrCreateByName returns the existing tag or lazily creates it. This
	// is the idempotent entry point used by the tagging routes.
	GetOrCreateByName(ctx context.Context, name string) (*Tag, error)
	// Attach records content under the tag. The tag and the content must
	// exist; a pair already recorded fails with ErrBadValues "already
	// tagged".
	Attach(ctx context.Context, tag, content ID) error
	// Detach removes content from the tag. A pair not recorded fails with
	// ErrBadValues "not tagged", symmetric with Attach's duplicate check.
	Detach(ctx context.Context, tag, content ID) error
	// DeleteTagsForContent removes every index entry for the given content
	// IDs. Content deletion flows call this before deleting the content.
	DeleteTagsForContent(ctx context.Context, contents []ID) error
	// Query returns the tags matching q, most recently updated first.
	Query(ctx context.Context, q TagQuery) ([]*Tag, error)
}
