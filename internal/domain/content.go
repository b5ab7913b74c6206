package domain

import "context"

// Content is a stored piece of user content: a post when T is string, a
// board when T is []ID. Author is set at creation and immutable afterwards.
// Tagged mirrors the tag index: it holds the names of every tag whose
// content set includes this document. The index side is the source of truth;
// callers keep the two in sync by writing the index first.
// swagger:model Content
type Content[T any] struct {
	Base
	Author  ID       `json:"author"`
	Caption string   `json:"caption"`
	Content T        `json:"content"`
	Tagged  []string `json:"tagged"`
}

// Post is a content item whose payload is an opaque string.
type Post = Content[string]

// Board is a content item whose payload is the set of member post IDs.
type Board = Content[[]ID]

// Field names accepted by ContentService.Update. Anything else in a patch
// is rejected with FieldNotAllowedError.
const (
	FieldCaption = "caption"
	FieldContent = "content"
)

// ContentService defines content storage and bookkeeping for one kind of
// content (posts or boards). One instance owns one collection.
type ContentService[T any] interface {
	// Create stores a new content item for author and returns the stored
	// record. A nil tagged list is stored as empty.
	Create(ctx context.Context, author ID, caption string, content T, tagged []string) (*Content[T], error)
	// GetByID returns the content item or ErrNotFound.
	GetByID(ctx context.Context, id ID) (*Content[T], error)
	// GetByAuthor returns the author's items, most recently updated first.
	GetByAuthor(ctx context.Context, author ID) ([]*Content[T], error)
	// GetAll returns the items matching filter, most recently updated first.
	GetAll(ctx context.Context, filter Filter) ([]*Content[T], error)
	// Update merges patch into the item. Only caption and content may
	// change; any other key fails with FieldNotAllowedError. Returns the
	// updated record.
	Update(ctx context.Context, id ID, patch Patch) (*Content[T], error)
	// Delete removes the item. It does not touch the tag index or board
	// memberships; callers clean those up first.
	Delete(ctx context.Context, id ID) error
	// DeleteAllByAuthor removes every item by author, as part of account
	// deletion.
	DeleteAllByAuthor(ctx context.Context, author ID) error
	// IsAuthor returns nil when user authored the item, ErrNotFound when the
	// item is absent, and AuthorMismatchError otherwise. Callers invoke it
	// before any author-scoped mutation.
	IsAuthor(ctx context.Context, user, id ID) error
	// ContentExists returns nil when the item exists, ErrNotFound otherwise.
	ContentExists(ctx context.Context, id ID) error
	// GetTags returns the item's denormalized tag-name list.
	GetTags(ctx context.Context, id ID) ([]string, error)
	// AddTag records name on the item; a name already present fails with
	// ErrBadValues.
	AddTag(ctx context.Context, name string, id ID) error
	// RemoveTag filters name out of the item's list. Removing an absent name
	// is a no-op.
	RemoveTag(ctx context.Context, name string, id ID) error
}

// ContentTagger is the subset of ContentService the tag routes need to keep
// the content-side tag list in sync with the tag index.
type ContentTagger interface {
	IsAuthor(ctx context.Context, user, id ID) error
	ContentExists(ctx context.Context, id ID) error
	GetTags(ctx context.Context, id ID) ([]string, error)
	AddTag(ctx context.Context, name string, id ID) error
	RemoveTag(ctx context.Context, name string, id ID) error
}

// BoardService specializes ContentService for boards with membership
// mutation. Membership changes go only through AddPost and RemovePost, never
// through Update, so the duplicate check cannot be bypassed.
type BoardService interface {
	ContentService[[]ID]
	// AddPost appends post to the board's member set. The board and the post
	// must exist (ErrNotFound) and the post must not already be a member
	// (ErrBadValues "already in board").
	AddPost(ctx context.Context, board, post ID) error
	// RemovePost removes post from the board's member set. The board and the
	// post must exist and the post must currently be a member (ErrBadValues
	// "not in board").
	RemovePost(ctx context.Context, board, post ID) error
	// IsMember reports whether post is in the board's member set.
	IsMember(ctx context.Context, board, post ID) (bool, error)
}
