package domain

import (
	"context"
	"time"
)

// Filter selects documents whose fields equal the given values. Values must
// be JSON-marshalable. A slice value matches documents whose array field
// contains every listed element, so Filter{"contentIds": []ID{x}} finds the
// tags carrying x.
type Filter map[string]any

// Patch is a partial document merged into the stored one. The store bumps
// dateUpdated on every patch; callers never set timestamps.
type Patch map[string]any

// ReadOptions tunes ReadMany. Results are always ordered by most recently
// updated first.
type ReadOptions struct {
	// Like adds case-insensitive substring conditions on string fields.
	Like map[string]string
}

// Base carries the store-assigned identity and timestamps present on every
// stored document. Embed it in document types.
type Base struct {
	ID          ID        `json:"id"`
	DateCreated time.Time `json:"dateCreated"`
	DateUpdated time.Time `json:"dateUpdated"`
}

// SetMeta records the store-assigned identity and timestamps. Only the
// document store calls this.
func (b *Base) SetMeta(id ID, created, updated time.Time) {
	b.ID = id
	b.DateCreated = created
	b.DateUpdated = updated
}

// Collection is the document-store contract every registry is built on:
// filter-based create/read/update/delete over one named collection. The
// store owns identity and timestamps.
type Collection[T any] interface {
	// CreateOne assigns identity and timestamps to doc, persists it, and
	// returns the new ID.
	CreateOne(ctx context.Context, doc *T) (ID, error)
	// ReadOne returns the single document matching filter, or ErrNotFound.
	ReadOne(ctx context.Context, filter Filter) (*T, error)
	// ReadMany returns all documents matching filter, newest update first.
	ReadMany(ctx context.Context, filter Filter, opts ReadOptions) ([]*T, error)
	// UpdateOne merges patch into the document matching filter, or returns
	// ErrNotFound.
	UpdateOne(ctx context.Context, filter Filter, patch Patch) error
	// UpdateOneIf merges patch only if the matched document has not been
	// updated since unchangedSince. It returns ErrConflict when the document
	// changed in between; check-then-act sequences use this to stay
	// race-free within one collection.
	UpdateOneIf(ctx context.Context, filter Filter, unchangedSince time.Time, patch Patch) error
	// DeleteOne removes the single document matching filter, or returns
	// ErrNotFound.
	DeleteOne(ctx context.Context, filter Filter) error
	// DeleteMany removes every document matching filter. Matching nothing is
	// not an error.
	DeleteMany(ctx context.Context, filter Filter) error
}
