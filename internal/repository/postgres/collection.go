package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/pc0808/easel/internal/domain"
)

// Collection names. One logical collection per entity kind, all stored in
// the shared documents table.
const (
	CollPosts     = "posts"
	CollBoards    = "boards"
	CollPostTags  = "post_tags"
	CollBoardTags = "board_tags"
	CollUsers     = "users"
	CollProfiles  = "profiles"
	CollFollowing = "following"
)

// uniqueViolation is the Postgres error code for a unique index violation.
const uniqueViolation = "23505"

// Collection implements domain.Collection over the documents table: each
// document is a JSONB value under a collection name, with identity and
// timestamps mirrored into columns for filtering and ordering.
type Collection[T any] struct {
	db   *sql.DB
	name string
}

// NewCollection returns a Collection persisting documents of type T under
// the given collection name.
func NewCollection[T any](db *sql.DB, name string) *Collection[T] {
	return &Collection[T]{db: db, name: name}
}

// metaSetter is satisfied by documents embedding domain.Base.
type metaSetter interface {
	SetMeta(id domain.ID, created, updated time.Time)
}

// now returns the current time truncated to the precision of the timestamptz
// columns, so the timestamp stored inside the document compares equal to the
// column in conditional updates.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func (c *Collection[T]) CreateOne(ctx context.Context, doc *T) (domain.ID, error) {
	id := domain.NewID()
	ts := now()
	if m, ok := any(doc).(metaSetter); ok {
		m.SetMeta(id, ts, ts)
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return domain.ID{}, fmt.Errorf("marshal document: %w", err)
	}
	_, err = c.db.ExecContext(ctx,
		`INSERT INTO documents (id, collection, date_created, date_updated, data)
		 VALUES ($1, $2, $3, $4, $5)`,
		id.String(), c.name, ts, ts, data)
	if err != nil {
		var perr *pq.Error
		if errors.As(err, &perr) && perr.Code == uniqueViolation {
			return domain.ID{}, fmt.Errorf("%w: duplicate document", domain.ErrBadValues)
		}
		return domain.ID{}, fmt.Errorf("insert document: %w", err)
	}
	return id, nil
}

func (c *Collection[T]) ReadOne(ctx context.Context, filter domain.Filter) (*T, error) {
	where, args, err := c.where(filter, nil)
	if err != nil {
		return nil, err
	}
	var data []byte
	err = c.db.QueryRowContext(ctx,
		`SELECT data FROM documents WHERE `+where+` LIMIT 1`, args...).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	doc := new(T)
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("unmarshal document: %w", err)
	}
	return doc, nil
}

func (c *Collection[T]) ReadMany(ctx context.Context, filter domain.Filter, opts domain.ReadOptions) ([]*T, error) {
	where, args, err := c.where(filter, opts.Like)
	if err != nil {
		return nil, err
	}
	rows, err := c.db.QueryContext(ctx,
		`SELECT data FROM documents WHERE `+where+` ORDER BY date_updated DESC`, args...)
	if err != nil {
		return nil, fmt.Errorf("read documents: %w", err)
	}
	defer rows.Close()

	docs := make([]*T, 0)
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		doc := new(T)
		if err := json.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("unmarshal document: %w", err)
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func (c *Collection[T]) UpdateOne(ctx context.Context, filter domain.Filter, patch domain.Patch) error {
	return c.update(ctx, filter, nil, patch)
}

func (c *Collection[T]) UpdateOneIf(ctx context.Context, filter domain.Filter, unchangedSince time.Time, patch domain.Patch) error {
	return c.update(ctx, filter, &unchangedSince, patch)
}

func (c *Collection[T]) update(ctx context.Context, filter domain.Filter, unchangedSince *time.Time, patch domain.Patch) error {
	ts := now()
	merged := make(domain.Patch, len(patch)+1)
	for k, v := range patch {
		merged[k] = v
	}
	merged["dateUpdated"] = ts
	data, err := json.Marshal(merged)
	if err != nil {
		return fmt.Errorf("marshal patch: %w", err)
	}

	where, args, err := c.where(filter, nil)
	if err != nil {
		return err
	}
	n := len(args)
	query := fmt.Sprintf(
		`UPDATE documents SET data = data || $%d::jsonb, date_updated = $%d WHERE `+where,
		n+1, n+2)
	args = append(args, data, ts)
	if unchangedSince != nil {
		query += fmt.Sprintf(" AND date_updated = $%d", n+3)
		args = append(args, unchangedSince.UTC())
	}

	res, err := c.db.ExecContext(ctx, query, args...)
	if err != nil {
		var perr *pq.Error
		if errors.As(err, &perr) && perr.Code == uniqueViolation {
			return fmt.Errorf("%w: duplicate document", domain.ErrBadValues)
		}
		return fmt.Errorf("update document: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		if unchangedSince != nil {
			// Distinguish a lost race from a missing document.
			if _, err := c.ReadOne(ctx, filter); err == nil {
				return domain.ErrConflict
			}
		}
		return domain.ErrNotFound
	}
	return nil
}

func (c *Collection[T]) DeleteOne(ctx context.Context, filter domain.Filter) error {
	where, args, err := c.where(filter, nil)
	if err != nil {
		return err
	}
	res, err := c.db.ExecContext(ctx,
		`DELETE FROM documents WHERE id IN (SELECT id FROM documents WHERE `+where+` LIMIT 1)`,
		args...)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (c *Collection[T]) DeleteMany(ctx context.Context, filter domain.Filter) error {
	where, args, err := c.where(filter, nil)
	if err != nil {
		return err
	}
	if _, err := c.db.ExecContext(ctx, `DELETE FROM documents WHERE `+where, args...); err != nil {
		return fmt.Errorf("delete documents: %w", err)
	}
	return nil
}

// where builds the WHERE conditions shared by every statement: collection
// name, JSONB containment for the filter, and ILIKE conditions for substring
// matches. Field names come from compile-time constants, never from request
// input.
func (c *Collection[T]) where(filter domain.Filter, like map[string]string) (string, []any, error) {
	conds := []string{"collection = $1"}
	args := []any{c.name}
	if len(filter) > 0 {
		fdata, err := json.Marshal(filter)
		if err != nil {
			return "", nil, fmt.Errorf("marshal filter: %w", err)
		}
		conds = append(conds, fmt.Sprintf("data @> $%d::jsonb", len(args)+1))
		args = append(args, fdata)
	}
	for _, field := range sortedKeys(like) {
		conds = append(conds, fmt.Sprintf("data->>'%s' ILIKE $%d", field, len(args)+1))
		args = append(args, "%"+like[field]+"%")
	}
	return strings.Join(conds, " AND "), args, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	for i := 0; i < len(keys); i++ {
		for j := i + 1; j < len(keys); j++ {
			if keys[j] < keys[i] {
				keys[i], keys[j] = keys[j], keys[i]
			}
		}
	}
	return keys
}
