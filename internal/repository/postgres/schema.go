package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// schema creates the documents table and its indexes. The unique indexes
// back the invariants the services check first: tag names are unique per tag
// collection (case already normalized by the service) and usernames are
// unique. A losing racer gets the unique violation mapped to ErrBadValues.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS documents (
		id uuid PRIMARY KEY,
		collection text NOT NULL,
		date_created timestamptz NOT NULL,
		date_updated timestamptz NOT NULL,
		data jsonb NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS documents_collection_updated_idx
		ON documents (collection, date_updated DESC)`,
	`CREATE INDEX IF NOT EXISTS documents_data_idx
		ON documents USING GIN (data jsonb_path_ops)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS documents_tag_name_idx
		ON documents (collection, (data->>'name'))
		WHERE collection IN ('post_tags', 'board_tags')`,
	`CREATE UNIQUE INDEX IF NOT EXISTS documents_username_idx
		ON documents ((data->>'username'))
		WHERE collection = 'users'`,
}

// EnsureSchema creates the documents table and indexes if they do not exist.
// Called once at startup.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
