package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Timestamps are Unix milliseconds. The DDL is valid for both Postgres and SQLite.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS materials (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		body TEXT NOT NULL,
		source TEXT NOT NULL DEFAULT '',
		tags TEXT NOT NULL DEFAULT '',
		collection_time BIGINT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at BIGINT NOT NULL,
		updated_at BIGINT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_materials_status_collection ON materials(status, collection_time)`,
	`CREATE TABLE IF NOT EXISTS to_publish (
		id TEXT PRIMARY KEY,
		final_title TEXT NOT NULL,
		final_body TEXT NOT NULL,
		platform TEXT NOT NULL,
		review_status TEXT NOT NULL DEFAULT 'pending',
		material_id TEXT NOT NULL DEFAULT '',
		created_at BIGINT NOT NULL,
		updated_at BIGINT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_to_publish_review_platform ON to_publish(review_status, platform, created_at)`,
}

// Migrate creates the tables and indexes if they do not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration step %d: %w", i+1, err)
		}
	}
	return nil
}
