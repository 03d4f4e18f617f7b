package postgres

import (
	"context"
	"fmt"
)

// Migrate creates the tables and indexes if they do not exist
func Migrate(ctx context.Context, config *RepositoryConfig) error {
	t := config.Tables
	db := config.Pool

	statements := []string{
		`CREATE TABLE IF NOT EXISTS ` + t.Conversations + ` (
			id UUID PRIMARY KEY,
			title TEXT NOT NULL,
			project_name TEXT,
			project_description TEXT,
			tech_stack TEXT[] NOT NULL DEFAULT '{}',
			features_built TEXT[] NOT NULL DEFAULT '{}',
			project_summary TEXT,
			last_code_generated TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS ` + t.Messages + ` (
			seq BIGSERIAL PRIMARY KEY,
			id UUID NOT NULL UNIQUE,
			conversation_id UUID NOT NULL REFERENCES ` + t.Conversations + `(id) ON DELETE CASCADE,
			role TEXT NOT NULL CHECK (role IN ('user', 'assistant')),
			content TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS ` + t.ProjectFiles + ` (
			id UUID PRIMARY KEY,
			conversation_id UUID NOT NULL REFERENCES ` + t.Conversations + `(id) ON DELETE CASCADE,
			path TEXT NOT NULL,
			content TEXT NOT NULL,
			language TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (conversation_id, path)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_` + t.Prefix + `messages_conversation ON ` + t.Messages + `(conversation_id, seq)`,
		`CREATE INDEX IF NOT EXISTS idx_` + t.Prefix + `conversations_updated ON ` + t.Conversations + `(updated_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	if config.Logger != nil {
		config.Logger.Debug("schema ready", "prefix", t.Prefix)
	}
	return nil
}
