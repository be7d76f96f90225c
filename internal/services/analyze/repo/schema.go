package repo

import (
	"context"

	"botscan/internal/modkit/repokit"
	perr "botscan/internal/platform/errors"
)

// EnsureSchema creates the analyses table and its indexes if missing.
// Runs at boot so a fresh database is usable without external migrations
func EnsureSchema(ctx context.Context, q repokit.Queryer) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS analyses (
			id              UUID PRIMARY KEY,
			content_hash    TEXT NOT NULL UNIQUE,
			content         TEXT NOT NULL,
			platform        TEXT NOT NULL,
			post_id         TEXT,
			author          TEXT,
			score           INT NOT NULL,
			confidence      DOUBLE PRECISION NOT NULL,
			label           TEXT NOT NULL,
			llm_score       INT,
			heuristic_score INT NOT NULL,
			signals         JSONB NOT NULL DEFAULT '[]'::jsonb,
			created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS analyses_created_at_idx ON analyses (created_at DESC);
		CREATE INDEX IF NOT EXISTS analyses_author_idx ON analyses (author) WHERE author IS NOT NULL;
	`
	if _, err := q.Exec(ctx, ddl); err != nil {
		return perr.FromPostgres(err, "ensure analyses schema failed")
	}
	return nil
}
