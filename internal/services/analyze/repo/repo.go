// Package repo provides the Postgres repository for analyses
package repo

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"errors"

	"botscan/internal/modkit/repokit"
	perr "botscan/internal/platform/errors"
	str "botscan/internal/platform/strings"
	"botscan/internal/services/analyze/domain"
)

type binder struct{}

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the analyses repository
type Storage interface {
	FindByHash(ctx context.Context, hash string) (*domain.Record, error)
	Insert(ctx context.Context, rec domain.Record) (bool, error)
}

type pg struct{ q repokit.Queryer }

const selectCols = `
	id::text, content_hash, content, platform, post_id, author,
	score, confidence, label, llm_score, heuristic_score, signals, created_at`

// FindByHash returns the cached record for a content hash, nil on miss
func (s *pg) FindByHash(ctx context.Context, hash string) (*domain.Record, error) {
	row := s.q.QueryRow(ctx, `
		SELECT `+selectCols+`
		FROM analyses
		WHERE content_hash = $1
	`, hash)

	var r domain.Record
	var signals []byte
	err := row.Scan(
		&r.ID, &r.ContentHash, &r.Content, &r.Platform, &r.PostID, &r.Author,
		&r.Score, &r.Confidence, &r.Label, &r.LLMScore, &r.HeuristicScore,
		&signals, &r.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, stdsql.ErrNoRows) {
			return nil, nil
		}
		return nil, perr.FromPostgres(err, "find analysis by hash failed")
	}
	if err := json.Unmarshal(signals, &r.Signals); err != nil {
		r.Signals = nil
	}
	return &r, nil
}

// Insert writes a record, reporting false when another writer already owns
// the hash. Losing an insert race is not an error
func (s *pg) Insert(ctx context.Context, rec domain.Record) (bool, error) {
	signals, err := json.Marshal(rec.Signals)
	if err != nil {
		return false, perr.Wrapf(err, perr.ErrorCodeUnknown, "marshal signals failed")
	}

	tag, err := s.q.Exec(ctx, `
		INSERT INTO analyses (
			id, content_hash, content, platform, post_id, author,
			score, confidence, label, llm_score, heuristic_score, signals, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		ON CONFLICT (content_hash) DO NOTHING
	`,
		rec.ID, rec.ContentHash, rec.Content, rec.Platform,
		str.SQLNullPtr(rec.PostID), str.SQLNullPtr(rec.Author),
		rec.Score, rec.Confidence, rec.Label, rec.LLMScore, rec.HeuristicScore,
		signals, rec.CreatedAt,
	)
	if err != nil {
		return false, perr.FromPostgres(err, "insert analysis failed")
	}
	return tag.RowsAffected() == 1, nil
}
