// Package repo provides the Postgres repository for analysis history
package repo

import (
	"context"
	"fmt"
	"strings"

	"botscan/internal/modkit/repokit"
	perr "botscan/internal/platform/errors"
	"botscan/internal/services/api/history/domain"
)

type binder struct{}

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the history repository
type Storage interface {
	List(ctx context.Context, author *string, limit, offset int) ([]domain.Item, error)
	Count(ctx context.Context, author *string) (int, error)
	Authors(ctx context.Context) ([]string, error)
}

type pg struct{ q repokit.Queryer }

// List returns rows newest first. Content comes back whole; the service
// owns preview truncation
func (s *pg) List(ctx context.Context, author *string, limit, offset int) ([]domain.Item, error) {
	var sb strings.Builder
	var args []any
	arg := func(v any) string { args = append(args, v); return fmt.Sprintf("$%d", len(args)) }

	sb.WriteString(`
		SELECT id::text, content, platform, post_id, author, score, confidence, label, created_at
		FROM analyses
	`)
	if author != nil {
		sb.WriteString("WHERE author = " + arg(*author) + "\n")
	}
	sb.WriteString("ORDER BY created_at DESC, id DESC\nLIMIT " + arg(limit) + " OFFSET " + arg(offset))

	rows, err := s.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, perr.FromPostgres(err, "list analyses failed")
	}
	defer rows.Close()

	out := make([]domain.Item, 0, limit)
	for rows.Next() {
		var it domain.Item
		if err := rows.Scan(
			&it.ID, &it.ContentPreview, &it.Platform, &it.PostID, &it.Author,
			&it.Score, &it.Confidence, &it.Label, &it.CreatedAt,
		); err != nil {
			return nil, perr.FromPostgres(err, "scan analysis row failed")
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, perr.FromPostgres(err, "iterate analyses failed")
	}
	return out, nil
}

// Count returns the total row count under the same filter as List
func (s *pg) Count(ctx context.Context, author *string) (int, error) {
	sql := "SELECT COUNT(*) FROM analyses"
	var args []any
	if author != nil {
		sql += " WHERE author = $1"
		args = append(args, *author)
	}

	var n int
	if err := s.q.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, perr.FromPostgres(err, "count analyses failed")
	}
	return n, nil
}

// Authors returns the distinct non-null authors seen so far
func (s *pg) Authors(ctx context.Context) ([]string, error) {
	rows, err := s.q.Query(ctx, `
		SELECT DISTINCT author FROM analyses
		WHERE author IS NOT NULL
		ORDER BY author
	`)
	if err != nil {
		return nil, perr.FromPostgres(err, "list authors failed")
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var a string
		if err := rows.Scan(&a); err != nil {
			return nil, perr.FromPostgres(err, "scan author failed")
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, perr.FromPostgres(err, "iterate authors failed")
	}
	return out, nil
}
