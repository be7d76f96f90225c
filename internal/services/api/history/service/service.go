// Package service provides the history service implementation
package service

import (
	"context"

	"botscan/internal/modkit/repokit"
	str "botscan/internal/platform/strings"
	"botscan/internal/services/api/history/domain"
	"botscan/internal/services/api/history/repo"
)

// previewChars is the content preview length in history rows
const previewChars = 150

// Config for the history service
type Config struct {
	DefaultLimit int
	MaxLimit     int
}

// Service implements domain.ReaderPort
type Service struct {
	db      repokit.TxRunner
	storage repokit.Binder[repo.Storage]
	cfg     Config
}

// New constructs a new history service
func New(db repokit.TxRunner, storage repokit.Binder[repo.Storage], cfg Config) *Service {
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = 20
	}
	if cfg.MaxLimit <= 0 {
		cfg.MaxLimit = 100
	}
	return &Service{db: db, storage: storage, cfg: cfg}
}

// List implements domain.ReaderPort
func (s *Service) List(ctx context.Context, in domain.ListInput) ([]domain.Item, int, error) {
	limit := in.Limit
	if limit <= 0 {
		limit = s.cfg.DefaultLimit
	}
	if limit > s.cfg.MaxLimit {
		limit = s.cfg.MaxLimit
	}
	offset := in.Offset
	if offset < 0 {
		offset = 0
	}

	st := s.storage.Bind(repokit.PG(ctx, s.db))

	items, err := st.List(ctx, in.Author, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	for i := range items {
		items[i].ContentPreview = str.Truncate(items[i].ContentPreview, previewChars)
	}

	total, err := st.Count(ctx, in.Author)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Authors implements domain.ReaderPort
func (s *Service) Authors(ctx context.Context) ([]string, error) {
	st := s.storage.Bind(repokit.PG(ctx, s.db))
	return st.Authors(ctx)
}
