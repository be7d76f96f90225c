// Package service implements the detection pipeline: canonicalize, dedupe,
// run both engines, fuse, persist
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"botscan/internal/adapters/llm"
	"botscan/internal/core/fusion"
	"botscan/internal/core/heuristic"
	"botscan/internal/core/normalize"
	"botscan/internal/modkit/repokit"
	perr "botscan/internal/platform/errors"
	"botscan/internal/platform/logger"
	"botscan/internal/services/analyze/domain"
	"botscan/internal/services/analyze/repo"
)

// Config for the analyze service
type Config struct {
	MaxContentChars int
	JudgeTimeout    time.Duration
}

// Service implements domain.AnalyzerPort
type Service struct {
	db      repokit.TxRunner
	storage repokit.Binder[repo.Storage]
	judge   llm.Judge // nil when running heuristics-only
	cfg     Config
	log     logger.Logger

	flight singleflight.Group
	now    func() time.Time
}

// New constructs the analyze service. judge may be nil
func New(db repokit.TxRunner, storage repokit.Binder[repo.Storage], judge llm.Judge, cfg Config) *Service {
	if cfg.MaxContentChars <= 0 {
		cfg.MaxContentChars = 50000
	}
	if cfg.JudgeTimeout <= 0 {
		cfg.JudgeTimeout = 20 * time.Second
	}
	return &Service{
		db:      db,
		storage: storage,
		judge:   judge,
		cfg:     cfg,
		log:     *logger.Named("analyze"),
		now:     time.Now,
	}
}

// Analyze implements domain.AnalyzerPort. Identical content always yields
// the stored verdict: concurrent callers collapse onto one computation via
// singleflight, and racing processes resolve on the unique hash constraint
func (s *Service) Analyze(ctx context.Context, in domain.AnalyzeInput) (domain.Analysis, error) {
	canon := normalize.Canon(in.Content)
	if canon == "" {
		return domain.Analysis{}, perr.Validationf("content must not be empty or blank")
	}
	if len([]rune(in.Content)) > s.cfg.MaxContentChars {
		return domain.Analysis{}, perr.Validationf("content exceeds %d characters", s.cfg.MaxContentChars)
	}

	hash := normalize.ContentHash(in.Content)

	// Detach from the caller so a dropped connection never leaves the
	// cache unpopulated mid-computation
	bg := context.WithoutCancel(ctx)

	v, err, _ := s.flight.Do(hash, func() (any, error) {
		return s.analyzeHash(bg, hash, canon, in)
	})
	if err != nil {
		return domain.Analysis{}, err
	}
	return v.(domain.Analysis), nil
}

func (s *Service) analyzeHash(ctx context.Context, hash, canon string, in domain.AnalyzeInput) (domain.Analysis, error) {
	st := s.storage.Bind(repokit.PG(ctx, s.db))

	if cached, err := st.FindByHash(ctx, hash); err != nil {
		return domain.Analysis{}, err
	} else if cached != nil {
		return toAnalysis(cached), nil
	}

	// heuristics and the remote judge run concurrently; the judge is
	// advisory and its failure degrades to heuristics-only
	type judged struct {
		score *fusion.ModelScore
	}
	judgeCh := make(chan judged, 1)
	go func() {
		judgeCh <- judged{score: s.runJudge(ctx, canon)}
	}()

	h := heuristic.Analyze(canon)
	model := (<-judgeCh).score

	verdict := fusion.Fuse(h.Value, model)

	rec := domain.Record{
		ID:             uuid.NewString(),
		ContentHash:    hash,
		Content:        in.Content,
		Platform:       string(in.Platform),
		PostID:         in.PostID,
		Author:         in.Author,
		Score:          verdict.Score,
		Confidence:     verdict.Confidence,
		Label:          verdict.Label,
		HeuristicScore: h.Value,
		Signals:        h.Fired,
		CreatedAt:      s.now().UTC(),
	}
	if model != nil {
		v := model.Value
		rec.LLMScore = &v
	}

	// insert and the conflict re-read share one transaction so the loser
	// observes the winner's committed row, never a gap
	var out domain.Analysis
	var won bool
	err := repokit.WithTx(ctx, repokit.TX(ctx, s.db), func(q repokit.Queryer) error {
		txSt := s.storage.Bind(q)
		inserted, err := txSt.Insert(ctx, rec)
		if err != nil {
			return err
		}
		if inserted {
			out = toAnalysis(&rec)
			won = true
			return nil
		}
		// another process won the hash; its verdict is canonical
		winner, err := txSt.FindByHash(ctx, hash)
		if err != nil {
			return err
		}
		if winner == nil {
			return perr.DBf("analysis for hash vanished after insert conflict")
		}
		out = toAnalysis(winner)
		return nil
	})
	if err != nil {
		return domain.Analysis{}, err
	}

	if won {
		s.log.Info().
			Str("hash", hash).
			Int("score", verdict.Score).
			Str("label", verdict.Label).
			Bool("llm", model != nil).
			Msg("analysis stored")
	}

	return out, nil
}

// runJudge asks the remote model for its score, mapping every failure to
// absent. No provider configured is silent; a configured provider failing
// is logged at error level
func (s *Service) runJudge(ctx context.Context, text string) *fusion.ModelScore {
	if s.judge == nil {
		return nil
	}

	jctx, cancel := context.WithTimeout(ctx, s.cfg.JudgeTimeout)
	defer cancel()

	sc, err := s.judge.Judge(jctx, text)
	if err != nil {
		s.log.Error().Err(err).Str("provider", s.judge.Name()).Msg("model judgment failed, degrading to heuristics")
		return nil
	}
	return &fusion.ModelScore{Value: sc.Value, Confidence: sc.Confidence}
}

func toAnalysis(r *domain.Record) domain.Analysis {
	return domain.Analysis{
		Score:      r.Score,
		Confidence: r.Confidence,
		Label:      r.Label,
		Breakdown: domain.Breakdown{
			LLMScore:       r.LLMScore,
			HeuristicScore: r.HeuristicScore,
			Signals:        r.Signals,
		},
	}
}
