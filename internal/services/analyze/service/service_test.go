package service

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"botscan/internal/adapters/llm"
	"botscan/internal/modkit/repokit"
	perr "botscan/internal/platform/errors"
	"botscan/internal/platform/store"
	"botscan/internal/services/analyze/domain"
	"botscan/internal/services/analyze/repo"
)

// fakeStorage is an in-memory analyses table keyed by content hash
type fakeStorage struct {
	mu      sync.Mutex
	rows    map[string]domain.Record
	finds   int
	inserts int

	// when set, the first insert pretends another writer won the race
	loseFirstInsert bool
	raceWinner      *domain.Record
}

func (f *fakeStorage) FindByHash(ctx context.Context, hash string) (*domain.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.finds++
	if r, ok := f.rows[hash]; ok {
		return &r, nil
	}
	return nil, nil
}

func (f *fakeStorage) Insert(ctx context.Context, rec domain.Record) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inserts++
	if f.loseFirstInsert {
		f.loseFirstInsert = false
		f.rows[rec.ContentHash] = *f.raceWinner
		return false, nil
	}
	if _, ok := f.rows[rec.ContentHash]; ok {
		return false, nil
	}
	f.rows[rec.ContentHash] = rec
	return true, nil
}

// fakeTx satisfies TxRunner; the fake storage never touches it
type fakeTx struct{}

func (fakeTx) Tx(ctx context.Context, fn func(q repokit.Queryer) error) error { return fn(fakeTx{}) }
func (fakeTx) Exec(ctx context.Context, sql string, args ...any) (store.CommandTag, error) {
	var z store.CommandTag
	return z, nil
}
func (fakeTx) Query(ctx context.Context, sql string, args ...any) (store.Rows, error) {
	var z store.Rows
	return z, nil
}
func (fakeTx) QueryRow(ctx context.Context, sql string, args ...any) store.Row {
	var z store.Row
	return z
}

// fakeJudge counts calls and returns a fixed score after an optional delay
type fakeJudge struct {
	calls atomic.Int32
	score llm.Score
	err   error
	delay time.Duration
}

func (f *fakeJudge) Judge(ctx context.Context, text string) (llm.Score, error) {
	f.calls.Add(1)
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return llm.Score{}, ctx.Err()
		}
	}
	return f.score, f.err
}

func (f *fakeJudge) Name() string  { return "fake" }
func (f *fakeJudge) Model() string { return "fake-model" }

func newService(st *fakeStorage, j llm.Judge) *Service {
	binder := repokit.BindFunc[repo.Storage](func(_ repokit.Queryer) repo.Storage { return st })
	return New(fakeTx{}, binder, j, Config{})
}

func input(content string) domain.AnalyzeInput {
	return domain.AnalyzeInput{Content: content, Platform: domain.PlatformTwitter}
}

func TestAnalyze_RejectsBlankContent(t *testing.T) {
	t.Parallel()

	st := &fakeStorage{rows: map[string]domain.Record{}}
	svc := newService(st, nil)

	for _, content := range []string{"", "   ", "\n\t "} {
		_, err := svc.Analyze(context.Background(), input(content))
		if !perr.IsCode(err, perr.ErrorCodeValidation) {
			t.Fatalf("blank content %q should fail validation, got %v", content, err)
		}
	}
	if st.finds != 0 || st.inserts != 0 {
		t.Fatalf("blank content must be rejected before touching storage")
	}
}

func TestAnalyze_RejectsOversizeContent(t *testing.T) {
	t.Parallel()

	st := &fakeStorage{rows: map[string]domain.Record{}}
	svc := newService(st, nil)

	_, err := svc.Analyze(context.Background(), input(strings.Repeat("a", 50001)))
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("oversize content should fail validation, got %v", err)
	}
}

func TestAnalyze_HeuristicsOnlyPersistsAndReturns(t *testing.T) {
	t.Parallel()

	st := &fakeStorage{rows: map[string]domain.Record{}}
	svc := newService(st, nil)

	got, err := svc.Analyze(context.Background(), input("My cat knocked the mug off the table again this morning and I just watched it happen."))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Breakdown.LLMScore != nil {
		t.Fatalf("heuristics-only run must record a null llm score")
	}
	if got.Confidence > 0.5 {
		t.Fatalf("heuristics-only confidence %v exceeds cap", got.Confidence)
	}
	if st.inserts != 1 {
		t.Fatalf("inserts = %d, want 1", st.inserts)
	}
}

func TestAnalyze_CacheHitSkipsComputeAndJudge(t *testing.T) {
	t.Parallel()

	st := &fakeStorage{rows: map[string]domain.Record{}}
	j := &fakeJudge{score: llm.Score{Value: 8, Confidence: 0.9}}
	svc := newService(st, j)

	in := input("Some perfectly ordinary text about gardening and the weather outside today.")
	first, err := svc.Analyze(context.Background(), in)
	if err != nil {
		t.Fatalf("first analyze: %v", err)
	}
	second, err := svc.Analyze(context.Background(), in)
	if err != nil {
		t.Fatalf("second analyze: %v", err)
	}

	if first.Score != second.Score || first.Label != second.Label {
		t.Fatalf("repeat analysis diverged: %+v vs %+v", first, second)
	}
	if got := j.calls.Load(); got != 1 {
		t.Fatalf("judge calls = %d, want 1 (second run must be served from cache)", got)
	}
	if st.inserts != 1 {
		t.Fatalf("inserts = %d, want 1", st.inserts)
	}
}

func TestAnalyze_WhitespaceVariantsShareCacheEntry(t *testing.T) {
	t.Parallel()

	st := &fakeStorage{rows: map[string]domain.Record{}}
	svc := newService(st, nil)

	if _, err := svc.Analyze(context.Background(), input("hello   world again")); err != nil {
		t.Fatalf("first: %v", err)
	}
	if _, err := svc.Analyze(context.Background(), input("  hello world again ")); err != nil {
		t.Fatalf("second: %v", err)
	}
	if st.inserts != 1 {
		t.Fatalf("whitespace-equivalent texts should dedupe to one row, inserts = %d", st.inserts)
	}
}

func TestAnalyze_FusesJudgeScore(t *testing.T) {
	t.Parallel()

	st := &fakeStorage{rows: map[string]domain.Record{}}
	j := &fakeJudge{score: llm.Score{Value: 9, Confidence: 0.8}}
	svc := newService(st, j)

	got, err := svc.Analyze(context.Background(), input("A few plain words that mean nothing much at all to anyone reading."))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Breakdown.LLMScore == nil || *got.Breakdown.LLMScore != 9 {
		t.Fatalf("llm score = %v, want 9", got.Breakdown.LLMScore)
	}
	// confidence follows the dual-engine scale, not the heuristics-only cap
	want := 0.8*0.7 + 0.3
	if diff := got.Confidence - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("confidence = %v, want %v", got.Confidence, want)
	}
}

func TestAnalyze_JudgeFailureDegradesToHeuristics(t *testing.T) {
	t.Parallel()

	st := &fakeStorage{rows: map[string]domain.Record{}}
	j := &fakeJudge{err: perr.Upstreamf("provider down")}
	svc := newService(st, j)

	got, err := svc.Analyze(context.Background(), input("Nothing remarkable here, just a sentence someone typed out by hand."))
	if err != nil {
		t.Fatalf("judge failure must not fail the request: %v", err)
	}
	if got.Breakdown.LLMScore != nil {
		t.Fatalf("failed judgment must persist a null llm score")
	}
	if got.Confidence > 0.5 {
		t.Fatalf("degraded confidence %v exceeds cap", got.Confidence)
	}
}

func TestAnalyze_SingleFlightCollapsesConcurrentCallers(t *testing.T) {
	t.Parallel()

	st := &fakeStorage{rows: map[string]domain.Record{}}
	j := &fakeJudge{score: llm.Score{Value: 6, Confidence: 0.7}, delay: 50 * time.Millisecond}
	svc := newService(st, j)

	const n = 16
	in := input("Identical content arriving from sixteen goroutines at the very same moment.")

	var wg sync.WaitGroup
	results := make([]domain.Analysis, n)
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = svc.Analyze(context.Background(), in)
		}(i)
	}
	wg.Wait()

	for i := range errs {
		if errs[i] != nil {
			t.Fatalf("caller %d failed: %v", i, errs[i])
		}
		if results[i].Score != results[0].Score {
			t.Fatalf("caller %d saw score %d, caller 0 saw %d", i, results[i].Score, results[0].Score)
		}
	}
	if got := j.calls.Load(); got != 1 {
		t.Fatalf("judge calls = %d, want 1", got)
	}
	if st.inserts != 1 {
		t.Fatalf("inserts = %d, want 1", st.inserts)
	}
}

func TestAnalyze_InsertConflictReturnsWinner(t *testing.T) {
	t.Parallel()

	winner := domain.Record{
		ID: "winner", ContentHash: "h", Score: 2, Confidence: 0.9,
		Label: "human", HeuristicScore: 2, Signals: []string{"human_informality"},
	}
	st := &fakeStorage{
		rows:            map[string]domain.Record{},
		loseFirstInsert: true,
		raceWinner:      &winner,
	}
	svc := newService(st, nil)

	got, err := svc.Analyze(context.Background(), input("Text that a concurrent process scored first in another replica."))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Score != 2 || got.Label != "human" {
		t.Fatalf("loser must surface the winner's verdict, got %+v", got)
	}
}

func TestAnalyze_CancelledCallerStillPopulatesCache(t *testing.T) {
	t.Parallel()

	st := &fakeStorage{rows: map[string]domain.Record{}}
	j := &fakeJudge{score: llm.Score{Value: 5, Confidence: 0.5}, delay: 20 * time.Millisecond}
	svc := newService(st, j)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // caller is already gone

	_, err := svc.Analyze(ctx, input("A caller that disconnects before the verdict lands should still warm the cache."))
	if err != nil {
		t.Fatalf("computation must detach from the caller context: %v", err)
	}
	if st.inserts != 1 {
		t.Fatalf("inserts = %d, want 1", st.inserts)
	}
}
