package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"botscan/internal/modkit/repokit"
	"botscan/internal/platform/store"
	"botscan/internal/services/api/history/domain"
	"botscan/internal/services/api/history/repo"
)

// fakeStorage pages over an in-memory slice, newest first by construction
type fakeStorage struct {
	items []domain.Item

	lastLimit  int
	lastOffset int
	lastAuthor *string
}

func (f *fakeStorage) List(ctx context.Context, author *string, limit, offset int) ([]domain.Item, error) {
	f.lastLimit, f.lastOffset, f.lastAuthor = limit, offset, author
	xs := f.filtered(author)
	if offset >= len(xs) {
		return nil, nil
	}
	end := offset + limit
	if end > len(xs) {
		end = len(xs)
	}
	out := make([]domain.Item, end-offset)
	copy(out, xs[offset:end])
	return out, nil
}

func (f *fakeStorage) Count(ctx context.Context, author *string) (int, error) {
	return len(f.filtered(author)), nil
}

func (f *fakeStorage) Authors(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, it := range f.items {
		if it.Author != nil && !seen[*it.Author] {
			seen[*it.Author] = true
			out = append(out, *it.Author)
		}
	}
	return out, nil
}

func (f *fakeStorage) filtered(author *string) []domain.Item {
	if author == nil {
		return f.items
	}
	var out []domain.Item
	for _, it := range f.items {
		if it.Author != nil && *it.Author == *author {
			out = append(out, it)
		}
	}
	return out
}

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

func newService(st *fakeStorage) *Service {
	binder := repokit.BindFunc[repo.Storage](func(_ repokit.Queryer) repo.Storage { return st })
	return New(fakeTx{}, binder, Config{})
}

func seed(n int) []domain.Item {
	items := make([]domain.Item, n)
	for i := range items {
		items[i] = domain.Item{ID: fmt.Sprintf("id-%d", i), ContentPreview: "row", Score: 5}
	}
	return items
}

func TestList_DefaultAndMaxLimit(t *testing.T) {
	t.Parallel()

	st := &fakeStorage{items: seed(120)}
	svc := newService(st)

	items, total, err := svc.List(context.Background(), domain.ListInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 20 {
		t.Fatalf("default page size = %d, want 20", len(items))
	}
	if total != 120 {
		t.Fatalf("total = %d, want 120", total)
	}

	items, _, err = svc.List(context.Background(), domain.ListInput{Limit: 500})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.lastLimit != 100 {
		t.Fatalf("oversized limit should clamp to 100, storage saw %d", st.lastLimit)
	}
	if len(items) != 100 {
		t.Fatalf("clamped page size = %d, want 100", len(items))
	}
}

func TestList_PagesThroughAll(t *testing.T) {
	t.Parallel()

	st := &fakeStorage{items: seed(25)}
	svc := newService(st)

	first, total, err := svc.List(context.Background(), domain.ListInput{})
	if err != nil {
		t.Fatalf("first page: %v", err)
	}
	if len(first) != 20 || total != 25 {
		t.Fatalf("first page = %d rows total %d, want 20/25", len(first), total)
	}

	second, total, err := svc.List(context.Background(), domain.ListInput{Offset: 20})
	if err != nil {
		t.Fatalf("second page: %v", err)
	}
	if len(second) != 5 || total != 25 {
		t.Fatalf("second page = %d rows total %d, want 5/25", len(second), total)
	}
	if first[0].ID == second[0].ID {
		t.Fatalf("pages overlap")
	}
}

func TestList_TruncatesPreview(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", 400)
	st := &fakeStorage{items: []domain.Item{{ID: "a", ContentPreview: long}}}
	svc := newService(st)

	items, _, err := svc.List(context.Background(), domain.ListInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(items[0].ContentPreview); got > 150 {
		t.Fatalf("preview length = %d, want <= 150", got)
	}
}

func TestList_AuthorFilterAndTotal(t *testing.T) {
	t.Parallel()

	alice, bob := "alice", "bob"
	st := &fakeStorage{items: []domain.Item{
		{ID: "1", Author: &alice},
		{ID: "2", Author: &bob},
		{ID: "3", Author: &alice},
	}}
	svc := newService(st)

	items, total, err := svc.List(context.Background(), domain.ListInput{Author: &alice})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 || total != 2 {
		t.Fatalf("filtered = %d rows total %d, want 2/2", len(items), total)
	}
}

func TestAuthors_Distinct(t *testing.T) {
	t.Parallel()

	alice, bob := "alice", "bob"
	st := &fakeStorage{items: []domain.Item{
		{ID: "1", Author: &alice},
		{ID: "2", Author: &bob},
		{ID: "3", Author: &alice},
		{ID: "4"}, // anonymous rows are excluded
	}}
	svc := newService(st)

	authors, err := svc.Authors(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(authors) != 2 {
		t.Fatalf("authors = %v, want two distinct entries", authors)
	}
}
