package domain

import "context"

// ReaderPort reads stored analyses
type ReaderPort interface {
	List(ctx context.Context, in ListInput) (items []Item, total int, err error)
	Authors(ctx context.Context) ([]string, error)
}
