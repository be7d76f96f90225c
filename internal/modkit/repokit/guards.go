package repokit

import (
	"context"
	"fmt"
)

type guarder interface {
	Guard(context.Context) error
}

// MustGuard runs store.Guard and panics on any error (nice for service startup)
func MustGuard(ctx context.Context, st guarder) {
	if err := st.Guard(ctx); err != nil {
		panic(fmt.Errorf("dependency guard failed: %w", err))
	}
}
