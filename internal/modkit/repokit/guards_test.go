package repokit

import (
	"context"
	"errors"
	"testing"

	kit "botscan/internal/platform/testkit"
)

type fakeGuarder struct{ err error }

func (f fakeGuarder) Guard(context.Context) error { return f.err }

func TestMustGuard(t *testing.T) {
	kit.MustNotPanic(t, func() { MustGuard(context.Background(), fakeGuarder{}) })
	kit.MustPanic(t, func() {
		MustGuard(context.Background(), fakeGuarder{err: errors.New("pg unreachable")})
	})
}
