package anthropic

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func newTestServer(t *testing.T, check func(r *http.Request), status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			check(r)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestComplete_APIKeyHeader(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, func(r *http.Request) {
		if got := r.Header.Get("x-api-key"); got != "sk-ant-api03-abc" {
			t.Errorf("x-api-key = %q", got)
		}
		if r.Header.Get("Authorization") != "" {
			t.Errorf("API keys must not use Authorization")
		}
		if got := r.Header.Get("anthropic-version"); got != apiVersion {
			t.Errorf("anthropic-version = %q", got)
		}
	}, http.StatusOK, `{"content":[{"text":"{\"score\": 8, \"confidence\": 0.9}"}]}`)
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL, APIKey: "sk-ant-api03-abc"})
	out, err := c.Complete(context.Background(), "sys", "user")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != `{"score": 8, "confidence": 0.9}` {
		t.Fatalf("reply = %q", out)
	}
}

func TestComplete_OAuthTokenHeaders(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, func(r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer sk-ant-oat01-xyz" {
			t.Errorf("Authorization = %q", got)
		}
		if got := r.Header.Get("anthropic-beta"); got != oauthBeta {
			t.Errorf("anthropic-beta = %q", got)
		}
		if r.Header.Get("x-api-key") != "" {
			t.Errorf("OAuth tokens must not use x-api-key")
		}
	}, http.StatusOK, `{"content":[{"text":"ok"}]}`)
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL, APIKey: "sk-ant-oat01-xyz"})
	if _, err := c.Complete(context.Background(), "sys", "user"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestComplete_NonOKStatus(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, nil, http.StatusUnauthorized, `{"error":"bad key"}`)
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL, APIKey: "k"})
	if _, err := c.Complete(context.Background(), "sys", "user"); err == nil {
		t.Fatalf("expected error on non-200 status")
	}
}

func TestComplete_RetriesServerErrorThenSucceeds(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"content":[{"text":"recovered"}]}`))
	}))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL, APIKey: "k"})
	out, err := c.Complete(context.Background(), "sys", "user")
	if err != nil {
		t.Fatalf("unexpected error after recovery: %v", err)
	}
	if out != "recovered" {
		t.Fatalf("reply = %q", out)
	}
	if got := calls.Load(); got != 3 {
		t.Fatalf("attempts = %d, want 3", got)
	}
}

func TestComplete_EmptyContent(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, nil, http.StatusOK, `{"content":[]}`)
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL, APIKey: "k"})
	if _, err := c.Complete(context.Background(), "sys", "user"); err == nil {
		t.Fatalf("expected error on empty content array")
	}
}

func TestNewClient_Defaults(t *testing.T) {
	t.Parallel()

	c := NewClient(Options{APIKey: "k"})
	if c.Model() != modelDefault {
		t.Fatalf("default model = %q", c.Model())
	}
	if c.opts.BaseURL != baseURLDefault {
		t.Fatalf("default base url = %q", c.opts.BaseURL)
	}
}
