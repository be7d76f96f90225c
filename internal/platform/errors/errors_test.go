package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestCodeOfAndIsCode(t *testing.T) {
	err := Validationf("content must not be empty")
	if got := CodeOf(err); got != ErrorCodeValidation {
		t.Fatalf("CodeOf = %v, want validation", got)
	}
	if !IsCode(err, ErrorCodeValidation) {
		t.Fatalf("IsCode should match the code it was built with")
	}
	if IsCode(err, ErrorCodeUpstream) {
		t.Fatalf("IsCode matched the wrong code")
	}
	if got := CodeOf(stderrs.New("plain")); got != ErrorCodeUnknown {
		t.Fatalf("plain errors should map to unknown, got %v", got)
	}
}

func TestCodeOfSurvivesWrapping(t *testing.T) {
	inner := Upstreamf("anthropic status 500")
	outer := fmt.Errorf("judge: %w", inner)
	if got := CodeOf(outer); got != ErrorCodeUpstream {
		t.Fatalf("CodeOf through fmt wrap = %v, want upstream", got)
	}
}

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{Validationf("bad"), http.StatusBadRequest},
		{InvalidArgf("bad"), http.StatusBadRequest},
		{JSONErrf("bad body"), http.StatusBadRequest},
		{NotFoundf("gone"), http.StatusNotFound},
		{Unauthorizedf("nope"), http.StatusUnauthorized},
		{DuplicateKeyf("dup"), http.StatusConflict},
		{Upstreamf("provider down"), http.StatusBadGateway},
		{DBf("boom"), http.StatusInternalServerError},
		{Internalf("boom"), http.StatusInternalServerError},
		{stderrs.New("plain"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := HTTPStatus(tc.err); got != tc.status {
			t.Errorf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.status)
		}
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrs.New("connection refused")
	err := Wrapf(cause, ErrorCodeUpstream, "openrouter request failed")
	if !stderrs.Is(err, cause) {
		t.Fatalf("wrapped cause should be reachable via errors.Is")
	}
	if got := Root(err); got != cause {
		t.Fatalf("Root = %v, want the original cause", got)
	}
}

func TestWireFrom(t *testing.T) {
	w := WireFrom(WithField(Validationf("must be one of twitter instagram linkedin"), "platform"))
	if w.Code != ErrorCodeValidation || w.Field != "platform" {
		t.Fatalf("wire = %+v", w)
	}

	w = WireFrom(stderrs.New("plain"))
	if w.Code != ErrorCodeUnknown || w.Message != "plain" {
		t.Fatalf("plain wire = %+v", w)
	}

	if w := WireFrom(nil); w != (Wire{}) {
		t.Fatalf("nil should map to the zero Wire, got %+v", w)
	}
}

func TestHTTPBundle(t *testing.T) {
	status, w := HTTP(nil)
	if status != http.StatusOK || w != (Wire{}) {
		t.Fatalf("nil = (%d, %+v)", status, w)
	}
	status, w = HTTP(Upstreamf("model judgment failed"))
	if status != http.StatusBadGateway || w.Code != ErrorCodeUpstream {
		t.Fatalf("upstream = (%d, %+v)", status, w)
	}
}
