package plextv

import (
	"context"
	"errors"
	"testing"
)

func TestTokenSource_WithToken(t *testing.T) {
	ts := DefaultConfig().TokenSource(WithToken("abc"))
	token, err := ts.Token(t.Context())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token.String() != "abc" {
		t.Fatalf("unexpected token: %s", token)
	}
}

func TestTokenSource_WithCredentials(t *testing.T) {
	cfg, s, ts := newTestServer(DefaultConfig().WithClientID("my-client-id"))
	t.Cleanup(ts.Close)

	src := cfg.TokenSource(WithCredentials("user", "pass"))
	for range 3 {
		token, err := src.Token(t.Context())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := token.String(); got != legacyToken {
			t.Fatalf("unexpected token: want=%v, got=%v", legacyToken, got)
		}
	}
	if got := s.signIns.Load(); got != 1 {
		t.Fatalf("expected one sign-in, got %d", got)
	}

	// clear the cached token: a failed registrar fails the token source
	src.(*cachingTokenSource).token = nil
	src.(*cachingTokenSource).tokenSource = tokenSourceFunc(func(context.Context) (Token, error) {
		return "", errors.New("test error")
	})
	if _, err := src.Token(t.Context()); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestTokenSource_WithoutRegistrar(t *testing.T) {
	src := DefaultConfig().TokenSource()
	if _, err := src.Token(t.Context()); !errors.Is(err, ErrNoTokenSource) {
		t.Fatalf("expected ErrNoTokenSource, got %v", err)
	}
}
