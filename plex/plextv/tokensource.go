package plextv

import (
	"context"
	"log/slog"
	"sync"
)

// TokenSource creates a Plex authentication Token.
type TokenSource interface {
	Token(ctx context.Context) (Token, error)
}

// TokenSource returns a [TokenSource] configured by the provided options.
//
// Unless a fixed token is configured, the returned TokenSource caches the token it obtained,
// so the account is only signed in once.
func (c Config) TokenSource(opts ...TokenSourceOption) TokenSource {
	cfg := tokenSourceConfiguration{
		config: &c,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg.tokenSource()
}

// TokenSourceOption provides the configuration to create the desired TokenSource.
type TokenSourceOption func(*tokenSourceConfiguration)

// WithLogger configures an optional logger.
func WithLogger(logger *slog.Logger) TokenSourceOption {
	return func(c *tokenSourceConfiguration) {
		c.logger = logger
	}
}

// WithToken configures a TokenSource to use an existing, fixed token.
func WithToken(token Token) TokenSourceOption {
	return func(c *tokenSourceConfiguration) {
		c.token = token
	}
}

// WithCredentials uses the given credentials to sign in and get a token.
func WithCredentials(username, password string) TokenSourceOption {
	return func(c *tokenSourceConfiguration) {
		c.registrar = tokenSourceFunc(func(ctx context.Context) (Token, error) {
			return c.config.SignIn(ctx, username, password)
		})
	}
}

type tokenSourceConfiguration struct {
	registrar TokenSource
	config    *Config
	logger    *slog.Logger
	token     Token
}

func (c tokenSourceConfiguration) tokenSource() TokenSource {
	if c.token != "" {
		return fixedTokenSource{token: c.token}
	}
	return &cachingTokenSource{
		tokenSource: c.registrar,
		logger:      c.logger.With("component", "tokenSource"),
	}
}

var (
	_ TokenSource = tokenSourceFunc(nil)
	_ TokenSource = fixedTokenSource{}
	_ TokenSource = (*cachingTokenSource)(nil)
)

// tokenSourceFunc is an adapter to convert a function with the correct signature into a TokenSource.
type tokenSourceFunc func(context.Context) (Token, error)

func (a tokenSourceFunc) Token(ctx context.Context) (Token, error) {
	return a(ctx)
}

// fixedTokenSource returns a fixed token.
type fixedTokenSource struct {
	token Token
}

func (f fixedTokenSource) Token(_ context.Context) (Token, error) {
	return f.token, nil
}

// A cachingTokenSource caches the token obtained by the underlying TokenSource.
type cachingTokenSource struct {
	tokenSource TokenSource
	logger      *slog.Logger
	token       *Token
	lock        sync.Mutex
}

func (s *cachingTokenSource) Token(ctx context.Context) (Token, error) {
	if s.tokenSource == nil {
		return "", ErrNoTokenSource
	}
	s.lock.Lock()
	defer s.lock.Unlock()

	// IsValid parses JWTs on each call, but a JWT may expire, so we can't skip it.
	if s.token != nil && s.token.IsValid() {
		return *s.token, nil
	}

	s.logger.Debug("requesting new token")
	token, err := s.tokenSource.Token(ctx)
	if err != nil {
		return "", err
	}
	s.token = &token
	s.logger.Debug("token received", slog.Bool("legacy", token.IsLegacy()))
	return token, nil
}
