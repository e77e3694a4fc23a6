package account

import (
	"cmp"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

const redacted = "REDACTED"

// LoggingTransport logs every request sent through next at debug level. Plex tokens are redacted.
// Request and response bodies are not logged: a sign-in request carries the user's password.
func LoggingTransport(logger *slog.Logger, next http.RoundTripper) http.RoundTripper {
	return loggingRoundTripper{logger: logger, next: cmp.Or(next, http.DefaultTransport)}
}

type loggingRoundTripper struct {
	logger *slog.Logger
	next   http.RoundTripper
}

func (l loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if !l.logger.Enabled(req.Context(), slog.LevelDebug) {
		return l.next.RoundTrip(req)
	}
	start := time.Now()
	resp, err := l.next.RoundTrip(req)
	attrs := []any{
		slog.String("method", req.Method),
		slog.String("url", redactURL(req.URL)),
		slog.Any("headers", redactHeader(req.Header)),
	}
	if err != nil {
		l.logger.Debug("request failed", append(attrs, "err", err)...)
		return nil, err
	}
	l.logger.Debug("request",
		append(attrs, slog.String("status", cmp.Or(resp.Status, http.StatusText(resp.StatusCode))), slog.Duration("elapsed", time.Since(start)))...,
	)
	return resp, nil
}

func redactURL(u *url.URL) string {
	query := u.Query()
	if query.Has("X-Plex-Token") {
		query.Set("X-Plex-Token", redacted)
		clone := *u
		clone.RawQuery = query.Encode()
		return clone.String()
	}
	return u.String()
}

func redactHeader(h http.Header) http.Header {
	h = h.Clone()
	if h.Get("X-Plex-Token") != "" {
		h.Set("X-Plex-Token", redacted)
	}
	return h
}
