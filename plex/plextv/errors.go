package plextv

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

var (
	// ErrInvalidToken indicates that plex.tv did not return a usable token.
	ErrInvalidToken = errors.New("invalid token")
	// ErrNoTokenSource indicates that a token source needs a child token source, but none was provided.
	ErrNoTokenSource = errors.New("no token source provided")
	// ErrUnauthorized indicates that plex.tv could not authenticate the user.
	ErrUnauthorized = errors.New("user could not be authenticated")
	// ErrTooManyRequests indicates that the plex.tv API rate limit has been reached.
	ErrTooManyRequests = errors.New("too many requests")
)

var _ error = &PlexError{}

// PlexError is returned when plex.tv responds with an unexpected status code.
// Errors reported in the response body are available through [errors.Is] and [errors.Unwrap].
type PlexError struct {
	errors     error
	Status     string
	Body       []byte
	StatusCode int
}

func (p *PlexError) Error() string {
	txt := p.Status
	if p.errors != nil {
		txt = p.errors.Error()
	}
	return "plex: " + txt
}

func (p *PlexError) Unwrap() error {
	return p.errors
}

var plexErrors = map[int]error{
	1001: ErrUnauthorized,
	1003: ErrTooManyRequests,
}

// ParsePlexError parses the error text returned by plex.tv and returns a PlexError.
//
// plex.tv reports errors either as a single message ({"error": "..."}) or as a list of coded errors
// ({"errors": [{"code": 1001, "message": "..."}]}). Known codes map to this package's sentinel errors.
func ParsePlexError(r *http.Response) error {
	var errorBody struct {
		Error  string `json:"error"`
		Errors []struct {
			Message string `json:"message"`
			Code    int    `json:"code"`
			Status  int    `json:"status"`
		} `json:"errors"`
	}

	var buf bytes.Buffer
	if r.Body != nil {
		_ = json.NewDecoder(io.TeeReader(r.Body, &buf)).Decode(&errorBody)
	}

	e := PlexError{
		StatusCode: r.StatusCode,
		Status:     r.Status,
		Body:       buf.Bytes(),
	}

	switch {
	case errorBody.Error != "":
		e.errors = errors.New(errorBody.Error)
	case len(errorBody.Errors) > 0:
		errs := make([]error, len(errorBody.Errors))
		for i, entry := range errorBody.Errors {
			var ok bool
			if errs[i], ok = plexErrors[entry.Code]; !ok {
				errs[i] = fmt.Errorf("%d - %s", entry.Code, entry.Message)
			}
		}
		e.errors = errors.Join(errs...)
	case r.StatusCode == http.StatusUnauthorized:
		e.errors = ErrUnauthorized
	}
	return &e
}
