// Package plexhttp parses error responses from a Plex Media Server.
package plexhttp

import (
	"encoding/json"
	"errors"
	"net/http"
)

var (
	_ error = HTTPError{}
	_ error = AuthError{}
)

// HTTPError is returned when a Plex Media Server responds with an unexpected status code.
type HTTPError struct {
	StatusText string
	Body       string
	StatusCode int
}

func (h HTTPError) Error() string {
	body := h.StatusText
	if h.Body != "" {
		body += ": " + h.Body
	}
	return "plex: " + body
}

// AuthError is an HTTPError for a 401 response: the token was not accepted by the server.
type AuthError struct {
	HTTPError
}

// Parse turns a non-successful response into an HTTPError or AuthError.
func Parse(r *http.Response) error {
	var errorBody struct {
		Error string `json:"error"`
	}
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&errorBody)
	}
	err := HTTPError{StatusCode: r.StatusCode, StatusText: r.Status, Body: errorBody.Error}
	if r.StatusCode == http.StatusUnauthorized {
		return AuthError{HTTPError: err}
	}
	return err
}

// IsAuthError returns true if err, or any error it wraps, is an AuthError.
func IsAuthError(err error) bool {
	var authErr AuthError
	return errors.As(err, &authErr)
}
