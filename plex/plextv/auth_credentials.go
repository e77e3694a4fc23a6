package plextv

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// SignIn authenticates with plex.tv using username/password credentials and returns a legacy Token.
//
// If the account uses two-factor authentication, append the current code to the password.
func (c Config) SignIn(ctx context.Context, username, password string) (Token, error) {
	// credentials are passed in the request body in url-encoded form
	v := make(url.Values)
	v.Set("user[login]", username)
	v.Set("user[password]", password)

	resp, err := c.do(ctx, http.MethodPost, c.URL+"/users/sign_in.xml", strings.NewReader(v.Encode()), http.StatusCreated, func(req *http.Request) {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("Accept", "application/xml")
	})
	if err != nil {
		return "", fmt.Errorf("sign in: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	// a successful response contains an XML document with an authentication token
	var authResponse struct {
		XMLName             xml.Name `xml:"user"`
		AuthenticationToken string   `xml:"authenticationToken,attr"`
	}
	if err = xml.NewDecoder(resp.Body).Decode(&authResponse); err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	if authResponse.AuthenticationToken == "" {
		return "", ErrInvalidToken
	}
	return Token(authResponse.AuthenticationToken), nil
}
