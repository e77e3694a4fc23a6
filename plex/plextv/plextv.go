package plextv

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// PlexTVClient returns a [Client] that can be used to query the plex.tv API.
func (c Config) PlexTVClient(opts ...TokenSourceOption) Client {
	return Client{
		config:      &c,
		tokenSource: c.TokenSource(opts...),
	}
}

// A Client is a plex.tv client that can be used to interact with the public Plex API.
type Client struct {
	config      *Config
	tokenSource TokenSource
}

// Token returns the token the Client uses to authenticate itself with plex.tv.
func (c Client) Token(ctx context.Context) (Token, error) {
	return c.tokenSource.Token(ctx)
}

// User returns the information of the user associated with the Client's TokenSource.
func (c Client) User(ctx context.Context) (User, error) {
	resp, err := c.doWithToken(ctx, http.MethodGet, c.config.V2URL+"/api/v2/user", nil, http.StatusOK)
	if err != nil {
		return User{}, fmt.Errorf("user: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	var user User
	if err = json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return user, fmt.Errorf("decode: %w", err)
	}
	return user, nil
}

// Resources returns all resources (Plex Media Servers, players, etc.) visible for the current token.
//
// Use values to filter the results. According to the [Plex API documentation], the following values are supported:
//   - includeHttps=1: include https connections
//   - includeRelay=1: include relay connections
//   - includeIPv6=1: include IPv6 connections
//
// Use the AccessToken to interact with a PMS instance and the list of connections to locate it.
//
// [Plex API documentation]: https://developer.plex.tv/pms/#section/API-Info/Authenticating-with-Plex
func (c Client) Resources(ctx context.Context, values url.Values) ([]Resource, error) {
	target := c.config.V2URL + "/api/v2/resources"
	if len(values) > 0 {
		target += "?" + values.Encode()
	}
	resp, err := c.doWithToken(ctx, http.MethodGet, target, nil, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("resources: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	var resources []Resource
	if err = json.NewDecoder(resp.Body).Decode(&resources); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return resources, nil
}

func (c Client) doWithToken(ctx context.Context, method, target string, body io.Reader, wantStatus int, formatters ...requestFormatter) (*http.Response, error) {
	token, err := c.tokenSource.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("token: %w", err)
	}
	formatters = append(formatters, func(req *http.Request) {
		req.Header.Set("X-Plex-Token", token.String())
	})
	return c.config.do(ctx, method, target, body, wantStatus, formatters...)
}
