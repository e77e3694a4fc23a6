package plex_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clambin/plex-library-viewer/internal/testutil"
	"github.com/clambin/plex-library-viewer/plex"
	"github.com/clambin/plex-library-viewer/plex/plexhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "some-token"

func TestPMSClient_Failures(t *testing.T) {
	c, s := makeClientAndServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "server's having a hard day", http.StatusInternalServerError)
	}))

	ctx := t.Context()
	_, err := c.GetIdentity(ctx)
	require.Error(t, err)
	assert.Equal(t, "plex: 500 Internal Server Error", err.Error())
	assert.False(t, plexhttp.IsAuthError(err))

	s.Close()
	_, err = c.GetIdentity(ctx)
	require.Error(t, err)
}

func TestPMSClient_Unauthorized(t *testing.T) {
	s := httptest.NewServer(testutil.WithToken(testToken, &testutil.PMS))
	t.Cleanup(s.Close)
	c := plex.NewPMSClient(s.URL, "wrong-token")

	_, err := c.GetIdentity(t.Context())
	require.Error(t, err)
	assert.True(t, plexhttp.IsAuthError(err))
	assert.Equal(t, "plex: 401 Unauthorized", err.Error())
}

func TestPMSClient_Decode_Failure(t *testing.T) {
	c, s := makeClientAndServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("this is definitely not json"))
	}))
	t.Cleanup(s.Close)

	_, err := c.GetIdentity(context.Background())
	require.Error(t, err)
	assert.Equal(t, "decode: invalid character 'h' in literal true (expecting 'r')", err.Error())
}

func makeClientAndServer(h http.Handler) (*plex.PMSClient, *httptest.Server) {
	if h == nil {
		h = testutil.WithToken(testToken, &testutil.PMS)
	}
	server := httptest.NewServer(h)
	return plex.NewPMSClient(server.URL, testToken, plex.WithHTTPClient(&http.Client{})), server
}
