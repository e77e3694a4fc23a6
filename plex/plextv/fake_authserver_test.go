package plextv

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
)

const legacyToken = "12345678901234567890"

var baseConfig = DefaultConfig().
	WithClientID("abc").
	WithDevice(Device{
		Product:         "TestProduct",
		Version:         "1.0",
		Platform:        "unit",
		PlatformVersion: "test",
		Device:          "dev",
		DeviceName:      "devname",
	})

func newTestServer(cfg Config) (Config, *fakeAuthServer, *httptest.Server) {
	s := makeFakeServer(&cfg)
	ts := httptest.NewServer(s)
	cfg.URL = ts.URL
	cfg.V2URL = ts.URL
	return cfg, s, ts
}

var _ http.Handler = &fakeAuthServer{}

// fakeAuthServer mimics the plex.tv endpoints used by this package.
type fakeAuthServer struct {
	http.Handler
	config  *Config
	signIns atomic.Int32
}

func makeFakeServer(cfg *Config) *fakeAuthServer {
	f := fakeAuthServer{config: cfg}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /users/sign_in.xml", f.handleSignIn)
	mux.HandleFunc("GET /api/v2/user", f.handleUser)
	mux.HandleFunc("GET /api/v2/resources", f.handleResources)
	f.Handler = mux
	return &f
}

func (f *fakeAuthServer) handleSignIn(w http.ResponseWriter, r *http.Request) {
	f.signIns.Add(1)
	wantHeaders := map[string]string{
		"Content-Type":             "application/x-www-form-urlencoded",
		"Accept":                   "application/xml",
		"X-Plex-Client-Identifier": f.config.ClientID,
		"X-Plex-Product":           f.config.Device.Product,
		"X-Plex-Version":           f.config.Device.Version,
		"X-Plex-Platform":          f.config.Device.Platform,
		"X-Plex-Platform-Version":  f.config.Device.PlatformVersion,
		"X-Plex-Device":            f.config.Device.Device,
		"X-Plex-Device-Name":       f.config.Device.DeviceName,
	}
	if err := validateRequest(r, wantHeaders); err != nil {
		plexError(w, http.StatusBadRequest, err.Error())
		return
	}
	body, _ := io.ReadAll(r.Body)
	vals, _ := url.ParseQuery(string(body))
	if vals.Get("user[login]") != "user" || vals.Get("user[password]") != "pass" {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors":[{"code":1001,"message":"User could not be authenticated","status":401}]}`))
		return
	}
	w.WriteHeader(http.StatusCreated)
	_ = xml.NewEncoder(w).Encode(struct {
		XMLName             xml.Name `xml:"user"`
		AuthenticationToken string   `xml:"authenticationToken,attr"`
	}{AuthenticationToken: legacyToken})
}

func (f *fakeAuthServer) handleUser(w http.ResponseWriter, r *http.Request) {
	if err := validateRequest(r, map[string]string{"X-Plex-Token": legacyToken}); err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}
	_ = json.NewEncoder(w).Encode(User{Username: "user"})
}

func (f *fakeAuthServer) handleResources(w http.ResponseWriter, r *http.Request) {
	wantHeaders := map[string]string{
		"Accept":                   "application/json",
		"X-Plex-Client-Identifier": f.config.ClientID,
		"X-Plex-Token":             legacyToken,
	}
	if err := validateRequest(r, wantHeaders); err != nil {
		plexError(w, http.StatusBadRequest, err.Error())
		return
	}
	resources := []Resource{
		{Name: "srv1", Provides: "server", ClientIdentifier: "srv-1", AccessToken: "tok-abc", Connections: []Connection{{URI: "http://10.0.0.1:32400", Local: true}}},
		{Name: "player", Provides: "client,player", ClientIdentifier: "player-1"},
	}
	if r.URL.Query().Get("includeRelay") == "1" {
		resources[0].Connections = append(resources[0].Connections, Connection{URI: "https://relay.plex.direct:8443", Relay: true})
	}
	_ = json.NewEncoder(w).Encode(resources)
}

func validateRequest(r *http.Request, wantHeaders map[string]string) error {
	for k, v := range wantHeaders {
		if got := r.Header.Get(k); got != v {
			return fmt.Errorf("invalid header: %s=%s", k, got)
		}
	}
	return nil
}

func plexError(w http.ResponseWriter, code int, msg string) {
	w.WriteHeader(code)
	_, _ = w.Write([]byte(`{ "error": "` + msg + `" }`))
}
