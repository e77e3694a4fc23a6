package plextv

import "time"

// User represents a Plex TV user. It is the response from the /api/v2/user endpoint.
type User struct {
	Id               int    `json:"id"`
	Uuid             string `json:"uuid"`
	Username         string `json:"username"`
	Title            string `json:"title"`
	Email            string `json:"email"`
	FriendlyName     string `json:"friendlyName"`
	Thumb            string `json:"thumb"`
	Country          string `json:"country"`
	Confirmed        bool   `json:"confirmed"`
	Home             bool   `json:"home"`
	Guest            bool   `json:"guest"`
	TwoFactorEnabled bool   `json:"twoFactorEnabled"`
}

// Resource represents a device linked to a Plex account. It's the response to /api/v2/resources endpoint.
//
// Connections labeled as local should be preferred over those that are not,
// and relay should only be used as a last resort as bandwidth on relay connections is limited.
type Resource struct {
	CreatedAt        time.Time    `json:"createdAt"`
	LastSeenAt       time.Time    `json:"lastSeenAt"`
	Name             string       `json:"name"`
	Product          string       `json:"product"`
	ProductVersion   string       `json:"productVersion"`
	Platform         string       `json:"platform"`
	PlatformVersion  string       `json:"platformVersion"`
	Device           string       `json:"device"`
	ClientIdentifier string       `json:"clientIdentifier"`
	Provides         string       `json:"provides"`
	PublicAddress    string       `json:"publicAddress"`
	AccessToken      string       `json:"accessToken"`
	Connections      []Connection `json:"connections"`
	Owned            bool         `json:"owned"`
	Home             bool         `json:"home"`
	Relay            bool         `json:"relay"`
	Presence         bool         `json:"presence"`
	HttpsRequired    bool         `json:"httpsRequired"`
}

// Connection is one way of reaching a Resource.
type Connection struct {
	Protocol string `json:"protocol"`
	Address  string `json:"address"`
	URI      string `json:"uri"`
	Port     int    `json:"port"`
	Local    bool   `json:"local"`
	Relay    bool   `json:"relay"`
	IPv6     bool   `json:"IPv6"`
}
