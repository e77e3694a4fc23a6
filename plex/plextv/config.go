package plextv

import (
	"net/http"

	"github.com/google/uuid"
)

// Device identifies the client to plex.tv. The values show up in the account's list of Authorized Devices.
type Device struct {
	// Product is the name of the client product.
	// Passed as X-Plex-Product header.
	// In Authorized Devices, it is shown on line 3.
	Product string
	// Version is the version of the client application.
	// Passed as X-Plex-Version header.
	// In Authorized Devices, it is shown on line 2.
	Version string
	// Platform is the operating system or compiler of the client application.
	// Passed as X-Plex-Platform header.
	Platform string
	// PlatformVersion is the version of the platform.
	// Passed as X-Plex-Platform-Version header.
	PlatformVersion string
	// Device is a relatively friendly name for the client device.
	// Passed as X-Plex-Device header.
	// In Authorized Devices, it is shown on line 4.
	Device string
	// DeviceName is a friendly name for the client.
	// Passed as X-Plex-Device-Name header.
	// In Authorized Devices, it is shown on line 1.
	DeviceName string
	// Provides describes the type of device.
	// Passed as X-Plex-Provides header.
	Provides string
}

// populateRequest populates the request headers with the device information.
func (d Device) populateRequest(req *http.Request) {
	headers := map[string]string{
		"X-Plex-Product":          d.Product,
		"X-Plex-Version":          d.Version,
		"X-Plex-Platform":         d.Platform,
		"X-Plex-Platform-Version": d.PlatformVersion,
		"X-Plex-Device":           d.Device,
		"X-Plex-Device-Name":      d.DeviceName,
		"X-Plex-Provides":         d.Provides,
	}
	for key, value := range headers {
		if value != "" {
			req.Header.Set(key, value)
		}
	}
}

// Config contains the configuration required to authenticate with plex.tv.
type Config struct {
	// Device information sent with every request.
	Device Device
	// URL is the base URL of the legacy sign-in endpoint.
	// Defaults to https://plex.tv and should not need to be changed.
	URL string
	// V2URL is the base URL of the v2 API.
	// Defaults to https://clients.plex.tv and should not need to be changed.
	V2URL string
	// ClientID is the unique identifier of the client application.
	// A new one is generated for every DefaultConfig, since the viewer does not persist state between runs.
	ClientID string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		URL:      "https://plex.tv",
		V2URL:    "https://clients.plex.tv",
		ClientID: uuid.New().String(),
	}
}

// WithClientID sets the Client ID.
func (c Config) WithClientID(clientID string) Config {
	c.ClientID = clientID
	return c
}

// WithDevice sets the device information. See the [Device] type for details on what each field means.
func (c Config) WithDevice(device Device) Config {
	c.Device = device
	return c
}
