package config

import "time"

// Config holds runtime settings for the back-office CLI.
//
// Fields:
//   - APIBaseURL: base URL of the admin REST API (including the /rest/admin-ui prefix).
//   - IdpURL: base URL of the identity provider.
//   - Realm, ClientID: identity-provider realm and OAuth client.
//   - RequestTimeout: per-request timeout applied to gateway and token calls.
//   - MapLatitude, MapLongitude, SearchRadiusMeters: defaults for the nearby
//     branch/ATM search.
type Config struct {
	APIBaseURL         string
	IdpURL             string
	Realm              string
	ClientID           string
	RequestTimeout     time.Duration
	MapLatitude        float64
	MapLongitude       float64
	SearchRadiusMeters float64
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080/rest/admin-ui"
	c.IdpURL = "http://127.0.0.1:9080"
	c.Realm = "master"
	c.ClientID = "bank-app"
	c.RequestTimeout = 10 * time.Second
	c.MapLatitude = 53.6778
	c.MapLongitude = 23.8297
	c.SearchRadiusMeters = 5000
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
