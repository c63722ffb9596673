package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/SISDRUG/bankoffice/internal/flagx"
	"github.com/SISDRUG/bankoffice/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "10s" or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	APIBaseURL         string         `json:"api_base_url"`
	IdpURL             string         `json:"idp_url"`
	Realm              string         `json:"realm"`
	ClientID           string         `json:"client_id"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
	MapLatitude        *float64       `json:"map_latitude"`
	MapLongitude       *float64       `json:"map_longitude"`
	SearchRadiusMeters *float64       `json:"search_radius_meters"`
}

// parseJson overlays Config with values loaded from a JSON file selected via
// the -c or -config flags. When no file is given the function is a no-op.
// Read or unmarshal errors panic; intended usage is
// defaults -> parseJson -> parseFlags, where later stages override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.IdpURL != "" {
		cfg.IdpURL = jc.IdpURL
	}
	if jc.Realm != "" {
		cfg.Realm = jc.Realm
	}
	if jc.ClientID != "" {
		cfg.ClientID = jc.ClientID
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.MapLatitude != nil {
		cfg.MapLatitude = *jc.MapLatitude
	}
	if jc.MapLongitude != nil {
		cfg.MapLongitude = *jc.MapLongitude
	}
	if jc.SearchRadiusMeters != nil {
		cfg.SearchRadiusMeters = *jc.SearchRadiusMeters
	}
}
