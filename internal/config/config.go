// Package config reads service configuration from environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ServiceConfig holds all configuration for the route service.
type ServiceConfig struct {
	Port   string
	AppEnv string

	GeocoderBaseURL string
	GeocoderTimeout time.Duration

	RoutingBaseURL  string
	RoutingTimeout  time.Duration
	RoutingGeometry string // "geojson" or "polyline"

	PlacesBaseURL string
	PlacesAPIKey  string
	PlacesTimeout time.Duration
}

// Load reads configuration from ROUTE_-prefixed environment variables with
// defaults for every upstream.
func Load() (*ServiceConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("ROUTE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("SERVICE_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org")
	v.SetDefault("GEOCODER_TIMEOUT", "5s")
	v.SetDefault("ROUTING_BASE_URL", "https://router.project-osrm.org")
	v.SetDefault("ROUTING_TIMEOUT", "15s")
	v.SetDefault("ROUTING_GEOMETRY", "geojson")
	v.SetDefault("PLACES_BASE_URL", "https://serpapi.com")
	v.SetDefault("PLACES_API_KEY", "")
	v.SetDefault("PLACES_TIMEOUT", "9s")

	cfg := &ServiceConfig{
		Port:            ":" + strings.TrimPrefix(v.GetString("SERVICE_PORT"), ":"),
		AppEnv:          v.GetString("APP_ENV"),
		GeocoderBaseURL: v.GetString("GEOCODER_BASE_URL"),
		GeocoderTimeout: v.GetDuration("GEOCODER_TIMEOUT"),
		RoutingBaseURL:  v.GetString("ROUTING_BASE_URL"),
		RoutingTimeout:  v.GetDuration("ROUTING_TIMEOUT"),
		RoutingGeometry: v.GetString("ROUTING_GEOMETRY"),
		PlacesBaseURL:   v.GetString("PLACES_BASE_URL"),
		PlacesAPIKey:    v.GetString("PLACES_API_KEY"),
		PlacesTimeout:   v.GetDuration("PLACES_TIMEOUT"),
	}

	if cfg.RoutingGeometry != "geojson" && cfg.RoutingGeometry != "polyline" {
		return nil, fmt.Errorf("invalid ROUTE_ROUTING_GEOMETRY %q: must be geojson or polyline", cfg.RoutingGeometry)
	}

	return cfg, nil
}
