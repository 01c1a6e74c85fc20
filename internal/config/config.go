package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	// SILOEmail is required by SILO's terms of use for Patched Point
	// requests; no account is needed. SILO endpoints fail without it.
	SILOEmail string

	// GeocoderAPIKey enables the station proximity search (Google key).
	// Empty disables the feature.
	GeocoderAPIKey string

	// Upstream hosts, overridable for tests.
	BoMBaseURL  string
	SILOBaseURL string

	// HTTPTimeout bounds each outbound provider call.
	HTTPTimeout time.Duration

	// LookupRadiusKm bounds the station directory search used to resolve
	// the p_c token when a caller does not supply one.
	LookupRadiusKm int

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.SILOEmail = os.Getenv("SILO_EMAIL")
	if cfg.SILOEmail == "" {
		log.Printf("WARN: SILO_EMAIL not set; SILO endpoints will be unavailable")
	}

	cfg.GeocoderAPIKey = os.Getenv("GEOCODER_API_KEY")

	cfg.BoMBaseURL = getenvDefault("BOM_BASE_URL", "http://www.bom.gov.au")
	cfg.SILOBaseURL = getenvDefault("SILO_BASE_URL", "https://www.longpaddock.qld.gov.au")

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "30s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.LookupRadiusKm = getenvInt("LOOKUP_RADIUS_KM", 50)
	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
