package config

import (
	"time"

	"github.com/seongmin-k/biffplan/internal/sheets"
	"github.com/spf13/viper"
)

// LoadSheetsConfig loads Google Sheets configuration from Viper and
// environment variables. Precedence:
// 1. Viper configuration (from config file or BIFFPLAN_ env vars)
// 2. Direct environment variables (GOOGLE_SHEETS_*)
// 3. Default values
func LoadSheetsConfig() (*sheets.Config, error) {
	config := sheets.DefaultConfig()

	if v := viper.GetString("sheets.service_account_path"); v != "" {
		config.ServiceAccountPath = v
	}
	if v := viper.GetString("sheets.client_id"); v != "" {
		config.ClientID = v
	}
	if v := viper.GetString("sheets.client_secret"); v != "" {
		config.ClientSecret = v
	}
	if v := viper.GetString("sheets.refresh_token"); v != "" {
		config.RefreshToken = v
	}
	if v := viper.GetString("sheets.spreadsheet_id"); v != "" {
		config.SpreadsheetID = v
	}
	if v := viper.GetString("sheets.spreadsheet_name"); v != "" {
		config.SpreadsheetName = v
	}
	if v := viper.GetDuration("sheets.cache_ttl"); v > 0 {
		config.CacheTTL = v
	}

	config.LoadFromEnv()
	config.ServiceAccountPath = ExpandPath(config.ServiceAccountPath)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// GeocodeConfig holds the settings for the enrichment pass.
type GeocodeConfig struct {
	RegionBias  string
	CachePath   string
	Timeout     time.Duration
	MinInterval time.Duration
}

// LoadGeocodeConfig loads geocoder settings from Viper with defaults
// matching the Nominatim usage policy.
func LoadGeocodeConfig() GeocodeConfig {
	cfg := GeocodeConfig{
		RegionBias:  "부산",
		CachePath:   DefaultCachePath(),
		Timeout:     10 * time.Second,
		MinInterval: time.Second,
	}

	if v := viper.GetString("geocode.region_bias"); v != "" {
		cfg.RegionBias = v
	}
	if v := viper.GetString("geocode.cache_path"); v != "" {
		cfg.CachePath = ExpandPath(v)
	}
	if v := viper.GetDuration("geocode.timeout"); v > 0 {
		cfg.Timeout = v
	}
	if v := viper.GetDuration("geocode.min_interval"); v > 0 {
		cfg.MinInterval = v
	}
	return cfg
}
