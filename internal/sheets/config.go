// Package sheets provides the Google Sheets backed tabular store.
package sheets

import (
	"fmt"
	"os"
	"time"

	"github.com/seongmin-k/biffplan/internal/common"
)

// Config holds the configuration for the spreadsheet store.
type Config struct {
	ClientID           string
	ClientSecret       string
	RefreshToken       string
	ServiceAccountPath string
	SpreadsheetID      string
	SpreadsheetName    string
	NewSheetRows       int64
	NewSheetCols       int64
	CacheTTL           time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		SpreadsheetName: "BIFF Trip Planner",
		NewSheetRows:    100,
		NewSheetCols:    40,
		CacheTTL:        30 * time.Second,
	}
}

// LoadFromEnv fills any unset fields from the GOOGLE_SHEETS_* environment
// variables. Fields already set, by a config file or otherwise, win.
func (c *Config) LoadFromEnv() {
	if c.ServiceAccountPath == "" {
		c.ServiceAccountPath = os.Getenv("GOOGLE_SHEETS_SERVICE_ACCOUNT_PATH")
	}
	if c.ClientID == "" {
		c.ClientID = os.Getenv("GOOGLE_SHEETS_CLIENT_ID")
	}
	if c.ClientSecret == "" {
		c.ClientSecret = os.Getenv("GOOGLE_SHEETS_CLIENT_SECRET")
	}
	if c.RefreshToken == "" {
		c.RefreshToken = os.Getenv("GOOGLE_SHEETS_REFRESH_TOKEN")
	}
	if c.SpreadsheetID == "" {
		c.SpreadsheetID = os.Getenv("GOOGLE_SHEETS_SPREADSHEET_ID")
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	hasOAuth := c.ClientID != "" && c.ClientSecret != "" && c.RefreshToken != ""
	hasServiceAccount := c.ServiceAccountPath != ""

	if !hasOAuth && !hasServiceAccount {
		return fmt.Errorf("%w: no authentication method configured", common.ErrMissingConfig)
	}
	if hasOAuth && hasServiceAccount {
		return fmt.Errorf("%w: multiple authentication methods configured; use either OAuth2 or service account", common.ErrInvalidConfig)
	}
	if c.NewSheetRows <= 0 || c.NewSheetCols <= 0 {
		return fmt.Errorf("%w: new sheet dimensions must be positive", common.ErrInvalidConfig)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("%w: cache TTL cannot be negative", common.ErrInvalidConfig)
	}
	return nil
}
