/*
Package config loads environment-sourced settings. Command-line flags take
precedence over the environment where both are set.
*/
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// SMTPConfig holds SMTP delivery settings (SMTP_* variables).
type SMTPConfig struct {
	Server string `envconfig:"SERVER" default:"smtp.gmail.com"`
	Port   int    `envconfig:"PORT" default:"587"`
	User   string `envconfig:"USER"`
	Pass   string `envconfig:"PASS"`
	From   string `envconfig:"FROM"`
	To     string `envconfig:"TO"`
}

// Config is the environment-sourced configuration.
type Config struct {
	// UserAgent is the SEC-compliant User-Agent with contact info,
	// required by the SEC's fair-access policy.
	UserAgent string `envconfig:"SEC_USER_AGENT"`

	// TickersCSV is the default watchlist path when no flag is given.
	TickersCSV string `envconfig:"TICKERS_CSV"`

	GeminiAPIKey string `envconfig:"GEMINI_API_KEY"`
	GeminiModel  string `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`

	SMTP SMTPConfig `envconfig:"SMTP"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load environment config: %w", err)
	}
	return &cfg, nil
}

// EmailEnabled reports whether enough SMTP settings are present to send.
func (c *Config) EmailEnabled() bool {
	return c.SMTP.Server != "" && c.SMTP.User != "" && c.SMTP.Pass != "" && c.SMTP.To != ""
}
