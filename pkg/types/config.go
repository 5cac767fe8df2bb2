// Copyright Inventory Capture Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for every outgoing request.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "partscout/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// APIConfig holds settings for the aggregation service client.
type APIConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the root of the aggregation API.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// MaxRetries bounds retry attempts on rate-limited requests (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// SearchDefaults seeds the search field and match type when the user does
// not pass them explicitly. Persisted by `search --save-defaults`.
type SearchDefaults struct {
	Field SearchField `json:"field" yaml:"field"`
	Match MatchType   `json:"match" yaml:"match"`
}

// ClientConfig groups all partscout settings.
type ClientConfig struct {
	API      APIConfig      `json:"api" yaml:"api"`
	Defaults SearchDefaults `json:"defaults" yaml:"defaults"`

	// StateDir holds the session credentials and the search history
	// database (default ~/.local/state/partscout).
	StateDir string `json:"state_dir" yaml:"state_dir"`

	// Debug enables verbose structured logging to stderr.
	Debug bool `json:"debug" yaml:"debug"`
}
