package types

import (
	"fmt"
	"time"
)

// Config holds runtime configuration combining flags and defaults
type Config struct {
	// Input
	TemplateFile string // read the template from a file instead of the argument

	// PostgreSQL connection (exec command)
	ConnectionString string        // URI or key=value format; PG* env vars apply
	Timeout          time.Duration // per-statement timeout, 0 = none

	// Output
	Output  string // output path, "-" for stdout
	JSON    bool   // machine-readable output
	Verbose bool   // enable debug logging
}

// Validate checks the configuration for unusable values
func (c *Config) Validate() error {
	if c.Output == "" {
		return &ConfigError{
			Field:      "output",
			Value:      c.Output,
			Message:    "output path must not be empty",
			Suggestion: "Use - to write to stdout.",
		}
	}
	if c.Timeout < 0 {
		return &ConfigError{
			Field:      "timeout",
			Value:      c.Timeout,
			Message:    fmt.Sprintf("invalid timeout: %v", c.Timeout),
			Suggestion: "Timeout must be zero or positive.",
		}
	}
	return nil
}

// ConfigError describes an invalid configuration value with a suggestion
// on how to fix it
type ConfigError struct {
	Field      string
	Value      any
	Message    string
	Suggestion string
}

func (e *ConfigError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s: %s. Suggestion: %s", e.Field, e.Message, e.Suggestion)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// RewriteResult is the machine-readable output of the rewrite command
type RewriteResult struct {
	SQL    string `json:"sql"`
	Params []any  `json:"params"`
}

// CheckResult is the machine-readable output of the check command
type CheckResult struct {
	Names     []string `json:"names"`
	Fragments []string `json:"fragments,omitempty"`
}
