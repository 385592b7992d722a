package cli

import (
	"time"

	"github.com/cybertec-postgresql/pgnamed/pkg/types"
)

// Config is an alias for the shared Config type
type Config = types.Config

// ConfigError is an alias for the shared ConfigError type
type ConfigError = types.ConfigError

// DefaultConfig provides default configuration values
var DefaultConfig = Config{
	TemplateFile: "",
	Output:       "-",
	JSON:         false,
	Verbose:      false,
}

// ApplyFlagsToConfig applies command-line flag values to configuration
func ApplyFlagsToConfig(c *Config, templateFile, output string, jsonOut, verbose bool) {
	if templateFile != "" {
		c.TemplateFile = templateFile
	}
	if output != "" {
		c.Output = output
	}
	c.JSON = jsonOut
	c.Verbose = verbose
}

// ApplyExecFlagsToConfig applies the exec command's connection flags
func ApplyExecFlagsToConfig(c *Config, connection string, timeout time.Duration) {
	if connection != "" {
		c.ConnectionString = connection
	}
	if timeout != 0 {
		c.Timeout = timeout
	}
}
