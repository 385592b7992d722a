package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cybertec-postgresql/pgnamed"
	"github.com/cybertec-postgresql/pgnamed/internal/logger"
	"github.com/cybertec-postgresql/pgnamed/pkg/types"
)

// ParseArgFlags converts repeated name=value flag values into a named
// argument bundle. Values stay strings; the driver-side typing is out of
// scope for the command line.
func ParseArgFlags(pairs []string) (pgnamed.Args, error) {
	args := make(pgnamed.Args, 0, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("malformed --arg %q (want name=value)", pair)
		}
		args = append(args, pgnamed.Named(name, value))
	}
	return args, nil
}

// LoadTemplate returns the template text, preferring the configured file
// over the inline argument.
func LoadTemplate(config *Config, inline string) (string, error) {
	if config.TemplateFile != "" {
		data, err := os.ReadFile(config.TemplateFile)
		if err != nil {
			return "", fmt.Errorf("failed to read template: %w", err)
		}
		return string(data), nil
	}
	if inline == "" {
		return "", fmt.Errorf("no template given (pass it as an argument or via --file)")
	}
	return inline, nil
}

// Rewrite executes the rewrite workflow: load the template, bind the flag
// arguments, and print the positional SQL plus the ordered parameters.
func Rewrite(config *Config, inline string, rawArgs []string) error {
	src, err := LoadTemplate(config, inline)
	if err != nil {
		return err
	}
	args, err := ParseArgFlags(rawArgs)
	if err != nil {
		return err
	}

	logger.Debug("rewriting %d byte template with %d argument(s)", len(src), len(args))

	sql, values, err := pgnamed.Rewrite(src, args)
	if err != nil {
		return err
	}

	out, closeOut, err := openOutput(config.Output)
	if err != nil {
		return err
	}
	defer closeOut()

	if config.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(types.RewriteResult{SQL: sql, Params: values})
	}

	fmt.Fprintln(out, sql)
	for i, v := range values {
		fmt.Fprintf(out, "$%d = %v\n", i+1, v)
	}
	return nil
}

// openOutput resolves the output path, with "-" meaning stdout.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "-" || path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}
