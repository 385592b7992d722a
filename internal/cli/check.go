package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cybertec-postgresql/pgnamed"
	"github.com/cybertec-postgresql/pgnamed/internal/logger"
	"github.com/cybertec-postgresql/pgnamed/pkg/types"
)

// Check parses and validates a template without executing it. Diagnostics go
// to stderr; a clean template gets its referenced names printed. The returned
// exit code is 0 for a valid template, 1 for a template error, 2 for a usage
// error.
func Check(config *Config, inline string, rawArgs []string) (int, error) {
	src, err := LoadTemplate(config, inline)
	if err != nil {
		return 2, err
	}

	tmpl, err := pgnamed.Parse(src)
	if err != nil {
		logger.Error("%v", err)
		return 1, nil
	}

	args, err := ParseArgFlags(rawArgs)
	if err != nil {
		return 2, err
	}
	if len(args) == 0 && len(tmpl.FragmentRefs()) == 0 {
		// Without explicit arguments, a synthetic bundle covering every
		// referenced name still exercises the pairing checks. Templates with
		// unresolved ${name} references are checked for syntax only.
		for _, name := range tmpl.Names() {
			args = append(args, pgnamed.Named(name, nil))
		}
	}
	if len(args) > 0 {
		if _, _, err := tmpl.Rewrite(args); err != nil {
			logger.Error("%v", err)
			return 1, nil
		}
	}

	logger.Debug("template ok: %d name(s), %d fragment reference(s)",
		len(tmpl.Names()), len(tmpl.FragmentRefs()))

	result := types.CheckResult{Names: tmpl.Names(), Fragments: tmpl.FragmentRefs()}
	if config.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return 2, err
		}
		return 0, nil
	}

	fmt.Printf("template ok: %d argument name(s)\n", len(result.Names))
	for _, name := range result.Names {
		fmt.Printf("  $%s\n", name)
	}
	for _, name := range result.Fragments {
		fmt.Printf("  ${%s}\n", name)
	}
	return 0, nil
}
