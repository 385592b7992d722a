package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cybertec-postgresql/pgnamed"
	"github.com/cybertec-postgresql/pgnamed/internal/database"
	"github.com/cybertec-postgresql/pgnamed/internal/errors"
	"github.com/cybertec-postgresql/pgnamed/internal/logger"
)

// Exec rewrites the template, runs it against PostgreSQL, and prints the
// result rows (or the command tag for statements that return none).
func Exec(ctx context.Context, config *Config, inline string, rawArgs []string) error {
	src, err := LoadTemplate(config, inline)
	if err != nil {
		return err
	}
	args, err := ParseArgFlags(rawArgs)
	if err != nil {
		return err
	}

	pool, err := database.NewPool(ctx, config.ConnectionString)
	if err != nil {
		return err
	}
	defer pool.Close()

	if config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, config.Timeout)
		defer cancel()
	}

	sql, values, err := pgnamed.Rewrite(src, args)
	if err != nil {
		return err
	}
	logger.Debug("executing: %s %v", sql, values)

	rows, err := pool.Query(ctx, sql, values...)
	if err != nil {
		return errors.NewQueryError(sql, err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	columns := make([]string, len(fields))
	for i, fd := range fields {
		columns[i] = fd.Name
	}

	var results []map[string]any
	for rows.Next() {
		rowValues, err := rows.Values()
		if err != nil {
			return errors.NewQueryError(sql, err)
		}
		row := make(map[string]any, len(columns))
		for i, col := range columns {
			row[col] = rowValues[i]
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return errors.NewQueryError(sql, err)
	}
	tag := rows.CommandTag()
	logger.Info("%s, %d row(s)", tag.String(), len(results))

	out, closeOut, err := openOutput(config.Output)
	if err != nil {
		return err
	}
	defer closeOut()

	if config.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for _, row := range results {
		for i, col := range columns {
			if i > 0 {
				fmt.Fprint(out, "\t")
			}
			fmt.Fprintf(out, "%v", row[col])
		}
		fmt.Fprintln(out)
	}
	if len(columns) == 0 {
		fmt.Fprintln(out, tag.String())
	}
	return nil
}
