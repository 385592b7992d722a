package pgnamed

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of the pgx query interface the execution helpers
// need. *pgx.Conn, pgx.Tx, and *pgxpool.Pool all satisfy it.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Exec rewrites the template with the named arguments and executes it.
func Exec(ctx context.Context, db Querier, template string, args Args) (pgconn.CommandTag, error) {
	sql, values, err := Rewrite(template, args)
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	return db.Exec(ctx, sql, values...)
}

// Query rewrites the template with the named arguments and runs the query.
func Query(ctx context.Context, db Querier, template string, args Args) (pgx.Rows, error) {
	sql, values, err := Rewrite(template, args)
	if err != nil {
		return nil, err
	}
	return db.Query(ctx, sql, values...)
}

// QueryRow rewrites the template with the named arguments and runs the
// single-row query. Unlike pgx's QueryRow, rewrite failures are returned
// eagerly instead of being deferred to Scan.
func QueryRow(ctx context.Context, db Querier, template string, args Args) (pgx.Row, error) {
	sql, values, err := Rewrite(template, args)
	if err != nil {
		return nil, err
	}
	return db.QueryRow(ctx, sql, values...), nil
}
