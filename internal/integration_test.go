package integration_test

import (
	"context"
	"testing"

	"github.com/cybertec-postgresql/pgnamed"
	"github.com/cybertec-postgresql/pgnamed/internal/testutil"
)

// TestRewriteAgainstPostgres executes rewritten templates against a real
// PostgreSQL instance: the positional SQL must be accepted by the server and
// the ordered values must land in the right columns.
func TestRewriteAgainstPostgres(t *testing.T) {
	pool := testutil.SetupPostgresPool(t)
	ctx := context.Background()

	if _, err := pool.Exec(ctx, `CREATE TABLE weather_reports (
		location    text NOT NULL,
		temperature double precision NOT NULL,
		humidity    int NOT NULL
	)`); err != nil {
		t.Fatalf("Failed to create table: %v", err)
	}

	t.Run("InsertWithColumnExpansion", func(t *testing.T) {
		tag, err := pgnamed.Exec(ctx, pool,
			"INSERT INTO weather_reports ($[location, temperature, humidity]) VALUES ($[..])",
			pgnamed.Args{
				{Name: "location", Value: "Berlin"},
				{Name: "temperature", Value: 21.5},
				{Name: "humidity", Value: 60},
			})
		if err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
		if tag.RowsAffected() != 1 {
			t.Errorf("expected 1 row affected, got %d", tag.RowsAffected())
		}
	})

	t.Run("SelectWithRepeatedName", func(t *testing.T) {
		row, err := pgnamed.QueryRow(ctx, pool,
			"SELECT temperature FROM weather_reports WHERE location = $location AND humidity BETWEEN $hum AND $hum",
			pgnamed.Args{
				{Name: "location", Value: "Berlin"},
				{Name: "hum", Value: 60},
			})
		if err != nil {
			t.Fatalf("Query failed: %v", err)
		}
		var temperature float64
		if err := row.Scan(&temperature); err != nil {
			t.Fatalf("Scan failed: %v", err)
		}
		if temperature != 21.5 {
			t.Errorf("expected temperature 21.5, got %v", temperature)
		}
	})

	t.Run("QuotedTextStaysOpaque", func(t *testing.T) {
		// The $-signs inside the literal must reach the server untouched.
		row, err := pgnamed.QueryRow(ctx, pool,
			"SELECT '$not_a_param' || $suffix",
			pgnamed.Args{{Name: "suffix", Value: "!"}})
		if err != nil {
			t.Fatalf("Query failed: %v", err)
		}
		var got string
		if err := row.Scan(&got); err != nil {
			t.Fatalf("Scan failed: %v", err)
		}
		if got != "$not_a_param!" {
			t.Errorf("expected '$not_a_param!', got %q", got)
		}
	})

	t.Run("QueryWithFragments", func(t *testing.T) {
		where := pgnamed.MustParseFragment(
			"WHERE location = $location", pgnamed.Named("location", "Berlin"))
		sql, values, err := pgnamed.RewriteWithFragments(
			"SELECT count(*) FROM weather_reports ${where}",
			nil, pgnamed.Fragments{"where": where})
		if err != nil {
			t.Fatalf("Rewrite failed: %v", err)
		}
		var count int
		if err := pool.QueryRow(ctx, sql, values...).Scan(&count); err != nil {
			t.Fatalf("Query failed: %v", err)
		}
		if count != 1 {
			t.Errorf("expected 1 row, got %d", count)
		}
	})
}
