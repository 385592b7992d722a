// Package pgnamed rewrites SQL templates with named $name placeholders into
// the positional $1..$N form PostgreSQL expects, together with the bind
// values ordered to match.
//
// A template names its arguments instead of numbering them:
//
//	sql, values, err := pgnamed.Rewrite(
//		`SELECT location, time, report
//		 FROM weather_reports
//		 WHERE location = $location AND time BETWEEN $start AND $end`,
//		pgnamed.Args{
//			{Name: "location", Value: "NL"},
//			{Name: "start", Value: 2020},
//			{Name: "end", Value: 2030},
//		})
//
// Repeated references to the same name share one position, so a value is
// bound exactly once no matter how often it appears.
//
// For INSERT statements, the $[a, b, c] form declares a column list once and
// $[..] expands to the matching positional placeholders, keeping columns and
// values aligned:
//
//	sql, values, err := pgnamed.Rewrite(
//		`INSERT INTO weather_reports ($[location, time, report]) VALUES ($[..])`,
//		pgnamed.Args{
//			{Name: "location", Value: "SE"},
//			{Name: "time", Value: "monday"},
//			{Name: "report", Value: "sunny"},
//		})
//	// INSERT INTO weather_reports (location, time, report) VALUES ($1, $2, $3)
//
// Content inside string literals, quoted identifiers, dollar-quoted strings,
// and comments is never scanned for placeholders.
//
// Every reference must be backed by exactly one provided argument and every
// provided argument must be referenced; violations fail before any SQL is
// produced, with typed errors naming the argument and, where derivable, its
// offset in the template.
//
// Partial templates can be built separately and spliced into a host template
// with ${name} references (see Fragment), and the Exec/Query/QueryRow
// helpers rewrite and execute in one step against any pgx connection, pool,
// or transaction.
package pgnamed
