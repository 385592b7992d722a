// Package errors holds the command-line side error types. The library's own
// template errors live in the root package next to the API they describe.
package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// ConnectionError represents PostgreSQL connection failure
type ConnectionError struct {
	Message    string
	Suggestion string
}

func (e *ConnectionError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s. Suggestion: %s", e.Message, e.Suggestion)
	}
	return e.Message
}

// NewConnectionError creates a new ConnectionError
func NewConnectionError(message, suggestion string) *ConnectionError {
	return &ConnectionError{
		Message:    message,
		Suggestion: suggestion,
	}
}

// QueryError represents rewritten-query execution failure
type QueryError struct {
	SQL      string
	SQLError *pgconn.PgError // PostgreSQL error details, if any
	Err      error
}

func (e *QueryError) Error() string {
	if e.SQLError != nil {
		return fmt.Sprintf("query failed: [%s] %s", e.SQLError.Code, e.SQLError.Message)
	}
	return fmt.Sprintf("query failed: %v", e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// NewQueryError creates a new QueryError, extracting PostgreSQL error
// details when present
func NewQueryError(sql string, err error) *QueryError {
	qe := &QueryError{SQL: sql, Err: err}
	var pgErr *pgconn.PgError
	if stderrors.As(err, &pgErr) {
		qe.SQLError = pgErr
	}
	return qe
}
