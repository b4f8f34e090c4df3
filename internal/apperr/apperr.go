// Package apperr defines the error taxonomy shared by the store and the HTTP
// layer, and the mapping from storage failures into that taxonomy.
package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

// Kind discriminates failure classes so the HTTP layer can pick a status code
// without inspecting storage internals.
type Kind int

const (
	// KindInternal covers everything not otherwise classified. The client
	// message is always generic; detail stays in the server logs.
	KindInternal Kind = iota
	// KindBadRequest covers malformed ids, invalid query parameter
	// combinations, and wrong payload shapes.
	KindBadRequest
	// KindNotFound covers path-addressed entities that do not exist.
	KindNotFound
	// KindUnprocessable covers well-formed requests whose referenced
	// entities do not exist (e.g. creating an article against a missing
	// topic).
	KindUnprocessable
	// KindConflict covers uniqueness violations on create.
	KindConflict
	// KindStorageUnavailable covers missing schema or database.
	KindStorageUnavailable
)

// Error carries a Kind, a client-safe message, and an optional wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New creates an error of the given kind with a client-safe message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// BadRequest creates a KindBadRequest error.
func BadRequest(message string) *Error { return New(KindBadRequest, message) }

// NotFound creates a KindNotFound error.
func NotFound(message string) *Error { return New(KindNotFound, message) }

// Unprocessable creates a KindUnprocessable error.
func Unprocessable(message string) *Error { return New(KindUnprocessable, message) }

// Conflict creates a KindConflict error.
func Conflict(message string) *Error { return New(KindConflict, message) }

// KindOf extracts the Kind from err, defaulting to KindInternal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// ClientMessage returns the message safe to surface to clients. Internal and
// storage failures always collapse to a generic message.
func ClientMessage(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case KindInternal:
			return "Internal error"
		case KindStorageUnavailable:
			return "Database error"
		default:
			return appErr.Message
		}
	}
	return "Internal error"
}

// HTTPStatus maps a Kind to its response status code.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnprocessable:
		return http.StatusUnprocessableEntity
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// PostgreSQL SQLSTATE codes the store discriminates on.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgUndefinedTable      = "42P01"
	pgInvalidCatalogName  = "3D000"
)

// FromStorage classifies a driver-reported failure. Constraint violations map
// to Conflict/Unprocessable, missing schema to StorageUnavailable, any other
// SQLSTATE-carrying error to BadRequest, and everything else to Internal.
func FromStorage(err error) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return &Error{Kind: KindConflict, Message: constraintDetailMessage(pgErr, "already exists"), Err: err}
		case pgForeignKeyViolation:
			return &Error{Kind: KindUnprocessable, Message: constraintDetailMessage(pgErr, "cannot be processed"), Err: err}
		case pgUndefinedTable, pgInvalidCatalogName:
			return &Error{Kind: KindStorageUnavailable, Message: "Database error", Err: err}
		default:
			return &Error{Kind: KindBadRequest, Message: "Bad request", Err: err}
		}
	}

	return &Error{Kind: KindInternal, Message: "Internal error", Err: err}
}

// constraintDetailMessage builds "<value> already exists" style messages from
// the constraint detail, e.g. `Key (slug)=(mitch) already exists.`.
func constraintDetailMessage(pgErr *pgconn.PgError, suffix string) string {
	if value := detailValue(pgErr.Detail); value != "" {
		return value + " " + suffix
	}
	return "value " + suffix
}

func detailValue(detail string) string {
	// Detail format: Key (col)=(value) ...
	start := -1
	for i := 0; i < len(detail)-1; i++ {
		if detail[i] == '=' && detail[i+1] == '(' {
			start = i + 2
			break
		}
	}
	if start < 0 {
		return ""
	}
	end := start
	for end < len(detail) && detail[end] != ')' {
		end++
	}
	if end >= len(detail) {
		return ""
	}
	return detail[start:end]
}
