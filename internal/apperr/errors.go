// Package apperr classifies failures so that one place can turn them into HTTP responses.
package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindNotFound
	KindConflict
)

// Status maps a Kind to its HTTP status code.
func (k Kind) Status() int {
	switch k {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Error is a classified failure. Msg is safe to show to clients, Err is not.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func BadRequest(msg string) *Error {
	return &Error{Kind: KindBadRequest, Msg: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Msg: msg}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Msg: "Internal server error", Err: err}
}

// postgres SQLSTATE codes the API knows how to explain to a client.
var pgCodes = map[string]struct {
	kind Kind
	msg  string
}{
	"22P02": {KindBadRequest, "Bad request"}, // invalid_text_representation
	"22003": {KindBadRequest, "Bad request"}, // numeric_value_out_of_range
	"23502": {KindBadRequest, "Bad request"}, // not_null_violation
	"23503": {KindBadRequest, "Bad request"}, // foreign_key_violation
	"23505": {KindConflict, "Already exists"}, // unique_violation
}

// FromStorage classifies err. Already classified errors pass through untouched,
// recognised postgres codes become client errors and anything else is Internal.
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
		if known, ok := pgCodes[pgErr.Code]; ok {
			return &Error{Kind: known.kind, Msg: known.msg, Err: err}
		}
	}
	return Internal(err)
}

// KindOf reports the Kind of err, KindInternal for unclassified errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// Is reports whether err carries kind k.
func Is(err error, k Kind) bool {
	return err != nil && KindOf(err) == k
}
