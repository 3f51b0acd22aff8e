// Package apperr defines the domain error kinds shared by repositories,
// services and handlers. Repositories wrap every persistence failure into an
// Access error so raw database errors never reach the HTTP layer; services
// raise NotFound/Conflict/InvalidState; handlers translate kinds to statuses.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindNotFound Kind = iota
	KindConflict
	KindInvalidState
	KindUnauthorized
	KindAccess
)

type Error struct {
	Kind    Kind
	Message string
	// Err keeps the underlying cause (database error) for logs only.
	Err error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// NotFound reports a missing entity, e.g. "User id '3' not found."
func NotFound(entity string, id any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s id '%v' not found.", entity, id)}
}

// NotFoundMsg reports a missing association or lookup with a custom message.
func NotFoundMsg(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict reports a uniqueness violation (duplicate email, duplicate association).
func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// InvalidState reports a business-rule violation such as removing a user's last role.
func InvalidState(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidState, Message: fmt.Sprintf(format, args...)}
}

// Unauthorized reports a failed identity or role check.
func Unauthorized() *Error {
	return &Error{Kind: KindUnauthorized, Message: "Unauthorized request."}
}

// Access wraps any persistence failure with the entity and the attempted
// operation ("getting", "creating", "updating", "deleting"). The id may be nil
// for list or insert operations.
func Access(entity string, id any, op string, err error) *Error {
	msg := fmt.Sprintf("Error while %s %s.", op, entity)
	if id != nil {
		msg = fmt.Sprintf("Error while %s %s id '%v'.", op, entity, id)
	}
	return &Error{Kind: KindAccess, Message: msg, Err: err}
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Status maps a domain error to its HTTP status code. Unknown errors map to 500.
func Status(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict, KindInvalidState:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
