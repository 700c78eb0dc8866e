package api

import (
	"errors"
	"fmt"
)

// Kind classifies every failure the client can surface. Callers branch on
// the kind, never on transport details.
type Kind string

const (
	KindUnauthenticated Kind = "unauthenticated"
	KindInvalidDraft    Kind = "invalid_draft"
	KindNetworkFailure  Kind = "network_failure"
	KindServerError     Kind = "server_error"
	KindUnknownFailure  Kind = "unknown_failure"
)

type Error struct {
	Kind    Kind
	Message string
	Code    string // server-supplied error code, when available
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// KindOf extracts the failure kind from any error. Errors that did not
// originate in this client collapse to KindUnknownFailure.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindUnknownFailure
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
