package shared

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies an error for callers that need to distinguish failure
// modes without matching on sentinel identity.
type Kind string

const (
	KindMissingParameter Kind = "missing_parameter"
	KindAuthRequired     Kind = "auth_required"
	KindForbidden        Kind = "forbidden"
	KindNotFound         Kind = "not_found"
	KindConflict         Kind = "conflict"
	KindServerError      Kind = "server_error"
	KindUnexpected       Kind = "unexpected"
)

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict indicates a natural-key collision on create.
	ErrConflict = errors.New("conflict")
	// ErrForbidden indicates the upstream rejected the caller's permissions.
	ErrForbidden = errors.New("forbidden")
	// ErrAuthRequired indicates missing or expired credentials.
	ErrAuthRequired = errors.New("authentication required")
)

// MissingParameterError reports every missing required field at once so a
// caller can surface all problems in a single pass.
type MissingParameterError struct {
	Fields []string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing required parameters: %s", strings.Join(e.Fields, ", "))
}

// TransportError wraps a failed upstream call. Kind is advisory metadata;
// the error still propagates (or triggers fallback) regardless of it.
type TransportError struct {
	Op     string
	Path   string
	Status int
	Kind   Kind
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s %s: upstream status %d (%s)", e.Op, e.Path, e.Status, e.Kind)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ClassifyStatus maps an upstream HTTP status to an error Kind.
func ClassifyStatus(status int) Kind {
	switch {
	case status == 401:
		return KindAuthRequired
	case status == 403:
		return KindForbidden
	case status == 404:
		return KindNotFound
	case status >= 500:
		return KindServerError
	default:
		return KindUnexpected
	}
}

// ClassifyError reports the Kind for any error produced by this layer.
func ClassifyError(err error) Kind {
	var missing *MissingParameterError
	var transport *TransportError
	switch {
	case errors.As(err, &missing):
		return KindMissingParameter
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	case errors.Is(err, ErrAuthRequired):
		return KindAuthRequired
	case errors.As(err, &transport):
		return transport.Kind
	default:
		return KindUnexpected
	}
}
