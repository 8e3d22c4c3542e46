// Package store defines the document-store client capability the
// reconciliation core consumes, together with its error taxonomy. The core
// never talks to a concrete database directly; a Client is injected.
package store

import (
	"errors"
	"fmt"
)

// ErrorKind classifies store failures the way the fallback layer needs to
// distinguish them. Anything else a driver produces is mapped onto one of
// these by the client implementation.
type ErrorKind string

const (
	// KindPermissionDenied means the acting principal cannot read the
	// collection. Non-fatal; the fallback layer moves to the next candidate.
	KindPermissionDenied ErrorKind = "permission_denied"
	// KindNotFound means a directly referenced document does not exist.
	KindNotFound ErrorKind = "not_found"
	// KindUnavailable means a transient store failure. No retry happens at
	// this layer; retry/backoff belongs to the client.
	KindUnavailable ErrorKind = "unavailable"
)

// Error is the single error type store clients return.
type Error struct {
	Kind       ErrorKind
	Collection string
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e.Collection != "" {
		return fmt.Sprintf("store error (%s) on %s: %s", e.Kind, e.Collection, e.Message)
	}
	return fmt.Sprintf("store error (%s): %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError builds a store error for the given kind and collection.
func NewError(kind ErrorKind, collection, message string) *Error {
	return &Error{Kind: kind, Collection: collection, Message: message}
}

// KindOf extracts the ErrorKind from err, or "" when err is not a store
// error.
func KindOf(err error) ErrorKind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return ""
}

// IsNotFound reports whether err is a store NotFound error.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsFallthrough reports whether err should make the fallback layer continue
// with the next candidate rather than abort.
func IsFallthrough(err error) bool {
	k := KindOf(err)
	return k == KindPermissionDenied || k == KindUnavailable
}
