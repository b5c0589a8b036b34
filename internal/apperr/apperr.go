// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package apperr defines the application error taxonomy. Every failure
// surfaced to the dashboard falls into one of four kinds: bad input caught
// before any remote call, a rejected read or write against the document
// store, or a failed blob transfer. None are retried automatically.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for HTTP mapping and operator triage.
type Kind int

const (
	KindValidation Kind = iota // bad input, no remote call was made
	KindStoreRead              // document store read rejected or timed out
	KindStoreWrite             // document store write rejected or timed out
	KindUpload                 // blob store transfer failed
)

// String returns the taxonomy name of the kind.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindStoreRead:
		return "store_read"
	case KindStoreWrite:
		return "store_write"
	case KindUpload:
		return "upload"
	}
	return "unknown"
}

// Error is a classified application error. Msg is safe to show to staff;
// Err carries the wrapped cause, if any.
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

func (e *Error) Unwrap() error { return e.Err }

// Validation builds a validation error. Callers raise these before making
// any remote call, so state is guaranteed untouched.
func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

// StoreRead wraps a failed document store read.
func StoreRead(msg string, err error) *Error {
	return &Error{Kind: KindStoreRead, Msg: msg, Err: err}
}

// StoreWrite wraps a failed document store write.
func StoreWrite(msg string, err error) *Error {
	return &Error{Kind: KindStoreWrite, Msg: msg, Err: err}
}

// Upload wraps a failed blob store transfer.
func Upload(msg string, err error) *Error {
	return &Error{Kind: KindUpload, Msg: msg, Err: err}
}

// KindOf extracts the kind of err, or (0, false) if err is not an *Error.
func KindOf(err error) (Kind, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind, true
	}
	return 0, false
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindValidation
}
