// peopledatalabs - Go client for the People Data Labs API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peopledatalabs

package peopledatalabs

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for matching with errors.Is. Every error returned by an
// operation matches exactly one of the first five.
var (
	ErrValidation      = errors.New("invalid parameters")
	ErrSerialization   = errors.New("serialization failed")
	ErrNetwork         = errors.New("network error")
	ErrHTTP            = errors.New("unexpected HTTP status")
	ErrDeserialization = errors.New("deserialization failed")

	// ErrNotFound matches an *HTTPError with status 404.
	ErrNotFound = errors.New("not found")

	// ErrCircuitOpen is wrapped in a *NetworkError when the circuit breaker
	// rejects a call without sending it.
	ErrCircuitOpen = errors.New("circuit breaker open")
)

// ValidationError reports a request rejected locally. No request was sent.
type ValidationError struct {
	Op     string
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %v: %s: %s", e.Op, ErrValidation, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: %v: %s", e.Op, ErrValidation, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
func (e *ValidationError) Unwrap() error        { return e.Err }

// SerializationError reports parameters that could not be encoded.
type SerializationError struct {
	Op  string
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Op, ErrSerialization, e.Err)
}

func (e *SerializationError) Is(target error) bool { return target == ErrSerialization }
func (e *SerializationError) Unwrap() error        { return e.Err }

// NetworkError reports a transport failure: DNS, TLS, connection, timeout,
// cancellation, or a rejection by the circuit breaker.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Op, ErrNetwork, e.Err)
}

func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }
func (e *NetworkError) Unwrap() error        { return e.Err }

// HTTPError reports a non-200 response. Type and Message are taken from the
// service's error body when it has one; Body holds at most 64KB of the raw body.
type HTTPError struct {
	Op         string
	StatusCode int
	Type       []string
	Message    string
	Body       []byte
}

func (e *HTTPError) Error() string {
	msg := fmt.Sprintf("%s: %v: %d %s", e.Op, ErrHTTP, e.StatusCode, http.StatusText(e.StatusCode))
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

func (e *HTTPError) Is(target error) bool {
	switch target {
	case ErrHTTP:
		return true
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// DeserializationError reports a 200 body that did not match the response type.
type DeserializationError struct {
	Op  string
	Err error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Op, ErrDeserialization, e.Err)
}

func (e *DeserializationError) Is(target error) bool { return target == ErrDeserialization }
func (e *DeserializationError) Unwrap() error        { return e.Err }

// StatusCode returns the HTTP status carried by err, or 0 if err is not an *HTTPError.
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}

// errorKind names the kind of err for metrics and logs.
func errorKind(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrSerialization):
		return "serialization"
	case errors.Is(err, ErrNetwork):
		return "network"
	case errors.Is(err, ErrHTTP):
		return "http"
	case errors.Is(err, ErrDeserialization):
		return "deserialization"
	default:
		return "unknown"
	}
}
