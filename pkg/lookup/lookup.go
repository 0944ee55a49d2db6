// Package lookup holds the result type of single-record reads. It keeps
// "no such record" apart from "the store could not be asked".
package lookup

import (
	"database/sql"
	"errors"
)

type Kind uint8

const (
	NotFound Kind = iota
	Found
	StoreUnavailable
)

func (k Kind) String() string {
	switch k {
	case Found:
		return "found"
	case NotFound:
		return "not found"
	case StoreUnavailable:
		return "store unavailable"
	default:
		return "unknown"
	}
}

type Result[T any] struct {
	kind  Kind
	value T
	err   error
}

func Of[T any](v T) Result[T] {
	return Result[T]{kind: Found, value: v}
}

func Missing[T any]() Result[T] {
	return Result[T]{kind: NotFound}
}

func Unavailable[T any](cause error) Result[T] {
	return Result[T]{kind: StoreUnavailable, err: cause}
}

// FromQuery maps the outcome of a single-row query: sql.ErrNoRows is NotFound,
// any other error is StoreUnavailable.
func FromQuery[T any](v T, err error) Result[T] {
	switch {
	case err == nil:
		return Of(v)
	case errors.Is(err, sql.ErrNoRows):
		return Missing[T]()
	default:
		return Unavailable[T](err)
	}
}

func (r Result[T]) Kind() Kind { return r.kind }

func (r Result[T]) Get() (T, bool) {
	return r.value, r.kind == Found
}

// Err is the store fault behind a StoreUnavailable result, nil otherwise.
func (r Result[T]) Err() error { return r.err }
