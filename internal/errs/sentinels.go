// Package errs contains sentinel errors shared by the repository and service layers.
package errs

import "errors"

var (
	// ErrNotFound indicates no document matches the identifier.
	ErrNotFound = errors.New("not found")

	// ErrInvalidID indicates the identifier cannot be parsed into the store's id type.
	ErrInvalidID = errors.New("invalid id")
)
