package contract

import "errors"

var (
	// ErrNotFound is returned by write paths that require an existing record
	// (delete, toggle). Read paths return nil instead.
	ErrNotFound = errors.New("record not found")

	// ErrEmailTaken is returned by UserStore.Create on a duplicate email.
	ErrEmailTaken = errors.New("email already registered")
)
