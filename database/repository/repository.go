package repository

import "errors"

// ErrNotFound is returned by every repository when a document or embedded
// order unit does not match the given keys. Services wrap it with the store
// that failed.
var ErrNotFound = errors.New("not found")
