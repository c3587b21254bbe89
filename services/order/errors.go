package order

import (
	"errors"
	"fmt"

	"servicehub/database/repository"
)

// Store names, in the canonical write order of a transition.
const (
	StoreProvider = "provider"
	StoreUser     = "user"
	StoreOrder    = "order"
	StoreAdmin    = "admin"
)

// ValidationError reports bad or missing input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError reports a missing user, provider or admin entity.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %s not found", e.Resource, e.Key)
}

// OrderNotFoundError reports that one of the four stores held no order unit
// matching the correlation key. Earlier stores in the sequence may already
// have been updated; there is no rollback.
type OrderNotFoundError struct {
	Store string
}

func (e *OrderNotFoundError) Error() string {
	return fmt.Sprintf("order not found in %s store", e.Store)
}

// storeErr converts a repository miss into the per-store order error, leaving
// other failures untouched.
func storeErr(err error, store string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return &OrderNotFoundError{Store: store}
	}
	return err
}

// entityErr converts a repository miss into a NotFoundError for a whole
// entity lookup.
func entityErr(err error, resource, key string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return &NotFoundError{Resource: resource, Key: key}
	}
	return err
}
