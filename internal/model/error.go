package model

import (
	"errors"
	"fmt"
)

var (
	ErrBottleNotFound   = errors.New("bottle not found")
	ErrLocationNotFound = errors.New("location not found")
	ErrInvalidArgument  = errors.New("invalid argument")

	// ErrInsufficientQuantity is returned when a transition requests more
	// units than the source counter holds. Wrapped by
	// InsufficientQuantityError, which carries the amounts.
	ErrInsufficientQuantity = errors.New("insufficient quantity")

	// ErrInvalidTransition is returned for an undefined stage pair,
	// a non-positive quantity, or missing required payload.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrSerialization is returned when an update payload cannot be
	// represented by the document store. Treated as a local bug signal.
	ErrSerialization = errors.New("payload not serializable")

	// ErrPersistenceUnavailable is returned when the document store is
	// unreachable. No retry is performed inside the core.
	ErrPersistenceUnavailable = errors.New("persistence unavailable")
)

// InsufficientQuantityError reports how far a transition overdrew its
// source counter.
type InsufficientQuantityError struct {
	Stage     Stage
	Requested int64
	Available int64
}

func (e *InsufficientQuantityError) Error() string {
	return fmt.Sprintf("insufficient quantity in %s: requested %d, available %d",
		e.Stage, e.Requested, e.Available)
}

func (e *InsufficientQuantityError) Unwrap() error { return ErrInsufficientQuantity }

// InvalidTransitionError reports a transition the ledger does not define.
type InvalidTransitionError struct {
	From   *Stage
	To     Stage
	Reason string
}

func (e *InvalidTransitionError) Error() string {
	from := "none"
	if e.From != nil {
		from = string(*e.From)
	}
	return fmt.Sprintf("invalid transition %s -> %s: %s", from, e.To, e.Reason)
}

func (e *InvalidTransitionError) Unwrap() error { return ErrInvalidTransition }
