// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/huangsam/rolodex/schema"
)

// ContactStore defines the operations on the address book.
// This allows the dispatcher to be tested without a concrete backend.
type ContactStore interface {
	// --- Lookup ---

	// Find returns a copy of the named contact or a *NotFoundError.
	Find(ctx context.Context, name string) (*schema.Contact, error)

	// All returns copies of every contact in insertion order.
	All(ctx context.Context) ([]schema.Contact, error)

	// --- Mutation ---

	// Upsert creates the contact when it is unknown, then appends phones and sets
	// the birthday when given. It reports whether the contact was created.
	Upsert(ctx context.Context, name string, phones []string, birthday *time.Time) (bool, error)

	// ReplacePhone swaps the first occurrence of oldPhone with newPhone.
	ReplacePhone(ctx context.Context, name, oldPhone, newPhone string) error

	// RemovePhone drops a phone from the contact.
	RemovePhone(ctx context.Context, name, phone string) error

	// Delete removes the contact. Deleting an unknown name is not an error.
	Delete(ctx context.Context, name string) error

	// Close releases backend resources.
	Close() error
}

// Clock returns the current calendar date.
type Clock func() time.Time

// SystemClock reads today's date from the wall clock in local time.
func SystemClock() time.Time {
	return schema.CivilDate(time.Now())
}

// FixedClock always returns the same calendar date.
func FixedClock(day time.Time) Clock {
	day = schema.CivilDate(day)
	return func() time.Time { return day }
}
