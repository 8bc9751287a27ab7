// Package store holds the ContactStore backends.
package store

import (
	"context"
	"fmt"

	"github.com/huangsam/rolodex/internal/contract"
	"github.com/huangsam/rolodex/schema"
)

// New returns a ContactStore for the given backend.
func New(ctx context.Context, backend schema.StoreBackend) (contract.ContactStore, error) {
	switch backend {
	case schema.MemoryBackend, "":
		return NewContactsInmem(), nil
	case schema.SQLiteBackend:
		s, err := NewContactsSQLite(ctx)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported store backend: %s. Must be memory or sqlite", backend)
	}
}

// checkPhones rejects a phone list that repeats a number or collides with existing.
func checkPhones(name string, existing, phones []string) error {
	seen := make(map[string]struct{}, len(existing)+len(phones))
	for _, p := range existing {
		seen[p] = struct{}{}
	}
	for _, p := range phones {
		if _, ok := seen[p]; ok {
			return &contract.DuplicateError{Name: name, Phone: p}
		}
		seen[p] = struct{}{}
	}
	return nil
}
