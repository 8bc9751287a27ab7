package store

import (
	"context"
	"time"

	"github.com/huangsam/rolodex/internal/contract"
	"github.com/huangsam/rolodex/schema"
	"github.com/stretchr/testify/mock"
)

// MockContactStore is a mock implementation of ContactStore for testing.
type MockContactStore struct {
	mock.Mock
}

var _ contract.ContactStore = &MockContactStore{} // Compile-time check

// Find implements the ContactStore interface.
func (m *MockContactStore) Find(ctx context.Context, name string) (*schema.Contact, error) {
	args := m.Called(ctx, name)
	c, _ := args.Get(0).(*schema.Contact)
	return c, args.Error(1)
}

// All implements the ContactStore interface.
func (m *MockContactStore) All(ctx context.Context) ([]schema.Contact, error) {
	args := m.Called(ctx)
	cs, _ := args.Get(0).([]schema.Contact)
	return cs, args.Error(1)
}

// Upsert implements the ContactStore interface.
func (m *MockContactStore) Upsert(ctx context.Context, name string, phones []string, birthday *time.Time) (bool, error) {
	args := m.Called(ctx, name, phones, birthday)
	return args.Bool(0), args.Error(1)
}

// ReplacePhone implements the ContactStore interface.
func (m *MockContactStore) ReplacePhone(ctx context.Context, name, oldPhone, newPhone string) error {
	args := m.Called(ctx, name, oldPhone, newPhone)
	return args.Error(0)
}

// RemovePhone implements the ContactStore interface.
func (m *MockContactStore) RemovePhone(ctx context.Context, name, phone string) error {
	args := m.Called(ctx, name, phone)
	return args.Error(0)
}

// Delete implements the ContactStore interface.
func (m *MockContactStore) Delete(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

// Close implements the ContactStore interface.
func (m *MockContactStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
