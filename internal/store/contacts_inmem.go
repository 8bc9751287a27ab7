package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/huangsam/rolodex/internal/contract"
	"github.com/huangsam/rolodex/schema"
)

// ContactsInmem implements [contract.ContactStore] with a map and an order slice.
type ContactsInmem struct {
	mu       sync.Mutex
	index    map[string]*schema.Contact
	contacts []*schema.Contact
}

var _ contract.ContactStore = (*ContactsInmem)(nil)

// NewContactsInmem returns a store seeded with cs.
func NewContactsInmem(cs ...schema.Contact) *ContactsInmem {
	s := &ContactsInmem{index: make(map[string]*schema.Contact, len(cs))}
	for _, c := range cs {
		c := c.Clone()
		s.index[c.Name] = &c
		s.contacts = append(s.contacts, &c)
	}
	return s
}

func (s *ContactsInmem) Find(_ context.Context, name string) (*schema.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.index[name]
	if !ok {
		return nil, &contract.NotFoundError{Name: name}
	}
	clone := c.Clone()
	return &clone, nil
}

func (s *ContactsInmem) All(_ context.Context) ([]schema.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]schema.Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		out = append(out, c.Clone())
	}
	return out, nil
}

func (s *ContactsInmem) Upsert(_ context.Context, name string, phones []string, birthday *time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.index[name]
	var existing []string
	if ok {
		existing = c.Phones
	}
	if err := checkPhones(name, existing, phones); err != nil {
		return false, err
	}
	if !ok {
		c = &schema.Contact{Name: name}
		s.index[name] = c
		s.contacts = append(s.contacts, c)
	}
	c.Phones = append(c.Phones, phones...)
	if birthday != nil {
		b := schema.CivilDate(*birthday)
		c.Birthday = &b
	}
	return !ok, nil
}

func (s *ContactsInmem) ReplacePhone(_ context.Context, name, oldPhone, newPhone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.index[name]
	if !ok {
		return &contract.NotFoundError{Name: name}
	}
	i := slices.Index(c.Phones, oldPhone)
	if i < 0 {
		return &contract.NotFoundError{Name: name, Phone: oldPhone}
	}
	if c.HasPhone(newPhone) {
		return &contract.DuplicateError{Name: name, Phone: newPhone}
	}
	c.Phones[i] = newPhone
	return nil
}

func (s *ContactsInmem) RemovePhone(_ context.Context, name, phone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.index[name]
	if !ok {
		return &contract.NotFoundError{Name: name}
	}
	i := slices.Index(c.Phones, phone)
	if i < 0 {
		return &contract.NotFoundError{Name: name, Phone: phone}
	}
	c.Phones = slices.Delete(c.Phones, i, i+1)
	return nil
}

func (s *ContactsInmem) Delete(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.index[name]
	if !ok {
		return nil
	}
	delete(s.index, name)
	s.contacts = slices.DeleteFunc(s.contacts, func(x *schema.Contact) bool { return x == c })
	return nil
}

// Close is a no-op for the in-memory store.
func (s *ContactsInmem) Close() error { return nil }
