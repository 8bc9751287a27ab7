// Package schema has models, constants and formatting helpers shared by all parts of rolodex.
package schema

import "time"

// Contact is a named entry in the address book.
// Name is the unique key; Phones keeps insertion order; Birthday is optional.
type Contact struct {
	Name     string     `json:"name"`
	Phones   []string   `json:"phones"`
	Birthday *time.Time `json:"birthday,omitempty"`
}

// Clone returns a deep copy of the contact so callers cannot mutate store state.
func (c Contact) Clone() Contact {
	clone := Contact{Name: c.Name}
	if c.Phones != nil {
		clone.Phones = make([]string, len(c.Phones))
		copy(clone.Phones, c.Phones)
	}
	if c.Birthday != nil {
		b := *c.Birthday
		clone.Birthday = &b
	}
	return clone
}

// HasPhone reports whether the contact already owns the phone number.
func (c Contact) HasPhone(phone string) bool {
	for _, p := range c.Phones {
		if p == phone {
			return true
		}
	}
	return false
}

// Upcoming pairs a contact with the day its birthday should be celebrated.
type Upcoming struct {
	Name       string    `json:"name"`
	Birthday   time.Time `json:"birthday"`    // Birthday in the window year (Feb 29 falls back to Mar 1)
	NotifyDate time.Time `json:"notify_date"` // Birthday shifted off the weekend
}

// BirthdayGroup is a set of names sharing a notification date.
type BirthdayGroup struct {
	Date  time.Time `json:"date"`
	Names []string  `json:"names"`
}
