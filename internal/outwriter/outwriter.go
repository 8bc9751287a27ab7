// Package outwriter has output and writer logic.
package outwriter

import (
	"io"
	"time"

	"github.com/huangsam/rolodex/internal/contract"
	"github.com/huangsam/rolodex/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the dispatcher.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteContacts renders the contact listing using the configured output format.
func (ow *OutWriter) WriteContacts(w io.Writer, contacts []schema.Contact, cfg *contract.Config, today time.Time) error {
	return PrintContacts(w, contacts, cfg, today)
}

// WriteBirthdays renders grouped upcoming birthdays using the configured output format.
func (ow *OutWriter) WriteBirthdays(w io.Writer, groups []schema.BirthdayGroup, cfg *contract.Config) error {
	return PrintBirthdays(w, groups, cfg)
}

// Export writes every contact to path in the configured export format.
func (ow *OutWriter) Export(contacts []schema.Contact, cfg *contract.Config, today time.Time, path string) (string, error) {
	return ExportContacts(contacts, cfg, today, path)
}
