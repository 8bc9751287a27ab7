// Package parquet exports contacts to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/rolodex/schema"
	"github.com/parquet-go/parquet-go"
)

// ContactRow is the flattened Parquet representation of a contact.
type ContactRow struct {
	// Name is the contact's unique key
	Name string `parquet:"name,snappy"`

	// Phones keeps the contact's phone numbers in insertion order
	Phones []string `parquet:"phones,list"`

	// Birthday is the ISO date of birth (nullable)
	Birthday *string `parquet:"birthday,optional,snappy"`

	// DaysUntilBirthday counts days from the export date to the next birthday, -1 when unknown
	DaysUntilBirthday int32 `parquet:"days_until_birthday,snappy"`
}

// ContactRows converts contacts into Parquet rows relative to today.
// daysUntil is injected so the caller decides how the next birthday is computed.
func ContactRows(contacts []schema.Contact, daysUntil func(*time.Time) int) []ContactRow {
	rows := make([]ContactRow, 0, len(contacts))
	for _, c := range contacts {
		row := ContactRow{
			Name:              c.Name,
			Phones:            append([]string{}, c.Phones...),
			DaysUntilBirthday: int32(daysUntil(c.Birthday)),
		}
		if c.Birthday != nil {
			b := c.Birthday.Format(time.DateOnly)
			row.Birthday = &b
		}
		rows = append(rows, row)
	}
	return rows
}

// WriteContactsParquet writes a slice of ContactRow structs to a Parquet file.
func WriteContactsParquet(data []ContactRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the ContactRow struct tags
	writer := parquet.NewGenericWriter[ContactRow](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}
