package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/rolodex/core"
	"github.com/huangsam/rolodex/internal/contract"
	"github.com/huangsam/rolodex/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// contactRecord is the JSON shape of a listed contact.
type contactRecord struct {
	Name              string   `json:"name"`
	Phones            []string `json:"phones"`
	Birthday          *string  `json:"birthday"`
	DaysUntilBirthday *int     `json:"days_until_birthday"`
}

// PrintContacts writes the contact listing, dispatching based on the output format configured.
func PrintContacts(w io.Writer, contacts []schema.Contact, cfg *contract.Config, today time.Time) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeContactsJSON(w, contacts, today); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeContactsCSV(w, contacts, today); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.PlainOut:
		return writeContactLines(w, contacts)
	default:
		// Default to human-readable table
		if err := writeContactsTable(w, contacts, cfg, today); err != nil {
			return fmt.Errorf("error writing table output: %w", err)
		}
	}
	return nil
}

// FormatContactLine renders a contact as a single line of plain text.
func FormatContactLine(c schema.Contact) string {
	return fmt.Sprintf("Contact name: %s, phones: %s, birthday: %s",
		c.Name, schema.FormatPhones(c.Phones, "; ", schema.EmptyValue), schema.FormatBirthday(c.Birthday))
}

// writeContactLines writes one plain line per contact.
func writeContactLines(w io.Writer, contacts []schema.Contact) error {
	for _, c := range contacts {
		if _, err := fmt.Fprintln(w, FormatContactLine(c)); err != nil {
			return err
		}
	}
	return nil
}

// writeContactsTable generates and writes the human-readable table.
func writeContactsTable(w io.Writer, contacts []schema.Contact, cfg *contract.Config, today time.Time) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Name", "Phones", "Birthday", "Days", "Next"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	maxName := GetMaxTableNameWidth(cfg)
	var data [][]string
	for _, c := range contacts {
		days := core.DaysUntilBirthday(c.Birthday, today)
		label := contract.GetPlainLabel(days, core.WindowDays)
		if cfg.UseColors {
			label = contract.GetColorLabel(days, core.WindowDays)
		}
		data = append(data, []string{
			contract.TruncateName(c.Name, maxName),
			schema.FormatPhones(c.Phones, ", ", schema.EmptyValue),
			schema.FormatBirthday(c.Birthday),
			formatDays(days),
			label,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d contacts\n", len(contacts))
	return err
}

// writeContactsCSV writes the contacts in CSV format.
func writeContactsCSV(w io.Writer, contacts []schema.Contact, today time.Time) error {
	header := []string{"name", "phones", "birthday", "days_until_birthday", "label"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, c := range contacts {
			days := core.DaysUntilBirthday(c.Birthday, today)
			birthday := ""
			if c.Birthday != nil {
				birthday = schema.FormatDate(*c.Birthday)
			}
			row := []string{
				c.Name,
				schema.FormatPhones(c.Phones, ";", ""),
				birthday,
				strconv.Itoa(days),
				contract.GetPlainLabel(days, core.WindowDays),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}

// writeContactsJSON writes the contacts as a JSON array.
func writeContactsJSON(w io.Writer, contacts []schema.Contact, today time.Time) error {
	return writeJSON(w, contactRecords(contacts, today))
}

func contactRecords(contacts []schema.Contact, today time.Time) []contactRecord {
	out := make([]contactRecord, 0, len(contacts))
	for _, c := range contacts {
		rec := contactRecord{Name: c.Name, Phones: c.Phones}
		if rec.Phones == nil {
			rec.Phones = []string{}
		}
		if c.Birthday != nil {
			b := schema.FormatDate(*c.Birthday)
			days := core.DaysUntilBirthday(c.Birthday, today)
			rec.Birthday = &b
			rec.DaysUntilBirthday = &days
		}
		out = append(out, rec)
	}
	return out
}

func formatDays(days int) string {
	if days < 0 {
		return contract.UnknownValue
	}
	return strconv.Itoa(days)
}
