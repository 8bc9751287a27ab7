package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/huangsam/rolodex/internal/contract"
	"github.com/huangsam/rolodex/schema"
)

// birthdayRecord is the JSON shape of a notification group.
type birthdayRecord struct {
	Date  string   `json:"date"`
	Names []string `json:"names"`
}

// PrintBirthdays writes grouped birthdays, dispatching based on the output format configured.
// Text and plain modes share the "DD.MM.YYYY: name1, name2" line format.
func PrintBirthdays(w io.Writer, groups []schema.BirthdayGroup, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		records := make([]birthdayRecord, 0, len(groups))
		for _, g := range groups {
			records = append(records, birthdayRecord{Date: schema.FormatDate(g.Date), Names: g.Names})
		}
		if err := writeJSON(w, records); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		err := writeCSVWithHeader(w, []string{"date", "names"}, func(cw *csv.Writer) error {
			for _, g := range groups {
				if err := cw.Write([]string{schema.FormatDate(g.Date), strings.Join(g.Names, ";")}); err != nil {
					return fmt.Errorf("failed to write CSV row: %w", err)
				}
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		for _, g := range groups {
			if _, err := fmt.Fprintln(w, FormatBirthdayGroup(g)); err != nil {
				return err
			}
		}
	}
	return nil
}

// FormatBirthdayGroup renders one notification group as "DD.MM.YYYY: name1, name2".
func FormatBirthdayGroup(g schema.BirthdayGroup) string {
	return fmt.Sprintf("%s: %s", schema.FormatDate(g.Date), strings.Join(g.Names, ", "))
}
