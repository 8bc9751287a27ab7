package outwriter

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/huangsam/rolodex/core"
	"github.com/huangsam/rolodex/internal/contract"
	"github.com/huangsam/rolodex/internal/parquet"
	"github.com/huangsam/rolodex/schema"
)

// ExportContacts writes all contacts to a file in cfg.ExportFormat and returns the final path.
// An empty path uses contract.DefaultExportPath; a missing extension is added.
func ExportContacts(contacts []schema.Contact, cfg *contract.Config, today time.Time, path string) (string, error) {
	format := cfg.ExportFormat
	if format == "" {
		format = schema.CSVExport
	}
	path = exportPath(path, format)

	var err error
	switch format {
	case schema.JSONExport:
		err = writeWithFile(path, func(w io.Writer) error {
			return writeContactsJSON(w, contacts, today)
		})
	case schema.ParquetExport:
		rows := parquet.ContactRows(contacts, func(b *time.Time) int {
			return core.DaysUntilBirthday(b, today)
		})
		err = parquet.WriteContactsParquet(rows, path)
	case schema.CSVExport:
		err = writeWithFile(path, func(w io.Writer) error {
			return writeContactsCSV(w, contacts, today)
		})
	default:
		return "", fmt.Errorf("unsupported export format: %s", format)
	}
	if err != nil {
		return "", fmt.Errorf("failed to export contacts: %w", err)
	}
	return path, nil
}

// exportPath fills in the default file name and extension.
func exportPath(path string, format schema.ExportFormat) string {
	if path == "" {
		path = contract.DefaultExportPath
	}
	ext := "." + string(format)
	if !strings.EqualFold(filepath.Ext(path), ext) {
		path += ext
	}
	return path
}
