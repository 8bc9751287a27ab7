package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the contact listing.
	OutputMode string

	// ExportFormat represents the file format of an export.
	ExportFormat string

	// StoreBackend represents the contact store implementation.
	StoreBackend string

	// LogMode represents the logger encoding preset.
	LogMode string
)

// All output modes supported.
const (
	TextOut  OutputMode = "text"
	PlainOut OutputMode = "plain" // default
	CSVOut   OutputMode = "csv"
	JSONOut  OutputMode = "json"
)

// All export formats supported.
const (
	CSVExport     ExportFormat = "csv" // default
	JSONExport    ExportFormat = "json"
	ParquetExport ExportFormat = "parquet"
)

// All store backends supported.
const (
	MemoryBackend StoreBackend = "memory" // default
	SQLiteBackend StoreBackend = "sqlite"
)

// All logger presets supported.
const (
	DevelopmentLog LogMode = "development" // default
	ProductionLog  LogMode = "production"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:  {},
	PlainOut: {},
	CSVOut:   {},
	JSONOut:  {},
}

// ValidExportFormats lists all valid export formats.
var ValidExportFormats = map[ExportFormat]struct{}{
	CSVExport:     {},
	JSONExport:    {},
	ParquetExport: {},
}

// ValidStoreBackends lists all valid store backends.
var ValidStoreBackends = map[StoreBackend]struct{}{
	MemoryBackend: {},
	SQLiteBackend: {},
}

// ValidLogModes lists all valid logger presets.
var ValidLogModes = map[LogMode]struct{}{
	DevelopmentLog: {},
	ProductionLog:  {},
}
