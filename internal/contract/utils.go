package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Proximity label constants.
const (
	TodayValue    = "Today"     // Birthday is today
	ThisWeekValue = "This week" // Birthday falls inside the upcoming window
	LaterValue    = "Later"     // Birthday is further away
	UnknownValue  = "-"         // No birthday set
)

// Color variables for console output.
var (
	TodayColor    = color.New(color.FgRed, color.Bold) // TodayColor represents an immediate reminder.
	ThisWeekColor = color.New(color.FgYellow)          // ThisWeekColor represents an upcoming reminder.
	LaterColor    = color.New(color.FgCyan)            // LaterColor represents informational / low-priority signal.
	ErrorColor    = color.New(color.FgRed)             // ErrorColor marks failed commands in the shell.
)

// GetPlainLabel returns a plain text label describing how close a birthday is.
// days < 0 means there is no birthday. This is the core logic used for
// CSV, JSON, and table printing.
func GetPlainLabel(days, window int) string {
	switch {
	case days < 0:
		return UnknownValue
	case days == 0:
		return TodayValue
	case days <= window:
		return ThisWeekValue
	default:
		return LaterValue
	}
}

// GetColorLabel returns a colored label for console output (table).
func GetColorLabel(days, window int) string {
	text := GetPlainLabel(days, window)

	switch text {
	case TodayValue:
		return TodayColor.Sprint(text)
	case ThisWeekValue:
		return ThisWeekColor.Sprint(text)
	case LaterValue:
		return LaterColor.Sprint(text)
	default:
		return text
	}
}

// SelectOutputFile returns the appropriate file handle for output.
// An empty path means os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// TruncateName truncates a contact name to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 so there is room for "..." and at least one character.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
