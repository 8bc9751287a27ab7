package schema

import (
	"strings"
	"time"
)

// DateLayout is the DD.MM.YYYY representation used for input and display.
const DateLayout = "02.01.2006"

// EmptyValue is shown in place of a missing phone list or birthday.
const EmptyValue = "—"

// CivilDate drops the clock and location from t, keeping its calendar day.
// All dates in rolodex are naive calendar dates anchored at UTC midnight.
func CivilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Date builds a naive calendar date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders a date as DD.MM.YYYY.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatBirthday renders an optional birthday, falling back to EmptyValue.
func FormatBirthday(b *time.Time) string {
	if b == nil {
		return EmptyValue
	}
	return FormatDate(*b)
}

// FormatPhones joins phones with sep, falling back to fallback when there are none.
func FormatPhones(phones []string, sep, fallback string) string {
	if len(phones) == 0 {
		return fallback
	}
	return strings.Join(phones, sep)
}
