package core

import (
	"regexp"
	"time"

	"github.com/huangsam/rolodex/internal/contract"
	"github.com/huangsam/rolodex/schema"
)

var (
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
	datePattern  = regexp.MustCompile(`^[0-9]{2}\.[0-9]{2}\.[0-9]{4}$`)
)

// ParsePhone checks that s is exactly ten ASCII digits.
func ParsePhone(s string) (string, error) {
	if !phonePattern.MatchString(s) {
		return "", &contract.ValidationError{Kind: contract.InvalidPhone, Value: s}
	}
	return s, nil
}

// ParseBirthday parses a DD.MM.YYYY string into a calendar date.
// Day and month must be zero-padded and the date must exist.
func ParseBirthday(s string) (time.Time, error) {
	if !datePattern.MatchString(s) {
		return time.Time{}, &contract.ValidationError{Kind: contract.InvalidDate, Value: s}
	}
	t, err := time.Parse(schema.DateLayout, s)
	if err != nil {
		return time.Time{}, &contract.ValidationError{Kind: contract.InvalidDate, Value: s}
	}
	return schema.CivilDate(t), nil
}
