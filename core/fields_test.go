package core

import (
	"testing"
	"time"

	"github.com/huangsam/rolodex/internal/contract"
	"github.com/huangsam/rolodex/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePhone(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"0123456789", true},
		{"9999999999", true},
		{"12345", false},
		{"123456789a", false},
		{"01234567890", false},
		{"", false},
		{"+380123456", false},
		{"012 345 678", false},
		{"０１２３４５６７８９", false}, // full-width digits are not ASCII
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePhone(tt.input)
			if tt.valid {
				require.NoError(t, err)
				assert.Equal(t, tt.input, got)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, contract.ErrValidation)
			assert.True(t, contract.IsValidationKind(err, contract.InvalidPhone))
		})
	}
}

func TestParseBirthday(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Time
		valid    bool
	}{
		{"10.06.1990", schema.Date(1990, time.June, 10), true},
		{"29.02.1996", schema.Date(1996, time.February, 29), true},
		{"01.01.2030", schema.Date(2030, time.January, 1), true},
		{"29.02.2023", time.Time{}, false},
		{"31.04.2020", time.Time{}, false},
		{"1.6.1990", time.Time{}, false},
		{"10/06/1990", time.Time{}, false},
		{"1990-06-10", time.Time{}, false},
		{"10.06.90", time.Time{}, false},
		{"10.13.1990", time.Time{}, false},
		{"", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBirthday(tt.input)
			if tt.valid {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, got)
				assert.Equal(t, tt.input, schema.FormatDate(got))
				return
			}
			require.Error(t, err)
			assert.True(t, contract.IsValidationKind(err, contract.InvalidDate))
		})
	}
}
