package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestContactClone(t *testing.T) {
	b := Date(1990, time.June, 10)
	c := Contact{Name: "Ann", Phones: []string{"0123456789"}, Birthday: &b}

	clone := c.Clone()
	clone.Phones[0] = "1111111111"
	*clone.Birthday = Date(2000, time.January, 1)

	assert.Equal(t, "0123456789", c.Phones[0])
	assert.Equal(t, Date(1990, time.June, 10), *c.Birthday)

	empty := Contact{Name: "Bo"}.Clone()
	assert.Nil(t, empty.Phones)
	assert.Nil(t, empty.Birthday)
}

func TestContactHasPhone(t *testing.T) {
	c := Contact{Name: "Ann", Phones: []string{"0123456789", "1111111111"}}
	assert.True(t, c.HasPhone("1111111111"))
	assert.False(t, c.HasPhone("2222222222"))
}

func TestCivilDate(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	got := CivilDate(time.Date(2024, time.June, 10, 23, 30, 0, 0, loc))
	assert.Equal(t, Date(2024, time.June, 10), got)
	assert.Equal(t, time.UTC, got.Location())
}

func TestFormatHelpers(t *testing.T) {
	b := Date(2024, time.March, 1)
	assert.Equal(t, "01.03.2024", FormatDate(b))
	assert.Equal(t, "01.03.2024", FormatBirthday(&b))
	assert.Equal(t, EmptyValue, FormatBirthday(nil))
	assert.Equal(t, "a; b", FormatPhones([]string{"a", "b"}, "; ", EmptyValue))
	assert.Equal(t, "none", FormatPhones(nil, "; ", "none"))
}
