package core

import (
	"testing"
	"time"

	"github.com/huangsam/rolodex/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// born builds a contact with a birthday parsed from DD.MM.YYYY.
func born(t *testing.T, name, dob string) schema.Contact {
	t.Helper()
	d, err := ParseBirthday(dob)
	require.NoError(t, err)
	return schema.Contact{Name: name, Birthday: &d}
}

func TestUpcomingBirthdays(t *testing.T) {
	tests := []struct {
		name     string
		dob      string
		today    time.Time
		included bool
		notify   string
	}{
		{
			name:     "weekday birthday two days out",
			dob:      "10.06.1990",
			today:    schema.Date(2024, time.June, 8),
			included: true,
			notify:   "10.06.2024",
		},
		{
			name:     "last day of window on a saturday shifts past the window",
			dob:      "15.06.1990",
			today:    schema.Date(2024, time.June, 8),
			included: true,
			notify:   "17.06.2024",
		},
		{
			name:     "one day past the window",
			dob:      "16.06.1990",
			today:    schema.Date(2024, time.June, 8),
			included: false,
		},
		{
			name:     "birthday today on a sunday",
			dob:      "09.06.1985",
			today:    schema.Date(2024, time.June, 9),
			included: true,
			notify:   "10.06.2024",
		},
		{
			name:     "saturday birthday shifts to monday",
			dob:      "06.01.2000",
			today:    schema.Date(2024, time.January, 1),
			included: true,
			notify:   "08.01.2024",
		},
		{
			name:     "birthday yesterday rolls to next year",
			dob:      "07.06.1990",
			today:    schema.Date(2024, time.June, 8),
			included: false,
		},
		{
			name:     "year rollover into january",
			dob:      "02.01.1985",
			today:    schema.Date(2024, time.December, 28),
			included: true,
			notify:   "02.01.2025",
		},
		{
			name:     "feb 29 falls back to march 1 in a common year",
			dob:      "29.02.1996",
			today:    schema.Date(2023, time.March, 1),
			included: true,
			notify:   "01.03.2023",
		},
		{
			name:     "feb 29 kept in a leap year",
			dob:      "29.02.2000",
			today:    schema.Date(2024, time.February, 25),
			included: true,
			notify:   "29.02.2024",
		},
		{
			name:     "feb 29 fallback outside the window",
			dob:      "29.02.1996",
			today:    schema.Date(2023, time.February, 1),
			included: false,
		},
		{
			name:     "birthday in the future relative to today",
			dob:      "12.06.2030",
			today:    schema.Date(2024, time.June, 8),
			included: true,
			notify:   "12.06.2024",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contacts := []schema.Contact{born(t, "Ann", tt.dob)}
			got := UpcomingBirthdays(contacts, tt.today)
			if !tt.included {
				assert.Empty(t, got)
				return
			}
			require.Len(t, got, 1)
			assert.Equal(t, "Ann", got[0].Name)
			assert.Equal(t, tt.notify, schema.FormatDate(got[0].NotifyDate))
		})
	}
}

func TestUpcomingBirthdaysSkipsMissingBirthday(t *testing.T) {
	contacts := []schema.Contact{
		{Name: "NoDate", Phones: []string{"0123456789"}},
		born(t, "Ann", "10.06.1990"),
	}
	got := UpcomingBirthdays(contacts, schema.Date(2024, time.June, 8))
	require.Len(t, got, 1)
	assert.Equal(t, "Ann", got[0].Name)
}

func TestUpcomingBirthdaysEmpty(t *testing.T) {
	assert.Empty(t, UpcomingBirthdays(nil, schema.Date(2024, time.June, 8)))
}

func TestUpcomingBirthdaysIgnoresClockTime(t *testing.T) {
	contacts := []schema.Contact{born(t, "Ann", "08.06.1990")}
	evening := time.Date(2024, time.June, 8, 23, 59, 0, 0, time.UTC)
	got := UpcomingBirthdays(contacts, evening)
	require.Len(t, got, 1)
	assert.Equal(t, schema.Date(2024, time.June, 10), got[0].NotifyDate)
	assert.Equal(t, schema.Date(2024, time.June, 8), got[0].Birthday)
}

func TestUpcomingBirthdaysIdempotent(t *testing.T) {
	contacts := []schema.Contact{
		born(t, "Ann", "10.06.1990"),
		born(t, "Bo", "15.06.1990"),
		born(t, "Cy", "01.01.1990"),
	}
	today := schema.Date(2024, time.June, 8)
	first := UpcomingBirthdays(contacts, today)
	second := UpcomingBirthdays(contacts, today)
	assert.ElementsMatch(t, first, second)
	assert.Len(t, first, 2)
}

func TestBirthdayIn(t *testing.T) {
	dob := schema.Date(1996, time.February, 29)
	assert.Equal(t, schema.Date(2023, time.March, 1), BirthdayIn(dob, 2023))
	assert.Equal(t, schema.Date(2024, time.February, 29), BirthdayIn(dob, 2024))
	assert.Equal(t, schema.Date(2100, time.March, 1), BirthdayIn(dob, 2100))
	assert.Equal(t, schema.Date(2000, time.February, 29), BirthdayIn(dob, 2000))
	assert.Equal(t, schema.Date(2023, time.July, 4), BirthdayIn(schema.Date(1970, time.July, 4), 2023))
}

func TestNotificationDate(t *testing.T) {
	// 2024-06-10 is a Monday.
	monday := schema.Date(2024, time.June, 10)
	for offset := range 7 {
		d := monday.AddDate(0, 0, offset)
		got := NotificationDate(d)
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
			assert.Equal(t, time.Monday, got.Weekday(), d.Weekday().String())
			assert.True(t, got.After(d))
		default:
			assert.Equal(t, d, got, d.Weekday().String())
		}
	}
}

func TestDaysUntilBirthday(t *testing.T) {
	today := schema.Date(2024, time.June, 8)
	dob := schema.Date(1990, time.June, 10)
	past := schema.Date(1990, time.June, 7)
	assert.Equal(t, -1, DaysUntilBirthday(nil, today))
	assert.Equal(t, 2, DaysUntilBirthday(&dob, today))
	assert.Equal(t, 364, DaysUntilBirthday(&past, today))
}

func TestGroupByNotifyDate(t *testing.T) {
	// 2024-06-28 is a Friday: the 29th (Saturday) shifts onto Monday the 1st.
	contacts := []schema.Contact{
		born(t, "July", "01.07.1990"),
		born(t, "Sat", "29.06.1991"),
		born(t, "Fri", "28.06.1992"),
	}
	groups := GroupByNotifyDate(UpcomingBirthdays(contacts, schema.Date(2024, time.June, 28)))
	require.Len(t, groups, 2)
	// Ordered by the DD.MM.YYYY text, not by calendar position.
	assert.Equal(t, schema.Date(2024, time.July, 1), groups[0].Date)
	assert.Equal(t, []string{"July", "Sat"}, groups[0].Names)
	assert.Equal(t, schema.Date(2024, time.June, 28), groups[1].Date)
	assert.Equal(t, []string{"Fri"}, groups[1].Names)
}

func TestGroupByNotifyDateTextOrder(t *testing.T) {
	tests := []struct {
		name  string
		dates []time.Time
		want  []string
	}{
		{
			name:  "same month",
			dates: []time.Time{schema.Date(2024, time.June, 14), schema.Date(2024, time.June, 10)},
			want:  []string{"10.06.2024", "14.06.2024"},
		},
		{
			name:  "month boundary",
			dates: []time.Time{schema.Date(2024, time.June, 28), schema.Date(2024, time.July, 1)},
			want:  []string{"01.07.2024", "28.06.2024"},
		},
		{
			name:  "year boundary",
			dates: []time.Time{schema.Date(2024, time.December, 30), schema.Date(2025, time.January, 2)},
			want:  []string{"02.01.2025", "30.12.2024"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var upcoming []schema.Upcoming
			for i, d := range tt.dates {
				upcoming = append(upcoming, schema.Upcoming{Name: string(rune('A' + i)), Birthday: d, NotifyDate: d})
			}
			var got []string
			for _, g := range GroupByNotifyDate(upcoming) {
				got = append(got, schema.FormatDate(g.Date))
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGroupByNotifyDateEmpty(t *testing.T) {
	assert.Empty(t, GroupByNotifyDate(nil))
}
