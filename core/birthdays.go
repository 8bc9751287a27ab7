// Package core has the birthday window engine and field validators for rolodex.
package core

import (
	"sort"
	"time"

	"github.com/huangsam/rolodex/schema"
)

// WindowDays is how far ahead of today a birthday may fall and still be reported.
// The window is inclusive on both ends, so it spans today through today+WindowDays.
const WindowDays = 7

// UpcomingBirthdays returns every contact whose next birthday falls inside the
// window starting at today, paired with the date the greeting should be sent.
// Contacts without a birthday are skipped. The result order follows the input
// order; callers sort for display.
func UpcomingBirthdays(contacts []schema.Contact, today time.Time) []schema.Upcoming {
	today = schema.CivilDate(today)
	end := today.AddDate(0, 0, WindowDays)

	var result []schema.Upcoming
	for _, c := range contacts {
		if c.Birthday == nil {
			continue
		}
		bday := NextBirthday(*c.Birthday, today)
		if bday.After(end) {
			continue
		}
		// The shifted date is not checked against the window again: a Friday
		// birthday on the last day still reports the Monday after it.
		result = append(result, schema.Upcoming{
			Name:       c.Name,
			Birthday:   bday,
			NotifyDate: NotificationDate(bday),
		})
	}
	return result
}

// NextBirthday returns the first occurrence of dob on or after today.
func NextBirthday(dob, today time.Time) time.Time {
	today = schema.CivilDate(today)
	bday := BirthdayIn(dob, today.Year())
	if bday.Before(today) {
		bday = BirthdayIn(dob, today.Year()+1)
	}
	return bday
}

// BirthdayIn moves dob into the given year.
// February 29 becomes March 1 when the year is not a leap year.
func BirthdayIn(dob time.Time, year int) time.Time {
	if dob.Month() == time.February && dob.Day() == 29 && !isLeap(year) {
		return schema.Date(year, time.March, 1)
	}
	return schema.Date(year, dob.Month(), dob.Day())
}

// NotificationDate moves a Saturday or Sunday forward to the following Monday.
func NotificationDate(d time.Time) time.Time {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDate(0, 0, 2)
	case time.Sunday:
		return d.AddDate(0, 0, 1)
	default:
		return d
	}
}

// DaysUntilBirthday returns the number of days from today to the next birthday,
// or -1 when dob is nil.
func DaysUntilBirthday(dob *time.Time, today time.Time) int {
	if dob == nil {
		return -1
	}
	today = schema.CivilDate(today)
	next := NextBirthday(*dob, today)
	return int(next.Sub(today).Hours() / 24)
}

// GroupByNotifyDate collects names per notification date.
// Groups are ordered by their DD.MM.YYYY text, so across a month boundary
// "01.07.2024" comes before "28.06.2024". Names within a group keep the
// order they had in upcoming.
func GroupByNotifyDate(upcoming []schema.Upcoming) []schema.BirthdayGroup {
	index := make(map[time.Time]int)
	var groups []schema.BirthdayGroup
	for _, u := range upcoming {
		key := schema.CivilDate(u.NotifyDate)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, schema.BirthdayGroup{Date: key})
		}
		groups[i].Names = append(groups[i].Names, u.Name)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return schema.FormatDate(groups[i].Date) < schema.FormatDate(groups[j].Date)
	})
	return groups
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
