package timeutil

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used on the wire (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date at midnight UTC.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}

// FormatDate formats a time as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// StartOfDay returns the start of the day (00:00:00) for the given time.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DateOf returns the calendar date of t as midnight UTC, dropping the zone.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// YearsAgo returns the latest birth date that makes someone n years old by today.
// A Feb 29 today maps to Feb 28 in a non-leap target year, and a Feb 28 today in a
// non-leap year reaches Feb 29 in a leap target year.
func YearsAgo(today time.Time, n int) time.Time {
	t := DateOf(today)
	year := t.Year() - n
	if t.Month() == time.February && t.Day() == 28 && !IsLeapYear(t.Year()) && IsLeapYear(year) {
		return time.Date(year, time.February, 29, 0, 0, 0, 0, time.UTC)
	}
	return Anniversary(year, t.Month(), t.Day())
}

// IsAtLeastYearsOld reports whether someone born on bornOn has reached n years by today.
// Birthdays on Feb 29 fall on Feb 28 in non-leap years.
func IsAtLeastYearsOld(bornOn, today time.Time, n int) bool {
	b := DateOf(bornOn)
	birthday := Anniversary(b.Year()+n, b.Month(), b.Day())
	return !birthday.After(DateOf(today))
}

// Anniversary returns month/day in year as midnight UTC. Feb 29 becomes Feb 28
// when year is not a leap year.
func Anniversary(year int, month time.Month, day int) time.Time {
	if month == time.February && day == 29 && !IsLeapYear(year) {
		day = 28
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// IsLeapYear reports whether year has a Feb 29.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// MonthsFrom returns the calendar date n months after today.
func MonthsFrom(today time.Time, n int) time.Time {
	return DateOf(today).AddDate(0, n, 0)
}
