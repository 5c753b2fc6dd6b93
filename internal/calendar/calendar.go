// Package calendar provides date-only arithmetic, the Polish holiday
// calendar and working-day counts used for planned-hours targets.
//
// All computations work on calendar dates with no time-of-day or time
// zone attached, so shifting by whole days can never cross a DST
// boundary into the wrong day.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidDate = errors.New("invalid date")

// Date is a calendar date without time-of-day or zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// DateOf truncates a time to its calendar date.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// String formats the date as "YYYY-MM-DD".
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// AddDays shifts the date by n calendar days.
func (d Date) AddDays(n int) Date {
	t := time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC)
	return DateOf(t)
}

// Weekday reports the day of the week.
func (d Date) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

// DaysInMonth reports the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// monthDay is a fixed year-independent holiday.
type monthDay struct {
	month time.Month
	day   int
}

var fixedHolidays = []monthDay{
	{time.January, 1},
	{time.January, 6},
	{time.May, 1},
	{time.May, 3},
	{time.August, 15},
	{time.November, 1},
	{time.November, 11},
	{time.December, 24},
	{time.December, 25},
	{time.December, 26},
}

// EasterSunday computes the date of Easter Sunday for a Gregorian
// year using Gauss's congruence method.
func EasterSunday(year int) Date {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return Date{Year: year, Month: time.Month(month), Day: day}
}

// HolidaysOf returns the set of public holidays for the year: the
// fixed dates plus Easter Monday and Corpus Christi, both derived
// from Easter Sunday.
func HolidaysOf(year int) map[Date]struct{} {
	holidays := make(map[Date]struct{}, len(fixedHolidays)+2)
	for _, md := range fixedHolidays {
		holidays[Date{Year: year, Month: md.month, Day: md.day}] = struct{}{}
	}

	easter := EasterSunday(year)
	holidays[easter.AddDays(1)] = struct{}{}  // Easter Monday
	holidays[easter.AddDays(60)] = struct{}{} // Corpus Christi

	return holidays
}

// WorkingDaysInMonth counts the days of the month that are neither
// weekends nor holidays.
func WorkingDaysInMonth(year int, month time.Month) int {
	holidays := HolidaysOf(year)

	count := 0
	for day := 1; day <= DaysInMonth(year, month); day++ {
		d := Date{Year: year, Month: month, Day: day}
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		if _, holiday := holidays[d]; holiday {
			continue
		}
		count++
	}
	return count
}
