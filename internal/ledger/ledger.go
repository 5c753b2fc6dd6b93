// Package ledger maintains the date-indexed hours entries and derives
// month sums and progress metrics from them.
//
// Every operation is a pure function from an entry map to a new entry
// map; callers persist the result through the document store, which
// serializes concurrent read-modify-write cycles.
package ledger

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"regexp"
	"strings"
	"time"

	"counter/internal/calendar"
)

var (
	ErrNegativeHours = errors.New("hours cannot be negative")
	ErrInvalidMonth  = errors.New("invalid month, expected YYYY-MM")
)

var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// UpsertEntry stores hours under the given date, replacing any
// earlier entry for that day. The date must be a valid "YYYY-MM-DD"
// calendar date and hours must be non-negative.
func UpsertEntry(entries map[string]float64, date string, hrs float64) (map[string]float64, error) {
	d, err := calendar.ParseDate(date)
	if err != nil {
		return nil, err
	}
	if hrs < 0 {
		return nil, fmt.Errorf("%w: %v", ErrNegativeHours, hrs)
	}

	next := maps.Clone(entries)
	if next == nil {
		next = map[string]float64{}
	}
	next[d.String()] = hrs
	return next, nil
}

// RemoveEntry deletes the entry for the date if present. Removing an
// absent date is not an error.
func RemoveEntry(entries map[string]float64, date string) map[string]float64 {
	next := maps.Clone(entries)
	if next == nil {
		return map[string]float64{}
	}
	delete(next, date)
	return next
}

// ClearMonth removes every entry whose date falls within the given
// "YYYY-MM" month. Entries from other months, including the same
// month of a different year, are untouched.
func ClearMonth(entries map[string]float64, yearMonth string) (map[string]float64, error) {
	if !monthPattern.MatchString(yearMonth) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMonth, yearMonth)
	}

	next := maps.Clone(entries)
	if next == nil {
		return map[string]float64{}, nil
	}
	for date := range next {
		if strings.HasPrefix(date, yearMonth+"-") {
			delete(next, date)
		}
	}
	return next, nil
}

// SumForMonth sums hours over all entries that fall in the same
// calendar year and month as referenceDate. The second return value
// is false when the reference date does not parse; a sum of zero with
// true means the month genuinely has no hours.
func SumForMonth(entries map[string]float64, referenceDate string) (float64, bool) {
	ref, err := calendar.ParseDate(referenceDate)
	if err != nil {
		return 0, false
	}

	var sum float64
	for date, hrs := range entries {
		d, err := calendar.ParseDate(date)
		if err != nil {
			continue
		}
		if d.Year == ref.Year && d.Month == ref.Month {
			sum += hrs
		}
	}
	return sum, true
}

// Progress describes how far logged hours have come toward the
// month's planned target of eight hours per working day.
type Progress struct {
	PlannedHours    float64 `json:"plannedHours"`
	WorkingDays     int     `json:"workingDays"`
	PercentComplete int     `json:"percentComplete"`
}

// PlannedProgress derives the planned-hours progress for a month from
// the total hours logged in it.
func PlannedProgress(year int, month time.Month, totalHours float64) Progress {
	workingDays := calendar.WorkingDaysInMonth(year, month)
	planned := float64(workingDays) * 8

	percent := 0
	if planned > 0 {
		percent = int(math.Round(totalHours / planned * 100))
		if percent > 100 {
			percent = 100
		}
	}

	return Progress{
		PlannedHours:    planned,
		WorkingDays:     workingDays,
		PercentComplete: percent,
	}
}

// DayProgress describes how far through a viewed month the current
// day is. A past month is fully elapsed, a future month not at all.
type DayProgress struct {
	DayOfMonth      int `json:"dayOfMonth"`
	DaysInMonth     int `json:"daysInMonth"`
	PercentComplete int `json:"percentComplete"`
}

// DayProgressFor computes the elapsed-day progress of the viewed
// (year, month) relative to today.
func DayProgressFor(year int, month time.Month, today time.Time) DayProgress {
	daysInMonth := calendar.DaysInMonth(year, month)

	var dayOfMonth int
	switch {
	case today.Year() == year && today.Month() == month:
		dayOfMonth = today.Day()
	case today.Year() > year || (today.Year() == year && today.Month() > month):
		dayOfMonth = daysInMonth
	default:
		dayOfMonth = 0
	}

	percent := 0
	if daysInMonth > 0 {
		percent = int(math.Round(float64(dayOfMonth) / float64(daysInMonth) * 100))
	}

	return DayProgress{
		DayOfMonth:      dayOfMonth,
		DaysInMonth:     daysInMonth,
		PercentComplete: percent,
	}
}
