package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"counter/internal/calendar"
	"counter/internal/ledger"
)

func TestUpsertEntry(t *testing.T) {
	entries, err := ledger.UpsertEntry(nil, "2024-03-01", 4)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"2024-03-01": 4}, entries)

	// Later write for the same date replaces.
	entries, err = ledger.UpsertEntry(entries, "2024-03-01", 7.5)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"2024-03-01": 7.5}, entries)
}

func TestUpsertEntryValidation(t *testing.T) {
	_, err := ledger.UpsertEntry(nil, "03/01/2024", 4)
	assert.ErrorIs(t, err, calendar.ErrInvalidDate)

	_, err = ledger.UpsertEntry(nil, "2024-03-01", -1)
	assert.ErrorIs(t, err, ledger.ErrNegativeHours)
}

func TestUpsertEntryDoesNotMutateInput(t *testing.T) {
	before := map[string]float64{"2024-03-01": 4}
	_, err := ledger.UpsertEntry(before, "2024-03-02", 8)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"2024-03-01": 4}, before)
}

func TestRemoveEntryIdempotent(t *testing.T) {
	entries := map[string]float64{"2024-03-01": 4}

	entries = ledger.RemoveEntry(entries, "2024-03-01")
	assert.Empty(t, entries)

	entries = ledger.RemoveEntry(entries, "2024-03-01")
	assert.Empty(t, entries)
}

func TestClearMonth(t *testing.T) {
	entries := map[string]float64{
		"2024-03-01": 4,
		"2024-03-15": 3.5,
		"2024-04-01": 8,
		"2023-03-05": 2,
	}

	cleared, err := ledger.ClearMonth(entries, "2024-03")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{
		"2024-04-01": 8,
		"2023-03-05": 2,
	}, cleared)
}

func TestClearMonthRejectsMalformedMonth(t *testing.T) {
	for _, month := range []string{"2024-3", "2024", "202403", "2024-03-01", "march"} {
		_, err := ledger.ClearMonth(nil, month)
		assert.ErrorIs(t, err, ledger.ErrInvalidMonth, "month %q", month)
	}
}

func TestSumForMonth(t *testing.T) {
	entries := map[string]float64{
		"2024-03-01": 4,
		"2024-03-15": 3.5,
		"2024-04-01": 8,
	}

	sum, ok := ledger.SumForMonth(entries, "2024-03-10")
	require.True(t, ok)
	assert.Equal(t, 7.5, sum)

	// Zero is a valid sum and distinct from a parse failure.
	sum, ok = ledger.SumForMonth(entries, "2022-01-01")
	require.True(t, ok)
	assert.Equal(t, 0.0, sum)

	_, ok = ledger.SumForMonth(entries, "garbage")
	assert.False(t, ok)
}

func TestPlannedProgress(t *testing.T) {
	// December 2024 has 19 working days, so 152 planned hours.
	p := ledger.PlannedProgress(2024, time.December, 76)
	assert.Equal(t, 152.0, p.PlannedHours)
	assert.Equal(t, 19, p.WorkingDays)
	assert.Equal(t, 50, p.PercentComplete)

	// Overshooting caps at 100.
	p = ledger.PlannedProgress(2024, time.December, 400)
	assert.Equal(t, 100, p.PercentComplete)
}

func TestDayProgressFor(t *testing.T) {
	today := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

	current := ledger.DayProgressFor(2024, time.March, today)
	assert.Equal(t, 10, current.DayOfMonth)
	assert.Equal(t, 31, current.DaysInMonth)
	assert.Equal(t, 32, current.PercentComplete)

	past := ledger.DayProgressFor(2024, time.February, today)
	assert.Equal(t, 29, past.DayOfMonth)
	assert.Equal(t, 100, past.PercentComplete)

	future := ledger.DayProgressFor(2024, time.April, today)
	assert.Equal(t, 0, future.DayOfMonth)
	assert.Equal(t, 0, future.PercentComplete)

	pastYear := ledger.DayProgressFor(2023, time.December, today)
	assert.Equal(t, 31, pastYear.DayOfMonth)
}
