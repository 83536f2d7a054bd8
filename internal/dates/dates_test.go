package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMidnight(t *testing.T) {
	ref := time.Date(2025, 6, 18, 14, 35, 12, 987e6, time.Local)
	got := Midnight(ref)

	assert.Equal(t, 2025, got.Year())
	assert.Equal(t, time.June, got.Month())
	assert.Equal(t, 18, got.Day())
	assert.Equal(t, 0, got.Hour())
	assert.Equal(t, 0, got.Minute())
	assert.Equal(t, 0, got.Second())
	assert.Equal(t, 0, got.Nanosecond())
}

func TestDayBounds(t *testing.T) {
	ref := time.Date(2025, 3, 10, 9, 15, 0, 0, time.Local)
	start, end := DayBounds(ref)

	assert.Equal(t, Midnight(ref), start)
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.Equal(t, 59, end.Second())
	assert.Equal(t, int(999e6), end.Nanosecond())

	// The bounds cover exactly one day, down to the last millisecond.
	assert.Equal(t, int64(24*60*60*1000-1), end.UnixMilli()-start.UnixMilli())
}

func TestWeekOf(t *testing.T) {
	// 2025-06-18 is a Wednesday.
	ref := time.Date(2025, 6, 18, 16, 45, 0, 0, time.Local)
	week := WeekOf(ref)

	require.Len(t, week.Days, 7)

	assert.Equal(t, time.Sunday, week.Days[0].Weekday())
	assert.Equal(t, 15, week.Days[0].Day())
	assert.Equal(t, time.Saturday, week.Days[6].Weekday())
	assert.Equal(t, 21, week.Days[6].Day())

	// Days are consecutive midnights in ascending order.
	for i, d := range week.Days {
		assert.Equal(t, Midnight(d), d)
		if i > 0 {
			assert.True(t, d.After(week.Days[i-1]))
		}
	}

	// A week in the past cannot contain today.
	assert.Equal(t, -1, week.CurrentIndex)
}

func TestWeekOfStartsOnSundayReference(t *testing.T) {
	// A Sunday reference anchors its own week.
	ref := time.Date(2025, 6, 15, 8, 0, 0, 0, time.Local)
	week := WeekOf(ref)

	require.Len(t, week.Days, 7)
	assert.Equal(t, Midnight(ref), week.Days[0])
}

func TestWeekOfCurrentIndex(t *testing.T) {
	week := WeekOf(time.Now())

	require.Len(t, week.Days, 7)
	require.GreaterOrEqual(t, week.CurrentIndex, 0)
	require.Less(t, week.CurrentIndex, 7)
	assert.Equal(t, Midnight(time.Now()), week.Days[week.CurrentIndex])
}

func TestDaysTillNow(t *testing.T) {
	ref := time.Now().AddDate(0, 0, -3)
	days := DaysTillNow(ref)

	require.Len(t, days, 4)
	assert.Equal(t, Midnight(ref), days[0])
	assert.Equal(t, Midnight(time.Now()), days[3])
	for i := 1; i < len(days); i++ {
		assert.True(t, days[i].After(days[i-1]))
	}
}

func TestDaysTillNowToday(t *testing.T) {
	days := DaysTillNow(time.Now())
	require.Len(t, days, 1)
	assert.Equal(t, Midnight(time.Now()), days[0])
}

func TestDaysTillNowFutureReference(t *testing.T) {
	days := DaysTillNow(time.Now().AddDate(0, 0, 2))
	assert.Empty(t, days)
}

func TestIsValid(t *testing.T) {
	assert.False(t, IsValid(time.Time{}), "zero time is an unset field")
	assert.False(t, IsValid(time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)), "pre-2025 instants are legacy garbage")
	assert.True(t, IsValid(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)), "floor itself is valid")
	assert.True(t, IsValid(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)))
}

func TestCombineDateAndTime(t *testing.T) {
	datePart := time.Date(2025, 7, 4, 0, 0, 0, 0, time.Local)
	timePart := time.Date(2025, 1, 2, 18, 30, 15, 0, time.Local)

	combined, ok := CombineDateAndTime(datePart, timePart)
	require.True(t, ok)

	assert.Equal(t, 2025, combined.Year())
	assert.Equal(t, time.July, combined.Month())
	assert.Equal(t, 4, combined.Day())
	assert.Equal(t, 18, combined.Hour())
	assert.Equal(t, 30, combined.Minute())
	assert.Equal(t, 15, combined.Second())
}

func TestCombineDateAndTimeRejectsInvalidInputs(t *testing.T) {
	valid := time.Date(2025, 7, 4, 10, 0, 0, 0, time.Local)

	_, ok := CombineDateAndTime(time.Time{}, valid)
	assert.False(t, ok)

	_, ok = CombineDateAndTime(valid, time.Time{})
	assert.False(t, ok)

	_, ok = CombineDateAndTime(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), valid)
	assert.False(t, ok)
}
