// Package dates holds the calendar math behind the session day buckets: week
// windows, day bounds and reference-to-now day ranges. Everything here is a
// pure function of its inputs and the local timezone.
package dates

import "time"

// MinValidUnixMilli is 2025-01-01T00:00:00.000Z. Anything earlier came from a
// legacy build that stored dates as strings, and the re-parsed value is not a
// real scheduled instant.
const MinValidUnixMilli int64 = 1735689600000

// Week is a calendar week containing a reference date.
type Week struct {
	// Days holds the 7 local midnights from Sunday through Saturday.
	Days []time.Time
	// CurrentIndex is the position of today within Days, or -1 when today
	// falls outside the window. Matched by the millisecond value of the day's
	// midnight, not by instance identity.
	CurrentIndex int
}

// Midnight returns the local midnight of the day containing t.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayBounds returns the first and last representable millisecond of the day
// containing d: 00:00:00.000 and 23:59:59.999 local time.
func DayBounds(d time.Time) (start, end time.Time) {
	start = Midnight(d)
	end = time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 999e6, d.Location())
	return start, end
}

// WeekOf computes the Sunday-anchored week containing ref.
func WeekOf(ref time.Time) Week {
	sunday := Midnight(ref).AddDate(0, 0, -int(ref.Weekday()))

	days := make([]time.Time, 0, 7)
	for i := 0; i < 7; i++ {
		days = append(days, sunday.AddDate(0, 0, i))
	}

	today := Midnight(time.Now()).UnixMilli()
	current := -1
	for i, d := range days {
		if d.UnixMilli() == today {
			current = i
			break
		}
	}

	return Week{Days: days, CurrentIndex: current}
}

// DaysTillNow returns every local midnight from ref's day through today,
// ascending. The result is empty when ref is on a later day than today.
func DaysTillNow(ref time.Time) []time.Time {
	var days []time.Time
	today := Midnight(time.Now())
	for d := Midnight(ref); !d.After(today); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// IsValid reports whether t is a usable session instant: it must be non-zero
// and must not predate MinValidUnixMilli. Both checks are needed. A zero time
// is an unset field, and a pre-2025 value is a legacy string-encoded date that
// survived re-parsing with a bogus raw value.
func IsValid(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	return t.UnixMilli() >= MinValidUnixMilli
}

// CombineDateAndTime merges the calendar-day fields of datePart with the
// clock fields of timePart. ok is false when either input fails IsValid.
func CombineDateAndTime(datePart, timePart time.Time) (combined time.Time, ok bool) {
	if !IsValid(datePart) || !IsValid(timePart) {
		return time.Time{}, false
	}
	return time.Date(
		datePart.Year(), datePart.Month(), datePart.Day(),
		timePart.Hour(), timePart.Minute(), timePart.Second(), timePart.Nanosecond(),
		datePart.Location(),
	), true
}
