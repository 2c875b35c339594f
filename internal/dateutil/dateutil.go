// Package dateutil does calendar-day math over date keys: dates serialized
// as YYYY-MM-DD in local time. Keys sort chronologically as plain strings.
package dateutil

import (
	"math"
	"time"
)

const keyLayout = "2006-01-02"

// Key serializes t's local calendar date.
func Key(t time.Time) string {
	return t.Format(keyLayout)
}

// Parse turns a date key back into local midnight of that day. Malformed
// keys yield the zero time and false.
func Parse(key string) (time.Time, bool) {
	t, err := time.ParseInLocation(keyLayout, key, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Today is the date key for now.
func Today(now time.Time) string {
	return Key(now)
}

// DaysAgo is the date key k calendar days before now.
func DaysAgo(now time.Time, k int) string {
	return Key(now.AddDate(0, 0, -k))
}

// Range returns the n most recent date keys ending at now, oldest first.
func Range(now time.Time, n int) []string {
	keys := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		keys = append(keys, DaysAgo(now, i))
	}
	return keys
}

// PrevKey is the date key one calendar day before key. Malformed input maps
// to the empty key, which no completion map contains.
func PrevKey(key string) string {
	t, ok := Parse(key)
	if !ok {
		return ""
	}
	return Key(t.AddDate(0, 0, -1))
}

// Diff is the absolute number of calendar days between two date keys.
func Diff(a, b string) int {
	ta, okA := Parse(a)
	tb, okB := Parse(b)
	if !okA || !okB {
		return 0
	}
	// Round because DST transitions make some local days 23 or 25 hours.
	days := int(math.Round(tb.Sub(ta).Hours() / 24))
	if days < 0 {
		return -days
	}
	return days
}

// IsPreviousDay reports whether b is exactly one calendar day after a.
func IsPreviousDay(a, b string) bool {
	t, ok := Parse(a)
	if !ok {
		return false
	}
	return Key(t.AddDate(0, 0, 1)) == b
}

// Weekday returns the day of week for a date key. Malformed keys are
// reported as Sunday; callers validate keys before bucketing by weekday.
func Weekday(key string) time.Weekday {
	t, ok := Parse(key)
	if !ok {
		return time.Sunday
	}
	return t.Weekday()
}
