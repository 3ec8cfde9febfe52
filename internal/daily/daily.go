// Package daily maps calendar dates to catalog indices so that every
// player sees the same hidden word on the same day.
package daily

import "time"

// Key returns the YYYY-MM-DD date key in UTC.
func Key(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Index returns the deterministic catalog index for a date key. The
// rolling hash is hash*31 + codepoint with unsigned 32-bit wraparound;
// the wraparound is bit-exact on every platform, so the mapping needs no
// stored state and never drifts.
func Index(key string, size int) int {
	if size <= 0 {
		return 0
	}
	var h uint32
	for _, r := range key {
		h = h*31 + uint32(r)
	}
	return int(h % uint32(size))
}
