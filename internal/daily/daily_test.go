package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	loc := time.FixedZone("KST", 9*60*60)
	// 08:30 KST on Jan 2 is still Jan 1 in UTC; the key is UTC-based.
	assert.Equal(t, "2024-01-01", Key(time.Date(2024, 1, 2, 8, 30, 0, 0, loc)))
	assert.Equal(t, "2024-01-02", Key(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)))
}

func TestIndexDeterministic(t *testing.T) {
	for _, size := range []int{1, 3, 7, 42, 11172} {
		assert.Equal(t, Index("2024-01-01", size), Index("2024-01-01", size))
		got := Index("2024-01-01", size)
		assert.GreaterOrEqual(t, got, 0)
		assert.Less(t, got, size)
	}
}

// The rolling hash of "2024-01-01" is 3681625664 under unsigned 32-bit
// wraparound. These fixed points pin the wraparound behavior.
func TestIndexFixedPoints(t *testing.T) {
	assert.Equal(t, 664, Index("2024-01-01", 1000))
	assert.Equal(t, 2, Index("2024-01-01", 3))
	assert.Equal(t, 0, Index("2024-01-02", 3))
	assert.Equal(t, 0, Index("2024-01-01", 1))
}

func TestIndexEmptyCatalog(t *testing.T) {
	assert.Equal(t, 0, Index("2024-01-01", 0))
	assert.Equal(t, 0, Index("2024-01-01", -5))
}

func TestIndexVariesAcrossDates(t *testing.T) {
	seen := map[int]bool{}
	for _, key := range []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-02-14", "2025-12-31"} {
		seen[Index(key, 11172)] = true
	}
	assert.Greater(t, len(seen), 1, "distinct dates should not all collapse to one index")
}
