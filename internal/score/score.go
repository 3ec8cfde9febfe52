// Package score measures structural similarity between phoneme profiles.
package score

import (
	"math"

	"jamodle/internal/hangul"
)

// Distance returns the Levenshtein edit distance between a and b,
// computed over Unicode scalar sequences. Insertions, deletions and
// substitutions each cost 1. Runs in O(len(a)*len(b)) time with a single
// rolling row sized to the shorter input.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}
	if len(rb) == 0 {
		return len(ra)
	}

	row := make([]int, len(rb)+1)
	for j := range row {
		row[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		prev := row[0] // d[i-1][j-1] for the first column
		row[0] = i
		for j := 1; j <= len(rb); j++ {
			cur := row[j]
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			row[j] = min(
				row[j]+1,   // deletion
				row[j-1]+1, // insertion
				prev+cost,  // substitution
			)
			prev = cur
		}
	}
	return row[len(rb)]
}

// Similarity maps edit distance into [0,1]. Two empty strings are a
// perfect match, which matters for the final channel: it is empty
// whenever neither word has a trailing consonant. A single empty side is
// a total mismatch.
func Similarity(a, b string) float64 {
	la, lb := len([]rune(a)), len([]rune(b))
	if la == 0 && lb == 0 {
		return 1
	}
	if la == 0 || lb == 0 {
		return 0
	}
	return math.Max(0, 1-float64(Distance(a, b))/float64(max(la, lb)))
}

// Percent converts the similarity of a and b to an integer percent.
func Percent(a, b string) int {
	return int(math.Round(Similarity(a, b) * 100))
}

// Breakdown carries the four per-channel percents for one scored guess.
// Overall is its own metric over the combined channel, not an average of
// the other three.
type Breakdown struct {
	Overall int `json:"overall"`
	Initial int `json:"initial"`
	Medial  int `json:"medial"`
	Final   int `json:"final"`
}

// Compare scores a guess profile against a target profile channel by
// channel. The four calls are independent.
func Compare(guess, target hangul.Profile) Breakdown {
	return Breakdown{
		Overall: Percent(guess.Combined, target.Combined),
		Initial: Percent(guess.Initial, target.Initial),
		Medial:  Percent(guess.Medial, target.Medial),
		Final:   Percent(guess.Final, target.Final),
	}
}
