package game

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jamodle/internal/words"
)

// seqRand steps through a fixed sequence of draws modulo the bound.
type seqRand struct {
	draws []int
	pos   int
}

func (r *seqRand) Intn(n int) int {
	v := r.draws[r.pos%len(r.draws)]
	r.pos++
	return v % n
}

func catalog(t *testing.T, terms ...string) *words.Catalog {
	t.Helper()
	entries := make([]words.WordEntry, 0, len(terms))
	for _, term := range terms {
		entries = append(entries, words.WordEntry{
			Term:     term,
			Category: "테스트",
			Hint:     term + " 힌트",
		})
	}
	c, err := words.New(entries)
	require.NoError(t, err)
	return c
}

func TestNewDailyRoundIsDeterministic(t *testing.T) {
	c := catalog(t, "가방", "바다", "하늘", "사과", "포도")
	date := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

	first := NewDailyRound(c, date)
	second := NewDailyRound(c, date)
	assert.Equal(t, first.Entry, second.Entry)
	assert.Equal(t, ModeDaily, first.Mode)
	assert.Equal(t, StatusPlaying, first.Status)
	assert.Empty(t, first.Guesses)
}

func TestNewEndlessRoundExcludesPreviousAndSolved(t *testing.T) {
	c := catalog(t, "가방", "바다", "하늘")
	solved := map[string]struct{}{"가방": {}}

	for draw := range 10 {
		r := NewEndlessRound(c, &seqRand{draws: []int{draw}}, "바다", solved)
		assert.Equal(t, "하늘", r.Entry.Term, "draw %d", draw)
	}
}

func TestNewEndlessRoundFallsBackWhenAllSolved(t *testing.T) {
	c := catalog(t, "가방", "바다", "하늘")
	solved := map[string]struct{}{"가방": {}, "바다": {}, "하늘": {}}

	for draw := range 10 {
		r := NewEndlessRound(c, &seqRand{draws: []int{draw}}, "바다", solved)
		assert.NotEqual(t, "바다", r.Entry.Term, "draw %d", draw)
	}
}

func TestNewEndlessRoundSingleEntryCatalog(t *testing.T) {
	c := catalog(t, "가방")
	r := NewEndlessRound(c, &seqRand{draws: []int{0}}, "가방", map[string]struct{}{"가방": {}})
	assert.Equal(t, "가방", r.Entry.Term)
}

func TestSubmitExactMatchClearsRound(t *testing.T) {
	c := catalog(t, "가방", "바다")
	r := newRound(ModeDaily, c.At(0))

	guess, err := r.Submit("가방")
	require.NoError(t, err)
	assert.Equal(t, 100, guess.Breakdown.Overall)
	assert.Equal(t, StatusCleared, r.Status)
	assert.Len(t, r.Guesses, 1)
}

func TestSubmitScoresWithoutClearing(t *testing.T) {
	c := catalog(t, "가방")
	r := newRound(ModeDaily, c.At(0))

	guess, err := r.Submit("바다")
	require.NoError(t, err)
	assert.Equal(t, 40, guess.Breakdown.Overall)
	assert.Equal(t, 100, guess.Breakdown.Medial)
	assert.Equal(t, StatusPlaying, r.Status)
}

func TestSubmitRejectsEmptyAndNoiseOnly(t *testing.T) {
	c := catalog(t, "가방")
	r := newRound(ModeDaily, c.At(0))

	for _, raw := range []string{"", "   ", "\t", "?!", "... !!"} {
		_, err := r.Submit(raw)
		assert.ErrorIs(t, err, ErrEmptyGuess, "raw=%q", raw)
	}
	assert.Empty(t, r.Guesses)
}

func TestSubmitRejectsDuplicates(t *testing.T) {
	c := catalog(t, "가방")
	r := newRound(ModeDaily, c.At(0))

	_, err := r.Submit("바다")
	require.NoError(t, err)

	// Same normalized profile, different surface form.
	_, err = r.Submit(" 바 다! ")
	assert.ErrorIs(t, err, ErrDuplicateGuess)
	assert.Len(t, r.Guesses, 1)
}

func TestSubmitPrependsGuesses(t *testing.T) {
	c := catalog(t, "가방")
	r := newRound(ModeDaily, c.At(0))

	_, err := r.Submit("바다")
	require.NoError(t, err)
	_, err = r.Submit("하늘")
	require.NoError(t, err)

	require.Len(t, r.Guesses, 2)
	assert.Equal(t, "하늘", r.Guesses[0].Value, "most recent guess comes first")
	assert.Equal(t, "바다", r.Guesses[1].Value)
}

func TestChoseong(t *testing.T) {
	c := catalog(t, "가방")
	r := newRound(ModeDaily, c.At(0))
	assert.Equal(t, "ㄱㅂ", r.Choseong())
}

func TestHintsUnlockByGuessCount(t *testing.T) {
	c := catalog(t, "가방")
	r := newRound(ModeDaily, c.At(0))

	unlocked := func() []bool {
		hints := r.Hints()
		require.Len(t, hints, 3)
		return []bool{hints[0].Unlocked, hints[1].Unlocked, hints[2].Unlocked}
	}

	assert.Equal(t, []bool{true, false, false}, unlocked(), "before any guess")

	for i := 1; i <= 20; i++ {
		_, err := r.Submit(fmt.Sprintf("시도%d", i))
		require.NoError(t, err)
		switch {
		case i < 10:
			assert.Equal(t, []bool{true, false, false}, unlocked(), "after %d guesses", i)
		case i < 20:
			assert.Equal(t, []bool{true, true, false}, unlocked(), "after %d guesses", i)
		default:
			assert.Equal(t, []bool{true, true, true}, unlocked(), "after %d guesses", i)
		}
	}

	hints := r.Hints()
	assert.Equal(t, "2", hints[0].Value, "length hint counts characters, not bytes")
	assert.Equal(t, "테스트", hints[1].Value)
	assert.Equal(t, "가방 힌트", hints[2].Value)
}
