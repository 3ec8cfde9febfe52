// Package game holds the round state machine: one hidden word, its
// cached phoneme profile, and the guesses scored against it.
package game

import (
	"errors"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/samber/lo"

	"jamodle/internal/daily"
	"jamodle/internal/hangul"
	"jamodle/internal/score"
	"jamodle/internal/words"
)

// Mode selects how the hidden word is chosen.
type Mode string

const (
	ModeDaily   Mode = "daily"
	ModeEndless Mode = "endless"
)

// Status is the round lifecycle state. Cleared is terminal; a new round
// starts back at Playing.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusCleared Status = "cleared"
)

// Validation failures. The round state is untouched when these are
// returned.
var (
	ErrEmptyGuess     = errors.New("game: guess is empty")
	ErrDuplicateGuess = errors.New("game: guess already submitted this round")
)

// Guess records one scored submission. Immutable once appended.
type Guess struct {
	Value      string
	Normalized string
	Breakdown  score.Breakdown
}

// Round is the state for one hidden word. It is owned by a single
// session and is not safe for concurrent use.
type Round struct {
	Mode    Mode
	Entry   words.WordEntry
	Status  Status
	Guesses []Guess // most recent first

	target hangul.Profile
}

// NewDailyRound starts a round with the deterministic entry for date.
// Every player gets the same entry on the same calendar day.
func NewDailyRound(catalog *words.Catalog, date time.Time) *Round {
	entry := catalog.At(daily.Index(daily.Key(date), catalog.Len()))
	return newRound(ModeDaily, entry)
}

// NewEndlessRound starts a round with a uniformly random entry,
// excluding the previous term and every already-solved term. If that
// pool is empty it falls back to excluding only the previous term, and
// for a single-entry catalog to the whole catalog, so selection always
// succeeds.
func NewEndlessRound(catalog *words.Catalog, rng Rand, prevTerm string, solved map[string]struct{}) *Round {
	pool := lo.Filter(catalog.Entries(), func(e words.WordEntry, _ int) bool {
		if e.Term == prevTerm {
			return false
		}
		_, done := solved[e.Term]
		return !done
	})
	if len(pool) == 0 {
		pool = lo.Filter(catalog.Entries(), func(e words.WordEntry, _ int) bool {
			return e.Term != prevTerm
		})
	}
	if len(pool) == 0 {
		pool = catalog.Entries()
	}
	return newRound(ModeEndless, pool[rng.Intn(len(pool))])
}

func newRound(mode Mode, entry words.WordEntry) *Round {
	return &Round{
		Mode:    mode,
		Entry:   entry,
		Status:  StatusPlaying,
		Guesses: []Guess{},
		target:  hangul.NewProfile(entry.Term),
	}
}

// Target returns the cached phoneme profile of the hidden word.
func (r *Round) Target() hangul.Profile {
	return r.target
}

// Choseong returns the initial-consonant reveal the player sees before
// any hints unlock.
func (r *Round) Choseong() string {
	return r.target.Initial
}

// Submit validates and scores one raw guess. Rejected guesses (empty,
// punctuation-only, duplicate within the round) leave the round
// unchanged. An overall score of 100 transitions the round to Cleared.
func (r *Round) Submit(raw string) (Guess, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Guess{}, ErrEmptyGuess
	}
	profile := hangul.NewProfile(trimmed)
	if profile.Combined == "" {
		return Guess{}, ErrEmptyGuess
	}
	for _, g := range r.Guesses {
		if g.Normalized == profile.Combined {
			return Guess{}, ErrDuplicateGuess
		}
	}

	guess := Guess{
		Value:      trimmed,
		Normalized: profile.Combined,
		Breakdown:  score.Compare(profile, r.target),
	}
	r.Guesses = append([]Guess{guess}, r.Guesses...)
	if guess.Breakdown.Overall == 100 {
		r.Status = StatusCleared
	}
	return guess, nil
}

// Hint is one unlockable clue about the hidden word.
type Hint struct {
	Label    string
	Value    string
	Unlocked bool
}

// Cumulative guess counts at which each hint opens.
var hintThresholds = [3]int{0, 10, 20}

// Hints reports the three clues with their unlock state. Unlocking is a
// pure function of the guess count and is recomputed on every call.
func (r *Round) Hints() []Hint {
	n := len(r.Guesses)
	return []Hint{
		{Label: "글자 수", Value: strconv.Itoa(utf8.RuneCountInString(r.Entry.Term)), Unlocked: n >= hintThresholds[0]},
		{Label: "분류", Value: r.Entry.Category, Unlocked: n >= hintThresholds[1]},
		{Label: "힌트", Value: r.Entry.Hint, Unlocked: n >= hintThresholds[2]},
	}
}
