// Package session tracks one player's cross-round progress: solved
// terms, guess counters, and mode preference, persisted through the
// key-value port after every mutation.
package session

import (
	"encoding/json"
	"errors"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"jamodle/internal/game"
	"jamodle/internal/score"
	"jamodle/internal/store"
	"jamodle/internal/words"
)

// Logical persistence keys. Values at these keys may be missing or
// corrupt; the session substitutes defaults rather than failing.
const (
	keySolved = "jamodle:solved"
	keyStats  = "jamodle:stats"
	keyMode   = "jamodle:mode"
)

// Stats aggregates guess counters across rounds. CorrectAnswers never
// exceeds TotalGuesses.
type Stats struct {
	TotalGuesses   uint64    `json:"totalGuesses"`
	CorrectAnswers uint64    `json:"correctAnswers"`
	LastReset      time.Time `json:"lastReset"`
}

// ErrRoundOver rejects submissions against a round that is already
// cleared, or a daily round whose term was solved on a previous run.
var ErrRoundOver = errors.New("session: round already cleared")

// Session owns one player's active round and progress. Single-owner,
// not safe for concurrent use.
type Session struct {
	ID string

	catalog *words.Catalog
	store   store.Store
	rng     game.Rand
	now     func() time.Time
	log     zerolog.Logger

	stats  Stats
	solved map[string]struct{}
	mode   game.Mode
	round  *game.Round
}

// Option customizes a Session at construction time.
type Option func(*Session)

// WithRand injects the randomness source used for endless selection.
func WithRand(rng game.Rand) Option {
	return func(s *Session) { s.rng = rng }
}

// WithClock injects the time source used for daily selection and reset
// timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithLogger attaches a logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Session) { s.log = log }
}

// New restores progress from st and starts the first round according to
// the persisted mode preference. The catalog must be non-empty, which
// words.New already guarantees; a nil catalog is a programming error.
func New(catalog *words.Catalog, st store.Store, opts ...Option) (*Session, error) {
	if catalog == nil || catalog.Len() == 0 {
		return nil, words.ErrEmptyCatalog
	}
	s := &Session{
		ID:      uuid.NewString(),
		catalog: catalog,
		store:   st,
		rng:     game.CryptoRand{},
		now:     time.Now,
		log:     zerolog.Nop(),
		solved:  make(map[string]struct{}),
		mode:    game.ModeDaily,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.loadProgress()
	s.startRound("")
	return s, nil
}

// loadProgress restores the solved set, stats, and mode preference,
// substituting the zero value for anything missing or unparseable.
func (s *Session) loadProgress() {
	if raw, ok := s.store.Get(keySolved); ok {
		var terms []string
		if err := json.Unmarshal([]byte(raw), &terms); err != nil {
			s.log.Warn().Err(err).Msg("corrupt solved set, starting empty")
		} else {
			for _, t := range terms {
				s.solved[t] = struct{}{}
			}
		}
	}
	if raw, ok := s.store.Get(keyStats); ok {
		var st Stats
		if err := json.Unmarshal([]byte(raw), &st); err != nil {
			s.log.Warn().Err(err).Msg("corrupt stats, starting from zero")
		} else {
			s.stats = st
		}
	}
	if raw, ok := s.store.Get(keyMode); ok {
		switch game.Mode(raw) {
		case game.ModeDaily, game.ModeEndless:
			s.mode = game.Mode(raw)
		default:
			s.log.Warn().Str("value", raw).Msg("unknown mode preference, using daily")
		}
	}
}

// Round returns the active round.
func (s *Session) Round() *game.Round {
	return s.round
}

// Mode returns the current selection policy.
func (s *Session) Mode() game.Mode {
	return s.mode
}

// Stats returns a copy of the aggregate counters.
func (s *Session) Stats() Stats {
	return s.stats
}

// Solved reports whether term was ever completed.
func (s *Session) Solved(term string) bool {
	_, ok := s.solved[term]
	return ok
}

// SolvedCount reports how many distinct terms were ever completed.
func (s *Session) SolvedCount() int {
	return len(s.solved)
}

// Submit runs one guess through the round machine and updates the
// aggregate counters. Validation failures pass through unchanged and
// leave both round and stats untouched.
func (s *Session) Submit(raw string) (game.Guess, score.Tier, error) {
	if s.round.Status == game.StatusCleared ||
		(s.round.Mode == game.ModeDaily && s.Solved(s.round.Entry.Term)) {
		return game.Guess{}, score.Tier{}, ErrRoundOver
	}
	guess, err := s.round.Submit(raw)
	if err != nil {
		return game.Guess{}, score.Tier{}, err
	}

	correct := guess.Breakdown.Overall == 100
	s.RecordGuess(correct)
	if correct {
		s.MarkSolved(s.round.Entry.Term)
	}

	s.log.Info().
		Str("session", s.ID).
		Int("overall", guess.Breakdown.Overall).
		Bool("correct", correct).
		Msg("guess scored")
	return guess, score.TierFor(guess.Breakdown.Overall), nil
}

// RecordGuess bumps the counters and persists them.
func (s *Session) RecordGuess(correct bool) {
	s.stats.TotalGuesses++
	if correct {
		s.stats.CorrectAnswers++
	}
	s.persistStats()
}

// MarkSolved inserts term into the solved set. Idempotent: a term that
// is already present is neither re-inserted nor re-persisted.
func (s *Session) MarkSolved(term string) {
	if _, ok := s.solved[term]; ok {
		return
	}
	s.solved[term] = struct{}{}
	s.persistSolved()
}

// SetMode switches the selection policy, persists the preference, and
// starts a fresh round.
func (s *Session) SetMode(mode game.Mode) {
	s.mode = mode
	s.persistMode()
	s.startRound(s.currentTerm())
}

// NextRound replaces the active round. In endless mode the previous
// term is excluded from selection.
func (s *Session) NextRound() *game.Round {
	s.startRound(s.currentTerm())
	return s.round
}

// Reset wipes all progress: empty solved set, zeroed counters with a
// fresh LastReset, and the mode forced back to Daily with a new round.
func (s *Session) Reset() {
	s.solved = make(map[string]struct{})
	s.stats = Stats{LastReset: s.now()}
	s.mode = game.ModeDaily
	s.persistSolved()
	s.persistStats()
	s.persistMode()
	s.startRound("")
	s.log.Info().Str("session", s.ID).Msg("progress reset")
}

// ConquestRate is the percentage of catalog terms ever solved.
func (s *Session) ConquestRate() int {
	return int(math.Round(100 * float64(len(s.solved)) / float64(s.catalog.Len())))
}

// SuccessRate is the percentage of guesses that were exact matches.
func (s *Session) SuccessRate() int {
	if s.stats.TotalGuesses == 0 {
		return 0
	}
	return int(math.Round(100 * float64(s.stats.CorrectAnswers) / float64(s.stats.TotalGuesses)))
}

func (s *Session) currentTerm() string {
	if s.round == nil {
		return ""
	}
	return s.round.Entry.Term
}

func (s *Session) startRound(prevTerm string) {
	switch s.mode {
	case game.ModeEndless:
		s.round = game.NewEndlessRound(s.catalog, s.rng, prevTerm, s.solved)
	default:
		s.round = game.NewDailyRound(s.catalog, s.now())
	}
	s.log.Info().
		Str("session", s.ID).
		Str("mode", string(s.mode)).
		Str("term", s.round.Entry.Term).
		Msg("round started")
}

func (s *Session) persistSolved() {
	terms := lo.Keys(s.solved)
	sort.Strings(terms)
	s.persist(keySolved, terms)
}

func (s *Session) persistStats() {
	s.persist(keyStats, s.stats)
}

func (s *Session) persistMode() {
	if err := s.store.Set(keyMode, string(s.mode)); err != nil {
		s.log.Warn().Err(err).Str("key", keyMode).Msg("persist failed")
	}
}

func (s *Session) persist(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("marshal failed")
		return
	}
	if err := s.store.Set(key, string(data)); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("persist failed")
	}
}
