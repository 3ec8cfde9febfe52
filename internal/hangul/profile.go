package hangul

import "strings"

// Profile is the four-channel phoneme fingerprint of a string. Each
// channel is a sanitized string over {compatibility jamo, ASCII letters,
// ASCII digits}. Profiles are derived values and never persisted.
type Profile struct {
	Combined string
	Initial  string
	Medial   string
	Final    string
}

// NewProfile builds the channel strings for text, iterating by Unicode
// scalar value. Syllable blocks contribute their phonemes to the matching
// channels; everything else is sanitized and appended to all four
// channels so that ASCII tokens are never silently dropped from
// comparison.
func NewProfile(text string) Profile {
	var combined, initial, medial, final strings.Builder
	for _, r := range text {
		if s, ok := Decompose(r); ok {
			combined.WriteString(s.Initial)
			combined.WriteString(s.Medial)
			combined.WriteString(s.Final)
			initial.WriteString(s.Initial)
			medial.WriteString(s.Medial)
			if s.Final != "" {
				final.WriteString(s.Final)
			}
			continue
		}
		clean := Sanitize(string(r))
		combined.WriteString(clean)
		initial.WriteString(clean)
		medial.WriteString(clean)
		final.WriteString(clean)
	}
	return Profile{
		Combined: Sanitize(combined.String()),
		Initial:  Sanitize(initial.String()),
		Medial:   Sanitize(medial.String()),
		Final:    Sanitize(final.String()),
	}
}

// Sanitize lowercases ASCII letters and strips every rune that is neither
// an ASCII letter or digit nor a compatibility jamo glyph. Idempotent.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 0x3131 && r <= 0x3163: // ㄱ..ㅣ
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Normalize returns the canonical comparison key for text: the combined
// channel of its profile. Two guesses with equal keys are the same guess.
func Normalize(text string) string {
	return NewProfile(text).Combined
}
