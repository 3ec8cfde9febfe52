// Package hangul decomposes precomposed Korean syllable blocks into their
// constituent phonemes and builds the per-channel phoneme profiles the
// similarity scorer compares.
package hangul

const (
	syllableBase = 0xAC00 // 가, first precomposed syllable
	syllableLast = 0xD7A3 // 힣, last precomposed syllable

	medialCount = 21
	finalCount  = 28
	perInitial  = medialCount * finalCount
)

var initials = [19]string{
	"ㄱ", "ㄲ", "ㄴ", "ㄷ", "ㄸ", "ㄹ", "ㅁ", "ㅂ", "ㅃ", "ㅅ",
	"ㅆ", "ㅇ", "ㅈ", "ㅉ", "ㅊ", "ㅋ", "ㅌ", "ㅍ", "ㅎ",
}

var medials = [21]string{
	"ㅏ", "ㅐ", "ㅑ", "ㅒ", "ㅓ", "ㅔ", "ㅕ", "ㅖ", "ㅗ", "ㅘ",
	"ㅙ", "ㅚ", "ㅛ", "ㅜ", "ㅝ", "ㅞ", "ㅟ", "ㅠ", "ㅡ", "ㅢ", "ㅣ",
}

// Index 0 is the absent final consonant.
var finals = [28]string{
	"", "ㄱ", "ㄲ", "ㄳ", "ㄴ", "ㄵ", "ㄶ", "ㄷ", "ㄹ", "ㄺ",
	"ㄻ", "ㄼ", "ㄽ", "ㄾ", "ㄿ", "ㅀ", "ㅁ", "ㅂ", "ㅄ", "ㅅ",
	"ㅆ", "ㅇ", "ㅈ", "ㅊ", "ㅋ", "ㅌ", "ㅍ", "ㅎ",
}

var (
	initialIndex = glyphIndex(initials[:])
	medialIndex  = glyphIndex(medials[:])
	finalIndex   = glyphIndex(finals[:])
)

func glyphIndex(glyphs []string) map[string]int {
	m := make(map[string]int, len(glyphs))
	for i, g := range glyphs {
		m[g] = i
	}
	return m
}

// Syllable holds the phoneme glyphs of one decomposed syllable block.
// Final is the empty string when the syllable has no trailing consonant.
type Syllable struct {
	Initial string
	Medial  string
	Final   string
}

// Decompose splits a precomposed syllable block into its three phonemes.
// The second return value is false for any rune outside the syllable
// block; such runes pass through the profile builder unchanged.
func Decompose(r rune) (Syllable, bool) {
	if r < syllableBase || r > syllableLast {
		return Syllable{}, false
	}
	offset := int(r - syllableBase)
	return Syllable{
		Initial: initials[offset/perInitial],
		Medial:  medials[offset%perInitial/finalCount],
		Final:   finals[offset%finalCount],
	}, true
}

// Compose is the inverse of Decompose: it reassembles a syllable block
// from its phoneme glyphs. It returns false when any glyph is not in the
// corresponding phoneme table.
func Compose(s Syllable) (rune, bool) {
	i, ok := initialIndex[s.Initial]
	if !ok {
		return 0, false
	}
	m, ok := medialIndex[s.Medial]
	if !ok {
		return 0, false
	}
	f, ok := finalIndex[s.Final]
	if !ok {
		return 0, false
	}
	return rune(syllableBase + i*perInitial + m*finalCount + f), true
}

// IsSyllable reports whether r is a precomposed syllable block.
func IsSyllable(r rune) bool {
	return r >= syllableBase && r <= syllableLast
}
