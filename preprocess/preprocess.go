// Package preprocess turns raw input text into the normalized, lowercased,
// whitespace-collapsed form the n-gram extractor and scoring engine expect.
package preprocess

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lower = cases.Lower(language.Und)

// Result is the output of Normalize: the cleaned text plus the fraction of
// its runes that belonged to a CJK ideographic block.
type Result struct {
	Text       string
	CJKDensity float64
}

// Normalize replaces non-letters with spaces, lowercases using full Unicode
// casing rules, inserts a boundary space at every CJK/non-CJK script
// transition so a run of Han characters glued to Latin text still tokenizes
// sanely, and collapses whitespace. Text that is not valid UTF-8 yields an
// empty Result, which the scoring engine labels zxx.
func Normalize(text string) Result {
	if !utf8.ValidString(text) {
		return Result{}
	}

	var b strings.Builder
	b.Grow(len(text) + 8)

	var total, cjk int
	prevCJK := false
	first := true

	for _, r := range text {
		isLetter := unicode.IsLetter(r)
		isCJK := isCJKIdeograph(r)

		if !isLetter {
			b.WriteByte(' ')
			prevCJK = false
			continue
		}

		if !first && isCJK != prevCJK {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		prevCJK = isCJK
		first = false

		total++
		if isCJK {
			cjk++
		}
	}

	normalized := collapseSpaces(lower.String(b.String()))

	density := 0.0
	if total > 0 {
		density = float64(cjk) / float64(total)
	}
	return Result{Text: normalized, CJKDensity: density}
}

func collapseSpaces(s string) string {
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}
