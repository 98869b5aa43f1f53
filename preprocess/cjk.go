package preprocess

import "unicode"

// isCJKIdeograph reports whether r belongs to a CJK Unified Ideographs
// family block. Hiragana, Katakana and Hangul are deliberately excluded:
// they are distinct scripts with their own n-gram behavior, and lumping
// them in would defeat the density heuristic in Normalize.
func isCJKIdeograph(r rune) bool {
	return unicode.Is(unicode.Han, r)
}
