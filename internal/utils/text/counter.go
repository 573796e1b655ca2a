// Package text provides small utilities for text measurement shared by the
// formatting pipeline and its observability.
package text

// CountRunes counts the number of Unicode characters (runes) in the given
// text. Length caps and summary size metrics are defined in characters, not
// bytes, so multi-byte input (accented text, CJK, emoji) must be counted by
// rune.
//
// Examples:
//
//	CountRunes("hello")    // 5
//	CountRunes("résumé")   // 6
//	CountRunes("")         // 0
func CountRunes(text string) int {
	return len([]rune(text))
}
