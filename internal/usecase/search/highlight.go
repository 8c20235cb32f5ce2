package search

import "strings"

const (
	markOpen  = "<mark>"
	markClose = "</mark>"
)

// Highlight wraps every case-insensitive occurrence of each keyword inside
// text with <mark> markers, preserving the original casing of the matched
// substring. Keywords are applied in order; a later keyword also scans the
// markup inserted for an earlier one, so overlapping keywords can produce
// nested or double wrapping. That matches the portal UI's observed
// behavior and is intentionally not corrected here.
//
// Empty input yields an empty string.
func Highlight(text string, keywords []string) string {
	if text == "" {
		return ""
	}
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		text = wrapOccurrences(text, kw)
	}
	return text
}

// wrapOccurrences wraps each occurrence of kw in text. Matching folds ASCII
// letters only, which is what the LIKE matching in the adapters does as
// well; Arabic has no case so folding is a no-op there.
func wrapOccurrences(text, kw string) string {
	folded := foldASCII(text)
	kw = foldASCII(kw)

	idx := strings.Index(folded, kw)
	if idx < 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + 2*(len(markOpen)+len(markClose)))
	start := 0
	for idx >= 0 {
		pos := start + idx
		b.WriteString(text[start:pos])
		b.WriteString(markOpen)
		b.WriteString(text[pos : pos+len(kw)])
		b.WriteString(markClose)
		start = pos + len(kw)
		idx = strings.Index(folded[start:], kw)
	}
	b.WriteString(text[start:])
	return b.String()
}

// foldASCII lowercases ASCII letters without changing byte length, so fold
// offsets map 1:1 back onto the original text.
func foldASCII(s string) string {
	hasUpper := false
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
