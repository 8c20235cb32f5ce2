package domain

// Language selects which localized strings and which title/description
// slot a consumer renders.
type Language string

const (
	English Language = "en"
	Arabic  Language = "ar"
)

// arabicBlockStart and arabicBlockEnd bound the Arabic Unicode block.
const (
	arabicBlockStart = 0x0600
	arabicBlockEnd   = 0x06FF
)

// DetectLanguage returns Arabic if s contains any character in the Arabic
// Unicode block (U+0600..U+06FF), English otherwise.
func DetectLanguage(s string) Language {
	for _, r := range s {
		if r >= arabicBlockStart && r <= arabicBlockEnd {
			return Arabic
		}
	}
	return English
}

// IsArabicRune reports whether r falls in the Arabic Unicode block.
func IsArabicRune(r rune) bool {
	return r >= arabicBlockStart && r <= arabicBlockEnd
}
