package validator

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// HumanizeField turns a field key into a display name:
// "email" becomes "Email", "categoryId" becomes "Category Id" and
// "monthly_income" becomes "Monthly Income".
func HumanizeField(name string) string {
	words := splitWords(name)
	if len(words) == 0 {
		return ""
	}
	// cases.Caser keeps state between calls and must not be shared.
	return cases.Title(language.English).String(strings.Join(words, " "))
}

func splitWords(s string) []string {
	var (
		words []string
		cur   []rune
		prev  rune
	)
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	for _, r := range s {
		switch {
		case r == '_' || r == '-' || r == '.' || unicode.IsSpace(r):
			flush()
		case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			flush()
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
		prev = r
	}
	flush()
	return words
}
