package sanitizer

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
	dotsRegex       = regexp.MustCompile(`\.{2,}`)
	phoneNoiseRegex = regexp.MustCompile(`[\s()\-.]`)
)

// Apply runs transforms over value in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	for _, transform := range transforms {
		value = transform(value)
	}
	return value
}

// Compose builds a reusable pipeline out of transforms.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}

func Trim(s string) string {
	return strings.TrimSpace(s)
}

func ToLower(s string) string {
	return strings.ToLower(s)
}

func ToUpper(s string) string {
	return strings.ToUpper(s)
}

// NormalizeWhitespace collapses runs of whitespace into a single space and
// trims the ends.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// StripControl removes control characters except newlines and tabs.
func StripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' || !unicode.IsControl(r) {
			return r
		}
		return -1
	}, s)
}

// NormalizeEmail trims and lowercases an address and collapses repeated dots
// in the local part. Input without exactly one "@" is only trimmed and
// lowercased.
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}
	local = strings.Trim(dotsRegex.ReplaceAllString(local, "."), ".")
	return local + "@" + domain
}

// NormalizePhone drops spaces, parentheses, hyphens and dots.
func NormalizePhone(phone string) string {
	return phoneNoiseRegex.ReplaceAllString(strings.TrimSpace(phone), "")
}

// RoundMoney rounds to two decimal places. NaN and infinities pass through.
func RoundMoney(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return math.Round(v*100) / 100
}
