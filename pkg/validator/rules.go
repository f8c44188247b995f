package validator

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var (
	emailRegex        = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	phoneRegex        = regexp.MustCompile(`^(\+\d{1,3}[- ]?)?\d{10}$`)
	phoneNoiseRegex   = regexp.MustCompile(`[\s()-]`)
	alphaOnlyRegex    = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
)

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func translationKey(kind RuleKind) string {
	return "validation." + string(kind)
}

func formatLimit(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// Required fails for Null, blank strings, NaN and zero.
// Zero counts as missing, so numeric fields that accept 0 must not use it.
func Required() Rule {
	return Rule{
		Kind:           RuleRequired,
		Message:        "is required",
		TranslationKey: translationKey(RuleRequired),
	}
}

// MinLength requires a string of at least n characters.
func MinLength(n int) Rule {
	return Rule{
		Kind:           RuleMinLength,
		Message:        fmt.Sprintf("must be at least %d characters", n),
		TranslationKey: translationKey(RuleMinLength),
		Params:         map[string]any{"min": n},
		limit:          float64(n),
	}
}

// MaxLength requires a string of at most n characters.
func MaxLength(n int) Rule {
	return Rule{
		Kind:           RuleMaxLength,
		Message:        fmt.Sprintf("must be at most %d characters", n),
		TranslationKey: translationKey(RuleMaxLength),
		Params:         map[string]any{"max": n},
		limit:          float64(n),
	}
}

func Email() Rule {
	return Rule{
		Kind:           RuleEmail,
		Message:        "must be in a valid email format",
		TranslationKey: translationKey(RuleEmail),
		match:          emailRegex,
	}
}

// PhoneNumber accepts ten digits with an optional +country code of up to
// three digits. Spaces, parentheses and hyphens are ignored.
func PhoneNumber() Rule {
	return Rule{
		Kind:           RulePhoneNumber,
		Message:        "must be a valid phone number",
		TranslationKey: translationKey(RulePhoneNumber),
	}
}

func Positive() Rule {
	return Rule{
		Kind:           RulePositive,
		Message:        "must be a positive number",
		TranslationKey: translationKey(RulePositive),
	}
}

func NonNegative() Rule {
	return Rule{
		Kind:           RuleNonNegative,
		Message:        "must be zero or positive",
		TranslationKey: translationKey(RuleNonNegative),
	}
}

// MinValue requires a number greater than or equal to min.
func MinValue(min float64) Rule {
	return Rule{
		Kind:           RuleMinValue,
		Message:        "must be at least " + formatLimit(min),
		TranslationKey: translationKey(RuleMinValue),
		Params:         map[string]any{"min": formatLimit(min)},
		limit:          min,
	}
}

// MaxValue requires a number less than or equal to max.
func MaxValue(max float64) Rule {
	return Rule{
		Kind:           RuleMaxValue,
		Message:        "must be at most " + formatLimit(max),
		TranslationKey: translationKey(RuleMaxValue),
		Params:         map[string]any{"max": formatLimit(max)},
		limit:          max,
	}
}

// Pattern tests a string against m using the caller's message.
func Pattern(m Matcher, message string) Rule {
	var params map[string]any
	if re, ok := m.(*regexp.Regexp); ok && re != nil {
		params = map[string]any{"pattern": re.String()}
	}
	return Rule{
		Kind:    RulePattern,
		Message: message,
		Params:  params,
		match:   m,
	}
}

// Matches requires strict equality with target, e.g. a password confirmation.
// label names the other field in the message.
func Matches(target Value, label string) Rule {
	return Rule{
		Kind:           RuleMatches,
		Message:        "must match " + label,
		TranslationKey: translationKey(RuleMatches),
		Params:         map[string]any{"label": label},
		target:         target,
	}
}

// AlphaOnly allows ASCII letters and whitespace.
func AlphaOnly() Rule {
	return Rule{
		Kind:           RuleAlphaOnly,
		Message:        "must contain only letters",
		TranslationKey: translationKey(RuleAlphaOnly),
		match:          alphaOnlyRegex,
	}
}

// Alphanumeric allows ASCII letters and digits.
func Alphanumeric() Rule {
	return Rule{
		Kind:           RuleAlphanumeric,
		Message:        "must contain only letters and numbers",
		TranslationKey: translationKey(RuleAlphanumeric),
		match:          alphanumericRegex,
	}
}

// Custom wraps an arbitrary predicate.
func Custom(check func(Value) bool, message string) Rule {
	return Rule{
		Kind:    RuleCustom,
		Message: message,
		check:   check,
	}
}

// OneOf requires a string equal to one of values.
func OneOf(values ...string) Rule {
	joined := strings.Join(values, ", ")
	return Rule{
		Kind:           RuleOneOf,
		Message:        "must be one of " + joined,
		TranslationKey: translationKey(RuleOneOf),
		Params:         map[string]any{"values": joined},
		choices:        slices.Clone(values),
	}
}

// Date requires a string that parses with layout, e.g. "2006-01-02".
func Date(layout string) Rule {
	return Rule{
		Kind:           RuleDate,
		Message:        "must be a valid date",
		TranslationKey: translationKey(RuleDate),
		Params:         map[string]any{"layout": layout},
		layout:         layout,
	}
}
