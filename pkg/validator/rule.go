package validator

import (
	"fmt"
	"maps"
	"math"
	"regexp"
	"slices"
	"sort"
	"time"
	"unicode/utf8"
)

// RuleKind identifies the predicate a Rule evaluates.
type RuleKind string

const (
	RuleRequired     RuleKind = "required"
	RuleMinLength    RuleKind = "min_length"
	RuleMaxLength    RuleKind = "max_length"
	RuleEmail        RuleKind = "email"
	RulePhoneNumber  RuleKind = "phone_number"
	RulePositive     RuleKind = "positive"
	RuleNonNegative  RuleKind = "non_negative"
	RuleMinValue     RuleKind = "min_value"
	RuleMaxValue     RuleKind = "max_value"
	RulePattern      RuleKind = "pattern"
	RuleMatches      RuleKind = "matches"
	RuleAlphaOnly    RuleKind = "alpha_only"
	RuleAlphanumeric RuleKind = "alphanumeric"
	RuleCustom       RuleKind = "custom"
	RuleOneOf        RuleKind = "one_of"
	RuleDate         RuleKind = "date"
)

// Matcher is satisfied by *regexp.Regexp and by MatchAll.
type Matcher interface {
	MatchString(s string) bool
}

// Rule is a named predicate with its failure message template.
//
// Rules are plain values: Kind, Message, TranslationKey and Params describe
// them completely for comparison and translation, while the unexported fields
// hold the compiled parameters used by Check. Message may contain the
// "%{field}" placeholder; otherwise the display name is prepended.
type Rule struct {
	Kind           RuleKind
	Message        string
	TranslationKey string
	Params         map[string]any

	limit   float64
	target  Value
	match   Matcher
	check   func(Value) bool
	choices []string
	layout  string
}

// Check evaluates the rule against v. It never panics; a rule with an unknown
// kind or missing predicate fails.
func (r Rule) Check(v Value) bool {
	switch r.Kind {
	case RuleRequired:
		return present(v)
	case RuleMinLength:
		s, ok := v.AsString()
		return ok && float64(utf8.RuneCountInString(s)) >= r.limit
	case RuleMaxLength:
		s, ok := v.AsString()
		return ok && float64(utf8.RuneCountInString(s)) <= r.limit
	case RuleEmail, RuleAlphaOnly, RuleAlphanumeric, RulePattern:
		s, ok := v.AsString()
		return ok && r.match != nil && r.match.MatchString(s)
	case RulePhoneNumber:
		s, ok := v.AsString()
		return ok && phoneRegex.MatchString(phoneNoiseRegex.ReplaceAllString(s, ""))
	case RulePositive:
		n, ok := v.AsNumber()
		return ok && n > 0
	case RuleNonNegative:
		n, ok := v.AsNumber()
		return ok && n >= 0
	case RuleMinValue:
		n, ok := v.AsNumber()
		return ok && n >= r.limit
	case RuleMaxValue:
		n, ok := v.AsNumber()
		return ok && n <= r.limit
	case RuleMatches:
		return v.Equal(r.target)
	case RuleCustom:
		return r.check != nil && r.check(v)
	case RuleOneOf:
		s, ok := v.AsString()
		return ok && slices.Contains(r.choices, s)
	case RuleDate:
		s, ok := v.AsString()
		if !ok {
			return false
		}
		_, err := time.Parse(r.layout, s)
		return err == nil
	}
	return false
}

// WithMessage returns a copy of the rule with a different message template.
// The translation key is dropped so the custom wording is never overridden.
func (r Rule) WithMessage(message string) Rule {
	r.Message = message
	r.TranslationKey = ""
	return r
}

// WithTranslationKey returns a copy of the rule resolved through key when the
// engine has a translator.
func (r Rule) WithTranslationKey(key string) Rule {
	r.TranslationKey = key
	return r
}

// translationArgs flattens Params into sorted key/value pairs.
func (r Rule) translationArgs() []string {
	return flattenParams(r.Params)
}

func flattenParams(params map[string]any) []string {
	if len(params) == 0 {
		return nil
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		args = append(args, k, fmt.Sprint(params[k]))
	}
	return args
}

func (r Rule) params() map[string]any {
	return maps.Clone(r.Params)
}

// present implements the required policy: Null is missing, a string is
// missing when blank, a number is missing when NaN or zero.
func present(v Value) bool {
	switch v.Kind() {
	case KindNull:
		return false
	case KindString:
		s, _ := v.AsString()
		return !isBlank(s)
	case KindNumber:
		n, _ := v.AsNumber()
		return !math.IsNaN(n) && n != 0
	default:
		return true
	}
}

// MatchAll matches when every pattern matches. It stands in for lookahead
// assertions, which RE2 does not support.
func MatchAll(patterns ...*regexp.Regexp) Matcher {
	return matchAll(patterns)
}

type matchAll []*regexp.Regexp

func (m matchAll) MatchString(s string) bool {
	for _, re := range m {
		if re == nil || !re.MatchString(s) {
			return false
		}
	}
	return true
}
