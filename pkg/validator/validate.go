package validator

import "strings"

const (
	fieldPlaceholder = "%{field}"
	fallbackMessage  = "is invalid"
)

// Result is the outcome of validating one value.
// Error, Rule and TranslationKey are empty when Valid is true.
type Result struct {
	Valid          bool
	Error          string
	Rule           RuleKind
	TranslationKey string
	Params         map[string]any
}

// Validate evaluates rules in order and stops at the first failure.
// The failing rule's message is prefixed with displayName when one is given.
// An empty rule list is always valid.
func Validate(v Value, rules []Rule, displayName string) Result {
	return evaluate(v, rules, displayName, Rule.defaultTemplate)
}

// templateFunc resolves the message template of a failed rule.
type templateFunc func(Rule) string

func (r Rule) defaultTemplate() string {
	return r.Message
}

func evaluate(v Value, rules []Rule, displayName string, template templateFunc) Result {
	for _, rule := range rules {
		if rule.Check(v) {
			continue
		}
		return Result{
			Valid:          false,
			Error:          formatMessage(template(rule), displayName),
			Rule:           rule.Kind,
			TranslationKey: rule.TranslationKey,
			Params:         rule.params(),
		}
	}
	return Result{Valid: true}
}

// formatMessage renders a template for displayName. The result is never empty.
func formatMessage(tmpl, displayName string) string {
	tmpl = strings.TrimSpace(tmpl)
	displayName = strings.TrimSpace(displayName)

	var msg string
	switch {
	case strings.Contains(tmpl, fieldPlaceholder):
		msg = strings.Join(strings.Fields(strings.ReplaceAll(tmpl, fieldPlaceholder, displayName)), " ")
	case displayName == "":
		msg = tmpl
	case tmpl == "":
		msg = displayName + " " + fallbackMessage
	default:
		msg = displayName + " " + tmpl
	}

	if msg == "" {
		return fallbackMessage
	}
	return msg
}
