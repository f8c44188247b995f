package validator

import "regexp"

var (
	lowerRegex     = regexp.MustCompile(`[a-z]`)
	upperRegex     = regexp.MustCompile(`[A-Z]`)
	digitRegex     = regexp.MustCompile(`\d`)
	lettersOnlyRgx = regexp.MustCompile(`^[A-Za-z ]+$`)
)

// Presets used by the finance forms. Each call returns a fresh slice.

func EmailRules() []Rule {
	return []Rule{Required(), Email()}
}

// PasswordRules requires eight characters with a lowercase letter, an
// uppercase letter and a digit.
func PasswordRules() []Rule {
	return []Rule{
		Required(),
		MinLength(8),
		Pattern(MatchAll(lowerRegex, upperRegex, digitRegex), "must contain uppercase, lowercase, and number").
			WithTranslationKey("validation.password_complexity"),
	}
}

func SimplePasswordRules() []Rule {
	return []Rule{Required(), MinLength(6)}
}

func NameRules() []Rule {
	return []Rule{
		Required(),
		MinLength(2),
		MaxLength(50),
		Pattern(lettersOnlyRgx, "must contain only alphabets").
			WithTranslationKey("validation.name_letters"),
	}
}

func SimpleNameRules() []Rule {
	return []Rule{Required(), MinLength(2), MaxLength(50)}
}

func PhoneNumberRules() []Rule {
	return []Rule{Required(), PhoneNumber()}
}

func PositiveAmountRules() []Rule {
	return []Rule{Required(), Positive()}
}

// NonNegativeAmountRules still rejects zero through Required.
func NonNegativeAmountRules() []Rule {
	return []Rule{Required(), NonNegative()}
}
