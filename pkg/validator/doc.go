// Package validator implements declarative field validation for the finance
// forms: a fixed catalog of rules, first-failure evaluation of a value against
// an ordered rule list, and an Engine that keeps the per-form error map read by
// UI bindings.
//
// # Values and rules
//
// Inputs are wrapped in a Value, a tagged union of Null, String, Number, Bool
// and Object, so rules never guess at dynamic types. A Rule is a plain record
// (Kind, Message, TranslationKey, Params) evaluated by a single switch in
// Rule.Check; two calls to the same factory with the same arguments produce
// equal records.
//
//	res := validator.Validate(validator.String("bad"),
//	    []validator.Rule{validator.Required(), validator.Email()}, "Email")
//	// res.Valid == false
//	// res.Error == "Email must be in a valid email format"
//
// Required treats numeric zero as missing. Fields that legitimately accept 0
// should rely on NonNegative or MinValue alone.
//
// # Error map
//
// An Engine belongs to one form instance:
//
//	eng := validator.New()
//	eng.ValidateField("amount", validator.Number(0), validator.PositiveAmountRules(), "Amount")
//	msg, _ := eng.GetError("amount") // "Amount is required"
//
//	ok := eng.ValidateFields(validator.Fields{
//	    "email": {Value: validator.String(email), Rules: validator.EmailRules()},
//	})
//
// ValidateField mutates one key; ValidateFields replaces the whole map so
// fields absent from the call are cleared. When no display name is given the
// field key is humanized ("categoryId" becomes "Category Id").
//
// # Translation
//
// Rules carry translation keys ("validation.required", ...). Pass any
// Translator, such as *i18n.Translator loaded from Translations, with
// WithTranslator to render localized messages. Caller-supplied messages
// (Pattern, Custom) are used verbatim unless a key is attached with
// Rule.WithTranslationKey.
package validator
