// Package i18n translates validation messages and other user-facing strings.
//
// A Translator loads nested catalogs of the form
//
//	en:
//	  validation:
//	    min_length: "must be at least %{min} characters"
//
// through a TranslationAdapter (MapAdapter, FileAdapter or FSAdapter) and a
// Parser (YAML via gopkg.in/yaml.v3, or JSON). Keys are dot paths and values
// may reference named parameters with %{name}:
//
//	tr, err := i18n.NewTranslator(ctx,
//	    i18n.NewFSAdapter(validator.Translations, "translations"),
//	    i18n.WithDefaultLanguage("en"),
//	)
//	msg := tr.T("it-IT", "validation.min_length", "min", "8")
//
// Language lookup falls back from the requested tag to its base language
// ("it-IT" to "it") and then to the default language. Missing keys return the
// key itself unless WithFallbackToKey(false) is set.
//
// Translator is safe for concurrent use.
package i18n
