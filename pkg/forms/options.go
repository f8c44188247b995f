package forms

import (
	"log/slog"

	"github.com/dmitrymomot/fintrack/pkg/validator"
)

type options struct {
	logger     *slog.Logger
	translator validator.Translator
	lang       string
}

// Option configures a form.
type Option func(*options)

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithTranslator renders error messages in lang.
func WithTranslator(t validator.Translator, lang string) Option {
	return func(o *options) {
		o.translator = t
		o.lang = lang
	}
}
