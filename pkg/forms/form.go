package forms

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/fintrack/pkg/finance"
	"github.com/dmitrymomot/fintrack/pkg/logger"
	"github.com/dmitrymomot/fintrack/pkg/validator"
)

// base carries the state shared by all forms.
type base struct {
	name   string
	id     uuid.UUID
	engine *validator.Engine
	logger *slog.Logger
}

func newBase(name string, opts []Option) base {
	o := options{logger: logger.Discard()}
	for _, opt := range opts {
		opt(&o)
	}

	log := o.logger.With(logger.Component("forms"), logger.Form(name))
	engineOpts := []validator.Option{validator.WithLogger(log), validator.WithFieldScope(name)}
	if o.translator != nil {
		engineOpts = append(engineOpts, validator.WithTranslator(o.translator, o.lang))
	}

	return base{
		name:   name,
		id:     uuid.New(),
		engine: validator.New(engineOpts...),
		logger: log,
	}
}

// ID identifies the current session of the form.
func (b *base) ID() uuid.UUID {
	return b.id
}

func (b *base) HasError(field string) bool {
	return b.engine.HasError(field)
}

func (b *base) GetError(field string) (string, bool) {
	return b.engine.GetError(field)
}

// Errors returns a copy of the current error map.
func (b *base) Errors() map[string]string {
	return b.engine.Errors()
}

func (b *base) reset() {
	b.id = uuid.New()
	b.engine.ClearAllErrors()
	b.logger.Debug("form opened", logger.FormID(b.id))
}

// rejected logs a failed bulk pass and returns the active errors.
func (b *base) rejected() error {
	errs := b.engine.Errors()
	b.logger.Info("form submission rejected",
		logger.FormID(b.id),
		logger.FieldErrors(errs),
	)
	return b.engine.Err()
}

// checked runs the request contract and logs the outcome. Contract failures
// are recorded in the error map so the form reports what blocked it.
func (b *base) checked(req any) error {
	if err := finance.CheckRequest(req); err != nil {
		verrs := validator.ExtractValidationErrors(err)
		if verrs == nil {
			b.logger.Error("request contract failed", logger.FormID(b.id), logger.Error(err))
			return err
		}
		b.engine.Record(verrs)
		b.logger.Warn("request contract failed",
			logger.FormID(b.id),
			logger.FieldErrors(b.engine.Errors()),
		)
		return b.engine.Err()
	}
	b.logger.Info("form submitted", logger.FormID(b.id))
	return nil
}
