package validator

import (
	"log/slog"
	"maps"
	"sort"
	"sync"

	"github.com/dmitrymomot/fintrack/pkg/logger"
)

// Translator resolves message templates by language and key.
// *i18n.Translator satisfies it.
type Translator interface {
	T(lang, key string, args ...string) string
	HasTranslation(lang, key string) bool
}

// Field describes one input of a bulk validation pass.
type Field struct {
	Value       Value
	Rules       []Rule
	DisplayName string
}

// Fields maps field names to their descriptors.
type Fields map[string]Field

// Engine owns the error map of a single form.
//
// ValidateField upserts or removes one key, ValidateFields replaces the whole
// map. Rules are evaluated without holding the lock, so a custom predicate
// may read the engine; concurrent writers follow last-write-wins.
// The zero Engine is ready to use with the default settings of New.
type Engine struct {
	mu     sync.RWMutex
	errors map[string]ValidationError

	translator  Translator
	lang        string
	scope       string
	displayName func(field string) string
	logger      *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithTranslator localizes rule messages that carry a translation key.
func WithTranslator(t Translator, lang string) Option {
	return func(e *Engine) {
		if t != nil {
			e.translator = t
			e.lang = lang
		}
	}
}

// WithFieldScope sets the catalog scope for display names. With a translator
// configured, a field name is looked up as "fields.<scope>.<field>" and then
// as "fields.<field>"; a catalog entry wins over the caller's display name.
func WithFieldScope(scope string) Option {
	return func(e *Engine) {
		e.scope = scope
	}
}

// WithLogger logs failed fields at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithDisplayNames overrides how field keys become display names when the
// caller does not pass one. The default is HumanizeField.
func WithDisplayNames(fn func(field string) string) Option {
	return func(e *Engine) {
		if fn != nil {
			e.displayName = fn
		}
	}
}

// New creates an engine with an empty error map.
func New(opts ...Option) *Engine {
	e := &Engine{
		errors:      make(map[string]ValidationError),
		displayName: HumanizeField,
		logger:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Validate runs rules like the package-level Validate but with the engine's
// translator. It does not touch the error map.
func (e *Engine) Validate(v Value, rules []Rule, displayName string) Result {
	return evaluate(v, rules, displayName, e.template)
}

// ValidateField validates one field and records or clears its error.
// Other fields are left untouched. It reports whether the field is valid.
func (e *Engine) ValidateField(name string, v Value, rules []Rule, displayName string) bool {
	res := e.Validate(v, rules, e.resolveName(name, displayName))

	e.mu.Lock()
	if res.Valid {
		delete(e.errors, name)
	} else {
		if e.errors == nil {
			e.errors = make(map[string]ValidationError)
		}
		e.errors[name] = toValidationError(name, res)
	}
	e.mu.Unlock()

	if !res.Valid {
		e.log().Debug("field validation failed",
			logger.Field(name),
			logger.Rule(string(res.Rule)),
		)
	}
	return res.Valid
}

// ValidateFields validates every field independently and replaces the error
// map with exactly the failing ones. It reports whether all fields passed.
func (e *Engine) ValidateFields(fields Fields) bool {
	next := make(map[string]ValidationError)
	for name, f := range fields {
		res := e.Validate(f.Value, f.Rules, e.resolveName(name, f.DisplayName))
		if !res.Valid {
			next[name] = toValidationError(name, res)
		}
	}

	e.mu.Lock()
	e.errors = next
	e.mu.Unlock()

	if len(next) > 0 {
		e.log().Debug("form validation failed",
			slog.Int("fields", len(fields)),
			slog.Int("failed", len(next)),
		)
	}
	return len(next) == 0
}

func (e *Engine) HasError(name string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.errors[name]
	return ok
}

// GetError returns the active message for name.
func (e *Engine) GetError(name string) (string, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	err, ok := e.errors[name]
	return err.Message, ok
}

func (e *Engine) ClearError(name string) {
	e.mu.Lock()
	delete(e.errors, name)
	e.mu.Unlock()
}

// ClearAllErrors empties the map, e.g. when a dialog is reopened for
// another entity.
func (e *Engine) ClearAllErrors() {
	e.mu.Lock()
	e.errors = make(map[string]ValidationError)
	e.mu.Unlock()
}

// Errors returns a copy of the error map.
func (e *Engine) Errors() map[string]string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	m := make(map[string]string, len(e.errors))
	for name, err := range e.errors {
		m[name] = err.Message
	}
	return m
}

func (e *Engine) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.errors)
}

// Valid reports whether no field currently has an error.
func (e *Engine) Valid() bool {
	return e.Len() == 0
}

// Err returns the active errors sorted by field, or nil.
func (e *Engine) Err() error {
	e.mu.RLock()
	verrs := make(ValidationErrors, 0, len(e.errors))
	for _, err := range e.errors {
		verrs = append(verrs, err)
	}
	e.mu.RUnlock()

	if len(verrs) == 0 {
		return nil
	}
	sort.Slice(verrs, func(i, j int) bool { return verrs[i].Field < verrs[j].Field })
	return verrs
}

// Record upserts failures found outside the engine, such as a request
// contract check, so the error map reflects them. Messages with a known
// translation key are rendered in the engine's language. Entries without a
// field or message are ignored.
func (e *Engine) Record(errs ValidationErrors) {
	recorded := make(ValidationErrors, 0, len(errs))
	for _, err := range errs {
		if err.Field == "" || err.Message == "" {
			continue
		}
		recorded = append(recorded, e.localize(err))
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.errors == nil {
		e.errors = make(map[string]ValidationError, len(recorded))
	}
	for _, err := range recorded {
		e.errors[err.Field] = err
	}
}

func (e *Engine) localize(err ValidationError) ValidationError {
	if e.translator == nil || err.TranslationKey == "" {
		return err
	}
	if !e.translator.HasTranslation(e.lang, err.TranslationKey) {
		return err
	}
	tmpl := e.translator.T(e.lang, err.TranslationKey, flattenParams(err.TranslationValues)...)
	err.Message = formatMessage(tmpl, e.resolveName(err.Field, ""))
	return err
}

func (e *Engine) resolveName(name, displayName string) string {
	if n, ok := e.catalogName(name); ok {
		return n
	}
	if displayName != "" {
		return displayName
	}
	if e.displayName == nil {
		return HumanizeField(name)
	}
	return e.displayName(name)
}

func (e *Engine) catalogName(name string) (string, bool) {
	if e.translator == nil || name == "" {
		return "", false
	}
	keys := []string{"fields." + name}
	if e.scope != "" {
		keys = append([]string{"fields." + e.scope + "." + name}, keys...)
	}
	for _, key := range keys {
		if e.translator.HasTranslation(e.lang, key) {
			return e.translator.T(e.lang, key), true
		}
	}
	return "", false
}

func (e *Engine) log() *slog.Logger {
	if e.logger == nil {
		return logger.Discard()
	}
	return e.logger
}

func (e *Engine) template(r Rule) string {
	if e.translator == nil || r.TranslationKey == "" {
		return r.Message
	}
	if !e.translator.HasTranslation(e.lang, r.TranslationKey) {
		return r.Message
	}
	return e.translator.T(e.lang, r.TranslationKey, r.translationArgs()...)
}

func toValidationError(name string, res Result) ValidationError {
	return ValidationError{
		Field:             name,
		Message:           res.Error,
		Rule:              res.Rule,
		TranslationKey:    res.TranslationKey,
		TranslationValues: maps.Clone(res.Params),
	}
}
