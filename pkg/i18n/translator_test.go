package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fintrack/pkg/i18n"
)

func newTestTranslator(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()
	adapter := &i18n.MapAdapter{Data: map[string]map[string]any{
		"en": {
			"hello":   "Hello",
			"welcome": "Welcome, %{name}!",
			"validation": map[string]any{
				"min_length": "must be at least %{min} characters",
			},
		},
		"it": {
			"hello": "Ciao",
			"validation": map[string]any{
				"min_length": "deve contenere almeno %{min} caratteri",
			},
		},
	}}
	tr, err := i18n.NewTranslator(context.Background(), adapter, opts...)
	require.NoError(t, err)
	return tr
}

func TestNewTranslator(t *testing.T) {
	t.Parallel()

	t.Run("nil adapter", func(t *testing.T) {
		_, err := i18n.NewTranslator(context.Background(), nil)
		assert.ErrorIs(t, err, i18n.ErrNilAdapter)
	})

	t.Run("empty language code", func(t *testing.T) {
		adapter := &i18n.MapAdapter{Data: map[string]map[string]any{"": {"a": "b"}}}
		_, err := i18n.NewTranslator(context.Background(), adapter)
		assert.ErrorIs(t, err, i18n.ErrInvalidCatalog)
	})

	t.Run("supported languages are sorted", func(t *testing.T) {
		tr := newTestTranslator(t)
		assert.Equal(t, []string{"en", "it"}, tr.SupportedLanguages())
		assert.Equal(t, i18n.DefaultLanguage, tr.DefaultLanguage())
	})
}

func TestTranslator_T(t *testing.T) {
	t.Parallel()
	tr := newTestTranslator(t)

	tests := []struct {
		name string
		lang string
		key  string
		args []string
		want string
	}{
		{"plain", "en", "hello", nil, "Hello"},
		{"named parameter", "en", "welcome", []string{"name", "Ana"}, "Welcome, Ana!"},
		{"nested key", "it", "validation.min_length", []string{"min", "8"}, "deve contenere almeno 8 caratteri"},
		{"region falls back to base", "it-IT", "hello", nil, "Ciao"},
		{"underscore region", "it_IT", "hello", nil, "Ciao"},
		{"unknown language falls back to default", "fr", "hello", nil, "Hello"},
		{"key missing in language falls back to default", "it", "welcome", []string{"name", "Ana"}, "Welcome, Ana!"},
		{"missing key returns key", "en", "nope.missing", nil, "nope.missing"},
		{"unknown placeholder kept", "en", "welcome", []string{"other", "x"}, "Welcome, %{name}!"},
		{"odd args ignore trailing", "en", "welcome", []string{"name", "Bo", "dangling"}, "Welcome, Bo!"},
		{"non-string node", "en", "validation", nil, "validation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.T(tt.lang, tt.key, tt.args...))
		})
	}
}

func TestTranslator_NoFallbackToKey(t *testing.T) {
	t.Parallel()
	tr := newTestTranslator(t, i18n.WithFallbackToKey(false), i18n.WithMissingTranslationsLogging(true))
	assert.Empty(t, tr.T("en", "missing"))
}

func TestTranslator_DefaultLanguageOption(t *testing.T) {
	t.Parallel()
	tr := newTestTranslator(t, i18n.WithDefaultLanguage("it"))
	assert.Equal(t, "Ciao", tr.T("de", "hello"))
}

func TestTranslator_HasTranslation(t *testing.T) {
	t.Parallel()
	tr := newTestTranslator(t)

	assert.True(t, tr.HasTranslation("en", "validation.min_length"))
	assert.True(t, tr.HasTranslation("it-CH", "validation.min_length"))
	assert.False(t, tr.HasTranslation("en", "validation.max_length"))
	assert.False(t, tr.HasTranslation("en", "validation"))
}

func TestTranslator_Merge(t *testing.T) {
	t.Parallel()
	tr := newTestTranslator(t)

	tr.Merge(map[string]map[string]any{
		"en": {"bye": "Bye"},
		"de": {"hello": "Hallo"},
		"it": {"validation": map[string]any{"max_length": "al massimo %{max}"}},
	})

	assert.Equal(t, "Bye", tr.T("en", "bye"))
	assert.Equal(t, "Hello", tr.T("en", "hello"))
	assert.Equal(t, "Hallo", tr.T("de", "hello"))
	assert.Equal(t, []string{"de", "en", "it"}, tr.SupportedLanguages())

	assert.Equal(t, "al massimo 5", tr.T("it", "validation.max_length", "max", "5"))
	assert.Equal(t, "deve contenere almeno 2 caratteri", tr.T("it", "validation.min_length", "min", "2"))
}
