package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/fintrack/pkg/logger"
)

// DefaultLanguage is used when no WithDefaultLanguage option is given.
const DefaultLanguage = "en"

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// Translator resolves dot-path keys against per-language catalogs.
type Translator struct {
	mu            sync.RWMutex
	translations  map[string]map[string]any
	defaultLang   string
	fallbackToKey bool
	logMissing    bool
	logger        *slog.Logger
}

// NewTranslator loads catalogs from adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, opts ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        logger.Discard(),
	}
	for _, opt := range opts {
		opt(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, catalog := range translations {
		if lang == "" {
			return nil, fmt.Errorf("%w: empty language code", ErrInvalidCatalog)
		}
		if catalog == nil {
			return nil, fmt.Errorf("%w: nil catalog for %q", ErrInvalidCatalog, lang)
		}
	}

	if translations == nil {
		translations = make(map[string]map[string]any)
	}
	t.translations = translations
	t.logger.DebugContext(ctx, "translations loaded", slog.Any("languages", t.supportedLanguages()))
	return t, nil
}

// T translates key for lang, substituting %{name} placeholders from args
// given as name, value pairs. A trailing unpaired arg is ignored.
func (t *Translator) T(lang, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if tmpl, ok := t.lookup(lang, key); ok {
		return substitute(tmpl, args)
	}

	if t.logMissing {
		t.logger.Warn("translation not found", slog.String("lang", lang), slog.String("key", key))
	}
	if t.fallbackToKey {
		return substitute(key, args)
	}
	return ""
}

// HasTranslation reports whether T would find a string for key, including
// language fallbacks.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.lookup(lang, key)
	return ok
}

// SupportedLanguages returns the loaded language codes, sorted.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Merge overlays the given catalogs. Nested maps are merged key by key, any
// other value replaces the existing entry.
func (t *Translator) Merge(translations map[string]map[string]any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for lang, catalog := range translations {
		if t.translations[lang] == nil {
			t.translations[lang] = make(map[string]any, len(catalog))
		}
		mergeInto(t.translations[lang], catalog)
	}
}

func mergeInto(dst, src map[string]any) {
	for k, v := range src {
		sub, ok := v.(map[string]any)
		if !ok {
			dst[k] = v
			continue
		}
		existing, ok := dst[k].(map[string]any)
		if !ok {
			existing = make(map[string]any, len(sub))
			dst[k] = existing
		}
		mergeInto(existing, sub)
	}
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	for _, candidate := range candidates(lang, t.defaultLang) {
		catalog, ok := t.translations[candidate]
		if !ok {
			continue
		}
		if s, ok := resolve(catalog, key); ok {
			return s, true
		}
	}
	return "", false
}

// candidates lists the languages tried for lang: the tag itself, its base
// language, then the default language.
func candidates(lang, defaultLang string) []string {
	out := make([]string, 0, 3)
	add := func(l string) {
		for _, seen := range out {
			if seen == l {
				return
			}
		}
		out = append(out, l)
	}

	lang = strings.ReplaceAll(strings.TrimSpace(lang), "_", "-")
	if lang != "" {
		add(lang)
		if tag, err := language.Parse(lang); err == nil {
			if base, conf := tag.Base(); conf != language.No {
				add(base.String())
			}
		}
	}
	add(defaultLang)
	return out
}

// resolve walks a dot-separated key through nested maps.
func resolve(catalog map[string]any, key string) (string, bool) {
	var current any = catalog
	for part := range strings.SplitSeq(key, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return "", false
		}
		if current, ok = m[part]; !ok {
			return "", false
		}
	}

	switch v := current.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}

func substitute(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
