package localekit

import "context"

// Translator resolves dotted keys against the catalog of the locale
// carried by the caller's context. It holds no per-request state; a
// single Translator is shared by all units of work.
type Translator struct {
	store             *Store
	missingKeyHandler func(locale, key string)
	defaultLocale     string
}

// TranslatorOption configures a Translator during construction.
type TranslatorOption func(*Translator)

// WithDefaultLocale sets the locale used when the context carries none.
// Defaults to the store's fallback locale.
func WithDefaultLocale(locale string) TranslatorOption {
	return func(t *Translator) {
		if locale != "" {
			t.defaultLocale = locale
		}
	}
}

// WithMissingKeyHandler sets a handler invoked when a key does not
// resolve in the active catalog. Useful for logging untranslated keys
// during development or monitoring gaps in translations.
func WithMissingKeyHandler(handler func(locale, key string)) TranslatorOption {
	return func(t *Translator) {
		t.missingKeyHandler = handler
	}
}

// NewTranslator creates a Translator backed by the given store.
func NewTranslator(store *Store, opts ...TranslatorOption) *Translator {
	if store == nil {
		panic("localekit: store is not provided")
	}
	t := &Translator{
		store:         store,
		defaultLocale: store.Fallback(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Locale returns the locale the translator would resolve keys against
// for ctx: the context's locale, or the translator's default.
func (t *Translator) Locale(ctx context.Context) string {
	if locale, ok := localeFromContext(ctx); ok {
		return locale
	}
	return t.defaultLocale
}

// Translate resolves key in the active locale's catalog, loading the
// catalog on first use, and substitutes {name} placeholders from the
// provided maps. A key that does not resolve is not an error: the key
// itself is returned with a nil error, and the missing-key handler, if
// set, is notified. The only failures are catalog loading errors
// (ErrCatalogNotFound, ErrInvalidCatalog), which are returned alongside
// the key so callers always have a printable value.
func (t *Translator) Translate(ctx context.Context, key string, placeholders ...M) (string, error) {
	locale := t.Locale(ctx)

	catalog, err := t.store.Load(ctx, locale)
	if err != nil {
		return key, err
	}

	value, ok := catalog.Get(key)
	if !ok {
		if t.missingKeyHandler != nil {
			t.missingKeyHandler(locale, key)
		}
		return key, nil
	}

	return replacePlaceholdersWithMerge(value, placeholders...), nil
}

// T is the total form of Translate: it never fails, returning key
// verbatim when the catalog cannot be loaded or the key does not resolve.
func (t *Translator) T(ctx context.Context, key string, placeholders ...M) string {
	value, _ := t.Translate(ctx, key, placeholders...)
	return value
}
