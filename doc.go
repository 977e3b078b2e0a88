// Package localekit resolves human-readable text by key for the locale
// carried by the calling context, with lazily loaded, process-cached
// translation catalogs and a whole-catalog fallback locale.
//
// The package is built around three pieces: a Store that loads and
// caches one catalog per locale from a locales/ directory, a
// context.Context-propagated active locale, and a Translator that
// resolves dotted keys with {name} placeholder substitution. Catalogs
// are immutable after loading and the cache is append-only, so all
// lookups are safe for concurrent use without synchronization.
//
// # Basic Usage
//
// Point a Store at a directory containing locales/ and translate keys
// against the context's locale:
//
//	store := localekit.NewStore(localekit.WithDir("."))
//	tr := localekit.NewTranslator(store)
//
//	ctx := localekit.WithLocale(context.Background(), "tr")
//	msg := tr.T(ctx, "greeting")
//	// Output: "Merhaba"
//
//	welcome := tr.T(ctx, "messages.welcome", localekit.M{"name": "Ada"})
//	// Output: "Hoşgeldin, Ada!"
//
// # Catalog Files
//
// Each locale is one JSON or YAML document named by locale code:
//
//	locales/en.json
//	locales/tr.json
//	locales/de.yaml
//
// Documents are nested objects of string leaves; nesting is addressed
// with dotted key paths ("messages.welcome"). A request for a locale
// with no file loads the fallback locale's document in its place; when
// neither file exists, loading fails with ErrCatalogNotFound.
//
// Catalogs can also be embedded into the binary:
//
//	//go:embed locales
//	var localesFS embed.FS
//
//	store := localekit.NewStore(localekit.WithFS(localesFS))
//
// # Context Isolation
//
// The active locale travels with the context, so concurrent units of
// work never observe each other's value:
//
//	ctx := localekit.WithLocale(r.Context(), "de")
//	// Handlers and goroutines derived from ctx see "de"; siblings
//	// started from the parent context are unaffected.
//
// # Missing Translations
//
// A key that does not resolve is never an error: T and Translate return
// the key itself, keeping the miss visible without crashing the caller.
// Placeholders with no matching parameter are left as literal text.
// Only catalog loading can fail (ErrCatalogNotFound, ErrInvalidCatalog).
//
// # HTTP Middleware
//
// Middleware resolves the request locale from the "lang" query
// parameter, the "lang" cookie, or the Accept-Language header, and
// stores it in the request context:
//
//	r := chi.NewRouter()
//	r.Use(localekit.Middleware(store))
package localekit
