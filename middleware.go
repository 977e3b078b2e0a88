package localekit

import "net/http"

// LocaleSource extracts a locale candidate from an HTTP request.
// Returns the value and true if found, or ("", false) if not present.
type LocaleSource func(r *http.Request) (string, bool)

// FromQuery returns a source that reads the locale from a query parameter.
func FromQuery(name string) LocaleSource {
	return func(r *http.Request) (string, bool) {
		v := r.URL.Query().Get(name)
		if v == "" {
			return "", false
		}
		return v, true
	}
}

// FromCookie returns a source that reads the locale from a cookie.
func FromCookie(name string) LocaleSource {
	return func(r *http.Request) (string, bool) {
		c, err := r.Cookie(name)
		if err != nil || c.Value == "" {
			return "", false
		}
		return c.Value, true
	}
}

// FromHeader returns a source that reads a raw header value.
func FromHeader(name string) LocaleSource {
	return func(r *http.Request) (string, bool) {
		v := r.Header.Get(name)
		if v == "" {
			return "", false
		}
		return v, true
	}
}

// FromAcceptLanguage returns a source that matches the Accept-Language
// header against the available locales.
func FromAcceptLanguage(available []string) LocaleSource {
	return func(r *http.Request) (string, bool) {
		header := r.Header.Get("Accept-Language")
		if header == "" {
			return "", false
		}
		return MatchAcceptLanguage(header, available), true
	}
}

// middlewareConfig holds the resolved middleware settings.
type middlewareConfig struct {
	sources []LocaleSource
}

// MiddlewareOption configures the Middleware.
type MiddlewareOption func(*middlewareConfig)

// WithSources replaces the default locale source chain. Sources are
// tried in order; the first non-empty value wins.
func WithSources(sources ...LocaleSource) MiddlewareOption {
	return func(cfg *middlewareConfig) {
		cfg.sources = sources
	}
}

// Middleware returns net/http middleware that resolves the request's
// locale and stores it in the request context, making it visible to
// Translator calls downstream. The default source chain is the "lang"
// query parameter, then the "lang" cookie, then the Accept-Language
// header matched against the store's available locales. When no source
// yields a value, the store's fallback locale is set.
func Middleware(store *Store, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if len(cfg.sources) == 0 {
		available, err := store.Locales()
		if err != nil || len(available) == 0 {
			available = []string{store.Fallback()}
		}
		cfg.sources = []LocaleSource{
			FromQuery("lang"),
			FromCookie("lang"),
			FromAcceptLanguage(available),
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale := store.Fallback()
			for _, src := range cfg.sources {
				if v, ok := src(r); ok && v != "" {
					locale = v
					break
				}
			}
			next.ServeHTTP(w, r.WithContext(WithLocale(r.Context(), locale)))
		})
	}
}
