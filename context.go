package localekit

import "context"

// DefaultLocale is the locale assumed when a context carries none, and
// the default fallback locale for catalog loading.
const DefaultLocale = "en"

// localeKey is the context key under which the active locale is stored.
type localeKey struct{}

// WithLocale returns a copy of ctx carrying locale as the active locale.
// The parent context is left untouched: work started from the parent, or
// running concurrently with it, keeps observing its own value. A
// goroutine handed the returned context inherits the locale as a
// snapshot and may diverge by calling WithLocale again.
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeKey{}, locale)
}

// Locale returns the active locale carried by ctx, or DefaultLocale when
// none was set.
func Locale(ctx context.Context) string {
	if locale, ok := localeFromContext(ctx); ok {
		return locale
	}
	return DefaultLocale
}

// localeFromContext distinguishes "never set" from an explicit value so
// callers with a custom default locale can apply their own fallback.
func localeFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	locale, ok := ctx.Value(localeKey{}).(string)
	if !ok || locale == "" {
		return "", false
	}
	return locale, true
}
