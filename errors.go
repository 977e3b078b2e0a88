package localekit

import "errors"

// Sentinel errors for catalog loading.
var (
	// ErrCatalogNotFound is returned when neither the requested locale's
	// catalog file nor the fallback locale's file exists under locales/.
	ErrCatalogNotFound = errors.New("localekit: catalog not found")

	// ErrInvalidCatalog is returned when a catalog file exists but cannot be parsed.
	ErrInvalidCatalog = errors.New("localekit: invalid catalog file")

	// ErrEmptyLocale is returned when an empty locale code is requested.
	ErrEmptyLocale = errors.New("localekit: locale cannot be empty")
)
