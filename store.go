package localekit

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Store loads per-locale catalogs from a locales/ directory and caches
// them for the lifetime of the process. The cache is append-only: a
// catalog, once cached, is never rewritten, so no reader ever observes a
// locale changing content.
type Store struct {
	fsys     fs.FS
	catalogs map[string]*Catalog
	fallback string
	group    singleflight.Group
	mu       sync.RWMutex
}

// StoreOption configures a Store during construction.
type StoreOption func(*Store)

// WithDir sets the base directory containing the locales/ subdirectory.
func WithDir(dir string) StoreOption {
	return func(s *Store) {
		s.fsys = os.DirFS(dir)
	}
}

// WithFS sets the filesystem containing the locales/ subdirectory.
// Use with embed.FS to ship catalogs inside the binary.
func WithFS(fsys fs.FS) StoreOption {
	return func(s *Store) {
		s.fsys = fsys
	}
}

// WithFallback sets the locale whose catalog is substituted wholesale
// when a requested locale has no file of its own. Defaults to DefaultLocale.
func WithFallback(locale string) StoreOption {
	return func(s *Store) {
		if locale != "" {
			s.fallback = locale
		}
	}
}

// NewStore creates a Store reading catalogs from the current directory
// unless WithDir or WithFS is given.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		fsys:     os.DirFS("."),
		fallback: DefaultLocale,
		catalogs: make(map[string]*Catalog),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fallback returns the configured fallback locale.
func (s *Store) Fallback() string {
	return s.fallback
}

// Load returns the catalog for locale, reading it from disk on first
// request. When the locale has no catalog file, the fallback locale's
// catalog is loaded and cached in its place. Returns ErrCatalogNotFound
// when neither file exists, ErrInvalidCatalog when parsing fails.
//
// A cache hit performs no I/O. Concurrent first loads of the same locale
// are collapsed to a single read; every caller receives the same catalog.
func (s *Store) Load(ctx context.Context, locale string) (*Catalog, error) {
	if locale == "" {
		return nil, ErrEmptyLocale
	}

	s.mu.RLock()
	catalog, ok := s.catalogs[locale]
	s.mu.RUnlock()
	if ok {
		return catalog, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v, err, _ := s.group.Do(locale, func() (any, error) {
		// A concurrent call may have populated the cache between the
		// read above and entering the group.
		s.mu.RLock()
		catalog, ok := s.catalogs[locale]
		s.mu.RUnlock()
		if ok {
			return catalog, nil
		}

		catalog, err := s.read(locale)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		// First writer wins; the entry never changes afterwards.
		if cached, ok := s.catalogs[locale]; ok {
			catalog = cached
		} else {
			s.catalogs[locale] = catalog
		}
		s.mu.Unlock()

		return catalog, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*Catalog), nil
}

// read loads the catalog document for locale, substituting the fallback
// locale's document when locale has no file of its own.
func (s *Store) read(locale string) (*Catalog, error) {
	catalog, err := readCatalog(s.fsys, locale)
	if err == nil {
		return catalog, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	if locale != s.fallback {
		catalog, err = readCatalog(s.fsys, s.fallback)
		if err == nil {
			return catalog, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("%w: no %s/ file for %q or fallback %q", ErrCatalogNotFound, localesDir, locale, s.fallback)
}

// Locales returns the locale codes that have a catalog file, sorted.
// It reads the directory listing on every call and does not consult or
// populate the cache.
func (s *Store) Locales() ([]string, error) {
	entries, err := fs.ReadDir(s.fsys, localesDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: missing %s/ directory", ErrCatalogNotFound, localesDir)
		}
		return nil, fmt.Errorf("localekit: listing %s/: %w", localesDir, err)
	}

	seen := make(map[string]bool)
	var locales []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := path.Ext(entry.Name())
		if !catalogExt(strings.ToLower(ext)) {
			continue
		}
		locale := strings.TrimSuffix(entry.Name(), ext)
		if locale == "" || seen[locale] {
			continue
		}
		seen[locale] = true
		locales = append(locales, locale)
	}

	slices.Sort(locales)
	return locales, nil
}

// Reset clears the catalog cache. Intended for test isolation; catalogs
// handed out before the reset remain valid.
func (s *Store) Reset() {
	s.mu.Lock()
	s.catalogs = make(map[string]*Catalog)
	s.mu.Unlock()
}
