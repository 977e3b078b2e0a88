package localekit_test

import (
	"context"
	"embed"
	"io/fs"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localekit"
)

//go:embed testdata
var testdataFS embed.FS

func TestStoreLoad(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("loads existing locale", func(t *testing.T) {
		t.Parallel()
		store := localekit.NewStore(localekit.WithDir("testdata"))

		catalog, err := store.Load(ctx, "tr")
		require.NoError(t, err)
		require.Equal(t, "tr", catalog.Locale())

		greeting, ok := catalog.Get("greeting")
		require.True(t, ok)
		require.Equal(t, "Merhaba", greeting)
	})

	t.Run("round-trips nested keys", func(t *testing.T) {
		t.Parallel()
		store := localekit.NewStore(localekit.WithDir("testdata"))

		catalog, err := store.Load(ctx, "en")
		require.NoError(t, err)

		welcome, ok := catalog.Get("messages.welcome")
		require.True(t, ok)
		require.Equal(t, "Welcome, {name}!", welcome)

		save, ok := catalog.Get("buttons.save")
		require.True(t, ok)
		require.Equal(t, "Save", save)
	})

	t.Run("renders non-string leaves as text", func(t *testing.T) {
		t.Parallel()
		store := localekit.NewStore(localekit.WithDir("testdata"))

		catalog, err := store.Load(ctx, "en")
		require.NoError(t, err)

		limit, ok := catalog.Get("limit")
		require.True(t, ok)
		require.Equal(t, "42", limit)
	})

	t.Run("loads yaml catalog", func(t *testing.T) {
		t.Parallel()
		store := localekit.NewStore(localekit.WithDir("testdata"))

		catalog, err := store.Load(ctx, "de")
		require.NoError(t, err)

		greeting, ok := catalog.Get("greeting")
		require.True(t, ok)
		require.Equal(t, "Hallo", greeting)

		welcome, ok := catalog.Get("messages.welcome")
		require.True(t, ok)
		require.Equal(t, "Willkommen, {name}!", welcome)
	})

	t.Run("misses for partial and non-leaf paths", func(t *testing.T) {
		t.Parallel()
		store := localekit.NewStore(localekit.WithDir("testdata"))

		catalog, err := store.Load(ctx, "en")
		require.NoError(t, err)

		_, ok := catalog.Get("messages")
		require.False(t, ok, "non-leaf path must not resolve")

		_, ok = catalog.Get("greeting.extra")
		require.False(t, ok, "path past a leaf must not resolve")

		_, ok = catalog.Get("non.existent.key")
		require.False(t, ok)
	})

	t.Run("substitutes fallback catalog wholesale", func(t *testing.T) {
		t.Parallel()
		store := localekit.NewStore(localekit.WithDir("testdata"))

		fallback, err := store.Load(ctx, "en")
		require.NoError(t, err)

		catalog, err := store.Load(ctx, "fr")
		require.NoError(t, err)
		require.Equal(t, fallback.Entries(), catalog.Entries())
		require.Equal(t, "en", catalog.Locale())
	})

	t.Run("uses custom fallback locale", func(t *testing.T) {
		t.Parallel()
		store := localekit.NewStore(
			localekit.WithDir("testdata"),
			localekit.WithFallback("tr"),
		)

		catalog, err := store.Load(ctx, "pt")
		require.NoError(t, err)

		greeting, ok := catalog.Get("greeting")
		require.True(t, ok)
		require.Equal(t, "Merhaba", greeting)
	})

	t.Run("returns ErrCatalogNotFound when nothing exists", func(t *testing.T) {
		t.Parallel()
		store := localekit.NewStore(localekit.WithDir(t.TempDir()))

		_, err := store.Load(ctx, "fr")
		require.Error(t, err)
		require.ErrorIs(t, err, localekit.ErrCatalogNotFound)
	})

	t.Run("returns ErrInvalidCatalog for malformed document", func(t *testing.T) {
		t.Parallel()
		store := localekit.NewStore(localekit.WithDir("testdata/invalid"))

		_, err := store.Load(ctx, "en")
		require.Error(t, err)
		require.ErrorIs(t, err, localekit.ErrInvalidCatalog)
	})

	t.Run("returns ErrEmptyLocale for empty locale", func(t *testing.T) {
		t.Parallel()
		store := localekit.NewStore(localekit.WithDir("testdata"))

		_, err := store.Load(ctx, "")
		require.ErrorIs(t, err, localekit.ErrEmptyLocale)
	})

	t.Run("caches loaded catalogs", func(t *testing.T) {
		t.Parallel()
		store := localekit.NewStore(localekit.WithDir("testdata"))

		first, err := store.Load(ctx, "tr")
		require.NoError(t, err)
		second, err := store.Load(ctx, "tr")
		require.NoError(t, err)
		require.Same(t, first, second)
	})

	t.Run("caches fallback substitution under requested locale", func(t *testing.T) {
		t.Parallel()
		store := localekit.NewStore(localekit.WithDir("testdata"))

		first, err := store.Load(ctx, "fr")
		require.NoError(t, err)
		second, err := store.Load(ctx, "fr")
		require.NoError(t, err)
		require.Same(t, first, second)
	})

	t.Run("reset clears the cache", func(t *testing.T) {
		t.Parallel()
		store := localekit.NewStore(localekit.WithDir("testdata"))

		first, err := store.Load(ctx, "en")
		require.NoError(t, err)

		store.Reset()

		second, err := store.Load(ctx, "en")
		require.NoError(t, err)
		require.NotSame(t, first, second)
		require.Equal(t, first.Entries(), second.Entries())
	})

	t.Run("respects context cancellation on first load", func(t *testing.T) {
		t.Parallel()
		store := localekit.NewStore(localekit.WithDir("testdata"))

		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := store.Load(cancelled, "en")
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("serves cached catalog even with cancelled context", func(t *testing.T) {
		t.Parallel()
		store := localekit.NewStore(localekit.WithDir("testdata"))

		_, err := store.Load(ctx, "en")
		require.NoError(t, err)

		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		catalog, err := store.Load(cancelled, "en")
		require.NoError(t, err)
		require.NotNil(t, catalog)
	})
}

func TestStoreLoadConcurrent(t *testing.T) {
	t.Parallel()

	store := localekit.NewStore(localekit.WithDir("testdata"))
	ctx := context.Background()

	const workers = 32

	catalogs := make([]*localekit.Catalog, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			catalogs[i], errs[i] = store.Load(ctx, "tr")
		}()
	}
	wg.Wait()

	for i := range workers {
		require.NoError(t, errs[i])
		require.Same(t, catalogs[0], catalogs[i], "all loaders must observe the same catalog")
	}
}

func TestStoreWithFS(t *testing.T) {
	t.Parallel()

	subFS, err := fs.Sub(testdataFS, "testdata")
	require.NoError(t, err)

	store := localekit.NewStore(localekit.WithFS(subFS))

	catalog, err := store.Load(context.Background(), "en")
	require.NoError(t, err)

	greeting, ok := catalog.Get("greeting")
	require.True(t, ok)
	require.Equal(t, "Hello", greeting)
}

func TestStoreLocales(t *testing.T) {
	t.Parallel()

	t.Run("lists available locales sorted", func(t *testing.T) {
		t.Parallel()
		store := localekit.NewStore(localekit.WithDir("testdata"))

		locales, err := store.Locales()
		require.NoError(t, err)
		assert.Equal(t, []string{"de", "en", "tr"}, locales)
	})

	t.Run("fails when locales directory is missing", func(t *testing.T) {
		t.Parallel()
		store := localekit.NewStore(localekit.WithDir(t.TempDir()))

		_, err := store.Locales()
		require.ErrorIs(t, err, localekit.ErrCatalogNotFound)
	})
}
