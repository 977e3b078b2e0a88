package localekit

import (
	"fmt"
	"maps"
	"slices"
)

// Catalog holds the translations of a single locale. The nested source
// document is flattened into dotted key paths for O(1) lookups.
// A Catalog is immutable after construction, making it safe for
// concurrent use without synchronization.
type Catalog struct {
	locale  string
	entries map[string]string
}

// NewCatalog builds a catalog from a nested document. Nested maps become
// dotted key paths; non-string leaves are rendered with fmt.Sprintf.
func NewCatalog(locale string, data map[string]any) *Catalog {
	return &Catalog{
		locale:  locale,
		entries: flattenEntries(data, ""),
	}
}

// Get returns the translation for a dotted key path. The boolean reports
// whether the path resolves to a string leaf: a missing segment, a path
// ending on a nested object, or a path descending past a leaf all miss.
func (c *Catalog) Get(key string) (string, bool) {
	value, ok := c.entries[key]
	return value, ok
}

// Locale returns the locale code of the document the catalog was parsed
// from. After a fallback substitution this is the fallback locale, not
// the locale the catalog was requested under.
func (c *Catalog) Locale() string {
	return c.locale
}

// Len returns the number of string leaves in the catalog.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Keys returns all dotted key paths in sorted order.
func (c *Catalog) Keys() []string {
	keys := slices.Collect(maps.Keys(c.entries))
	slices.Sort(keys)
	return keys
}

// Entries returns a copy of the flattened key/value pairs.
func (c *Catalog) Entries() map[string]string {
	return maps.Clone(c.entries)
}

func flattenEntries(data map[string]any, prefix string) map[string]string {
	result := make(map[string]string)

	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]any:
			maps.Copy(result, flattenEntries(v, fullKey))
		case map[string]string:
			for subKey, subVal := range v {
				result[fullKey+"."+subKey] = subVal
			}
		default:
			result[fullKey] = fmt.Sprintf("%v", v)
		}
	}

	return result
}
