package localekit

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"gopkg.in/yaml.v3"
)

// localesDir is the directory under the store root that holds one
// catalog document per locale, named by locale code.
const localesDir = "locales"

// catalogFormat describes one supported on-disk document format.
type catalogFormat struct {
	unmarshal func([]byte, any) error
	ext       string
}

// Formats are probed in order; the first existing file wins.
var catalogFormats = []catalogFormat{
	{ext: ".json", unmarshal: json.Unmarshal},
	{ext: ".yaml", unmarshal: yaml.Unmarshal},
	{ext: ".yml", unmarshal: yaml.Unmarshal},
}

// readCatalog parses the catalog document for locale from fsys. Returns
// an error wrapping fs.ErrNotExist when no file with a supported
// extension exists, and ErrInvalidCatalog when a file exists but does
// not parse into a nested document.
func readCatalog(fsys fs.FS, locale string) (*Catalog, error) {
	for _, format := range catalogFormats {
		name := path.Join(localesDir, locale+format.ext)

		data, err := fs.ReadFile(fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("localekit: reading %q: %w", name, err)
		}

		var doc map[string]any
		if err := format.unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: parsing %q: %s", ErrInvalidCatalog, name, err)
		}

		return NewCatalog(locale, doc), nil
	}

	return nil, fmt.Errorf("localekit: no catalog file for locale %q: %w", locale, fs.ErrNotExist)
}

// catalogExt reports whether ext (lowercase, with dot) is a supported
// catalog file extension.
func catalogExt(ext string) bool {
	for _, format := range catalogFormats {
		if format.ext == ext {
			return true
		}
	}
	return false
}
