package localekit

import (
	"fmt"
	"maps"
	"strings"
)

// M is a map of placeholder names to values for translation templates.
type M map[string]any

// ReplacePlaceholders substitutes placeholders of the form {name} in the
// template with values from the provided map. A placeholder with no
// matching entry is left as literal text, so missing parameters stay
// visible in the output instead of disappearing silently.
//
// Example:
//
//	template: "Welcome, {name}! You have {count} messages."
//	placeholders: M{"name": "John", "count": 5}
//	returns: "Welcome, John! You have 5 messages."
func ReplacePlaceholders(template string, placeholders M) string {
	if len(placeholders) < 1 || !strings.ContainsRune(template, '{') {
		return template
	}

	result := template
	for key, value := range placeholders {
		placeholder := "{" + key + "}"
		replacement := fmt.Sprintf("%v", value)
		result = strings.ReplaceAll(result, placeholder, replacement)
	}

	return result
}

func replacePlaceholdersWithMerge(template string, placeholders ...M) string {
	switch len(placeholders) {
	case 0:
		return template
	case 1:
		return ReplacePlaceholders(template, placeholders[0])
	}

	merged := make(M)
	for _, p := range placeholders {
		maps.Copy(merged, p)
	}

	return ReplacePlaceholders(template, merged)
}
