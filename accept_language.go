package localekit

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength caps the parsed header size.
const maxAcceptLanguageLength = 4096

// languageTag is a parsed Accept-Language entry with its quality value.
type languageTag struct {
	tag     string
	quality float64
}

// MatchAcceptLanguage parses an Accept-Language header and returns the
// entry from available that best matches it. Tags are tried in quality
// order; each tag matches an available locale exactly or by base
// language ("en-US" matches "en" and vice versa). Returns the first
// available locale when nothing matches, and "" when available is empty.
//
// Example header: "en-US,en;q=0.9,pl;q=0.8"
func MatchAcceptLanguage(header string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	if header == "" {
		return available[0]
	}

	for _, tag := range parseLanguageTags(header) {
		if match := matchLocale(tag.tag, available); match != "" {
			return match
		}
	}

	return available[0]
}

// matchLocale finds the available locale matching the requested tag,
// preferring an exact match over a base-language match.
func matchLocale(requested string, available []string) string {
	for _, avail := range available {
		if requested == normalizeLanguageTag(avail) {
			return avail
		}
	}
	for _, avail := range available {
		if baseLanguage(requested) == baseLanguage(normalizeLanguageTag(avail)) {
			return avail
		}
	}
	return ""
}

// parseLanguageTags splits an Accept-Language header into tags sorted by
// descending quality. Wildcards and malformed quality values are skipped.
func parseLanguageTags(header string) []languageTag {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var tags []languageTag

	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		quality := 1.0
		langPart, qPart, hasQuality := strings.Cut(part, ";")
		langPart = strings.TrimSpace(langPart)

		if hasQuality {
			qPart = strings.TrimSpace(qPart)
			if strings.HasPrefix(qPart, "q=") {
				if q, err := strconv.ParseFloat(qPart[2:], 64); err == nil && q >= 0 && q <= 1 {
					quality = q
				}
			}
		}

		if langPart != "" && langPart != "*" {
			tags = append(tags, languageTag{
				tag:     normalizeLanguageTag(langPart),
				quality: quality,
			})
		}
	}

	slices.SortStableFunc(tags, func(a, b languageTag) int {
		return cmp.Compare(b.quality, a.quality)
	})

	return tags
}

func normalizeLanguageTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// baseLanguage strips the region from a language tag ("en-US" → "en").
func baseLanguage(tag string) string {
	if i := strings.IndexByte(tag, '-'); i > 0 {
		return tag[:i]
	}
	return tag
}
