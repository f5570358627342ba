package grocery

import (
	"regexp"
	"strings"
)

// keywordPatterns holds one compiled whole-word pattern per keyword, built
// once at startup. Index matches Categories.
var keywordPatterns [][]*regexp.Regexp

func init() {
	keywordPatterns = make([][]*regexp.Regexp, len(Categories))
	for i, cat := range Categories {
		patterns := make([]*regexp.Regexp, len(cat.Keywords))
		for j, kw := range cat.Keywords {
			patterns[j] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(kw) + `\b`)
		}
		keywordPatterns[i] = patterns
	}
}

// Categorize returns the aisle for the given ingredient name. Categories are
// tried in declared order and each keyword is tested as a whole word against
// both the normalized and the raw lowercased name; the first category with
// any match wins. Unmatched or empty names fall back to "other".
func Categorize(name string) Category {
	if name == "" {
		return fallbackCategory()
	}

	normalized := Normalize(name)
	raw := strings.ToLower(name)

	for i, cat := range Categories {
		if cat.ID == CategoryOther {
			continue
		}
		for _, pattern := range keywordPatterns[i] {
			if pattern.MatchString(normalized) || pattern.MatchString(raw) {
				return cat
			}
		}
	}

	return fallbackCategory()
}

func fallbackCategory() Category {
	for _, cat := range Categories {
		if cat.ID == CategoryOther {
			return cat
		}
	}
	// Unreachable as long as the table keeps its fallback entry.
	return Category{ID: CategoryOther, Name: "Other", Icon: "📦"}
}
