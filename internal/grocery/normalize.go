package grocery

import (
	"regexp"
	"strings"
)

// prepWords are preparation/state adjectives stripped from ingredient names
// before comparison. Matched as whole words only.
var prepWords = []string{
	"diced", "chopped", "minced", "sliced", "crushed", "grated",
	"shredded", "julienned", "cubed", "quartered", "halved",
	"fresh", "dried", "ground", "whole", "peeled", "seeded",
	"thinly", "finely", "roughly", "coarsely", "to taste",
}

var (
	reParens    = regexp.MustCompile(`\(.*?\)`)
	reSpaces    = regexp.MustCompile(`\s+`)
	rePrepWords *regexp.Regexp
)

func init() {
	quoted := make([]string, len(prepWords))
	for i, w := range prepWords {
		quoted[i] = regexp.QuoteMeta(w)
	}
	rePrepWords = regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

// Normalize reduces a raw ingredient name to its canonical comparison key:
// lowercased, trimmed, truncated at the first comma (prep clauses like
// "onion, diced"), parenthetical asides removed, prep words stripped, and
// whitespace collapsed. It is total and idempotent.
func Normalize(name string) string {
	if name == "" {
		return ""
	}

	n := strings.ToLower(strings.TrimSpace(name))

	if idx := strings.Index(n, ","); idx >= 0 {
		n = n[:idx]
	}
	n = reParens.ReplaceAllString(n, "")
	n = rePrepWords.ReplaceAllString(n, "")
	n = reSpaces.ReplaceAllString(n, " ")

	return strings.TrimSpace(n)
}
