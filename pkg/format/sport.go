package format

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

var separators = strings.NewReplacer("_", " ", "-", " ")

// SportName turns a sport identifier such as "table_tennis" into its
// display label "Table Tennis". Underscores and hyphens separate words;
// runs of separators collapse into a single space.
func SportName(sport string) string {
	if sport == "" {
		return ""
	}
	words := strings.Fields(separators.Replace(sport))
	if len(words) == 0 {
		return ""
	}

	// Casers keep internal state and must not be shared between goroutines.
	upper := cases.Upper(locale)
	lower := cases.Lower(locale)
	for i, w := range words {
		_, size := utf8.DecodeRuneInString(w)
		words[i] = upper.String(w[:size]) + lower.String(w[size:])
	}
	return strings.Join(words, " ")
}
