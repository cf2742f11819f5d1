// Package matcher re-links generated follow-up titles to catalog templates so
// task chains can keep spawning.
package matcher

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pablasso/backlog/internal/catalog"
	"github.com/pablasso/backlog/internal/placeholder"
	"github.com/pablasso/backlog/internal/rng"
)

// MinScore is the keyword overlap required to accept a match.
const MinScore = 2

// Tokenize lowercases s, drops placeholder tokens, and returns the distinct
// words longer than two characters.
func Tokenize(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(placeholder.Strip(s)), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	seen := make(map[string]bool, len(fields))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) <= 2 || seen[f] {
			continue
		}
		seen[f] = true
		tokens = append(tokens, f)
	}
	return tokens
}

// Score counts the candidate tokens that also appear in the title.
func Score(title, candidate []string) int {
	set := make(map[string]bool, len(title))
	for _, t := range title {
		set[t] = true
	}
	score := 0
	for _, c := range candidate {
		if set[c] {
			score++
		}
	}
	return score
}

// Matcher picks continuation templates from a catalog.
type Matcher struct {
	catalog *catalog.Catalog
	src     rng.Source
}

// New returns a matcher over c. src is used for the random fallback.
func New(c *catalog.Catalog, src rng.Source) *Matcher {
	return &Matcher{catalog: c, src: src}
}

// Best returns the template in category whose title pattern shares the most
// keywords with title. Ties keep the first candidate in catalog order. When no
// candidate reaches MinScore a random template of the category is returned.
// ok is false only when the category has no templates.
func (m *Matcher) Best(title string, category catalog.CategoryID) (tmpl catalog.WorkflowTemplate, matched bool, ok bool) {
	candidates := m.catalog.TemplatesFor(category)
	if len(candidates) == 0 {
		return catalog.WorkflowTemplate{}, false, false
	}

	titleTokens := Tokenize(title)
	best, bestScore := -1, 0
	for i, c := range candidates {
		if s := Score(titleTokens, Tokenize(c.Title)); s > bestScore {
			best, bestScore = i, s
		}
	}
	if best >= 0 && bestScore >= MinScore {
		return candidates[best], true, true
	}

	pick, _ := rng.Pick(m.src, candidates)
	return pick, false, true
}
