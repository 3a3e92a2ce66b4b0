package binder

import (
	"slices"
	"strings"

	"github.com/conduit-lang/odatacore/internal/edm"
)

const (
	maxSuggestionDistance = 3
	maxSuggestions        = 3
)

// similar returns up to maxSuggestions candidates within
// maxSuggestionDistance edits of target, closest first. Case is ignored.
func similar(target string, candidates []string) []string {
	type match struct {
		name     string
		distance int
	}

	var matches []match
	lower := strings.ToLower(target)
	for _, c := range candidates {
		if d := levenshtein(lower, strings.ToLower(c)); d <= maxSuggestionDistance {
			matches = append(matches, match{c, d})
		}
	}
	slices.SortStableFunc(matches, func(a, b match) int { return a.distance - b.distance })

	out := make([]string, 0, maxSuggestions)
	for i := 0; i < len(matches) && i < maxSuggestions; i++ {
		out = append(out, matches[i].name)
	}
	return out
}

// levenshtein counts the single-byte insertions, deletions and
// substitutions needed to turn a into b.
func levenshtein(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// propertyNames lists the properties of t, including inherited ones.
func propertyNames(t edm.StructuredType) []string {
	var names []string
	for st := t; st != nil; st = st.BaseType() {
		for _, p := range st.DeclaredProperties() {
			names = append(names, p.Name())
		}
	}
	return names
}

func sourceNames(c edm.Container) []string {
	var names []string
	for _, s := range c.NavigationSources() {
		names = append(names, s.Name())
	}
	return names
}

func didYouMean(target string, candidates []string) string {
	if s := similar(target, candidates); len(s) > 0 {
		return "did you mean " + strings.Join(s, ", ") + "?"
	}
	return ""
}
