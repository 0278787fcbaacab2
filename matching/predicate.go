package matching

import (
	"strings"

	"wep_bot/catalog"
)

// Predicate decides whether a scheme stays in the candidate set.
type Predicate func(catalog.Scheme) bool

// Field extracts the text a predicate looks at.
type Field func(catalog.Scheme) string

func PillarField(s catalog.Scheme) string      { return s.Pillar }
func EligibilityField(s catalog.Scheme) string { return s.EligibilitySummary }

// Contains matches when field contains keyword, ignoring case.
func Contains(field Field, keyword string) Predicate {
	kw := strings.ToLower(keyword)
	return func(s catalog.Scheme) bool {
		return strings.Contains(strings.ToLower(field(s)), kw)
	}
}

// Any matches when at least one of preds matches.
func Any(preds ...Predicate) Predicate {
	return func(s catalog.Scheme) bool {
		for _, p := range preds {
			if p(s) {
				return true
			}
		}
		return false
	}
}

// Filter keeps the schemes accepted by p, preserving order.
func Filter(schemes []catalog.Scheme, p Predicate) []catalog.Scheme {
	out := make([]catalog.Scheme, 0, len(schemes))
	for _, s := range schemes {
		if p(s) {
			out = append(out, s)
		}
	}
	return out
}
