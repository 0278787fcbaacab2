package matching

import (
	"slices"
	"strings"

	"wep_bot/catalog"
	"wep_bot/session"
)

// DefaultTopN is how many schemes a recommendation holds.
const DefaultTopN = 3

// Recommender filters and ranks the catalog for a finished questionnaire.
type Recommender struct {
	fallback FallbackPolicy
	topN     int
}

// NewRecommender returns a Recommender. A nil policy means PrefixFallback and
// topN <= 0 means DefaultTopN.
func NewRecommender(fallback FallbackPolicy, topN int) *Recommender {
	if fallback == nil {
		fallback = PrefixFallback{}
	}
	if topN <= 0 {
		topN = DefaultTopN
	}
	return &Recommender{fallback: fallback, topN: topN}
}

// Predicates returns the filter chain for the answers, in application order.
func Predicates(a session.Answers) []Predicate {
	preds := []Predicate{Contains(PillarField, PillarKeyword(a.Assistance))}

	if sector := SectorKeyword(a.Sector); sector != General {
		preds = append(preds, Contains(EligibilityField, sector))
	}
	if !IsRegistered(a.Registered) {
		preds = append(preds, Any(
			Contains(EligibilityField, "unregistered"),
			Contains(EligibilityField, "informal"),
		))
	}
	return preds
}

// Recommend returns up to topN schemes for the answers.
func (r *Recommender) Recommend(a session.Answers, schemes []catalog.Scheme) []catalog.Scheme {
	candidates := schemes
	for _, p := range Predicates(a) {
		candidates = Filter(candidates, p)
	}

	if len(candidates) < r.topN {
		candidates = r.fallback.Select(schemes, r.topN)
	} else {
		candidates = slices.Clone(candidates)
	}

	Rank(candidates)

	if len(candidates) > r.topN {
		candidates = candidates[:r.topN]
	}
	return candidates
}

// Rank orders schemes in place: digitized first, then by last_updated as text.
// Equal keys keep their relative order.
func Rank(schemes []catalog.Scheme) {
	slices.SortStableFunc(schemes, func(a, b catalog.Scheme) int {
		ad, bd := a.IsDigitized(), b.IsDigitized()
		if ad != bd {
			if ad {
				return -1
			}
			return 1
		}
		return strings.Compare(a.LastUpdated, b.LastUpdated)
	})
}
