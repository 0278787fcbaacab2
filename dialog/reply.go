package dialog

import (
	"fmt"
	"strings"

	"wep_bot/catalog"
)

// RenderRecommendations formats schemes as a numbered list. An empty list
// renders the no-results message.
func RenderRecommendations(schemes []catalog.Scheme) string {
	if len(schemes) == 0 {
		return noResults
	}

	lines := []string{resultsHeader}
	for i, s := range schemes {
		lines = append(lines,
			fmt.Sprintf("%s %s (%s)", keycap(i+1), s.SchemeName, s.BenefitSummary),
			fmt.Sprintf("👉 Apply: %s", s.ApplicationURL),
			fmt.Sprintf("Docs: %s\n", s.RequiredDocuments),
		)
	}
	return strings.Join(lines, "\n")
}

// keycap renders n as a keycap emoji ("1️⃣"); numbers above 9 fall back to "n.".
func keycap(n int) string {
	if n < 0 || n > 9 {
		return fmt.Sprintf("%d.", n)
	}
	return fmt.Sprintf("%d️⃣", n)
}
