package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wep_bot/catalog"
)

func TestRenderRecommendations(t *testing.T) {
	got := RenderRecommendations([]catalog.Scheme{
		{SchemeName: "A", BenefitSummary: "a benefit", ApplicationURL: "https://a", RequiredDocuments: "Aadhaar"},
		{SchemeName: "B"},
	})

	want := resultsHeader + "\n" +
		"1️⃣ A (a benefit)\n" +
		"👉 Apply: https://a\n" +
		"Docs: Aadhaar\n\n" +
		"2️⃣ B ()\n" +
		"👉 Apply: \n" +
		"Docs: \n"
	assert.Equal(t, want, got)
}

func TestRenderRecommendationsEmpty(t *testing.T) {
	assert.Equal(t, noResults, RenderRecommendations(nil))
}

func TestKeycap(t *testing.T) {
	assert.Equal(t, "3️⃣", keycap(3))
	assert.Equal(t, "10.", keycap(10))
}
