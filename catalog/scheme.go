package catalog

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Column names of the scheme table.
const (
	ColSchemeName         = "scheme_name"
	ColBenefitSummary     = "benefit_summary"
	ColApplicationURL     = "application_url"
	ColRequiredDocuments  = "required_documents"
	ColPillar             = "pillar"
	ColEligibilitySummary = "eligibility_summary"
	ColDigitized          = "digitized (yes/no)"
	ColLastUpdated        = "last_updated"
)

// Scheme is one assistance scheme of the catalog.
type Scheme struct {
	SchemeName         string `json:"scheme_name" validate:"required"`
	BenefitSummary     string `json:"benefit_summary"`
	ApplicationURL     string `json:"application_url"`
	RequiredDocuments  string `json:"required_documents"`
	Pillar             string `json:"pillar"`
	EligibilitySummary string `json:"eligibility_summary"`
	Digitized          string `json:"digitized"`
	LastUpdated        string `json:"last_updated"`
}

// IsDigitized reports whether the scheme can be applied for online.
func (s Scheme) IsDigitized() bool {
	return strings.EqualFold(strings.TrimSpace(s.Digitized), "yes")
}

func (s *Scheme) applyDefaults() {
	if strings.TrimSpace(s.Digitized) == "" {
		s.Digitized = "no"
	}
}

var validate = validator.New()

// Catalog is the read-only list of schemes, in source order.
type Catalog struct {
	schemes []Scheme
}

// New validates the records, fills defaults and freezes them into a Catalog.
func New(records []Scheme) (*Catalog, error) {
	schemes := make([]Scheme, len(records))
	for i, r := range records {
		r.applyDefaults()
		if err := validate.Struct(r); err != nil {
			return nil, fmt.Errorf("scheme #%d: %w", i+1, err)
		}
		schemes[i] = r
	}
	return &Catalog{schemes: schemes}, nil
}

// Schemes returns a copy of the records, so callers may sort freely.
func (c *Catalog) Schemes() []Scheme {
	if c == nil {
		return nil
	}
	out := make([]Scheme, len(c.schemes))
	copy(out, c.schemes)
	return out
}

// Len returns the number of schemes.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.schemes)
}
