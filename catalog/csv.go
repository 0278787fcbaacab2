package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrMissingColumn is returned when a required column is absent from the header.
var ErrMissingColumn = errors.New("missing required column")

var requiredColumns = []string{
	ColSchemeName,
	ColBenefitSummary,
	ColApplicationURL,
	ColRequiredDocuments,
	ColPillar,
	ColEligibilitySummary,
}

// LoadCSV reads the catalog from a CSV file with a header row.
func LoadCSV(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	c, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// ReadCSV parses a catalog from r. Every row must have as many fields as the header.
func ReadCSV(r io.Reader) (*Catalog, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty catalog: %w", ErrMissingColumn)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if name == "digitized" {
			name = ColDigitized
		}
		index[name] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, col)
		}
	}

	field := func(row []string, col string) string {
		i, ok := index[col]
		if !ok {
			return ""
		}
		return row[i]
	}

	var records []Scheme
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		records = append(records, Scheme{
			SchemeName:         field(row, ColSchemeName),
			BenefitSummary:     field(row, ColBenefitSummary),
			ApplicationURL:     field(row, ColApplicationURL),
			RequiredDocuments:  field(row, ColRequiredDocuments),
			Pillar:             field(row, ColPillar),
			EligibilitySummary: field(row, ColEligibilitySummary),
			Digitized:          field(row, ColDigitized),
			LastUpdated:        field(row, ColLastUpdated),
		})
	}

	return New(records)
}
