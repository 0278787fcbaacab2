package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
)

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// LoadPostgres reads the catalog from table, ordered by its primary key
// column "id" so the fallback prefix stays stable between restarts.
func LoadPostgres(ctx context.Context, db *sql.DB, table string) (*Catalog, error) {
	if !tableName.MatchString(table) {
		return nil, fmt.Errorf("invalid catalog table name %q", table)
	}

	query := fmt.Sprintf(`SELECT
		COALESCE(scheme_name, ''),
		COALESCE(benefit_summary, ''),
		COALESCE(application_url, ''),
		COALESCE(required_documents, ''),
		COALESCE(pillar, ''),
		COALESCE(eligibility_summary, ''),
		COALESCE(digitized::text, ''),
		COALESCE(last_updated::text, '')
	FROM %s ORDER BY id`, table)

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query catalog: %w", err)
	}
	defer rows.Close()

	var records []Scheme
	for rows.Next() {
		var s Scheme
		if err := rows.Scan(
			&s.SchemeName,
			&s.BenefitSummary,
			&s.ApplicationURL,
			&s.RequiredDocuments,
			&s.Pillar,
			&s.EligibilitySummary,
			&s.Digitized,
			&s.LastUpdated,
		); err != nil {
			return nil, fmt.Errorf("scan catalog row: %w", err)
		}
		records = append(records, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate catalog: %w", err)
	}

	return New(records)
}
