package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent/Atlas cannot express. financial_values is upserted on
// (company, concept, value_date, filing-or-null); NULL filing_id needs its
// own uniqueness rule because NULLs never compare equal.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS financialvalue_company_concept_date_filing
		ON financial_values (company_id, concept_id, value_date, filing_id)
		WHERE filing_id IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("failed to create filing-scoped value index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS financialvalue_company_concept_date_nofiling
		ON financial_values (company_id, concept_id, value_date)
		WHERE filing_id IS NULL`)
	if err != nil {
		return fmt.Errorf("failed to create unfiled value index: %w", err)
	}

	return nil
}
