// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/filinglens/filinglens/ent/company"
	"github.com/filinglens/filinglens/ent/filing"
)

// Filing is the model entity for the Filing schema.
type Filing struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CompanyID holds the value of the "company_id" field.
	CompanyID string `json:"company_id,omitempty"`
	// SEC accession number, unique across all filings
	AccessionNumber string `json:"accession_number,omitempty"`
	// e.g. '10-K', '10-Q'
	FormType string `json:"form_type,omitempty"`
	// FilingDate holds the value of the "filing_date" field.
	FilingDate time.Time `json:"filing_date,omitempty"`
	// PeriodOfReport holds the value of the "period_of_report" field.
	PeriodOfReport *time.Time `json:"period_of_report,omitempty"`
	// SourceURL holds the value of the "source_url" field.
	SourceURL string `json:"source_url,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FilingQuery when eager-loading is set.
	Edges        FilingEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FilingEdges holds the relations/edges for other nodes in the graph.
type FilingEdges struct {
	// Company holds the value of the company edge.
	Company *Company `json:"company,omitempty"`
	// Documents holds the value of the documents edge.
	Documents []*Document `json:"documents,omitempty"`
	// FinancialValues holds the value of the financial_values edge.
	FinancialValues []*FinancialValue `json:"financial_values,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// CompanyOrErr returns the Company value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FilingEdges) CompanyOrErr() (*Company, error) {
	if e.Company != nil {
		return e.Company, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: company.Label}
	}
	return nil, &NotLoadedError{edge: "company"}
}

// DocumentsOrErr returns the Documents value or an error if the edge
// was not loaded in eager-loading.
func (e FilingEdges) DocumentsOrErr() ([]*Document, error) {
	if e.loadedTypes[1] {
		return e.Documents, nil
	}
	return nil, &NotLoadedError{edge: "documents"}
}

// FinancialValuesOrErr returns the FinancialValues value or an error if the edge
// was not loaded in eager-loading.
func (e FilingEdges) FinancialValuesOrErr() ([]*FinancialValue, error) {
	if e.loadedTypes[2] {
		return e.FinancialValues, nil
	}
	return nil, &NotLoadedError{edge: "financial_values"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Filing) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case filing.FieldID, filing.FieldCompanyID, filing.FieldAccessionNumber, filing.FieldFormType, filing.FieldSourceURL:
			values[i] = new(sql.NullString)
		case filing.FieldFilingDate, filing.FieldPeriodOfReport, filing.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Filing fields.
func (_m *Filing) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case filing.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case filing.FieldCompanyID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company_id", values[i])
			} else if value.Valid {
				_m.CompanyID = value.String
			}
		case filing.FieldAccessionNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field accession_number", values[i])
			} else if value.Valid {
				_m.AccessionNumber = value.String
			}
		case filing.FieldFormType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field form_type", values[i])
			} else if value.Valid {
				_m.FormType = value.String
			}
		case filing.FieldFilingDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field filing_date", values[i])
			} else if value.Valid {
				_m.FilingDate = value.Time
			}
		case filing.FieldPeriodOfReport:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field period_of_report", values[i])
			} else if value.Valid {
				_m.PeriodOfReport = new(time.Time)
				*_m.PeriodOfReport = value.Time
			}
		case filing.FieldSourceURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_url", values[i])
			} else if value.Valid {
				_m.SourceURL = value.String
			}
		case filing.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Filing.
// This includes values selected through modifiers, order, etc.
func (_m *Filing) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCompany queries the "company" edge of the Filing entity.
func (_m *Filing) QueryCompany() *CompanyQuery {
	return NewFilingClient(_m.config).QueryCompany(_m)
}

// QueryDocuments queries the "documents" edge of the Filing entity.
func (_m *Filing) QueryDocuments() *DocumentQuery {
	return NewFilingClient(_m.config).QueryDocuments(_m)
}

// QueryFinancialValues queries the "financial_values" edge of the Filing entity.
func (_m *Filing) QueryFinancialValues() *FinancialValueQuery {
	return NewFilingClient(_m.config).QueryFinancialValues(_m)
}

// Update returns a builder for updating this Filing.
// Note that you need to call Filing.Unwrap() before calling this method if this Filing
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Filing) Update() *FilingUpdateOne {
	return NewFilingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Filing entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Filing) Unwrap() *Filing {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Filing is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Filing) String() string {
	var builder strings.Builder
	builder.WriteString("Filing(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("company_id=")
	builder.WriteString(_m.CompanyID)
	builder.WriteString(", ")
	builder.WriteString("accession_number=")
	builder.WriteString(_m.AccessionNumber)
	builder.WriteString(", ")
	builder.WriteString("form_type=")
	builder.WriteString(_m.FormType)
	builder.WriteString(", ")
	builder.WriteString("filing_date=")
	builder.WriteString(_m.FilingDate.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.PeriodOfReport; v != nil {
		builder.WriteString("period_of_report=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("source_url=")
	builder.WriteString(_m.SourceURL)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Filings is a parsable slice of Filing.
type Filings []*Filing
