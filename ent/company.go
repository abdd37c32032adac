// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/filinglens/filinglens/ent/company"
)

// Company is the model entity for the Company schema.
type Company struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Uppercase ticker symbol, e.g. 'AAPL'
	Ticker string `json:"ticker,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Exchange listings, e.g. ['Nasdaq']
	Exchanges []string `json:"exchanges,omitempty"`
	// SIC industry classification
	IndustryCode string `json:"industry_code,omitempty"`
	// MMDD, e.g. '0930'
	FiscalYearEnd *string `json:"fiscal_year_end,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CompanyQuery when eager-loading is set.
	Edges        CompanyEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CompanyEdges holds the relations/edges for other nodes in the graph.
type CompanyEdges struct {
	// Filings holds the value of the filings edge.
	Filings []*Filing `json:"filings,omitempty"`
	// Documents holds the value of the documents edge.
	Documents []*Document `json:"documents,omitempty"`
	// FinancialValues holds the value of the financial_values edge.
	FinancialValues []*FinancialValue `json:"financial_values,omitempty"`
	// GeneratedContents holds the value of the generated_contents edge.
	GeneratedContents []*GeneratedContent `json:"generated_contents,omitempty"`
	// PipelineRuns holds the value of the pipeline_runs edge.
	PipelineRuns []*PipelineRun `json:"pipeline_runs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// FilingsOrErr returns the Filings value or an error if the edge
// was not loaded in eager-loading.
func (e CompanyEdges) FilingsOrErr() ([]*Filing, error) {
	if e.loadedTypes[0] {
		return e.Filings, nil
	}
	return nil, &NotLoadedError{edge: "filings"}
}

// DocumentsOrErr returns the Documents value or an error if the edge
// was not loaded in eager-loading.
func (e CompanyEdges) DocumentsOrErr() ([]*Document, error) {
	if e.loadedTypes[1] {
		return e.Documents, nil
	}
	return nil, &NotLoadedError{edge: "documents"}
}

// FinancialValuesOrErr returns the FinancialValues value or an error if the edge
// was not loaded in eager-loading.
func (e CompanyEdges) FinancialValuesOrErr() ([]*FinancialValue, error) {
	if e.loadedTypes[2] {
		return e.FinancialValues, nil
	}
	return nil, &NotLoadedError{edge: "financial_values"}
}

// GeneratedContentsOrErr returns the GeneratedContents value or an error if the edge
// was not loaded in eager-loading.
func (e CompanyEdges) GeneratedContentsOrErr() ([]*GeneratedContent, error) {
	if e.loadedTypes[3] {
		return e.GeneratedContents, nil
	}
	return nil, &NotLoadedError{edge: "generated_contents"}
}

// PipelineRunsOrErr returns the PipelineRuns value or an error if the edge
// was not loaded in eager-loading.
func (e CompanyEdges) PipelineRunsOrErr() ([]*PipelineRun, error) {
	if e.loadedTypes[4] {
		return e.PipelineRuns, nil
	}
	return nil, &NotLoadedError{edge: "pipeline_runs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Company) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case company.FieldExchanges:
			values[i] = new([]byte)
		case company.FieldID, company.FieldTicker, company.FieldName, company.FieldIndustryCode, company.FieldFiscalYearEnd:
			values[i] = new(sql.NullString)
		case company.FieldCreatedAt, company.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Company fields.
func (_m *Company) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case company.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case company.FieldTicker:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ticker", values[i])
			} else if value.Valid {
				_m.Ticker = value.String
			}
		case company.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case company.FieldExchanges:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field exchanges", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Exchanges); err != nil {
					return fmt.Errorf("unmarshal field exchanges: %w", err)
				}
			}
		case company.FieldIndustryCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field industry_code", values[i])
			} else if value.Valid {
				_m.IndustryCode = value.String
			}
		case company.FieldFiscalYearEnd:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fiscal_year_end", values[i])
			} else if value.Valid {
				_m.FiscalYearEnd = new(string)
				*_m.FiscalYearEnd = value.String
			}
		case company.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case company.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Company.
// This includes values selected through modifiers, order, etc.
func (_m *Company) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFilings queries the "filings" edge of the Company entity.
func (_m *Company) QueryFilings() *FilingQuery {
	return NewCompanyClient(_m.config).QueryFilings(_m)
}

// QueryDocuments queries the "documents" edge of the Company entity.
func (_m *Company) QueryDocuments() *DocumentQuery {
	return NewCompanyClient(_m.config).QueryDocuments(_m)
}

// QueryFinancialValues queries the "financial_values" edge of the Company entity.
func (_m *Company) QueryFinancialValues() *FinancialValueQuery {
	return NewCompanyClient(_m.config).QueryFinancialValues(_m)
}

// QueryGeneratedContents queries the "generated_contents" edge of the Company entity.
func (_m *Company) QueryGeneratedContents() *GeneratedContentQuery {
	return NewCompanyClient(_m.config).QueryGeneratedContents(_m)
}

// QueryPipelineRuns queries the "pipeline_runs" edge of the Company entity.
func (_m *Company) QueryPipelineRuns() *PipelineRunQuery {
	return NewCompanyClient(_m.config).QueryPipelineRuns(_m)
}

// Update returns a builder for updating this Company.
// Note that you need to call Company.Unwrap() before calling this method if this Company
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Company) Update() *CompanyUpdateOne {
	return NewCompanyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Company entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Company) Unwrap() *Company {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Company is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Company) String() string {
	var builder strings.Builder
	builder.WriteString("Company(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("ticker=")
	builder.WriteString(_m.Ticker)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("exchanges=")
	builder.WriteString(fmt.Sprintf("%v", _m.Exchanges))
	builder.WriteString(", ")
	builder.WriteString("industry_code=")
	builder.WriteString(_m.IndustryCode)
	builder.WriteString(", ")
	if v := _m.FiscalYearEnd; v != nil {
		builder.WriteString("fiscal_year_end=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Companies is a parsable slice of Company.
type Companies []*Company
