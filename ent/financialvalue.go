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
	"github.com/filinglens/filinglens/ent/financialconcept"
	"github.com/filinglens/filinglens/ent/financialvalue"
	"github.com/shopspring/decimal"
)

// FinancialValue is the model entity for the FinancialValue schema.
type FinancialValue struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CompanyID holds the value of the "company_id" field.
	CompanyID string `json:"company_id,omitempty"`
	// ConceptID holds the value of the "concept_id" field.
	ConceptID string `json:"concept_id,omitempty"`
	// FilingID holds the value of the "filing_id" field.
	FilingID *string `json:"filing_id,omitempty"`
	// ValueDate holds the value of the "value_date" field.
	ValueDate time.Time `json:"value_date,omitempty"`
	// Value holds the value of the "value" field.
	Value decimal.Decimal `json:"value,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FinancialValueQuery when eager-loading is set.
	Edges        FinancialValueEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FinancialValueEdges holds the relations/edges for other nodes in the graph.
type FinancialValueEdges struct {
	// Company holds the value of the company edge.
	Company *Company `json:"company,omitempty"`
	// Concept holds the value of the concept edge.
	Concept *FinancialConcept `json:"concept,omitempty"`
	// Filing holds the value of the filing edge.
	Filing *Filing `json:"filing,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// CompanyOrErr returns the Company value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FinancialValueEdges) CompanyOrErr() (*Company, error) {
	if e.Company != nil {
		return e.Company, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: company.Label}
	}
	return nil, &NotLoadedError{edge: "company"}
}

// ConceptOrErr returns the Concept value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FinancialValueEdges) ConceptOrErr() (*FinancialConcept, error) {
	if e.Concept != nil {
		return e.Concept, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: financialconcept.Label}
	}
	return nil, &NotLoadedError{edge: "concept"}
}

// FilingOrErr returns the Filing value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FinancialValueEdges) FilingOrErr() (*Filing, error) {
	if e.Filing != nil {
		return e.Filing, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: filing.Label}
	}
	return nil, &NotLoadedError{edge: "filing"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FinancialValue) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case financialvalue.FieldValue:
			values[i] = new(decimal.Decimal)
		case financialvalue.FieldID, financialvalue.FieldCompanyID, financialvalue.FieldConceptID, financialvalue.FieldFilingID:
			values[i] = new(sql.NullString)
		case financialvalue.FieldValueDate, financialvalue.FieldCreatedAt, financialvalue.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FinancialValue fields.
func (_m *FinancialValue) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case financialvalue.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case financialvalue.FieldCompanyID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company_id", values[i])
			} else if value.Valid {
				_m.CompanyID = value.String
			}
		case financialvalue.FieldConceptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field concept_id", values[i])
			} else if value.Valid {
				_m.ConceptID = value.String
			}
		case financialvalue.FieldFilingID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filing_id", values[i])
			} else if value.Valid {
				_m.FilingID = new(string)
				*_m.FilingID = value.String
			}
		case financialvalue.FieldValueDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field value_date", values[i])
			} else if value.Valid {
				_m.ValueDate = value.Time
			}
		case financialvalue.FieldValue:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field value", values[i])
			} else if value != nil {
				_m.Value = *value
			}
		case financialvalue.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case financialvalue.FieldUpdatedAt:
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

// GetValue returns the ent.Value that was dynamically selected and assigned to the FinancialValue.
// This includes values selected through modifiers, order, etc.
func (_m *FinancialValue) GetValue(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCompany queries the "company" edge of the FinancialValue entity.
func (_m *FinancialValue) QueryCompany() *CompanyQuery {
	return NewFinancialValueClient(_m.config).QueryCompany(_m)
}

// QueryConcept queries the "concept" edge of the FinancialValue entity.
func (_m *FinancialValue) QueryConcept() *FinancialConceptQuery {
	return NewFinancialValueClient(_m.config).QueryConcept(_m)
}

// QueryFiling queries the "filing" edge of the FinancialValue entity.
func (_m *FinancialValue) QueryFiling() *FilingQuery {
	return NewFinancialValueClient(_m.config).QueryFiling(_m)
}

// Update returns a builder for updating this FinancialValue.
// Note that you need to call FinancialValue.Unwrap() before calling this method if this FinancialValue
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FinancialValue) Update() *FinancialValueUpdateOne {
	return NewFinancialValueClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FinancialValue entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FinancialValue) Unwrap() *FinancialValue {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FinancialValue is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FinancialValue) String() string {
	var builder strings.Builder
	builder.WriteString("FinancialValue(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("company_id=")
	builder.WriteString(_m.CompanyID)
	builder.WriteString(", ")
	builder.WriteString("concept_id=")
	builder.WriteString(_m.ConceptID)
	builder.WriteString(", ")
	if v := _m.FilingID; v != nil {
		builder.WriteString("filing_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("value_date=")
	builder.WriteString(_m.ValueDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("value=")
	builder.WriteString(fmt.Sprintf("%v", _m.Value))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FinancialValues is a parsable slice of FinancialValue.
type FinancialValues []*FinancialValue
