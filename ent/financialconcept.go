// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/filinglens/filinglens/ent/financialconcept"
)

// FinancialConcept is the model entity for the FinancialConcept schema.
type FinancialConcept struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Statement labels, e.g. ['balance_sheet', 'income_statement']
	Labels []string `json:"labels,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FinancialConceptQuery when eager-loading is set.
	Edges        FinancialConceptEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FinancialConceptEdges holds the relations/edges for other nodes in the graph.
type FinancialConceptEdges struct {
	// Values holds the value of the values edge.
	Values []*FinancialValue `json:"values,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ValuesOrErr returns the Values value or an error if the edge
// was not loaded in eager-loading.
func (e FinancialConceptEdges) ValuesOrErr() ([]*FinancialValue, error) {
	if e.loadedTypes[0] {
		return e.Values, nil
	}
	return nil, &NotLoadedError{edge: "values"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FinancialConcept) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case financialconcept.FieldLabels:
			values[i] = new([]byte)
		case financialconcept.FieldID, financialconcept.FieldName, financialconcept.FieldDescription:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FinancialConcept fields.
func (_m *FinancialConcept) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case financialconcept.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case financialconcept.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case financialconcept.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case financialconcept.FieldLabels:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field labels", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Labels); err != nil {
					return fmt.Errorf("unmarshal field labels: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FinancialConcept.
// This includes values selected through modifiers, order, etc.
func (_m *FinancialConcept) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryValues queries the "values" edge of the FinancialConcept entity.
func (_m *FinancialConcept) QueryValues() *FinancialValueQuery {
	return NewFinancialConceptClient(_m.config).QueryValues(_m)
}

// Update returns a builder for updating this FinancialConcept.
// Note that you need to call FinancialConcept.Unwrap() before calling this method if this FinancialConcept
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FinancialConcept) Update() *FinancialConceptUpdateOne {
	return NewFinancialConceptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FinancialConcept entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FinancialConcept) Unwrap() *FinancialConcept {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FinancialConcept is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FinancialConcept) String() string {
	var builder strings.Builder
	builder.WriteString("FinancialConcept(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("labels=")
	builder.WriteString(fmt.Sprintf("%v", _m.Labels))
	builder.WriteByte(')')
	return builder.String()
}

// FinancialConcepts is a parsable slice of FinancialConcept.
type FinancialConcepts []*FinancialConcept
