// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/filinglens/filinglens/ent/companygroup"
)

// CompanyGroup is the model entity for the CompanyGroup schema.
type CompanyGroup struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// URL-safe identifier, e.g. 'mega-cap-tech'
	Slug string `json:"slug,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Tickers holds the value of the "tickers" field.
	Tickers []string `json:"tickers,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CompanyGroupQuery when eager-loading is set.
	Edges        CompanyGroupEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CompanyGroupEdges holds the relations/edges for other nodes in the graph.
type CompanyGroupEdges struct {
	// GeneratedContents holds the value of the generated_contents edge.
	GeneratedContents []*GeneratedContent `json:"generated_contents,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// GeneratedContentsOrErr returns the GeneratedContents value or an error if the edge
// was not loaded in eager-loading.
func (e CompanyGroupEdges) GeneratedContentsOrErr() ([]*GeneratedContent, error) {
	if e.loadedTypes[0] {
		return e.GeneratedContents, nil
	}
	return nil, &NotLoadedError{edge: "generated_contents"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CompanyGroup) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case companygroup.FieldTickers:
			values[i] = new([]byte)
		case companygroup.FieldID, companygroup.FieldSlug, companygroup.FieldName:
			values[i] = new(sql.NullString)
		case companygroup.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CompanyGroup fields.
func (_m *CompanyGroup) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case companygroup.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case companygroup.FieldSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slug", values[i])
			} else if value.Valid {
				_m.Slug = value.String
			}
		case companygroup.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case companygroup.FieldTickers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tickers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Tickers); err != nil {
					return fmt.Errorf("unmarshal field tickers: %w", err)
				}
			}
		case companygroup.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the CompanyGroup.
// This includes values selected through modifiers, order, etc.
func (_m *CompanyGroup) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryGeneratedContents queries the "generated_contents" edge of the CompanyGroup entity.
func (_m *CompanyGroup) QueryGeneratedContents() *GeneratedContentQuery {
	return NewCompanyGroupClient(_m.config).QueryGeneratedContents(_m)
}

// Update returns a builder for updating this CompanyGroup.
// Note that you need to call CompanyGroup.Unwrap() before calling this method if this CompanyGroup
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CompanyGroup) Update() *CompanyGroupUpdateOne {
	return NewCompanyGroupClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CompanyGroup entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CompanyGroup) Unwrap() *CompanyGroup {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CompanyGroup is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CompanyGroup) String() string {
	var builder strings.Builder
	builder.WriteString("CompanyGroup(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("slug=")
	builder.WriteString(_m.Slug)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("tickers=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tickers))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CompanyGroups is a parsable slice of CompanyGroup.
type CompanyGroups []*CompanyGroup
