// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/filinglens/filinglens/ent/filing"
	"github.com/filinglens/filinglens/ent/financialvalue"
	"github.com/filinglens/filinglens/ent/predicate"
	"github.com/shopspring/decimal"
)

// FinancialValueUpdate is the builder for updating FinancialValue entities.
type FinancialValueUpdate struct {
	config
	hooks    []Hook
	mutation *FinancialValueMutation
}

// Where appends a list predicates to the FinancialValueUpdate builder.
func (_u *FinancialValueUpdate) Where(ps ...predicate.FinancialValue) *FinancialValueUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFilingID sets the "filing_id" field.
func (_u *FinancialValueUpdate) SetFilingID(v string) *FinancialValueUpdate {
	_u.mutation.SetFilingID(v)
	return _u
}

// SetNillableFilingID sets the "filing_id" field if the given value is not nil.
func (_u *FinancialValueUpdate) SetNillableFilingID(v *string) *FinancialValueUpdate {
	if v != nil {
		_u.SetFilingID(*v)
	}
	return _u
}

// ClearFilingID clears the value of the "filing_id" field.
func (_u *FinancialValueUpdate) ClearFilingID() *FinancialValueUpdate {
	_u.mutation.ClearFilingID()
	return _u
}

// SetValueDate sets the "value_date" field.
func (_u *FinancialValueUpdate) SetValueDate(v time.Time) *FinancialValueUpdate {
	_u.mutation.SetValueDate(v)
	return _u
}

// SetNillableValueDate sets the "value_date" field if the given value is not nil.
func (_u *FinancialValueUpdate) SetNillableValueDate(v *time.Time) *FinancialValueUpdate {
	if v != nil {
		_u.SetValueDate(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *FinancialValueUpdate) SetValue(v decimal.Decimal) *FinancialValueUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *FinancialValueUpdate) SetNillableValue(v *decimal.Decimal) *FinancialValueUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FinancialValueUpdate) SetUpdatedAt(v time.Time) *FinancialValueUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFiling sets the "filing" edge to the Filing entity.
func (_u *FinancialValueUpdate) SetFiling(v *Filing) *FinancialValueUpdate {
	return _u.SetFilingID(v.ID)
}

// Mutation returns the FinancialValueMutation object of the builder.
func (_u *FinancialValueUpdate) Mutation() *FinancialValueMutation {
	return _u.mutation
}

// ClearFiling clears the "filing" edge to the Filing entity.
func (_u *FinancialValueUpdate) ClearFiling() *FinancialValueUpdate {
	_u.mutation.ClearFiling()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FinancialValueUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FinancialValueUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FinancialValueUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FinancialValueUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FinancialValueUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := financialvalue.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FinancialValueUpdate) check() error {
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FinancialValue.company"`)
	}
	if _u.mutation.ConceptCleared() && len(_u.mutation.ConceptIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FinancialValue.concept"`)
	}
	return nil
}

func (_u *FinancialValueUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(financialvalue.Table, financialvalue.Columns, sqlgraph.NewFieldSpec(financialvalue.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ValueDate(); ok {
		_spec.SetField(financialvalue.FieldValueDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(financialvalue.FieldValue, field.TypeOther, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(financialvalue.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FilingCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   financialvalue.FilingTable,
			Columns: []string{financialvalue.FilingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filing.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   financialvalue.FilingTable,
			Columns: []string{financialvalue.FilingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filing.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{financialvalue.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FinancialValueUpdateOne is the builder for updating a single FinancialValue entity.
type FinancialValueUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FinancialValueMutation
}

// SetFilingID sets the "filing_id" field.
func (_u *FinancialValueUpdateOne) SetFilingID(v string) *FinancialValueUpdateOne {
	_u.mutation.SetFilingID(v)
	return _u
}

// SetNillableFilingID sets the "filing_id" field if the given value is not nil.
func (_u *FinancialValueUpdateOne) SetNillableFilingID(v *string) *FinancialValueUpdateOne {
	if v != nil {
		_u.SetFilingID(*v)
	}
	return _u
}

// ClearFilingID clears the value of the "filing_id" field.
func (_u *FinancialValueUpdateOne) ClearFilingID() *FinancialValueUpdateOne {
	_u.mutation.ClearFilingID()
	return _u
}

// SetValueDate sets the "value_date" field.
func (_u *FinancialValueUpdateOne) SetValueDate(v time.Time) *FinancialValueUpdateOne {
	_u.mutation.SetValueDate(v)
	return _u
}

// SetNillableValueDate sets the "value_date" field if the given value is not nil.
func (_u *FinancialValueUpdateOne) SetNillableValueDate(v *time.Time) *FinancialValueUpdateOne {
	if v != nil {
		_u.SetValueDate(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *FinancialValueUpdateOne) SetValue(v decimal.Decimal) *FinancialValueUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *FinancialValueUpdateOne) SetNillableValue(v *decimal.Decimal) *FinancialValueUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FinancialValueUpdateOne) SetUpdatedAt(v time.Time) *FinancialValueUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFiling sets the "filing" edge to the Filing entity.
func (_u *FinancialValueUpdateOne) SetFiling(v *Filing) *FinancialValueUpdateOne {
	return _u.SetFilingID(v.ID)
}

// Mutation returns the FinancialValueMutation object of the builder.
func (_u *FinancialValueUpdateOne) Mutation() *FinancialValueMutation {
	return _u.mutation
}

// ClearFiling clears the "filing" edge to the Filing entity.
func (_u *FinancialValueUpdateOne) ClearFiling() *FinancialValueUpdateOne {
	_u.mutation.ClearFiling()
	return _u
}

// Where appends a list predicates to the FinancialValueUpdate builder.
func (_u *FinancialValueUpdateOne) Where(ps ...predicate.FinancialValue) *FinancialValueUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FinancialValueUpdateOne) Select(field string, fields ...string) *FinancialValueUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FinancialValue entity.
func (_u *FinancialValueUpdateOne) Save(ctx context.Context) (*FinancialValue, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FinancialValueUpdateOne) SaveX(ctx context.Context) *FinancialValue {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FinancialValueUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FinancialValueUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FinancialValueUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := financialvalue.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FinancialValueUpdateOne) check() error {
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FinancialValue.company"`)
	}
	if _u.mutation.ConceptCleared() && len(_u.mutation.ConceptIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FinancialValue.concept"`)
	}
	return nil
}

func (_u *FinancialValueUpdateOne) sqlSave(ctx context.Context) (_node *FinancialValue, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(financialvalue.Table, financialvalue.Columns, sqlgraph.NewFieldSpec(financialvalue.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FinancialValue.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, financialvalue.FieldID)
		for _, f := range fields {
			if !financialvalue.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != financialvalue.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ValueDate(); ok {
		_spec.SetField(financialvalue.FieldValueDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(financialvalue.FieldValue, field.TypeOther, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(financialvalue.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FilingCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   financialvalue.FilingTable,
			Columns: []string{financialvalue.FilingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filing.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   financialvalue.FilingTable,
			Columns: []string{financialvalue.FilingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filing.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &FinancialValue{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{financialvalue.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
