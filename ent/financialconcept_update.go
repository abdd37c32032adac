// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/filinglens/filinglens/ent/financialconcept"
	"github.com/filinglens/filinglens/ent/financialvalue"
	"github.com/filinglens/filinglens/ent/predicate"
)

// FinancialConceptUpdate is the builder for updating FinancialConcept entities.
type FinancialConceptUpdate struct {
	config
	hooks    []Hook
	mutation *FinancialConceptMutation
}

// Where appends a list predicates to the FinancialConceptUpdate builder.
func (_u *FinancialConceptUpdate) Where(ps ...predicate.FinancialConcept) *FinancialConceptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *FinancialConceptUpdate) SetName(v string) *FinancialConceptUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FinancialConceptUpdate) SetNillableName(v *string) *FinancialConceptUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *FinancialConceptUpdate) SetDescription(v string) *FinancialConceptUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *FinancialConceptUpdate) SetNillableDescription(v *string) *FinancialConceptUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *FinancialConceptUpdate) ClearDescription() *FinancialConceptUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetLabels sets the "labels" field.
func (_u *FinancialConceptUpdate) SetLabels(v []string) *FinancialConceptUpdate {
	_u.mutation.SetLabels(v)
	return _u
}

// AppendLabels appends value to the "labels" field.
func (_u *FinancialConceptUpdate) AppendLabels(v []string) *FinancialConceptUpdate {
	_u.mutation.AppendLabels(v)
	return _u
}

// ClearLabels clears the value of the "labels" field.
func (_u *FinancialConceptUpdate) ClearLabels() *FinancialConceptUpdate {
	_u.mutation.ClearLabels()
	return _u
}

// AddValueIDs adds the "values" edge to the FinancialValue entity by IDs.
func (_u *FinancialConceptUpdate) AddValueIDs(ids ...string) *FinancialConceptUpdate {
	_u.mutation.AddValueIDs(ids...)
	return _u
}

// AddValues adds the "values" edges to the FinancialValue entity.
func (_u *FinancialConceptUpdate) AddValues(v ...*FinancialValue) *FinancialConceptUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddValueIDs(ids...)
}

// Mutation returns the FinancialConceptMutation object of the builder.
func (_u *FinancialConceptUpdate) Mutation() *FinancialConceptMutation {
	return _u.mutation
}

// ClearValues clears all "values" edges to the FinancialValue entity.
func (_u *FinancialConceptUpdate) ClearValues() *FinancialConceptUpdate {
	_u.mutation.ClearValues()
	return _u
}

// RemoveValueIDs removes the "values" edge to FinancialValue entities by IDs.
func (_u *FinancialConceptUpdate) RemoveValueIDs(ids ...string) *FinancialConceptUpdate {
	_u.mutation.RemoveValueIDs(ids...)
	return _u
}

// RemoveValues removes "values" edges to FinancialValue entities.
func (_u *FinancialConceptUpdate) RemoveValues(v ...*FinancialValue) *FinancialConceptUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveValueIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FinancialConceptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FinancialConceptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FinancialConceptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FinancialConceptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *FinancialConceptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(financialconcept.Table, financialconcept.Columns, sqlgraph.NewFieldSpec(financialconcept.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(financialconcept.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(financialconcept.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(financialconcept.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Labels(); ok {
		_spec.SetField(financialconcept.FieldLabels, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLabels(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, financialconcept.FieldLabels, value)
		})
	}
	if _u.mutation.LabelsCleared() {
		_spec.ClearField(financialconcept.FieldLabels, field.TypeJSON)
	}
	if _u.mutation.ValuesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   financialconcept.ValuesTable,
			Columns: []string{financialconcept.ValuesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(financialvalue.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedValuesIDs(); len(nodes) > 0 && !_u.mutation.ValuesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   financialconcept.ValuesTable,
			Columns: []string{financialconcept.ValuesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(financialvalue.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ValuesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   financialconcept.ValuesTable,
			Columns: []string{financialconcept.ValuesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(financialvalue.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{financialconcept.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FinancialConceptUpdateOne is the builder for updating a single FinancialConcept entity.
type FinancialConceptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FinancialConceptMutation
}

// SetName sets the "name" field.
func (_u *FinancialConceptUpdateOne) SetName(v string) *FinancialConceptUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FinancialConceptUpdateOne) SetNillableName(v *string) *FinancialConceptUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *FinancialConceptUpdateOne) SetDescription(v string) *FinancialConceptUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *FinancialConceptUpdateOne) SetNillableDescription(v *string) *FinancialConceptUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *FinancialConceptUpdateOne) ClearDescription() *FinancialConceptUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetLabels sets the "labels" field.
func (_u *FinancialConceptUpdateOne) SetLabels(v []string) *FinancialConceptUpdateOne {
	_u.mutation.SetLabels(v)
	return _u
}

// AppendLabels appends value to the "labels" field.
func (_u *FinancialConceptUpdateOne) AppendLabels(v []string) *FinancialConceptUpdateOne {
	_u.mutation.AppendLabels(v)
	return _u
}

// ClearLabels clears the value of the "labels" field.
func (_u *FinancialConceptUpdateOne) ClearLabels() *FinancialConceptUpdateOne {
	_u.mutation.ClearLabels()
	return _u
}

// AddValueIDs adds the "values" edge to the FinancialValue entity by IDs.
func (_u *FinancialConceptUpdateOne) AddValueIDs(ids ...string) *FinancialConceptUpdateOne {
	_u.mutation.AddValueIDs(ids...)
	return _u
}

// AddValues adds the "values" edges to the FinancialValue entity.
func (_u *FinancialConceptUpdateOne) AddValues(v ...*FinancialValue) *FinancialConceptUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddValueIDs(ids...)
}

// Mutation returns the FinancialConceptMutation object of the builder.
func (_u *FinancialConceptUpdateOne) Mutation() *FinancialConceptMutation {
	return _u.mutation
}

// ClearValues clears all "values" edges to the FinancialValue entity.
func (_u *FinancialConceptUpdateOne) ClearValues() *FinancialConceptUpdateOne {
	_u.mutation.ClearValues()
	return _u
}

// RemoveValueIDs removes the "values" edge to FinancialValue entities by IDs.
func (_u *FinancialConceptUpdateOne) RemoveValueIDs(ids ...string) *FinancialConceptUpdateOne {
	_u.mutation.RemoveValueIDs(ids...)
	return _u
}

// RemoveValues removes "values" edges to FinancialValue entities.
func (_u *FinancialConceptUpdateOne) RemoveValues(v ...*FinancialValue) *FinancialConceptUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveValueIDs(ids...)
}

// Where appends a list predicates to the FinancialConceptUpdate builder.
func (_u *FinancialConceptUpdateOne) Where(ps ...predicate.FinancialConcept) *FinancialConceptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FinancialConceptUpdateOne) Select(field string, fields ...string) *FinancialConceptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FinancialConcept entity.
func (_u *FinancialConceptUpdateOne) Save(ctx context.Context) (*FinancialConcept, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FinancialConceptUpdateOne) SaveX(ctx context.Context) *FinancialConcept {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FinancialConceptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FinancialConceptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *FinancialConceptUpdateOne) sqlSave(ctx context.Context) (_node *FinancialConcept, err error) {
	_spec := sqlgraph.NewUpdateSpec(financialconcept.Table, financialconcept.Columns, sqlgraph.NewFieldSpec(financialconcept.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FinancialConcept.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, financialconcept.FieldID)
		for _, f := range fields {
			if !financialconcept.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != financialconcept.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(financialconcept.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(financialconcept.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(financialconcept.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Labels(); ok {
		_spec.SetField(financialconcept.FieldLabels, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLabels(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, financialconcept.FieldLabels, value)
		})
	}
	if _u.mutation.LabelsCleared() {
		_spec.ClearField(financialconcept.FieldLabels, field.TypeJSON)
	}
	if _u.mutation.ValuesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   financialconcept.ValuesTable,
			Columns: []string{financialconcept.ValuesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(financialvalue.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedValuesIDs(); len(nodes) > 0 && !_u.mutation.ValuesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   financialconcept.ValuesTable,
			Columns: []string{financialconcept.ValuesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(financialvalue.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ValuesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   financialconcept.ValuesTable,
			Columns: []string{financialconcept.ValuesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(financialvalue.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &FinancialConcept{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{financialconcept.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
