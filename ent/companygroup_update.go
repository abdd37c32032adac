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
	"github.com/filinglens/filinglens/ent/companygroup"
	"github.com/filinglens/filinglens/ent/generatedcontent"
	"github.com/filinglens/filinglens/ent/predicate"
)

// CompanyGroupUpdate is the builder for updating CompanyGroup entities.
type CompanyGroupUpdate struct {
	config
	hooks    []Hook
	mutation *CompanyGroupMutation
}

// Where appends a list predicates to the CompanyGroupUpdate builder.
func (_u *CompanyGroupUpdate) Where(ps ...predicate.CompanyGroup) *CompanyGroupUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSlug sets the "slug" field.
func (_u *CompanyGroupUpdate) SetSlug(v string) *CompanyGroupUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *CompanyGroupUpdate) SetNillableSlug(v *string) *CompanyGroupUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *CompanyGroupUpdate) SetName(v string) *CompanyGroupUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CompanyGroupUpdate) SetNillableName(v *string) *CompanyGroupUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *CompanyGroupUpdate) ClearName() *CompanyGroupUpdate {
	_u.mutation.ClearName()
	return _u
}

// SetTickers sets the "tickers" field.
func (_u *CompanyGroupUpdate) SetTickers(v []string) *CompanyGroupUpdate {
	_u.mutation.SetTickers(v)
	return _u
}

// AppendTickers appends value to the "tickers" field.
func (_u *CompanyGroupUpdate) AppendTickers(v []string) *CompanyGroupUpdate {
	_u.mutation.AppendTickers(v)
	return _u
}

// AddGeneratedContentIDs adds the "generated_contents" edge to the GeneratedContent entity by IDs.
func (_u *CompanyGroupUpdate) AddGeneratedContentIDs(ids ...string) *CompanyGroupUpdate {
	_u.mutation.AddGeneratedContentIDs(ids...)
	return _u
}

// AddGeneratedContents adds the "generated_contents" edges to the GeneratedContent entity.
func (_u *CompanyGroupUpdate) AddGeneratedContents(v ...*GeneratedContent) *CompanyGroupUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGeneratedContentIDs(ids...)
}

// Mutation returns the CompanyGroupMutation object of the builder.
func (_u *CompanyGroupUpdate) Mutation() *CompanyGroupMutation {
	return _u.mutation
}

// ClearGeneratedContents clears all "generated_contents" edges to the GeneratedContent entity.
func (_u *CompanyGroupUpdate) ClearGeneratedContents() *CompanyGroupUpdate {
	_u.mutation.ClearGeneratedContents()
	return _u
}

// RemoveGeneratedContentIDs removes the "generated_contents" edge to GeneratedContent entities by IDs.
func (_u *CompanyGroupUpdate) RemoveGeneratedContentIDs(ids ...string) *CompanyGroupUpdate {
	_u.mutation.RemoveGeneratedContentIDs(ids...)
	return _u
}

// RemoveGeneratedContents removes "generated_contents" edges to GeneratedContent entities.
func (_u *CompanyGroupUpdate) RemoveGeneratedContents(v ...*GeneratedContent) *CompanyGroupUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGeneratedContentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CompanyGroupUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompanyGroupUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CompanyGroupUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompanyGroupUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CompanyGroupUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(companygroup.Table, companygroup.Columns, sqlgraph.NewFieldSpec(companygroup.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(companygroup.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(companygroup.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(companygroup.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.Tickers(); ok {
		_spec.SetField(companygroup.FieldTickers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTickers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, companygroup.FieldTickers, value)
		})
	}
	if _u.mutation.GeneratedContentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   companygroup.GeneratedContentsTable,
			Columns: []string{companygroup.GeneratedContentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generatedcontent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGeneratedContentsIDs(); len(nodes) > 0 && !_u.mutation.GeneratedContentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   companygroup.GeneratedContentsTable,
			Columns: []string{companygroup.GeneratedContentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generatedcontent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GeneratedContentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   companygroup.GeneratedContentsTable,
			Columns: []string{companygroup.GeneratedContentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generatedcontent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{companygroup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CompanyGroupUpdateOne is the builder for updating a single CompanyGroup entity.
type CompanyGroupUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CompanyGroupMutation
}

// SetSlug sets the "slug" field.
func (_u *CompanyGroupUpdateOne) SetSlug(v string) *CompanyGroupUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *CompanyGroupUpdateOne) SetNillableSlug(v *string) *CompanyGroupUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *CompanyGroupUpdateOne) SetName(v string) *CompanyGroupUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CompanyGroupUpdateOne) SetNillableName(v *string) *CompanyGroupUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *CompanyGroupUpdateOne) ClearName() *CompanyGroupUpdateOne {
	_u.mutation.ClearName()
	return _u
}

// SetTickers sets the "tickers" field.
func (_u *CompanyGroupUpdateOne) SetTickers(v []string) *CompanyGroupUpdateOne {
	_u.mutation.SetTickers(v)
	return _u
}

// AppendTickers appends value to the "tickers" field.
func (_u *CompanyGroupUpdateOne) AppendTickers(v []string) *CompanyGroupUpdateOne {
	_u.mutation.AppendTickers(v)
	return _u
}

// AddGeneratedContentIDs adds the "generated_contents" edge to the GeneratedContent entity by IDs.
func (_u *CompanyGroupUpdateOne) AddGeneratedContentIDs(ids ...string) *CompanyGroupUpdateOne {
	_u.mutation.AddGeneratedContentIDs(ids...)
	return _u
}

// AddGeneratedContents adds the "generated_contents" edges to the GeneratedContent entity.
func (_u *CompanyGroupUpdateOne) AddGeneratedContents(v ...*GeneratedContent) *CompanyGroupUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGeneratedContentIDs(ids...)
}

// Mutation returns the CompanyGroupMutation object of the builder.
func (_u *CompanyGroupUpdateOne) Mutation() *CompanyGroupMutation {
	return _u.mutation
}

// ClearGeneratedContents clears all "generated_contents" edges to the GeneratedContent entity.
func (_u *CompanyGroupUpdateOne) ClearGeneratedContents() *CompanyGroupUpdateOne {
	_u.mutation.ClearGeneratedContents()
	return _u
}

// RemoveGeneratedContentIDs removes the "generated_contents" edge to GeneratedContent entities by IDs.
func (_u *CompanyGroupUpdateOne) RemoveGeneratedContentIDs(ids ...string) *CompanyGroupUpdateOne {
	_u.mutation.RemoveGeneratedContentIDs(ids...)
	return _u
}

// RemoveGeneratedContents removes "generated_contents" edges to GeneratedContent entities.
func (_u *CompanyGroupUpdateOne) RemoveGeneratedContents(v ...*GeneratedContent) *CompanyGroupUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGeneratedContentIDs(ids...)
}

// Where appends a list predicates to the CompanyGroupUpdate builder.
func (_u *CompanyGroupUpdateOne) Where(ps ...predicate.CompanyGroup) *CompanyGroupUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CompanyGroupUpdateOne) Select(field string, fields ...string) *CompanyGroupUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CompanyGroup entity.
func (_u *CompanyGroupUpdateOne) Save(ctx context.Context) (*CompanyGroup, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompanyGroupUpdateOne) SaveX(ctx context.Context) *CompanyGroup {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CompanyGroupUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompanyGroupUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CompanyGroupUpdateOne) sqlSave(ctx context.Context) (_node *CompanyGroup, err error) {
	_spec := sqlgraph.NewUpdateSpec(companygroup.Table, companygroup.Columns, sqlgraph.NewFieldSpec(companygroup.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CompanyGroup.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, companygroup.FieldID)
		for _, f := range fields {
			if !companygroup.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != companygroup.FieldID {
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
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(companygroup.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(companygroup.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(companygroup.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.Tickers(); ok {
		_spec.SetField(companygroup.FieldTickers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTickers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, companygroup.FieldTickers, value)
		})
	}
	if _u.mutation.GeneratedContentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   companygroup.GeneratedContentsTable,
			Columns: []string{companygroup.GeneratedContentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generatedcontent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGeneratedContentsIDs(); len(nodes) > 0 && !_u.mutation.GeneratedContentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   companygroup.GeneratedContentsTable,
			Columns: []string{companygroup.GeneratedContentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generatedcontent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GeneratedContentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   companygroup.GeneratedContentsTable,
			Columns: []string{companygroup.GeneratedContentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generatedcontent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CompanyGroup{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{companygroup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
