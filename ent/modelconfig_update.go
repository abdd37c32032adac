// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/filinglens/filinglens/ent/generatedcontent"
	"github.com/filinglens/filinglens/ent/modelconfig"
	"github.com/filinglens/filinglens/ent/predicate"
)

// ModelConfigUpdate is the builder for updating ModelConfig entities.
type ModelConfigUpdate struct {
	config
	hooks    []Hook
	mutation *ModelConfigMutation
}

// Where appends a list predicates to the ModelConfigUpdate builder.
func (_u *ModelConfigUpdate) Where(ps ...predicate.ModelConfig) *ModelConfigUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetModel sets the "model" field.
func (_u *ModelConfigUpdate) SetModel(v string) *ModelConfigUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *ModelConfigUpdate) SetNillableModel(v *string) *ModelConfigUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetOptionsJSON sets the "options_json" field.
func (_u *ModelConfigUpdate) SetOptionsJSON(v string) *ModelConfigUpdate {
	_u.mutation.SetOptionsJSON(v)
	return _u
}

// SetNillableOptionsJSON sets the "options_json" field if the given value is not nil.
func (_u *ModelConfigUpdate) SetNillableOptionsJSON(v *string) *ModelConfigUpdate {
	if v != nil {
		_u.SetOptionsJSON(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *ModelConfigUpdate) SetContentHash(v string) *ModelConfigUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *ModelConfigUpdate) SetNillableContentHash(v *string) *ModelConfigUpdate {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// AddGeneratedContentIDs adds the "generated_contents" edge to the GeneratedContent entity by IDs.
func (_u *ModelConfigUpdate) AddGeneratedContentIDs(ids ...string) *ModelConfigUpdate {
	_u.mutation.AddGeneratedContentIDs(ids...)
	return _u
}

// AddGeneratedContents adds the "generated_contents" edges to the GeneratedContent entity.
func (_u *ModelConfigUpdate) AddGeneratedContents(v ...*GeneratedContent) *ModelConfigUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGeneratedContentIDs(ids...)
}

// Mutation returns the ModelConfigMutation object of the builder.
func (_u *ModelConfigUpdate) Mutation() *ModelConfigMutation {
	return _u.mutation
}

// ClearGeneratedContents clears all "generated_contents" edges to the GeneratedContent entity.
func (_u *ModelConfigUpdate) ClearGeneratedContents() *ModelConfigUpdate {
	_u.mutation.ClearGeneratedContents()
	return _u
}

// RemoveGeneratedContentIDs removes the "generated_contents" edge to GeneratedContent entities by IDs.
func (_u *ModelConfigUpdate) RemoveGeneratedContentIDs(ids ...string) *ModelConfigUpdate {
	_u.mutation.RemoveGeneratedContentIDs(ids...)
	return _u
}

// RemoveGeneratedContents removes "generated_contents" edges to GeneratedContent entities.
func (_u *ModelConfigUpdate) RemoveGeneratedContents(v ...*GeneratedContent) *ModelConfigUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGeneratedContentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ModelConfigUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModelConfigUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ModelConfigUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModelConfigUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ModelConfigUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(modelconfig.Table, modelconfig.Columns, sqlgraph.NewFieldSpec(modelconfig.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(modelconfig.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionsJSON(); ok {
		_spec.SetField(modelconfig.FieldOptionsJSON, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(modelconfig.FieldContentHash, field.TypeString, value)
	}
	if _u.mutation.GeneratedContentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   modelconfig.GeneratedContentsTable,
			Columns: []string{modelconfig.GeneratedContentsColumn},
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
			Table:   modelconfig.GeneratedContentsTable,
			Columns: []string{modelconfig.GeneratedContentsColumn},
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
			Table:   modelconfig.GeneratedContentsTable,
			Columns: []string{modelconfig.GeneratedContentsColumn},
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
			err = &NotFoundError{modelconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ModelConfigUpdateOne is the builder for updating a single ModelConfig entity.
type ModelConfigUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ModelConfigMutation
}

// SetModel sets the "model" field.
func (_u *ModelConfigUpdateOne) SetModel(v string) *ModelConfigUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *ModelConfigUpdateOne) SetNillableModel(v *string) *ModelConfigUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetOptionsJSON sets the "options_json" field.
func (_u *ModelConfigUpdateOne) SetOptionsJSON(v string) *ModelConfigUpdateOne {
	_u.mutation.SetOptionsJSON(v)
	return _u
}

// SetNillableOptionsJSON sets the "options_json" field if the given value is not nil.
func (_u *ModelConfigUpdateOne) SetNillableOptionsJSON(v *string) *ModelConfigUpdateOne {
	if v != nil {
		_u.SetOptionsJSON(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *ModelConfigUpdateOne) SetContentHash(v string) *ModelConfigUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *ModelConfigUpdateOne) SetNillableContentHash(v *string) *ModelConfigUpdateOne {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// AddGeneratedContentIDs adds the "generated_contents" edge to the GeneratedContent entity by IDs.
func (_u *ModelConfigUpdateOne) AddGeneratedContentIDs(ids ...string) *ModelConfigUpdateOne {
	_u.mutation.AddGeneratedContentIDs(ids...)
	return _u
}

// AddGeneratedContents adds the "generated_contents" edges to the GeneratedContent entity.
func (_u *ModelConfigUpdateOne) AddGeneratedContents(v ...*GeneratedContent) *ModelConfigUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGeneratedContentIDs(ids...)
}

// Mutation returns the ModelConfigMutation object of the builder.
func (_u *ModelConfigUpdateOne) Mutation() *ModelConfigMutation {
	return _u.mutation
}

// ClearGeneratedContents clears all "generated_contents" edges to the GeneratedContent entity.
func (_u *ModelConfigUpdateOne) ClearGeneratedContents() *ModelConfigUpdateOne {
	_u.mutation.ClearGeneratedContents()
	return _u
}

// RemoveGeneratedContentIDs removes the "generated_contents" edge to GeneratedContent entities by IDs.
func (_u *ModelConfigUpdateOne) RemoveGeneratedContentIDs(ids ...string) *ModelConfigUpdateOne {
	_u.mutation.RemoveGeneratedContentIDs(ids...)
	return _u
}

// RemoveGeneratedContents removes "generated_contents" edges to GeneratedContent entities.
func (_u *ModelConfigUpdateOne) RemoveGeneratedContents(v ...*GeneratedContent) *ModelConfigUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGeneratedContentIDs(ids...)
}

// Where appends a list predicates to the ModelConfigUpdate builder.
func (_u *ModelConfigUpdateOne) Where(ps ...predicate.ModelConfig) *ModelConfigUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ModelConfigUpdateOne) Select(field string, fields ...string) *ModelConfigUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ModelConfig entity.
func (_u *ModelConfigUpdateOne) Save(ctx context.Context) (*ModelConfig, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModelConfigUpdateOne) SaveX(ctx context.Context) *ModelConfig {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ModelConfigUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModelConfigUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ModelConfigUpdateOne) sqlSave(ctx context.Context) (_node *ModelConfig, err error) {
	_spec := sqlgraph.NewUpdateSpec(modelconfig.Table, modelconfig.Columns, sqlgraph.NewFieldSpec(modelconfig.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ModelConfig.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, modelconfig.FieldID)
		for _, f := range fields {
			if !modelconfig.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != modelconfig.FieldID {
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
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(modelconfig.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionsJSON(); ok {
		_spec.SetField(modelconfig.FieldOptionsJSON, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(modelconfig.FieldContentHash, field.TypeString, value)
	}
	if _u.mutation.GeneratedContentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   modelconfig.GeneratedContentsTable,
			Columns: []string{modelconfig.GeneratedContentsColumn},
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
			Table:   modelconfig.GeneratedContentsTable,
			Columns: []string{modelconfig.GeneratedContentsColumn},
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
			Table:   modelconfig.GeneratedContentsTable,
			Columns: []string{modelconfig.GeneratedContentsColumn},
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
	_node = &ModelConfig{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{modelconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
