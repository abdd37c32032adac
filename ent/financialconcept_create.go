// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/filinglens/filinglens/ent/financialconcept"
	"github.com/filinglens/filinglens/ent/financialvalue"
)

// FinancialConceptCreate is the builder for creating a FinancialConcept entity.
type FinancialConceptCreate struct {
	config
	mutation *FinancialConceptMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *FinancialConceptCreate) SetName(v string) *FinancialConceptCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *FinancialConceptCreate) SetDescription(v string) *FinancialConceptCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *FinancialConceptCreate) SetNillableDescription(v *string) *FinancialConceptCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetLabels sets the "labels" field.
func (_c *FinancialConceptCreate) SetLabels(v []string) *FinancialConceptCreate {
	_c.mutation.SetLabels(v)
	return _c
}

// SetID sets the "id" field.
func (_c *FinancialConceptCreate) SetID(v string) *FinancialConceptCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddValueIDs adds the "values" edge to the FinancialValue entity by IDs.
func (_c *FinancialConceptCreate) AddValueIDs(ids ...string) *FinancialConceptCreate {
	_c.mutation.AddValueIDs(ids...)
	return _c
}

// AddValues adds the "values" edges to the FinancialValue entity.
func (_c *FinancialConceptCreate) AddValues(v ...*FinancialValue) *FinancialConceptCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddValueIDs(ids...)
}

// Mutation returns the FinancialConceptMutation object of the builder.
func (_c *FinancialConceptCreate) Mutation() *FinancialConceptMutation {
	return _c.mutation
}

// Save creates the FinancialConcept in the database.
func (_c *FinancialConceptCreate) Save(ctx context.Context) (*FinancialConcept, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FinancialConceptCreate) SaveX(ctx context.Context) *FinancialConcept {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FinancialConceptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FinancialConceptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FinancialConceptCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "FinancialConcept.name"`)}
	}
	return nil
}

func (_c *FinancialConceptCreate) sqlSave(ctx context.Context) (*FinancialConcept, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected FinancialConcept.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FinancialConceptCreate) createSpec() (*FinancialConcept, *sqlgraph.CreateSpec) {
	var (
		_node = &FinancialConcept{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(financialconcept.Table, sqlgraph.NewFieldSpec(financialconcept.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(financialconcept.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(financialconcept.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Labels(); ok {
		_spec.SetField(financialconcept.FieldLabels, field.TypeJSON, value)
		_node.Labels = value
	}
	if nodes := _c.mutation.ValuesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FinancialConceptCreateBulk is the builder for creating many FinancialConcept entities in bulk.
type FinancialConceptCreateBulk struct {
	config
	err      error
	builders []*FinancialConceptCreate
}

// Save creates the FinancialConcept entities in the database.
func (_c *FinancialConceptCreateBulk) Save(ctx context.Context) ([]*FinancialConcept, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FinancialConcept, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FinancialConceptMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *FinancialConceptCreateBulk) SaveX(ctx context.Context) []*FinancialConcept {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FinancialConceptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FinancialConceptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
