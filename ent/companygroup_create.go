// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/filinglens/filinglens/ent/companygroup"
	"github.com/filinglens/filinglens/ent/generatedcontent"
)

// CompanyGroupCreate is the builder for creating a CompanyGroup entity.
type CompanyGroupCreate struct {
	config
	mutation *CompanyGroupMutation
	hooks    []Hook
}

// SetSlug sets the "slug" field.
func (_c *CompanyGroupCreate) SetSlug(v string) *CompanyGroupCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetName sets the "name" field.
func (_c *CompanyGroupCreate) SetName(v string) *CompanyGroupCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *CompanyGroupCreate) SetNillableName(v *string) *CompanyGroupCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetTickers sets the "tickers" field.
func (_c *CompanyGroupCreate) SetTickers(v []string) *CompanyGroupCreate {
	_c.mutation.SetTickers(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CompanyGroupCreate) SetCreatedAt(v time.Time) *CompanyGroupCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CompanyGroupCreate) SetNillableCreatedAt(v *time.Time) *CompanyGroupCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CompanyGroupCreate) SetID(v string) *CompanyGroupCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddGeneratedContentIDs adds the "generated_contents" edge to the GeneratedContent entity by IDs.
func (_c *CompanyGroupCreate) AddGeneratedContentIDs(ids ...string) *CompanyGroupCreate {
	_c.mutation.AddGeneratedContentIDs(ids...)
	return _c
}

// AddGeneratedContents adds the "generated_contents" edges to the GeneratedContent entity.
func (_c *CompanyGroupCreate) AddGeneratedContents(v ...*GeneratedContent) *CompanyGroupCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddGeneratedContentIDs(ids...)
}

// Mutation returns the CompanyGroupMutation object of the builder.
func (_c *CompanyGroupCreate) Mutation() *CompanyGroupMutation {
	return _c.mutation
}

// Save creates the CompanyGroup in the database.
func (_c *CompanyGroupCreate) Save(ctx context.Context) (*CompanyGroup, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CompanyGroupCreate) SaveX(ctx context.Context) *CompanyGroup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompanyGroupCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompanyGroupCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CompanyGroupCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := companygroup.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CompanyGroupCreate) check() error {
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`ent: missing required field "CompanyGroup.slug"`)}
	}
	if _, ok := _c.mutation.Tickers(); !ok {
		return &ValidationError{Name: "tickers", err: errors.New(`ent: missing required field "CompanyGroup.tickers"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CompanyGroup.created_at"`)}
	}
	return nil
}

func (_c *CompanyGroupCreate) sqlSave(ctx context.Context) (*CompanyGroup, error) {
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
			return nil, fmt.Errorf("unexpected CompanyGroup.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CompanyGroupCreate) createSpec() (*CompanyGroup, *sqlgraph.CreateSpec) {
	var (
		_node = &CompanyGroup{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(companygroup.Table, sqlgraph.NewFieldSpec(companygroup.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(companygroup.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(companygroup.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Tickers(); ok {
		_spec.SetField(companygroup.FieldTickers, field.TypeJSON, value)
		_node.Tickers = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(companygroup.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.GeneratedContentsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CompanyGroupCreateBulk is the builder for creating many CompanyGroup entities in bulk.
type CompanyGroupCreateBulk struct {
	config
	err      error
	builders []*CompanyGroupCreate
}

// Save creates the CompanyGroup entities in the database.
func (_c *CompanyGroupCreateBulk) Save(ctx context.Context) ([]*CompanyGroup, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CompanyGroup, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CompanyGroupMutation)
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
func (_c *CompanyGroupCreateBulk) SaveX(ctx context.Context) []*CompanyGroup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompanyGroupCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompanyGroupCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
