// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/filinglens/filinglens/ent/company"
	"github.com/filinglens/filinglens/ent/filing"
	"github.com/filinglens/filinglens/ent/financialconcept"
	"github.com/filinglens/filinglens/ent/financialvalue"
	"github.com/shopspring/decimal"
)

// FinancialValueCreate is the builder for creating a FinancialValue entity.
type FinancialValueCreate struct {
	config
	mutation *FinancialValueMutation
	hooks    []Hook
}

// SetCompanyID sets the "company_id" field.
func (_c *FinancialValueCreate) SetCompanyID(v string) *FinancialValueCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetConceptID sets the "concept_id" field.
func (_c *FinancialValueCreate) SetConceptID(v string) *FinancialValueCreate {
	_c.mutation.SetConceptID(v)
	return _c
}

// SetFilingID sets the "filing_id" field.
func (_c *FinancialValueCreate) SetFilingID(v string) *FinancialValueCreate {
	_c.mutation.SetFilingID(v)
	return _c
}

// SetNillableFilingID sets the "filing_id" field if the given value is not nil.
func (_c *FinancialValueCreate) SetNillableFilingID(v *string) *FinancialValueCreate {
	if v != nil {
		_c.SetFilingID(*v)
	}
	return _c
}

// SetValueDate sets the "value_date" field.
func (_c *FinancialValueCreate) SetValueDate(v time.Time) *FinancialValueCreate {
	_c.mutation.SetValueDate(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *FinancialValueCreate) SetValue(v decimal.Decimal) *FinancialValueCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FinancialValueCreate) SetCreatedAt(v time.Time) *FinancialValueCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FinancialValueCreate) SetNillableCreatedAt(v *time.Time) *FinancialValueCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FinancialValueCreate) SetUpdatedAt(v time.Time) *FinancialValueCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FinancialValueCreate) SetNillableUpdatedAt(v *time.Time) *FinancialValueCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FinancialValueCreate) SetID(v string) *FinancialValueCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetCompany sets the "company" edge to the Company entity.
func (_c *FinancialValueCreate) SetCompany(v *Company) *FinancialValueCreate {
	return _c.SetCompanyID(v.ID)
}

// SetConcept sets the "concept" edge to the FinancialConcept entity.
func (_c *FinancialValueCreate) SetConcept(v *FinancialConcept) *FinancialValueCreate {
	return _c.SetConceptID(v.ID)
}

// SetFiling sets the "filing" edge to the Filing entity.
func (_c *FinancialValueCreate) SetFiling(v *Filing) *FinancialValueCreate {
	return _c.SetFilingID(v.ID)
}

// Mutation returns the FinancialValueMutation object of the builder.
func (_c *FinancialValueCreate) Mutation() *FinancialValueMutation {
	return _c.mutation
}

// Save creates the FinancialValue in the database.
func (_c *FinancialValueCreate) Save(ctx context.Context) (*FinancialValue, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FinancialValueCreate) SaveX(ctx context.Context) *FinancialValue {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FinancialValueCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FinancialValueCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FinancialValueCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := financialvalue.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := financialvalue.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FinancialValueCreate) check() error {
	if _, ok := _c.mutation.CompanyID(); !ok {
		return &ValidationError{Name: "company_id", err: errors.New(`ent: missing required field "FinancialValue.company_id"`)}
	}
	if _, ok := _c.mutation.ConceptID(); !ok {
		return &ValidationError{Name: "concept_id", err: errors.New(`ent: missing required field "FinancialValue.concept_id"`)}
	}
	if _, ok := _c.mutation.ValueDate(); !ok {
		return &ValidationError{Name: "value_date", err: errors.New(`ent: missing required field "FinancialValue.value_date"`)}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "FinancialValue.value"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FinancialValue.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "FinancialValue.updated_at"`)}
	}
	if len(_c.mutation.CompanyIDs()) == 0 {
		return &ValidationError{Name: "company", err: errors.New(`ent: missing required edge "FinancialValue.company"`)}
	}
	if len(_c.mutation.ConceptIDs()) == 0 {
		return &ValidationError{Name: "concept", err: errors.New(`ent: missing required edge "FinancialValue.concept"`)}
	}
	return nil
}

func (_c *FinancialValueCreate) sqlSave(ctx context.Context) (*FinancialValue, error) {
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
			return nil, fmt.Errorf("unexpected FinancialValue.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FinancialValueCreate) createSpec() (*FinancialValue, *sqlgraph.CreateSpec) {
	var (
		_node = &FinancialValue{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(financialvalue.Table, sqlgraph.NewFieldSpec(financialvalue.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ValueDate(); ok {
		_spec.SetField(financialvalue.FieldValueDate, field.TypeTime, value)
		_node.ValueDate = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(financialvalue.FieldValue, field.TypeOther, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(financialvalue.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(financialvalue.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.CompanyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   financialvalue.CompanyTable,
			Columns: []string{financialvalue.CompanyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(company.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CompanyID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ConceptIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   financialvalue.ConceptTable,
			Columns: []string{financialvalue.ConceptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(financialconcept.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ConceptID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FilingIDs(); len(nodes) > 0 {
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
		_node.FilingID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FinancialValueCreateBulk is the builder for creating many FinancialValue entities in bulk.
type FinancialValueCreateBulk struct {
	config
	err      error
	builders []*FinancialValueCreate
}

// Save creates the FinancialValue entities in the database.
func (_c *FinancialValueCreateBulk) Save(ctx context.Context) ([]*FinancialValue, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FinancialValue, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FinancialValueMutation)
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
func (_c *FinancialValueCreateBulk) SaveX(ctx context.Context) []*FinancialValue {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FinancialValueCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FinancialValueCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
