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
	"github.com/filinglens/filinglens/ent/document"
	"github.com/filinglens/filinglens/ent/filing"
	"github.com/filinglens/filinglens/ent/financialvalue"
)

// FilingCreate is the builder for creating a Filing entity.
type FilingCreate struct {
	config
	mutation *FilingMutation
	hooks    []Hook
}

// SetCompanyID sets the "company_id" field.
func (_c *FilingCreate) SetCompanyID(v string) *FilingCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetAccessionNumber sets the "accession_number" field.
func (_c *FilingCreate) SetAccessionNumber(v string) *FilingCreate {
	_c.mutation.SetAccessionNumber(v)
	return _c
}

// SetFormType sets the "form_type" field.
func (_c *FilingCreate) SetFormType(v string) *FilingCreate {
	_c.mutation.SetFormType(v)
	return _c
}

// SetFilingDate sets the "filing_date" field.
func (_c *FilingCreate) SetFilingDate(v time.Time) *FilingCreate {
	_c.mutation.SetFilingDate(v)
	return _c
}

// SetPeriodOfReport sets the "period_of_report" field.
func (_c *FilingCreate) SetPeriodOfReport(v time.Time) *FilingCreate {
	_c.mutation.SetPeriodOfReport(v)
	return _c
}

// SetNillablePeriodOfReport sets the "period_of_report" field if the given value is not nil.
func (_c *FilingCreate) SetNillablePeriodOfReport(v *time.Time) *FilingCreate {
	if v != nil {
		_c.SetPeriodOfReport(*v)
	}
	return _c
}

// SetSourceURL sets the "source_url" field.
func (_c *FilingCreate) SetSourceURL(v string) *FilingCreate {
	_c.mutation.SetSourceURL(v)
	return _c
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_c *FilingCreate) SetNillableSourceURL(v *string) *FilingCreate {
	if v != nil {
		_c.SetSourceURL(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FilingCreate) SetCreatedAt(v time.Time) *FilingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FilingCreate) SetNillableCreatedAt(v *time.Time) *FilingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FilingCreate) SetID(v string) *FilingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetCompany sets the "company" edge to the Company entity.
func (_c *FilingCreate) SetCompany(v *Company) *FilingCreate {
	return _c.SetCompanyID(v.ID)
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_c *FilingCreate) AddDocumentIDs(ids ...string) *FilingCreate {
	_c.mutation.AddDocumentIDs(ids...)
	return _c
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_c *FilingCreate) AddDocuments(v ...*Document) *FilingCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDocumentIDs(ids...)
}

// AddFinancialValueIDs adds the "financial_values" edge to the FinancialValue entity by IDs.
func (_c *FilingCreate) AddFinancialValueIDs(ids ...string) *FilingCreate {
	_c.mutation.AddFinancialValueIDs(ids...)
	return _c
}

// AddFinancialValues adds the "financial_values" edges to the FinancialValue entity.
func (_c *FilingCreate) AddFinancialValues(v ...*FinancialValue) *FilingCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFinancialValueIDs(ids...)
}

// Mutation returns the FilingMutation object of the builder.
func (_c *FilingCreate) Mutation() *FilingMutation {
	return _c.mutation
}

// Save creates the Filing in the database.
func (_c *FilingCreate) Save(ctx context.Context) (*Filing, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FilingCreate) SaveX(ctx context.Context) *Filing {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FilingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FilingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FilingCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := filing.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FilingCreate) check() error {
	if _, ok := _c.mutation.CompanyID(); !ok {
		return &ValidationError{Name: "company_id", err: errors.New(`ent: missing required field "Filing.company_id"`)}
	}
	if _, ok := _c.mutation.AccessionNumber(); !ok {
		return &ValidationError{Name: "accession_number", err: errors.New(`ent: missing required field "Filing.accession_number"`)}
	}
	if _, ok := _c.mutation.FormType(); !ok {
		return &ValidationError{Name: "form_type", err: errors.New(`ent: missing required field "Filing.form_type"`)}
	}
	if _, ok := _c.mutation.FilingDate(); !ok {
		return &ValidationError{Name: "filing_date", err: errors.New(`ent: missing required field "Filing.filing_date"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Filing.created_at"`)}
	}
	if len(_c.mutation.CompanyIDs()) == 0 {
		return &ValidationError{Name: "company", err: errors.New(`ent: missing required edge "Filing.company"`)}
	}
	return nil
}

func (_c *FilingCreate) sqlSave(ctx context.Context) (*Filing, error) {
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
			return nil, fmt.Errorf("unexpected Filing.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FilingCreate) createSpec() (*Filing, *sqlgraph.CreateSpec) {
	var (
		_node = &Filing{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(filing.Table, sqlgraph.NewFieldSpec(filing.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AccessionNumber(); ok {
		_spec.SetField(filing.FieldAccessionNumber, field.TypeString, value)
		_node.AccessionNumber = value
	}
	if value, ok := _c.mutation.FormType(); ok {
		_spec.SetField(filing.FieldFormType, field.TypeString, value)
		_node.FormType = value
	}
	if value, ok := _c.mutation.FilingDate(); ok {
		_spec.SetField(filing.FieldFilingDate, field.TypeTime, value)
		_node.FilingDate = value
	}
	if value, ok := _c.mutation.PeriodOfReport(); ok {
		_spec.SetField(filing.FieldPeriodOfReport, field.TypeTime, value)
		_node.PeriodOfReport = &value
	}
	if value, ok := _c.mutation.SourceURL(); ok {
		_spec.SetField(filing.FieldSourceURL, field.TypeString, value)
		_node.SourceURL = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(filing.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.CompanyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   filing.CompanyTable,
			Columns: []string{filing.CompanyColumn},
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
	if nodes := _c.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   filing.DocumentsTable,
			Columns: []string{filing.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FinancialValuesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   filing.FinancialValuesTable,
			Columns: []string{filing.FinancialValuesColumn},
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

// FilingCreateBulk is the builder for creating many Filing entities in bulk.
type FilingCreateBulk struct {
	config
	err      error
	builders []*FilingCreate
}

// Save creates the Filing entities in the database.
func (_c *FilingCreateBulk) Save(ctx context.Context) ([]*Filing, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Filing, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FilingMutation)
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
func (_c *FilingCreateBulk) SaveX(ctx context.Context) []*Filing {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FilingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FilingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
