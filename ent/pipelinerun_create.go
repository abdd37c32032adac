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
	"github.com/filinglens/filinglens/ent/pipelinerun"
)

// PipelineRunCreate is the builder for creating a PipelineRun entity.
type PipelineRunCreate struct {
	config
	mutation *PipelineRunMutation
	hooks    []Hook
}

// SetCompanyID sets the "company_id" field.
func (_c *PipelineRunCreate) SetCompanyID(v string) *PipelineRunCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableCompanyID(v *string) *PipelineRunCreate {
	if v != nil {
		_c.SetCompanyID(*v)
	}
	return _c
}

// SetForms sets the "forms" field.
func (_c *PipelineRunCreate) SetForms(v []string) *PipelineRunCreate {
	_c.mutation.SetForms(v)
	return _c
}

// SetTrigger sets the "trigger" field.
func (_c *PipelineRunCreate) SetTrigger(v pipelinerun.Trigger) *PipelineRunCreate {
	_c.mutation.SetTrigger(v)
	return _c
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableTrigger(v *pipelinerun.Trigger) *PipelineRunCreate {
	if v != nil {
		_c.SetTrigger(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *PipelineRunCreate) SetStatus(v pipelinerun.Status) *PipelineRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableStatus(v *pipelinerun.Status) *PipelineRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetJobsCreated sets the "jobs_created" field.
func (_c *PipelineRunCreate) SetJobsCreated(v int) *PipelineRunCreate {
	_c.mutation.SetJobsCreated(v)
	return _c
}

// SetNillableJobsCreated sets the "jobs_created" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableJobsCreated(v *int) *PipelineRunCreate {
	if v != nil {
		_c.SetJobsCreated(*v)
	}
	return _c
}

// SetJobsCompleted sets the "jobs_completed" field.
func (_c *PipelineRunCreate) SetJobsCompleted(v int) *PipelineRunCreate {
	_c.mutation.SetJobsCompleted(v)
	return _c
}

// SetNillableJobsCompleted sets the "jobs_completed" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableJobsCompleted(v *int) *PipelineRunCreate {
	if v != nil {
		_c.SetJobsCompleted(*v)
	}
	return _c
}

// SetJobsFailed sets the "jobs_failed" field.
func (_c *PipelineRunCreate) SetJobsFailed(v int) *PipelineRunCreate {
	_c.mutation.SetJobsFailed(v)
	return _c
}

// SetNillableJobsFailed sets the "jobs_failed" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableJobsFailed(v *int) *PipelineRunCreate {
	if v != nil {
		_c.SetJobsFailed(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *PipelineRunCreate) SetStartedAt(v time.Time) *PipelineRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableStartedAt(v *time.Time) *PipelineRunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *PipelineRunCreate) SetCompletedAt(v time.Time) *PipelineRunCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableCompletedAt(v *time.Time) *PipelineRunCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetError sets the "error" field.
func (_c *PipelineRunCreate) SetError(v string) *PipelineRunCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableError(v *string) *PipelineRunCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetRunMetadata sets the "run_metadata" field.
func (_c *PipelineRunCreate) SetRunMetadata(v map[string]interface{}) *PipelineRunCreate {
	_c.mutation.SetRunMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PipelineRunCreate) SetCreatedAt(v time.Time) *PipelineRunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableCreatedAt(v *time.Time) *PipelineRunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PipelineRunCreate) SetID(v string) *PipelineRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetCompany sets the "company" edge to the Company entity.
func (_c *PipelineRunCreate) SetCompany(v *Company) *PipelineRunCreate {
	return _c.SetCompanyID(v.ID)
}

// Mutation returns the PipelineRunMutation object of the builder.
func (_c *PipelineRunCreate) Mutation() *PipelineRunMutation {
	return _c.mutation
}

// Save creates the PipelineRun in the database.
func (_c *PipelineRunCreate) Save(ctx context.Context) (*PipelineRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PipelineRunCreate) SaveX(ctx context.Context) *PipelineRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PipelineRunCreate) defaults() {
	if _, ok := _c.mutation.Trigger(); !ok {
		v := pipelinerun.DefaultTrigger
		_c.mutation.SetTrigger(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := pipelinerun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.JobsCreated(); !ok {
		v := pipelinerun.DefaultJobsCreated
		_c.mutation.SetJobsCreated(v)
	}
	if _, ok := _c.mutation.JobsCompleted(); !ok {
		v := pipelinerun.DefaultJobsCompleted
		_c.mutation.SetJobsCompleted(v)
	}
	if _, ok := _c.mutation.JobsFailed(); !ok {
		v := pipelinerun.DefaultJobsFailed
		_c.mutation.SetJobsFailed(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pipelinerun.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PipelineRunCreate) check() error {
	if _, ok := _c.mutation.Trigger(); !ok {
		return &ValidationError{Name: "trigger", err: errors.New(`ent: missing required field "PipelineRun.trigger"`)}
	}
	if v, ok := _c.mutation.Trigger(); ok {
		if err := pipelinerun.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.trigger": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PipelineRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := pipelinerun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.JobsCreated(); !ok {
		return &ValidationError{Name: "jobs_created", err: errors.New(`ent: missing required field "PipelineRun.jobs_created"`)}
	}
	if _, ok := _c.mutation.JobsCompleted(); !ok {
		return &ValidationError{Name: "jobs_completed", err: errors.New(`ent: missing required field "PipelineRun.jobs_completed"`)}
	}
	if _, ok := _c.mutation.JobsFailed(); !ok {
		return &ValidationError{Name: "jobs_failed", err: errors.New(`ent: missing required field "PipelineRun.jobs_failed"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PipelineRun.created_at"`)}
	}
	return nil
}

func (_c *PipelineRunCreate) sqlSave(ctx context.Context) (*PipelineRun, error) {
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
			return nil, fmt.Errorf("unexpected PipelineRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PipelineRunCreate) createSpec() (*PipelineRun, *sqlgraph.CreateSpec) {
	var (
		_node = &PipelineRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pipelinerun.Table, sqlgraph.NewFieldSpec(pipelinerun.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Forms(); ok {
		_spec.SetField(pipelinerun.FieldForms, field.TypeJSON, value)
		_node.Forms = value
	}
	if value, ok := _c.mutation.Trigger(); ok {
		_spec.SetField(pipelinerun.FieldTrigger, field.TypeEnum, value)
		_node.Trigger = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(pipelinerun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.JobsCreated(); ok {
		_spec.SetField(pipelinerun.FieldJobsCreated, field.TypeInt, value)
		_node.JobsCreated = value
	}
	if value, ok := _c.mutation.JobsCompleted(); ok {
		_spec.SetField(pipelinerun.FieldJobsCompleted, field.TypeInt, value)
		_node.JobsCompleted = value
	}
	if value, ok := _c.mutation.JobsFailed(); ok {
		_spec.SetField(pipelinerun.FieldJobsFailed, field.TypeInt, value)
		_node.JobsFailed = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(pipelinerun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(pipelinerun.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(pipelinerun.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if value, ok := _c.mutation.RunMetadata(); ok {
		_spec.SetField(pipelinerun.FieldRunMetadata, field.TypeJSON, value)
		_node.RunMetadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pipelinerun.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.CompanyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pipelinerun.CompanyTable,
			Columns: []string{pipelinerun.CompanyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(company.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CompanyID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PipelineRunCreateBulk is the builder for creating many PipelineRun entities in bulk.
type PipelineRunCreateBulk struct {
	config
	err      error
	builders []*PipelineRunCreate
}

// Save creates the PipelineRun entities in the database.
func (_c *PipelineRunCreateBulk) Save(ctx context.Context) ([]*PipelineRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PipelineRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PipelineRunMutation)
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
func (_c *PipelineRunCreateBulk) SaveX(ctx context.Context) []*PipelineRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
