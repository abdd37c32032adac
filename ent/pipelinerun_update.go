// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/filinglens/filinglens/ent/company"
	"github.com/filinglens/filinglens/ent/pipelinerun"
	"github.com/filinglens/filinglens/ent/predicate"
)

// PipelineRunUpdate is the builder for updating PipelineRun entities.
type PipelineRunUpdate struct {
	config
	hooks    []Hook
	mutation *PipelineRunMutation
}

// Where appends a list predicates to the PipelineRunUpdate builder.
func (_u *PipelineRunUpdate) Where(ps ...predicate.PipelineRun) *PipelineRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *PipelineRunUpdate) SetCompanyID(v string) *PipelineRunUpdate {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableCompanyID(v *string) *PipelineRunUpdate {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// ClearCompanyID clears the value of the "company_id" field.
func (_u *PipelineRunUpdate) ClearCompanyID() *PipelineRunUpdate {
	_u.mutation.ClearCompanyID()
	return _u
}

// SetForms sets the "forms" field.
func (_u *PipelineRunUpdate) SetForms(v []string) *PipelineRunUpdate {
	_u.mutation.SetForms(v)
	return _u
}

// AppendForms appends value to the "forms" field.
func (_u *PipelineRunUpdate) AppendForms(v []string) *PipelineRunUpdate {
	_u.mutation.AppendForms(v)
	return _u
}

// ClearForms clears the value of the "forms" field.
func (_u *PipelineRunUpdate) ClearForms() *PipelineRunUpdate {
	_u.mutation.ClearForms()
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *PipelineRunUpdate) SetTrigger(v pipelinerun.Trigger) *PipelineRunUpdate {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableTrigger(v *pipelinerun.Trigger) *PipelineRunUpdate {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PipelineRunUpdate) SetStatus(v pipelinerun.Status) *PipelineRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableStatus(v *pipelinerun.Status) *PipelineRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetJobsCreated sets the "jobs_created" field.
func (_u *PipelineRunUpdate) SetJobsCreated(v int) *PipelineRunUpdate {
	_u.mutation.ResetJobsCreated()
	_u.mutation.SetJobsCreated(v)
	return _u
}

// SetNillableJobsCreated sets the "jobs_created" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableJobsCreated(v *int) *PipelineRunUpdate {
	if v != nil {
		_u.SetJobsCreated(*v)
	}
	return _u
}

// AddJobsCreated adds value to the "jobs_created" field.
func (_u *PipelineRunUpdate) AddJobsCreated(v int) *PipelineRunUpdate {
	_u.mutation.AddJobsCreated(v)
	return _u
}

// SetJobsCompleted sets the "jobs_completed" field.
func (_u *PipelineRunUpdate) SetJobsCompleted(v int) *PipelineRunUpdate {
	_u.mutation.ResetJobsCompleted()
	_u.mutation.SetJobsCompleted(v)
	return _u
}

// SetNillableJobsCompleted sets the "jobs_completed" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableJobsCompleted(v *int) *PipelineRunUpdate {
	if v != nil {
		_u.SetJobsCompleted(*v)
	}
	return _u
}

// AddJobsCompleted adds value to the "jobs_completed" field.
func (_u *PipelineRunUpdate) AddJobsCompleted(v int) *PipelineRunUpdate {
	_u.mutation.AddJobsCompleted(v)
	return _u
}

// SetJobsFailed sets the "jobs_failed" field.
func (_u *PipelineRunUpdate) SetJobsFailed(v int) *PipelineRunUpdate {
	_u.mutation.ResetJobsFailed()
	_u.mutation.SetJobsFailed(v)
	return _u
}

// SetNillableJobsFailed sets the "jobs_failed" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableJobsFailed(v *int) *PipelineRunUpdate {
	if v != nil {
		_u.SetJobsFailed(*v)
	}
	return _u
}

// AddJobsFailed adds value to the "jobs_failed" field.
func (_u *PipelineRunUpdate) AddJobsFailed(v int) *PipelineRunUpdate {
	_u.mutation.AddJobsFailed(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *PipelineRunUpdate) SetStartedAt(v time.Time) *PipelineRunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableStartedAt(v *time.Time) *PipelineRunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *PipelineRunUpdate) ClearStartedAt() *PipelineRunUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PipelineRunUpdate) SetCompletedAt(v time.Time) *PipelineRunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableCompletedAt(v *time.Time) *PipelineRunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PipelineRunUpdate) ClearCompletedAt() *PipelineRunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetError sets the "error" field.
func (_u *PipelineRunUpdate) SetError(v string) *PipelineRunUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableError(v *string) *PipelineRunUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *PipelineRunUpdate) ClearError() *PipelineRunUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetRunMetadata sets the "run_metadata" field.
func (_u *PipelineRunUpdate) SetRunMetadata(v map[string]interface{}) *PipelineRunUpdate {
	_u.mutation.SetRunMetadata(v)
	return _u
}

// ClearRunMetadata clears the value of the "run_metadata" field.
func (_u *PipelineRunUpdate) ClearRunMetadata() *PipelineRunUpdate {
	_u.mutation.ClearRunMetadata()
	return _u
}

// SetCompany sets the "company" edge to the Company entity.
func (_u *PipelineRunUpdate) SetCompany(v *Company) *PipelineRunUpdate {
	return _u.SetCompanyID(v.ID)
}

// Mutation returns the PipelineRunMutation object of the builder.
func (_u *PipelineRunUpdate) Mutation() *PipelineRunMutation {
	return _u.mutation
}

// ClearCompany clears the "company" edge to the Company entity.
func (_u *PipelineRunUpdate) ClearCompany() *PipelineRunUpdate {
	_u.mutation.ClearCompany()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PipelineRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PipelineRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineRunUpdate) check() error {
	if v, ok := _u.mutation.Trigger(); ok {
		if err := pipelinerun.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.trigger": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := pipelinerun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PipelineRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinerun.Table, pipelinerun.Columns, sqlgraph.NewFieldSpec(pipelinerun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Forms(); ok {
		_spec.SetField(pipelinerun.FieldForms, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedForms(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pipelinerun.FieldForms, value)
		})
	}
	if _u.mutation.FormsCleared() {
		_spec.ClearField(pipelinerun.FieldForms, field.TypeJSON)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(pipelinerun.FieldTrigger, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pipelinerun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.JobsCreated(); ok {
		_spec.SetField(pipelinerun.FieldJobsCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedJobsCreated(); ok {
		_spec.AddField(pipelinerun.FieldJobsCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.JobsCompleted(); ok {
		_spec.SetField(pipelinerun.FieldJobsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedJobsCompleted(); ok {
		_spec.AddField(pipelinerun.FieldJobsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.JobsFailed(); ok {
		_spec.SetField(pipelinerun.FieldJobsFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedJobsFailed(); ok {
		_spec.AddField(pipelinerun.FieldJobsFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(pipelinerun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(pipelinerun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(pipelinerun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(pipelinerun.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(pipelinerun.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(pipelinerun.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.RunMetadata(); ok {
		_spec.SetField(pipelinerun.FieldRunMetadata, field.TypeJSON, value)
	}
	if _u.mutation.RunMetadataCleared() {
		_spec.ClearField(pipelinerun.FieldRunMetadata, field.TypeJSON)
	}
	if _u.mutation.CompanyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompanyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinerun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PipelineRunUpdateOne is the builder for updating a single PipelineRun entity.
type PipelineRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PipelineRunMutation
}

// SetCompanyID sets the "company_id" field.
func (_u *PipelineRunUpdateOne) SetCompanyID(v string) *PipelineRunUpdateOne {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableCompanyID(v *string) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// ClearCompanyID clears the value of the "company_id" field.
func (_u *PipelineRunUpdateOne) ClearCompanyID() *PipelineRunUpdateOne {
	_u.mutation.ClearCompanyID()
	return _u
}

// SetForms sets the "forms" field.
func (_u *PipelineRunUpdateOne) SetForms(v []string) *PipelineRunUpdateOne {
	_u.mutation.SetForms(v)
	return _u
}

// AppendForms appends value to the "forms" field.
func (_u *PipelineRunUpdateOne) AppendForms(v []string) *PipelineRunUpdateOne {
	_u.mutation.AppendForms(v)
	return _u
}

// ClearForms clears the value of the "forms" field.
func (_u *PipelineRunUpdateOne) ClearForms() *PipelineRunUpdateOne {
	_u.mutation.ClearForms()
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *PipelineRunUpdateOne) SetTrigger(v pipelinerun.Trigger) *PipelineRunUpdateOne {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableTrigger(v *pipelinerun.Trigger) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PipelineRunUpdateOne) SetStatus(v pipelinerun.Status) *PipelineRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableStatus(v *pipelinerun.Status) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetJobsCreated sets the "jobs_created" field.
func (_u *PipelineRunUpdateOne) SetJobsCreated(v int) *PipelineRunUpdateOne {
	_u.mutation.ResetJobsCreated()
	_u.mutation.SetJobsCreated(v)
	return _u
}

// SetNillableJobsCreated sets the "jobs_created" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableJobsCreated(v *int) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetJobsCreated(*v)
	}
	return _u
}

// AddJobsCreated adds value to the "jobs_created" field.
func (_u *PipelineRunUpdateOne) AddJobsCreated(v int) *PipelineRunUpdateOne {
	_u.mutation.AddJobsCreated(v)
	return _u
}

// SetJobsCompleted sets the "jobs_completed" field.
func (_u *PipelineRunUpdateOne) SetJobsCompleted(v int) *PipelineRunUpdateOne {
	_u.mutation.ResetJobsCompleted()
	_u.mutation.SetJobsCompleted(v)
	return _u
}

// SetNillableJobsCompleted sets the "jobs_completed" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableJobsCompleted(v *int) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetJobsCompleted(*v)
	}
	return _u
}

// AddJobsCompleted adds value to the "jobs_completed" field.
func (_u *PipelineRunUpdateOne) AddJobsCompleted(v int) *PipelineRunUpdateOne {
	_u.mutation.AddJobsCompleted(v)
	return _u
}

// SetJobsFailed sets the "jobs_failed" field.
func (_u *PipelineRunUpdateOne) SetJobsFailed(v int) *PipelineRunUpdateOne {
	_u.mutation.ResetJobsFailed()
	_u.mutation.SetJobsFailed(v)
	return _u
}

// SetNillableJobsFailed sets the "jobs_failed" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableJobsFailed(v *int) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetJobsFailed(*v)
	}
	return _u
}

// AddJobsFailed adds value to the "jobs_failed" field.
func (_u *PipelineRunUpdateOne) AddJobsFailed(v int) *PipelineRunUpdateOne {
	_u.mutation.AddJobsFailed(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *PipelineRunUpdateOne) SetStartedAt(v time.Time) *PipelineRunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableStartedAt(v *time.Time) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *PipelineRunUpdateOne) ClearStartedAt() *PipelineRunUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PipelineRunUpdateOne) SetCompletedAt(v time.Time) *PipelineRunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableCompletedAt(v *time.Time) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PipelineRunUpdateOne) ClearCompletedAt() *PipelineRunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetError sets the "error" field.
func (_u *PipelineRunUpdateOne) SetError(v string) *PipelineRunUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableError(v *string) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *PipelineRunUpdateOne) ClearError() *PipelineRunUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetRunMetadata sets the "run_metadata" field.
func (_u *PipelineRunUpdateOne) SetRunMetadata(v map[string]interface{}) *PipelineRunUpdateOne {
	_u.mutation.SetRunMetadata(v)
	return _u
}

// ClearRunMetadata clears the value of the "run_metadata" field.
func (_u *PipelineRunUpdateOne) ClearRunMetadata() *PipelineRunUpdateOne {
	_u.mutation.ClearRunMetadata()
	return _u
}

// SetCompany sets the "company" edge to the Company entity.
func (_u *PipelineRunUpdateOne) SetCompany(v *Company) *PipelineRunUpdateOne {
	return _u.SetCompanyID(v.ID)
}

// Mutation returns the PipelineRunMutation object of the builder.
func (_u *PipelineRunUpdateOne) Mutation() *PipelineRunMutation {
	return _u.mutation
}

// ClearCompany clears the "company" edge to the Company entity.
func (_u *PipelineRunUpdateOne) ClearCompany() *PipelineRunUpdateOne {
	_u.mutation.ClearCompany()
	return _u
}

// Where appends a list predicates to the PipelineRunUpdate builder.
func (_u *PipelineRunUpdateOne) Where(ps ...predicate.PipelineRun) *PipelineRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PipelineRunUpdateOne) Select(field string, fields ...string) *PipelineRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PipelineRun entity.
func (_u *PipelineRunUpdateOne) Save(ctx context.Context) (*PipelineRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineRunUpdateOne) SaveX(ctx context.Context) *PipelineRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PipelineRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineRunUpdateOne) check() error {
	if v, ok := _u.mutation.Trigger(); ok {
		if err := pipelinerun.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.trigger": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := pipelinerun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PipelineRunUpdateOne) sqlSave(ctx context.Context) (_node *PipelineRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinerun.Table, pipelinerun.Columns, sqlgraph.NewFieldSpec(pipelinerun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PipelineRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pipelinerun.FieldID)
		for _, f := range fields {
			if !pipelinerun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pipelinerun.FieldID {
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
	if value, ok := _u.mutation.Forms(); ok {
		_spec.SetField(pipelinerun.FieldForms, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedForms(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pipelinerun.FieldForms, value)
		})
	}
	if _u.mutation.FormsCleared() {
		_spec.ClearField(pipelinerun.FieldForms, field.TypeJSON)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(pipelinerun.FieldTrigger, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pipelinerun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.JobsCreated(); ok {
		_spec.SetField(pipelinerun.FieldJobsCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedJobsCreated(); ok {
		_spec.AddField(pipelinerun.FieldJobsCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.JobsCompleted(); ok {
		_spec.SetField(pipelinerun.FieldJobsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedJobsCompleted(); ok {
		_spec.AddField(pipelinerun.FieldJobsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.JobsFailed(); ok {
		_spec.SetField(pipelinerun.FieldJobsFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedJobsFailed(); ok {
		_spec.AddField(pipelinerun.FieldJobsFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(pipelinerun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(pipelinerun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(pipelinerun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(pipelinerun.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(pipelinerun.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(pipelinerun.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.RunMetadata(); ok {
		_spec.SetField(pipelinerun.FieldRunMetadata, field.TypeJSON, value)
	}
	if _u.mutation.RunMetadataCleared() {
		_spec.ClearField(pipelinerun.FieldRunMetadata, field.TypeJSON)
	}
	if _u.mutation.CompanyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompanyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PipelineRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinerun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
