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
	"github.com/filinglens/filinglens/ent/document"
	"github.com/filinglens/filinglens/ent/filing"
	"github.com/filinglens/filinglens/ent/financialvalue"
	"github.com/filinglens/filinglens/ent/generatedcontent"
	"github.com/filinglens/filinglens/ent/pipelinerun"
	"github.com/filinglens/filinglens/ent/predicate"
)

// CompanyUpdate is the builder for updating Company entities.
type CompanyUpdate struct {
	config
	hooks    []Hook
	mutation *CompanyMutation
}

// Where appends a list predicates to the CompanyUpdate builder.
func (_u *CompanyUpdate) Where(ps ...predicate.Company) *CompanyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTicker sets the "ticker" field.
func (_u *CompanyUpdate) SetTicker(v string) *CompanyUpdate {
	_u.mutation.SetTicker(v)
	return _u
}

// SetNillableTicker sets the "ticker" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableTicker(v *string) *CompanyUpdate {
	if v != nil {
		_u.SetTicker(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *CompanyUpdate) SetName(v string) *CompanyUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableName(v *string) *CompanyUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetExchanges sets the "exchanges" field.
func (_u *CompanyUpdate) SetExchanges(v []string) *CompanyUpdate {
	_u.mutation.SetExchanges(v)
	return _u
}

// AppendExchanges appends value to the "exchanges" field.
func (_u *CompanyUpdate) AppendExchanges(v []string) *CompanyUpdate {
	_u.mutation.AppendExchanges(v)
	return _u
}

// ClearExchanges clears the value of the "exchanges" field.
func (_u *CompanyUpdate) ClearExchanges() *CompanyUpdate {
	_u.mutation.ClearExchanges()
	return _u
}

// SetIndustryCode sets the "industry_code" field.
func (_u *CompanyUpdate) SetIndustryCode(v string) *CompanyUpdate {
	_u.mutation.SetIndustryCode(v)
	return _u
}

// SetNillableIndustryCode sets the "industry_code" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableIndustryCode(v *string) *CompanyUpdate {
	if v != nil {
		_u.SetIndustryCode(*v)
	}
	return _u
}

// ClearIndustryCode clears the value of the "industry_code" field.
func (_u *CompanyUpdate) ClearIndustryCode() *CompanyUpdate {
	_u.mutation.ClearIndustryCode()
	return _u
}

// SetFiscalYearEnd sets the "fiscal_year_end" field.
func (_u *CompanyUpdate) SetFiscalYearEnd(v string) *CompanyUpdate {
	_u.mutation.SetFiscalYearEnd(v)
	return _u
}

// SetNillableFiscalYearEnd sets the "fiscal_year_end" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableFiscalYearEnd(v *string) *CompanyUpdate {
	if v != nil {
		_u.SetFiscalYearEnd(*v)
	}
	return _u
}

// ClearFiscalYearEnd clears the value of the "fiscal_year_end" field.
func (_u *CompanyUpdate) ClearFiscalYearEnd() *CompanyUpdate {
	_u.mutation.ClearFiscalYearEnd()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CompanyUpdate) SetUpdatedAt(v time.Time) *CompanyUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddFilingIDs adds the "filings" edge to the Filing entity by IDs.
func (_u *CompanyUpdate) AddFilingIDs(ids ...string) *CompanyUpdate {
	_u.mutation.AddFilingIDs(ids...)
	return _u
}

// AddFilings adds the "filings" edges to the Filing entity.
func (_u *CompanyUpdate) AddFilings(v ...*Filing) *CompanyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFilingIDs(ids...)
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_u *CompanyUpdate) AddDocumentIDs(ids ...string) *CompanyUpdate {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_u *CompanyUpdate) AddDocuments(v ...*Document) *CompanyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// AddFinancialValueIDs adds the "financial_values" edge to the FinancialValue entity by IDs.
func (_u *CompanyUpdate) AddFinancialValueIDs(ids ...string) *CompanyUpdate {
	_u.mutation.AddFinancialValueIDs(ids...)
	return _u
}

// AddFinancialValues adds the "financial_values" edges to the FinancialValue entity.
func (_u *CompanyUpdate) AddFinancialValues(v ...*FinancialValue) *CompanyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFinancialValueIDs(ids...)
}

// AddGeneratedContentIDs adds the "generated_contents" edge to the GeneratedContent entity by IDs.
func (_u *CompanyUpdate) AddGeneratedContentIDs(ids ...string) *CompanyUpdate {
	_u.mutation.AddGeneratedContentIDs(ids...)
	return _u
}

// AddGeneratedContents adds the "generated_contents" edges to the GeneratedContent entity.
func (_u *CompanyUpdate) AddGeneratedContents(v ...*GeneratedContent) *CompanyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGeneratedContentIDs(ids...)
}

// AddPipelineRunIDs adds the "pipeline_runs" edge to the PipelineRun entity by IDs.
func (_u *CompanyUpdate) AddPipelineRunIDs(ids ...string) *CompanyUpdate {
	_u.mutation.AddPipelineRunIDs(ids...)
	return _u
}

// AddPipelineRuns adds the "pipeline_runs" edges to the PipelineRun entity.
func (_u *CompanyUpdate) AddPipelineRuns(v ...*PipelineRun) *CompanyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPipelineRunIDs(ids...)
}

// Mutation returns the CompanyMutation object of the builder.
func (_u *CompanyUpdate) Mutation() *CompanyMutation {
	return _u.mutation
}

// ClearFilings clears all "filings" edges to the Filing entity.
func (_u *CompanyUpdate) ClearFilings() *CompanyUpdate {
	_u.mutation.ClearFilings()
	return _u
}

// RemoveFilingIDs removes the "filings" edge to Filing entities by IDs.
func (_u *CompanyUpdate) RemoveFilingIDs(ids ...string) *CompanyUpdate {
	_u.mutation.RemoveFilingIDs(ids...)
	return _u
}

// RemoveFilings removes "filings" edges to Filing entities.
func (_u *CompanyUpdate) RemoveFilings(v ...*Filing) *CompanyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFilingIDs(ids...)
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (_u *CompanyUpdate) ClearDocuments() *CompanyUpdate {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (_u *CompanyUpdate) RemoveDocumentIDs(ids ...string) *CompanyUpdate {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to Document entities.
func (_u *CompanyUpdate) RemoveDocuments(v ...*Document) *CompanyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// ClearFinancialValues clears all "financial_values" edges to the FinancialValue entity.
func (_u *CompanyUpdate) ClearFinancialValues() *CompanyUpdate {
	_u.mutation.ClearFinancialValues()
	return _u
}

// RemoveFinancialValueIDs removes the "financial_values" edge to FinancialValue entities by IDs.
func (_u *CompanyUpdate) RemoveFinancialValueIDs(ids ...string) *CompanyUpdate {
	_u.mutation.RemoveFinancialValueIDs(ids...)
	return _u
}

// RemoveFinancialValues removes "financial_values" edges to FinancialValue entities.
func (_u *CompanyUpdate) RemoveFinancialValues(v ...*FinancialValue) *CompanyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFinancialValueIDs(ids...)
}

// ClearGeneratedContents clears all "generated_contents" edges to the GeneratedContent entity.
func (_u *CompanyUpdate) ClearGeneratedContents() *CompanyUpdate {
	_u.mutation.ClearGeneratedContents()
	return _u
}

// RemoveGeneratedContentIDs removes the "generated_contents" edge to GeneratedContent entities by IDs.
func (_u *CompanyUpdate) RemoveGeneratedContentIDs(ids ...string) *CompanyUpdate {
	_u.mutation.RemoveGeneratedContentIDs(ids...)
	return _u
}

// RemoveGeneratedContents removes "generated_contents" edges to GeneratedContent entities.
func (_u *CompanyUpdate) RemoveGeneratedContents(v ...*GeneratedContent) *CompanyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGeneratedContentIDs(ids...)
}

// ClearPipelineRuns clears all "pipeline_runs" edges to the PipelineRun entity.
func (_u *CompanyUpdate) ClearPipelineRuns() *CompanyUpdate {
	_u.mutation.ClearPipelineRuns()
	return _u
}

// RemovePipelineRunIDs removes the "pipeline_runs" edge to PipelineRun entities by IDs.
func (_u *CompanyUpdate) RemovePipelineRunIDs(ids ...string) *CompanyUpdate {
	_u.mutation.RemovePipelineRunIDs(ids...)
	return _u
}

// RemovePipelineRuns removes "pipeline_runs" edges to PipelineRun entities.
func (_u *CompanyUpdate) RemovePipelineRuns(v ...*PipelineRun) *CompanyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePipelineRunIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CompanyUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompanyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CompanyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompanyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CompanyUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := company.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *CompanyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(company.Table, company.Columns, sqlgraph.NewFieldSpec(company.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Ticker(); ok {
		_spec.SetField(company.FieldTicker, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(company.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Exchanges(); ok {
		_spec.SetField(company.FieldExchanges, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExchanges(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, company.FieldExchanges, value)
		})
	}
	if _u.mutation.ExchangesCleared() {
		_spec.ClearField(company.FieldExchanges, field.TypeJSON)
	}
	if value, ok := _u.mutation.IndustryCode(); ok {
		_spec.SetField(company.FieldIndustryCode, field.TypeString, value)
	}
	if _u.mutation.IndustryCodeCleared() {
		_spec.ClearField(company.FieldIndustryCode, field.TypeString)
	}
	if value, ok := _u.mutation.FiscalYearEnd(); ok {
		_spec.SetField(company.FieldFiscalYearEnd, field.TypeString, value)
	}
	if _u.mutation.FiscalYearEndCleared() {
		_spec.ClearField(company.FieldFiscalYearEnd, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(company.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FilingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.FilingsTable,
			Columns: []string{company.FilingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filing.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFilingsIDs(); len(nodes) > 0 && !_u.mutation.FilingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.FilingsTable,
			Columns: []string{company.FilingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filing.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.FilingsTable,
			Columns: []string{company.FilingsColumn},
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
	if _u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.DocumentsTable,
			Columns: []string{company.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.DocumentsTable,
			Columns: []string{company.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.DocumentsTable,
			Columns: []string{company.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FinancialValuesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.FinancialValuesTable,
			Columns: []string{company.FinancialValuesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(financialvalue.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFinancialValuesIDs(); len(nodes) > 0 && !_u.mutation.FinancialValuesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.FinancialValuesTable,
			Columns: []string{company.FinancialValuesColumn},
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
	if nodes := _u.mutation.FinancialValuesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.FinancialValuesTable,
			Columns: []string{company.FinancialValuesColumn},
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
	if _u.mutation.GeneratedContentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.GeneratedContentsTable,
			Columns: []string{company.GeneratedContentsColumn},
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
			Table:   company.GeneratedContentsTable,
			Columns: []string{company.GeneratedContentsColumn},
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
			Table:   company.GeneratedContentsTable,
			Columns: []string{company.GeneratedContentsColumn},
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
	if _u.mutation.PipelineRunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.PipelineRunsTable,
			Columns: []string{company.PipelineRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelinerun.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPipelineRunsIDs(); len(nodes) > 0 && !_u.mutation.PipelineRunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.PipelineRunsTable,
			Columns: []string{company.PipelineRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelinerun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PipelineRunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.PipelineRunsTable,
			Columns: []string{company.PipelineRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelinerun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{company.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CompanyUpdateOne is the builder for updating a single Company entity.
type CompanyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CompanyMutation
}

// SetTicker sets the "ticker" field.
func (_u *CompanyUpdateOne) SetTicker(v string) *CompanyUpdateOne {
	_u.mutation.SetTicker(v)
	return _u
}

// SetNillableTicker sets the "ticker" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableTicker(v *string) *CompanyUpdateOne {
	if v != nil {
		_u.SetTicker(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *CompanyUpdateOne) SetName(v string) *CompanyUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableName(v *string) *CompanyUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetExchanges sets the "exchanges" field.
func (_u *CompanyUpdateOne) SetExchanges(v []string) *CompanyUpdateOne {
	_u.mutation.SetExchanges(v)
	return _u
}

// AppendExchanges appends value to the "exchanges" field.
func (_u *CompanyUpdateOne) AppendExchanges(v []string) *CompanyUpdateOne {
	_u.mutation.AppendExchanges(v)
	return _u
}

// ClearExchanges clears the value of the "exchanges" field.
func (_u *CompanyUpdateOne) ClearExchanges() *CompanyUpdateOne {
	_u.mutation.ClearExchanges()
	return _u
}

// SetIndustryCode sets the "industry_code" field.
func (_u *CompanyUpdateOne) SetIndustryCode(v string) *CompanyUpdateOne {
	_u.mutation.SetIndustryCode(v)
	return _u
}

// SetNillableIndustryCode sets the "industry_code" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableIndustryCode(v *string) *CompanyUpdateOne {
	if v != nil {
		_u.SetIndustryCode(*v)
	}
	return _u
}

// ClearIndustryCode clears the value of the "industry_code" field.
func (_u *CompanyUpdateOne) ClearIndustryCode() *CompanyUpdateOne {
	_u.mutation.ClearIndustryCode()
	return _u
}

// SetFiscalYearEnd sets the "fiscal_year_end" field.
func (_u *CompanyUpdateOne) SetFiscalYearEnd(v string) *CompanyUpdateOne {
	_u.mutation.SetFiscalYearEnd(v)
	return _u
}

// SetNillableFiscalYearEnd sets the "fiscal_year_end" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableFiscalYearEnd(v *string) *CompanyUpdateOne {
	if v != nil {
		_u.SetFiscalYearEnd(*v)
	}
	return _u
}

// ClearFiscalYearEnd clears the value of the "fiscal_year_end" field.
func (_u *CompanyUpdateOne) ClearFiscalYearEnd() *CompanyUpdateOne {
	_u.mutation.ClearFiscalYearEnd()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CompanyUpdateOne) SetUpdatedAt(v time.Time) *CompanyUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddFilingIDs adds the "filings" edge to the Filing entity by IDs.
func (_u *CompanyUpdateOne) AddFilingIDs(ids ...string) *CompanyUpdateOne {
	_u.mutation.AddFilingIDs(ids...)
	return _u
}

// AddFilings adds the "filings" edges to the Filing entity.
func (_u *CompanyUpdateOne) AddFilings(v ...*Filing) *CompanyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFilingIDs(ids...)
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_u *CompanyUpdateOne) AddDocumentIDs(ids ...string) *CompanyUpdateOne {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_u *CompanyUpdateOne) AddDocuments(v ...*Document) *CompanyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// AddFinancialValueIDs adds the "financial_values" edge to the FinancialValue entity by IDs.
func (_u *CompanyUpdateOne) AddFinancialValueIDs(ids ...string) *CompanyUpdateOne {
	_u.mutation.AddFinancialValueIDs(ids...)
	return _u
}

// AddFinancialValues adds the "financial_values" edges to the FinancialValue entity.
func (_u *CompanyUpdateOne) AddFinancialValues(v ...*FinancialValue) *CompanyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFinancialValueIDs(ids...)
}

// AddGeneratedContentIDs adds the "generated_contents" edge to the GeneratedContent entity by IDs.
func (_u *CompanyUpdateOne) AddGeneratedContentIDs(ids ...string) *CompanyUpdateOne {
	_u.mutation.AddGeneratedContentIDs(ids...)
	return _u
}

// AddGeneratedContents adds the "generated_contents" edges to the GeneratedContent entity.
func (_u *CompanyUpdateOne) AddGeneratedContents(v ...*GeneratedContent) *CompanyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGeneratedContentIDs(ids...)
}

// AddPipelineRunIDs adds the "pipeline_runs" edge to the PipelineRun entity by IDs.
func (_u *CompanyUpdateOne) AddPipelineRunIDs(ids ...string) *CompanyUpdateOne {
	_u.mutation.AddPipelineRunIDs(ids...)
	return _u
}

// AddPipelineRuns adds the "pipeline_runs" edges to the PipelineRun entity.
func (_u *CompanyUpdateOne) AddPipelineRuns(v ...*PipelineRun) *CompanyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPipelineRunIDs(ids...)
}

// Mutation returns the CompanyMutation object of the builder.
func (_u *CompanyUpdateOne) Mutation() *CompanyMutation {
	return _u.mutation
}

// ClearFilings clears all "filings" edges to the Filing entity.
func (_u *CompanyUpdateOne) ClearFilings() *CompanyUpdateOne {
	_u.mutation.ClearFilings()
	return _u
}

// RemoveFilingIDs removes the "filings" edge to Filing entities by IDs.
func (_u *CompanyUpdateOne) RemoveFilingIDs(ids ...string) *CompanyUpdateOne {
	_u.mutation.RemoveFilingIDs(ids...)
	return _u
}

// RemoveFilings removes "filings" edges to Filing entities.
func (_u *CompanyUpdateOne) RemoveFilings(v ...*Filing) *CompanyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFilingIDs(ids...)
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (_u *CompanyUpdateOne) ClearDocuments() *CompanyUpdateOne {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (_u *CompanyUpdateOne) RemoveDocumentIDs(ids ...string) *CompanyUpdateOne {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to Document entities.
func (_u *CompanyUpdateOne) RemoveDocuments(v ...*Document) *CompanyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// ClearFinancialValues clears all "financial_values" edges to the FinancialValue entity.
func (_u *CompanyUpdateOne) ClearFinancialValues() *CompanyUpdateOne {
	_u.mutation.ClearFinancialValues()
	return _u
}

// RemoveFinancialValueIDs removes the "financial_values" edge to FinancialValue entities by IDs.
func (_u *CompanyUpdateOne) RemoveFinancialValueIDs(ids ...string) *CompanyUpdateOne {
	_u.mutation.RemoveFinancialValueIDs(ids...)
	return _u
}

// RemoveFinancialValues removes "financial_values" edges to FinancialValue entities.
func (_u *CompanyUpdateOne) RemoveFinancialValues(v ...*FinancialValue) *CompanyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFinancialValueIDs(ids...)
}

// ClearGeneratedContents clears all "generated_contents" edges to the GeneratedContent entity.
func (_u *CompanyUpdateOne) ClearGeneratedContents() *CompanyUpdateOne {
	_u.mutation.ClearGeneratedContents()
	return _u
}

// RemoveGeneratedContentIDs removes the "generated_contents" edge to GeneratedContent entities by IDs.
func (_u *CompanyUpdateOne) RemoveGeneratedContentIDs(ids ...string) *CompanyUpdateOne {
	_u.mutation.RemoveGeneratedContentIDs(ids...)
	return _u
}

// RemoveGeneratedContents removes "generated_contents" edges to GeneratedContent entities.
func (_u *CompanyUpdateOne) RemoveGeneratedContents(v ...*GeneratedContent) *CompanyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGeneratedContentIDs(ids...)
}

// ClearPipelineRuns clears all "pipeline_runs" edges to the PipelineRun entity.
func (_u *CompanyUpdateOne) ClearPipelineRuns() *CompanyUpdateOne {
	_u.mutation.ClearPipelineRuns()
	return _u
}

// RemovePipelineRunIDs removes the "pipeline_runs" edge to PipelineRun entities by IDs.
func (_u *CompanyUpdateOne) RemovePipelineRunIDs(ids ...string) *CompanyUpdateOne {
	_u.mutation.RemovePipelineRunIDs(ids...)
	return _u
}

// RemovePipelineRuns removes "pipeline_runs" edges to PipelineRun entities.
func (_u *CompanyUpdateOne) RemovePipelineRuns(v ...*PipelineRun) *CompanyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePipelineRunIDs(ids...)
}

// Where appends a list predicates to the CompanyUpdate builder.
func (_u *CompanyUpdateOne) Where(ps ...predicate.Company) *CompanyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CompanyUpdateOne) Select(field string, fields ...string) *CompanyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Company entity.
func (_u *CompanyUpdateOne) Save(ctx context.Context) (*Company, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompanyUpdateOne) SaveX(ctx context.Context) *Company {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CompanyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompanyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CompanyUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := company.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *CompanyUpdateOne) sqlSave(ctx context.Context) (_node *Company, err error) {
	_spec := sqlgraph.NewUpdateSpec(company.Table, company.Columns, sqlgraph.NewFieldSpec(company.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Company.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, company.FieldID)
		for _, f := range fields {
			if !company.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != company.FieldID {
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
	if value, ok := _u.mutation.Ticker(); ok {
		_spec.SetField(company.FieldTicker, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(company.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Exchanges(); ok {
		_spec.SetField(company.FieldExchanges, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExchanges(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, company.FieldExchanges, value)
		})
	}
	if _u.mutation.ExchangesCleared() {
		_spec.ClearField(company.FieldExchanges, field.TypeJSON)
	}
	if value, ok := _u.mutation.IndustryCode(); ok {
		_spec.SetField(company.FieldIndustryCode, field.TypeString, value)
	}
	if _u.mutation.IndustryCodeCleared() {
		_spec.ClearField(company.FieldIndustryCode, field.TypeString)
	}
	if value, ok := _u.mutation.FiscalYearEnd(); ok {
		_spec.SetField(company.FieldFiscalYearEnd, field.TypeString, value)
	}
	if _u.mutation.FiscalYearEndCleared() {
		_spec.ClearField(company.FieldFiscalYearEnd, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(company.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FilingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.FilingsTable,
			Columns: []string{company.FilingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filing.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFilingsIDs(); len(nodes) > 0 && !_u.mutation.FilingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.FilingsTable,
			Columns: []string{company.FilingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filing.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.FilingsTable,
			Columns: []string{company.FilingsColumn},
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
	if _u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.DocumentsTable,
			Columns: []string{company.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.DocumentsTable,
			Columns: []string{company.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.DocumentsTable,
			Columns: []string{company.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FinancialValuesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.FinancialValuesTable,
			Columns: []string{company.FinancialValuesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(financialvalue.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFinancialValuesIDs(); len(nodes) > 0 && !_u.mutation.FinancialValuesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.FinancialValuesTable,
			Columns: []string{company.FinancialValuesColumn},
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
	if nodes := _u.mutation.FinancialValuesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.FinancialValuesTable,
			Columns: []string{company.FinancialValuesColumn},
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
	if _u.mutation.GeneratedContentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.GeneratedContentsTable,
			Columns: []string{company.GeneratedContentsColumn},
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
			Table:   company.GeneratedContentsTable,
			Columns: []string{company.GeneratedContentsColumn},
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
			Table:   company.GeneratedContentsTable,
			Columns: []string{company.GeneratedContentsColumn},
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
	if _u.mutation.PipelineRunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.PipelineRunsTable,
			Columns: []string{company.PipelineRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelinerun.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPipelineRunsIDs(); len(nodes) > 0 && !_u.mutation.PipelineRunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.PipelineRunsTable,
			Columns: []string{company.PipelineRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelinerun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PipelineRunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.PipelineRunsTable,
			Columns: []string{company.PipelineRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelinerun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Company{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{company.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
