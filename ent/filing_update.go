// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/filinglens/filinglens/ent/document"
	"github.com/filinglens/filinglens/ent/filing"
	"github.com/filinglens/filinglens/ent/financialvalue"
	"github.com/filinglens/filinglens/ent/predicate"
)

// FilingUpdate is the builder for updating Filing entities.
type FilingUpdate struct {
	config
	hooks    []Hook
	mutation *FilingMutation
}

// Where appends a list predicates to the FilingUpdate builder.
func (_u *FilingUpdate) Where(ps ...predicate.Filing) *FilingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAccessionNumber sets the "accession_number" field.
func (_u *FilingUpdate) SetAccessionNumber(v string) *FilingUpdate {
	_u.mutation.SetAccessionNumber(v)
	return _u
}

// SetNillableAccessionNumber sets the "accession_number" field if the given value is not nil.
func (_u *FilingUpdate) SetNillableAccessionNumber(v *string) *FilingUpdate {
	if v != nil {
		_u.SetAccessionNumber(*v)
	}
	return _u
}

// SetFormType sets the "form_type" field.
func (_u *FilingUpdate) SetFormType(v string) *FilingUpdate {
	_u.mutation.SetFormType(v)
	return _u
}

// SetNillableFormType sets the "form_type" field if the given value is not nil.
func (_u *FilingUpdate) SetNillableFormType(v *string) *FilingUpdate {
	if v != nil {
		_u.SetFormType(*v)
	}
	return _u
}

// SetFilingDate sets the "filing_date" field.
func (_u *FilingUpdate) SetFilingDate(v time.Time) *FilingUpdate {
	_u.mutation.SetFilingDate(v)
	return _u
}

// SetNillableFilingDate sets the "filing_date" field if the given value is not nil.
func (_u *FilingUpdate) SetNillableFilingDate(v *time.Time) *FilingUpdate {
	if v != nil {
		_u.SetFilingDate(*v)
	}
	return _u
}

// SetPeriodOfReport sets the "period_of_report" field.
func (_u *FilingUpdate) SetPeriodOfReport(v time.Time) *FilingUpdate {
	_u.mutation.SetPeriodOfReport(v)
	return _u
}

// SetNillablePeriodOfReport sets the "period_of_report" field if the given value is not nil.
func (_u *FilingUpdate) SetNillablePeriodOfReport(v *time.Time) *FilingUpdate {
	if v != nil {
		_u.SetPeriodOfReport(*v)
	}
	return _u
}

// ClearPeriodOfReport clears the value of the "period_of_report" field.
func (_u *FilingUpdate) ClearPeriodOfReport() *FilingUpdate {
	_u.mutation.ClearPeriodOfReport()
	return _u
}

// SetSourceURL sets the "source_url" field.
func (_u *FilingUpdate) SetSourceURL(v string) *FilingUpdate {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *FilingUpdate) SetNillableSourceURL(v *string) *FilingUpdate {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// ClearSourceURL clears the value of the "source_url" field.
func (_u *FilingUpdate) ClearSourceURL() *FilingUpdate {
	_u.mutation.ClearSourceURL()
	return _u
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_u *FilingUpdate) AddDocumentIDs(ids ...string) *FilingUpdate {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_u *FilingUpdate) AddDocuments(v ...*Document) *FilingUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// AddFinancialValueIDs adds the "financial_values" edge to the FinancialValue entity by IDs.
func (_u *FilingUpdate) AddFinancialValueIDs(ids ...string) *FilingUpdate {
	_u.mutation.AddFinancialValueIDs(ids...)
	return _u
}

// AddFinancialValues adds the "financial_values" edges to the FinancialValue entity.
func (_u *FilingUpdate) AddFinancialValues(v ...*FinancialValue) *FilingUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFinancialValueIDs(ids...)
}

// Mutation returns the FilingMutation object of the builder.
func (_u *FilingUpdate) Mutation() *FilingMutation {
	return _u.mutation
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (_u *FilingUpdate) ClearDocuments() *FilingUpdate {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (_u *FilingUpdate) RemoveDocumentIDs(ids ...string) *FilingUpdate {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to Document entities.
func (_u *FilingUpdate) RemoveDocuments(v ...*Document) *FilingUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// ClearFinancialValues clears all "financial_values" edges to the FinancialValue entity.
func (_u *FilingUpdate) ClearFinancialValues() *FilingUpdate {
	_u.mutation.ClearFinancialValues()
	return _u
}

// RemoveFinancialValueIDs removes the "financial_values" edge to FinancialValue entities by IDs.
func (_u *FilingUpdate) RemoveFinancialValueIDs(ids ...string) *FilingUpdate {
	_u.mutation.RemoveFinancialValueIDs(ids...)
	return _u
}

// RemoveFinancialValues removes "financial_values" edges to FinancialValue entities.
func (_u *FilingUpdate) RemoveFinancialValues(v ...*FinancialValue) *FilingUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFinancialValueIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FilingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FilingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FilingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FilingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FilingUpdate) check() error {
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Filing.company"`)
	}
	return nil
}

func (_u *FilingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(filing.Table, filing.Columns, sqlgraph.NewFieldSpec(filing.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AccessionNumber(); ok {
		_spec.SetField(filing.FieldAccessionNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.FormType(); ok {
		_spec.SetField(filing.FieldFormType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilingDate(); ok {
		_spec.SetField(filing.FieldFilingDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PeriodOfReport(); ok {
		_spec.SetField(filing.FieldPeriodOfReport, field.TypeTime, value)
	}
	if _u.mutation.PeriodOfReportCleared() {
		_spec.ClearField(filing.FieldPeriodOfReport, field.TypeTime)
	}
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(filing.FieldSourceURL, field.TypeString, value)
	}
	if _u.mutation.SourceURLCleared() {
		_spec.ClearField(filing.FieldSourceURL, field.TypeString)
	}
	if _u.mutation.DocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FinancialValuesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFinancialValuesIDs(); len(nodes) > 0 && !_u.mutation.FinancialValuesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FinancialValuesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{filing.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FilingUpdateOne is the builder for updating a single Filing entity.
type FilingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FilingMutation
}

// SetAccessionNumber sets the "accession_number" field.
func (_u *FilingUpdateOne) SetAccessionNumber(v string) *FilingUpdateOne {
	_u.mutation.SetAccessionNumber(v)
	return _u
}

// SetNillableAccessionNumber sets the "accession_number" field if the given value is not nil.
func (_u *FilingUpdateOne) SetNillableAccessionNumber(v *string) *FilingUpdateOne {
	if v != nil {
		_u.SetAccessionNumber(*v)
	}
	return _u
}

// SetFormType sets the "form_type" field.
func (_u *FilingUpdateOne) SetFormType(v string) *FilingUpdateOne {
	_u.mutation.SetFormType(v)
	return _u
}

// SetNillableFormType sets the "form_type" field if the given value is not nil.
func (_u *FilingUpdateOne) SetNillableFormType(v *string) *FilingUpdateOne {
	if v != nil {
		_u.SetFormType(*v)
	}
	return _u
}

// SetFilingDate sets the "filing_date" field.
func (_u *FilingUpdateOne) SetFilingDate(v time.Time) *FilingUpdateOne {
	_u.mutation.SetFilingDate(v)
	return _u
}

// SetNillableFilingDate sets the "filing_date" field if the given value is not nil.
func (_u *FilingUpdateOne) SetNillableFilingDate(v *time.Time) *FilingUpdateOne {
	if v != nil {
		_u.SetFilingDate(*v)
	}
	return _u
}

// SetPeriodOfReport sets the "period_of_report" field.
func (_u *FilingUpdateOne) SetPeriodOfReport(v time.Time) *FilingUpdateOne {
	_u.mutation.SetPeriodOfReport(v)
	return _u
}

// SetNillablePeriodOfReport sets the "period_of_report" field if the given value is not nil.
func (_u *FilingUpdateOne) SetNillablePeriodOfReport(v *time.Time) *FilingUpdateOne {
	if v != nil {
		_u.SetPeriodOfReport(*v)
	}
	return _u
}

// ClearPeriodOfReport clears the value of the "period_of_report" field.
func (_u *FilingUpdateOne) ClearPeriodOfReport() *FilingUpdateOne {
	_u.mutation.ClearPeriodOfReport()
	return _u
}

// SetSourceURL sets the "source_url" field.
func (_u *FilingUpdateOne) SetSourceURL(v string) *FilingUpdateOne {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *FilingUpdateOne) SetNillableSourceURL(v *string) *FilingUpdateOne {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// ClearSourceURL clears the value of the "source_url" field.
func (_u *FilingUpdateOne) ClearSourceURL() *FilingUpdateOne {
	_u.mutation.ClearSourceURL()
	return _u
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_u *FilingUpdateOne) AddDocumentIDs(ids ...string) *FilingUpdateOne {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_u *FilingUpdateOne) AddDocuments(v ...*Document) *FilingUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// AddFinancialValueIDs adds the "financial_values" edge to the FinancialValue entity by IDs.
func (_u *FilingUpdateOne) AddFinancialValueIDs(ids ...string) *FilingUpdateOne {
	_u.mutation.AddFinancialValueIDs(ids...)
	return _u
}

// AddFinancialValues adds the "financial_values" edges to the FinancialValue entity.
func (_u *FilingUpdateOne) AddFinancialValues(v ...*FinancialValue) *FilingUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFinancialValueIDs(ids...)
}

// Mutation returns the FilingMutation object of the builder.
func (_u *FilingUpdateOne) Mutation() *FilingMutation {
	return _u.mutation
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (_u *FilingUpdateOne) ClearDocuments() *FilingUpdateOne {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (_u *FilingUpdateOne) RemoveDocumentIDs(ids ...string) *FilingUpdateOne {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to Document entities.
func (_u *FilingUpdateOne) RemoveDocuments(v ...*Document) *FilingUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// ClearFinancialValues clears all "financial_values" edges to the FinancialValue entity.
func (_u *FilingUpdateOne) ClearFinancialValues() *FilingUpdateOne {
	_u.mutation.ClearFinancialValues()
	return _u
}

// RemoveFinancialValueIDs removes the "financial_values" edge to FinancialValue entities by IDs.
func (_u *FilingUpdateOne) RemoveFinancialValueIDs(ids ...string) *FilingUpdateOne {
	_u.mutation.RemoveFinancialValueIDs(ids...)
	return _u
}

// RemoveFinancialValues removes "financial_values" edges to FinancialValue entities.
func (_u *FilingUpdateOne) RemoveFinancialValues(v ...*FinancialValue) *FilingUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFinancialValueIDs(ids...)
}

// Where appends a list predicates to the FilingUpdate builder.
func (_u *FilingUpdateOne) Where(ps ...predicate.Filing) *FilingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FilingUpdateOne) Select(field string, fields ...string) *FilingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Filing entity.
func (_u *FilingUpdateOne) Save(ctx context.Context) (*Filing, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FilingUpdateOne) SaveX(ctx context.Context) *Filing {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FilingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FilingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FilingUpdateOne) check() error {
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Filing.company"`)
	}
	return nil
}

func (_u *FilingUpdateOne) sqlSave(ctx context.Context) (_node *Filing, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(filing.Table, filing.Columns, sqlgraph.NewFieldSpec(filing.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Filing.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, filing.FieldID)
		for _, f := range fields {
			if !filing.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != filing.FieldID {
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
	if value, ok := _u.mutation.AccessionNumber(); ok {
		_spec.SetField(filing.FieldAccessionNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.FormType(); ok {
		_spec.SetField(filing.FieldFormType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilingDate(); ok {
		_spec.SetField(filing.FieldFilingDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PeriodOfReport(); ok {
		_spec.SetField(filing.FieldPeriodOfReport, field.TypeTime, value)
	}
	if _u.mutation.PeriodOfReportCleared() {
		_spec.ClearField(filing.FieldPeriodOfReport, field.TypeTime)
	}
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(filing.FieldSourceURL, field.TypeString, value)
	}
	if _u.mutation.SourceURLCleared() {
		_spec.ClearField(filing.FieldSourceURL, field.TypeString)
	}
	if _u.mutation.DocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FinancialValuesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFinancialValuesIDs(); len(nodes) > 0 && !_u.mutation.FinancialValuesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FinancialValuesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Filing{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{filing.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
