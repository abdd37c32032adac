// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/filinglens/filinglens/ent/company"
	"github.com/filinglens/filinglens/ent/companygroup"
	"github.com/filinglens/filinglens/ent/document"
	"github.com/filinglens/filinglens/ent/generatedcontent"
	"github.com/filinglens/filinglens/ent/predicate"
)

// GeneratedContentUpdate is the builder for updating GeneratedContent entities.
type GeneratedContentUpdate struct {
	config
	hooks    []Hook
	mutation *GeneratedContentMutation
}

// Where appends a list predicates to the GeneratedContentUpdate builder.
func (_u *GeneratedContentUpdate) Where(ps ...predicate.GeneratedContent) *GeneratedContentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContent sets the "content" field.
func (_u *GeneratedContentUpdate) SetContent(v string) *GeneratedContentUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *GeneratedContentUpdate) SetNillableContent(v *string) *GeneratedContentUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *GeneratedContentUpdate) SetSummary(v string) *GeneratedContentUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *GeneratedContentUpdate) SetNillableSummary(v *string) *GeneratedContentUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *GeneratedContentUpdate) ClearSummary() *GeneratedContentUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *GeneratedContentUpdate) SetContentHash(v string) *GeneratedContentUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *GeneratedContentUpdate) SetNillableContentHash(v *string) *GeneratedContentUpdate {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *GeneratedContentUpdate) SetCompanyID(v string) *GeneratedContentUpdate {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *GeneratedContentUpdate) SetNillableCompanyID(v *string) *GeneratedContentUpdate {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// ClearCompanyID clears the value of the "company_id" field.
func (_u *GeneratedContentUpdate) ClearCompanyID() *GeneratedContentUpdate {
	_u.mutation.ClearCompanyID()
	return _u
}

// SetGroupID sets the "group_id" field.
func (_u *GeneratedContentUpdate) SetGroupID(v string) *GeneratedContentUpdate {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *GeneratedContentUpdate) SetNillableGroupID(v *string) *GeneratedContentUpdate {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// ClearGroupID clears the value of the "group_id" field.
func (_u *GeneratedContentUpdate) ClearGroupID() *GeneratedContentUpdate {
	_u.mutation.ClearGroupID()
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *GeneratedContentUpdate) SetDocumentType(v generatedcontent.DocumentType) *GeneratedContentUpdate {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *GeneratedContentUpdate) SetNillableDocumentType(v *generatedcontent.DocumentType) *GeneratedContentUpdate {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// ClearDocumentType clears the value of the "document_type" field.
func (_u *GeneratedContentUpdate) ClearDocumentType() *GeneratedContentUpdate {
	_u.mutation.ClearDocumentType()
	return _u
}

// SetFormType sets the "form_type" field.
func (_u *GeneratedContentUpdate) SetFormType(v string) *GeneratedContentUpdate {
	_u.mutation.SetFormType(v)
	return _u
}

// SetNillableFormType sets the "form_type" field if the given value is not nil.
func (_u *GeneratedContentUpdate) SetNillableFormType(v *string) *GeneratedContentUpdate {
	if v != nil {
		_u.SetFormType(*v)
	}
	return _u
}

// ClearFormType clears the value of the "form_type" field.
func (_u *GeneratedContentUpdate) ClearFormType() *GeneratedContentUpdate {
	_u.mutation.ClearFormType()
	return _u
}

// SetContentStage sets the "content_stage" field.
func (_u *GeneratedContentUpdate) SetContentStage(v generatedcontent.ContentStage) *GeneratedContentUpdate {
	_u.mutation.SetContentStage(v)
	return _u
}

// SetNillableContentStage sets the "content_stage" field if the given value is not nil.
func (_u *GeneratedContentUpdate) SetNillableContentStage(v *generatedcontent.ContentStage) *GeneratedContentUpdate {
	if v != nil {
		_u.SetContentStage(*v)
	}
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *GeneratedContentUpdate) SetSourceType(v generatedcontent.SourceType) *GeneratedContentUpdate {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *GeneratedContentUpdate) SetNillableSourceType(v *generatedcontent.SourceType) *GeneratedContentUpdate {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetTotalDuration sets the "total_duration" field.
func (_u *GeneratedContentUpdate) SetTotalDuration(v float64) *GeneratedContentUpdate {
	_u.mutation.ResetTotalDuration()
	_u.mutation.SetTotalDuration(v)
	return _u
}

// SetNillableTotalDuration sets the "total_duration" field if the given value is not nil.
func (_u *GeneratedContentUpdate) SetNillableTotalDuration(v *float64) *GeneratedContentUpdate {
	if v != nil {
		_u.SetTotalDuration(*v)
	}
	return _u
}

// AddTotalDuration adds value to the "total_duration" field.
func (_u *GeneratedContentUpdate) AddTotalDuration(v float64) *GeneratedContentUpdate {
	_u.mutation.AddTotalDuration(v)
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *GeneratedContentUpdate) SetInputTokens(v int) *GeneratedContentUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *GeneratedContentUpdate) SetNillableInputTokens(v *int) *GeneratedContentUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *GeneratedContentUpdate) AddInputTokens(v int) *GeneratedContentUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// ClearInputTokens clears the value of the "input_tokens" field.
func (_u *GeneratedContentUpdate) ClearInputTokens() *GeneratedContentUpdate {
	_u.mutation.ClearInputTokens()
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *GeneratedContentUpdate) SetOutputTokens(v int) *GeneratedContentUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *GeneratedContentUpdate) SetNillableOutputTokens(v *int) *GeneratedContentUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *GeneratedContentUpdate) AddOutputTokens(v int) *GeneratedContentUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// ClearOutputTokens clears the value of the "output_tokens" field.
func (_u *GeneratedContentUpdate) ClearOutputTokens() *GeneratedContentUpdate {
	_u.mutation.ClearOutputTokens()
	return _u
}

// SetWarning sets the "warning" field.
func (_u *GeneratedContentUpdate) SetWarning(v string) *GeneratedContentUpdate {
	_u.mutation.SetWarning(v)
	return _u
}

// SetNillableWarning sets the "warning" field if the given value is not nil.
func (_u *GeneratedContentUpdate) SetNillableWarning(v *string) *GeneratedContentUpdate {
	if v != nil {
		_u.SetWarning(*v)
	}
	return _u
}

// ClearWarning clears the value of the "warning" field.
func (_u *GeneratedContentUpdate) ClearWarning() *GeneratedContentUpdate {
	_u.mutation.ClearWarning()
	return _u
}

// SetDescription sets the "description" field.
func (_u *GeneratedContentUpdate) SetDescription(v string) *GeneratedContentUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *GeneratedContentUpdate) SetNillableDescription(v *string) *GeneratedContentUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *GeneratedContentUpdate) ClearDescription() *GeneratedContentUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetCompany sets the "company" edge to the Company entity.
func (_u *GeneratedContentUpdate) SetCompany(v *Company) *GeneratedContentUpdate {
	return _u.SetCompanyID(v.ID)
}

// SetGroup sets the "group" edge to the CompanyGroup entity.
func (_u *GeneratedContentUpdate) SetGroup(v *CompanyGroup) *GeneratedContentUpdate {
	return _u.SetGroupID(v.ID)
}

// AddSourceDocumentIDs adds the "source_documents" edge to the Document entity by IDs.
func (_u *GeneratedContentUpdate) AddSourceDocumentIDs(ids ...string) *GeneratedContentUpdate {
	_u.mutation.AddSourceDocumentIDs(ids...)
	return _u
}

// AddSourceDocuments adds the "source_documents" edges to the Document entity.
func (_u *GeneratedContentUpdate) AddSourceDocuments(v ...*Document) *GeneratedContentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSourceDocumentIDs(ids...)
}

// AddSourceContentIDs adds the "source_content" edge to the GeneratedContent entity by IDs.
func (_u *GeneratedContentUpdate) AddSourceContentIDs(ids ...string) *GeneratedContentUpdate {
	_u.mutation.AddSourceContentIDs(ids...)
	return _u
}

// AddSourceContent adds the "source_content" edges to the GeneratedContent entity.
func (_u *GeneratedContentUpdate) AddSourceContent(v ...*GeneratedContent) *GeneratedContentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSourceContentIDs(ids...)
}

// AddDerivedContentIDs adds the "derived_content" edge to the GeneratedContent entity by IDs.
func (_u *GeneratedContentUpdate) AddDerivedContentIDs(ids ...string) *GeneratedContentUpdate {
	_u.mutation.AddDerivedContentIDs(ids...)
	return _u
}

// AddDerivedContent adds the "derived_content" edges to the GeneratedContent entity.
func (_u *GeneratedContentUpdate) AddDerivedContent(v ...*GeneratedContent) *GeneratedContentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDerivedContentIDs(ids...)
}

// Mutation returns the GeneratedContentMutation object of the builder.
func (_u *GeneratedContentUpdate) Mutation() *GeneratedContentMutation {
	return _u.mutation
}

// ClearCompany clears the "company" edge to the Company entity.
func (_u *GeneratedContentUpdate) ClearCompany() *GeneratedContentUpdate {
	_u.mutation.ClearCompany()
	return _u
}

// ClearGroup clears the "group" edge to the CompanyGroup entity.
func (_u *GeneratedContentUpdate) ClearGroup() *GeneratedContentUpdate {
	_u.mutation.ClearGroup()
	return _u
}

// ClearSourceDocuments clears all "source_documents" edges to the Document entity.
func (_u *GeneratedContentUpdate) ClearSourceDocuments() *GeneratedContentUpdate {
	_u.mutation.ClearSourceDocuments()
	return _u
}

// RemoveSourceDocumentIDs removes the "source_documents" edge to Document entities by IDs.
func (_u *GeneratedContentUpdate) RemoveSourceDocumentIDs(ids ...string) *GeneratedContentUpdate {
	_u.mutation.RemoveSourceDocumentIDs(ids...)
	return _u
}

// RemoveSourceDocuments removes "source_documents" edges to Document entities.
func (_u *GeneratedContentUpdate) RemoveSourceDocuments(v ...*Document) *GeneratedContentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSourceDocumentIDs(ids...)
}

// ClearSourceContent clears all "source_content" edges to the GeneratedContent entity.
func (_u *GeneratedContentUpdate) ClearSourceContent() *GeneratedContentUpdate {
	_u.mutation.ClearSourceContent()
	return _u
}

// RemoveSourceContentIDs removes the "source_content" edge to GeneratedContent entities by IDs.
func (_u *GeneratedContentUpdate) RemoveSourceContentIDs(ids ...string) *GeneratedContentUpdate {
	_u.mutation.RemoveSourceContentIDs(ids...)
	return _u
}

// RemoveSourceContent removes "source_content" edges to GeneratedContent entities.
func (_u *GeneratedContentUpdate) RemoveSourceContent(v ...*GeneratedContent) *GeneratedContentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSourceContentIDs(ids...)
}

// ClearDerivedContent clears all "derived_content" edges to the GeneratedContent entity.
func (_u *GeneratedContentUpdate) ClearDerivedContent() *GeneratedContentUpdate {
	_u.mutation.ClearDerivedContent()
	return _u
}

// RemoveDerivedContentIDs removes the "derived_content" edge to GeneratedContent entities by IDs.
func (_u *GeneratedContentUpdate) RemoveDerivedContentIDs(ids ...string) *GeneratedContentUpdate {
	_u.mutation.RemoveDerivedContentIDs(ids...)
	return _u
}

// RemoveDerivedContent removes "derived_content" edges to GeneratedContent entities.
func (_u *GeneratedContentUpdate) RemoveDerivedContent(v ...*GeneratedContent) *GeneratedContentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDerivedContentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GeneratedContentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GeneratedContentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GeneratedContentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GeneratedContentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GeneratedContentUpdate) check() error {
	if v, ok := _u.mutation.DocumentType(); ok {
		if err := generatedcontent.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "GeneratedContent.document_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentStage(); ok {
		if err := generatedcontent.ContentStageValidator(v); err != nil {
			return &ValidationError{Name: "content_stage", err: fmt.Errorf(`ent: validator failed for field "GeneratedContent.content_stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceType(); ok {
		if err := generatedcontent.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "GeneratedContent.source_type": %w`, err)}
		}
	}
	if _u.mutation.SystemPromptCleared() && len(_u.mutation.SystemPromptIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GeneratedContent.system_prompt"`)
	}
	if _u.mutation.ModelConfigCleared() && len(_u.mutation.ModelConfigIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GeneratedContent.model_config"`)
	}
	return nil
}

func (_u *GeneratedContentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(generatedcontent.Table, generatedcontent.Columns, sqlgraph.NewFieldSpec(generatedcontent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(generatedcontent.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(generatedcontent.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(generatedcontent.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(generatedcontent.FieldContentHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(generatedcontent.FieldDocumentType, field.TypeEnum, value)
	}
	if _u.mutation.DocumentTypeCleared() {
		_spec.ClearField(generatedcontent.FieldDocumentType, field.TypeEnum)
	}
	if value, ok := _u.mutation.FormType(); ok {
		_spec.SetField(generatedcontent.FieldFormType, field.TypeString, value)
	}
	if _u.mutation.FormTypeCleared() {
		_spec.ClearField(generatedcontent.FieldFormType, field.TypeString)
	}
	if value, ok := _u.mutation.ContentStage(); ok {
		_spec.SetField(generatedcontent.FieldContentStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(generatedcontent.FieldSourceType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TotalDuration(); ok {
		_spec.SetField(generatedcontent.FieldTotalDuration, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalDuration(); ok {
		_spec.AddField(generatedcontent.FieldTotalDuration, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(generatedcontent.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(generatedcontent.FieldInputTokens, field.TypeInt, value)
	}
	if _u.mutation.InputTokensCleared() {
		_spec.ClearField(generatedcontent.FieldInputTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(generatedcontent.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(generatedcontent.FieldOutputTokens, field.TypeInt, value)
	}
	if _u.mutation.OutputTokensCleared() {
		_spec.ClearField(generatedcontent.FieldOutputTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.Warning(); ok {
		_spec.SetField(generatedcontent.FieldWarning, field.TypeString, value)
	}
	if _u.mutation.WarningCleared() {
		_spec.ClearField(generatedcontent.FieldWarning, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(generatedcontent.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(generatedcontent.FieldDescription, field.TypeString)
	}
	if _u.mutation.CompanyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   generatedcontent.CompanyTable,
			Columns: []string{generatedcontent.CompanyColumn},
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
			Table:   generatedcontent.CompanyTable,
			Columns: []string{generatedcontent.CompanyColumn},
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
	if _u.mutation.GroupCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   generatedcontent.GroupTable,
			Columns: []string{generatedcontent.GroupColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(companygroup.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GroupIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   generatedcontent.GroupTable,
			Columns: []string{generatedcontent.GroupColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(companygroup.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SourceDocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   generatedcontent.SourceDocumentsTable,
			Columns: generatedcontent.SourceDocumentsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSourceDocumentsIDs(); len(nodes) > 0 && !_u.mutation.SourceDocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   generatedcontent.SourceDocumentsTable,
			Columns: generatedcontent.SourceDocumentsPrimaryKey,
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
	if nodes := _u.mutation.SourceDocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   generatedcontent.SourceDocumentsTable,
			Columns: generatedcontent.SourceDocumentsPrimaryKey,
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
	if _u.mutation.SourceContentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   generatedcontent.SourceContentTable,
			Columns: generatedcontent.SourceContentPrimaryKey,
			Bidi:    true,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generatedcontent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSourceContentIDs(); len(nodes) > 0 && !_u.mutation.SourceContentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   generatedcontent.SourceContentTable,
			Columns: generatedcontent.SourceContentPrimaryKey,
			Bidi:    true,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generatedcontent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SourceContentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   generatedcontent.SourceContentTable,
			Columns: generatedcontent.SourceContentPrimaryKey,
			Bidi:    true,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generatedcontent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DerivedContentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   generatedcontent.DerivedContentTable,
			Columns: generatedcontent.DerivedContentPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generatedcontent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDerivedContentIDs(); len(nodes) > 0 && !_u.mutation.DerivedContentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   generatedcontent.DerivedContentTable,
			Columns: generatedcontent.DerivedContentPrimaryKey,
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
	if nodes := _u.mutation.DerivedContentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   generatedcontent.DerivedContentTable,
			Columns: generatedcontent.DerivedContentPrimaryKey,
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
			err = &NotFoundError{generatedcontent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GeneratedContentUpdateOne is the builder for updating a single GeneratedContent entity.
type GeneratedContentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GeneratedContentMutation
}

// SetContent sets the "content" field.
func (_u *GeneratedContentUpdateOne) SetContent(v string) *GeneratedContentUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *GeneratedContentUpdateOne) SetNillableContent(v *string) *GeneratedContentUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *GeneratedContentUpdateOne) SetSummary(v string) *GeneratedContentUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *GeneratedContentUpdateOne) SetNillableSummary(v *string) *GeneratedContentUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *GeneratedContentUpdateOne) ClearSummary() *GeneratedContentUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *GeneratedContentUpdateOne) SetContentHash(v string) *GeneratedContentUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *GeneratedContentUpdateOne) SetNillableContentHash(v *string) *GeneratedContentUpdateOne {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *GeneratedContentUpdateOne) SetCompanyID(v string) *GeneratedContentUpdateOne {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *GeneratedContentUpdateOne) SetNillableCompanyID(v *string) *GeneratedContentUpdateOne {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// ClearCompanyID clears the value of the "company_id" field.
func (_u *GeneratedContentUpdateOne) ClearCompanyID() *GeneratedContentUpdateOne {
	_u.mutation.ClearCompanyID()
	return _u
}

// SetGroupID sets the "group_id" field.
func (_u *GeneratedContentUpdateOne) SetGroupID(v string) *GeneratedContentUpdateOne {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *GeneratedContentUpdateOne) SetNillableGroupID(v *string) *GeneratedContentUpdateOne {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// ClearGroupID clears the value of the "group_id" field.
func (_u *GeneratedContentUpdateOne) ClearGroupID() *GeneratedContentUpdateOne {
	_u.mutation.ClearGroupID()
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *GeneratedContentUpdateOne) SetDocumentType(v generatedcontent.DocumentType) *GeneratedContentUpdateOne {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *GeneratedContentUpdateOne) SetNillableDocumentType(v *generatedcontent.DocumentType) *GeneratedContentUpdateOne {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// ClearDocumentType clears the value of the "document_type" field.
func (_u *GeneratedContentUpdateOne) ClearDocumentType() *GeneratedContentUpdateOne {
	_u.mutation.ClearDocumentType()
	return _u
}

// SetFormType sets the "form_type" field.
func (_u *GeneratedContentUpdateOne) SetFormType(v string) *GeneratedContentUpdateOne {
	_u.mutation.SetFormType(v)
	return _u
}

// SetNillableFormType sets the "form_type" field if the given value is not nil.
func (_u *GeneratedContentUpdateOne) SetNillableFormType(v *string) *GeneratedContentUpdateOne {
	if v != nil {
		_u.SetFormType(*v)
	}
	return _u
}

// ClearFormType clears the value of the "form_type" field.
func (_u *GeneratedContentUpdateOne) ClearFormType() *GeneratedContentUpdateOne {
	_u.mutation.ClearFormType()
	return _u
}

// SetContentStage sets the "content_stage" field.
func (_u *GeneratedContentUpdateOne) SetContentStage(v generatedcontent.ContentStage) *GeneratedContentUpdateOne {
	_u.mutation.SetContentStage(v)
	return _u
}

// SetNillableContentStage sets the "content_stage" field if the given value is not nil.
func (_u *GeneratedContentUpdateOne) SetNillableContentStage(v *generatedcontent.ContentStage) *GeneratedContentUpdateOne {
	if v != nil {
		_u.SetContentStage(*v)
	}
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *GeneratedContentUpdateOne) SetSourceType(v generatedcontent.SourceType) *GeneratedContentUpdateOne {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *GeneratedContentUpdateOne) SetNillableSourceType(v *generatedcontent.SourceType) *GeneratedContentUpdateOne {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetTotalDuration sets the "total_duration" field.
func (_u *GeneratedContentUpdateOne) SetTotalDuration(v float64) *GeneratedContentUpdateOne {
	_u.mutation.ResetTotalDuration()
	_u.mutation.SetTotalDuration(v)
	return _u
}

// SetNillableTotalDuration sets the "total_duration" field if the given value is not nil.
func (_u *GeneratedContentUpdateOne) SetNillableTotalDuration(v *float64) *GeneratedContentUpdateOne {
	if v != nil {
		_u.SetTotalDuration(*v)
	}
	return _u
}

// AddTotalDuration adds value to the "total_duration" field.
func (_u *GeneratedContentUpdateOne) AddTotalDuration(v float64) *GeneratedContentUpdateOne {
	_u.mutation.AddTotalDuration(v)
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *GeneratedContentUpdateOne) SetInputTokens(v int) *GeneratedContentUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *GeneratedContentUpdateOne) SetNillableInputTokens(v *int) *GeneratedContentUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *GeneratedContentUpdateOne) AddInputTokens(v int) *GeneratedContentUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// ClearInputTokens clears the value of the "input_tokens" field.
func (_u *GeneratedContentUpdateOne) ClearInputTokens() *GeneratedContentUpdateOne {
	_u.mutation.ClearInputTokens()
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *GeneratedContentUpdateOne) SetOutputTokens(v int) *GeneratedContentUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *GeneratedContentUpdateOne) SetNillableOutputTokens(v *int) *GeneratedContentUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *GeneratedContentUpdateOne) AddOutputTokens(v int) *GeneratedContentUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// ClearOutputTokens clears the value of the "output_tokens" field.
func (_u *GeneratedContentUpdateOne) ClearOutputTokens() *GeneratedContentUpdateOne {
	_u.mutation.ClearOutputTokens()
	return _u
}

// SetWarning sets the "warning" field.
func (_u *GeneratedContentUpdateOne) SetWarning(v string) *GeneratedContentUpdateOne {
	_u.mutation.SetWarning(v)
	return _u
}

// SetNillableWarning sets the "warning" field if the given value is not nil.
func (_u *GeneratedContentUpdateOne) SetNillableWarning(v *string) *GeneratedContentUpdateOne {
	if v != nil {
		_u.SetWarning(*v)
	}
	return _u
}

// ClearWarning clears the value of the "warning" field.
func (_u *GeneratedContentUpdateOne) ClearWarning() *GeneratedContentUpdateOne {
	_u.mutation.ClearWarning()
	return _u
}

// SetDescription sets the "description" field.
func (_u *GeneratedContentUpdateOne) SetDescription(v string) *GeneratedContentUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *GeneratedContentUpdateOne) SetNillableDescription(v *string) *GeneratedContentUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *GeneratedContentUpdateOne) ClearDescription() *GeneratedContentUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetCompany sets the "company" edge to the Company entity.
func (_u *GeneratedContentUpdateOne) SetCompany(v *Company) *GeneratedContentUpdateOne {
	return _u.SetCompanyID(v.ID)
}

// SetGroup sets the "group" edge to the CompanyGroup entity.
func (_u *GeneratedContentUpdateOne) SetGroup(v *CompanyGroup) *GeneratedContentUpdateOne {
	return _u.SetGroupID(v.ID)
}

// AddSourceDocumentIDs adds the "source_documents" edge to the Document entity by IDs.
func (_u *GeneratedContentUpdateOne) AddSourceDocumentIDs(ids ...string) *GeneratedContentUpdateOne {
	_u.mutation.AddSourceDocumentIDs(ids...)
	return _u
}

// AddSourceDocuments adds the "source_documents" edges to the Document entity.
func (_u *GeneratedContentUpdateOne) AddSourceDocuments(v ...*Document) *GeneratedContentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSourceDocumentIDs(ids...)
}

// AddSourceContentIDs adds the "source_content" edge to the GeneratedContent entity by IDs.
func (_u *GeneratedContentUpdateOne) AddSourceContentIDs(ids ...string) *GeneratedContentUpdateOne {
	_u.mutation.AddSourceContentIDs(ids...)
	return _u
}

// AddSourceContent adds the "source_content" edges to the GeneratedContent entity.
func (_u *GeneratedContentUpdateOne) AddSourceContent(v ...*GeneratedContent) *GeneratedContentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSourceContentIDs(ids...)
}

// AddDerivedContentIDs adds the "derived_content" edge to the GeneratedContent entity by IDs.
func (_u *GeneratedContentUpdateOne) AddDerivedContentIDs(ids ...string) *GeneratedContentUpdateOne {
	_u.mutation.AddDerivedContentIDs(ids...)
	return _u
}

// AddDerivedContent adds the "derived_content" edges to the GeneratedContent entity.
func (_u *GeneratedContentUpdateOne) AddDerivedContent(v ...*GeneratedContent) *GeneratedContentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDerivedContentIDs(ids...)
}

// Mutation returns the GeneratedContentMutation object of the builder.
func (_u *GeneratedContentUpdateOne) Mutation() *GeneratedContentMutation {
	return _u.mutation
}

// ClearCompany clears the "company" edge to the Company entity.
func (_u *GeneratedContentUpdateOne) ClearCompany() *GeneratedContentUpdateOne {
	_u.mutation.ClearCompany()
	return _u
}

// ClearGroup clears the "group" edge to the CompanyGroup entity.
func (_u *GeneratedContentUpdateOne) ClearGroup() *GeneratedContentUpdateOne {
	_u.mutation.ClearGroup()
	return _u
}

// ClearSourceDocuments clears all "source_documents" edges to the Document entity.
func (_u *GeneratedContentUpdateOne) ClearSourceDocuments() *GeneratedContentUpdateOne {
	_u.mutation.ClearSourceDocuments()
	return _u
}

// RemoveSourceDocumentIDs removes the "source_documents" edge to Document entities by IDs.
func (_u *GeneratedContentUpdateOne) RemoveSourceDocumentIDs(ids ...string) *GeneratedContentUpdateOne {
	_u.mutation.RemoveSourceDocumentIDs(ids...)
	return _u
}

// RemoveSourceDocuments removes "source_documents" edges to Document entities.
func (_u *GeneratedContentUpdateOne) RemoveSourceDocuments(v ...*Document) *GeneratedContentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSourceDocumentIDs(ids...)
}

// ClearSourceContent clears all "source_content" edges to the GeneratedContent entity.
func (_u *GeneratedContentUpdateOne) ClearSourceContent() *GeneratedContentUpdateOne {
	_u.mutation.ClearSourceContent()
	return _u
}

// RemoveSourceContentIDs removes the "source_content" edge to GeneratedContent entities by IDs.
func (_u *GeneratedContentUpdateOne) RemoveSourceContentIDs(ids ...string) *GeneratedContentUpdateOne {
	_u.mutation.RemoveSourceContentIDs(ids...)
	return _u
}

// RemoveSourceContent removes "source_content" edges to GeneratedContent entities.
func (_u *GeneratedContentUpdateOne) RemoveSourceContent(v ...*GeneratedContent) *GeneratedContentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSourceContentIDs(ids...)
}

// ClearDerivedContent clears all "derived_content" edges to the GeneratedContent entity.
func (_u *GeneratedContentUpdateOne) ClearDerivedContent() *GeneratedContentUpdateOne {
	_u.mutation.ClearDerivedContent()
	return _u
}

// RemoveDerivedContentIDs removes the "derived_content" edge to GeneratedContent entities by IDs.
func (_u *GeneratedContentUpdateOne) RemoveDerivedContentIDs(ids ...string) *GeneratedContentUpdateOne {
	_u.mutation.RemoveDerivedContentIDs(ids...)
	return _u
}

// RemoveDerivedContent removes "derived_content" edges to GeneratedContent entities.
func (_u *GeneratedContentUpdateOne) RemoveDerivedContent(v ...*GeneratedContent) *GeneratedContentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDerivedContentIDs(ids...)
}

// Where appends a list predicates to the GeneratedContentUpdate builder.
func (_u *GeneratedContentUpdateOne) Where(ps ...predicate.GeneratedContent) *GeneratedContentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GeneratedContentUpdateOne) Select(field string, fields ...string) *GeneratedContentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GeneratedContent entity.
func (_u *GeneratedContentUpdateOne) Save(ctx context.Context) (*GeneratedContent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GeneratedContentUpdateOne) SaveX(ctx context.Context) *GeneratedContent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GeneratedContentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GeneratedContentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GeneratedContentUpdateOne) check() error {
	if v, ok := _u.mutation.DocumentType(); ok {
		if err := generatedcontent.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "GeneratedContent.document_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentStage(); ok {
		if err := generatedcontent.ContentStageValidator(v); err != nil {
			return &ValidationError{Name: "content_stage", err: fmt.Errorf(`ent: validator failed for field "GeneratedContent.content_stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceType(); ok {
		if err := generatedcontent.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "GeneratedContent.source_type": %w`, err)}
		}
	}
	if _u.mutation.SystemPromptCleared() && len(_u.mutation.SystemPromptIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GeneratedContent.system_prompt"`)
	}
	if _u.mutation.ModelConfigCleared() && len(_u.mutation.ModelConfigIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GeneratedContent.model_config"`)
	}
	return nil
}

func (_u *GeneratedContentUpdateOne) sqlSave(ctx context.Context) (_node *GeneratedContent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(generatedcontent.Table, generatedcontent.Columns, sqlgraph.NewFieldSpec(generatedcontent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GeneratedContent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, generatedcontent.FieldID)
		for _, f := range fields {
			if !generatedcontent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != generatedcontent.FieldID {
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
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(generatedcontent.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(generatedcontent.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(generatedcontent.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(generatedcontent.FieldContentHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(generatedcontent.FieldDocumentType, field.TypeEnum, value)
	}
	if _u.mutation.DocumentTypeCleared() {
		_spec.ClearField(generatedcontent.FieldDocumentType, field.TypeEnum)
	}
	if value, ok := _u.mutation.FormType(); ok {
		_spec.SetField(generatedcontent.FieldFormType, field.TypeString, value)
	}
	if _u.mutation.FormTypeCleared() {
		_spec.ClearField(generatedcontent.FieldFormType, field.TypeString)
	}
	if value, ok := _u.mutation.ContentStage(); ok {
		_spec.SetField(generatedcontent.FieldContentStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(generatedcontent.FieldSourceType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TotalDuration(); ok {
		_spec.SetField(generatedcontent.FieldTotalDuration, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalDuration(); ok {
		_spec.AddField(generatedcontent.FieldTotalDuration, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(generatedcontent.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(generatedcontent.FieldInputTokens, field.TypeInt, value)
	}
	if _u.mutation.InputTokensCleared() {
		_spec.ClearField(generatedcontent.FieldInputTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(generatedcontent.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(generatedcontent.FieldOutputTokens, field.TypeInt, value)
	}
	if _u.mutation.OutputTokensCleared() {
		_spec.ClearField(generatedcontent.FieldOutputTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.Warning(); ok {
		_spec.SetField(generatedcontent.FieldWarning, field.TypeString, value)
	}
	if _u.mutation.WarningCleared() {
		_spec.ClearField(generatedcontent.FieldWarning, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(generatedcontent.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(generatedcontent.FieldDescription, field.TypeString)
	}
	if _u.mutation.CompanyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   generatedcontent.CompanyTable,
			Columns: []string{generatedcontent.CompanyColumn},
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
			Table:   generatedcontent.CompanyTable,
			Columns: []string{generatedcontent.CompanyColumn},
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
	if _u.mutation.GroupCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   generatedcontent.GroupTable,
			Columns: []string{generatedcontent.GroupColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(companygroup.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GroupIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   generatedcontent.GroupTable,
			Columns: []string{generatedcontent.GroupColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(companygroup.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SourceDocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   generatedcontent.SourceDocumentsTable,
			Columns: generatedcontent.SourceDocumentsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSourceDocumentsIDs(); len(nodes) > 0 && !_u.mutation.SourceDocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   generatedcontent.SourceDocumentsTable,
			Columns: generatedcontent.SourceDocumentsPrimaryKey,
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
	if nodes := _u.mutation.SourceDocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   generatedcontent.SourceDocumentsTable,
			Columns: generatedcontent.SourceDocumentsPrimaryKey,
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
	if _u.mutation.SourceContentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   generatedcontent.SourceContentTable,
			Columns: generatedcontent.SourceContentPrimaryKey,
			Bidi:    true,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generatedcontent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSourceContentIDs(); len(nodes) > 0 && !_u.mutation.SourceContentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   generatedcontent.SourceContentTable,
			Columns: generatedcontent.SourceContentPrimaryKey,
			Bidi:    true,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generatedcontent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SourceContentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   generatedcontent.SourceContentTable,
			Columns: generatedcontent.SourceContentPrimaryKey,
			Bidi:    true,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generatedcontent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DerivedContentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   generatedcontent.DerivedContentTable,
			Columns: generatedcontent.DerivedContentPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generatedcontent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDerivedContentIDs(); len(nodes) > 0 && !_u.mutation.DerivedContentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   generatedcontent.DerivedContentTable,
			Columns: generatedcontent.DerivedContentPrimaryKey,
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
	if nodes := _u.mutation.DerivedContentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   generatedcontent.DerivedContentTable,
			Columns: generatedcontent.DerivedContentPrimaryKey,
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
	_node = &GeneratedContent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generatedcontent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
