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
	"github.com/filinglens/filinglens/ent/companygroup"
	"github.com/filinglens/filinglens/ent/document"
	"github.com/filinglens/filinglens/ent/generatedcontent"
	"github.com/filinglens/filinglens/ent/modelconfig"
	"github.com/filinglens/filinglens/ent/prompt"
)

// GeneratedContentCreate is the builder for creating a GeneratedContent entity.
type GeneratedContentCreate struct {
	config
	mutation *GeneratedContentMutation
	hooks    []Hook
}

// SetContent sets the "content" field.
func (_c *GeneratedContentCreate) SetContent(v string) *GeneratedContentCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *GeneratedContentCreate) SetSummary(v string) *GeneratedContentCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *GeneratedContentCreate) SetNillableSummary(v *string) *GeneratedContentCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *GeneratedContentCreate) SetContentHash(v string) *GeneratedContentCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetCompanyID sets the "company_id" field.
func (_c *GeneratedContentCreate) SetCompanyID(v string) *GeneratedContentCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_c *GeneratedContentCreate) SetNillableCompanyID(v *string) *GeneratedContentCreate {
	if v != nil {
		_c.SetCompanyID(*v)
	}
	return _c
}

// SetGroupID sets the "group_id" field.
func (_c *GeneratedContentCreate) SetGroupID(v string) *GeneratedContentCreate {
	_c.mutation.SetGroupID(v)
	return _c
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_c *GeneratedContentCreate) SetNillableGroupID(v *string) *GeneratedContentCreate {
	if v != nil {
		_c.SetGroupID(*v)
	}
	return _c
}

// SetDocumentType sets the "document_type" field.
func (_c *GeneratedContentCreate) SetDocumentType(v generatedcontent.DocumentType) *GeneratedContentCreate {
	_c.mutation.SetDocumentType(v)
	return _c
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_c *GeneratedContentCreate) SetNillableDocumentType(v *generatedcontent.DocumentType) *GeneratedContentCreate {
	if v != nil {
		_c.SetDocumentType(*v)
	}
	return _c
}

// SetFormType sets the "form_type" field.
func (_c *GeneratedContentCreate) SetFormType(v string) *GeneratedContentCreate {
	_c.mutation.SetFormType(v)
	return _c
}

// SetNillableFormType sets the "form_type" field if the given value is not nil.
func (_c *GeneratedContentCreate) SetNillableFormType(v *string) *GeneratedContentCreate {
	if v != nil {
		_c.SetFormType(*v)
	}
	return _c
}

// SetContentStage sets the "content_stage" field.
func (_c *GeneratedContentCreate) SetContentStage(v generatedcontent.ContentStage) *GeneratedContentCreate {
	_c.mutation.SetContentStage(v)
	return _c
}

// SetSourceType sets the "source_type" field.
func (_c *GeneratedContentCreate) SetSourceType(v generatedcontent.SourceType) *GeneratedContentCreate {
	_c.mutation.SetSourceType(v)
	return _c
}

// SetSystemPromptID sets the "system_prompt_id" field.
func (_c *GeneratedContentCreate) SetSystemPromptID(v string) *GeneratedContentCreate {
	_c.mutation.SetSystemPromptID(v)
	return _c
}

// SetModelConfigID sets the "model_config_id" field.
func (_c *GeneratedContentCreate) SetModelConfigID(v string) *GeneratedContentCreate {
	_c.mutation.SetModelConfigID(v)
	return _c
}

// SetTotalDuration sets the "total_duration" field.
func (_c *GeneratedContentCreate) SetTotalDuration(v float64) *GeneratedContentCreate {
	_c.mutation.SetTotalDuration(v)
	return _c
}

// SetNillableTotalDuration sets the "total_duration" field if the given value is not nil.
func (_c *GeneratedContentCreate) SetNillableTotalDuration(v *float64) *GeneratedContentCreate {
	if v != nil {
		_c.SetTotalDuration(*v)
	}
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *GeneratedContentCreate) SetInputTokens(v int) *GeneratedContentCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *GeneratedContentCreate) SetNillableInputTokens(v *int) *GeneratedContentCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *GeneratedContentCreate) SetOutputTokens(v int) *GeneratedContentCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *GeneratedContentCreate) SetNillableOutputTokens(v *int) *GeneratedContentCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetWarning sets the "warning" field.
func (_c *GeneratedContentCreate) SetWarning(v string) *GeneratedContentCreate {
	_c.mutation.SetWarning(v)
	return _c
}

// SetNillableWarning sets the "warning" field if the given value is not nil.
func (_c *GeneratedContentCreate) SetNillableWarning(v *string) *GeneratedContentCreate {
	if v != nil {
		_c.SetWarning(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *GeneratedContentCreate) SetDescription(v string) *GeneratedContentCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *GeneratedContentCreate) SetNillableDescription(v *string) *GeneratedContentCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GeneratedContentCreate) SetCreatedAt(v time.Time) *GeneratedContentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GeneratedContentCreate) SetNillableCreatedAt(v *time.Time) *GeneratedContentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GeneratedContentCreate) SetID(v string) *GeneratedContentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetCompany sets the "company" edge to the Company entity.
func (_c *GeneratedContentCreate) SetCompany(v *Company) *GeneratedContentCreate {
	return _c.SetCompanyID(v.ID)
}

// SetGroup sets the "group" edge to the CompanyGroup entity.
func (_c *GeneratedContentCreate) SetGroup(v *CompanyGroup) *GeneratedContentCreate {
	return _c.SetGroupID(v.ID)
}

// SetSystemPrompt sets the "system_prompt" edge to the Prompt entity.
func (_c *GeneratedContentCreate) SetSystemPrompt(v *Prompt) *GeneratedContentCreate {
	return _c.SetSystemPromptID(v.ID)
}

// SetModelConfig sets the "model_config" edge to the ModelConfig entity.
func (_c *GeneratedContentCreate) SetModelConfig(v *ModelConfig) *GeneratedContentCreate {
	return _c.SetModelConfigID(v.ID)
}

// AddSourceDocumentIDs adds the "source_documents" edge to the Document entity by IDs.
func (_c *GeneratedContentCreate) AddSourceDocumentIDs(ids ...string) *GeneratedContentCreate {
	_c.mutation.AddSourceDocumentIDs(ids...)
	return _c
}

// AddSourceDocuments adds the "source_documents" edges to the Document entity.
func (_c *GeneratedContentCreate) AddSourceDocuments(v ...*Document) *GeneratedContentCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSourceDocumentIDs(ids...)
}

// AddSourceContentIDs adds the "source_content" edge to the GeneratedContent entity by IDs.
func (_c *GeneratedContentCreate) AddSourceContentIDs(ids ...string) *GeneratedContentCreate {
	_c.mutation.AddSourceContentIDs(ids...)
	return _c
}

// AddSourceContent adds the "source_content" edges to the GeneratedContent entity.
func (_c *GeneratedContentCreate) AddSourceContent(v ...*GeneratedContent) *GeneratedContentCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSourceContentIDs(ids...)
}

// AddDerivedContentIDs adds the "derived_content" edge to the GeneratedContent entity by IDs.
func (_c *GeneratedContentCreate) AddDerivedContentIDs(ids ...string) *GeneratedContentCreate {
	_c.mutation.AddDerivedContentIDs(ids...)
	return _c
}

// AddDerivedContent adds the "derived_content" edges to the GeneratedContent entity.
func (_c *GeneratedContentCreate) AddDerivedContent(v ...*GeneratedContent) *GeneratedContentCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDerivedContentIDs(ids...)
}

// Mutation returns the GeneratedContentMutation object of the builder.
func (_c *GeneratedContentCreate) Mutation() *GeneratedContentMutation {
	return _c.mutation
}

// Save creates the GeneratedContent in the database.
func (_c *GeneratedContentCreate) Save(ctx context.Context) (*GeneratedContent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GeneratedContentCreate) SaveX(ctx context.Context) *GeneratedContent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GeneratedContentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GeneratedContentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GeneratedContentCreate) defaults() {
	if _, ok := _c.mutation.TotalDuration(); !ok {
		v := generatedcontent.DefaultTotalDuration
		_c.mutation.SetTotalDuration(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := generatedcontent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GeneratedContentCreate) check() error {
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "GeneratedContent.content"`)}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "GeneratedContent.content_hash"`)}
	}
	if v, ok := _c.mutation.DocumentType(); ok {
		if err := generatedcontent.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "GeneratedContent.document_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentStage(); !ok {
		return &ValidationError{Name: "content_stage", err: errors.New(`ent: missing required field "GeneratedContent.content_stage"`)}
	}
	if v, ok := _c.mutation.ContentStage(); ok {
		if err := generatedcontent.ContentStageValidator(v); err != nil {
			return &ValidationError{Name: "content_stage", err: fmt.Errorf(`ent: validator failed for field "GeneratedContent.content_stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceType(); !ok {
		return &ValidationError{Name: "source_type", err: errors.New(`ent: missing required field "GeneratedContent.source_type"`)}
	}
	if v, ok := _c.mutation.SourceType(); ok {
		if err := generatedcontent.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "GeneratedContent.source_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SystemPromptID(); !ok {
		return &ValidationError{Name: "system_prompt_id", err: errors.New(`ent: missing required field "GeneratedContent.system_prompt_id"`)}
	}
	if _, ok := _c.mutation.ModelConfigID(); !ok {
		return &ValidationError{Name: "model_config_id", err: errors.New(`ent: missing required field "GeneratedContent.model_config_id"`)}
	}
	if _, ok := _c.mutation.TotalDuration(); !ok {
		return &ValidationError{Name: "total_duration", err: errors.New(`ent: missing required field "GeneratedContent.total_duration"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GeneratedContent.created_at"`)}
	}
	if len(_c.mutation.SystemPromptIDs()) == 0 {
		return &ValidationError{Name: "system_prompt", err: errors.New(`ent: missing required edge "GeneratedContent.system_prompt"`)}
	}
	if len(_c.mutation.ModelConfigIDs()) == 0 {
		return &ValidationError{Name: "model_config", err: errors.New(`ent: missing required edge "GeneratedContent.model_config"`)}
	}
	return nil
}

func (_c *GeneratedContentCreate) sqlSave(ctx context.Context) (*GeneratedContent, error) {
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
			return nil, fmt.Errorf("unexpected GeneratedContent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GeneratedContentCreate) createSpec() (*GeneratedContent, *sqlgraph.CreateSpec) {
	var (
		_node = &GeneratedContent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(generatedcontent.Table, sqlgraph.NewFieldSpec(generatedcontent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(generatedcontent.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(generatedcontent.FieldSummary, field.TypeString, value)
		_node.Summary = &value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(generatedcontent.FieldContentHash, field.TypeString, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.DocumentType(); ok {
		_spec.SetField(generatedcontent.FieldDocumentType, field.TypeEnum, value)
		_node.DocumentType = &value
	}
	if value, ok := _c.mutation.FormType(); ok {
		_spec.SetField(generatedcontent.FieldFormType, field.TypeString, value)
		_node.FormType = &value
	}
	if value, ok := _c.mutation.ContentStage(); ok {
		_spec.SetField(generatedcontent.FieldContentStage, field.TypeEnum, value)
		_node.ContentStage = value
	}
	if value, ok := _c.mutation.SourceType(); ok {
		_spec.SetField(generatedcontent.FieldSourceType, field.TypeEnum, value)
		_node.SourceType = value
	}
	if value, ok := _c.mutation.TotalDuration(); ok {
		_spec.SetField(generatedcontent.FieldTotalDuration, field.TypeFloat64, value)
		_node.TotalDuration = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(generatedcontent.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = &value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(generatedcontent.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = &value
	}
	if value, ok := _c.mutation.Warning(); ok {
		_spec.SetField(generatedcontent.FieldWarning, field.TypeString, value)
		_node.Warning = &value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(generatedcontent.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(generatedcontent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.CompanyIDs(); len(nodes) > 0 {
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
		_node.CompanyID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.GroupIDs(); len(nodes) > 0 {
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
		_node.GroupID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SystemPromptIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   generatedcontent.SystemPromptTable,
			Columns: []string{generatedcontent.SystemPromptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prompt.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SystemPromptID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ModelConfigIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   generatedcontent.ModelConfigTable,
			Columns: []string{generatedcontent.ModelConfigColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(modelconfig.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ModelConfigID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SourceDocumentsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SourceContentIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DerivedContentIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// GeneratedContentCreateBulk is the builder for creating many GeneratedContent entities in bulk.
type GeneratedContentCreateBulk struct {
	config
	err      error
	builders []*GeneratedContentCreate
}

// Save creates the GeneratedContent entities in the database.
func (_c *GeneratedContentCreateBulk) Save(ctx context.Context) ([]*GeneratedContent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GeneratedContent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GeneratedContentMutation)
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
func (_c *GeneratedContentCreateBulk) SaveX(ctx context.Context) []*GeneratedContent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GeneratedContentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GeneratedContentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
