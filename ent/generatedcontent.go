// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/filinglens/filinglens/ent/company"
	"github.com/filinglens/filinglens/ent/companygroup"
	"github.com/filinglens/filinglens/ent/generatedcontent"
	"github.com/filinglens/filinglens/ent/modelconfig"
	"github.com/filinglens/filinglens/ent/prompt"
)

// GeneratedContent is the model entity for the GeneratedContent schema.
type GeneratedContent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// Optional condensed form, set via controlled update
	Summary *string `json:"summary,omitempty"`
	// SHA-256 hex digest of content
	ContentHash string `json:"content_hash,omitempty"`
	// CompanyID holds the value of the "company_id" field.
	CompanyID *string `json:"company_id,omitempty"`
	// GroupID holds the value of the "group_id" field.
	GroupID *string `json:"group_id,omitempty"`
	// DocumentType holds the value of the "document_type" field.
	DocumentType *generatedcontent.DocumentType `json:"document_type,omitempty"`
	// FormType holds the value of the "form_type" field.
	FormType *string `json:"form_type,omitempty"`
	// ContentStage holds the value of the "content_stage" field.
	ContentStage generatedcontent.ContentStage `json:"content_stage,omitempty"`
	// SourceType holds the value of the "source_type" field.
	SourceType generatedcontent.SourceType `json:"source_type,omitempty"`
	// SystemPromptID holds the value of the "system_prompt_id" field.
	SystemPromptID string `json:"system_prompt_id,omitempty"`
	// ModelConfigID holds the value of the "model_config_id" field.
	ModelConfigID string `json:"model_config_id,omitempty"`
	// Observed completion duration in seconds
	TotalDuration float64 `json:"total_duration,omitempty"`
	// InputTokens holds the value of the "input_tokens" field.
	InputTokens *int `json:"input_tokens,omitempty"`
	// OutputTokens holds the value of the "output_tokens" field.
	OutputTokens *int `json:"output_tokens,omitempty"`
	// Opaque warning propagated from the completer
	Warning *string `json:"warning,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the GeneratedContentQuery when eager-loading is set.
	Edges        GeneratedContentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// GeneratedContentEdges holds the relations/edges for other nodes in the graph.
type GeneratedContentEdges struct {
	// Company holds the value of the company edge.
	Company *Company `json:"company,omitempty"`
	// Group holds the value of the group edge.
	Group *CompanyGroup `json:"group,omitempty"`
	// SystemPrompt holds the value of the system_prompt edge.
	SystemPrompt *Prompt `json:"system_prompt,omitempty"`
	// ModelConfig holds the value of the model_config edge.
	ModelConfig *ModelConfig `json:"model_config,omitempty"`
	// SourceDocuments holds the value of the source_documents edge.
	SourceDocuments []*Document `json:"source_documents,omitempty"`
	// SourceContent holds the value of the source_content edge.
	SourceContent []*GeneratedContent `json:"source_content,omitempty"`
	// DerivedContent holds the value of the derived_content edge.
	DerivedContent []*GeneratedContent `json:"derived_content,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [7]bool
}

// CompanyOrErr returns the Company value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GeneratedContentEdges) CompanyOrErr() (*Company, error) {
	if e.Company != nil {
		return e.Company, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: company.Label}
	}
	return nil, &NotLoadedError{edge: "company"}
}

// GroupOrErr returns the Group value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GeneratedContentEdges) GroupOrErr() (*CompanyGroup, error) {
	if e.Group != nil {
		return e.Group, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: companygroup.Label}
	}
	return nil, &NotLoadedError{edge: "group"}
}

// SystemPromptOrErr returns the SystemPrompt value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GeneratedContentEdges) SystemPromptOrErr() (*Prompt, error) {
	if e.SystemPrompt != nil {
		return e.SystemPrompt, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: prompt.Label}
	}
	return nil, &NotLoadedError{edge: "system_prompt"}
}

// ModelConfigOrErr returns the ModelConfig value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GeneratedContentEdges) ModelConfigOrErr() (*ModelConfig, error) {
	if e.ModelConfig != nil {
		return e.ModelConfig, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: modelconfig.Label}
	}
	return nil, &NotLoadedError{edge: "model_config"}
}

// SourceDocumentsOrErr returns the SourceDocuments value or an error if the edge
// was not loaded in eager-loading.
func (e GeneratedContentEdges) SourceDocumentsOrErr() ([]*Document, error) {
	if e.loadedTypes[4] {
		return e.SourceDocuments, nil
	}
	return nil, &NotLoadedError{edge: "source_documents"}
}

// SourceContentOrErr returns the SourceContent value or an error if the edge
// was not loaded in eager-loading.
func (e GeneratedContentEdges) SourceContentOrErr() ([]*GeneratedContent, error) {
	if e.loadedTypes[5] {
		return e.SourceContent, nil
	}
	return nil, &NotLoadedError{edge: "source_content"}
}

// DerivedContentOrErr returns the DerivedContent value or an error if the edge
// was not loaded in eager-loading.
func (e GeneratedContentEdges) DerivedContentOrErr() ([]*GeneratedContent, error) {
	if e.loadedTypes[6] {
		return e.DerivedContent, nil
	}
	return nil, &NotLoadedError{edge: "derived_content"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GeneratedContent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case generatedcontent.FieldTotalDuration:
			values[i] = new(sql.NullFloat64)
		case generatedcontent.FieldInputTokens, generatedcontent.FieldOutputTokens:
			values[i] = new(sql.NullInt64)
		case generatedcontent.FieldID, generatedcontent.FieldContent, generatedcontent.FieldSummary, generatedcontent.FieldContentHash, generatedcontent.FieldCompanyID, generatedcontent.FieldGroupID, generatedcontent.FieldDocumentType, generatedcontent.FieldFormType, generatedcontent.FieldContentStage, generatedcontent.FieldSourceType, generatedcontent.FieldSystemPromptID, generatedcontent.FieldModelConfigID, generatedcontent.FieldWarning, generatedcontent.FieldDescription:
			values[i] = new(sql.NullString)
		case generatedcontent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GeneratedContent fields.
func (_m *GeneratedContent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case generatedcontent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case generatedcontent.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case generatedcontent.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = new(string)
				*_m.Summary = value.String
			}
		case generatedcontent.FieldContentHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value.Valid {
				_m.ContentHash = value.String
			}
		case generatedcontent.FieldCompanyID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company_id", values[i])
			} else if value.Valid {
				_m.CompanyID = new(string)
				*_m.CompanyID = value.String
			}
		case generatedcontent.FieldGroupID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field group_id", values[i])
			} else if value.Valid {
				_m.GroupID = new(string)
				*_m.GroupID = value.String
			}
		case generatedcontent.FieldDocumentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_type", values[i])
			} else if value.Valid {
				_m.DocumentType = new(generatedcontent.DocumentType)
				*_m.DocumentType = generatedcontent.DocumentType(value.String)
			}
		case generatedcontent.FieldFormType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field form_type", values[i])
			} else if value.Valid {
				_m.FormType = new(string)
				*_m.FormType = value.String
			}
		case generatedcontent.FieldContentStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_stage", values[i])
			} else if value.Valid {
				_m.ContentStage = generatedcontent.ContentStage(value.String)
			}
		case generatedcontent.FieldSourceType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_type", values[i])
			} else if value.Valid {
				_m.SourceType = generatedcontent.SourceType(value.String)
			}
		case generatedcontent.FieldSystemPromptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field system_prompt_id", values[i])
			} else if value.Valid {
				_m.SystemPromptID = value.String
			}
		case generatedcontent.FieldModelConfigID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_config_id", values[i])
			} else if value.Valid {
				_m.ModelConfigID = value.String
			}
		case generatedcontent.FieldTotalDuration:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_duration", values[i])
			} else if value.Valid {
				_m.TotalDuration = value.Float64
			}
		case generatedcontent.FieldInputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field input_tokens", values[i])
			} else if value.Valid {
				_m.InputTokens = new(int)
				*_m.InputTokens = int(value.Int64)
			}
		case generatedcontent.FieldOutputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field output_tokens", values[i])
			} else if value.Valid {
				_m.OutputTokens = new(int)
				*_m.OutputTokens = int(value.Int64)
			}
		case generatedcontent.FieldWarning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field warning", values[i])
			} else if value.Valid {
				_m.Warning = new(string)
				*_m.Warning = value.String
			}
		case generatedcontent.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case generatedcontent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GeneratedContent.
// This includes values selected through modifiers, order, etc.
func (_m *GeneratedContent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCompany queries the "company" edge of the GeneratedContent entity.
func (_m *GeneratedContent) QueryCompany() *CompanyQuery {
	return NewGeneratedContentClient(_m.config).QueryCompany(_m)
}

// QueryGroup queries the "group" edge of the GeneratedContent entity.
func (_m *GeneratedContent) QueryGroup() *CompanyGroupQuery {
	return NewGeneratedContentClient(_m.config).QueryGroup(_m)
}

// QuerySystemPrompt queries the "system_prompt" edge of the GeneratedContent entity.
func (_m *GeneratedContent) QuerySystemPrompt() *PromptQuery {
	return NewGeneratedContentClient(_m.config).QuerySystemPrompt(_m)
}

// QueryModelConfig queries the "model_config" edge of the GeneratedContent entity.
func (_m *GeneratedContent) QueryModelConfig() *ModelConfigQuery {
	return NewGeneratedContentClient(_m.config).QueryModelConfig(_m)
}

// QuerySourceDocuments queries the "source_documents" edge of the GeneratedContent entity.
func (_m *GeneratedContent) QuerySourceDocuments() *DocumentQuery {
	return NewGeneratedContentClient(_m.config).QuerySourceDocuments(_m)
}

// QuerySourceContent queries the "source_content" edge of the GeneratedContent entity.
func (_m *GeneratedContent) QuerySourceContent() *GeneratedContentQuery {
	return NewGeneratedContentClient(_m.config).QuerySourceContent(_m)
}

// QueryDerivedContent queries the "derived_content" edge of the GeneratedContent entity.
func (_m *GeneratedContent) QueryDerivedContent() *GeneratedContentQuery {
	return NewGeneratedContentClient(_m.config).QueryDerivedContent(_m)
}

// Update returns a builder for updating this GeneratedContent.
// Note that you need to call GeneratedContent.Unwrap() before calling this method if this GeneratedContent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GeneratedContent) Update() *GeneratedContentUpdateOne {
	return NewGeneratedContentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GeneratedContent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GeneratedContent) Unwrap() *GeneratedContent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GeneratedContent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GeneratedContent) String() string {
	var builder strings.Builder
	builder.WriteString("GeneratedContent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	if v := _m.Summary; v != nil {
		builder.WriteString("summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("content_hash=")
	builder.WriteString(_m.ContentHash)
	builder.WriteString(", ")
	if v := _m.CompanyID; v != nil {
		builder.WriteString("company_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.GroupID; v != nil {
		builder.WriteString("group_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DocumentType; v != nil {
		builder.WriteString("document_type=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.FormType; v != nil {
		builder.WriteString("form_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("content_stage=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentStage))
	builder.WriteString(", ")
	builder.WriteString("source_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceType))
	builder.WriteString(", ")
	builder.WriteString("system_prompt_id=")
	builder.WriteString(_m.SystemPromptID)
	builder.WriteString(", ")
	builder.WriteString("model_config_id=")
	builder.WriteString(_m.ModelConfigID)
	builder.WriteString(", ")
	builder.WriteString("total_duration=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalDuration))
	builder.WriteString(", ")
	if v := _m.InputTokens; v != nil {
		builder.WriteString("input_tokens=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.OutputTokens; v != nil {
		builder.WriteString("output_tokens=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Warning; v != nil {
		builder.WriteString("warning=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// GeneratedContents is a parsable slice of GeneratedContent.
type GeneratedContents []*GeneratedContent
