// Code generated by ent, DO NOT EDIT.

package generatedcontent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the generatedcontent type in the database.
	Label = "generated_content"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "content_id"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldContentHash holds the string denoting the content_hash field in the database.
	FieldContentHash = "content_hash"
	// FieldCompanyID holds the string denoting the company_id field in the database.
	FieldCompanyID = "company_id"
	// FieldGroupID holds the string denoting the group_id field in the database.
	FieldGroupID = "group_id"
	// FieldDocumentType holds the string denoting the document_type field in the database.
	FieldDocumentType = "document_type"
	// FieldFormType holds the string denoting the form_type field in the database.
	FieldFormType = "form_type"
	// FieldContentStage holds the string denoting the content_stage field in the database.
	FieldContentStage = "content_stage"
	// FieldSourceType holds the string denoting the source_type field in the database.
	FieldSourceType = "source_type"
	// FieldSystemPromptID holds the string denoting the system_prompt_id field in the database.
	FieldSystemPromptID = "system_prompt_id"
	// FieldModelConfigID holds the string denoting the model_config_id field in the database.
	FieldModelConfigID = "model_config_id"
	// FieldTotalDuration holds the string denoting the total_duration field in the database.
	FieldTotalDuration = "total_duration"
	// FieldInputTokens holds the string denoting the input_tokens field in the database.
	FieldInputTokens = "input_tokens"
	// FieldOutputTokens holds the string denoting the output_tokens field in the database.
	FieldOutputTokens = "output_tokens"
	// FieldWarning holds the string denoting the warning field in the database.
	FieldWarning = "warning"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeCompany holds the string denoting the company edge name in mutations.
	EdgeCompany = "company"
	// EdgeGroup holds the string denoting the group edge name in mutations.
	EdgeGroup = "group"
	// EdgeSystemPrompt holds the string denoting the system_prompt edge name in mutations.
	EdgeSystemPrompt = "system_prompt"
	// EdgeModelConfig holds the string denoting the model_config edge name in mutations.
	EdgeModelConfig = "model_config"
	// EdgeSourceDocuments holds the string denoting the source_documents edge name in mutations.
	EdgeSourceDocuments = "source_documents"
	// EdgeSourceContent holds the string denoting the source_content edge name in mutations.
	EdgeSourceContent = "source_content"
	// EdgeDerivedContent holds the string denoting the derived_content edge name in mutations.
	EdgeDerivedContent = "derived_content"
	// CompanyFieldID holds the string denoting the ID field of the Company.
	CompanyFieldID = "company_id"
	// CompanyGroupFieldID holds the string denoting the ID field of the CompanyGroup.
	CompanyGroupFieldID = "group_id"
	// PromptFieldID holds the string denoting the ID field of the Prompt.
	PromptFieldID = "prompt_id"
	// ModelConfigFieldID holds the string denoting the ID field of the ModelConfig.
	ModelConfigFieldID = "model_config_id"
	// DocumentFieldID holds the string denoting the ID field of the Document.
	DocumentFieldID = "document_id"
	// Table holds the table name of the generatedcontent in the database.
	Table = "generated_contents"
	// CompanyTable is the table that holds the company relation/edge.
	CompanyTable = "generated_contents"
	// CompanyInverseTable is the table name for the Company entity.
	// It exists in this package in order to avoid circular dependency with the "company" package.
	CompanyInverseTable = "companies"
	// CompanyColumn is the table column denoting the company relation/edge.
	CompanyColumn = "company_id"
	// GroupTable is the table that holds the group relation/edge.
	GroupTable = "generated_contents"
	// GroupInverseTable is the table name for the CompanyGroup entity.
	// It exists in this package in order to avoid circular dependency with the "companygroup" package.
	GroupInverseTable = "company_groups"
	// GroupColumn is the table column denoting the group relation/edge.
	GroupColumn = "group_id"
	// SystemPromptTable is the table that holds the system_prompt relation/edge.
	SystemPromptTable = "generated_contents"
	// SystemPromptInverseTable is the table name for the Prompt entity.
	// It exists in this package in order to avoid circular dependency with the "prompt" package.
	SystemPromptInverseTable = "prompts"
	// SystemPromptColumn is the table column denoting the system_prompt relation/edge.
	SystemPromptColumn = "system_prompt_id"
	// ModelConfigTable is the table that holds the model_config relation/edge.
	ModelConfigTable = "generated_contents"
	// ModelConfigInverseTable is the table name for the ModelConfig entity.
	// It exists in this package in order to avoid circular dependency with the "modelconfig" package.
	ModelConfigInverseTable = "model_configs"
	// ModelConfigColumn is the table column denoting the model_config relation/edge.
	ModelConfigColumn = "model_config_id"
	// SourceDocumentsTable is the table that holds the source_documents relation/edge. The primary key declared below.
	SourceDocumentsTable = "generated_content_source_documents"
	// SourceDocumentsInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	SourceDocumentsInverseTable = "documents"
	// SourceContentTable is the table that holds the source_content relation/edge. The primary key declared below.
	SourceContentTable = "generated_content_source_content"
	// DerivedContentTable is the table that holds the derived_content relation/edge. The primary key declared below.
	DerivedContentTable = "generated_content_source_content"
)

// Columns holds all SQL columns for generatedcontent fields.
var Columns = []string{
	FieldID,
	FieldContent,
	FieldSummary,
	FieldContentHash,
	FieldCompanyID,
	FieldGroupID,
	FieldDocumentType,
	FieldFormType,
	FieldContentStage,
	FieldSourceType,
	FieldSystemPromptID,
	FieldModelConfigID,
	FieldTotalDuration,
	FieldInputTokens,
	FieldOutputTokens,
	FieldWarning,
	FieldDescription,
	FieldCreatedAt,
}

var (
	// SourceDocumentsPrimaryKey and SourceDocumentsColumn2 are the table columns denoting the
	// primary key for the source_documents relation (M2M).
	SourceDocumentsPrimaryKey = []string{"generated_content_id", "document_id"}
	// SourceContentPrimaryKey and SourceContentColumn2 are the table columns denoting the
	// primary key for the source_content relation (M2M).
	SourceContentPrimaryKey = []string{"generated_content_id", "derived_content_id"}
	// DerivedContentPrimaryKey and DerivedContentColumn2 are the table columns denoting the
	// primary key for the derived_content relation (M2M).
	DerivedContentPrimaryKey = []string{"generated_content_id", "derived_content_id"}
)

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTotalDuration holds the default value on creation for the "total_duration" field.
	DefaultTotalDuration float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// DocumentType defines the type for the "document_type" enum field.
type DocumentType string

// DocumentType values.
const (
	DocumentTypeManagementDiscussion  DocumentType = "management_discussion"
	DocumentTypeRiskFactors           DocumentType = "risk_factors"
	DocumentTypeBusinessDescription   DocumentType = "business_description"
	DocumentTypeControlsProcedures    DocumentType = "controls_procedures"
	DocumentTypeLegalProceedings      DocumentType = "legal_proceedings"
	DocumentTypeMarketRisk            DocumentType = "market_risk"
	DocumentTypeExecutiveCompensation DocumentType = "executive_compensation"
	DocumentTypeDirectorsOfficers     DocumentType = "directors_officers"
)

func (dt DocumentType) String() string {
	return string(dt)
}

// DocumentTypeValidator is a validator for the "document_type" field enum values. It is called by the builders before save.
func DocumentTypeValidator(dt DocumentType) error {
	switch dt {
	case DocumentTypeManagementDiscussion, DocumentTypeRiskFactors, DocumentTypeBusinessDescription, DocumentTypeControlsProcedures, DocumentTypeLegalProceedings, DocumentTypeMarketRisk, DocumentTypeExecutiveCompensation, DocumentTypeDirectorsOfficers:
		return nil
	default:
		return fmt.Errorf("generatedcontent: invalid enum value for document_type field: %q", dt)
	}
}

// ContentStage defines the type for the "content_stage" enum field.
type ContentStage string

// ContentStage values.
const (
	ContentStageSingleSummary         ContentStage = "single_summary"
	ContentStageAggregateSummary      ContentStage = "aggregate_summary"
	ContentStageFrontpageSummary      ContentStage = "frontpage_summary"
	ContentStageCompanyGroupAnalysis  ContentStage = "company_group_analysis"
	ContentStageCompanyGroupFrontpage ContentStage = "company_group_frontpage"
)

func (cs ContentStage) String() string {
	return string(cs)
}

// ContentStageValidator is a validator for the "content_stage" field enum values. It is called by the builders before save.
func ContentStageValidator(cs ContentStage) error {
	switch cs {
	case ContentStageSingleSummary, ContentStageAggregateSummary, ContentStageFrontpageSummary, ContentStageCompanyGroupAnalysis, ContentStageCompanyGroupFrontpage:
		return nil
	default:
		return fmt.Errorf("generatedcontent: invalid enum value for content_stage field: %q", cs)
	}
}

// SourceType defines the type for the "source_type" enum field.
type SourceType string

// SourceType values.
const (
	SourceTypeDocuments        SourceType = "documents"
	SourceTypeGeneratedContent SourceType = "generated_content"
)

func (st SourceType) String() string {
	return string(st)
}

// SourceTypeValidator is a validator for the "source_type" field enum values. It is called by the builders before save.
func SourceTypeValidator(st SourceType) error {
	switch st {
	case SourceTypeDocuments, SourceTypeGeneratedContent:
		return nil
	default:
		return fmt.Errorf("generatedcontent: invalid enum value for source_type field: %q", st)
	}
}

// OrderOption defines the ordering options for the GeneratedContent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByContentHash orders the results by the content_hash field.
func ByContentHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentHash, opts...).ToFunc()
}

// ByCompanyID orders the results by the company_id field.
func ByCompanyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyID, opts...).ToFunc()
}

// ByGroupID orders the results by the group_id field.
func ByGroupID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGroupID, opts...).ToFunc()
}

// ByDocumentType orders the results by the document_type field.
func ByDocumentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentType, opts...).ToFunc()
}

// ByFormType orders the results by the form_type field.
func ByFormType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFormType, opts...).ToFunc()
}

// ByContentStage orders the results by the content_stage field.
func ByContentStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentStage, opts...).ToFunc()
}

// BySourceType orders the results by the source_type field.
func BySourceType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceType, opts...).ToFunc()
}

// BySystemPromptID orders the results by the system_prompt_id field.
func BySystemPromptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSystemPromptID, opts...).ToFunc()
}

// ByModelConfigID orders the results by the model_config_id field.
func ByModelConfigID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelConfigID, opts...).ToFunc()
}

// ByTotalDuration orders the results by the total_duration field.
func ByTotalDuration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalDuration, opts...).ToFunc()
}

// ByInputTokens orders the results by the input_tokens field.
func ByInputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputTokens, opts...).ToFunc()
}

// ByOutputTokens orders the results by the output_tokens field.
func ByOutputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputTokens, opts...).ToFunc()
}

// ByWarning orders the results by the warning field.
func ByWarning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWarning, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCompanyField orders the results by company field.
func ByCompanyField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCompanyStep(), sql.OrderByField(field, opts...))
	}
}

// ByGroupField orders the results by group field.
func ByGroupField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGroupStep(), sql.OrderByField(field, opts...))
	}
}

// BySystemPromptField orders the results by system_prompt field.
func BySystemPromptField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSystemPromptStep(), sql.OrderByField(field, opts...))
	}
}

// ByModelConfigField orders the results by model_config field.
func ByModelConfigField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newModelConfigStep(), sql.OrderByField(field, opts...))
	}
}

// BySourceDocumentsCount orders the results by source_documents count.
func BySourceDocumentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSourceDocumentsStep(), opts...)
	}
}

// BySourceDocuments orders the results by source_documents terms.
func BySourceDocuments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSourceDocumentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySourceContentCount orders the results by source_content count.
func BySourceContentCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSourceContentStep(), opts...)
	}
}

// BySourceContent orders the results by source_content terms.
func BySourceContent(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSourceContentStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDerivedContentCount orders the results by derived_content count.
func ByDerivedContentCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDerivedContentStep(), opts...)
	}
}

// ByDerivedContent orders the results by derived_content terms.
func ByDerivedContent(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDerivedContentStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCompanyStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CompanyInverseTable, CompanyFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CompanyTable, CompanyColumn),
	)
}
func newGroupStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GroupInverseTable, CompanyGroupFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, GroupTable, GroupColumn),
	)
}
func newSystemPromptStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SystemPromptInverseTable, PromptFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SystemPromptTable, SystemPromptColumn),
	)
}
func newModelConfigStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ModelConfigInverseTable, ModelConfigFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ModelConfigTable, ModelConfigColumn),
	)
}
func newSourceDocumentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SourceDocumentsInverseTable, DocumentFieldID),
		sqlgraph.Edge(sqlgraph.M2M, false, SourceDocumentsTable, SourceDocumentsPrimaryKey...),
	)
}
func newSourceContentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.M2M, false, SourceContentTable, SourceContentPrimaryKey...),
	)
}
func newDerivedContentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.M2M, true, DerivedContentTable, DerivedContentPrimaryKey...),
	)
}
