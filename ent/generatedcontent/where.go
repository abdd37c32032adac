// Code generated by ent, DO NOT EDIT.

package generatedcontent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/filinglens/filinglens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldContainsFold(FieldID, id))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldEQ(FieldContent, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldEQ(FieldSummary, v))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldEQ(FieldContentHash, v))
}

// CompanyID applies equality check predicate on the "company_id" field. It's identical to CompanyIDEQ.
func CompanyID(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldEQ(FieldCompanyID, v))
}

// GroupID applies equality check predicate on the "group_id" field. It's identical to GroupIDEQ.
func GroupID(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldEQ(FieldGroupID, v))
}

// FormType applies equality check predicate on the "form_type" field. It's identical to FormTypeEQ.
func FormType(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldEQ(FieldFormType, v))
}

// SystemPromptID applies equality check predicate on the "system_prompt_id" field. It's identical to SystemPromptIDEQ.
func SystemPromptID(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldEQ(FieldSystemPromptID, v))
}

// ModelConfigID applies equality check predicate on the "model_config_id" field. It's identical to ModelConfigIDEQ.
func ModelConfigID(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldEQ(FieldModelConfigID, v))
}

// TotalDuration applies equality check predicate on the "total_duration" field. It's identical to TotalDurationEQ.
func TotalDuration(v float64) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldEQ(FieldTotalDuration, v))
}

// InputTokens applies equality check predicate on the "input_tokens" field. It's identical to InputTokensEQ.
func InputTokens(v int) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldEQ(FieldInputTokens, v))
}

// OutputTokens applies equality check predicate on the "output_tokens" field. It's identical to OutputTokensEQ.
func OutputTokens(v int) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldEQ(FieldOutputTokens, v))
}

// Warning applies equality check predicate on the "warning" field. It's identical to WarningEQ.
func Warning(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldEQ(FieldWarning, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldEQ(FieldDescription, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldEQ(FieldCreatedAt, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldContainsFold(FieldContent, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldContainsFold(FieldSummary, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldLTE(FieldContentHash, v))
}

// ContentHashContains applies the Contains predicate on the "content_hash" field.
func ContentHashContains(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldContains(FieldContentHash, v))
}

// ContentHashHasPrefix applies the HasPrefix predicate on the "content_hash" field.
func ContentHashHasPrefix(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldHasPrefix(FieldContentHash, v))
}

// ContentHashHasSuffix applies the HasSuffix predicate on the "content_hash" field.
func ContentHashHasSuffix(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldHasSuffix(FieldContentHash, v))
}

// ContentHashEqualFold applies the EqualFold predicate on the "content_hash" field.
func ContentHashEqualFold(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldEqualFold(FieldContentHash, v))
}

// ContentHashContainsFold applies the ContainsFold predicate on the "content_hash" field.
func ContentHashContainsFold(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldContainsFold(FieldContentHash, v))
}

// CompanyIDEQ applies the EQ predicate on the "company_id" field.
func CompanyIDEQ(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyIDNEQ applies the NEQ predicate on the "company_id" field.
func CompanyIDNEQ(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldNEQ(FieldCompanyID, v))
}

// CompanyIDIn applies the In predicate on the "company_id" field.
func CompanyIDIn(vs ...string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldIn(FieldCompanyID, vs...))
}

// CompanyIDNotIn applies the NotIn predicate on the "company_id" field.
func CompanyIDNotIn(vs ...string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldNotIn(FieldCompanyID, vs...))
}

// CompanyIDGT applies the GT predicate on the "company_id" field.
func CompanyIDGT(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldGT(FieldCompanyID, v))
}

// CompanyIDGTE applies the GTE predicate on the "company_id" field.
func CompanyIDGTE(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldGTE(FieldCompanyID, v))
}

// CompanyIDLT applies the LT predicate on the "company_id" field.
func CompanyIDLT(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldLT(FieldCompanyID, v))
}

// CompanyIDLTE applies the LTE predicate on the "company_id" field.
func CompanyIDLTE(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldLTE(FieldCompanyID, v))
}

// CompanyIDContains applies the Contains predicate on the "company_id" field.
func CompanyIDContains(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldContains(FieldCompanyID, v))
}

// CompanyIDHasPrefix applies the HasPrefix predicate on the "company_id" field.
func CompanyIDHasPrefix(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldHasPrefix(FieldCompanyID, v))
}

// CompanyIDHasSuffix applies the HasSuffix predicate on the "company_id" field.
func CompanyIDHasSuffix(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldHasSuffix(FieldCompanyID, v))
}

// CompanyIDIsNil applies the IsNil predicate on the "company_id" field.
func CompanyIDIsNil() predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldIsNull(FieldCompanyID))
}

// CompanyIDNotNil applies the NotNil predicate on the "company_id" field.
func CompanyIDNotNil() predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldNotNull(FieldCompanyID))
}

// CompanyIDEqualFold applies the EqualFold predicate on the "company_id" field.
func CompanyIDEqualFold(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldEqualFold(FieldCompanyID, v))
}

// CompanyIDContainsFold applies the ContainsFold predicate on the "company_id" field.
func CompanyIDContainsFold(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldContainsFold(FieldCompanyID, v))
}

// GroupIDEQ applies the EQ predicate on the "group_id" field.
func GroupIDEQ(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldEQ(FieldGroupID, v))
}

// GroupIDNEQ applies the NEQ predicate on the "group_id" field.
func GroupIDNEQ(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldNEQ(FieldGroupID, v))
}

// GroupIDIn applies the In predicate on the "group_id" field.
func GroupIDIn(vs ...string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldIn(FieldGroupID, vs...))
}

// GroupIDNotIn applies the NotIn predicate on the "group_id" field.
func GroupIDNotIn(vs ...string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldNotIn(FieldGroupID, vs...))
}

// GroupIDGT applies the GT predicate on the "group_id" field.
func GroupIDGT(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldGT(FieldGroupID, v))
}

// GroupIDGTE applies the GTE predicate on the "group_id" field.
func GroupIDGTE(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldGTE(FieldGroupID, v))
}

// GroupIDLT applies the LT predicate on the "group_id" field.
func GroupIDLT(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldLT(FieldGroupID, v))
}

// GroupIDLTE applies the LTE predicate on the "group_id" field.
func GroupIDLTE(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldLTE(FieldGroupID, v))
}

// GroupIDContains applies the Contains predicate on the "group_id" field.
func GroupIDContains(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldContains(FieldGroupID, v))
}

// GroupIDHasPrefix applies the HasPrefix predicate on the "group_id" field.
func GroupIDHasPrefix(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldHasPrefix(FieldGroupID, v))
}

// GroupIDHasSuffix applies the HasSuffix predicate on the "group_id" field.
func GroupIDHasSuffix(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldHasSuffix(FieldGroupID, v))
}

// GroupIDIsNil applies the IsNil predicate on the "group_id" field.
func GroupIDIsNil() predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldIsNull(FieldGroupID))
}

// GroupIDNotNil applies the NotNil predicate on the "group_id" field.
func GroupIDNotNil() predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldNotNull(FieldGroupID))
}

// GroupIDEqualFold applies the EqualFold predicate on the "group_id" field.
func GroupIDEqualFold(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldEqualFold(FieldGroupID, v))
}

// GroupIDContainsFold applies the ContainsFold predicate on the "group_id" field.
func GroupIDContainsFold(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldContainsFold(FieldGroupID, v))
}

// DocumentTypeEQ applies the EQ predicate on the "document_type" field.
func DocumentTypeEQ(v DocumentType) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldEQ(FieldDocumentType, v))
}

// DocumentTypeNEQ applies the NEQ predicate on the "document_type" field.
func DocumentTypeNEQ(v DocumentType) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldNEQ(FieldDocumentType, v))
}

// DocumentTypeIn applies the In predicate on the "document_type" field.
func DocumentTypeIn(vs ...DocumentType) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldIn(FieldDocumentType, vs...))
}

// DocumentTypeNotIn applies the NotIn predicate on the "document_type" field.
func DocumentTypeNotIn(vs ...DocumentType) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldNotIn(FieldDocumentType, vs...))
}

// DocumentTypeIsNil applies the IsNil predicate on the "document_type" field.
func DocumentTypeIsNil() predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldIsNull(FieldDocumentType))
}

// DocumentTypeNotNil applies the NotNil predicate on the "document_type" field.
func DocumentTypeNotNil() predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldNotNull(FieldDocumentType))
}

// FormTypeEQ applies the EQ predicate on the "form_type" field.
func FormTypeEQ(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldEQ(FieldFormType, v))
}

// FormTypeNEQ applies the NEQ predicate on the "form_type" field.
func FormTypeNEQ(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldNEQ(FieldFormType, v))
}

// FormTypeIn applies the In predicate on the "form_type" field.
func FormTypeIn(vs ...string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldIn(FieldFormType, vs...))
}

// FormTypeNotIn applies the NotIn predicate on the "form_type" field.
func FormTypeNotIn(vs ...string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldNotIn(FieldFormType, vs...))
}

// FormTypeGT applies the GT predicate on the "form_type" field.
func FormTypeGT(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldGT(FieldFormType, v))
}

// FormTypeGTE applies the GTE predicate on the "form_type" field.
func FormTypeGTE(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldGTE(FieldFormType, v))
}

// FormTypeLT applies the LT predicate on the "form_type" field.
func FormTypeLT(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldLT(FieldFormType, v))
}

// FormTypeLTE applies the LTE predicate on the "form_type" field.
func FormTypeLTE(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldLTE(FieldFormType, v))
}

// FormTypeContains applies the Contains predicate on the "form_type" field.
func FormTypeContains(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldContains(FieldFormType, v))
}

// FormTypeHasPrefix applies the HasPrefix predicate on the "form_type" field.
func FormTypeHasPrefix(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldHasPrefix(FieldFormType, v))
}

// FormTypeHasSuffix applies the HasSuffix predicate on the "form_type" field.
func FormTypeHasSuffix(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldHasSuffix(FieldFormType, v))
}

// FormTypeIsNil applies the IsNil predicate on the "form_type" field.
func FormTypeIsNil() predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldIsNull(FieldFormType))
}

// FormTypeNotNil applies the NotNil predicate on the "form_type" field.
func FormTypeNotNil() predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldNotNull(FieldFormType))
}

// FormTypeEqualFold applies the EqualFold predicate on the "form_type" field.
func FormTypeEqualFold(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldEqualFold(FieldFormType, v))
}

// FormTypeContainsFold applies the ContainsFold predicate on the "form_type" field.
func FormTypeContainsFold(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldContainsFold(FieldFormType, v))
}

// ContentStageEQ applies the EQ predicate on the "content_stage" field.
func ContentStageEQ(v ContentStage) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldEQ(FieldContentStage, v))
}

// ContentStageNEQ applies the NEQ predicate on the "content_stage" field.
func ContentStageNEQ(v ContentStage) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldNEQ(FieldContentStage, v))
}

// ContentStageIn applies the In predicate on the "content_stage" field.
func ContentStageIn(vs ...ContentStage) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldIn(FieldContentStage, vs...))
}

// ContentStageNotIn applies the NotIn predicate on the "content_stage" field.
func ContentStageNotIn(vs ...ContentStage) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldNotIn(FieldContentStage, vs...))
}

// SourceTypeEQ applies the EQ predicate on the "source_type" field.
func SourceTypeEQ(v SourceType) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldEQ(FieldSourceType, v))
}

// SourceTypeNEQ applies the NEQ predicate on the "source_type" field.
func SourceTypeNEQ(v SourceType) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldNEQ(FieldSourceType, v))
}

// SourceTypeIn applies the In predicate on the "source_type" field.
func SourceTypeIn(vs ...SourceType) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldIn(FieldSourceType, vs...))
}

// SourceTypeNotIn applies the NotIn predicate on the "source_type" field.
func SourceTypeNotIn(vs ...SourceType) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldNotIn(FieldSourceType, vs...))
}

// SystemPromptIDEQ applies the EQ predicate on the "system_prompt_id" field.
func SystemPromptIDEQ(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldEQ(FieldSystemPromptID, v))
}

// SystemPromptIDNEQ applies the NEQ predicate on the "system_prompt_id" field.
func SystemPromptIDNEQ(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldNEQ(FieldSystemPromptID, v))
}

// SystemPromptIDIn applies the In predicate on the "system_prompt_id" field.
func SystemPromptIDIn(vs ...string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldIn(FieldSystemPromptID, vs...))
}

// SystemPromptIDNotIn applies the NotIn predicate on the "system_prompt_id" field.
func SystemPromptIDNotIn(vs ...string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldNotIn(FieldSystemPromptID, vs...))
}

// SystemPromptIDGT applies the GT predicate on the "system_prompt_id" field.
func SystemPromptIDGT(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldGT(FieldSystemPromptID, v))
}

// SystemPromptIDGTE applies the GTE predicate on the "system_prompt_id" field.
func SystemPromptIDGTE(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldGTE(FieldSystemPromptID, v))
}

// SystemPromptIDLT applies the LT predicate on the "system_prompt_id" field.
func SystemPromptIDLT(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldLT(FieldSystemPromptID, v))
}

// SystemPromptIDLTE applies the LTE predicate on the "system_prompt_id" field.
func SystemPromptIDLTE(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldLTE(FieldSystemPromptID, v))
}

// SystemPromptIDContains applies the Contains predicate on the "system_prompt_id" field.
func SystemPromptIDContains(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldContains(FieldSystemPromptID, v))
}

// SystemPromptIDHasPrefix applies the HasPrefix predicate on the "system_prompt_id" field.
func SystemPromptIDHasPrefix(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldHasPrefix(FieldSystemPromptID, v))
}

// SystemPromptIDHasSuffix applies the HasSuffix predicate on the "system_prompt_id" field.
func SystemPromptIDHasSuffix(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldHasSuffix(FieldSystemPromptID, v))
}

// SystemPromptIDEqualFold applies the EqualFold predicate on the "system_prompt_id" field.
func SystemPromptIDEqualFold(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldEqualFold(FieldSystemPromptID, v))
}

// SystemPromptIDContainsFold applies the ContainsFold predicate on the "system_prompt_id" field.
func SystemPromptIDContainsFold(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldContainsFold(FieldSystemPromptID, v))
}

// ModelConfigIDEQ applies the EQ predicate on the "model_config_id" field.
func ModelConfigIDEQ(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldEQ(FieldModelConfigID, v))
}

// ModelConfigIDNEQ applies the NEQ predicate on the "model_config_id" field.
func ModelConfigIDNEQ(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldNEQ(FieldModelConfigID, v))
}

// ModelConfigIDIn applies the In predicate on the "model_config_id" field.
func ModelConfigIDIn(vs ...string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldIn(FieldModelConfigID, vs...))
}

// ModelConfigIDNotIn applies the NotIn predicate on the "model_config_id" field.
func ModelConfigIDNotIn(vs ...string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldNotIn(FieldModelConfigID, vs...))
}

// ModelConfigIDGT applies the GT predicate on the "model_config_id" field.
func ModelConfigIDGT(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldGT(FieldModelConfigID, v))
}

// ModelConfigIDGTE applies the GTE predicate on the "model_config_id" field.
func ModelConfigIDGTE(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldGTE(FieldModelConfigID, v))
}

// ModelConfigIDLT applies the LT predicate on the "model_config_id" field.
func ModelConfigIDLT(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldLT(FieldModelConfigID, v))
}

// ModelConfigIDLTE applies the LTE predicate on the "model_config_id" field.
func ModelConfigIDLTE(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldLTE(FieldModelConfigID, v))
}

// ModelConfigIDContains applies the Contains predicate on the "model_config_id" field.
func ModelConfigIDContains(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldContains(FieldModelConfigID, v))
}

// ModelConfigIDHasPrefix applies the HasPrefix predicate on the "model_config_id" field.
func ModelConfigIDHasPrefix(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldHasPrefix(FieldModelConfigID, v))
}

// ModelConfigIDHasSuffix applies the HasSuffix predicate on the "model_config_id" field.
func ModelConfigIDHasSuffix(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldHasSuffix(FieldModelConfigID, v))
}

// ModelConfigIDEqualFold applies the EqualFold predicate on the "model_config_id" field.
func ModelConfigIDEqualFold(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldEqualFold(FieldModelConfigID, v))
}

// ModelConfigIDContainsFold applies the ContainsFold predicate on the "model_config_id" field.
func ModelConfigIDContainsFold(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldContainsFold(FieldModelConfigID, v))
}

// TotalDurationEQ applies the EQ predicate on the "total_duration" field.
func TotalDurationEQ(v float64) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldEQ(FieldTotalDuration, v))
}

// TotalDurationNEQ applies the NEQ predicate on the "total_duration" field.
func TotalDurationNEQ(v float64) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldNEQ(FieldTotalDuration, v))
}

// TotalDurationIn applies the In predicate on the "total_duration" field.
func TotalDurationIn(vs ...float64) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldIn(FieldTotalDuration, vs...))
}

// TotalDurationNotIn applies the NotIn predicate on the "total_duration" field.
func TotalDurationNotIn(vs ...float64) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldNotIn(FieldTotalDuration, vs...))
}

// TotalDurationGT applies the GT predicate on the "total_duration" field.
func TotalDurationGT(v float64) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldGT(FieldTotalDuration, v))
}

// TotalDurationGTE applies the GTE predicate on the "total_duration" field.
func TotalDurationGTE(v float64) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldGTE(FieldTotalDuration, v))
}

// TotalDurationLT applies the LT predicate on the "total_duration" field.
func TotalDurationLT(v float64) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldLT(FieldTotalDuration, v))
}

// TotalDurationLTE applies the LTE predicate on the "total_duration" field.
func TotalDurationLTE(v float64) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldLTE(FieldTotalDuration, v))
}

// InputTokensEQ applies the EQ predicate on the "input_tokens" field.
func InputTokensEQ(v int) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldEQ(FieldInputTokens, v))
}

// InputTokensNEQ applies the NEQ predicate on the "input_tokens" field.
func InputTokensNEQ(v int) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldNEQ(FieldInputTokens, v))
}

// InputTokensIn applies the In predicate on the "input_tokens" field.
func InputTokensIn(vs ...int) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldIn(FieldInputTokens, vs...))
}

// InputTokensNotIn applies the NotIn predicate on the "input_tokens" field.
func InputTokensNotIn(vs ...int) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldNotIn(FieldInputTokens, vs...))
}

// InputTokensGT applies the GT predicate on the "input_tokens" field.
func InputTokensGT(v int) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldGT(FieldInputTokens, v))
}

// InputTokensGTE applies the GTE predicate on the "input_tokens" field.
func InputTokensGTE(v int) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldGTE(FieldInputTokens, v))
}

// InputTokensLT applies the LT predicate on the "input_tokens" field.
func InputTokensLT(v int) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldLT(FieldInputTokens, v))
}

// InputTokensLTE applies the LTE predicate on the "input_tokens" field.
func InputTokensLTE(v int) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldLTE(FieldInputTokens, v))
}

// InputTokensIsNil applies the IsNil predicate on the "input_tokens" field.
func InputTokensIsNil() predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldIsNull(FieldInputTokens))
}

// InputTokensNotNil applies the NotNil predicate on the "input_tokens" field.
func InputTokensNotNil() predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldNotNull(FieldInputTokens))
}

// OutputTokensEQ applies the EQ predicate on the "output_tokens" field.
func OutputTokensEQ(v int) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldEQ(FieldOutputTokens, v))
}

// OutputTokensNEQ applies the NEQ predicate on the "output_tokens" field.
func OutputTokensNEQ(v int) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldNEQ(FieldOutputTokens, v))
}

// OutputTokensIn applies the In predicate on the "output_tokens" field.
func OutputTokensIn(vs ...int) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldIn(FieldOutputTokens, vs...))
}

// OutputTokensNotIn applies the NotIn predicate on the "output_tokens" field.
func OutputTokensNotIn(vs ...int) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldNotIn(FieldOutputTokens, vs...))
}

// OutputTokensGT applies the GT predicate on the "output_tokens" field.
func OutputTokensGT(v int) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldGT(FieldOutputTokens, v))
}

// OutputTokensGTE applies the GTE predicate on the "output_tokens" field.
func OutputTokensGTE(v int) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldGTE(FieldOutputTokens, v))
}

// OutputTokensLT applies the LT predicate on the "output_tokens" field.
func OutputTokensLT(v int) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldLT(FieldOutputTokens, v))
}

// OutputTokensLTE applies the LTE predicate on the "output_tokens" field.
func OutputTokensLTE(v int) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldLTE(FieldOutputTokens, v))
}

// OutputTokensIsNil applies the IsNil predicate on the "output_tokens" field.
func OutputTokensIsNil() predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldIsNull(FieldOutputTokens))
}

// OutputTokensNotNil applies the NotNil predicate on the "output_tokens" field.
func OutputTokensNotNil() predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldNotNull(FieldOutputTokens))
}

// WarningEQ applies the EQ predicate on the "warning" field.
func WarningEQ(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldEQ(FieldWarning, v))
}

// WarningNEQ applies the NEQ predicate on the "warning" field.
func WarningNEQ(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldNEQ(FieldWarning, v))
}

// WarningIn applies the In predicate on the "warning" field.
func WarningIn(vs ...string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldIn(FieldWarning, vs...))
}

// WarningNotIn applies the NotIn predicate on the "warning" field.
func WarningNotIn(vs ...string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldNotIn(FieldWarning, vs...))
}

// WarningGT applies the GT predicate on the "warning" field.
func WarningGT(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldGT(FieldWarning, v))
}

// WarningGTE applies the GTE predicate on the "warning" field.
func WarningGTE(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldGTE(FieldWarning, v))
}

// WarningLT applies the LT predicate on the "warning" field.
func WarningLT(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldLT(FieldWarning, v))
}

// WarningLTE applies the LTE predicate on the "warning" field.
func WarningLTE(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldLTE(FieldWarning, v))
}

// WarningContains applies the Contains predicate on the "warning" field.
func WarningContains(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldContains(FieldWarning, v))
}

// WarningHasPrefix applies the HasPrefix predicate on the "warning" field.
func WarningHasPrefix(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldHasPrefix(FieldWarning, v))
}

// WarningHasSuffix applies the HasSuffix predicate on the "warning" field.
func WarningHasSuffix(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldHasSuffix(FieldWarning, v))
}

// WarningIsNil applies the IsNil predicate on the "warning" field.
func WarningIsNil() predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldIsNull(FieldWarning))
}

// WarningNotNil applies the NotNil predicate on the "warning" field.
func WarningNotNil() predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldNotNull(FieldWarning))
}

// WarningEqualFold applies the EqualFold predicate on the "warning" field.
func WarningEqualFold(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldEqualFold(FieldWarning, v))
}

// WarningContainsFold applies the ContainsFold predicate on the "warning" field.
func WarningContainsFold(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldContainsFold(FieldWarning, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldContainsFold(FieldDescription, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.FieldLTE(FieldCreatedAt, v))
}

// HasCompany applies the HasEdge predicate on the "company" edge.
func HasCompany() predicate.GeneratedContent {
	return predicate.GeneratedContent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CompanyTable, CompanyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCompanyWith applies the HasEdge predicate on the "company" edge with a given conditions (other predicates).
func HasCompanyWith(preds ...predicate.Company) predicate.GeneratedContent {
	return predicate.GeneratedContent(func(s *sql.Selector) {
		step := newCompanyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasGroup applies the HasEdge predicate on the "group" edge.
func HasGroup() predicate.GeneratedContent {
	return predicate.GeneratedContent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, GroupTable, GroupColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGroupWith applies the HasEdge predicate on the "group" edge with a given conditions (other predicates).
func HasGroupWith(preds ...predicate.CompanyGroup) predicate.GeneratedContent {
	return predicate.GeneratedContent(func(s *sql.Selector) {
		step := newGroupStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSystemPrompt applies the HasEdge predicate on the "system_prompt" edge.
func HasSystemPrompt() predicate.GeneratedContent {
	return predicate.GeneratedContent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SystemPromptTable, SystemPromptColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSystemPromptWith applies the HasEdge predicate on the "system_prompt" edge with a given conditions (other predicates).
func HasSystemPromptWith(preds ...predicate.Prompt) predicate.GeneratedContent {
	return predicate.GeneratedContent(func(s *sql.Selector) {
		step := newSystemPromptStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasModelConfig applies the HasEdge predicate on the "model_config" edge.
func HasModelConfig() predicate.GeneratedContent {
	return predicate.GeneratedContent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ModelConfigTable, ModelConfigColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasModelConfigWith applies the HasEdge predicate on the "model_config" edge with a given conditions (other predicates).
func HasModelConfigWith(preds ...predicate.ModelConfig) predicate.GeneratedContent {
	return predicate.GeneratedContent(func(s *sql.Selector) {
		step := newModelConfigStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSourceDocuments applies the HasEdge predicate on the "source_documents" edge.
func HasSourceDocuments() predicate.GeneratedContent {
	return predicate.GeneratedContent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, SourceDocumentsTable, SourceDocumentsPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSourceDocumentsWith applies the HasEdge predicate on the "source_documents" edge with a given conditions (other predicates).
func HasSourceDocumentsWith(preds ...predicate.Document) predicate.GeneratedContent {
	return predicate.GeneratedContent(func(s *sql.Selector) {
		step := newSourceDocumentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSourceContent applies the HasEdge predicate on the "source_content" edge.
func HasSourceContent() predicate.GeneratedContent {
	return predicate.GeneratedContent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, SourceContentTable, SourceContentPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSourceContentWith applies the HasEdge predicate on the "source_content" edge with a given conditions (other predicates).
func HasSourceContentWith(preds ...predicate.GeneratedContent) predicate.GeneratedContent {
	return predicate.GeneratedContent(func(s *sql.Selector) {
		step := newSourceContentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDerivedContent applies the HasEdge predicate on the "derived_content" edge.
func HasDerivedContent() predicate.GeneratedContent {
	return predicate.GeneratedContent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, DerivedContentTable, DerivedContentPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDerivedContentWith applies the HasEdge predicate on the "derived_content" edge with a given conditions (other predicates).
func HasDerivedContentWith(preds ...predicate.GeneratedContent) predicate.GeneratedContent {
	return predicate.GeneratedContent(func(s *sql.Selector) {
		step := newDerivedContentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GeneratedContent) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GeneratedContent) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GeneratedContent) predicate.GeneratedContent {
	return predicate.GeneratedContent(sql.NotPredicates(p))
}
