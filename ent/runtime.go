// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/filinglens/filinglens/ent/company"
	"github.com/filinglens/filinglens/ent/companygroup"
	"github.com/filinglens/filinglens/ent/document"
	"github.com/filinglens/filinglens/ent/filing"
	"github.com/filinglens/filinglens/ent/financialvalue"
	"github.com/filinglens/filinglens/ent/generatedcontent"
	"github.com/filinglens/filinglens/ent/job"
	"github.com/filinglens/filinglens/ent/modelconfig"
	"github.com/filinglens/filinglens/ent/pipelinerun"
	"github.com/filinglens/filinglens/ent/prompt"
	"github.com/filinglens/filinglens/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	companyFields := schema.Company{}.Fields()
	_ = companyFields
	// companyDescCreatedAt is the schema descriptor for created_at field.
	companyDescCreatedAt := companyFields[6].Descriptor()
	// company.DefaultCreatedAt holds the default value on creation for the created_at field.
	company.DefaultCreatedAt = companyDescCreatedAt.Default.(func() time.Time)
	// companyDescUpdatedAt is the schema descriptor for updated_at field.
	companyDescUpdatedAt := companyFields[7].Descriptor()
	// company.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	company.DefaultUpdatedAt = companyDescUpdatedAt.Default.(func() time.Time)
	// company.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	company.UpdateDefaultUpdatedAt = companyDescUpdatedAt.UpdateDefault.(func() time.Time)
	companygroupFields := schema.CompanyGroup{}.Fields()
	_ = companygroupFields
	// companygroupDescCreatedAt is the schema descriptor for created_at field.
	companygroupDescCreatedAt := companygroupFields[4].Descriptor()
	// companygroup.DefaultCreatedAt holds the default value on creation for the created_at field.
	companygroup.DefaultCreatedAt = companygroupDescCreatedAt.Default.(func() time.Time)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[7].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	filingFields := schema.Filing{}.Fields()
	_ = filingFields
	// filingDescCreatedAt is the schema descriptor for created_at field.
	filingDescCreatedAt := filingFields[7].Descriptor()
	// filing.DefaultCreatedAt holds the default value on creation for the created_at field.
	filing.DefaultCreatedAt = filingDescCreatedAt.Default.(func() time.Time)
	financialvalueFields := schema.FinancialValue{}.Fields()
	_ = financialvalueFields
	// financialvalueDescCreatedAt is the schema descriptor for created_at field.
	financialvalueDescCreatedAt := financialvalueFields[6].Descriptor()
	// financialvalue.DefaultCreatedAt holds the default value on creation for the created_at field.
	financialvalue.DefaultCreatedAt = financialvalueDescCreatedAt.Default.(func() time.Time)
	// financialvalueDescUpdatedAt is the schema descriptor for updated_at field.
	financialvalueDescUpdatedAt := financialvalueFields[7].Descriptor()
	// financialvalue.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	financialvalue.DefaultUpdatedAt = financialvalueDescUpdatedAt.Default.(func() time.Time)
	// financialvalue.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	financialvalue.UpdateDefaultUpdatedAt = financialvalueDescUpdatedAt.UpdateDefault.(func() time.Time)
	generatedcontentFields := schema.GeneratedContent{}.Fields()
	_ = generatedcontentFields
	// generatedcontentDescTotalDuration is the schema descriptor for total_duration field.
	generatedcontentDescTotalDuration := generatedcontentFields[12].Descriptor()
	// generatedcontent.DefaultTotalDuration holds the default value on creation for the total_duration field.
	generatedcontent.DefaultTotalDuration = generatedcontentDescTotalDuration.Default.(float64)
	// generatedcontentDescCreatedAt is the schema descriptor for created_at field.
	generatedcontentDescCreatedAt := generatedcontentFields[17].Descriptor()
	// generatedcontent.DefaultCreatedAt holds the default value on creation for the created_at field.
	generatedcontent.DefaultCreatedAt = generatedcontentDescCreatedAt.Default.(func() time.Time)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescPriority is the schema descriptor for priority field.
	jobDescPriority := jobFields[3].Descriptor()
	// job.DefaultPriority holds the default value on creation for the priority field.
	job.DefaultPriority = jobDescPriority.Default.(int)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[5].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescUpdatedAt is the schema descriptor for updated_at field.
	jobDescUpdatedAt := jobFields[8].Descriptor()
	// job.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	job.DefaultUpdatedAt = jobDescUpdatedAt.Default.(func() time.Time)
	// job.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	job.UpdateDefaultUpdatedAt = jobDescUpdatedAt.UpdateDefault.(func() time.Time)
	// jobDescRetryCount is the schema descriptor for retry_count field.
	jobDescRetryCount := jobFields[9].Descriptor()
	// job.DefaultRetryCount holds the default value on creation for the retry_count field.
	job.DefaultRetryCount = jobDescRetryCount.Default.(int)
	// jobDescMaxRetries is the schema descriptor for max_retries field.
	jobDescMaxRetries := jobFields[10].Descriptor()
	// job.DefaultMaxRetries holds the default value on creation for the max_retries field.
	job.DefaultMaxRetries = jobDescMaxRetries.Default.(int)
	modelconfigFields := schema.ModelConfig{}.Fields()
	_ = modelconfigFields
	// modelconfigDescCreatedAt is the schema descriptor for created_at field.
	modelconfigDescCreatedAt := modelconfigFields[4].Descriptor()
	// modelconfig.DefaultCreatedAt holds the default value on creation for the created_at field.
	modelconfig.DefaultCreatedAt = modelconfigDescCreatedAt.Default.(func() time.Time)
	pipelinerunFields := schema.PipelineRun{}.Fields()
	_ = pipelinerunFields
	// pipelinerunDescJobsCreated is the schema descriptor for jobs_created field.
	pipelinerunDescJobsCreated := pipelinerunFields[5].Descriptor()
	// pipelinerun.DefaultJobsCreated holds the default value on creation for the jobs_created field.
	pipelinerun.DefaultJobsCreated = pipelinerunDescJobsCreated.Default.(int)
	// pipelinerunDescJobsCompleted is the schema descriptor for jobs_completed field.
	pipelinerunDescJobsCompleted := pipelinerunFields[6].Descriptor()
	// pipelinerun.DefaultJobsCompleted holds the default value on creation for the jobs_completed field.
	pipelinerun.DefaultJobsCompleted = pipelinerunDescJobsCompleted.Default.(int)
	// pipelinerunDescJobsFailed is the schema descriptor for jobs_failed field.
	pipelinerunDescJobsFailed := pipelinerunFields[7].Descriptor()
	// pipelinerun.DefaultJobsFailed holds the default value on creation for the jobs_failed field.
	pipelinerun.DefaultJobsFailed = pipelinerunDescJobsFailed.Default.(int)
	// pipelinerunDescCreatedAt is the schema descriptor for created_at field.
	pipelinerunDescCreatedAt := pipelinerunFields[12].Descriptor()
	// pipelinerun.DefaultCreatedAt holds the default value on creation for the created_at field.
	pipelinerun.DefaultCreatedAt = pipelinerunDescCreatedAt.Default.(func() time.Time)
	promptFields := schema.Prompt{}.Fields()
	_ = promptFields
	// promptDescCreatedAt is the schema descriptor for created_at field.
	promptDescCreatedAt := promptFields[6].Descriptor()
	// prompt.DefaultCreatedAt holds the default value on creation for the created_at field.
	prompt.DefaultCreatedAt = promptDescCreatedAt.Default.(func() time.Time)
}
