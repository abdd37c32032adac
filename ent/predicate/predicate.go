// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Company is the predicate function for company builders.
type Company func(*sql.Selector)

// CompanyGroup is the predicate function for companygroup builders.
type CompanyGroup func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// Filing is the predicate function for filing builders.
type Filing func(*sql.Selector)

// FinancialConcept is the predicate function for financialconcept builders.
type FinancialConcept func(*sql.Selector)

// FinancialValue is the predicate function for financialvalue builders.
type FinancialValue func(*sql.Selector)

// GeneratedContent is the predicate function for generatedcontent builders.
type GeneratedContent func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// ModelConfig is the predicate function for modelconfig builders.
type ModelConfig func(*sql.Selector)

// PipelineRun is the predicate function for pipelinerun builders.
type PipelineRun func(*sql.Selector)

// Prompt is the predicate function for prompt builders.
type Prompt func(*sql.Selector)
