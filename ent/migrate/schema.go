// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CompaniesColumns holds the columns for the "companies" table.
	CompaniesColumns = []*schema.Column{
		{Name: "company_id", Type: field.TypeString, Unique: true},
		{Name: "ticker", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "exchanges", Type: field.TypeJSON, Nullable: true},
		{Name: "industry_code", Type: field.TypeString, Nullable: true},
		{Name: "fiscal_year_end", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CompaniesTable holds the schema information for the "companies" table.
	CompaniesTable = &schema.Table{
		Name:       "companies",
		Columns:    CompaniesColumns,
		PrimaryKey: []*schema.Column{CompaniesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "company_ticker",
				Unique:  false,
				Columns: []*schema.Column{CompaniesColumns[1]},
			},
		},
	}
	// CompanyGroupsColumns holds the columns for the "company_groups" table.
	CompanyGroupsColumns = []*schema.Column{
		{Name: "group_id", Type: field.TypeString, Unique: true},
		{Name: "slug", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "tickers", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CompanyGroupsTable holds the schema information for the "company_groups" table.
	CompanyGroupsTable = &schema.Table{
		Name:       "company_groups",
		Columns:    CompanyGroupsColumns,
		PrimaryKey: []*schema.Column{CompanyGroupsColumns[0]},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "document_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "document_type", Type: field.TypeEnum, Enums: []string{"management_discussion", "risk_factors", "business_description", "controls_procedures", "legal_proceedings", "market_risk", "executive_compensation", "directors_officers"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "content_hash", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "company_id", Type: field.TypeString},
		{Name: "filing_id", Type: field.TypeString},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "documents_companies_documents",
				Columns:    []*schema.Column{DocumentsColumns[6]},
				RefColumns: []*schema.Column{CompaniesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "documents_filings_documents",
				Columns:    []*schema.Column{DocumentsColumns[7]},
				RefColumns: []*schema.Column{FilingsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "document_content_hash",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[4]},
			},
			{
				Name:    "document_company_id",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[6]},
			},
			{
				Name:    "document_filing_id_document_type",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[7], DocumentsColumns[2]},
			},
		},
	}
	// FilingsColumns holds the columns for the "filings" table.
	FilingsColumns = []*schema.Column{
		{Name: "filing_id", Type: field.TypeString, Unique: true},
		{Name: "accession_number", Type: field.TypeString, Unique: true},
		{Name: "form_type", Type: field.TypeString},
		{Name: "filing_date", Type: field.TypeTime},
		{Name: "period_of_report", Type: field.TypeTime, Nullable: true},
		{Name: "source_url", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "company_id", Type: field.TypeString},
	}
	// FilingsTable holds the schema information for the "filings" table.
	FilingsTable = &schema.Table{
		Name:       "filings",
		Columns:    FilingsColumns,
		PrimaryKey: []*schema.Column{FilingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "filings_companies_filings",
				Columns:    []*schema.Column{FilingsColumns[7]},
				RefColumns: []*schema.Column{CompaniesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "filing_company_id",
				Unique:  false,
				Columns: []*schema.Column{FilingsColumns[7]},
			},
			{
				Name:    "filing_company_id_form_type_filing_date",
				Unique:  false,
				Columns: []*schema.Column{FilingsColumns[7], FilingsColumns[2], FilingsColumns[3]},
			},
		},
	}
	// FinancialConceptsColumns holds the columns for the "financial_concepts" table.
	FinancialConceptsColumns = []*schema.Column{
		{Name: "concept_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "labels", Type: field.TypeJSON, Nullable: true},
	}
	// FinancialConceptsTable holds the schema information for the "financial_concepts" table.
	FinancialConceptsTable = &schema.Table{
		Name:       "financial_concepts",
		Columns:    FinancialConceptsColumns,
		PrimaryKey: []*schema.Column{FinancialConceptsColumns[0]},
	}
	// FinancialValuesColumns holds the columns for the "financial_values" table.
	FinancialValuesColumns = []*schema.Column{
		{Name: "value_id", Type: field.TypeString, Unique: true},
		{Name: "value_date", Type: field.TypeTime},
		{Name: "value", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(24,6)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "company_id", Type: field.TypeString},
		{Name: "filing_id", Type: field.TypeString, Nullable: true},
		{Name: "concept_id", Type: field.TypeString},
	}
	// FinancialValuesTable holds the schema information for the "financial_values" table.
	FinancialValuesTable = &schema.Table{
		Name:       "financial_values",
		Columns:    FinancialValuesColumns,
		PrimaryKey: []*schema.Column{FinancialValuesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "financial_values_companies_financial_values",
				Columns:    []*schema.Column{FinancialValuesColumns[5]},
				RefColumns: []*schema.Column{CompaniesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "financial_values_filings_financial_values",
				Columns:    []*schema.Column{FinancialValuesColumns[6]},
				RefColumns: []*schema.Column{FilingsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "financial_values_financial_concepts_values",
				Columns:    []*schema.Column{FinancialValuesColumns[7]},
				RefColumns: []*schema.Column{FinancialConceptsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "financialvalue_company_id_concept_id_value_date",
				Unique:  false,
				Columns: []*schema.Column{FinancialValuesColumns[5], FinancialValuesColumns[7], FinancialValuesColumns[1]},
			},
		},
	}
	// GeneratedContentsColumns holds the columns for the "generated_contents" table.
	GeneratedContentsColumns = []*schema.Column{
		{Name: "content_id", Type: field.TypeString, Unique: true},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "content_hash", Type: field.TypeString, Unique: true},
		{Name: "document_type", Type: field.TypeEnum, Nullable: true, Enums: []string{"management_discussion", "risk_factors", "business_description", "controls_procedures", "legal_proceedings", "market_risk", "executive_compensation", "directors_officers"}},
		{Name: "form_type", Type: field.TypeString, Nullable: true},
		{Name: "content_stage", Type: field.TypeEnum, Enums: []string{"single_summary", "aggregate_summary", "frontpage_summary", "company_group_analysis", "company_group_frontpage"}},
		{Name: "source_type", Type: field.TypeEnum, Enums: []string{"documents", "generated_content"}},
		{Name: "total_duration", Type: field.TypeFloat64, Default: 0},
		{Name: "input_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "output_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "warning", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "company_id", Type: field.TypeString, Nullable: true},
		{Name: "group_id", Type: field.TypeString, Nullable: true},
		{Name: "model_config_id", Type: field.TypeString},
		{Name: "system_prompt_id", Type: field.TypeString},
	}
	// GeneratedContentsTable holds the schema information for the "generated_contents" table.
	GeneratedContentsTable = &schema.Table{
		Name:       "generated_contents",
		Columns:    GeneratedContentsColumns,
		PrimaryKey: []*schema.Column{GeneratedContentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "generated_contents_companies_generated_contents",
				Columns:    []*schema.Column{GeneratedContentsColumns[14]},
				RefColumns: []*schema.Column{CompaniesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "generated_contents_company_groups_generated_contents",
				Columns:    []*schema.Column{GeneratedContentsColumns[15]},
				RefColumns: []*schema.Column{CompanyGroupsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "generated_contents_model_configs_generated_contents",
				Columns:    []*schema.Column{GeneratedContentsColumns[16]},
				RefColumns: []*schema.Column{ModelConfigsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "generated_contents_prompts_generated_contents",
				Columns:    []*schema.Column{GeneratedContentsColumns[17]},
				RefColumns: []*schema.Column{PromptsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "generatedcontent_content_hash",
				Unique:  false,
				Columns: []*schema.Column{GeneratedContentsColumns[3]},
			},
			{
				Name:    "generatedcontent_company_id_content_stage",
				Unique:  false,
				Columns: []*schema.Column{GeneratedContentsColumns[14], GeneratedContentsColumns[6]},
			},
			{
				Name:    "generatedcontent_system_prompt_id_model_config_id",
				Unique:  false,
				Columns: []*schema.Column{GeneratedContentsColumns[17], GeneratedContentsColumns[16]},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "job_type", Type: field.TypeEnum, Enums: []string{"test", "company_ingestion", "filing_ingestion", "content_generation", "bulk_ingest", "company_group_pipeline", "ingest_pipeline", "full_pipeline"}},
		{Name: "params", Type: field.TypeJSON, Nullable: true},
		{Name: "priority", Type: field.TypeInt, Default: 5},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "max_retries", Type: field.TypeInt, Default: 3},
		{Name: "worker_id", Type: field.TypeString, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "job_status_priority_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[4], JobsColumns[3], JobsColumns[5]},
			},
			{
				Name:    "job_status_job_type",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[4], JobsColumns[1]},
			},
			{
				Name:    "job_status_updated_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[4], JobsColumns[8]},
			},
		},
	}
	// ModelConfigsColumns holds the columns for the "model_configs" table.
	ModelConfigsColumns = []*schema.Column{
		{Name: "model_config_id", Type: field.TypeString, Unique: true},
		{Name: "model", Type: field.TypeString},
		{Name: "options_json", Type: field.TypeString, Size: 2147483647},
		{Name: "content_hash", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ModelConfigsTable holds the schema information for the "model_configs" table.
	ModelConfigsTable = &schema.Table{
		Name:       "model_configs",
		Columns:    ModelConfigsColumns,
		PrimaryKey: []*schema.Column{ModelConfigsColumns[0]},
	}
	// PipelineRunsColumns holds the columns for the "pipeline_runs" table.
	PipelineRunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "forms", Type: field.TypeJSON, Nullable: true},
		{Name: "trigger", Type: field.TypeEnum, Enums: []string{"manual", "scheduled"}, Default: "manual"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed"}, Default: "pending"},
		{Name: "jobs_created", Type: field.TypeInt, Default: 0},
		{Name: "jobs_completed", Type: field.TypeInt, Default: 0},
		{Name: "jobs_failed", Type: field.TypeInt, Default: 0},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "run_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "company_id", Type: field.TypeString, Nullable: true},
	}
	// PipelineRunsTable holds the schema information for the "pipeline_runs" table.
	PipelineRunsTable = &schema.Table{
		Name:       "pipeline_runs",
		Columns:    PipelineRunsColumns,
		PrimaryKey: []*schema.Column{PipelineRunsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "pipeline_runs_companies_pipeline_runs",
				Columns:    []*schema.Column{PipelineRunsColumns[12]},
				RefColumns: []*schema.Column{CompaniesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "pipelinerun_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{PipelineRunsColumns[3], PipelineRunsColumns[11]},
			},
			{
				Name:    "pipelinerun_company_id",
				Unique:  false,
				Columns: []*schema.Column{PipelineRunsColumns[12]},
			},
		},
	}
	// PromptsColumns holds the columns for the "prompts" table.
	PromptsColumns = []*schema.Column{
		{Name: "prompt_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"system", "user", "assistant"}, Default: "system"},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "content_hash", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PromptsTable holds the schema information for the "prompts" table.
	PromptsTable = &schema.Table{
		Name:       "prompts",
		Columns:    PromptsColumns,
		PrimaryKey: []*schema.Column{PromptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "prompt_name_content_hash",
				Unique:  true,
				Columns: []*schema.Column{PromptsColumns[1], PromptsColumns[5]},
			},
		},
	}
	// GeneratedContentSourceDocumentsColumns holds the columns for the "generated_content_source_documents" table.
	GeneratedContentSourceDocumentsColumns = []*schema.Column{
		{Name: "generated_content_id", Type: field.TypeString},
		{Name: "document_id", Type: field.TypeString},
	}
	// GeneratedContentSourceDocumentsTable holds the schema information for the "generated_content_source_documents" table.
	GeneratedContentSourceDocumentsTable = &schema.Table{
		Name:       "generated_content_source_documents",
		Columns:    GeneratedContentSourceDocumentsColumns,
		PrimaryKey: []*schema.Column{GeneratedContentSourceDocumentsColumns[0], GeneratedContentSourceDocumentsColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "generated_content_source_documents_generated_content_id",
				Columns:    []*schema.Column{GeneratedContentSourceDocumentsColumns[0]},
				RefColumns: []*schema.Column{GeneratedContentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "generated_content_source_documents_document_id",
				Columns:    []*schema.Column{GeneratedContentSourceDocumentsColumns[1]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// GeneratedContentSourceContentColumns holds the columns for the "generated_content_source_content" table.
	GeneratedContentSourceContentColumns = []*schema.Column{
		{Name: "generated_content_id", Type: field.TypeString},
		{Name: "derived_content_id", Type: field.TypeString},
	}
	// GeneratedContentSourceContentTable holds the schema information for the "generated_content_source_content" table.
	GeneratedContentSourceContentTable = &schema.Table{
		Name:       "generated_content_source_content",
		Columns:    GeneratedContentSourceContentColumns,
		PrimaryKey: []*schema.Column{GeneratedContentSourceContentColumns[0], GeneratedContentSourceContentColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "generated_content_source_content_generated_content_id",
				Columns:    []*schema.Column{GeneratedContentSourceContentColumns[0]},
				RefColumns: []*schema.Column{GeneratedContentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "generated_content_source_content_derived_content_id",
				Columns:    []*schema.Column{GeneratedContentSourceContentColumns[1]},
				RefColumns: []*schema.Column{GeneratedContentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CompaniesTable,
		CompanyGroupsTable,
		DocumentsTable,
		FilingsTable,
		FinancialConceptsTable,
		FinancialValuesTable,
		GeneratedContentsTable,
		JobsTable,
		ModelConfigsTable,
		PipelineRunsTable,
		PromptsTable,
		GeneratedContentSourceDocumentsTable,
		GeneratedContentSourceContentTable,
	}
)

func init() {
	DocumentsTable.ForeignKeys[0].RefTable = CompaniesTable
	DocumentsTable.ForeignKeys[1].RefTable = FilingsTable
	FilingsTable.ForeignKeys[0].RefTable = CompaniesTable
	FinancialValuesTable.ForeignKeys[0].RefTable = CompaniesTable
	FinancialValuesTable.ForeignKeys[1].RefTable = FilingsTable
	FinancialValuesTable.ForeignKeys[2].RefTable = FinancialConceptsTable
	GeneratedContentsTable.ForeignKeys[0].RefTable = CompaniesTable
	GeneratedContentsTable.ForeignKeys[1].RefTable = CompanyGroupsTable
	GeneratedContentsTable.ForeignKeys[2].RefTable = ModelConfigsTable
	GeneratedContentsTable.ForeignKeys[3].RefTable = PromptsTable
	PipelineRunsTable.ForeignKeys[0].RefTable = CompaniesTable
	GeneratedContentSourceDocumentsTable.ForeignKeys[0].RefTable = GeneratedContentsTable
	GeneratedContentSourceDocumentsTable.ForeignKeys[1].RefTable = DocumentsTable
	GeneratedContentSourceContentTable.ForeignKeys[0].RefTable = GeneratedContentsTable
	GeneratedContentSourceContentTable.ForeignKeys[1].RefTable = GeneratedContentsTable
}
