// Code generated by ent, DO NOT EDIT.

package company

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/filinglens/filinglens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Company {
	return predicate.Company(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Company {
	return predicate.Company(sql.FieldContainsFold(FieldID, id))
}

// Ticker applies equality check predicate on the "ticker" field. It's identical to TickerEQ.
func Ticker(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldTicker, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldName, v))
}

// IndustryCode applies equality check predicate on the "industry_code" field. It's identical to IndustryCodeEQ.
func IndustryCode(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldIndustryCode, v))
}

// FiscalYearEnd applies equality check predicate on the "fiscal_year_end" field. It's identical to FiscalYearEndEQ.
func FiscalYearEnd(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldFiscalYearEnd, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldUpdatedAt, v))
}

// TickerEQ applies the EQ predicate on the "ticker" field.
func TickerEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldTicker, v))
}

// TickerNEQ applies the NEQ predicate on the "ticker" field.
func TickerNEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldTicker, v))
}

// TickerIn applies the In predicate on the "ticker" field.
func TickerIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldTicker, vs...))
}

// TickerNotIn applies the NotIn predicate on the "ticker" field.
func TickerNotIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldTicker, vs...))
}

// TickerGT applies the GT predicate on the "ticker" field.
func TickerGT(v string) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldTicker, v))
}

// TickerGTE applies the GTE predicate on the "ticker" field.
func TickerGTE(v string) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldTicker, v))
}

// TickerLT applies the LT predicate on the "ticker" field.
func TickerLT(v string) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldTicker, v))
}

// TickerLTE applies the LTE predicate on the "ticker" field.
func TickerLTE(v string) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldTicker, v))
}

// TickerContains applies the Contains predicate on the "ticker" field.
func TickerContains(v string) predicate.Company {
	return predicate.Company(sql.FieldContains(FieldTicker, v))
}

// TickerHasPrefix applies the HasPrefix predicate on the "ticker" field.
func TickerHasPrefix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasPrefix(FieldTicker, v))
}

// TickerHasSuffix applies the HasSuffix predicate on the "ticker" field.
func TickerHasSuffix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasSuffix(FieldTicker, v))
}

// TickerEqualFold applies the EqualFold predicate on the "ticker" field.
func TickerEqualFold(v string) predicate.Company {
	return predicate.Company(sql.FieldEqualFold(FieldTicker, v))
}

// TickerContainsFold applies the ContainsFold predicate on the "ticker" field.
func TickerContainsFold(v string) predicate.Company {
	return predicate.Company(sql.FieldContainsFold(FieldTicker, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Company {
	return predicate.Company(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Company {
	return predicate.Company(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Company {
	return predicate.Company(sql.FieldContainsFold(FieldName, v))
}

// ExchangesIsNil applies the IsNil predicate on the "exchanges" field.
func ExchangesIsNil() predicate.Company {
	return predicate.Company(sql.FieldIsNull(FieldExchanges))
}

// ExchangesNotNil applies the NotNil predicate on the "exchanges" field.
func ExchangesNotNil() predicate.Company {
	return predicate.Company(sql.FieldNotNull(FieldExchanges))
}

// IndustryCodeEQ applies the EQ predicate on the "industry_code" field.
func IndustryCodeEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldIndustryCode, v))
}

// IndustryCodeNEQ applies the NEQ predicate on the "industry_code" field.
func IndustryCodeNEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldIndustryCode, v))
}

// IndustryCodeIn applies the In predicate on the "industry_code" field.
func IndustryCodeIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldIndustryCode, vs...))
}

// IndustryCodeNotIn applies the NotIn predicate on the "industry_code" field.
func IndustryCodeNotIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldIndustryCode, vs...))
}

// IndustryCodeGT applies the GT predicate on the "industry_code" field.
func IndustryCodeGT(v string) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldIndustryCode, v))
}

// IndustryCodeGTE applies the GTE predicate on the "industry_code" field.
func IndustryCodeGTE(v string) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldIndustryCode, v))
}

// IndustryCodeLT applies the LT predicate on the "industry_code" field.
func IndustryCodeLT(v string) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldIndustryCode, v))
}

// IndustryCodeLTE applies the LTE predicate on the "industry_code" field.
func IndustryCodeLTE(v string) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldIndustryCode, v))
}

// IndustryCodeContains applies the Contains predicate on the "industry_code" field.
func IndustryCodeContains(v string) predicate.Company {
	return predicate.Company(sql.FieldContains(FieldIndustryCode, v))
}

// IndustryCodeHasPrefix applies the HasPrefix predicate on the "industry_code" field.
func IndustryCodeHasPrefix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasPrefix(FieldIndustryCode, v))
}

// IndustryCodeHasSuffix applies the HasSuffix predicate on the "industry_code" field.
func IndustryCodeHasSuffix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasSuffix(FieldIndustryCode, v))
}

// IndustryCodeIsNil applies the IsNil predicate on the "industry_code" field.
func IndustryCodeIsNil() predicate.Company {
	return predicate.Company(sql.FieldIsNull(FieldIndustryCode))
}

// IndustryCodeNotNil applies the NotNil predicate on the "industry_code" field.
func IndustryCodeNotNil() predicate.Company {
	return predicate.Company(sql.FieldNotNull(FieldIndustryCode))
}

// IndustryCodeEqualFold applies the EqualFold predicate on the "industry_code" field.
func IndustryCodeEqualFold(v string) predicate.Company {
	return predicate.Company(sql.FieldEqualFold(FieldIndustryCode, v))
}

// IndustryCodeContainsFold applies the ContainsFold predicate on the "industry_code" field.
func IndustryCodeContainsFold(v string) predicate.Company {
	return predicate.Company(sql.FieldContainsFold(FieldIndustryCode, v))
}

// FiscalYearEndEQ applies the EQ predicate on the "fiscal_year_end" field.
func FiscalYearEndEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldFiscalYearEnd, v))
}

// FiscalYearEndNEQ applies the NEQ predicate on the "fiscal_year_end" field.
func FiscalYearEndNEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldFiscalYearEnd, v))
}

// FiscalYearEndIn applies the In predicate on the "fiscal_year_end" field.
func FiscalYearEndIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldFiscalYearEnd, vs...))
}

// FiscalYearEndNotIn applies the NotIn predicate on the "fiscal_year_end" field.
func FiscalYearEndNotIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldFiscalYearEnd, vs...))
}

// FiscalYearEndGT applies the GT predicate on the "fiscal_year_end" field.
func FiscalYearEndGT(v string) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldFiscalYearEnd, v))
}

// FiscalYearEndGTE applies the GTE predicate on the "fiscal_year_end" field.
func FiscalYearEndGTE(v string) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldFiscalYearEnd, v))
}

// FiscalYearEndLT applies the LT predicate on the "fiscal_year_end" field.
func FiscalYearEndLT(v string) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldFiscalYearEnd, v))
}

// FiscalYearEndLTE applies the LTE predicate on the "fiscal_year_end" field.
func FiscalYearEndLTE(v string) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldFiscalYearEnd, v))
}

// FiscalYearEndContains applies the Contains predicate on the "fiscal_year_end" field.
func FiscalYearEndContains(v string) predicate.Company {
	return predicate.Company(sql.FieldContains(FieldFiscalYearEnd, v))
}

// FiscalYearEndHasPrefix applies the HasPrefix predicate on the "fiscal_year_end" field.
func FiscalYearEndHasPrefix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasPrefix(FieldFiscalYearEnd, v))
}

// FiscalYearEndHasSuffix applies the HasSuffix predicate on the "fiscal_year_end" field.
func FiscalYearEndHasSuffix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasSuffix(FieldFiscalYearEnd, v))
}

// FiscalYearEndIsNil applies the IsNil predicate on the "fiscal_year_end" field.
func FiscalYearEndIsNil() predicate.Company {
	return predicate.Company(sql.FieldIsNull(FieldFiscalYearEnd))
}

// FiscalYearEndNotNil applies the NotNil predicate on the "fiscal_year_end" field.
func FiscalYearEndNotNil() predicate.Company {
	return predicate.Company(sql.FieldNotNull(FieldFiscalYearEnd))
}

// FiscalYearEndEqualFold applies the EqualFold predicate on the "fiscal_year_end" field.
func FiscalYearEndEqualFold(v string) predicate.Company {
	return predicate.Company(sql.FieldEqualFold(FieldFiscalYearEnd, v))
}

// FiscalYearEndContainsFold applies the ContainsFold predicate on the "fiscal_year_end" field.
func FiscalYearEndContainsFold(v string) predicate.Company {
	return predicate.Company(sql.FieldContainsFold(FieldFiscalYearEnd, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasFilings applies the HasEdge predicate on the "filings" edge.
func HasFilings() predicate.Company {
	return predicate.Company(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FilingsTable, FilingsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFilingsWith applies the HasEdge predicate on the "filings" edge with a given conditions (other predicates).
func HasFilingsWith(preds ...predicate.Filing) predicate.Company {
	return predicate.Company(func(s *sql.Selector) {
		step := newFilingsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDocuments applies the HasEdge predicate on the "documents" edge.
func HasDocuments() predicate.Company {
	return predicate.Company(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DocumentsTable, DocumentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentsWith applies the HasEdge predicate on the "documents" edge with a given conditions (other predicates).
func HasDocumentsWith(preds ...predicate.Document) predicate.Company {
	return predicate.Company(func(s *sql.Selector) {
		step := newDocumentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFinancialValues applies the HasEdge predicate on the "financial_values" edge.
func HasFinancialValues() predicate.Company {
	return predicate.Company(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FinancialValuesTable, FinancialValuesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFinancialValuesWith applies the HasEdge predicate on the "financial_values" edge with a given conditions (other predicates).
func HasFinancialValuesWith(preds ...predicate.FinancialValue) predicate.Company {
	return predicate.Company(func(s *sql.Selector) {
		step := newFinancialValuesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasGeneratedContents applies the HasEdge predicate on the "generated_contents" edge.
func HasGeneratedContents() predicate.Company {
	return predicate.Company(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, GeneratedContentsTable, GeneratedContentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGeneratedContentsWith applies the HasEdge predicate on the "generated_contents" edge with a given conditions (other predicates).
func HasGeneratedContentsWith(preds ...predicate.GeneratedContent) predicate.Company {
	return predicate.Company(func(s *sql.Selector) {
		step := newGeneratedContentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPipelineRuns applies the HasEdge predicate on the "pipeline_runs" edge.
func HasPipelineRuns() predicate.Company {
	return predicate.Company(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PipelineRunsTable, PipelineRunsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPipelineRunsWith applies the HasEdge predicate on the "pipeline_runs" edge with a given conditions (other predicates).
func HasPipelineRunsWith(preds ...predicate.PipelineRun) predicate.Company {
	return predicate.Company(func(s *sql.Selector) {
		step := newPipelineRunsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Company) predicate.Company {
	return predicate.Company(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Company) predicate.Company {
	return predicate.Company(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Company) predicate.Company {
	return predicate.Company(sql.NotPredicates(p))
}
