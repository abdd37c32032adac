// Code generated by ent, DO NOT EDIT.

package filing

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/filinglens/filinglens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Filing {
	return predicate.Filing(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Filing {
	return predicate.Filing(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Filing {
	return predicate.Filing(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Filing {
	return predicate.Filing(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Filing {
	return predicate.Filing(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Filing {
	return predicate.Filing(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Filing {
	return predicate.Filing(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Filing {
	return predicate.Filing(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Filing {
	return predicate.Filing(sql.FieldContainsFold(FieldID, id))
}

// CompanyID applies equality check predicate on the "company_id" field. It's identical to CompanyIDEQ.
func CompanyID(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldCompanyID, v))
}

// AccessionNumber applies equality check predicate on the "accession_number" field. It's identical to AccessionNumberEQ.
func AccessionNumber(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldAccessionNumber, v))
}

// FormType applies equality check predicate on the "form_type" field. It's identical to FormTypeEQ.
func FormType(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldFormType, v))
}

// FilingDate applies equality check predicate on the "filing_date" field. It's identical to FilingDateEQ.
func FilingDate(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldFilingDate, v))
}

// PeriodOfReport applies equality check predicate on the "period_of_report" field. It's identical to PeriodOfReportEQ.
func PeriodOfReport(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldPeriodOfReport, v))
}

// SourceURL applies equality check predicate on the "source_url" field. It's identical to SourceURLEQ.
func SourceURL(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldSourceURL, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldCreatedAt, v))
}

// CompanyIDEQ applies the EQ predicate on the "company_id" field.
func CompanyIDEQ(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyIDNEQ applies the NEQ predicate on the "company_id" field.
func CompanyIDNEQ(v string) predicate.Filing {
	return predicate.Filing(sql.FieldNEQ(FieldCompanyID, v))
}

// CompanyIDIn applies the In predicate on the "company_id" field.
func CompanyIDIn(vs ...string) predicate.Filing {
	return predicate.Filing(sql.FieldIn(FieldCompanyID, vs...))
}

// CompanyIDNotIn applies the NotIn predicate on the "company_id" field.
func CompanyIDNotIn(vs ...string) predicate.Filing {
	return predicate.Filing(sql.FieldNotIn(FieldCompanyID, vs...))
}

// CompanyIDGT applies the GT predicate on the "company_id" field.
func CompanyIDGT(v string) predicate.Filing {
	return predicate.Filing(sql.FieldGT(FieldCompanyID, v))
}

// CompanyIDGTE applies the GTE predicate on the "company_id" field.
func CompanyIDGTE(v string) predicate.Filing {
	return predicate.Filing(sql.FieldGTE(FieldCompanyID, v))
}

// CompanyIDLT applies the LT predicate on the "company_id" field.
func CompanyIDLT(v string) predicate.Filing {
	return predicate.Filing(sql.FieldLT(FieldCompanyID, v))
}

// CompanyIDLTE applies the LTE predicate on the "company_id" field.
func CompanyIDLTE(v string) predicate.Filing {
	return predicate.Filing(sql.FieldLTE(FieldCompanyID, v))
}

// CompanyIDContains applies the Contains predicate on the "company_id" field.
func CompanyIDContains(v string) predicate.Filing {
	return predicate.Filing(sql.FieldContains(FieldCompanyID, v))
}

// CompanyIDHasPrefix applies the HasPrefix predicate on the "company_id" field.
func CompanyIDHasPrefix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldHasPrefix(FieldCompanyID, v))
}

// CompanyIDHasSuffix applies the HasSuffix predicate on the "company_id" field.
func CompanyIDHasSuffix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldHasSuffix(FieldCompanyID, v))
}

// CompanyIDEqualFold applies the EqualFold predicate on the "company_id" field.
func CompanyIDEqualFold(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEqualFold(FieldCompanyID, v))
}

// CompanyIDContainsFold applies the ContainsFold predicate on the "company_id" field.
func CompanyIDContainsFold(v string) predicate.Filing {
	return predicate.Filing(sql.FieldContainsFold(FieldCompanyID, v))
}

// AccessionNumberEQ applies the EQ predicate on the "accession_number" field.
func AccessionNumberEQ(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldAccessionNumber, v))
}

// AccessionNumberNEQ applies the NEQ predicate on the "accession_number" field.
func AccessionNumberNEQ(v string) predicate.Filing {
	return predicate.Filing(sql.FieldNEQ(FieldAccessionNumber, v))
}

// AccessionNumberIn applies the In predicate on the "accession_number" field.
func AccessionNumberIn(vs ...string) predicate.Filing {
	return predicate.Filing(sql.FieldIn(FieldAccessionNumber, vs...))
}

// AccessionNumberNotIn applies the NotIn predicate on the "accession_number" field.
func AccessionNumberNotIn(vs ...string) predicate.Filing {
	return predicate.Filing(sql.FieldNotIn(FieldAccessionNumber, vs...))
}

// AccessionNumberGT applies the GT predicate on the "accession_number" field.
func AccessionNumberGT(v string) predicate.Filing {
	return predicate.Filing(sql.FieldGT(FieldAccessionNumber, v))
}

// AccessionNumberGTE applies the GTE predicate on the "accession_number" field.
func AccessionNumberGTE(v string) predicate.Filing {
	return predicate.Filing(sql.FieldGTE(FieldAccessionNumber, v))
}

// AccessionNumberLT applies the LT predicate on the "accession_number" field.
func AccessionNumberLT(v string) predicate.Filing {
	return predicate.Filing(sql.FieldLT(FieldAccessionNumber, v))
}

// AccessionNumberLTE applies the LTE predicate on the "accession_number" field.
func AccessionNumberLTE(v string) predicate.Filing {
	return predicate.Filing(sql.FieldLTE(FieldAccessionNumber, v))
}

// AccessionNumberContains applies the Contains predicate on the "accession_number" field.
func AccessionNumberContains(v string) predicate.Filing {
	return predicate.Filing(sql.FieldContains(FieldAccessionNumber, v))
}

// AccessionNumberHasPrefix applies the HasPrefix predicate on the "accession_number" field.
func AccessionNumberHasPrefix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldHasPrefix(FieldAccessionNumber, v))
}

// AccessionNumberHasSuffix applies the HasSuffix predicate on the "accession_number" field.
func AccessionNumberHasSuffix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldHasSuffix(FieldAccessionNumber, v))
}

// AccessionNumberEqualFold applies the EqualFold predicate on the "accession_number" field.
func AccessionNumberEqualFold(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEqualFold(FieldAccessionNumber, v))
}

// AccessionNumberContainsFold applies the ContainsFold predicate on the "accession_number" field.
func AccessionNumberContainsFold(v string) predicate.Filing {
	return predicate.Filing(sql.FieldContainsFold(FieldAccessionNumber, v))
}

// FormTypeEQ applies the EQ predicate on the "form_type" field.
func FormTypeEQ(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldFormType, v))
}

// FormTypeNEQ applies the NEQ predicate on the "form_type" field.
func FormTypeNEQ(v string) predicate.Filing {
	return predicate.Filing(sql.FieldNEQ(FieldFormType, v))
}

// FormTypeIn applies the In predicate on the "form_type" field.
func FormTypeIn(vs ...string) predicate.Filing {
	return predicate.Filing(sql.FieldIn(FieldFormType, vs...))
}

// FormTypeNotIn applies the NotIn predicate on the "form_type" field.
func FormTypeNotIn(vs ...string) predicate.Filing {
	return predicate.Filing(sql.FieldNotIn(FieldFormType, vs...))
}

// FormTypeGT applies the GT predicate on the "form_type" field.
func FormTypeGT(v string) predicate.Filing {
	return predicate.Filing(sql.FieldGT(FieldFormType, v))
}

// FormTypeGTE applies the GTE predicate on the "form_type" field.
func FormTypeGTE(v string) predicate.Filing {
	return predicate.Filing(sql.FieldGTE(FieldFormType, v))
}

// FormTypeLT applies the LT predicate on the "form_type" field.
func FormTypeLT(v string) predicate.Filing {
	return predicate.Filing(sql.FieldLT(FieldFormType, v))
}

// FormTypeLTE applies the LTE predicate on the "form_type" field.
func FormTypeLTE(v string) predicate.Filing {
	return predicate.Filing(sql.FieldLTE(FieldFormType, v))
}

// FormTypeContains applies the Contains predicate on the "form_type" field.
func FormTypeContains(v string) predicate.Filing {
	return predicate.Filing(sql.FieldContains(FieldFormType, v))
}

// FormTypeHasPrefix applies the HasPrefix predicate on the "form_type" field.
func FormTypeHasPrefix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldHasPrefix(FieldFormType, v))
}

// FormTypeHasSuffix applies the HasSuffix predicate on the "form_type" field.
func FormTypeHasSuffix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldHasSuffix(FieldFormType, v))
}

// FormTypeEqualFold applies the EqualFold predicate on the "form_type" field.
func FormTypeEqualFold(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEqualFold(FieldFormType, v))
}

// FormTypeContainsFold applies the ContainsFold predicate on the "form_type" field.
func FormTypeContainsFold(v string) predicate.Filing {
	return predicate.Filing(sql.FieldContainsFold(FieldFormType, v))
}

// FilingDateEQ applies the EQ predicate on the "filing_date" field.
func FilingDateEQ(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldFilingDate, v))
}

// FilingDateNEQ applies the NEQ predicate on the "filing_date" field.
func FilingDateNEQ(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldNEQ(FieldFilingDate, v))
}

// FilingDateIn applies the In predicate on the "filing_date" field.
func FilingDateIn(vs ...time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldIn(FieldFilingDate, vs...))
}

// FilingDateNotIn applies the NotIn predicate on the "filing_date" field.
func FilingDateNotIn(vs ...time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldNotIn(FieldFilingDate, vs...))
}

// FilingDateGT applies the GT predicate on the "filing_date" field.
func FilingDateGT(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldGT(FieldFilingDate, v))
}

// FilingDateGTE applies the GTE predicate on the "filing_date" field.
func FilingDateGTE(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldGTE(FieldFilingDate, v))
}

// FilingDateLT applies the LT predicate on the "filing_date" field.
func FilingDateLT(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldLT(FieldFilingDate, v))
}

// FilingDateLTE applies the LTE predicate on the "filing_date" field.
func FilingDateLTE(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldLTE(FieldFilingDate, v))
}

// PeriodOfReportEQ applies the EQ predicate on the "period_of_report" field.
func PeriodOfReportEQ(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldPeriodOfReport, v))
}

// PeriodOfReportNEQ applies the NEQ predicate on the "period_of_report" field.
func PeriodOfReportNEQ(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldNEQ(FieldPeriodOfReport, v))
}

// PeriodOfReportIn applies the In predicate on the "period_of_report" field.
func PeriodOfReportIn(vs ...time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldIn(FieldPeriodOfReport, vs...))
}

// PeriodOfReportNotIn applies the NotIn predicate on the "period_of_report" field.
func PeriodOfReportNotIn(vs ...time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldNotIn(FieldPeriodOfReport, vs...))
}

// PeriodOfReportGT applies the GT predicate on the "period_of_report" field.
func PeriodOfReportGT(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldGT(FieldPeriodOfReport, v))
}

// PeriodOfReportGTE applies the GTE predicate on the "period_of_report" field.
func PeriodOfReportGTE(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldGTE(FieldPeriodOfReport, v))
}

// PeriodOfReportLT applies the LT predicate on the "period_of_report" field.
func PeriodOfReportLT(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldLT(FieldPeriodOfReport, v))
}

// PeriodOfReportLTE applies the LTE predicate on the "period_of_report" field.
func PeriodOfReportLTE(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldLTE(FieldPeriodOfReport, v))
}

// PeriodOfReportIsNil applies the IsNil predicate on the "period_of_report" field.
func PeriodOfReportIsNil() predicate.Filing {
	return predicate.Filing(sql.FieldIsNull(FieldPeriodOfReport))
}

// PeriodOfReportNotNil applies the NotNil predicate on the "period_of_report" field.
func PeriodOfReportNotNil() predicate.Filing {
	return predicate.Filing(sql.FieldNotNull(FieldPeriodOfReport))
}

// SourceURLEQ applies the EQ predicate on the "source_url" field.
func SourceURLEQ(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldSourceURL, v))
}

// SourceURLNEQ applies the NEQ predicate on the "source_url" field.
func SourceURLNEQ(v string) predicate.Filing {
	return predicate.Filing(sql.FieldNEQ(FieldSourceURL, v))
}

// SourceURLIn applies the In predicate on the "source_url" field.
func SourceURLIn(vs ...string) predicate.Filing {
	return predicate.Filing(sql.FieldIn(FieldSourceURL, vs...))
}

// SourceURLNotIn applies the NotIn predicate on the "source_url" field.
func SourceURLNotIn(vs ...string) predicate.Filing {
	return predicate.Filing(sql.FieldNotIn(FieldSourceURL, vs...))
}

// SourceURLGT applies the GT predicate on the "source_url" field.
func SourceURLGT(v string) predicate.Filing {
	return predicate.Filing(sql.FieldGT(FieldSourceURL, v))
}

// SourceURLGTE applies the GTE predicate on the "source_url" field.
func SourceURLGTE(v string) predicate.Filing {
	return predicate.Filing(sql.FieldGTE(FieldSourceURL, v))
}

// SourceURLLT applies the LT predicate on the "source_url" field.
func SourceURLLT(v string) predicate.Filing {
	return predicate.Filing(sql.FieldLT(FieldSourceURL, v))
}

// SourceURLLTE applies the LTE predicate on the "source_url" field.
func SourceURLLTE(v string) predicate.Filing {
	return predicate.Filing(sql.FieldLTE(FieldSourceURL, v))
}

// SourceURLContains applies the Contains predicate on the "source_url" field.
func SourceURLContains(v string) predicate.Filing {
	return predicate.Filing(sql.FieldContains(FieldSourceURL, v))
}

// SourceURLHasPrefix applies the HasPrefix predicate on the "source_url" field.
func SourceURLHasPrefix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldHasPrefix(FieldSourceURL, v))
}

// SourceURLHasSuffix applies the HasSuffix predicate on the "source_url" field.
func SourceURLHasSuffix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldHasSuffix(FieldSourceURL, v))
}

// SourceURLIsNil applies the IsNil predicate on the "source_url" field.
func SourceURLIsNil() predicate.Filing {
	return predicate.Filing(sql.FieldIsNull(FieldSourceURL))
}

// SourceURLNotNil applies the NotNil predicate on the "source_url" field.
func SourceURLNotNil() predicate.Filing {
	return predicate.Filing(sql.FieldNotNull(FieldSourceURL))
}

// SourceURLEqualFold applies the EqualFold predicate on the "source_url" field.
func SourceURLEqualFold(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEqualFold(FieldSourceURL, v))
}

// SourceURLContainsFold applies the ContainsFold predicate on the "source_url" field.
func SourceURLContainsFold(v string) predicate.Filing {
	return predicate.Filing(sql.FieldContainsFold(FieldSourceURL, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldLTE(FieldCreatedAt, v))
}

// HasCompany applies the HasEdge predicate on the "company" edge.
func HasCompany() predicate.Filing {
	return predicate.Filing(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CompanyTable, CompanyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCompanyWith applies the HasEdge predicate on the "company" edge with a given conditions (other predicates).
func HasCompanyWith(preds ...predicate.Company) predicate.Filing {
	return predicate.Filing(func(s *sql.Selector) {
		step := newCompanyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDocuments applies the HasEdge predicate on the "documents" edge.
func HasDocuments() predicate.Filing {
	return predicate.Filing(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DocumentsTable, DocumentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentsWith applies the HasEdge predicate on the "documents" edge with a given conditions (other predicates).
func HasDocumentsWith(preds ...predicate.Document) predicate.Filing {
	return predicate.Filing(func(s *sql.Selector) {
		step := newDocumentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFinancialValues applies the HasEdge predicate on the "financial_values" edge.
func HasFinancialValues() predicate.Filing {
	return predicate.Filing(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FinancialValuesTable, FinancialValuesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFinancialValuesWith applies the HasEdge predicate on the "financial_values" edge with a given conditions (other predicates).
func HasFinancialValuesWith(preds ...predicate.FinancialValue) predicate.Filing {
	return predicate.Filing(func(s *sql.Selector) {
		step := newFinancialValuesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Filing) predicate.Filing {
	return predicate.Filing(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Filing) predicate.Filing {
	return predicate.Filing(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Filing) predicate.Filing {
	return predicate.Filing(sql.NotPredicates(p))
}
