// Code generated by ent, DO NOT EDIT.

package financialvalue

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/filinglens/filinglens/ent/predicate"
	"github.com/shopspring/decimal"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldContainsFold(FieldID, id))
}

// CompanyID applies equality check predicate on the "company_id" field. It's identical to CompanyIDEQ.
func CompanyID(v string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldEQ(FieldCompanyID, v))
}

// ConceptID applies equality check predicate on the "concept_id" field. It's identical to ConceptIDEQ.
func ConceptID(v string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldEQ(FieldConceptID, v))
}

// FilingID applies equality check predicate on the "filing_id" field. It's identical to FilingIDEQ.
func FilingID(v string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldEQ(FieldFilingID, v))
}

// ValueDate applies equality check predicate on the "value_date" field. It's identical to ValueDateEQ.
func ValueDate(v time.Time) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldEQ(FieldValueDate, v))
}

// Value applies equality check predicate on the "value" field. It's identical to ValueEQ.
func Value(v decimal.Decimal) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldEQ(FieldValue, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldEQ(FieldUpdatedAt, v))
}

// CompanyIDEQ applies the EQ predicate on the "company_id" field.
func CompanyIDEQ(v string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyIDNEQ applies the NEQ predicate on the "company_id" field.
func CompanyIDNEQ(v string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldNEQ(FieldCompanyID, v))
}

// CompanyIDIn applies the In predicate on the "company_id" field.
func CompanyIDIn(vs ...string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldIn(FieldCompanyID, vs...))
}

// CompanyIDNotIn applies the NotIn predicate on the "company_id" field.
func CompanyIDNotIn(vs ...string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldNotIn(FieldCompanyID, vs...))
}

// CompanyIDGT applies the GT predicate on the "company_id" field.
func CompanyIDGT(v string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldGT(FieldCompanyID, v))
}

// CompanyIDGTE applies the GTE predicate on the "company_id" field.
func CompanyIDGTE(v string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldGTE(FieldCompanyID, v))
}

// CompanyIDLT applies the LT predicate on the "company_id" field.
func CompanyIDLT(v string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldLT(FieldCompanyID, v))
}

// CompanyIDLTE applies the LTE predicate on the "company_id" field.
func CompanyIDLTE(v string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldLTE(FieldCompanyID, v))
}

// CompanyIDContains applies the Contains predicate on the "company_id" field.
func CompanyIDContains(v string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldContains(FieldCompanyID, v))
}

// CompanyIDHasPrefix applies the HasPrefix predicate on the "company_id" field.
func CompanyIDHasPrefix(v string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldHasPrefix(FieldCompanyID, v))
}

// CompanyIDHasSuffix applies the HasSuffix predicate on the "company_id" field.
func CompanyIDHasSuffix(v string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldHasSuffix(FieldCompanyID, v))
}

// CompanyIDEqualFold applies the EqualFold predicate on the "company_id" field.
func CompanyIDEqualFold(v string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldEqualFold(FieldCompanyID, v))
}

// CompanyIDContainsFold applies the ContainsFold predicate on the "company_id" field.
func CompanyIDContainsFold(v string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldContainsFold(FieldCompanyID, v))
}

// ConceptIDEQ applies the EQ predicate on the "concept_id" field.
func ConceptIDEQ(v string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldEQ(FieldConceptID, v))
}

// ConceptIDNEQ applies the NEQ predicate on the "concept_id" field.
func ConceptIDNEQ(v string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldNEQ(FieldConceptID, v))
}

// ConceptIDIn applies the In predicate on the "concept_id" field.
func ConceptIDIn(vs ...string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldIn(FieldConceptID, vs...))
}

// ConceptIDNotIn applies the NotIn predicate on the "concept_id" field.
func ConceptIDNotIn(vs ...string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldNotIn(FieldConceptID, vs...))
}

// ConceptIDGT applies the GT predicate on the "concept_id" field.
func ConceptIDGT(v string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldGT(FieldConceptID, v))
}

// ConceptIDGTE applies the GTE predicate on the "concept_id" field.
func ConceptIDGTE(v string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldGTE(FieldConceptID, v))
}

// ConceptIDLT applies the LT predicate on the "concept_id" field.
func ConceptIDLT(v string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldLT(FieldConceptID, v))
}

// ConceptIDLTE applies the LTE predicate on the "concept_id" field.
func ConceptIDLTE(v string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldLTE(FieldConceptID, v))
}

// ConceptIDContains applies the Contains predicate on the "concept_id" field.
func ConceptIDContains(v string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldContains(FieldConceptID, v))
}

// ConceptIDHasPrefix applies the HasPrefix predicate on the "concept_id" field.
func ConceptIDHasPrefix(v string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldHasPrefix(FieldConceptID, v))
}

// ConceptIDHasSuffix applies the HasSuffix predicate on the "concept_id" field.
func ConceptIDHasSuffix(v string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldHasSuffix(FieldConceptID, v))
}

// ConceptIDEqualFold applies the EqualFold predicate on the "concept_id" field.
func ConceptIDEqualFold(v string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldEqualFold(FieldConceptID, v))
}

// ConceptIDContainsFold applies the ContainsFold predicate on the "concept_id" field.
func ConceptIDContainsFold(v string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldContainsFold(FieldConceptID, v))
}

// FilingIDEQ applies the EQ predicate on the "filing_id" field.
func FilingIDEQ(v string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldEQ(FieldFilingID, v))
}

// FilingIDNEQ applies the NEQ predicate on the "filing_id" field.
func FilingIDNEQ(v string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldNEQ(FieldFilingID, v))
}

// FilingIDIn applies the In predicate on the "filing_id" field.
func FilingIDIn(vs ...string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldIn(FieldFilingID, vs...))
}

// FilingIDNotIn applies the NotIn predicate on the "filing_id" field.
func FilingIDNotIn(vs ...string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldNotIn(FieldFilingID, vs...))
}

// FilingIDGT applies the GT predicate on the "filing_id" field.
func FilingIDGT(v string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldGT(FieldFilingID, v))
}

// FilingIDGTE applies the GTE predicate on the "filing_id" field.
func FilingIDGTE(v string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldGTE(FieldFilingID, v))
}

// FilingIDLT applies the LT predicate on the "filing_id" field.
func FilingIDLT(v string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldLT(FieldFilingID, v))
}

// FilingIDLTE applies the LTE predicate on the "filing_id" field.
func FilingIDLTE(v string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldLTE(FieldFilingID, v))
}

// FilingIDContains applies the Contains predicate on the "filing_id" field.
func FilingIDContains(v string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldContains(FieldFilingID, v))
}

// FilingIDHasPrefix applies the HasPrefix predicate on the "filing_id" field.
func FilingIDHasPrefix(v string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldHasPrefix(FieldFilingID, v))
}

// FilingIDHasSuffix applies the HasSuffix predicate on the "filing_id" field.
func FilingIDHasSuffix(v string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldHasSuffix(FieldFilingID, v))
}

// FilingIDIsNil applies the IsNil predicate on the "filing_id" field.
func FilingIDIsNil() predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldIsNull(FieldFilingID))
}

// FilingIDNotNil applies the NotNil predicate on the "filing_id" field.
func FilingIDNotNil() predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldNotNull(FieldFilingID))
}

// FilingIDEqualFold applies the EqualFold predicate on the "filing_id" field.
func FilingIDEqualFold(v string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldEqualFold(FieldFilingID, v))
}

// FilingIDContainsFold applies the ContainsFold predicate on the "filing_id" field.
func FilingIDContainsFold(v string) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldContainsFold(FieldFilingID, v))
}

// ValueDateEQ applies the EQ predicate on the "value_date" field.
func ValueDateEQ(v time.Time) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldEQ(FieldValueDate, v))
}

// ValueDateNEQ applies the NEQ predicate on the "value_date" field.
func ValueDateNEQ(v time.Time) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldNEQ(FieldValueDate, v))
}

// ValueDateIn applies the In predicate on the "value_date" field.
func ValueDateIn(vs ...time.Time) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldIn(FieldValueDate, vs...))
}

// ValueDateNotIn applies the NotIn predicate on the "value_date" field.
func ValueDateNotIn(vs ...time.Time) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldNotIn(FieldValueDate, vs...))
}

// ValueDateGT applies the GT predicate on the "value_date" field.
func ValueDateGT(v time.Time) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldGT(FieldValueDate, v))
}

// ValueDateGTE applies the GTE predicate on the "value_date" field.
func ValueDateGTE(v time.Time) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldGTE(FieldValueDate, v))
}

// ValueDateLT applies the LT predicate on the "value_date" field.
func ValueDateLT(v time.Time) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldLT(FieldValueDate, v))
}

// ValueDateLTE applies the LTE predicate on the "value_date" field.
func ValueDateLTE(v time.Time) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldLTE(FieldValueDate, v))
}

// ValueEQ applies the EQ predicate on the "value" field.
func ValueEQ(v decimal.Decimal) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldEQ(FieldValue, v))
}

// ValueNEQ applies the NEQ predicate on the "value" field.
func ValueNEQ(v decimal.Decimal) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldNEQ(FieldValue, v))
}

// ValueIn applies the In predicate on the "value" field.
func ValueIn(vs ...decimal.Decimal) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldIn(FieldValue, vs...))
}

// ValueNotIn applies the NotIn predicate on the "value" field.
func ValueNotIn(vs ...decimal.Decimal) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldNotIn(FieldValue, vs...))
}

// ValueGT applies the GT predicate on the "value" field.
func ValueGT(v decimal.Decimal) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldGT(FieldValue, v))
}

// ValueGTE applies the GTE predicate on the "value" field.
func ValueGTE(v decimal.Decimal) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldGTE(FieldValue, v))
}

// ValueLT applies the LT predicate on the "value" field.
func ValueLT(v decimal.Decimal) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldLT(FieldValue, v))
}

// ValueLTE applies the LTE predicate on the "value" field.
func ValueLTE(v decimal.Decimal) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldLTE(FieldValue, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.FinancialValue {
	return predicate.FinancialValue(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasCompany applies the HasEdge predicate on the "company" edge.
func HasCompany() predicate.FinancialValue {
	return predicate.FinancialValue(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CompanyTable, CompanyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCompanyWith applies the HasEdge predicate on the "company" edge with a given conditions (other predicates).
func HasCompanyWith(preds ...predicate.Company) predicate.FinancialValue {
	return predicate.FinancialValue(func(s *sql.Selector) {
		step := newCompanyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasConcept applies the HasEdge predicate on the "concept" edge.
func HasConcept() predicate.FinancialValue {
	return predicate.FinancialValue(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ConceptTable, ConceptColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasConceptWith applies the HasEdge predicate on the "concept" edge with a given conditions (other predicates).
func HasConceptWith(preds ...predicate.FinancialConcept) predicate.FinancialValue {
	return predicate.FinancialValue(func(s *sql.Selector) {
		step := newConceptStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFiling applies the HasEdge predicate on the "filing" edge.
func HasFiling() predicate.FinancialValue {
	return predicate.FinancialValue(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FilingTable, FilingColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFilingWith applies the HasEdge predicate on the "filing" edge with a given conditions (other predicates).
func HasFilingWith(preds ...predicate.Filing) predicate.FinancialValue {
	return predicate.FinancialValue(func(s *sql.Selector) {
		step := newFilingStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FinancialValue) predicate.FinancialValue {
	return predicate.FinancialValue(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FinancialValue) predicate.FinancialValue {
	return predicate.FinancialValue(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FinancialValue) predicate.FinancialValue {
	return predicate.FinancialValue(sql.NotPredicates(p))
}
