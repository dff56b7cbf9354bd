// Code generated by ent, DO NOT EDIT.

package questionnaire

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/halouxiaoyu/survey_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldEQ(FieldDeletedAt, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldEQ(FieldDescription, v))
}

// IsPublished applies equality check predicate on the "is_published" field. It's identical to IsPublishedEQ.
func IsPublished(v bool) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldEQ(FieldIsPublished, v))
}

// PublishedAt applies equality check predicate on the "published_at" field. It's identical to PublishedAtEQ.
func PublishedAt(v time.Time) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldEQ(FieldPublishedAt, v))
}

// AccessCode applies equality check predicate on the "access_code" field. It's identical to AccessCodeEQ.
func AccessCode(v string) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldEQ(FieldAccessCode, v))
}

// ParentID applies equality check predicate on the "parent_id" field. It's identical to ParentIDEQ.
func ParentID(v uuid.UUID) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldEQ(FieldParentID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldNotNull(FieldDeletedAt))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldContainsFold(FieldDescription, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldNotIn(FieldStatus, vs...))
}

// IsPublishedEQ applies the EQ predicate on the "is_published" field.
func IsPublishedEQ(v bool) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldEQ(FieldIsPublished, v))
}

// IsPublishedNEQ applies the NEQ predicate on the "is_published" field.
func IsPublishedNEQ(v bool) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldNEQ(FieldIsPublished, v))
}

// PublishedAtEQ applies the EQ predicate on the "published_at" field.
func PublishedAtEQ(v time.Time) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldEQ(FieldPublishedAt, v))
}

// PublishedAtNEQ applies the NEQ predicate on the "published_at" field.
func PublishedAtNEQ(v time.Time) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldNEQ(FieldPublishedAt, v))
}

// PublishedAtIn applies the In predicate on the "published_at" field.
func PublishedAtIn(vs ...time.Time) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldIn(FieldPublishedAt, vs...))
}

// PublishedAtNotIn applies the NotIn predicate on the "published_at" field.
func PublishedAtNotIn(vs ...time.Time) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldNotIn(FieldPublishedAt, vs...))
}

// PublishedAtGT applies the GT predicate on the "published_at" field.
func PublishedAtGT(v time.Time) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldGT(FieldPublishedAt, v))
}

// PublishedAtGTE applies the GTE predicate on the "published_at" field.
func PublishedAtGTE(v time.Time) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldGTE(FieldPublishedAt, v))
}

// PublishedAtLT applies the LT predicate on the "published_at" field.
func PublishedAtLT(v time.Time) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldLT(FieldPublishedAt, v))
}

// PublishedAtLTE applies the LTE predicate on the "published_at" field.
func PublishedAtLTE(v time.Time) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldLTE(FieldPublishedAt, v))
}

// PublishedAtIsNil applies the IsNil predicate on the "published_at" field.
func PublishedAtIsNil() predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldIsNull(FieldPublishedAt))
}

// PublishedAtNotNil applies the NotNil predicate on the "published_at" field.
func PublishedAtNotNil() predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldNotNull(FieldPublishedAt))
}

// AccessCodeEQ applies the EQ predicate on the "access_code" field.
func AccessCodeEQ(v string) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldEQ(FieldAccessCode, v))
}

// AccessCodeNEQ applies the NEQ predicate on the "access_code" field.
func AccessCodeNEQ(v string) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldNEQ(FieldAccessCode, v))
}

// AccessCodeIn applies the In predicate on the "access_code" field.
func AccessCodeIn(vs ...string) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldIn(FieldAccessCode, vs...))
}

// AccessCodeNotIn applies the NotIn predicate on the "access_code" field.
func AccessCodeNotIn(vs ...string) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldNotIn(FieldAccessCode, vs...))
}

// AccessCodeGT applies the GT predicate on the "access_code" field.
func AccessCodeGT(v string) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldGT(FieldAccessCode, v))
}

// AccessCodeGTE applies the GTE predicate on the "access_code" field.
func AccessCodeGTE(v string) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldGTE(FieldAccessCode, v))
}

// AccessCodeLT applies the LT predicate on the "access_code" field.
func AccessCodeLT(v string) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldLT(FieldAccessCode, v))
}

// AccessCodeLTE applies the LTE predicate on the "access_code" field.
func AccessCodeLTE(v string) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldLTE(FieldAccessCode, v))
}

// AccessCodeContains applies the Contains predicate on the "access_code" field.
func AccessCodeContains(v string) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldContains(FieldAccessCode, v))
}

// AccessCodeHasPrefix applies the HasPrefix predicate on the "access_code" field.
func AccessCodeHasPrefix(v string) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldHasPrefix(FieldAccessCode, v))
}

// AccessCodeHasSuffix applies the HasSuffix predicate on the "access_code" field.
func AccessCodeHasSuffix(v string) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldHasSuffix(FieldAccessCode, v))
}

// AccessCodeIsNil applies the IsNil predicate on the "access_code" field.
func AccessCodeIsNil() predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldIsNull(FieldAccessCode))
}

// AccessCodeNotNil applies the NotNil predicate on the "access_code" field.
func AccessCodeNotNil() predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldNotNull(FieldAccessCode))
}

// AccessCodeEqualFold applies the EqualFold predicate on the "access_code" field.
func AccessCodeEqualFold(v string) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldEqualFold(FieldAccessCode, v))
}

// AccessCodeContainsFold applies the ContainsFold predicate on the "access_code" field.
func AccessCodeContainsFold(v string) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldContainsFold(FieldAccessCode, v))
}

// ParentIDEQ applies the EQ predicate on the "parent_id" field.
func ParentIDEQ(v uuid.UUID) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldEQ(FieldParentID, v))
}

// ParentIDNEQ applies the NEQ predicate on the "parent_id" field.
func ParentIDNEQ(v uuid.UUID) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldNEQ(FieldParentID, v))
}

// ParentIDIn applies the In predicate on the "parent_id" field.
func ParentIDIn(vs ...uuid.UUID) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldIn(FieldParentID, vs...))
}

// ParentIDNotIn applies the NotIn predicate on the "parent_id" field.
func ParentIDNotIn(vs ...uuid.UUID) predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldNotIn(FieldParentID, vs...))
}

// ParentIDIsNil applies the IsNil predicate on the "parent_id" field.
func ParentIDIsNil() predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldIsNull(FieldParentID))
}

// ParentIDNotNil applies the NotNil predicate on the "parent_id" field.
func ParentIDNotNil() predicate.Questionnaire {
	return predicate.Questionnaire(sql.FieldNotNull(FieldParentID))
}

// HasParent applies the HasEdge predicate on the "parent" edge.
func HasParent() predicate.Questionnaire {
	return predicate.Questionnaire(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ParentTable, ParentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasParentWith applies the HasEdge predicate on the "parent" edge with a given conditions (other predicates).
func HasParentWith(preds ...predicate.Questionnaire) predicate.Questionnaire {
	return predicate.Questionnaire(func(s *sql.Selector) {
		step := newParentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChildren applies the HasEdge predicate on the "children" edge.
func HasChildren() predicate.Questionnaire {
	return predicate.Questionnaire(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ChildrenTable, ChildrenColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChildrenWith applies the HasEdge predicate on the "children" edge with a given conditions (other predicates).
func HasChildrenWith(preds ...predicate.Questionnaire) predicate.Questionnaire {
	return predicate.Questionnaire(func(s *sql.Selector) {
		step := newChildrenStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDimensions applies the HasEdge predicate on the "dimensions" edge.
func HasDimensions() predicate.Questionnaire {
	return predicate.Questionnaire(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DimensionsTable, DimensionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDimensionsWith applies the HasEdge predicate on the "dimensions" edge with a given conditions (other predicates).
func HasDimensionsWith(preds ...predicate.Dimension) predicate.Questionnaire {
	return predicate.Questionnaire(func(s *sql.Selector) {
		step := newDimensionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasQuestions applies the HasEdge predicate on the "questions" edge.
func HasQuestions() predicate.Questionnaire {
	return predicate.Questionnaire(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, QuestionsTable, QuestionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuestionsWith applies the HasEdge predicate on the "questions" edge with a given conditions (other predicates).
func HasQuestionsWith(preds ...predicate.Question) predicate.Questionnaire {
	return predicate.Questionnaire(func(s *sql.Selector) {
		step := newQuestionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSubmissions applies the HasEdge predicate on the "submissions" edge.
func HasSubmissions() predicate.Questionnaire {
	return predicate.Questionnaire(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SubmissionsTable, SubmissionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubmissionsWith applies the HasEdge predicate on the "submissions" edge with a given conditions (other predicates).
func HasSubmissionsWith(preds ...predicate.Submission) predicate.Questionnaire {
	return predicate.Questionnaire(func(s *sql.Selector) {
		step := newSubmissionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAssessmentLevels applies the HasEdge predicate on the "assessment_levels" edge.
func HasAssessmentLevels() predicate.Questionnaire {
	return predicate.Questionnaire(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AssessmentLevelsTable, AssessmentLevelsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAssessmentLevelsWith applies the HasEdge predicate on the "assessment_levels" edge with a given conditions (other predicates).
func HasAssessmentLevelsWith(preds ...predicate.AssessmentLevel) predicate.Questionnaire {
	return predicate.Questionnaire(func(s *sql.Selector) {
		step := newAssessmentLevelsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasBranchRules applies the HasEdge predicate on the "branch_rules" edge.
func HasBranchRules() predicate.Questionnaire {
	return predicate.Questionnaire(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, BranchRulesTable, BranchRulesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBranchRulesWith applies the HasEdge predicate on the "branch_rules" edge with a given conditions (other predicates).
func HasBranchRulesWith(preds ...predicate.BranchRule) predicate.Questionnaire {
	return predicate.Questionnaire(func(s *sql.Selector) {
		step := newBranchRulesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Questionnaire) predicate.Questionnaire {
	return predicate.Questionnaire(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Questionnaire) predicate.Questionnaire {
	return predicate.Questionnaire(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Questionnaire) predicate.Questionnaire {
	return predicate.Questionnaire(sql.NotPredicates(p))
}
