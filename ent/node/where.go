// Code generated by ent, DO NOT EDIT.

package node

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/deepcouncil/made/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Node {
	return predicate.Node(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Node {
	return predicate.Node(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Node {
	return predicate.Node(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Node {
	return predicate.Node(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Node {
	return predicate.Node(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Node {
	return predicate.Node(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Node {
	return predicate.Node(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Node {
	return predicate.Node(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Node {
	return predicate.Node(sql.FieldLTE(FieldID, id))
}

// ConversationID applies equality check predicate on the "conversation_id" field. It's identical to ConversationIDEQ.
func ConversationID(v int) predicate.Node {
	return predicate.Node(sql.FieldEQ(FieldConversationID, v))
}

// ParentID applies equality check predicate on the "parent_id" field. It's identical to ParentIDEQ.
func ParentID(v int) predicate.Node {
	return predicate.Node(sql.FieldEQ(FieldParentID, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.Node {
	return predicate.Node(sql.FieldEQ(FieldContent, v))
}

// ModelName applies equality check predicate on the "model_name" field. It's identical to ModelNameEQ.
func ModelName(v string) predicate.Node {
	return predicate.Node(sql.FieldEQ(FieldModelName, v))
}

// PromptSent applies equality check predicate on the "prompt_sent" field. It's identical to PromptSentEQ.
func PromptSent(v string) predicate.Node {
	return predicate.Node(sql.FieldEQ(FieldPromptSent, v))
}

// AttachmentFilenames applies equality check predicate on the "attachment_filenames" field. It's identical to AttachmentFilenamesEQ.
func AttachmentFilenames(v string) predicate.Node {
	return predicate.Node(sql.FieldEQ(FieldAttachmentFilenames, v))
}

// ActualCost applies equality check predicate on the "actual_cost" field. It's identical to ActualCostEQ.
func ActualCost(v float64) predicate.Node {
	return predicate.Node(sql.FieldEQ(FieldActualCost, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Node {
	return predicate.Node(sql.FieldEQ(FieldCreatedAt, v))
}

// ConversationIDEQ applies the EQ predicate on the "conversation_id" field.
func ConversationIDEQ(v int) predicate.Node {
	return predicate.Node(sql.FieldEQ(FieldConversationID, v))
}

// ConversationIDNEQ applies the NEQ predicate on the "conversation_id" field.
func ConversationIDNEQ(v int) predicate.Node {
	return predicate.Node(sql.FieldNEQ(FieldConversationID, v))
}

// ConversationIDIn applies the In predicate on the "conversation_id" field.
func ConversationIDIn(vs ...int) predicate.Node {
	return predicate.Node(sql.FieldIn(FieldConversationID, vs...))
}

// ConversationIDNotIn applies the NotIn predicate on the "conversation_id" field.
func ConversationIDNotIn(vs ...int) predicate.Node {
	return predicate.Node(sql.FieldNotIn(FieldConversationID, vs...))
}

// ParentIDEQ applies the EQ predicate on the "parent_id" field.
func ParentIDEQ(v int) predicate.Node {
	return predicate.Node(sql.FieldEQ(FieldParentID, v))
}

// ParentIDNEQ applies the NEQ predicate on the "parent_id" field.
func ParentIDNEQ(v int) predicate.Node {
	return predicate.Node(sql.FieldNEQ(FieldParentID, v))
}

// ParentIDIn applies the In predicate on the "parent_id" field.
func ParentIDIn(vs ...int) predicate.Node {
	return predicate.Node(sql.FieldIn(FieldParentID, vs...))
}

// ParentIDNotIn applies the NotIn predicate on the "parent_id" field.
func ParentIDNotIn(vs ...int) predicate.Node {
	return predicate.Node(sql.FieldNotIn(FieldParentID, vs...))
}

// ParentIDIsNil applies the IsNil predicate on the "parent_id" field.
func ParentIDIsNil() predicate.Node {
	return predicate.Node(sql.FieldIsNull(FieldParentID))
}

// ParentIDNotNil applies the NotNil predicate on the "parent_id" field.
func ParentIDNotNil() predicate.Node {
	return predicate.Node(sql.FieldNotNull(FieldParentID))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.Node {
	return predicate.Node(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.Node {
	return predicate.Node(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.Node {
	return predicate.Node(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.Node {
	return predicate.Node(sql.FieldNotIn(FieldType, vs...))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.Node {
	return predicate.Node(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.Node {
	return predicate.Node(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.Node {
	return predicate.Node(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.Node {
	return predicate.Node(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.Node {
	return predicate.Node(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.Node {
	return predicate.Node(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.Node {
	return predicate.Node(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.Node {
	return predicate.Node(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.Node {
	return predicate.Node(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.Node {
	return predicate.Node(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.Node {
	return predicate.Node(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.Node {
	return predicate.Node(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.Node {
	return predicate.Node(sql.FieldContainsFold(FieldContent, v))
}

// ModelNameEQ applies the EQ predicate on the "model_name" field.
func ModelNameEQ(v string) predicate.Node {
	return predicate.Node(sql.FieldEQ(FieldModelName, v))
}

// ModelNameNEQ applies the NEQ predicate on the "model_name" field.
func ModelNameNEQ(v string) predicate.Node {
	return predicate.Node(sql.FieldNEQ(FieldModelName, v))
}

// ModelNameIn applies the In predicate on the "model_name" field.
func ModelNameIn(vs ...string) predicate.Node {
	return predicate.Node(sql.FieldIn(FieldModelName, vs...))
}

// ModelNameNotIn applies the NotIn predicate on the "model_name" field.
func ModelNameNotIn(vs ...string) predicate.Node {
	return predicate.Node(sql.FieldNotIn(FieldModelName, vs...))
}

// ModelNameGT applies the GT predicate on the "model_name" field.
func ModelNameGT(v string) predicate.Node {
	return predicate.Node(sql.FieldGT(FieldModelName, v))
}

// ModelNameGTE applies the GTE predicate on the "model_name" field.
func ModelNameGTE(v string) predicate.Node {
	return predicate.Node(sql.FieldGTE(FieldModelName, v))
}

// ModelNameLT applies the LT predicate on the "model_name" field.
func ModelNameLT(v string) predicate.Node {
	return predicate.Node(sql.FieldLT(FieldModelName, v))
}

// ModelNameLTE applies the LTE predicate on the "model_name" field.
func ModelNameLTE(v string) predicate.Node {
	return predicate.Node(sql.FieldLTE(FieldModelName, v))
}

// ModelNameContains applies the Contains predicate on the "model_name" field.
func ModelNameContains(v string) predicate.Node {
	return predicate.Node(sql.FieldContains(FieldModelName, v))
}

// ModelNameHasPrefix applies the HasPrefix predicate on the "model_name" field.
func ModelNameHasPrefix(v string) predicate.Node {
	return predicate.Node(sql.FieldHasPrefix(FieldModelName, v))
}

// ModelNameHasSuffix applies the HasSuffix predicate on the "model_name" field.
func ModelNameHasSuffix(v string) predicate.Node {
	return predicate.Node(sql.FieldHasSuffix(FieldModelName, v))
}

// ModelNameIsNil applies the IsNil predicate on the "model_name" field.
func ModelNameIsNil() predicate.Node {
	return predicate.Node(sql.FieldIsNull(FieldModelName))
}

// ModelNameNotNil applies the NotNil predicate on the "model_name" field.
func ModelNameNotNil() predicate.Node {
	return predicate.Node(sql.FieldNotNull(FieldModelName))
}

// ModelNameEqualFold applies the EqualFold predicate on the "model_name" field.
func ModelNameEqualFold(v string) predicate.Node {
	return predicate.Node(sql.FieldEqualFold(FieldModelName, v))
}

// ModelNameContainsFold applies the ContainsFold predicate on the "model_name" field.
func ModelNameContainsFold(v string) predicate.Node {
	return predicate.Node(sql.FieldContainsFold(FieldModelName, v))
}

// PromptSentEQ applies the EQ predicate on the "prompt_sent" field.
func PromptSentEQ(v string) predicate.Node {
	return predicate.Node(sql.FieldEQ(FieldPromptSent, v))
}

// PromptSentNEQ applies the NEQ predicate on the "prompt_sent" field.
func PromptSentNEQ(v string) predicate.Node {
	return predicate.Node(sql.FieldNEQ(FieldPromptSent, v))
}

// PromptSentIn applies the In predicate on the "prompt_sent" field.
func PromptSentIn(vs ...string) predicate.Node {
	return predicate.Node(sql.FieldIn(FieldPromptSent, vs...))
}

// PromptSentNotIn applies the NotIn predicate on the "prompt_sent" field.
func PromptSentNotIn(vs ...string) predicate.Node {
	return predicate.Node(sql.FieldNotIn(FieldPromptSent, vs...))
}

// PromptSentGT applies the GT predicate on the "prompt_sent" field.
func PromptSentGT(v string) predicate.Node {
	return predicate.Node(sql.FieldGT(FieldPromptSent, v))
}

// PromptSentGTE applies the GTE predicate on the "prompt_sent" field.
func PromptSentGTE(v string) predicate.Node {
	return predicate.Node(sql.FieldGTE(FieldPromptSent, v))
}

// PromptSentLT applies the LT predicate on the "prompt_sent" field.
func PromptSentLT(v string) predicate.Node {
	return predicate.Node(sql.FieldLT(FieldPromptSent, v))
}

// PromptSentLTE applies the LTE predicate on the "prompt_sent" field.
func PromptSentLTE(v string) predicate.Node {
	return predicate.Node(sql.FieldLTE(FieldPromptSent, v))
}

// PromptSentContains applies the Contains predicate on the "prompt_sent" field.
func PromptSentContains(v string) predicate.Node {
	return predicate.Node(sql.FieldContains(FieldPromptSent, v))
}

// PromptSentHasPrefix applies the HasPrefix predicate on the "prompt_sent" field.
func PromptSentHasPrefix(v string) predicate.Node {
	return predicate.Node(sql.FieldHasPrefix(FieldPromptSent, v))
}

// PromptSentHasSuffix applies the HasSuffix predicate on the "prompt_sent" field.
func PromptSentHasSuffix(v string) predicate.Node {
	return predicate.Node(sql.FieldHasSuffix(FieldPromptSent, v))
}

// PromptSentIsNil applies the IsNil predicate on the "prompt_sent" field.
func PromptSentIsNil() predicate.Node {
	return predicate.Node(sql.FieldIsNull(FieldPromptSent))
}

// PromptSentNotNil applies the NotNil predicate on the "prompt_sent" field.
func PromptSentNotNil() predicate.Node {
	return predicate.Node(sql.FieldNotNull(FieldPromptSent))
}

// PromptSentEqualFold applies the EqualFold predicate on the "prompt_sent" field.
func PromptSentEqualFold(v string) predicate.Node {
	return predicate.Node(sql.FieldEqualFold(FieldPromptSent, v))
}

// PromptSentContainsFold applies the ContainsFold predicate on the "prompt_sent" field.
func PromptSentContainsFold(v string) predicate.Node {
	return predicate.Node(sql.FieldContainsFold(FieldPromptSent, v))
}

// AttachmentFilenamesEQ applies the EQ predicate on the "attachment_filenames" field.
func AttachmentFilenamesEQ(v string) predicate.Node {
	return predicate.Node(sql.FieldEQ(FieldAttachmentFilenames, v))
}

// AttachmentFilenamesNEQ applies the NEQ predicate on the "attachment_filenames" field.
func AttachmentFilenamesNEQ(v string) predicate.Node {
	return predicate.Node(sql.FieldNEQ(FieldAttachmentFilenames, v))
}

// AttachmentFilenamesIn applies the In predicate on the "attachment_filenames" field.
func AttachmentFilenamesIn(vs ...string) predicate.Node {
	return predicate.Node(sql.FieldIn(FieldAttachmentFilenames, vs...))
}

// AttachmentFilenamesNotIn applies the NotIn predicate on the "attachment_filenames" field.
func AttachmentFilenamesNotIn(vs ...string) predicate.Node {
	return predicate.Node(sql.FieldNotIn(FieldAttachmentFilenames, vs...))
}

// AttachmentFilenamesGT applies the GT predicate on the "attachment_filenames" field.
func AttachmentFilenamesGT(v string) predicate.Node {
	return predicate.Node(sql.FieldGT(FieldAttachmentFilenames, v))
}

// AttachmentFilenamesGTE applies the GTE predicate on the "attachment_filenames" field.
func AttachmentFilenamesGTE(v string) predicate.Node {
	return predicate.Node(sql.FieldGTE(FieldAttachmentFilenames, v))
}

// AttachmentFilenamesLT applies the LT predicate on the "attachment_filenames" field.
func AttachmentFilenamesLT(v string) predicate.Node {
	return predicate.Node(sql.FieldLT(FieldAttachmentFilenames, v))
}

// AttachmentFilenamesLTE applies the LTE predicate on the "attachment_filenames" field.
func AttachmentFilenamesLTE(v string) predicate.Node {
	return predicate.Node(sql.FieldLTE(FieldAttachmentFilenames, v))
}

// AttachmentFilenamesContains applies the Contains predicate on the "attachment_filenames" field.
func AttachmentFilenamesContains(v string) predicate.Node {
	return predicate.Node(sql.FieldContains(FieldAttachmentFilenames, v))
}

// AttachmentFilenamesHasPrefix applies the HasPrefix predicate on the "attachment_filenames" field.
func AttachmentFilenamesHasPrefix(v string) predicate.Node {
	return predicate.Node(sql.FieldHasPrefix(FieldAttachmentFilenames, v))
}

// AttachmentFilenamesHasSuffix applies the HasSuffix predicate on the "attachment_filenames" field.
func AttachmentFilenamesHasSuffix(v string) predicate.Node {
	return predicate.Node(sql.FieldHasSuffix(FieldAttachmentFilenames, v))
}

// AttachmentFilenamesIsNil applies the IsNil predicate on the "attachment_filenames" field.
func AttachmentFilenamesIsNil() predicate.Node {
	return predicate.Node(sql.FieldIsNull(FieldAttachmentFilenames))
}

// AttachmentFilenamesNotNil applies the NotNil predicate on the "attachment_filenames" field.
func AttachmentFilenamesNotNil() predicate.Node {
	return predicate.Node(sql.FieldNotNull(FieldAttachmentFilenames))
}

// AttachmentFilenamesEqualFold applies the EqualFold predicate on the "attachment_filenames" field.
func AttachmentFilenamesEqualFold(v string) predicate.Node {
	return predicate.Node(sql.FieldEqualFold(FieldAttachmentFilenames, v))
}

// AttachmentFilenamesContainsFold applies the ContainsFold predicate on the "attachment_filenames" field.
func AttachmentFilenamesContainsFold(v string) predicate.Node {
	return predicate.Node(sql.FieldContainsFold(FieldAttachmentFilenames, v))
}

// ActualCostEQ applies the EQ predicate on the "actual_cost" field.
func ActualCostEQ(v float64) predicate.Node {
	return predicate.Node(sql.FieldEQ(FieldActualCost, v))
}

// ActualCostNEQ applies the NEQ predicate on the "actual_cost" field.
func ActualCostNEQ(v float64) predicate.Node {
	return predicate.Node(sql.FieldNEQ(FieldActualCost, v))
}

// ActualCostIn applies the In predicate on the "actual_cost" field.
func ActualCostIn(vs ...float64) predicate.Node {
	return predicate.Node(sql.FieldIn(FieldActualCost, vs...))
}

// ActualCostNotIn applies the NotIn predicate on the "actual_cost" field.
func ActualCostNotIn(vs ...float64) predicate.Node {
	return predicate.Node(sql.FieldNotIn(FieldActualCost, vs...))
}

// ActualCostGT applies the GT predicate on the "actual_cost" field.
func ActualCostGT(v float64) predicate.Node {
	return predicate.Node(sql.FieldGT(FieldActualCost, v))
}

// ActualCostGTE applies the GTE predicate on the "actual_cost" field.
func ActualCostGTE(v float64) predicate.Node {
	return predicate.Node(sql.FieldGTE(FieldActualCost, v))
}

// ActualCostLT applies the LT predicate on the "actual_cost" field.
func ActualCostLT(v float64) predicate.Node {
	return predicate.Node(sql.FieldLT(FieldActualCost, v))
}

// ActualCostLTE applies the LTE predicate on the "actual_cost" field.
func ActualCostLTE(v float64) predicate.Node {
	return predicate.Node(sql.FieldLTE(FieldActualCost, v))
}

// WarningsIsNil applies the IsNil predicate on the "warnings" field.
func WarningsIsNil() predicate.Node {
	return predicate.Node(sql.FieldIsNull(FieldWarnings))
}

// WarningsNotNil applies the NotNil predicate on the "warnings" field.
func WarningsNotNil() predicate.Node {
	return predicate.Node(sql.FieldNotNull(FieldWarnings))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Node {
	return predicate.Node(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Node {
	return predicate.Node(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Node {
	return predicate.Node(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Node {
	return predicate.Node(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Node {
	return predicate.Node(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Node {
	return predicate.Node(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Node {
	return predicate.Node(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Node {
	return predicate.Node(sql.FieldLTE(FieldCreatedAt, v))
}

// HasConversation applies the HasEdge predicate on the "conversation" edge.
func HasConversation() predicate.Node {
	return predicate.Node(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ConversationTable, ConversationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasConversationWith applies the HasEdge predicate on the "conversation" edge with a given conditions (other predicates).
func HasConversationWith(preds ...predicate.Conversation) predicate.Node {
	return predicate.Node(func(s *sql.Selector) {
		step := newConversationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasParent applies the HasEdge predicate on the "parent" edge.
func HasParent() predicate.Node {
	return predicate.Node(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ParentTable, ParentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasParentWith applies the HasEdge predicate on the "parent" edge with a given conditions (other predicates).
func HasParentWith(preds ...predicate.Node) predicate.Node {
	return predicate.Node(func(s *sql.Selector) {
		step := newParentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChildren applies the HasEdge predicate on the "children" edge.
func HasChildren() predicate.Node {
	return predicate.Node(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ChildrenTable, ChildrenColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChildrenWith applies the HasEdge predicate on the "children" edge with a given conditions (other predicates).
func HasChildrenWith(preds ...predicate.Node) predicate.Node {
	return predicate.Node(func(s *sql.Selector) {
		step := newChildrenStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAttachments applies the HasEdge predicate on the "attachments" edge.
func HasAttachments() predicate.Node {
	return predicate.Node(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AttachmentsTable, AttachmentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAttachmentsWith applies the HasEdge predicate on the "attachments" edge with a given conditions (other predicates).
func HasAttachmentsWith(preds ...predicate.Attachment) predicate.Node {
	return predicate.Node(func(s *sql.Selector) {
		step := newAttachmentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Node) predicate.Node {
	return predicate.Node(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Node) predicate.Node {
	return predicate.Node(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Node) predicate.Node {
	return predicate.Node(sql.NotPredicates(p))
}
