package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Node holds the schema definition for the Node entity: one reasoning
// artifact in a conversation's DAG. Nodes form a tree via parent_id;
// the first node of a conversation is the root (parent_id NULL).
// Superchat turns reuse the "root" type for user-authored input nodes,
// parented to the previous synthesis.
type Node struct {
	ent.Schema
}

// Fields of the Node.
func (Node) Fields() []ent.Field {
	return []ent.Field{
		field.Int("conversation_id").
			Immutable(),
		field.Int("parent_id").
			Optional().
			Nillable().
			Immutable(),
		field.Enum("type").
			Values("root", "plan", "research", "critique", "synthesis",
				"proposal", "refinement", "test_cases", "verdict"),
		field.Text("content").
			Comment("Text produced by the model, the user, or the system"),
		field.String("model_name").
			Optional().
			Nillable().
			Comment("LLM identifier, or literal \"user\"/\"System\""),
		field.Text("prompt_sent").
			Optional().
			Nillable().
			Comment("Exact prompt text used, for auditability"),
		field.String("attachment_filenames").
			Optional().
			Nillable().
			Comment("Comma-joined inherited-attachment manifest"),
		field.Float("actual_cost").
			Default(0).
			Min(0).
			Comment("USD cost of the producing LLM call"),
		field.JSON("warnings", []string{}).
			Optional().
			Comment("Capability warnings emitted for the producing call"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Node.
func (Node) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("conversation", Conversation.Type).
			Ref("nodes").
			Field("conversation_id").
			Unique().
			Required().
			Immutable(),
		edge.To("children", Node.Type).
			From("parent").
			Field("parent_id").
			Unique().
			Immutable(),
		edge.To("attachments", Attachment.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Node.
func (Node) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("conversation_id"),
		index.Fields("parent_id"),
		// Superchat anchors new turns at the latest synthesis.
		index.Fields("conversation_id", "type"),
	}
}
