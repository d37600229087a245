package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Attachment holds the schema definition for the Attachment entity.
// Attachments are binary blobs owned by a single node; deleting the
// node deletes its attachments (cascade via the nodes edge).
type Attachment struct {
	ent.Schema
}

// Fields of the Attachment.
func (Attachment) Fields() []ent.Field {
	return []ent.Field{
		field.Int("node_id").
			Immutable(),
		field.String("filename"),
		field.Enum("file_type").
			Values("image", "pdf", "audio", "video", "text", "file"),
		field.String("mime_type"),
		field.Int64("file_size").
			Comment("Length of file_data in bytes"),
		field.Bytes("file_data"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Attachment.
func (Attachment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("node", Node.Type).
			Ref("attachments").
			Field("node_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Attachment.
func (Attachment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("node_id"),
	}
}
