// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttachmentsColumns holds the columns for the "attachments" table.
	AttachmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_type", Type: field.TypeEnum, Enums: []string{"image", "pdf", "audio", "video", "text", "file"}},
		{Name: "mime_type", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt64},
		{Name: "file_data", Type: field.TypeBytes},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "node_id", Type: field.TypeInt},
	}
	// AttachmentsTable holds the schema information for the "attachments" table.
	AttachmentsTable = &schema.Table{
		Name:       "attachments",
		Columns:    AttachmentsColumns,
		PrimaryKey: []*schema.Column{AttachmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "attachments_nodes_attachments",
				Columns:    []*schema.Column{AttachmentsColumns[7]},
				RefColumns: []*schema.Column{NodesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "attachment_node_id",
				Unique:  false,
				Columns: []*schema.Column{AttachmentsColumns[7]},
			},
		},
	}
	// ConversationsColumns holds the columns for the "conversations" table.
	ConversationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "method", Type: field.TypeEnum, Enums: []string{"dag", "ensemble", "dxo", "superchat"}, Default: "dag"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ConversationsTable holds the schema information for the "conversations" table.
	ConversationsTable = &schema.Table{
		Name:       "conversations",
		Columns:    ConversationsColumns,
		PrimaryKey: []*schema.Column{ConversationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "conversation_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[1], ConversationsColumns[4]},
			},
		},
	}
	// NodesColumns holds the columns for the "nodes" table.
	NodesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"root", "plan", "research", "critique", "synthesis", "proposal", "refinement", "test_cases", "verdict"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "model_name", Type: field.TypeString, Nullable: true},
		{Name: "prompt_sent", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "attachment_filenames", Type: field.TypeString, Nullable: true},
		{Name: "actual_cost", Type: field.TypeFloat64, Default: 0},
		{Name: "warnings", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "conversation_id", Type: field.TypeInt},
		{Name: "parent_id", Type: field.TypeInt, Nullable: true},
	}
	// NodesTable holds the schema information for the "nodes" table.
	NodesTable = &schema.Table{
		Name:       "nodes",
		Columns:    NodesColumns,
		PrimaryKey: []*schema.Column{NodesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "nodes_conversations_nodes",
				Columns:    []*schema.Column{NodesColumns[9]},
				RefColumns: []*schema.Column{ConversationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "nodes_nodes_children",
				Columns:    []*schema.Column{NodesColumns[10]},
				RefColumns: []*schema.Column{NodesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "node_conversation_id",
				Unique:  false,
				Columns: []*schema.Column{NodesColumns[9]},
			},
			{
				Name:    "node_parent_id",
				Unique:  false,
				Columns: []*schema.Column{NodesColumns[10]},
			},
			{
				Name:    "node_conversation_id_type",
				Unique:  false,
				Columns: []*schema.Column{NodesColumns[9], NodesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttachmentsTable,
		ConversationsTable,
		NodesTable,
	}
)

func init() {
	AttachmentsTable.ForeignKeys[0].RefTable = NodesTable
	NodesTable.ForeignKeys[0].RefTable = ConversationsTable
	NodesTable.ForeignKeys[1].RefTable = NodesTable
}
