package models

import (
	"time"

	"github.com/deepcouncil/made/ent"
	"github.com/deepcouncil/made/ent/node"
)

// CreateNodeRequest contains fields for creating a new artifact node
type CreateNodeRequest struct {
	ConversationID      int       `json:"conversation_id"`
	ParentID            *int      `json:"parent_id,omitempty"`
	Type                node.Type `json:"type"`
	Content             string    `json:"content"`
	ModelName           string    `json:"model_name,omitempty"`
	PromptSent          string    `json:"prompt_sent,omitempty"`
	AttachmentFilenames string    `json:"attachment_filenames,omitempty"`
	ActualCost          float64   `json:"actual_cost"`
	Warnings            []string  `json:"warnings,omitempty"`
}

// AttachRequest contains fields for binding a binary blob to a node
type AttachRequest struct {
	NodeID   int
	Filename string
	FileType string
	MimeType string
	FileData []byte
}

// AttachmentMeta is the wire form of an attachment without its payload
type AttachmentMeta struct {
	ID       int    `json:"id"`
	NodeID   int    `json:"node_id"`
	Filename string `json:"filename"`
	FileType string `json:"file_type"`
	MimeType string `json:"mime_type"`
	FileSize int64  `json:"file_size"`
}

// NodeView is the serialized node sent in SSE events and history responses,
// with attachment metadata embedded (payload bytes excluded).
type NodeView struct {
	ID                  int              `json:"id"`
	ConversationID      int              `json:"conversation_id"`
	ParentID            *int             `json:"parent_id"`
	Type                string           `json:"type"`
	Content             string           `json:"content"`
	ModelName           string           `json:"model,omitempty"`
	AttachmentFilenames string           `json:"attachment_filenames,omitempty"`
	ActualCost          float64          `json:"actual_cost"`
	Warnings            []string         `json:"warnings,omitempty"`
	CreatedAt           time.Time        `json:"created_at"`
	Attachments         []AttachmentMeta `json:"attachments"`
}

// NewAttachmentMeta converts a persisted attachment to its wire form.
func NewAttachmentMeta(a *ent.Attachment) AttachmentMeta {
	return AttachmentMeta{
		ID:       a.ID,
		NodeID:   a.NodeID,
		Filename: a.Filename,
		FileType: string(a.FileType),
		MimeType: a.MimeType,
		FileSize: a.FileSize,
	}
}

// NewNodeView converts a persisted node to its wire form. Attachments may be
// nil when the node carries none.
func NewNodeView(n *ent.Node, attachments []*ent.Attachment) NodeView {
	view := NodeView{
		ID:             n.ID,
		ConversationID: n.ConversationID,
		ParentID:       n.ParentID,
		Type:           string(n.Type),
		Content:        n.Content,
		ActualCost:     n.ActualCost,
		Warnings:       n.Warnings,
		CreatedAt:      n.CreatedAt,
		Attachments:    make([]AttachmentMeta, 0, len(attachments)),
	}
	if n.ModelName != nil {
		view.ModelName = *n.ModelName
	}
	if n.AttachmentFilenames != nil {
		view.AttachmentFilenames = *n.AttachmentFilenames
	}
	for _, a := range attachments {
		view.Attachments = append(view.Attachments, NewAttachmentMeta(a))
	}
	return view
}
