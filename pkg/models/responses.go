package models

import (
	"time"

	"github.com/deepcouncil/made/ent"
)

// ConversationView is the wire form of a conversation.
type ConversationView struct {
	ID        int       `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Method    string    `json:"method"`
	CreatedAt time.Time `json:"created_at"`
}

// NewConversationView converts a persisted conversation to its wire form.
func NewConversationView(c *ent.Conversation) ConversationView {
	return ConversationView{
		ID:        c.ID,
		UserID:    c.UserID,
		Title:     c.Title,
		Method:    string(c.Method),
		CreatedAt: c.CreatedAt,
	}
}

// HistoryDetailResponse is the body of GET /api/history/:id.
type HistoryDetailResponse struct {
	Conversation ConversationView `json:"conversation"`
	Nodes        []NodeView       `json:"nodes"`
}

// ConversationCostResponse is the body of GET /api/conversations/:id/cost.
type ConversationCostResponse struct {
	ConversationID int     `json:"conversation_id"`
	TotalCost      float64 `json:"total_cost"`
}

// UploadResult describes one staged upload; ID is the opaque staging token
// consumed by a subsequent run call.
type UploadResult struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	Type     string `json:"type"`
}
