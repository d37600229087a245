package models

// Role configures one participant of a DxO deliberation. Role selection is
// by name substring: a name containing "Lead", "Architect" or "Researcher"
// marks the proposer, "Critical Reviewer" the gatekeeper, and "QA" or
// "Quality" switches the role's output nodes to test_cases.
type Role struct {
	Name         string `json:"name" binding:"required"`
	Model        string `json:"model" binding:"required"`
	Instructions string `json:"instructions"`
}

// CouncilRunRequest is the body of POST /api/council/run.
type CouncilRunRequest struct {
	Prompt         string   `json:"prompt" binding:"required"`
	Method         string   `json:"method"` // dag, ensemble, or dxo
	CouncilMembers []string `json:"council_members"`
	ChairmanModel  string   `json:"chairman_model"`
	Roles          []Role   `json:"roles"`
	MaxIterations  int      `json:"max_iterations"`
	AttachmentIDs  []string `json:"attachment_ids"`
}

// SuperChatRequest is the body of POST /api/superchat/chat. When
// ConversationID is set, the new turn anchors to that conversation's last
// synthesis node and carries its content as context.
type SuperChatRequest struct {
	Prompt         string   `json:"prompt" binding:"required"`
	ConversationID *int     `json:"conversation_id,omitempty"`
	CouncilMembers []string `json:"council_members"`
	ChairmanModel  string   `json:"chairman_model"`
	AttachmentIDs  []string `json:"attachment_ids"`
}

// UpdateNodeCostRequest is the body of PUT /api/nodes/:id/cost.
type UpdateNodeCostRequest struct {
	ActualCost float64 `json:"actual_cost"`
}
