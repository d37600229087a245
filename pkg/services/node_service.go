package services

import (
	"context"
	"fmt"

	"github.com/deepcouncil/made/ent"
	"github.com/deepcouncil/made/ent/attachment"
	"github.com/deepcouncil/made/ent/conversation"
	"github.com/deepcouncil/made/ent/node"
	"github.com/deepcouncil/made/pkg/models"
	"github.com/deepcouncil/made/pkg/upload"
)

// NodeService is the artifact store: it persists reasoning nodes and their
// parent links, assigns monotonic ids, and owns node attachments.
type NodeService struct {
	client *ent.Client
}

// NewNodeService creates a new NodeService.
func NewNodeService(client *ent.Client) *NodeService {
	return &NodeService{client: client}
}

// CreateNode persists a new artifact node and returns the complete record.
// The parent, when given, must belong to the same conversation.
func (s *NodeService) CreateNode(ctx context.Context, req models.CreateNodeRequest) (*ent.Node, error) {
	if req.ConversationID == 0 {
		return nil, NewValidationError("conversation_id", "required")
	}
	if req.Type == "" {
		return nil, NewValidationError("type", "required")
	}
	if err := node.TypeValidator(req.Type); err != nil {
		return nil, NewValidationError("type", err.Error())
	}
	if req.ActualCost < 0 {
		return nil, NewValidationError("actual_cost", "must be non-negative")
	}

	if req.ParentID != nil {
		parent, err := s.client.Node.Get(ctx, *req.ParentID)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("failed to load parent node: %w", err)
		}
		if parent.ConversationID != req.ConversationID {
			return nil, NewValidationError("parent_id", "parent belongs to a different conversation")
		}
	}

	builder := s.client.Node.Create().
		SetConversationID(req.ConversationID).
		SetNillableParentID(req.ParentID).
		SetType(req.Type).
		SetContent(req.Content).
		SetActualCost(req.ActualCost)

	if req.ModelName != "" {
		builder.SetModelName(req.ModelName)
	}
	if req.PromptSent != "" {
		builder.SetPromptSent(req.PromptSent)
	}
	if req.AttachmentFilenames != "" {
		builder.SetAttachmentFilenames(req.AttachmentFilenames)
	}
	if len(req.Warnings) > 0 {
		builder.SetWarnings(req.Warnings)
	}

	n, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, NewValidationError("conversation_id", "conversation does not exist")
		}
		return nil, fmt.Errorf("failed to create node: %w", err)
	}
	return n, nil
}

// GetNode retrieves a node by id.
func (s *NodeService) GetNode(ctx context.Context, id int) (*ent.Node, error) {
	n, err := s.client.Node.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get node: %w", err)
	}
	return n, nil
}

// ListNodes returns a conversation's nodes in creation order (id ascending).
func (s *NodeService) ListNodes(ctx context.Context, conversationID int) ([]*ent.Node, error) {
	nodes, err := s.client.Node.Query().
		Where(node.ConversationIDEQ(conversationID)).
		Order(ent.Asc(node.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list nodes: %w", err)
	}
	return nodes, nil
}

// LastSynthesis returns the most recent synthesis node of a conversation, or
// ErrNotFound when the conversation has none.
func (s *NodeService) LastSynthesis(ctx context.Context, conversationID int) (*ent.Node, error) {
	n, err := s.client.Node.Query().
		Where(
			node.ConversationIDEQ(conversationID),
			node.TypeEQ(node.TypeSynthesis),
		).
		Order(ent.Desc(node.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query last synthesis: %w", err)
	}
	return n, nil
}

// UpdateNodeCost sets a node's actual_cost after verifying the caller owns
// the node's conversation. Ownership misses surface as ErrNotFound.
func (s *NodeService) UpdateNodeCost(ctx context.Context, userID string, nodeID int, cost float64) (*ent.Node, error) {
	if cost < 0 {
		return nil, NewValidationError("actual_cost", "must be non-negative")
	}

	owned, err := s.client.Node.Query().
		Where(
			node.IDEQ(nodeID),
			node.HasConversationWith(conversation.UserIDEQ(userID)),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check node ownership: %w", err)
	}
	if !owned {
		return nil, ErrNotFound
	}

	n, err := s.client.Node.UpdateOneID(nodeID).
		SetActualCost(cost).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update node cost: %w", err)
	}
	return n, nil
}

// SetAttachmentFilenames records the comma-joined filename manifest on a
// node after its attachments have been promoted.
func (s *NodeService) SetAttachmentFilenames(ctx context.Context, nodeID int, manifest string) (*ent.Node, error) {
	n, err := s.client.Node.UpdateOneID(nodeID).
		SetAttachmentFilenames(manifest).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to set attachment filenames: %w", err)
	}
	return n, nil
}

// Attach binds a binary blob to a node, enforcing the per-type size limits
// and known file types.
func (s *NodeService) Attach(ctx context.Context, req models.AttachRequest) (*ent.Attachment, error) {
	if !upload.ValidFileType(req.FileType) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, req.FileType)
	}
	size := int64(len(req.FileData))
	if !upload.WithinLimit(req.FileType, size) {
		return nil, fmt.Errorf("%w: %s", ErrAttachmentTooLarge, req.Filename)
	}

	if _, err := s.GetNode(ctx, req.NodeID); err != nil {
		return nil, err
	}

	a, err := s.client.Attachment.Create().
		SetNodeID(req.NodeID).
		SetFilename(req.Filename).
		SetFileType(attachment.FileType(req.FileType)).
		SetMimeType(req.MimeType).
		SetFileSize(size).
		SetFileData(req.FileData).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create attachment: %w", err)
	}
	return a, nil
}

// AttachmentsOf returns a node's attachments in declaration order.
func (s *NodeService) AttachmentsOf(ctx context.Context, nodeID int) ([]*ent.Attachment, error) {
	atts, err := s.client.Attachment.Query().
		Where(attachment.NodeIDEQ(nodeID)).
		Order(ent.Asc(attachment.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}
	return atts, nil
}

// GetAttachment retrieves an attachment by id, scoped to the owner of its
// conversation. Ownership misses surface as ErrNotFound.
func (s *NodeService) GetAttachment(ctx context.Context, userID string, id int) (*ent.Attachment, error) {
	a, err := s.client.Attachment.Query().
		Where(
			attachment.IDEQ(id),
			attachment.HasNodeWith(node.HasConversationWith(conversation.UserIDEQ(userID))),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get attachment: %w", err)
	}
	return a, nil
}
