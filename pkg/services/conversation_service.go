package services

import (
	"context"
	"fmt"
	"time"

	"github.com/deepcouncil/made/ent"
	"github.com/deepcouncil/made/ent/conversation"
	"github.com/deepcouncil/made/ent/node"
)

// maxTitleLen bounds the conversation title derived from the opening prompt.
const maxTitleLen = 50

// ConversationService manages conversation lifecycle and aggregates.
type ConversationService struct {
	client *ent.Client
}

// NewConversationService creates a new ConversationService.
func NewConversationService(client *ent.Client) *ConversationService {
	return &ConversationService{client: client}
}

// Create creates a conversation owned by userID. The title is derived from
// the opening prompt.
func (s *ConversationService) Create(ctx context.Context, userID, prompt string, method conversation.Method) (*ent.Conversation, error) {
	if userID == "" {
		return nil, NewValidationError("user_id", "required")
	}

	conv, err := s.client.Conversation.Create().
		SetUserID(userID).
		SetTitle(deriveTitle(prompt)).
		SetMethod(method).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}
	return conv, nil
}

// GetOwned retrieves a conversation by id, scoped to its owner. A
// conversation owned by someone else is reported as ErrNotFound to avoid
// leaking existence.
func (s *ConversationService) GetOwned(ctx context.Context, userID string, id int) (*ent.Conversation, error) {
	conv, err := s.client.Conversation.Query().
		Where(conversation.IDEQ(id), conversation.UserIDEQ(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}
	return conv, nil
}

// List returns the user's conversations, newest first.
func (s *ConversationService) List(ctx context.Context, userID string) ([]*ent.Conversation, error) {
	convs, err := s.client.Conversation.Query().
		Where(conversation.UserIDEQ(userID)).
		Order(ent.Desc(conversation.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	return convs, nil
}

// TotalCost sums actual_cost over every node of an owned conversation.
func (s *ConversationService) TotalCost(ctx context.Context, userID string, id int) (float64, error) {
	if _, err := s.GetOwned(ctx, userID, id); err != nil {
		return 0, err
	}

	nodes, err := s.client.Node.Query().
		Where(node.ConversationIDEQ(id)).
		Select(node.FieldActualCost).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to sum node costs: %w", err)
	}

	var total float64
	for _, n := range nodes {
		total += n.ActualCost
	}
	return total, nil
}

// Delete removes an owned conversation; its nodes and their attachments
// cascade-delete with it.
func (s *ConversationService) Delete(ctx context.Context, userID string, id int) error {
	if _, err := s.GetOwned(ctx, userID, id); err != nil {
		return err
	}
	if err := s.client.Conversation.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete conversation: %w", err)
	}
	return nil
}

// DeleteOlderThan removes all conversations created before cutoff, across
// users; nodes and attachments cascade-delete. Returns the number removed.
// Used by the retention service.
func (s *ConversationService) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.Conversation.Delete().
		Where(conversation.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired conversations: %w", err)
	}
	return n, nil
}

func deriveTitle(prompt string) string {
	runes := []rune(prompt)
	if len(runes) > maxTitleLen {
		return string(runes[:maxTitleLen])
	}
	return prompt
}
