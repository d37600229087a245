package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepcouncil/made/ent/conversation"
	"github.com/deepcouncil/made/ent/node"
	"github.com/deepcouncil/made/pkg/models"
	testdb "github.com/deepcouncil/made/test/database"
)

func TestConversationService_Create(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewConversationService(client.Client)
	ctx := context.Background()

	t.Run("creates conversation with derived title", func(t *testing.T) {
		conv, err := svc.Create(ctx, "alice", "Capital of France?", conversation.MethodEnsemble)
		require.NoError(t, err)
		assert.Equal(t, "alice", conv.UserID)
		assert.Equal(t, "Capital of France?", conv.Title)
		assert.Equal(t, conversation.MethodEnsemble, conv.Method)
		assert.False(t, conv.CreatedAt.IsZero())
	})

	t.Run("long prompts are truncated to the title limit", func(t *testing.T) {
		prompt := strings.Repeat("x", 200)
		conv, err := svc.Create(ctx, "alice", prompt, conversation.MethodDag)
		require.NoError(t, err)
		assert.Len(t, conv.Title, maxTitleLen)
	})

	t.Run("validates user_id required", func(t *testing.T) {
		_, err := svc.Create(ctx, "", "q", conversation.MethodDag)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestConversationService_Ownership(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewConversationService(client.Client)
	ctx := context.Background()

	conv, err := svc.Create(ctx, "alice", "mine", conversation.MethodDag)
	require.NoError(t, err)

	t.Run("owner can fetch", func(t *testing.T) {
		got, err := svc.GetOwned(ctx, "alice", conv.ID)
		require.NoError(t, err)
		assert.Equal(t, conv.ID, got.ID)
	})

	t.Run("other users see not found", func(t *testing.T) {
		_, err := svc.GetOwned(ctx, "bob", conv.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list is scoped to the user", func(t *testing.T) {
		_, err := svc.Create(ctx, "bob", "theirs", conversation.MethodDag)
		require.NoError(t, err)

		mine, err := svc.List(ctx, "alice")
		require.NoError(t, err)
		for _, c := range mine {
			assert.Equal(t, "alice", c.UserID)
		}
	})

	t.Run("delete requires ownership", func(t *testing.T) {
		victim, err := svc.Create(ctx, "alice", "to delete", conversation.MethodDag)
		require.NoError(t, err)

		require.ErrorIs(t, svc.Delete(ctx, "bob", victim.ID), ErrNotFound)
		require.NoError(t, svc.Delete(ctx, "alice", victim.ID))
		_, err = svc.GetOwned(ctx, "alice", victim.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestConversationService_TotalCost(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewConversationService(client.Client)
	nodes := NewNodeService(client.Client)
	ctx := context.Background()

	conv, err := svc.Create(ctx, "alice", "q", conversation.MethodEnsemble)
	require.NoError(t, err)

	root, err := nodes.CreateNode(ctx, models.CreateNodeRequest{
		ConversationID: conv.ID, Type: node.TypeRoot, Content: "q", ModelName: "user",
	})
	require.NoError(t, err)
	for _, cost := range []float64{0.01, 0.02} {
		_, err = nodes.CreateNode(ctx, models.CreateNodeRequest{
			ConversationID: conv.ID, ParentID: &root.ID, Type: node.TypeResearch,
			Content: "r", ModelName: "m", ActualCost: cost,
		})
		require.NoError(t, err)
	}

	t.Run("sums node costs", func(t *testing.T) {
		total, err := svc.TotalCost(ctx, "alice", conv.ID)
		require.NoError(t, err)
		assert.InDelta(t, 0.03, total, 1e-9)
	})

	t.Run("scoped to owner", func(t *testing.T) {
		_, err := svc.TotalCost(ctx, "bob", conv.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestConversationService_DeleteOlderThan(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewConversationService(client.Client)
	ctx := context.Background()

	old, err := svc.Create(ctx, "alice", "old", conversation.MethodDag)
	require.NoError(t, err)
	// Backdate beyond the cutoff.
	_, err = client.Client.Conversation.UpdateOneID(old.ID).
		SetCreatedAt(time.Now().AddDate(0, 0, -90)).Save(ctx)
	require.NoError(t, err)

	fresh, err := svc.Create(ctx, "alice", "fresh", conversation.MethodDag)
	require.NoError(t, err)

	removed, err := svc.DeleteOlderThan(ctx, time.Now().AddDate(0, 0, -30))
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = svc.GetOwned(ctx, "alice", old.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.GetOwned(ctx, "alice", fresh.ID)
	assert.NoError(t, err)
}
