package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepcouncil/made/ent"
	"github.com/deepcouncil/made/ent/conversation"
	"github.com/deepcouncil/made/ent/node"
	"github.com/deepcouncil/made/pkg/models"
	testdb "github.com/deepcouncil/made/test/database"
)

func seedConversation(t *testing.T, client *ent.Client, userID string) *ent.Conversation {
	t.Helper()
	conv, err := NewConversationService(client).Create(context.Background(), userID, "seed", conversation.MethodDag)
	require.NoError(t, err)
	return conv
}

func TestNodeService_CreateNode(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewNodeService(client.Client)
	ctx := context.Background()

	conv := seedConversation(t, client.Client, "alice")

	t.Run("creates root node", func(t *testing.T) {
		n, err := svc.CreateNode(ctx, models.CreateNodeRequest{
			ConversationID: conv.ID,
			Type:           node.TypeRoot,
			Content:        "What is Go?",
			ModelName:      "user",
		})
		require.NoError(t, err)
		assert.Equal(t, conv.ID, n.ConversationID)
		assert.Nil(t, n.ParentID)
		assert.Equal(t, node.TypeRoot, n.Type)
		require.NotNil(t, n.ModelName)
		assert.Equal(t, "user", *n.ModelName)
		assert.Zero(t, n.ActualCost)
	})

	t.Run("child references its parent", func(t *testing.T) {
		root, err := svc.CreateNode(ctx, models.CreateNodeRequest{
			ConversationID: conv.ID, Type: node.TypeRoot, Content: "q", ModelName: "user",
		})
		require.NoError(t, err)

		child, err := svc.CreateNode(ctx, models.CreateNodeRequest{
			ConversationID: conv.ID,
			ParentID:       &root.ID,
			Type:           node.TypeResearch,
			Content:        "findings",
			ModelName:      "vendor/model",
			ActualCost:     0.01,
			Warnings:       []string{"w1"},
		})
		require.NoError(t, err)
		require.NotNil(t, child.ParentID)
		assert.Equal(t, root.ID, *child.ParentID)
		assert.Equal(t, []string{"w1"}, child.Warnings)
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := svc.CreateNode(ctx, models.CreateNodeRequest{Type: node.TypeRoot, Content: "q"})
		assert.True(t, IsValidationError(err))

		_, err = svc.CreateNode(ctx, models.CreateNodeRequest{ConversationID: conv.ID, Content: "q"})
		assert.True(t, IsValidationError(err))

		_, err = svc.CreateNode(ctx, models.CreateNodeRequest{
			ConversationID: conv.ID, Type: "bogus", Content: "q",
		})
		assert.True(t, IsValidationError(err))

		_, err = svc.CreateNode(ctx, models.CreateNodeRequest{
			ConversationID: conv.ID, Type: node.TypeRoot, Content: "q", ActualCost: -1,
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects parent from another conversation", func(t *testing.T) {
		other := seedConversation(t, client.Client, "alice")
		foreignRoot, err := svc.CreateNode(ctx, models.CreateNodeRequest{
			ConversationID: other.ID, Type: node.TypeRoot, Content: "q", ModelName: "user",
		})
		require.NoError(t, err)

		_, err = svc.CreateNode(ctx, models.CreateNodeRequest{
			ConversationID: conv.ID, ParentID: &foreignRoot.ID, Type: node.TypeResearch, Content: "r",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("missing parent is not found", func(t *testing.T) {
		missing := 999999
		_, err := svc.CreateNode(ctx, models.CreateNodeRequest{
			ConversationID: conv.ID, ParentID: &missing, Type: node.TypeResearch, Content: "r",
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestNodeService_Queries(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewNodeService(client.Client)
	ctx := context.Background()

	conv := seedConversation(t, client.Client, "alice")

	root, err := svc.CreateNode(ctx, models.CreateNodeRequest{
		ConversationID: conv.ID, Type: node.TypeRoot, Content: "q", ModelName: "user",
	})
	require.NoError(t, err)
	research, err := svc.CreateNode(ctx, models.CreateNodeRequest{
		ConversationID: conv.ID, ParentID: &root.ID, Type: node.TypeResearch, Content: "r", ModelName: "m",
	})
	require.NoError(t, err)
	synth1, err := svc.CreateNode(ctx, models.CreateNodeRequest{
		ConversationID: conv.ID, ParentID: &research.ID, Type: node.TypeSynthesis, Content: "first answer", ModelName: "m",
	})
	require.NoError(t, err)
	synth2, err := svc.CreateNode(ctx, models.CreateNodeRequest{
		ConversationID: conv.ID, ParentID: &synth1.ID, Type: node.TypeSynthesis, Content: "second answer", ModelName: "m",
	})
	require.NoError(t, err)

	t.Run("get node", func(t *testing.T) {
		got, err := svc.GetNode(ctx, root.ID)
		require.NoError(t, err)
		assert.Equal(t, "q", got.Content)

		_, err = svc.GetNode(ctx, 999999)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list nodes in creation order", func(t *testing.T) {
		nodes, err := svc.ListNodes(ctx, conv.ID)
		require.NoError(t, err)
		require.Len(t, nodes, 4)
		assert.Equal(t, root.ID, nodes[0].ID)
		assert.Equal(t, synth2.ID, nodes[3].ID)
	})

	t.Run("last synthesis picks the newest", func(t *testing.T) {
		last, err := svc.LastSynthesis(ctx, conv.ID)
		require.NoError(t, err)
		assert.Equal(t, synth2.ID, last.ID)
		assert.Equal(t, "second answer", last.Content)
	})

	t.Run("last synthesis without one is not found", func(t *testing.T) {
		empty := seedConversation(t, client.Client, "alice")
		_, err := svc.LastSynthesis(ctx, empty.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestNodeService_UpdateNodeCost(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewNodeService(client.Client)
	ctx := context.Background()

	conv := seedConversation(t, client.Client, "alice")
	n, err := svc.CreateNode(ctx, models.CreateNodeRequest{
		ConversationID: conv.ID, Type: node.TypeRoot, Content: "q", ModelName: "user",
	})
	require.NoError(t, err)

	t.Run("owner updates cost", func(t *testing.T) {
		updated, err := svc.UpdateNodeCost(ctx, "alice", n.ID, 0.42)
		require.NoError(t, err)
		assert.InDelta(t, 0.42, updated.ActualCost, 1e-9)
	})

	t.Run("rejects negative cost", func(t *testing.T) {
		_, err := svc.UpdateNodeCost(ctx, "alice", n.ID, -0.1)
		assert.True(t, IsValidationError(err))
	})

	t.Run("other users see not found", func(t *testing.T) {
		_, err := svc.UpdateNodeCost(ctx, "bob", n.ID, 0.1)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestNodeService_Attachments(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewNodeService(client.Client)
	ctx := context.Background()

	conv := seedConversation(t, client.Client, "alice")
	n, err := svc.CreateNode(ctx, models.CreateNodeRequest{
		ConversationID: conv.ID, Type: node.TypeRoot, Content: "q", ModelName: "user",
	})
	require.NoError(t, err)

	t.Run("attach round trips binary data", func(t *testing.T) {
		a, err := svc.Attach(ctx, models.AttachRequest{
			NodeID:   n.ID,
			Filename: "photo.png",
			FileType: "image",
			MimeType: "image/png",
			FileData: []byte{0x89, 0x50, 0x4e, 0x47},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(4), a.FileSize)

		got, err := svc.GetAttachment(ctx, "alice", a.ID)
		require.NoError(t, err)
		assert.Equal(t, "photo.png", got.Filename)
		assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, got.FileData)
	})

	t.Run("rejects unsupported file type", func(t *testing.T) {
		_, err := svc.Attach(ctx, models.AttachRequest{
			NodeID: n.ID, Filename: "a.zip", FileType: "archive", MimeType: "application/zip", FileData: []byte{1},
		})
		assert.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("rejects oversized file and names it", func(t *testing.T) {
		_, err := svc.Attach(ctx, models.AttachRequest{
			NodeID:   n.ID,
			Filename: "big.txt",
			FileType: "text",
			MimeType: "text/plain",
			FileData: make([]byte, 5<<20+1),
		})
		require.ErrorIs(t, err, ErrAttachmentTooLarge)
		assert.Contains(t, err.Error(), "big.txt")
	})

	t.Run("attachments listed in declaration order", func(t *testing.T) {
		other, err := svc.CreateNode(ctx, models.CreateNodeRequest{
			ConversationID: conv.ID, Type: node.TypeRoot, Content: "q2", ModelName: "user",
		})
		require.NoError(t, err)

		for _, name := range []string{"first.txt", "second.txt"} {
			_, err := svc.Attach(ctx, models.AttachRequest{
				NodeID: other.ID, Filename: name, FileType: "text", MimeType: "text/plain", FileData: []byte("x"),
			})
			require.NoError(t, err)
		}

		atts, err := svc.AttachmentsOf(ctx, other.ID)
		require.NoError(t, err)
		require.Len(t, atts, 2)
		assert.Equal(t, "first.txt", atts[0].Filename)
		assert.Equal(t, "second.txt", atts[1].Filename)
	})

	t.Run("attachment fetch requires ownership", func(t *testing.T) {
		a, err := svc.Attach(ctx, models.AttachRequest{
			NodeID: n.ID, Filename: "secret.txt", FileType: "text", MimeType: "text/plain", FileData: []byte("s"),
		})
		require.NoError(t, err)

		_, err = svc.GetAttachment(ctx, "bob", a.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("set attachment filenames manifest", func(t *testing.T) {
		updated, err := svc.SetAttachmentFilenames(ctx, n.ID, "photo.png,secret.txt")
		require.NoError(t, err)
		require.NotNil(t, updated.AttachmentFilenames)
		assert.Equal(t, "photo.png,secret.txt", *updated.AttachmentFilenames)

		_, err = svc.SetAttachmentFilenames(ctx, 999999, "x")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
