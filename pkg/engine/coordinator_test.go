package engine

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
	"github.com/deepcouncil/made/pkg/services"
	"github.com/deepcouncil/made/pkg/upload"
)

func drain(t *testing.T, events <-chan Event) []Event {
	t.Helper()
	var out []Event
	timeout := time.After(5 * time.Second)
	for {
		select {
		case e, ok := <-events:
			if !ok {
				return out
			}
			out = append(out, e)
		case <-timeout:
			t.Fatal("timed out draining event stream")
		}
	}
}

func eventTypes(events []Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.Type
	}
	return out
}

func newTestCoordinator(store *fakeStore, gw *fakeGateway) (*Coordinator, *upload.Staging) {
	staging := upload.NewStaging(time.Hour)
	return NewCoordinator(store, store, gw, staging), staging
}

func TestCoordinatorRunCouncil(t *testing.T) {
	ctx := context.Background()

	t.Run("missing api key fails before streaming", func(t *testing.T) {
		coord, _ := newTestCoordinator(newFakeStore(), echoGateway(0))
		_, err := coord.RunCouncil(ctx, "alice", "", models.CouncilRunRequest{Prompt: "q"})
		require.ErrorIs(t, err, ErrNoAPIKey)
	})

	t.Run("unknown method is a validation error", func(t *testing.T) {
		coord, _ := newTestCoordinator(newFakeStore(), echoGateway(0))
		_, err := coord.RunCouncil(ctx, "alice", "sk", models.CouncilRunRequest{
			Prompt: "q", Method: "vote",
		})
		require.Error(t, err)
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("ensemble end to end event sequence", func(t *testing.T) {
		store := newFakeStore()
		coord, _ := newTestCoordinator(store, echoGateway(0.01))

		events, err := coord.RunCouncil(ctx, "alice", "sk", models.CouncilRunRequest{
			Prompt:         "Capital of France? one word.",
			Method:         "ensemble",
			CouncilMembers: []string{"m", "m"},
			ChairmanModel:  "m",
		})
		require.NoError(t, err)
		got := drain(t, events)

		assert.Equal(t, []string{
			EventStart, EventNode, EventStatus, EventNode, EventNode,
			EventStatus, EventNode, EventDone,
		}, eventTypes(got))

		assert.Equal(t, got[0].ConversationID, got[1].Node.ConversationID)
		assert.Equal(t, "root", got[1].Node.Type)

		conv := store.convs[got[0].ConversationID]
		require.NotNil(t, conv)
		assert.Equal(t, conversation.MethodEnsemble, conv.Method)
		assert.Equal(t, "alice", conv.UserID)
	})

	t.Run("staged uploads promote onto root, mismatched owner skipped", func(t *testing.T) {
		store := newFakeStore()
		coord, staging := newTestCoordinator(store, echoGateway(0))

		mine := staging.Put(upload.Entry{
			Filename: "mine.png", FileType: "image", MimeType: "image/png",
			FileData: []byte{1}, FileSize: 1, UserID: "alice",
		})
		theirs := staging.Put(upload.Entry{
			Filename: "theirs.png", FileType: "image", MimeType: "image/png",
			FileData: []byte{2}, FileSize: 1, UserID: "bob",
		})

		events, err := coord.RunCouncil(ctx, "alice", "sk", models.CouncilRunRequest{
			Prompt:         "q",
			Method:         "dag",
			CouncilMembers: []string{"m"},
			ChairmanModel:  "m",
			AttachmentIDs:  []string{mine, theirs},
		})
		require.NoError(t, err)
		got := drain(t, events)
		assert.Equal(t, EventDone, got[len(got)-1].Type)

		rootView := got[1].Node
		require.Equal(t, "root", rootView.Type)
		assert.Equal(t, "mine.png", rootView.AttachmentFilenames)
		require.Len(t, rootView.Attachments, 1)
		assert.Equal(t, "mine.png", rootView.Attachments[0].Filename)

		// Both tokens are consumed regardless of outcome.
		assert.Zero(t, staging.Len())

		// Children inherit the root manifest.
		for _, n := range store.nodesOfType(node.TypePlan) {
			require.NotNil(t, n.AttachmentFilenames)
			assert.Equal(t, "mine.png", *n.AttachmentFilenames)
		}
	})

	t.Run("dxo without roles emits terminal error event", func(t *testing.T) {
		store := newFakeStore()
		coord, _ := newTestCoordinator(store, echoGateway(0))

		events, err := coord.RunCouncil(ctx, "alice", "sk", models.CouncilRunRequest{
			Prompt: "Design X",
			Method: "dxo",
		})
		require.NoError(t, err)
		got := drain(t, events)

		assert.Equal(t, []string{EventStart, EventNode, EventError}, eventTypes(got))
		assert.Contains(t, got[2].Message, "no roles")
	})
}

func TestCoordinatorRunSuperChat(t *testing.T) {
	ctx := context.Background()

	t.Run("first turn creates a superchat conversation", func(t *testing.T) {
		store := newFakeStore()
		coord, _ := newTestCoordinator(store, echoGateway(0))

		events, err := coord.RunSuperChat(ctx, "alice", "sk", models.SuperChatRequest{
			Prompt:         "Capital of France?",
			CouncilMembers: []string{"m"},
			ChairmanModel:  "m",
		})
		require.NoError(t, err)
		got := drain(t, events)
		assert.Equal(t, EventDone, got[len(got)-1].Type)

		conv := store.convs[got[0].ConversationID]
		require.NotNil(t, conv)
		assert.Equal(t, conversation.MethodSuperchat, conv.Method)
		assert.Nil(t, got[1].Node.ParentID)
	})

	t.Run("second turn anchors to prior synthesis with context prefix", func(t *testing.T) {
		store := newFakeStore()
		gw := echoGateway(0)
		coord, _ := newTestCoordinator(store, gw)

		first, err := coord.RunSuperChat(ctx, "alice", "sk", models.SuperChatRequest{
			Prompt:         "Capital of France?",
			CouncilMembers: []string{"m"},
			ChairmanModel:  "m",
		})
		require.NoError(t, err)
		firstEvents := drain(t, first)
		convID := firstEvents[0].ConversationID

		synths := store.nodesOfType(node.TypeSynthesis)
		require.Len(t, synths, 1)

		second, err := coord.RunSuperChat(ctx, "alice", "sk", models.SuperChatRequest{
			Prompt:         "Say it in Spanish",
			ConversationID: &convID,
			CouncilMembers: []string{"m"},
			ChairmanModel:  "m",
		})
		require.NoError(t, err)
		secondEvents := drain(t, second)
		assert.Equal(t, EventDone, secondEvents[len(secondEvents)-1].Type)

		turnRoot := secondEvents[1].Node
		require.Equal(t, "root", turnRoot.Type)
		require.NotNil(t, turnRoot.ParentID)
		assert.Equal(t, synths[0].ID, *turnRoot.ParentID)

		// The ensemble prompt carries the prior synthesis as context.
		var sawContext bool
		for _, call := range gw.callsFor("m") {
			if text, ok := call.Messages[0].Content.(string); ok {
				if strings.Contains(text, "Context from previous turn:\n"+synths[0].Content) &&
					strings.Contains(text, "New Request: Say it in Spanish") {
					sawContext = true
				}
			}
		}
		assert.True(t, sawContext, "no research call carried the prior-turn context")
	})

	t.Run("foreign conversation is not found", func(t *testing.T) {
		store := newFakeStore()
		coord, _ := newTestCoordinator(store, echoGateway(0))

		conv, err := store.Create(ctx, "bob", "bob's chat", conversation.MethodSuperchat)
		require.NoError(t, err)

		_, err = coord.RunSuperChat(ctx, "alice", "sk", models.SuperChatRequest{
			Prompt:         "hi",
			ConversationID: &conv.ID,
		})
		require.ErrorIs(t, err, services.ErrNotFound)
	})
}
