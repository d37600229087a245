package engine

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepcouncil/made/ent/node"
	"github.com/deepcouncil/made/pkg/gateway"
	"github.com/deepcouncil/made/pkg/models"
)

func TestEnsembleEngine(t *testing.T) {
	ctx := context.Background()

	t.Run("two members produce two research nodes and one synthesis", func(t *testing.T) {
		store := newFakeStore()
		gw := echoGateway(0.01)
		root := store.mustNode(1, nil, node.TypeRoot, "Capital of France? one word.")

		eng := NewEnsembleEngine(testDeps(store, gw), EnsembleConfig{
			CouncilMembers: []string{"m1", "m2"},
			ChairmanModel:  "chair",
		})
		sink := &eventSink{}
		require.NoError(t, eng.Run(ctx, root, sink.emit))

		assert.Equal(t, []string{
			EventStatus, EventNode, EventNode, EventStatus, EventNode,
		}, sink.types())
		assert.Equal(t, []string{"research", "research", "synthesis"}, sink.nodeTypes())

		// Every research node is a child of root.
		for _, n := range store.nodesOfType(node.TypeResearch) {
			require.NotNil(t, n.ParentID)
			assert.Equal(t, root.ID, *n.ParentID)
		}
		synth := store.nodesOfType(node.TypeSynthesis)
		require.Len(t, synth, 1)
		assert.Equal(t, root.ID, *synth[0].ParentID)
		assert.Equal(t, 0.01, synth[0].ActualCost)
	})

	t.Run("single member boundary", func(t *testing.T) {
		store := newFakeStore()
		root := store.mustNode(1, nil, node.TypeRoot, "q")

		eng := NewEnsembleEngine(testDeps(store, echoGateway(0)), EnsembleConfig{
			CouncilMembers: []string{"only"},
			ChairmanModel:  "chair",
		})
		sink := &eventSink{}
		require.NoError(t, eng.Run(ctx, root, sink.emit))

		assert.Len(t, store.nodesOfType(node.TypeResearch), 1)
		assert.Len(t, store.nodesOfType(node.TypeSynthesis), 1)
	})

	t.Run("member failure is reified as error artifact", func(t *testing.T) {
		store := newFakeStore()
		gw := newFakeGateway(func(req gateway.CompletionRequest) (*gateway.Completion, error) {
			if req.Model == "bad" {
				return nil, errors.New("rate limited")
			}
			return &gateway.Completion{Content: "fine"}, nil
		})
		root := store.mustNode(1, nil, node.TypeRoot, "q")

		eng := NewEnsembleEngine(testDeps(store, gw), EnsembleConfig{
			CouncilMembers: []string{"good", "bad"},
			ChairmanModel:  "chair",
		})
		sink := &eventSink{}
		require.NoError(t, eng.Run(ctx, root, sink.emit))

		research := store.nodesOfType(node.TypeResearch)
		require.Len(t, research, 2)
		assert.Equal(t, "fine", research[0].Content)
		assert.True(t, strings.HasPrefix(research[1].Content, "Error conducting research: "))
		assert.Zero(t, research[1].ActualCost)

		// The failure does not prevent synthesis.
		assert.Len(t, store.nodesOfType(node.TypeSynthesis), 1)
	})

	t.Run("synthesis failure is terminal", func(t *testing.T) {
		store := newFakeStore()
		gw := newFakeGateway(func(req gateway.CompletionRequest) (*gateway.Completion, error) {
			if req.Model == "chair" {
				return nil, errors.New("boom")
			}
			return &gateway.Completion{Content: "ok"}, nil
		})
		root := store.mustNode(1, nil, node.TypeRoot, "q")

		eng := NewEnsembleEngine(testDeps(store, gw), EnsembleConfig{
			CouncilMembers: []string{"m"},
			ChairmanModel:  "chair",
		})
		err := eng.Run(ctx, root, (&eventSink{}).emit)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "synthesis failed")
		assert.Empty(t, store.nodesOfType(node.TypeSynthesis))
	})

	t.Run("prompt override replaces root content", func(t *testing.T) {
		store := newFakeStore()
		gw := echoGateway(0)
		root := store.mustNode(1, nil, node.TypeRoot, "Say it in Spanish")

		override := superChatPrompt("Paris", "Say it in Spanish")
		eng := NewEnsembleEngine(testDeps(store, gw), EnsembleConfig{
			CouncilMembers: []string{"m"},
			ChairmanModel:  "chair",
			PromptOverride: override,
		})
		require.NoError(t, eng.Run(ctx, root, (&eventSink{}).emit))

		calls := gw.callsFor("m")
		require.Len(t, calls, 1)
		prompt, ok := calls[0].Messages[0].Content.(string)
		require.True(t, ok)
		assert.Contains(t, prompt, "Context from previous turn:\nParis\n\nNew Request: Say it in Spanish")
	})

	t.Run("inherited attachments reach every call with manifest recorded", func(t *testing.T) {
		store := newFakeStore()
		gw := echoGateway(0)
		gw.warnings["m"] = []string{"Model m does not support image attachments; they may be ignored"}
		root := store.mustNode(1, nil, node.TypeRoot, "q")
		_, err := store.Attach(ctx, models.AttachRequest{
			NodeID: root.ID, Filename: "pic.png", FileType: "image",
			MimeType: "image/png", FileData: []byte{0x89, 0x50},
		})
		require.NoError(t, err)

		eng := NewEnsembleEngine(testDeps(store, gw), EnsembleConfig{
			CouncilMembers: []string{"m"},
			ChairmanModel:  "chair",
		})
		require.NoError(t, eng.Run(ctx, root, (&eventSink{}).emit))

		calls := gw.callsFor("m")
		require.Len(t, calls, 1)
		require.Len(t, calls[0].Attachments, 1)
		assert.Equal(t, "pic.png", calls[0].Attachments[0].Filename)

		research := store.nodesOfType(node.TypeResearch)
		require.Len(t, research, 1)
		require.NotNil(t, research[0].AttachmentFilenames)
		assert.Equal(t, "pic.png", *research[0].AttachmentFilenames)
		assert.Equal(t, gw.warnings["m"], research[0].Warnings)
	})
}
