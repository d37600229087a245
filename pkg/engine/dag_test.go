package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepcouncil/made/ent/node"
	"github.com/deepcouncil/made/pkg/gateway"
	"github.com/deepcouncil/made/pkg/models"
)

func TestDAGEngine(t *testing.T) {
	ctx := context.Background()

	t.Run("full pipeline with one member", func(t *testing.T) {
		store := newFakeStore()
		gw := echoGateway(0.02)
		root := store.mustNode(1, nil, node.TypeRoot, "Is the earth flat?")

		eng := NewDAGEngine(testDeps(store, gw), DAGConfig{
			CouncilMembers: []string{"m"},
			ChairmanModel:  "chair",
		})
		sink := &eventSink{}
		require.NoError(t, eng.Run(ctx, root, sink.emit))

		assert.Equal(t, []string{
			EventStatus, EventNode, EventStatus, EventNode,
			EventStatus, EventNode, EventStatus, EventNode,
		}, sink.types())
		assert.Equal(t, []string{"plan", "research", "critique", "synthesis"}, sink.nodeTypes())

		plans := store.nodesOfType(node.TypePlan)
		require.Len(t, plans, 1)
		plan := plans[0]
		assert.Equal(t, root.ID, *plan.ParentID)

		// Research, critiques, and synthesis all hang off the plan.
		for _, typ := range []node.Type{node.TypeResearch, node.TypeCritique, node.TypeSynthesis} {
			for _, n := range store.nodesOfType(typ) {
				require.NotNil(t, n.ParentID)
				assert.Equal(t, plan.ID, *n.ParentID, "type %s", typ)
			}
		}
	})

	t.Run("empty council still produces plan and synthesis", func(t *testing.T) {
		store := newFakeStore()
		root := store.mustNode(1, nil, node.TypeRoot, "q")

		eng := NewDAGEngine(testDeps(store, echoGateway(0)), DAGConfig{
			CouncilMembers: nil,
			ChairmanModel:  "chair",
		})
		sink := &eventSink{}
		require.NoError(t, eng.Run(ctx, root, sink.emit))

		assert.Len(t, store.nodesOfType(node.TypePlan), 1)
		assert.Len(t, store.nodesOfType(node.TypeSynthesis), 1)
		assert.Empty(t, store.nodesOfType(node.TypeResearch))
		assert.Empty(t, store.nodesOfType(node.TypeCritique))
	})

	t.Run("coordinator failure is terminal", func(t *testing.T) {
		store := newFakeStore()
		gw := newFakeGateway(func(gateway.CompletionRequest) (*gateway.Completion, error) {
			return nil, errors.New("unreachable")
		})
		root := store.mustNode(1, nil, node.TypeRoot, "q")

		eng := NewDAGEngine(testDeps(store, gw), DAGConfig{
			CouncilMembers: []string{"m"},
			ChairmanModel:  "chair",
		})
		err := eng.Run(ctx, root, (&eventSink{}).emit)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "coordinator failed")
		assert.Empty(t, store.nodesOfType(node.TypePlan))
	})

	t.Run("researcher failure reified while critique proceeds", func(t *testing.T) {
		store := newFakeStore()
		calls := 0
		gw := newFakeGateway(func(req gateway.CompletionRequest) (*gateway.Completion, error) {
			calls++
			if req.Model == "flaky" && calls == 2 {
				// Fails only during the research fan-out.
				return nil, errors.New("timeout")
			}
			return &gateway.Completion{Content: "content"}, nil
		})
		root := store.mustNode(1, nil, node.TypeRoot, "q")

		eng := NewDAGEngine(testDeps(store, gw), DAGConfig{
			CouncilMembers: []string{"flaky"},
			ChairmanModel:  "chair",
		})
		require.NoError(t, eng.Run(ctx, root, (&eventSink{}).emit))

		research := store.nodesOfType(node.TypeResearch)
		require.Len(t, research, 1)
		assert.Contains(t, research[0].Content, "Error conducting research: ")
		assert.Len(t, store.nodesOfType(node.TypeCritique), 1)
		assert.Len(t, store.nodesOfType(node.TypeSynthesis), 1)
	})

	t.Run("children inherit root attachments through the plan", func(t *testing.T) {
		store := newFakeStore()
		gw := echoGateway(0)
		root := store.mustNode(1, nil, node.TypeRoot, "q")
		_, err := store.Attach(ctx, models.AttachRequest{
			NodeID: root.ID, Filename: "data.csv", FileType: "text",
			MimeType: "text/csv", FileData: []byte("a,b"),
		})
		require.NoError(t, err)

		eng := NewDAGEngine(testDeps(store, gw), DAGConfig{
			CouncilMembers: []string{"m"},
			ChairmanModel:  "chair",
		})
		require.NoError(t, eng.Run(ctx, root, (&eventSink{}).emit))

		// The plan node is within depth 3 of root, so researchers and the
		// synthesis see the root attachment and record its manifest.
		for _, typ := range []node.Type{node.TypePlan, node.TypeResearch, node.TypeCritique, node.TypeSynthesis} {
			for _, n := range store.nodesOfType(typ) {
				require.NotNil(t, n.AttachmentFilenames, "type %s", typ)
				assert.Equal(t, "data.csv", *n.AttachmentFilenames, "type %s", typ)
			}
		}
	})
}
