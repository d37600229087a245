package engine

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepcouncil/made/ent/node"
	"github.com/deepcouncil/made/pkg/gateway"
	"github.com/deepcouncil/made/pkg/models"
)

func dxoRoles() []models.Role {
	return []models.Role{
		{Name: "Lead Researcher", Model: "m1"},
		{Name: "Critical Reviewer", Model: "m2"},
		{Name: "QA Strategist", Model: "m3"},
	}
}

// scriptedCritic replies with a fixed critic score and generic content for
// everyone else.
func scriptedCritic(score int) *fakeGateway {
	return newFakeGateway(func(req gateway.CompletionRequest) (*gateway.Completion, error) {
		if req.Model == "m2" {
			return &gateway.Completion{Content: fmt.Sprintf("Critique Report\nScore: %d", score)}, nil
		}
		return &gateway.Completion{Content: "draft content from " + req.Model}, nil
	})
}

func TestParseScore(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"plain score", "Score: 90", 90},
		{"confidence prefix", "Confidence Score: 42", 42},
		{"case insensitive", "confidence score:   7", 7},
		{"embedded in report", "Risks...\nFinal Score: 85\nDone", 85},
		{"absent defaults to zero", "looks great to me", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseScore(tt.content))
		})
	}
}

func TestCastPanel(t *testing.T) {
	t.Run("selects by name substring", func(t *testing.T) {
		cast := castPanel(dxoRoles())
		assert.Equal(t, "Lead Researcher", cast.proposer.Name)
		require.NotNil(t, cast.critic)
		assert.Equal(t, "Critical Reviewer", cast.critic.Name)
		require.Len(t, cast.experts, 1)
		assert.Equal(t, "QA Strategist", cast.experts[0].Name)
	})

	t.Run("falls back to first role as proposer", func(t *testing.T) {
		cast := castPanel([]models.Role{
			{Name: "Security Expert", Model: "a"},
			{Name: "Domain Expert", Model: "b"},
		})
		assert.Equal(t, "Security Expert", cast.proposer.Name)
		assert.Nil(t, cast.critic)
		require.Len(t, cast.experts, 1)
		assert.Equal(t, "Domain Expert", cast.experts[0].Name)
	})
}

func TestDxOEngine(t *testing.T) {
	ctx := context.Background()

	t.Run("converges on first iteration at score 90", func(t *testing.T) {
		store := newFakeStore()
		gw := scriptedCritic(90)
		root := store.mustNode(1, nil, node.TypeRoot, "Design X")

		eng := NewDxOEngine(testDeps(store, gw), DxOConfig{Roles: dxoRoles(), MaxIterations: 2})
		sink := &eventSink{}
		require.NoError(t, eng.Run(ctx, root, sink.emit))

		assert.Equal(t, []string{
			"proposal", "test_cases", "refinement", "critique", "verdict",
		}, sink.nodeTypes())

		verdicts := store.nodesOfType(node.TypeVerdict)
		require.Len(t, verdicts, 1)
		assert.Contains(t, verdicts[0].Content, "APPROVED")
		assert.Contains(t, verdicts[0].Content, "Confidence: 90%")
		assert.Contains(t, verdicts[0].Content, "Iterations: 1 Loops")
		require.NotNil(t, verdicts[0].ModelName)
		assert.Equal(t, "System", *verdicts[0].ModelName)
		assert.Zero(t, verdicts[0].ActualCost)

		// Lineage: proposal under root, reviews under the draft they review,
		// refinement under the old draft, gate critique under the new draft.
		proposal := store.nodesOfType(node.TypeProposal)[0]
		assert.Equal(t, root.ID, *proposal.ParentID)
		testCases := store.nodesOfType(node.TypeTestCases)[0]
		assert.Equal(t, proposal.ID, *testCases.ParentID)
		refinement := store.nodesOfType(node.TypeRefinement)[0]
		assert.Equal(t, proposal.ID, *refinement.ParentID)
		gate := store.nodesOfType(node.TypeCritique)[0]
		assert.Equal(t, refinement.ID, *gate.ParentID)
		assert.Equal(t, refinement.ID, *verdicts[0].ParentID)
	})

	t.Run("low score runs to iteration limit", func(t *testing.T) {
		store := newFakeStore()
		gw := scriptedCritic(30)
		root := store.mustNode(1, nil, node.TypeRoot, "Design X")

		eng := NewDxOEngine(testDeps(store, gw), DxOConfig{Roles: dxoRoles(), MaxIterations: 2})
		require.NoError(t, eng.Run(ctx, root, (&eventSink{}).emit))

		assert.Len(t, store.nodesOfType(node.TypeRefinement), 2)
		assert.Len(t, store.nodesOfType(node.TypeCritique), 2)

		verdicts := store.nodesOfType(node.TypeVerdict)
		require.Len(t, verdicts, 1)
		assert.Contains(t, verdicts[0].Content, "Review Limit Reached")
		assert.Contains(t, verdicts[0].Content, "Confidence: 30%")
		assert.Contains(t, verdicts[0].Content, "Iterations: 2 Loops")
	})

	t.Run("no critic uses synthetic progress and stops at limit", func(t *testing.T) {
		store := newFakeStore()
		gw := echoGateway(0)
		root := store.mustNode(1, nil, node.TypeRoot, "Design X")

		roles := []models.Role{
			{Name: "Lead Architect", Model: "m1"},
			{Name: "Domain Expert", Model: "m4"},
		}
		eng := NewDxOEngine(testDeps(store, gw), DxOConfig{Roles: roles, MaxIterations: 4})
		require.NoError(t, eng.Run(ctx, root, (&eventSink{}).emit))

		// Synthetic progress 50 + 15*i crosses 85 at iteration 3.
		assert.Len(t, store.nodesOfType(node.TypeRefinement), 3)
		verdicts := store.nodesOfType(node.TypeVerdict)
		require.Len(t, verdicts, 1)
		assert.Contains(t, verdicts[0].Content, "APPROVED")
		assert.Contains(t, verdicts[0].Content, "Confidence: 95%")
	})

	t.Run("no roles is an error", func(t *testing.T) {
		store := newFakeStore()
		root := store.mustNode(1, nil, node.TypeRoot, "Design X")

		eng := NewDxOEngine(testDeps(store, echoGateway(0)), DxOConfig{})
		err := eng.Run(ctx, root, (&eventSink{}).emit)
		require.ErrorIs(t, err, ErrNoRoles)
	})

	t.Run("expert labeled QA produces test_cases, others critique", func(t *testing.T) {
		store := newFakeStore()
		gw := scriptedCritic(90)
		root := store.mustNode(1, nil, node.TypeRoot, "Design X")

		roles := append(dxoRoles(), models.Role{Name: "Domain Expert", Model: "m4"})
		eng := NewDxOEngine(testDeps(store, gw), DxOConfig{Roles: roles, MaxIterations: 1})
		require.NoError(t, eng.Run(ctx, root, (&eventSink{}).emit))

		testCases := store.nodesOfType(node.TypeTestCases)
		require.Len(t, testCases, 1)
		require.NotNil(t, testCases[0].ModelName)
		assert.Equal(t, "m3", *testCases[0].ModelName)

		// One critique from the Domain Expert plus one from the gatekeeper.
		critiques := store.nodesOfType(node.TypeCritique)
		require.Len(t, critiques, 2)
	})

	t.Run("defaults max iterations when unset", func(t *testing.T) {
		eng := NewDxOEngine(testDeps(newFakeStore(), echoGateway(0)), DxOConfig{Roles: dxoRoles()})
		assert.Equal(t, DefaultMaxIterations, eng.cfg.MaxIterations)
	})
}
