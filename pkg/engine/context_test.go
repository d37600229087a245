package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepcouncil/made/ent/node"
	"github.com/deepcouncil/made/pkg/models"
)

func TestAncestorAttachments(t *testing.T) {
	ctx := context.Background()

	attach := func(t *testing.T, store *fakeStore, nodeID int, filename string) {
		t.Helper()
		_, err := store.Attach(ctx, models.AttachRequest{
			NodeID:   nodeID,
			Filename: filename,
			FileType: "text",
			MimeType: "text/plain",
			FileData: []byte("x"),
		})
		require.NoError(t, err)
	}

	t.Run("collects own and ancestor attachments nearest first", func(t *testing.T) {
		store := newFakeStore()
		root := store.mustNode(1, nil, node.TypeRoot, "q")
		plan := store.mustNode(1, intPtr(root.ID), node.TypePlan, "p")
		attach(t, store, root.ID, "root.txt")
		attach(t, store, plan.ID, "plan.txt")

		got, err := AncestorAttachments(ctx, store, plan, DefaultMaxDepth)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "plan.txt", got[0].Filename)
		assert.Equal(t, "root.txt", got[1].Filename)
	})

	t.Run("walk stops at depth bound", func(t *testing.T) {
		store := newFakeStore()
		root := store.mustNode(1, nil, node.TypeRoot, "q")
		a := store.mustNode(1, intPtr(root.ID), node.TypeProposal, "a")
		b := store.mustNode(1, intPtr(a.ID), node.TypeCritique, "b")
		c := store.mustNode(1, intPtr(b.ID), node.TypeRefinement, "c")
		attach(t, store, root.ID, "root.txt")

		// root is 4 levels up from c; the depth-3 walk must not reach it.
		got, err := AncestorAttachments(ctx, store, c, DefaultMaxDepth)
		require.NoError(t, err)
		assert.Empty(t, got)

		// From b, root is exactly at the depth bound.
		got, err = AncestorAttachments(ctx, store, b, DefaultMaxDepth)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "root.txt", got[0].Filename)
	})

	t.Run("root only walk", func(t *testing.T) {
		store := newFakeStore()
		root := store.mustNode(1, nil, node.TypeRoot, "q")
		attach(t, store, root.ID, "a.png")
		attach(t, store, root.ID, "b.png")

		got, err := AncestorAttachments(ctx, store, root, DefaultMaxDepth)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "a.png", got[0].Filename)
		assert.Equal(t, "b.png", got[1].Filename)
	})
}

func TestDepsInheritedManifest(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	root := store.mustNode(1, nil, node.TypeRoot, "q")
	for _, name := range []string{"one.txt", "two.txt"} {
		_, err := store.Attach(ctx, models.AttachRequest{
			NodeID: root.ID, Filename: name, FileType: "text",
			MimeType: "text/plain", FileData: []byte("x"),
		})
		require.NoError(t, err)
	}

	deps := testDeps(store, echoGateway(0))
	payloads, manifest, err := deps.inherited(ctx, root)
	require.NoError(t, err)
	assert.Len(t, payloads, 2)
	assert.Equal(t, "one.txt,two.txt", manifest)
}
