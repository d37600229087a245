package engine

import (
	"context"
	"fmt"

	"github.com/deepcouncil/made/ent"
)

// DefaultMaxDepth bounds the ancestor walk when assembling inherited
// attachments: the originating node, its parent, and its grandparent.
const DefaultMaxDepth = 3

// AncestorAttachments collects the attachments visible to a call originating
// at origin: the node's own attachments plus those of up to maxDepth-1
// ancestors, nearest first. The walk stops at the root, at the depth bound,
// or on a repeated node id.
func AncestorAttachments(ctx context.Context, store ArtifactStore, origin *ent.Node, maxDepth int) ([]*ent.Attachment, error) {
	var out []*ent.Attachment
	visited := make(map[int]bool, maxDepth)

	current := origin
	for depth := 0; current != nil && depth < maxDepth; depth++ {
		if visited[current.ID] {
			break
		}
		visited[current.ID] = true

		attachments, err := store.AttachmentsOf(ctx, current.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load attachments of node %d: %w", current.ID, err)
		}
		out = append(out, attachments...)

		if current.ParentID == nil {
			break
		}
		parent, err := store.GetNode(ctx, *current.ParentID)
		if err != nil {
			return nil, fmt.Errorf("failed to load parent of node %d: %w", current.ID, err)
		}
		current = parent
	}
	return out, nil
}
