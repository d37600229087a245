// Package engine implements the deliberation engines (ensemble, dag, dxo),
// the ancestor-chain context assembler, and the coordinator that drives a
// deliberation end to end while streaming events.
package engine

import (
	"context"
	"strings"

	"github.com/deepcouncil/made/ent"
	"github.com/deepcouncil/made/ent/node"
	"github.com/deepcouncil/made/pkg/gateway"
	"github.com/deepcouncil/made/pkg/models"
)

// Event types emitted on a deliberation stream, in wire order: start is
// always first, done or error is always last.
const (
	EventStart  = "start"
	EventStatus = "status"
	EventNode   = "node"
	EventError  = "error"
	EventDone   = "done"
)

// Event is one record of a deliberation stream.
type Event struct {
	Type           string           `json:"type"`
	ConversationID int              `json:"conversation_id,omitempty"`
	Message        string           `json:"message,omitempty"`
	Node           *models.NodeView `json:"node,omitempty"`
}

// EmitFunc delivers one event to the stream. Implementations must not block
// indefinitely; the coordinator backs it with a buffered channel.
type EmitFunc func(Event)

// Engine is the common shape of the three deliberation strategies: consume a
// root node, create artifacts in the store, and emit status/node events.
// A non-nil error means a critical-path step failed; the coordinator turns
// it into a terminal error event. Failures inside parallel phases are
// reified as error artifacts instead.
type Engine interface {
	Run(ctx context.Context, root *ent.Node, emit EmitFunc) error
}

// ArtifactStore is the engine-facing slice of the artifact store.
type ArtifactStore interface {
	CreateNode(ctx context.Context, req models.CreateNodeRequest) (*ent.Node, error)
	GetNode(ctx context.Context, id int) (*ent.Node, error)
	AttachmentsOf(ctx context.Context, nodeID int) ([]*ent.Attachment, error)
}

// Gateway is the engine-facing slice of the LLM gateway adapter.
type Gateway interface {
	Complete(ctx context.Context, req gateway.CompletionRequest) (*gateway.Completion, error)
	UnsupportedAttachments(userID, modelID string, attachments []gateway.Attachment) []string
}

// Deps bundles what every engine needs.
type Deps struct {
	Store   ArtifactStore
	Gateway Gateway
	UserID  string
	APIKey  string

	// stop is closed when the client went away: no further phases begin,
	// but in-flight calls settle and their artifacts persist.
	stop <-chan struct{}
}

// stopped reports whether the deliberation should not start further phases.
func (d *Deps) stopped() bool {
	if d.stop == nil {
		return false
	}
	select {
	case <-d.stop:
		return true
	default:
		return false
	}
}

// callResult is the in-band outcome of one fan-out LLM call: either content
// plus cost, or an error to be reified as an error artifact.
type callResult struct {
	model    string
	content  string
	cost     gateway.CostInfo
	warnings []string
	err      error
}

// complete performs one LLM call carrying the given inherited attachments.
func (d *Deps) complete(ctx context.Context, model string, messages []gateway.Message, attachments []gateway.Attachment) (*gateway.Completion, error) {
	return d.Gateway.Complete(ctx, gateway.CompletionRequest{
		APIKey:      d.APIKey,
		Model:       model,
		Messages:    messages,
		Attachments: attachments,
	})
}

// inherited resolves the ancestor-chain attachments of the originating node
// and their comma-joined filename manifest.
func (d *Deps) inherited(ctx context.Context, origin *ent.Node) ([]gateway.Attachment, string, error) {
	stored, err := AncestorAttachments(ctx, d.Store, origin, DefaultMaxDepth)
	if err != nil {
		return nil, "", err
	}
	payloads := make([]gateway.Attachment, 0, len(stored))
	names := make([]string, 0, len(stored))
	for _, a := range stored {
		payloads = append(payloads, gateway.Attachment{
			Filename: a.Filename,
			FileType: string(a.FileType),
			MimeType: a.MimeType,
			Data:     a.FileData,
		})
		names = append(names, a.Filename)
	}
	return payloads, strings.Join(names, ","), nil
}

// createArtifact persists one engine-produced node and emits its node event.
func (d *Deps) createArtifact(
	ctx context.Context,
	emit EmitFunc,
	conversationID int,
	parentID *int,
	typ node.Type,
	content, modelName, promptSent, manifest string,
	cost float64,
	warnings []string,
) (*ent.Node, error) {
	n, err := d.Store.CreateNode(ctx, models.CreateNodeRequest{
		ConversationID:      conversationID,
		ParentID:            parentID,
		Type:                typ,
		Content:             content,
		ModelName:           modelName,
		PromptSent:          strings.TrimSpace(promptSent),
		AttachmentFilenames: manifest,
		ActualCost:          cost,
		Warnings:            warnings,
	})
	if err != nil {
		return nil, err
	}
	view := models.NewNodeView(n, nil)
	emit(Event{Type: EventNode, Node: &view})
	return n, nil
}

// errorContent reifies a fan-out call failure as artifact content.
func errorContent(err error) string {
	return "Error conducting research: " + err.Error()
}

func intPtr(v int) *int { return &v }
