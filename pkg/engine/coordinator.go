package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"strings"

	"github.com/deepcouncil/made/ent"
	"github.com/deepcouncil/made/ent/conversation"
	"github.com/deepcouncil/made/ent/node"
	"github.com/deepcouncil/made/pkg/models"
	"github.com/deepcouncil/made/pkg/services"
	"github.com/deepcouncil/made/pkg/upload"
)

// ErrNoAPIKey is returned before streaming begins when the caller supplied
// no gateway API key.
var ErrNoAPIKey = errors.New("no gateway API key configured")

// eventBuffer sizes the stream channel; emits never block the engine as long
// as the consumer keeps draining.
const eventBuffer = 64

// ConversationStore is the coordinator-facing slice of the conversation
// service.
type ConversationStore interface {
	Create(ctx context.Context, userID, prompt string, method conversation.Method) (*ent.Conversation, error)
	GetOwned(ctx context.Context, userID string, id int) (*ent.Conversation, error)
}

// NodeStore extends the engine-facing store with the operations only the
// coordinator needs: attachment promotion and turn anchoring.
type NodeStore interface {
	ArtifactStore
	Attach(ctx context.Context, req models.AttachRequest) (*ent.Attachment, error)
	SetAttachmentFilenames(ctx context.Context, nodeID int, manifest string) (*ent.Node, error)
	LastSynthesis(ctx context.Context, conversationID int) (*ent.Node, error)
}

// GatewayClient extends the engine-facing gateway with catalog refresh.
type GatewayClient interface {
	Gateway
	RefreshCatalog(ctx context.Context, apiKey, userID string) error
}

// Coordinator validates a deliberation request, creates the conversation and
// root node, promotes staged uploads, and drives the selected engine while
// forwarding its events.
type Coordinator struct {
	conversations ConversationStore
	nodes         NodeStore
	gateway       GatewayClient
	staging       *upload.Staging
}

func NewCoordinator(conversations ConversationStore, nodes NodeStore, gateway GatewayClient, staging *upload.Staging) *Coordinator {
	return &Coordinator{
		conversations: conversations,
		nodes:         nodes,
		gateway:       gateway,
		staging:       staging,
	}
}

// RunCouncil starts a council deliberation. Validation and root-node setup
// happen before the stream opens, so their failures map to HTTP statuses;
// everything after is delivered in-band. The returned channel is closed when
// the deliberation ends.
func (c *Coordinator) RunCouncil(ctx context.Context, userID, apiKey string, req models.CouncilRunRequest) (<-chan Event, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}

	var method conversation.Method
	switch req.Method {
	case "dag", "":
		method = conversation.MethodDag
	case "ensemble":
		method = conversation.MethodEnsemble
	case "dxo":
		method = conversation.MethodDxo
	default:
		return nil, services.NewValidationError("method", fmt.Sprintf("unknown method %q", req.Method))
	}

	conv, err := c.conversations.Create(ctx, userID, req.Prompt, method)
	if err != nil {
		return nil, err
	}

	root, err := c.createUserNode(ctx, userID, conv.ID, nil, req.Prompt, req.AttachmentIDs)
	if err != nil {
		return nil, err
	}

	deps := &Deps{Store: c.nodes, Gateway: c.gateway, UserID: userID, APIKey: apiKey, stop: ctx.Done()}

	var eng Engine
	switch method {
	case conversation.MethodEnsemble:
		eng = NewEnsembleEngine(deps, EnsembleConfig{
			CouncilMembers: req.CouncilMembers,
			ChairmanModel:  req.ChairmanModel,
		})
	case conversation.MethodDxo:
		eng = NewDxOEngine(deps, DxOConfig{
			Roles:         req.Roles,
			MaxIterations: req.MaxIterations,
		})
	default:
		eng = NewDAGEngine(deps, DAGConfig{
			CouncilMembers: req.CouncilMembers,
			ChairmanModel:  req.ChairmanModel,
		})
	}

	return c.stream(ctx, userID, apiKey, conv.ID, root, eng), nil
}

// RunSuperChat starts (or continues) a chat-style ensemble deliberation.
// Continuations anchor the new turn's user node to the conversation's last
// synthesis and prepend its content to the question.
func (c *Coordinator) RunSuperChat(ctx context.Context, userID, apiKey string, req models.SuperChatRequest) (<-chan Event, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}

	var (
		conversationID int
		parentID       *int
		priorSynthesis string
	)
	if req.ConversationID != nil {
		conv, err := c.conversations.GetOwned(ctx, userID, *req.ConversationID)
		if err != nil {
			return nil, err
		}
		conversationID = conv.ID

		last, err := c.nodes.LastSynthesis(ctx, conv.ID)
		switch {
		case err == nil:
			parentID = intPtr(last.ID)
			priorSynthesis = last.Content
		case errors.Is(err, services.ErrNotFound):
			// First turn never completed; start fresh within the conversation.
		default:
			return nil, err
		}
	} else {
		conv, err := c.conversations.Create(ctx, userID, req.Prompt, conversation.MethodSuperchat)
		if err != nil {
			return nil, err
		}
		conversationID = conv.ID
	}

	root, err := c.createUserNode(ctx, userID, conversationID, parentID, req.Prompt, req.AttachmentIDs)
	if err != nil {
		return nil, err
	}

	deps := &Deps{Store: c.nodes, Gateway: c.gateway, UserID: userID, APIKey: apiKey, stop: ctx.Done()}
	eng := NewEnsembleEngine(deps, EnsembleConfig{
		CouncilMembers: req.CouncilMembers,
		ChairmanModel:  req.ChairmanModel,
		PromptOverride: superChatPrompt(priorSynthesis, req.Prompt),
	})

	return c.stream(ctx, userID, apiKey, conversationID, root, eng), nil
}

// createUserNode persists the turn's user-authored node and promotes staged
// uploads onto it. Staging entries owned by a different user, already
// consumed, or expired are skipped.
func (c *Coordinator) createUserNode(ctx context.Context, userID string, conversationID int, parentID *int, prompt string, attachmentIDs []string) (*ent.Node, error) {
	n, err := c.nodes.CreateNode(ctx, models.CreateNodeRequest{
		ConversationID: conversationID,
		ParentID:       parentID,
		Type:           node.TypeRoot,
		Content:        prompt,
		ModelName:      "user",
	})
	if err != nil {
		return nil, err
	}

	var filenames []string
	for _, token := range attachmentIDs {
		entry, err := c.staging.Take(token)
		if err != nil {
			slog.Warn("Skipping staged attachment", "token", token, "error", err)
			continue
		}
		if entry.UserID != userID {
			slog.Warn("Skipping staged attachment owned by another user", "token", token)
			continue
		}
		if _, err := c.nodes.Attach(ctx, models.AttachRequest{
			NodeID:   n.ID,
			Filename: entry.Filename,
			FileType: entry.FileType,
			MimeType: entry.MimeType,
			FileData: entry.FileData,
		}); err != nil {
			return nil, err
		}
		filenames = append(filenames, entry.Filename)
	}

	if len(filenames) > 0 {
		n, err = c.nodes.SetAttachmentFilenames(ctx, n.ID, strings.Join(filenames, ","))
		if err != nil {
			return nil, err
		}
	}
	return n, nil
}

// stream runs the engine in its own goroutine and serializes its events onto
// the returned channel: start, the root node, the engine's events, then a
// terminal done or error.
func (c *Coordinator) stream(ctx context.Context, userID, apiKey string, conversationID int, root *ent.Node, eng Engine) <-chan Event {
	events := make(chan Event, eventBuffer)
	emit := func(e Event) { events <- e }

	// LLM and store calls survive client disconnects so partial work stays
	// recoverable; engines observe the request context between phases.
	runCtx := context.WithoutCancel(ctx)

	go func() {
		defer close(events)
		defer func() {
			if r := recover(); r != nil {
				slog.Error("Deliberation panicked",
					"conversation_id", conversationID,
					"panic", r,
					"stack", string(debug.Stack()))
				emit(Event{Type: EventError, Message: fmt.Sprintf("internal error: %v", r)})
			}
		}()

		emit(Event{Type: EventStart, ConversationID: conversationID})

		attachments, err := c.nodes.AttachmentsOf(runCtx, root.ID)
		if err != nil {
			slog.Error("Failed to load root attachments", "conversation_id", conversationID, "error", err)
			emit(Event{Type: EventError, Message: err.Error()})
			return
		}
		rootView := models.NewNodeView(root, attachments)
		emit(Event{Type: EventNode, Node: &rootView})

		// Capability warnings need a fresh catalog; a refresh failure only
		// disables warnings.
		if err := c.gateway.RefreshCatalog(runCtx, apiKey, userID); err != nil {
			slog.Warn("Failed to refresh model catalog", "user_id", userID, "error", err)
		}

		if err := eng.Run(runCtx, root, emit); err != nil {
			if errors.Is(err, errStopped) {
				slog.Info("Deliberation stopped by client disconnect", "conversation_id", conversationID)
				return
			}
			slog.Error("Deliberation failed", "conversation_id", conversationID, "error", err)
			emit(Event{Type: EventError, Message: err.Error()})
			return
		}
		emit(Event{Type: EventDone})
	}()

	return events
}
