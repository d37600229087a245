package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/deepcouncil/made/ent"
	"github.com/deepcouncil/made/ent/attachment"
	"github.com/deepcouncil/made/ent/conversation"
	"github.com/deepcouncil/made/ent/node"
	"github.com/deepcouncil/made/pkg/gateway"
	"github.com/deepcouncil/made/pkg/models"
	"github.com/deepcouncil/made/pkg/services"
)

// fakeStore is an in-memory NodeStore + ConversationStore for engine tests.
type fakeStore struct {
	mu          sync.Mutex
	nextConv    int
	nextNode    int
	nextAttach  int
	convs       map[int]*ent.Conversation
	nodes       map[int]*ent.Node
	attachments map[int][]*ent.Attachment
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		convs:       make(map[int]*ent.Conversation),
		nodes:       make(map[int]*ent.Node),
		attachments: make(map[int][]*ent.Attachment),
	}
}

func (s *fakeStore) Create(_ context.Context, userID, prompt string, method conversation.Method) (*ent.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextConv++
	conv := &ent.Conversation{
		ID:        s.nextConv,
		UserID:    userID,
		Title:     prompt,
		Method:    method,
		CreatedAt: time.Now(),
	}
	s.convs[conv.ID] = conv
	return conv, nil
}

func (s *fakeStore) GetOwned(_ context.Context, userID string, id int) (*ent.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv, ok := s.convs[id]
	if !ok || conv.UserID != userID {
		return nil, services.ErrNotFound
	}
	return conv, nil
}

func (s *fakeStore) CreateNode(_ context.Context, req models.CreateNodeRequest) (*ent.Node, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if req.ParentID != nil {
		parent, ok := s.nodes[*req.ParentID]
		if !ok {
			return nil, services.ErrNotFound
		}
		if parent.ConversationID != req.ConversationID {
			return nil, services.NewValidationError("parent_id", "parent belongs to a different conversation")
		}
	}
	s.nextNode++
	n := &ent.Node{
		ID:             s.nextNode,
		ConversationID: req.ConversationID,
		ParentID:       req.ParentID,
		Type:           req.Type,
		Content:        req.Content,
		ActualCost:     req.ActualCost,
		Warnings:       req.Warnings,
		CreatedAt:      time.Now(),
	}
	if req.ModelName != "" {
		n.ModelName = &req.ModelName
	}
	if req.PromptSent != "" {
		n.PromptSent = &req.PromptSent
	}
	if req.AttachmentFilenames != "" {
		n.AttachmentFilenames = &req.AttachmentFilenames
	}
	s.nodes[n.ID] = n
	return n, nil
}

func (s *fakeStore) GetNode(_ context.Context, id int) (*ent.Node, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.nodes[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	return n, nil
}

func (s *fakeStore) AttachmentsOf(_ context.Context, nodeID int) ([]*ent.Attachment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attachments[nodeID], nil
}

func (s *fakeStore) Attach(_ context.Context, req models.AttachRequest) (*ent.Attachment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.nodes[req.NodeID]; !ok {
		return nil, services.ErrNotFound
	}
	s.nextAttach++
	a := &ent.Attachment{
		ID:       s.nextAttach,
		NodeID:   req.NodeID,
		Filename: req.Filename,
		FileType: attachment.FileType(req.FileType),
		MimeType: req.MimeType,
		FileSize: int64(len(req.FileData)),
		FileData: req.FileData,
	}
	s.attachments[req.NodeID] = append(s.attachments[req.NodeID], a)
	return a, nil
}

func (s *fakeStore) SetAttachmentFilenames(_ context.Context, nodeID int, manifest string) (*ent.Node, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.nodes[nodeID]
	if !ok {
		return nil, services.ErrNotFound
	}
	n.AttachmentFilenames = &manifest
	return n, nil
}

func (s *fakeStore) LastSynthesis(_ context.Context, conversationID int) (*ent.Node, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var last *ent.Node
	for _, n := range s.nodes {
		if n.ConversationID != conversationID || n.Type != node.TypeSynthesis {
			continue
		}
		if last == nil || n.ID > last.ID {
			last = n
		}
	}
	if last == nil {
		return nil, services.ErrNotFound
	}
	return last, nil
}

// mustNode seeds a node directly, bypassing validation.
func (s *fakeStore) mustNode(conversationID int, parentID *int, typ node.Type, content string) *ent.Node {
	n, err := s.CreateNode(context.Background(), models.CreateNodeRequest{
		ConversationID: conversationID,
		ParentID:       parentID,
		Type:           typ,
		Content:        content,
	})
	if err != nil {
		panic(err)
	}
	return n
}

// nodesOfType returns all stored nodes of one type, in id order.
func (s *fakeStore) nodesOfType(typ node.Type) []*ent.Node {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*ent.Node
	for id := 1; id <= s.nextNode; id++ {
		if n, ok := s.nodes[id]; ok && n.Type == typ {
			out = append(out, n)
		}
	}
	return out
}

// fakeGateway scripts completion responses per model and records every call.
type fakeGateway struct {
	mu       sync.Mutex
	calls    []gateway.CompletionRequest
	reply    func(req gateway.CompletionRequest) (*gateway.Completion, error)
	warnings map[string][]string
}

func newFakeGateway(reply func(req gateway.CompletionRequest) (*gateway.Completion, error)) *fakeGateway {
	return &fakeGateway{reply: reply, warnings: make(map[string][]string)}
}

// echoGateway answers every call with a canned per-model content and cost.
func echoGateway(cost float64) *fakeGateway {
	return newFakeGateway(func(req gateway.CompletionRequest) (*gateway.Completion, error) {
		return &gateway.Completion{
			Content: fmt.Sprintf("answer from %s", req.Model),
			Cost:    gateway.CostInfo{ActualCost: cost},
		}, nil
	})
}

func (g *fakeGateway) Complete(_ context.Context, req gateway.CompletionRequest) (*gateway.Completion, error) {
	g.mu.Lock()
	g.calls = append(g.calls, req)
	g.mu.Unlock()
	return g.reply(req)
}

func (g *fakeGateway) UnsupportedAttachments(_, modelID string, attachments []gateway.Attachment) []string {
	if len(attachments) == 0 {
		return nil
	}
	return g.warnings[modelID]
}

func (g *fakeGateway) RefreshCatalog(context.Context, string, string) error { return nil }

func (g *fakeGateway) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.calls)
}

func (g *fakeGateway) callsFor(model string) []gateway.CompletionRequest {
	g.mu.Lock()
	defer g.mu.Unlock()
	var out []gateway.CompletionRequest
	for _, c := range g.calls {
		if c.Model == model {
			out = append(out, c)
		}
	}
	return out
}

// collect drains an emit callback into a slice; engines emit synchronously so
// no locking is needed beyond the fan-out barrier inside createArtifact.
type eventSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *eventSink) emit(e Event) {
	s.mu.Lock()
	s.events = append(s.events, e)
	s.mu.Unlock()
}

func (s *eventSink) types() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.events))
	for i, e := range s.events {
		out[i] = e.Type
	}
	return out
}

func (s *eventSink) nodeTypes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for _, e := range s.events {
		if e.Type == EventNode {
			out = append(out, e.Node.Type)
		}
	}
	return out
}

func testDeps(store *fakeStore, gw *fakeGateway) *Deps {
	return &Deps{Store: store, Gateway: gw, UserID: "alice", APIKey: "sk-test"}
}
