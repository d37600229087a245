package engine

import (
	"context"
	"fmt"

	"github.com/deepcouncil/made/ent"
	"github.com/deepcouncil/made/ent/node"
	"github.com/deepcouncil/made/pkg/gateway"
)

// EnsembleConfig configures a single-round parallel fan-out deliberation.
type EnsembleConfig struct {
	CouncilMembers []string
	ChairmanModel  string

	// PromptOverride replaces the root content as the deliberation question.
	// SuperChat uses it to prepend the prior turn's synthesis.
	PromptOverride string
}

// EnsembleEngine asks every council member the question directly, then has
// the chairman synthesize the anonymized responses.
type EnsembleEngine struct {
	deps *Deps
	cfg  EnsembleConfig
}

func NewEnsembleEngine(deps *Deps, cfg EnsembleConfig) *EnsembleEngine {
	return &EnsembleEngine{deps: deps, cfg: cfg}
}

func (e *EnsembleEngine) Run(ctx context.Context, root *ent.Node, emit EmitFunc) error {
	d := e.deps

	attachments, manifest, err := d.inherited(ctx, root)
	if err != nil {
		return err
	}

	question := root.Content
	if e.cfg.PromptOverride != "" {
		question = e.cfg.PromptOverride
	}

	// Research phase.
	if d.stopped() {
		return errStopped
	}
	emit(Event{Type: EventStatus, Message: "All models are researching in parallel..."})

	prompt := ensembleResearchPrompt(question)
	calls := make([]fanOutCall, len(e.cfg.CouncilMembers))
	for i, model := range e.cfg.CouncilMembers {
		calls[i] = fanOutCall{model: model, prompt: prompt}
	}
	results := d.fanOut(ctx, calls, attachments)

	contents := make([]string, 0, len(results))
	for _, r := range results {
		content, cost := r.content, r.cost.ActualCost
		if r.err != nil {
			content, cost = errorContent(r.err), 0
		}
		if _, err := d.createArtifact(ctx, emit, root.ConversationID, intPtr(root.ID),
			node.TypeResearch, content, r.model, prompt, manifest, cost, r.warnings); err != nil {
			return err
		}
		contents = append(contents, content)
	}

	// Synthesis phase.
	if d.stopped() {
		return errStopped
	}
	emit(Event{Type: EventStatus, Message: "Synthesizing anonymized responses..."})

	contextMsg := ensembleSynthesisContext(question, contents)
	completion, warnings, err := d.singleCall(ctx, e.cfg.ChairmanModel, []gateway.Message{
		{Role: "user", Content: contextMsg},
		{Role: "user", Content: ensembleSynthesisPrompt},
	}, attachments)
	if err != nil {
		return fmt.Errorf("synthesis failed: %w", err)
	}

	_, err = d.createArtifact(ctx, emit, root.ConversationID, intPtr(root.ID),
		node.TypeSynthesis, completion.Content, e.cfg.ChairmanModel,
		contextMsg+"\n\n"+ensembleSynthesisPrompt, manifest, completion.Cost.ActualCost, warnings)
	return err
}
