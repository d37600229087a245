package engine

import (
	"context"
	"fmt"

	"github.com/deepcouncil/made/ent"
	"github.com/deepcouncil/made/ent/node"
	"github.com/deepcouncil/made/pkg/gateway"
)

// DAGConfig configures the plan/research/critique/synthesis deliberation.
type DAGConfig struct {
	CouncilMembers []string
	ChairmanModel  string
}

// DAGEngine runs four serial phases: the chairman plans, the council
// researches the plan in parallel, the council critiques the anonymized
// findings in parallel, and the chairman synthesizes.
type DAGEngine struct {
	deps *Deps
	cfg  DAGConfig
}

func NewDAGEngine(deps *Deps, cfg DAGConfig) *DAGEngine {
	return &DAGEngine{deps: deps, cfg: cfg}
}

func (e *DAGEngine) Run(ctx context.Context, root *ent.Node, emit EmitFunc) error {
	d := e.deps

	rootAttachments, rootManifest, err := d.inherited(ctx, root)
	if err != nil {
		return err
	}

	// Coordinator phase.
	if d.stopped() {
		return errStopped
	}
	emit(Event{Type: EventStatus, Message: "Coordinator is creating a plan..."})

	planPrompt := coordinatorPrompt(root.Content)
	completion, warnings, err := d.singleCall(ctx, e.cfg.ChairmanModel, []gateway.Message{
		{Role: "user", Content: planPrompt},
	}, rootAttachments)
	if err != nil {
		return fmt.Errorf("coordinator failed: %w", err)
	}
	plan, err := d.createArtifact(ctx, emit, root.ConversationID, intPtr(root.ID),
		node.TypePlan, completion.Content, e.cfg.ChairmanModel, planPrompt,
		rootManifest, completion.Cost.ActualCost, warnings)
	if err != nil {
		return err
	}

	// Researchers and synthesis originate from the plan node.
	planAttachments, planManifest, err := d.inherited(ctx, plan)
	if err != nil {
		return err
	}

	// Research phase.
	if d.stopped() {
		return errStopped
	}
	emit(Event{Type: EventStatus, Message: "Council members are researching..."})

	research := researcherPrompt(plan.Content)
	calls := make([]fanOutCall, len(e.cfg.CouncilMembers))
	for i, model := range e.cfg.CouncilMembers {
		calls[i] = fanOutCall{model: model, prompt: research}
	}
	results := d.fanOut(ctx, calls, planAttachments)

	findings := make([]string, 0, len(results))
	for _, r := range results {
		content, cost := r.content, r.cost.ActualCost
		if r.err != nil {
			content, cost = errorContent(r.err), 0
		}
		if _, err := d.createArtifact(ctx, emit, root.ConversationID, intPtr(plan.ID),
			node.TypeResearch, content, r.model, research, planManifest, cost, r.warnings); err != nil {
			return err
		}
		findings = append(findings, content)
	}

	// Critique phase. Critiques parent to the plan, the common ancestor of
	// the research siblings.
	if d.stopped() {
		return errStopped
	}
	emit(Event{Type: EventStatus, Message: "Critics are reviewing findings..."})

	critique := criticPrompt(researchBundle(findings))
	for i, model := range e.cfg.CouncilMembers {
		calls[i] = fanOutCall{model: model, prompt: critique}
	}
	results = d.fanOut(ctx, calls, planAttachments)

	critiques := make([]string, 0, len(results))
	for _, r := range results {
		content, cost := r.content, r.cost.ActualCost
		if r.err != nil {
			content, cost = errorContent(r.err), 0
		}
		if _, err := d.createArtifact(ctx, emit, root.ConversationID, intPtr(plan.ID),
			node.TypeCritique, content, r.model, critique, planManifest, cost, r.warnings); err != nil {
			return err
		}
		critiques = append(critiques, content)
	}

	// Synthesis phase.
	if d.stopped() {
		return errStopped
	}
	emit(Event{Type: EventStatus, Message: "Chairman is synthesizing the final answer..."})

	contextMsg := synthesisContext(plan.Content, findings, critiques)
	completion, warnings, err = d.singleCall(ctx, e.cfg.ChairmanModel, []gateway.Message{
		{Role: "user", Content: contextMsg},
		{Role: "user", Content: synthesisPrompt},
	}, planAttachments)
	if err != nil {
		return fmt.Errorf("synthesis failed: %w", err)
	}

	_, err = d.createArtifact(ctx, emit, root.ConversationID, intPtr(plan.ID),
		node.TypeSynthesis, completion.Content, e.cfg.ChairmanModel,
		contextMsg+"\n\n"+synthesisPrompt, planManifest, completion.Cost.ActualCost, warnings)
	return err
}
