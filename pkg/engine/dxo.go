package engine

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/deepcouncil/made/ent"
	"github.com/deepcouncil/made/ent/node"
	"github.com/deepcouncil/made/pkg/gateway"
	"github.com/deepcouncil/made/pkg/models"
)

// DefaultMaxIterations bounds the refinement loop when the caller does not
// set one.
const DefaultMaxIterations = 5

// convergenceThreshold is the gatekeeper confidence at which the loop exits.
const convergenceThreshold = 85

// ErrNoRoles is returned when a dxo deliberation is requested without roles.
var ErrNoRoles = errors.New("no roles configured for dxo deliberation")

// scorePattern extracts the gatekeeper confidence score. This regex is the
// legacy fallback contract; absent a match the score defaults to 0.
var scorePattern = regexp.MustCompile(`(?i)(?:Confidence )?Score:\s*(\d+)`)

// DxOConfig configures the debate-refine-gate deliberation.
type DxOConfig struct {
	Roles         []models.Role
	MaxIterations int
}

// DxOEngine runs an iterative adversarial loop: a proposer drafts, an expert
// panel reviews in parallel, the proposer refines, and an optional critic
// gates convergence by scoring the refined draft.
type DxOEngine struct {
	deps *Deps
	cfg  DxOConfig
}

func NewDxOEngine(deps *Deps, cfg DxOConfig) *DxOEngine {
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = DefaultMaxIterations
	}
	return &DxOEngine{deps: deps, cfg: cfg}
}

// roleFeedback is one labeled section of the refinement prompt.
type roleFeedback struct {
	roleName string
	content  string
}

// panel is the cast selected from the configured roles by name substring.
// This loose matching is a documented API contract at the boundary.
type panel struct {
	proposer models.Role
	critic   *models.Role
	experts  []models.Role
}

func castPanel(roles []models.Role) panel {
	p := panel{proposer: roles[0]}
	for _, r := range roles {
		if strings.Contains(r.Name, "Lead") || strings.Contains(r.Name, "Architect") || strings.Contains(r.Name, "Researcher") {
			p.proposer = r
			break
		}
	}
	for _, r := range roles {
		if strings.Contains(r.Name, "Critical Reviewer") {
			critic := r
			p.critic = &critic
			break
		}
	}
	for _, r := range roles {
		if r.Name == p.proposer.Name || (p.critic != nil && r.Name == p.critic.Name) {
			continue
		}
		p.experts = append(p.experts, r)
	}
	return p
}

// isQA reports whether a role's review artifact is test_cases rather than
// critique.
func isQA(r models.Role) bool {
	return strings.Contains(r.Name, "QA") || strings.Contains(r.Name, "Quality")
}

func parseScore(content string) int {
	m := scorePattern.FindStringSubmatch(content)
	if m == nil {
		return 0
	}
	score, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return score
}

func (e *DxOEngine) Run(ctx context.Context, root *ent.Node, emit EmitFunc) error {
	if len(e.cfg.Roles) == 0 {
		return ErrNoRoles
	}
	d := e.deps
	cast := castPanel(e.cfg.Roles)

	rootAttachments, rootManifest, err := d.inherited(ctx, root)
	if err != nil {
		return err
	}

	// Phase A: proposal.
	if d.stopped() {
		return errStopped
	}
	emit(Event{Type: EventStatus, Message: fmt.Sprintf("Phase A: %s is drafting the proposal...", cast.proposer.Name)})

	prompt := proposalPrompt(cast.proposer, root.Content)
	completion, warnings, err := d.singleCall(ctx, cast.proposer.Model, []gateway.Message{
		{Role: "user", Content: prompt},
	}, rootAttachments)
	if err != nil {
		return fmt.Errorf("proposal failed: %w", err)
	}
	draft, err := d.createArtifact(ctx, emit, root.ConversationID, intPtr(root.ID),
		node.TypeProposal, completion.Content, cast.proposer.Model, prompt,
		rootManifest, completion.Cost.ActualCost, warnings)
	if err != nil {
		return err
	}

	score := 0
	iteration := 0
	var prevGate roleFeedback

	for iteration < e.cfg.MaxIterations {
		iteration++

		draftAttachments, draftManifest, err := d.inherited(ctx, draft)
		if err != nil {
			return err
		}

		// Phase B: expert panel reviews the current draft in parallel.
		feedback := make([]roleFeedback, 0, len(cast.experts)+1)
		if len(cast.experts) > 0 {
			if d.stopped() {
				return errStopped
			}
			emit(Event{Type: EventStatus, Message: fmt.Sprintf("Phase B: Expert panel is reviewing (Loop %d)...", iteration)})

			calls := make([]fanOutCall, len(cast.experts))
			for i, expert := range cast.experts {
				p := expertReviewPrompt(expert, draft.Content)
				if isQA(expert) {
					p = qaReviewPrompt(expert, draft.Content)
				}
				calls[i] = fanOutCall{model: expert.Model, prompt: p}
			}
			results := d.fanOut(ctx, calls, draftAttachments)

			for i, r := range results {
				expert := cast.experts[i]
				nodeType := node.TypeCritique
				if isQA(expert) {
					nodeType = node.TypeTestCases
				}
				content, cost := r.content, r.cost.ActualCost
				if r.err != nil {
					content, cost = errorContent(r.err), 0
				}
				if _, err := d.createArtifact(ctx, emit, root.ConversationID, intPtr(draft.ID),
					nodeType, content, expert.Model, calls[i].prompt, draftManifest, cost, r.warnings); err != nil {
					return err
				}
				feedback = append(feedback, roleFeedback{roleName: expert.Name, content: content})
			}
		}
		if prevGate.content != "" {
			feedback = append(feedback, prevGate)
		}

		// Phase C: the proposer refines; the refinement becomes the new draft.
		if d.stopped() {
			return errStopped
		}
		emit(Event{Type: EventStatus, Message: fmt.Sprintf("Phase C: %s is refining the design...", cast.proposer.Name)})

		refine := refinementPrompt(cast.proposer, iteration, feedback)
		completion, warnings, err = d.singleCall(ctx, cast.proposer.Model, []gateway.Message{
			{Role: "user", Content: refine},
		}, draftAttachments)
		if err != nil {
			return fmt.Errorf("refinement failed: %w", err)
		}
		refined, err := d.createArtifact(ctx, emit, root.ConversationID, intPtr(draft.ID),
			node.TypeRefinement, completion.Content, cast.proposer.Model, refine,
			draftManifest, completion.Cost.ActualCost, warnings)
		if err != nil {
			return err
		}
		draft = refined

		// Phase D: the gatekeeper scores the refined draft.
		if cast.critic != nil {
			if d.stopped() {
				return errStopped
			}
			emit(Event{Type: EventStatus, Message: fmt.Sprintf("Phase D: %s is reviewing the refined draft (Loop %d)...", cast.critic.Name, iteration)})

			gateAttachments, gateManifest, err := d.inherited(ctx, draft)
			if err != nil {
				return err
			}
			gate := gatePrompt(*cast.critic, draft.Content)
			completion, warnings, err = d.singleCall(ctx, cast.critic.Model, []gateway.Message{
				{Role: "user", Content: gate},
			}, gateAttachments)
			if err != nil {
				return fmt.Errorf("critical review failed: %w", err)
			}
			score = parseScore(completion.Content)
			if _, err := d.createArtifact(ctx, emit, root.ConversationID, intPtr(draft.ID),
				node.TypeCritique, completion.Content, cast.critic.Model, gate,
				gateManifest, completion.Cost.ActualCost, warnings); err != nil {
				return err
			}
			prevGate = roleFeedback{roleName: cast.critic.Name, content: completion.Content}
		} else {
			// No gatekeeper: synthetic progress drives termination.
			score = 50 + 15*iteration
		}

		if score >= convergenceThreshold {
			break
		}
	}

	// Step E: verdict.
	if d.stopped() {
		return errStopped
	}
	emit(Event{Type: EventStatus, Message: "Finalizing result..."})

	_, err = d.createArtifact(ctx, emit, root.ConversationID, intPtr(draft.ID),
		node.TypeVerdict, verdictContent(score, iteration), "System", "", "", 0, nil)
	return err
}
