package engine

import (
	"fmt"
	"strings"

	"github.com/deepcouncil/made/pkg/models"
)

func coordinatorPrompt(question string) string {
	return fmt.Sprintf(`You are the Coordinator of a research council.
The user has asked: %q

Create a detailed research plan to answer this question comprehensively.
Break it down into key areas of investigation.`, question)
}

func researcherPrompt(plan string) string {
	return fmt.Sprintf(`You are a Council Member researcher.
Here is the research plan:
%q

Please conduct your research and provide your findings and insights.`, plan)
}

func criticPrompt(researchBundle string) string {
	return fmt.Sprintf(`You are a Critic. Review the following research findings from other agents.
Identify gaps, conflicts, biases, or areas that need more depth.

%s`, researchBundle)
}

// researchBundle anonymizes research contents by positional index.
func researchBundle(contents []string) string {
	var b strings.Builder
	b.WriteString("Here are the findings from other researchers:\n\n")
	for i, content := range contents {
		fmt.Fprintf(&b, "--- Findings from Agent %d ---\n%s\n\n", i+1, content)
	}
	return b.String()
}

// synthesisContext bundles plan, research, and critique contents for the
// chairman, labeling contributors by pseudonym rather than model id.
func synthesisContext(plan string, research, critiques []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Original Plan:\n%s\n\n", plan)
	b.WriteString("Research Findings:\n")
	for i, content := range research {
		fmt.Fprintf(&b, "--- Agent %d ---\n%s\n\n", i+1, content)
	}
	b.WriteString("Critiques:\n")
	for i, content := range critiques {
		fmt.Fprintf(&b, "--- Critic %d ---\n%s\n\n", i+1, content)
	}
	return b.String()
}

const synthesisPrompt = `You are the Chairman. Synthesize the final answer based on the research and critiques provided.

Your goal is to provide a comprehensive, reasoned judgment.

IMPORTANT: When you use an idea from a specific Agent or Critic, please reference them in parentheses, e.g., "(Idea by Agent 1)".`

func ensembleResearchPrompt(question string) string {
	return fmt.Sprintf(`You are a Model in an ensemble.
The user has asked: %q

Please answer this question comprehensively from your perspective.`, question)
}

// ensembleSynthesisContext anonymizes ensemble responses by positional index.
func ensembleSynthesisContext(question string, research []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "User Question: %s\n\n", question)
	for i, content := range research {
		fmt.Fprintf(&b, "--- Response from Agent %d ---\n%s\n\n", i+1, content)
	}
	return b.String()
}

const ensembleSynthesisPrompt = `You are the Synthesizer. You have received responses from multiple AI agents (anonymized as Agent 1, Agent 2, etc.).

Your task:
1. Analyze the responses for consensus and conflict.
2. Synthesize a single, unified, high-quality response.
3. Avoid bias towards any specific style.
4. If you use a specific idea that was unique to one agent, credit them (e.g., "As suggested by Agent 3...").`

// superChatPrompt prefixes the prior turn's synthesis when continuing a
// conversation.
func superChatPrompt(priorSynthesis, prompt string) string {
	if priorSynthesis == "" {
		return prompt
	}
	return fmt.Sprintf("Context from previous turn:\n%s\n\nNew Request: %s", priorSynthesis, prompt)
}

func proposalPrompt(role models.Role, question string) string {
	return fmt.Sprintf(`You are the %s.
Instructions: %s

User Request: %q

Please provide a solid initial design/response. Focus on structure, patterns, and scalability.`, role.Name, role.Instructions, question)
}

func expertReviewPrompt(role models.Role, draft string) string {
	instructions := role.Instructions
	if instructions == "" {
		instructions = "Review the draft from your area of expertise. Identify flaws, risks, and gaps."
	}
	return fmt.Sprintf(`You are the %s.
Instructions: %s

Review the following draft:

%s

Provide your review.`, role.Name, instructions, draft)
}

func qaReviewPrompt(role models.Role, draft string) string {
	instructions := role.Instructions
	if instructions == "" {
		instructions = "Generate test cases that would prove the flaws exist."
	}
	return fmt.Sprintf(`You are the %s.
Instructions: %s

Draft:
%s

Generate test cases.`, role.Name, instructions, draft)
}

// refinementPrompt concatenates expert feedback, each section labeled by the
// reviewing role's name.
func refinementPrompt(role models.Role, iteration int, feedback []roleFeedback) string {
	var sections strings.Builder
	for _, f := range feedback {
		fmt.Fprintf(&sections, "Feedback from %s:\n%s\n\n", f.roleName, f.content)
	}
	return fmt.Sprintf(`You are the %s.

%s
Fix the issues identified. Provide a new version (Draft_v%d).`, role.Name, sections.String(), iteration+1)
}

func gatePrompt(role models.Role, draft string) string {
	instructions := role.Instructions
	if instructions == "" {
		instructions = "TEAR DOWN the proposal. Scan for risks, flaws, complexity."
	}
	return fmt.Sprintf(`You are the %s.
Instructions: %s

Review the following draft:

%s

Output a Critique Report.
IMPORTANT: You must include a "Confidence Score" (0-100) indicating your confidence in the design's safety and completeness.
Format your response as JSON or clearly structured text where "Score: X" can be parsed.`, role.Name, instructions, draft)
}

func verdictContent(score, iterations int) string {
	status := "Review Limit Reached"
	if score >= convergenceThreshold {
		status = "APPROVED"
	}
	return fmt.Sprintf(`Final Output
Status: %s (Confidence: %d%%)
Iterations: %d Loops

EXECUTIVE SUMMARY:
(See final draft)`, status, score, iterations)
}
