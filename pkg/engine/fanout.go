package engine

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/deepcouncil/made/pkg/gateway"
)

// errStopped signals that the client went away between phases. The
// coordinator logs it instead of emitting an error event.
var errStopped = errors.New("deliberation stopped: client disconnected")

// fanOutCall is one unit of a parallel phase.
type fanOutCall struct {
	model  string
	prompt string
}

// fanOut runs all calls concurrently and returns results in call order.
// Individual failures are captured in the result so siblings proceed; the
// phase barrier is the errgroup wait.
func (d *Deps) fanOut(ctx context.Context, calls []fanOutCall, attachments []gateway.Attachment) []callResult {
	results := make([]callResult, len(calls))

	var g errgroup.Group
	for i, call := range calls {
		g.Go(func() error {
			warnings := d.Gateway.UnsupportedAttachments(d.UserID, call.model, attachments)
			completion, err := d.complete(ctx, call.model, []gateway.Message{
				{Role: "user", Content: call.prompt},
			}, attachments)
			if err != nil {
				results[i] = callResult{model: call.model, warnings: warnings, err: err}
				return nil
			}
			results[i] = callResult{
				model:    call.model,
				content:  completion.Content,
				cost:     completion.Cost,
				warnings: warnings,
			}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// singleCall performs one critical-path LLM call. A failure here is terminal
// for the deliberation, so the error propagates instead of being reified.
func (d *Deps) singleCall(ctx context.Context, model string, messages []gateway.Message, attachments []gateway.Attachment) (*gateway.Completion, []string, error) {
	warnings := d.Gateway.UnsupportedAttachments(d.UserID, model, attachments)
	completion, err := d.complete(ctx, model, messages, attachments)
	if err != nil {
		return nil, warnings, err
	}
	return completion, warnings, nil
}
