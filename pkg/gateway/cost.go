package gateway

// extractCost reads per-call cost accounting from a chat response.
//
// Cost precedence (canonical — do not extend without versioning):
//  1. usage.cost
//  2. usage.total_cost
//  3. usage.cost_details.upstream_inference_cost + upstream_image_inference_cost
//  4. top-level response.cost
//  5. 0.0
func extractCost(resp *ChatResponse) CostInfo {
	info := CostInfo{}
	if resp.Usage != nil {
		info.InputTokens = resp.Usage.PromptTokens
		info.OutputTokens = resp.Usage.CompletionTokens
	}
	info.ActualCost = resolveCost(resp)
	return info
}

func resolveCost(resp *ChatResponse) float64 {
	if u := resp.Usage; u != nil {
		if u.Cost != nil {
			return *u.Cost
		}
		if u.TotalCost != nil {
			return *u.TotalCost
		}
		if d := u.CostDetails; d != nil && (d.UpstreamInferenceCost != nil || d.UpstreamImageInferenceCost != nil) {
			var sum float64
			if d.UpstreamInferenceCost != nil {
				sum += *d.UpstreamInferenceCost
			}
			if d.UpstreamImageInferenceCost != nil {
				sum += *d.UpstreamImageInferenceCost
			}
			return sum
		}
	}
	if resp.Cost != nil {
		return *resp.Cost
	}
	return 0.0
}
