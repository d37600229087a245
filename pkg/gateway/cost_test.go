package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func TestExtractCost(t *testing.T) {
	tests := []struct {
		name string
		resp ChatResponse
		want float64
	}{
		{
			name: "usage.cost wins over everything",
			resp: ChatResponse{
				Usage: &Usage{
					Cost:      floatPtr(0.5),
					TotalCost: floatPtr(1.0),
					CostDetails: &CostDetails{
						UpstreamInferenceCost: floatPtr(2.0),
					},
				},
				Cost: floatPtr(3.0),
			},
			want: 0.5,
		},
		{
			name: "usage.total_cost is second",
			resp: ChatResponse{
				Usage: &Usage{
					TotalCost: floatPtr(1.0),
					CostDetails: &CostDetails{
						UpstreamInferenceCost: floatPtr(2.0),
					},
				},
				Cost: floatPtr(3.0),
			},
			want: 1.0,
		},
		{
			name: "cost details sum upstream components",
			resp: ChatResponse{
				Usage: &Usage{
					CostDetails: &CostDetails{
						UpstreamInferenceCost:      floatPtr(0.2),
						UpstreamImageInferenceCost: floatPtr(0.3),
					},
				},
				Cost: floatPtr(3.0),
			},
			want: 0.5,
		},
		{
			name: "top level cost is last resort",
			resp: ChatResponse{
				Usage: &Usage{PromptTokens: 10},
				Cost:  floatPtr(3.0),
			},
			want: 3.0,
		},
		{
			name: "nothing reported defaults to zero",
			resp: ChatResponse{},
			want: 0.0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := extractCost(&tt.resp)
			assert.Equal(t, tt.want, info.ActualCost)
		})
	}
}

func TestExtractCostTokens(t *testing.T) {
	info := extractCost(&ChatResponse{
		Usage: &Usage{PromptTokens: 12, CompletionTokens: 34},
	})
	assert.Equal(t, 12, info.InputTokens)
	assert.Equal(t, 34, info.OutputTokens)
}
