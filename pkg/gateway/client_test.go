package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientComplete(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path decodes content and cost", func(t *testing.T) {
		var gotAuth string
		var gotBody ChatRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/chat/completions", r.URL.Path)
			gotAuth = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			_ = json.NewEncoder(w).Encode(map[string]any{
				"choices": []map[string]any{
					{"message": map[string]any{"role": "assistant", "content": "Paris"}},
				},
				"usage": map[string]any{"prompt_tokens": 5, "completion_tokens": 1, "cost": 0.002},
			})
		}))
		defer srv.Close()

		c := NewClient(srv.URL)
		completion, err := c.Complete(ctx, CompletionRequest{
			APIKey:   "sk-test",
			Model:    "some/model",
			Messages: []Message{{Role: "user", Content: "Capital of France?"}},
		})
		require.NoError(t, err)
		assert.Equal(t, "Paris", completion.Content)
		assert.Equal(t, 0.002, completion.Cost.ActualCost)
		assert.Equal(t, 5, completion.Cost.InputTokens)
		assert.Equal(t, "Bearer sk-test", gotAuth)
		assert.Equal(t, "some/model", gotBody.Model)
	})

	t.Run("attachments rewrite the user message", func(t *testing.T) {
		var raw map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
			_ = json.NewEncoder(w).Encode(map[string]any{
				"choices": []map[string]any{
					{"message": map[string]any{"content": "ok"}},
				},
			})
		}))
		defer srv.Close()

		c := NewClient(srv.URL)
		_, err := c.Complete(ctx, CompletionRequest{
			APIKey:   "sk",
			Model:    "m",
			Messages: []Message{{Role: "user", Content: "look"}},
			Attachments: []Attachment{
				{Filename: "x.png", FileType: "image", MimeType: "image/png", Data: []byte{1}},
			},
		})
		require.NoError(t, err)

		messages := raw["messages"].([]any)
		content := messages[0].(map[string]any)["content"].([]any)
		require.Len(t, content, 2)
		assert.Equal(t, "text", content[0].(map[string]any)["type"])
		assert.Equal(t, "image_url", content[1].(map[string]any)["type"])
	})

	t.Run("http error carries status and body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error": "invalid key"}`, http.StatusUnauthorized)
		}))
		defer srv.Close()

		c := NewClient(srv.URL)
		_, err := c.Complete(ctx, CompletionRequest{APIKey: "bad", Model: "m",
			Messages: []Message{{Role: "user", Content: "q"}}})
		require.Error(t, err)
		var gwErr *GatewayError
		require.ErrorAs(t, err, &gwErr)
		assert.Equal(t, http.StatusUnauthorized, gwErr.Status)
		assert.Contains(t, gwErr.Message, "invalid key")
	})

	t.Run("empty choices is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
		}))
		defer srv.Close()

		c := NewClient(srv.URL)
		_, err := c.Complete(ctx, CompletionRequest{APIKey: "sk", Model: "m",
			Messages: []Message{{Role: "user", Content: "q"}}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no choices")
	})
}

func TestClientListModels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/models", r.URL.Path)
		require.Equal(t, http.MethodGet, r.Method)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{
					"id":   "vendor/vision",
					"name": "Vision Model",
					"architecture": map[string]any{
						"input_modalities": []string{"text", "image"},
					},
				},
				{"id": "vendor/text-only", "name": "Text Model"},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	catalog, err := c.ListModels(context.Background(), "sk")
	require.NoError(t, err)
	require.Len(t, catalog, 2)
	assert.Equal(t, "vendor/vision", catalog[0].ID)
	require.NotNil(t, catalog[0].Architecture)
	assert.Equal(t, []string{"text", "image"}, catalog[0].Architecture.InputModalities)
	assert.Nil(t, catalog[1].Architecture)
}
