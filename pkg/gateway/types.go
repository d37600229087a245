// Package gateway wraps the external LLM gateway: an OpenAI-compatible HTTP
// endpoint (OpenRouter wire format) providing chat completions, a model
// catalog with capability metadata, and per-call cost accounting.
package gateway

// --- Request types ---

// ChatRequest is the chat completions request body.
type ChatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

// Message is a single message in the chat format. Content is either a plain
// string or, for multimodal user messages, a []Part.
type Message struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

// Part is one element of a multimodal content array.
type Part struct {
	Type       string      `json:"type"`
	Text       string      `json:"text,omitempty"`
	ImageURL   *ImageURL   `json:"image_url,omitempty"`
	File       *FilePart   `json:"file,omitempty"`
	InputAudio *InputAudio `json:"input_audio,omitempty"`
	VideoURL   *VideoURL   `json:"video_url,omitempty"`
}

// ImageURL holds the data URI for an image content part.
type ImageURL struct {
	URL string `json:"url"`
}

// FilePart holds a document (PDF or generic file) as a data URI.
type FilePart struct {
	Filename string `json:"filename"`
	FileData string `json:"file_data"`
}

// InputAudio holds raw base64 audio plus its format (MIME subtype).
type InputAudio struct {
	Data   string `json:"data"`
	Format string `json:"format"`
}

// VideoURL holds the data URI for a video content part.
type VideoURL struct {
	URL string `json:"url"`
}

// --- Response types ---

// ChatResponse is the chat completions response. Some gateways report the
// call cost at the top level rather than inside usage.
type ChatResponse struct {
	ID      string   `json:"id"`
	Choices []Choice `json:"choices"`
	Usage   *Usage   `json:"usage,omitempty"`
	Cost    *float64 `json:"cost,omitempty"`
}

// Choice is a single completion choice.
type Choice struct {
	Index        int            `json:"index"`
	Message      *ChoiceMessage `json:"message,omitempty"`
	FinishReason string         `json:"finish_reason,omitempty"`
}

// ChoiceMessage is the message content within a choice.
type ChoiceMessage struct {
	Role    string `json:"role,omitempty"`
	Content string `json:"content,omitempty"`
}

// Usage contains token counts and the gateway's cost accounting fields.
// Cost field precedence is handled by extractCost; the order there is
// canonical and must not grow further fallbacks without versioning.
type Usage struct {
	PromptTokens     int          `json:"prompt_tokens"`
	CompletionTokens int          `json:"completion_tokens"`
	TotalTokens      int          `json:"total_tokens"`
	Cost             *float64     `json:"cost,omitempty"`
	TotalCost        *float64     `json:"total_cost,omitempty"`
	CostDetails      *CostDetails `json:"cost_details,omitempty"`
}

// CostDetails carries upstream cost breakdowns reported by some gateways.
type CostDetails struct {
	UpstreamInferenceCost      *float64 `json:"upstream_inference_cost,omitempty"`
	UpstreamImageInferenceCost *float64 `json:"upstream_image_inference_cost,omitempty"`
}

// --- Catalog types ---

// catalogResponse is the gateway's GET /models body.
type catalogResponse struct {
	Data []CatalogModel `json:"data"`
}

// CatalogModel is one entry of the gateway's model catalog.
type CatalogModel struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Architecture *Architecture `json:"architecture,omitempty"`
}

// Architecture describes a model's input/output modalities.
type Architecture struct {
	InputModalities []string `json:"input_modalities"`
}

// Capabilities is the attachment-capability set of one catalog model.
type Capabilities struct {
	Image bool
	File  bool
	Audio bool
	Video bool
	Text  bool
}

// --- Adapter types ---

// Attachment is the gateway-facing form of a stored attachment.
type Attachment struct {
	Filename string
	FileType string
	MimeType string
	Data     []byte
}

// CostInfo is the per-call cost accounting extracted from a response.
type CostInfo struct {
	ActualCost   float64 `json:"actual_cost"`
	InputTokens  int     `json:"input_tokens"`
	OutputTokens int     `json:"output_tokens"`
}

// Completion is the adapter's result for one chat completion call.
type Completion struct {
	Content string
	Cost    CostInfo
}

// CompletionRequest describes one chat completion call.
type CompletionRequest struct {
	APIKey      string
	Model       string
	Messages    []Message
	Attachments []Attachment
}
