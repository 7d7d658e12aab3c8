package model

import "encoding/json"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ConverseRequest mirrors the bedrock converse request body.
type ConverseRequest struct {
	ModelID         string            `json:"modelId"`
	Messages        []ConverseMessage `json:"messages"`
	InferenceConfig *InferenceConfig  `json:"inferenceConfig,omitempty"`

	// forwarded as is, nil when the caller gave none
	ToolConfig map[string]any `json:"toolConfig,omitempty"`
}

type InferenceConfig struct {
	MaxTokens   int32   `json:"maxTokens"`
	Temperature float32 `json:"temperature"`
	TopP        float32 `json:"topP"`
}

type ConverseMessage struct {
	Role    string                 `json:"role"`
	Content []ConverseContentBlock `json:"content"`
}

// ConverseContentBlock is a tagged union, the populated field is the tag.
// Blocks of any other kind have neither field set.
type ConverseContentBlock struct {
	Text    *string       `json:"text,omitempty"`
	ToolUse *ToolUseBlock `json:"toolUse,omitempty"`
}

func NewTextBlock(text string) ConverseContentBlock {
	return ConverseContentBlock{Text: &text}
}

func (b *ConverseContentBlock) IsText() bool {
	return b.Text != nil
}

func (b *ConverseContentBlock) IsToolUse() bool {
	return b.ToolUse != nil
}

type ToolUseBlock struct {
	ToolUseID string          `json:"toolUseId,omitempty"`
	Name      string          `json:"name,omitempty"`
	Input     json.RawMessage `json:"input,omitempty"`
}

type ConverseResponse struct {
	Output     *ConverseOutput `json:"output,omitempty"`
	StopReason string          `json:"stopReason,omitempty"`
	Usage      *ConverseUsage  `json:"usage,omitempty"`
}

type ConverseOutput struct {
	Message *ConverseMessage `json:"message,omitempty"`
}

type ConverseUsage struct {
	InputTokens  int64 `json:"inputTokens"`
	OutputTokens int64 `json:"outputTokens"`
	TotalTokens  int64 `json:"totalTokens"`
}

// Content returns output.message.content, empty when any level is missing.
func (r *ConverseResponse) Content() []ConverseContentBlock {
	if r == nil || r.Output == nil || r.Output.Message == nil {
		return nil
	}
	return r.Output.Message.Content
}
