package controller

import (
	"strings"

	"github.com/bytedance/sonic"
	relaymodel "github.com/labring/aiproxy/bedrock-extfunc/relay/model"
)

// TextOutput is the result object of a row answered with plain text.
type TextOutput struct {
	OutputText string `json:"output_text"`
}

// ExtractOutput returns the json result object for one converse response.
// The input of the first tool use with a non empty input wins over any text,
// otherwise all text blocks are concatenated in order.
func ExtractOutput(resp *relaymodel.ConverseResponse) ([]byte, error) {
	var text strings.Builder

	for _, block := range resp.Content() {
		switch {
		case block.Text != nil && *block.Text != "":
			text.WriteString(*block.Text)
		case block.ToolUse != nil:
			if isEmptyJSON(block.ToolUse.Input) {
				continue
			}
			return block.ToolUse.Input, nil
		}
	}

	return sonic.Marshal(TextOutput{OutputText: text.String()})
}

// isEmptyJSON treats null, false, 0, "", {} and [] as empty, as well as
// input that is not valid json.
func isEmptyJSON(raw []byte) bool {
	if len(raw) == 0 {
		return true
	}

	var v any
	if err := sonic.Unmarshal(raw, &v); err != nil {
		return true
	}

	switch v := v.(type) {
	case nil:
		return true
	case bool:
		return !v
	case float64:
		return v == 0
	case string:
		return v == ""
	case map[string]any:
		return len(v) == 0
	case []any:
		return len(v) == 0
	default:
		return false
	}
}
