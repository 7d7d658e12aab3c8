package controller

import (
	"math"

	"github.com/go-viper/mapstructure/v2"
	relaymodel "github.com/labring/aiproxy/bedrock-extfunc/relay/model"
	"github.com/pkg/errors"
)

const (
	DefaultMaxTokens   int32   = 512
	DefaultTemperature float32 = 0.7
	DefaultTopP        float32 = 0.9
)

// GenerationParams holds the recognized keys of model_params, nil means unset.
// maxTokens is decoded wide so fractions and int32 overflow are caught instead
// of being truncated.
type GenerationParams struct {
	MaxTokens   *float64 `mapstructure:"maxTokens"`
	Temperature *float32 `mapstructure:"temperature"`
	TopP        *float32 `mapstructure:"topP"`
}

// DecodeGenerationParams ignores unknown keys, a known key of the wrong type
// is an error.
func DecodeGenerationParams(params map[string]any) (*GenerationParams, error) {
	var p GenerationParams
	if err := mapstructure.Decode(params, &p); err != nil {
		return nil, errors.Wrapf(ErrInvalidParams, "model_params: %v", err)
	}

	if p.MaxTokens != nil {
		n := *p.MaxTokens
		if n != math.Trunc(n) || n < math.MinInt32 || n > math.MaxInt32 {
			return nil, errors.Wrapf(ErrInvalidParams, "model_params: maxTokens %v is not an int32", n)
		}
	}

	return &p, nil
}

func (p *GenerationParams) InferenceConfig() *relaymodel.InferenceConfig {
	cfg := &relaymodel.InferenceConfig{
		MaxTokens:   DefaultMaxTokens,
		Temperature: DefaultTemperature,
		TopP:        DefaultTopP,
	}

	if p.MaxTokens != nil {
		cfg.MaxTokens = int32(*p.MaxTokens)
	}

	if p.Temperature != nil {
		cfg.Temperature = *p.Temperature
	}

	if p.TopP != nil {
		cfg.TopP = *p.TopP
	}

	return cfg
}

// BuildConverseRequest builds a single turn conversation for one row.
func BuildConverseRequest(set *relaymodel.ArgumentSet) (*relaymodel.ConverseRequest, error) {
	params, err := DecodeGenerationParams(set.ModelParams)
	if err != nil {
		return nil, err
	}

	req := &relaymodel.ConverseRequest{
		ModelID: set.ModelID,
		Messages: []relaymodel.ConverseMessage{
			{
				Role:    relaymodel.RoleUser,
				Content: []relaymodel.ConverseContentBlock{relaymodel.NewTextBlock(set.Prompt)},
			},
		},
		InferenceConfig: params.InferenceConfig(),
	}

	if len(set.ToolConfig) > 0 {
		req.ToolConfig = set.ToolConfig
	}

	return req, nil
}
