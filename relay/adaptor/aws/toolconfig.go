package aws

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/document"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

var ErrInvalidToolConfig = errors.New("invalid tool config")

// toolConfig follows the converse api json shape:
//
//	{
//	  "tools": [
//	    {"toolSpec": {"name": "...", "description": "...", "inputSchema": {"json": {...}}}},
//	    {"cachePoint": {"type": "default"}}
//	  ],
//	  "toolChoice": {"auto": {}} | {"any": {}} | {"tool": {"name": "..."}}
//	}
type toolConfig struct {
	Tools      []toolEntry `mapstructure:"tools"`
	ToolChoice *toolChoice `mapstructure:"toolChoice"`
}

type toolEntry struct {
	ToolSpec   *toolSpec   `mapstructure:"toolSpec"`
	CachePoint *cachePoint `mapstructure:"cachePoint"`
}

type toolSpec struct {
	Name        string         `mapstructure:"name"`
	Description string         `mapstructure:"description"`
	InputSchema map[string]any `mapstructure:"inputSchema"`
}

type cachePoint struct {
	Type string `mapstructure:"type"`
}

type toolChoice struct {
	Auto *struct{}       `mapstructure:"auto"`
	Any  *struct{}       `mapstructure:"any"`
	Tool *specificChoice `mapstructure:"tool"`
}

type specificChoice struct {
	Name string `mapstructure:"name"`
}

func convertToolConfig(raw map[string]any) (*types.ToolConfiguration, error) {
	var cfg toolConfig
	if err := mapstructure.Decode(raw, &cfg); err != nil {
		return nil, errors.Wrapf(ErrInvalidToolConfig, "%v", err)
	}

	tools := make([]types.Tool, 0, len(cfg.Tools))
	for i, entry := range cfg.Tools {
		tool, err := convertTool(entry)
		if err != nil {
			return nil, errors.Wrapf(err, "tools[%d]", i)
		}

		tools = append(tools, tool)
	}

	choice, err := convertToolChoice(cfg.ToolChoice)
	if err != nil {
		return nil, err
	}

	return &types.ToolConfiguration{
		Tools:      tools,
		ToolChoice: choice,
	}, nil
}

func convertTool(entry toolEntry) (types.Tool, error) {
	switch {
	case entry.ToolSpec != nil:
		schema, ok := entry.ToolSpec.InputSchema["json"]
		if !ok {
			return nil, errors.Wrap(ErrInvalidToolConfig, "toolSpec.inputSchema.json is required")
		}

		spec := types.ToolSpecification{
			Name: aws.String(entry.ToolSpec.Name),
			InputSchema: &types.ToolInputSchemaMemberJson{
				Value: document.NewLazyDocument(schema),
			},
		}
		if entry.ToolSpec.Description != "" {
			spec.Description = aws.String(entry.ToolSpec.Description)
		}

		return &types.ToolMemberToolSpec{Value: spec}, nil
	case entry.CachePoint != nil:
		return &types.ToolMemberCachePoint{
			Value: types.CachePointBlock{
				Type: types.CachePointType(entry.CachePoint.Type),
			},
		}, nil
	default:
		return nil, errors.Wrap(ErrInvalidToolConfig, "expected toolSpec or cachePoint")
	}
}

func convertToolChoice(choice *toolChoice) (types.ToolChoice, error) {
	switch {
	case choice == nil:
		return nil, nil
	case choice.Auto != nil:
		return &types.ToolChoiceMemberAuto{Value: types.AutoToolChoice{}}, nil
	case choice.Any != nil:
		return &types.ToolChoiceMemberAny{Value: types.AnyToolChoice{}}, nil
	case choice.Tool != nil:
		return &types.ToolChoiceMemberTool{
			Value: types.SpecificToolChoice{Name: aws.String(choice.Tool.Name)},
		}, nil
	default:
		return nil, errors.Wrap(ErrInvalidToolConfig, "expected auto, any or tool in toolChoice")
	}
}
