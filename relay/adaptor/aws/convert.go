package aws

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/document"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	relaymodel "github.com/labring/aiproxy/bedrock-extfunc/relay/model"
	"github.com/pkg/errors"
)

func ConvertRequest(req *relaymodel.ConverseRequest) (*bedrockruntime.ConverseInput, error) {
	messages := make([]types.Message, 0, len(req.Messages))
	for _, msg := range req.Messages {
		content := make([]types.ContentBlock, 0, len(msg.Content))
		for _, block := range msg.Content {
			if !block.IsText() {
				return nil, fmt.Errorf("unsupported request content block in %s message", msg.Role)
			}

			content = append(content, &types.ContentBlockMemberText{Value: *block.Text})
		}

		messages = append(messages, types.Message{
			Role:    types.ConversationRole(msg.Role),
			Content: content,
		})
	}

	input := &bedrockruntime.ConverseInput{
		ModelId:  aws.String(req.ModelID),
		Messages: messages,
	}

	if req.InferenceConfig != nil {
		input.InferenceConfig = &types.InferenceConfiguration{
			MaxTokens:   aws.Int32(req.InferenceConfig.MaxTokens),
			Temperature: aws.Float32(req.InferenceConfig.Temperature),
			TopP:        aws.Float32(req.InferenceConfig.TopP),
		}
	}

	// an empty tool config must not reach bedrock at all
	if len(req.ToolConfig) > 0 {
		toolConfig, err := convertToolConfig(req.ToolConfig)
		if err != nil {
			return nil, err
		}

		input.ToolConfig = toolConfig
	}

	return input, nil
}

func ConvertResponse(out *bedrockruntime.ConverseOutput) (*relaymodel.ConverseResponse, error) {
	resp := &relaymodel.ConverseResponse{
		StopReason: string(out.StopReason),
	}

	if out.Usage != nil {
		resp.Usage = &relaymodel.ConverseUsage{
			InputTokens:  int64(aws.ToInt32(out.Usage.InputTokens)),
			OutputTokens: int64(aws.ToInt32(out.Usage.OutputTokens)),
			TotalTokens:  int64(aws.ToInt32(out.Usage.TotalTokens)),
		}
	}

	msg, ok := out.Output.(*types.ConverseOutputMemberMessage)
	if !ok {
		return resp, nil
	}

	content := make([]relaymodel.ConverseContentBlock, 0, len(msg.Value.Content))
	for i, block := range msg.Value.Content {
		switch v := block.(type) {
		case *types.ContentBlockMemberText:
			content = append(content, relaymodel.NewTextBlock(v.Value))
		case *types.ContentBlockMemberToolUse:
			input, err := marshalDocument(v.Value.Input)
			if err != nil {
				return nil, errors.Wrapf(err, "marshal tool use input of content[%d]", i)
			}

			content = append(content, relaymodel.ConverseContentBlock{
				ToolUse: &relaymodel.ToolUseBlock{
					ToolUseID: aws.ToString(v.Value.ToolUseId),
					Name:      aws.ToString(v.Value.Name),
					Input:     input,
				},
			})
		default:
			// reasoning, images, citations and unknown members carry no output
			content = append(content, relaymodel.ConverseContentBlock{})
		}
	}

	resp.Output = &relaymodel.ConverseOutput{
		Message: &relaymodel.ConverseMessage{
			Role:    string(msg.Value.Role),
			Content: content,
		},
	}

	return resp, nil
}

func marshalDocument(doc document.Interface) ([]byte, error) {
	if doc == nil {
		return nil, nil
	}
	return doc.MarshalSmithyDocument()
}
