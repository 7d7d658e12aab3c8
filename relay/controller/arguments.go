package controller

import (
	"github.com/go-playground/validator/v10"
	relaymodel "github.com/labring/aiproxy/bedrock-extfunc/relay/model"
	"github.com/pkg/errors"
)

var (
	ErrArgumentArity    = errors.New("invalid argument count")
	ErrInvalidArguments = errors.New("invalid arguments")
	ErrInvalidParams    = errors.New("invalid json params")
)

const (
	argModelID = iota
	argPrompt
	argModelParams
	argToolConfig

	minArguments = argPrompt + 1
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ParseArguments unmarshals one row of invoke_bedrock(model_id, prompt,
// model_params, tool_config). The trailing two arguments are optional and
// may be json text or already decoded objects.
func ParseArguments(args []any) (*relaymodel.ArgumentSet, error) {
	if len(args) < minArguments {
		return nil, errors.Wrapf(
			ErrArgumentArity,
			"expected at least %d arguments, got %d",
			minArguments,
			len(args),
		)
	}

	modelID, ok := args[argModelID].(string)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidArguments, "model_id must be a string, got %T", args[argModelID])
	}

	prompt, ok := args[argPrompt].(string)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidArguments, "prompt must be a string, got %T", args[argPrompt])
	}

	modelParams, err := paramAt(args, argModelParams).Mapping()
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidParams, "model_params: %v", err)
	}

	toolConfig, err := paramAt(args, argToolConfig).Mapping()
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidParams, "tool_config: %v", err)
	}

	set := &relaymodel.ArgumentSet{
		ModelID:     modelID,
		Prompt:      prompt,
		ModelParams: modelParams,
		ToolConfig:  toolConfig,
	}

	if err := validate.Struct(set); err != nil {
		return nil, errors.Wrapf(ErrInvalidArguments, "%v", err)
	}

	if set.ModelParams == nil {
		set.ModelParams = map[string]any{}
	}

	return set, nil
}

func paramAt(args []any, i int) relaymodel.ParamValue {
	if len(args) <= i {
		return relaymodel.ParamValue{Kind: relaymodel.ParamAbsent}
	}
	return relaymodel.NewParamValue(args[i])
}
