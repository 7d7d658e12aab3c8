package controller

import (
	"context"

	"github.com/labring/aiproxy/bedrock-extfunc/common"
	relaymodel "github.com/labring/aiproxy/bedrock-extfunc/relay/model"
	"github.com/pkg/errors"
)

// Conversor performs one blocking converse call.
type Conversor interface {
	Converse(ctx context.Context, req *relaymodel.ConverseRequest) (*relaymodel.ConverseResponse, error)
}

type Processor struct {
	conversor Conversor
}

func NewProcessor(conversor Conversor) *Processor {
	return &Processor{conversor: conversor}
}

// ProcessRow runs one argument row through unmarshalling, a single converse
// call and output extraction.
func (p *Processor) ProcessRow(ctx context.Context, args []any) ([]byte, error) {
	set, err := ParseArguments(args)
	if err != nil {
		return nil, err
	}

	return p.Invoke(ctx, set)
}

func (p *Processor) Invoke(ctx context.Context, set *relaymodel.ArgumentSet) ([]byte, error) {
	req, err := BuildConverseRequest(set)
	if err != nil {
		return nil, err
	}

	log := common.GetLogger(ctx)
	log.Debugf("invoking model %s, tool config: %t", req.ModelID, req.ToolConfig != nil)

	resp, err := p.conversor.Converse(ctx, req)
	if err != nil {
		return nil, errors.Wrapf(err, "invoke model %s", req.ModelID)
	}

	if resp.Usage != nil {
		log.Debugf(
			"model %s stopped with %s, input tokens: %d, output tokens: %d",
			req.ModelID,
			resp.StopReason,
			resp.Usage.InputTokens,
			resp.Usage.OutputTokens,
		)
	}

	return ExtractOutput(resp)
}
