package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	relaymodel "github.com/labring/aiproxy/bedrock-extfunc/relay/model"
)

// ConverseAPI is the subset of *bedrockruntime.Client used by the adaptor.
type ConverseAPI interface {
	Converse(
		ctx context.Context,
		params *bedrockruntime.ConverseInput,
		optFns ...func(*bedrockruntime.Options),
	) (*bedrockruntime.ConverseOutput, error)
}

type Adaptor struct {
	client ConverseAPI
}

func NewAdaptor(client ConverseAPI) *Adaptor {
	return &Adaptor{client: client}
}

// Converse performs exactly one converse call. Failures are returned as
// *InvokeError, malformed requests as the conversion error.
func (a *Adaptor) Converse(
	ctx context.Context,
	req *relaymodel.ConverseRequest,
) (*relaymodel.ConverseResponse, error) {
	input, err := ConvertRequest(req)
	if err != nil {
		return nil, err
	}

	out, err := a.client.Converse(ctx, input)
	if err != nil {
		return nil, NewInvokeError(err)
	}

	return ConvertResponse(out)
}
