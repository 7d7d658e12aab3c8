package controller

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/bytedance/sonic"
	"github.com/labring/aiproxy/bedrock-extfunc/common"
	relaycontroller "github.com/labring/aiproxy/bedrock-extfunc/relay/controller"
	relaymodel "github.com/labring/aiproxy/bedrock-extfunc/relay/model"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ExternalFunction serves redshift lambda external function calls. It is
// safe to reuse across invocations, it holds no per request state.
type ExternalFunction struct {
	processor *relaycontroller.Processor
}

func NewExternalFunction(conversor relaycontroller.Conversor) *ExternalFunction {
	return &ExternalFunction{
		processor: relaycontroller.NewProcessor(conversor),
	}
}

// Handle is the lambda entrypoint. The returned string is the json encoded
// ExternalFunctionResponse. Any error fails the whole batch.
func (f *ExternalFunction) Handle(ctx context.Context, payload json.RawMessage) (string, error) {
	var req relaymodel.ExternalFunctionRequest
	if err := sonic.Unmarshal(payload, &req); err != nil {
		return "", errors.Wrap(err, "unmarshal external function request")
	}

	ctx = common.WithLogger(ctx, newInvocationLogger(ctx, &req))

	resp, err := f.Process(ctx, &req)
	if err != nil {
		common.GetLogger(ctx).Errorf("external function failed: %v", err)
		return "", err
	}

	return sonic.MarshalString(resp)
}

// Process runs every row in order. The first failing row aborts the batch
// and no results are returned.
func (f *ExternalFunction) Process(
	ctx context.Context,
	req *relaymodel.ExternalFunctionRequest,
) (*relaymodel.ExternalFunctionResponse, error) {
	log := common.GetLogger(ctx)

	numRecords := req.GetNumRecords()
	log.Infof("processing %d records", numRecords)

	if numRecords != len(req.Arguments) {
		log.Warnf("num_records is %d but %d argument rows were sent", numRecords, len(req.Arguments))
	}

	results := make([]string, 0, len(req.Arguments))
	for i, args := range req.Arguments {
		out, err := f.processor.ProcessRow(ctx, args)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i)
		}

		results = append(results, string(out))
	}

	return &relaymodel.ExternalFunctionResponse{Results: results}, nil
}

func newInvocationLogger(ctx context.Context, req *relaymodel.ExternalFunctionRequest) *log.Entry {
	fields := log.Fields{
		"external_function": req.ExternalFunction,
		"query_id":          req.QueryID,
		"request_id":        req.RequestID,
	}

	if req.Cluster != "" {
		fields["cluster"] = req.Cluster
	}

	if req.Database != "" {
		fields["database"] = req.Database
	}

	if req.User != "" {
		fields["user"] = req.User
	}

	if lc, ok := lambdacontext.FromContext(ctx); ok {
		fields["aws_request_id"] = lc.AwsRequestID
	}

	return common.NewLogger().WithFields(fields)
}
