package controller_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/bytedance/sonic"
	"github.com/labring/aiproxy/bedrock-extfunc/controller"
	relaymodel "github.com/labring/aiproxy/bedrock-extfunc/relay/model"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/smartystreets/goconvey/convey"
)

// echoConversor answers every prompt with the prompt itself, or with a tool
// use when a tool config is present.
type echoConversor struct {
	calls  int
	failAt int
}

func (e *echoConversor) Converse(
	_ context.Context,
	req *relaymodel.ConverseRequest,
) (*relaymodel.ConverseResponse, error) {
	e.calls++
	if e.failAt == e.calls {
		return nil, errors.New("ThrottlingException: rate exceeded")
	}

	block := relaymodel.NewTextBlock(*req.Messages[0].Content[0].Text)
	if req.ToolConfig != nil {
		block = relaymodel.ConverseContentBlock{
			ToolUse: &relaymodel.ToolUseBlock{Name: "extract", Input: []byte(`{"prompt":"` + *block.Text + `"}`)},
		}
	}

	return &relaymodel.ConverseResponse{
		Output: &relaymodel.ConverseOutput{
			Message: &relaymodel.ConverseMessage{
				Role:    relaymodel.RoleAssistant,
				Content: []relaymodel.ConverseContentBlock{block},
			},
		},
	}, nil
}

func TestExternalFunctionHandle(t *testing.T) {
	convey.Convey("ExternalFunction.Handle", t, func() {
		conversor := &echoConversor{}
		fn := controller.NewExternalFunction(conversor)

		payload := []byte(`{
			"user": "awsuser",
			"cluster": "arn:aws:redshift:us-east-1:123456789012:cluster:redshift-cluster-1",
			"database": "dev",
			"external_function": "invoke_bedrock",
			"query_id": 13228310,
			"request_id": "33d56e72-f9bc-4990-9eb8-ab41e67db1fa",
			"arguments": [
				["modelX", "first"],
				["modelX", "second", "{\"temperature\":0.2}"],
				["modelX", "third", null, {"tools": [{"toolSpec": {"name": "extract"}}]}]
			],
			"num_records": 3
		}`)

		convey.Convey("should return one double encoded result per row in order", func() {
			out, err := fn.Handle(context.Background(), payload)
			convey.So(err, convey.ShouldBeNil)

			var resp relaymodel.ExternalFunctionResponse
			convey.So(sonic.UnmarshalString(out, &resp), convey.ShouldBeNil)
			convey.So(resp.Results, convey.ShouldResemble, []string{
				`{"output_text":"first"}`,
				`{"output_text":"second"}`,
				`{"prompt":"third"}`,
			})
			convey.So(conversor.calls, convey.ShouldEqual, 3)
		})

		convey.Convey("should fail the whole batch when one row fails", func() {
			conversor.failAt = 2

			out, err := fn.Handle(context.Background(), payload)
			convey.So(err, convey.ShouldNotBeNil)
			convey.So(err.Error(), convey.ShouldContainSubstring, "row 1")
			convey.So(out, convey.ShouldBeEmpty)
			convey.So(conversor.calls, convey.ShouldEqual, 2)
		})

		convey.Convey("should fail the batch on a short row", func() {
			out, err := fn.Handle(context.Background(), []byte(`{"arguments": [["modelX", "ok"], ["modelX"]]}`))
			convey.So(err, convey.ShouldNotBeNil)
			convey.So(out, convey.ShouldBeEmpty)
		})

		convey.Convey("should reject a malformed event", func() {
			_, err := fn.Handle(context.Background(), []byte(`{"arguments": "nope"}`))
			convey.So(err, convey.ShouldNotBeNil)
			convey.So(conversor.calls, convey.ShouldEqual, 0)
		})

		convey.Convey("should return empty results for an empty batch", func() {
			out, err := fn.Handle(context.Background(), []byte(`{}`))
			convey.So(err, convey.ShouldBeNil)
			convey.So(out, convey.ShouldEqual, `{"results":[]}`)
		})
	})
}

func TestExternalFunctionLogging(t *testing.T) {
	convey.Convey("ExternalFunction logging", t, func() {
		hook := test.NewGlobal()
		defer hook.Reset()

		fn := controller.NewExternalFunction(&echoConversor{})
		ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{
			AwsRequestID: "lambda-request-1",
		})

		_, err := fn.Handle(ctx, []byte(`{
			"request_id": "redshift-request-1",
			"query_id": 7,
			"arguments": [["modelX", "hello"]],
			"num_records": 1
		}`))
		convey.So(err, convey.ShouldBeNil)

		var entry *log.Entry
		for _, e := range hook.AllEntries() {
			if e.Message == "processing 1 records" {
				entry = e
			}
		}

		convey.So(entry, convey.ShouldNotBeNil)
		convey.So(entry.Level, convey.ShouldEqual, log.InfoLevel)
		convey.So(entry.Data["request_id"], convey.ShouldEqual, "redshift-request-1")
		convey.So(entry.Data["query_id"], convey.ShouldEqual, int64(7))
		convey.So(entry.Data["aws_request_id"], convey.ShouldEqual, "lambda-request-1")
	})
}
