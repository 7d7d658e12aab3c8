package aws_test

import (
	"errors"
	"net"
	"net/http"
	"syscall"
	"testing"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	awsadaptor "github.com/labring/aiproxy/bedrock-extfunc/relay/adaptor/aws"
	"github.com/stretchr/testify/assert"
)

func responseError(status int, err error) error {
	return &smithy.OperationError{
		ServiceID:     "Bedrock Runtime",
		OperationName: "Converse",
		Err: &awshttp.ResponseError{
			ResponseError: &smithyhttp.ResponseError{
				Response: &smithyhttp.Response{Response: &http.Response{StatusCode: status}},
				Err:      err,
			},
			RequestID: "req-1",
		},
	}
}

func TestUnwrapInvokeError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "plain error",
			err:     errors.New("boom"),
			code:    http.StatusInternalServerError,
			message: "boom",
		},
		{
			name:    "connection refused",
			err:     &net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED},
			code:    http.StatusBadGateway,
			message: "dial tcp: connection refused",
		},
		{
			name:    "validation error",
			err:     responseError(http.StatusBadRequest, errors.New("ValidationException: malformed model id")),
			code:    http.StatusBadRequest,
			message: "ValidationException: malformed model id",
		},
		{
			name:    "access denied",
			err:     responseError(http.StatusBadRequest, errors.New("Operation not allowed")),
			code:    http.StatusForbidden,
			message: "Operation not allowed",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, message := awsadaptor.UnwrapInvokeError(tc.err)
			assert.Equal(t, tc.code, code)
			assert.Equal(t, tc.message, message)
		})
	}
}

func TestNewInvokeError(t *testing.T) {
	apiErr := &smithy.GenericAPIError{Code: "ThrottlingException", Message: "slow down"}
	err := awsadaptor.NewInvokeError(responseError(http.StatusTooManyRequests, apiErr))

	assert.Equal(t, http.StatusTooManyRequests, err.StatusCode)
	assert.Equal(t, "ThrottlingException", err.Code)
	assert.ErrorIs(t, err, apiErr)
	assert.Contains(t, err.Error(), "status 429")
}
