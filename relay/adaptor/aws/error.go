package aws

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/smithy-go"
	"github.com/labring/aiproxy/bedrock-extfunc/common"
)

// InvokeError is returned for every failed converse call.
type InvokeError struct {
	StatusCode int
	// aws error code, e.g. ThrottlingException, empty for transport errors
	Code    string
	Message string
	err     error
}

func (e *InvokeError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("bedrock converse failed: status %d, %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("bedrock converse failed: status %d: %s", e.StatusCode, e.Message)
}

func (e *InvokeError) Unwrap() error {
	return e.err
}

func NewInvokeError(err error) *InvokeError {
	code, message := UnwrapInvokeError(err)

	invokeErr := &InvokeError{
		StatusCode: code,
		Message:    message,
		err:        err,
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		invokeErr.Code = apiErr.ErrorCode()
	}

	return invokeErr
}

func UnwrapInvokeError(err error) (int, string) {
	smithyErr := &smithy.OperationError{}

	ok := errors.As(err, &smithyErr)
	if !ok {
		if common.IsConnectionError(err) {
			return http.StatusBadGateway, err.Error()
		}
		return http.StatusInternalServerError, err.Error()
	}

	awshttpErr := &awshttp.ResponseError{}

	ok = errors.As(smithyErr.Unwrap(), &awshttpErr)
	if !ok {
		if common.IsConnectionError(smithyErr.Unwrap()) {
			return http.StatusBadGateway, err.Error()
		}
		return http.StatusInternalServerError, err.Error()
	}

	code := awshttpErr.HTTPStatusCode()
	message := awshttpErr.Err.Error()

	if strings.Contains(message, "Operation not allowed") {
		code = http.StatusForbidden
	}

	return code, message
}
