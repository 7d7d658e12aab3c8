package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/labring/aiproxy/bedrock-extfunc/common/config"
	"github.com/pkg/errors"
)

// NewClient builds the bedrock runtime client shared by every invocation of
// the function. Region and credentials come from the default aws chain
// unless overridden by BEDROCK_* variables.
func NewClient(ctx context.Context) (*bedrockruntime.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error

	if config.BedrockRegion != "" {
		opts = append(opts, awsconfig.WithRegion(config.BedrockRegion))
	}

	if config.HasStaticCredentials() {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				config.BedrockAccessKeyID,
				config.BedrockSecretAccessKey,
				config.BedrockSessionToken,
			),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "load aws config")
	}

	return bedrockruntime.NewFromConfig(cfg, func(o *bedrockruntime.Options) {
		if config.BedrockEndpoint != "" {
			o.BaseEndpoint = aws.String(config.BedrockEndpoint)
		}
	}), nil
}
