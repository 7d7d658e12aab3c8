package config

import (
	"os"

	"github.com/labring/aiproxy/bedrock-extfunc/common/env"
)

var (
	DebugEnabled bool

	// BedrockRegion overrides the region resolved by the default aws config chain
	BedrockRegion string
	// BedrockEndpoint is a custom endpoint, e.g. a VPC interface endpoint
	BedrockEndpoint string

	// Static credentials, used only when both key id and secret are set.
	// Otherwise the lambda execution role is picked up by the default chain.
	BedrockAccessKeyID     string
	BedrockSecretAccessKey string
	BedrockSessionToken    string
)

func ReloadEnv() {
	DebugEnabled = env.Bool("DEBUG", false)
	BedrockRegion = env.String("BEDROCK_REGION", os.Getenv("AWS_REGION"))
	BedrockEndpoint = os.Getenv("BEDROCK_ENDPOINT")
	BedrockAccessKeyID = os.Getenv("BEDROCK_ACCESS_KEY_ID")
	BedrockSecretAccessKey = os.Getenv("BEDROCK_SECRET_ACCESS_KEY")
	BedrockSessionToken = os.Getenv("BEDROCK_SESSION_TOKEN")
}

func HasStaticCredentials() bool {
	return BedrockAccessKeyID != "" && BedrockSecretAccessKey != ""
}

func init() {
	ReloadEnv()
}
