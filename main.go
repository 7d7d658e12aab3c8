package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/labring/aiproxy/bedrock-extfunc/common"
	"github.com/labring/aiproxy/bedrock-extfunc/common/config"
	"github.com/labring/aiproxy/bedrock-extfunc/controller"
	awsadaptor "github.com/labring/aiproxy/bedrock-extfunc/relay/adaptor/aws"
	log "github.com/sirupsen/logrus"
)

func main() {
	loadEnv()

	config.ReloadEnv()

	common.InitLog(log.StandardLogger(), config.DebugEnabled)

	printLoadedEnvFiles()

	// created once per execution environment and shared by all invocations
	client, err := awsadaptor.NewClient(context.Background())
	if err != nil {
		log.Fatal("failed to create bedrock client: " + err.Error())
	}

	fn := controller.NewExternalFunction(awsadaptor.NewAdaptor(client))

	log.Info("bedrock external function started")

	lambda.Start(fn.Handle)
}
