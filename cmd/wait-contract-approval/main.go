// Lambda entrypoint invoked by the approval workflow with a task token.
// The token is parked on the contract status item until the contract is
// approved.
package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"

	"unicorn-properties/infrastructure/di"
)

var container *di.Container

func init() {
	var err error
	container, err = di.InitializeContainer(context.Background())
	if err != nil {
		log.Fatalf("failed to initialize container: %v", err)
	}
}

// WaitRequest is the workflow task payload.
type WaitRequest struct {
	Input struct {
		PropertyID string `json:"PropertyId"`
	} `json:"Input"`
	TaskToken string `json:"TaskToken"`
}

func handler(ctx context.Context, request WaitRequest) error {
	return container.WaitRegistrar.RegisterWait(ctx, request.Input.PropertyID, request.TaskToken)
}

func main() {
	lambda.Start(handler)
}
