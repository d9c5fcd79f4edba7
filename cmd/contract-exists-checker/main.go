// Lambda entrypoint the approval workflow calls as a hard gate: it
// fails when no contract exists for the property under evaluation.
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

// CheckRequest is the workflow task payload.
type CheckRequest struct {
	Input struct {
		PropertyID string `json:"PropertyId"`
	} `json:"Input"`
}

func handler(ctx context.Context, request CheckRequest) error {
	return container.ContractChecker.EnsureExists(ctx, request.Input.PropertyID)
}

func main() {
	lambda.Start(handler)
}
