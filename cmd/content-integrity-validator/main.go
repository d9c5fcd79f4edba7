// Lambda entrypoint for the content integrity step of the approval
// workflow. The aggregated moderation and sentiment verdicts are
// reduced to a single ValidationResult added to the state payload.
package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"unicorn-properties/application/services"
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

func handler(ctx context.Context, input json.RawMessage) (map[string]interface{}, error) {
	var evaluation services.ContentEvaluation
	if err := json.Unmarshal(input, &evaluation); err != nil {
		return nil, err
	}

	var state map[string]interface{}
	if err := json.Unmarshal(input, &state); err != nil {
		return nil, err
	}

	result := services.EvaluateContentIntegrity(evaluation)
	state["ValidationResult"] = result

	container.Logger.Info("Content integrity evaluated",
		zap.String("validationResult", result),
	)
	return state, nil
}

func main() {
	lambda.Start(handler)
}
