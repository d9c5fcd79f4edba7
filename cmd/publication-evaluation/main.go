// Lambda entrypoint for PublicationEvaluationCompleted events from the
// bus. Applies the evaluation outcome to the property listing.
package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	domainevents "unicorn-properties/domain/events"
	"unicorn-properties/domain/properties"
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

func handler(ctx context.Context, event events.CloudWatchEvent) error {
	if event.DetailType != domainevents.DetailTypePublicationEvaluationCompleted {
		container.Logger.Warn("Ignoring unexpected detail-type",
			zap.String("detailType", event.DetailType),
		)
		return nil
	}

	var completed properties.PublicationEvaluationCompletedEvent
	if err := json.Unmarshal(event.Detail, &completed); err != nil {
		container.Logger.Error("Unparseable event detail", zap.Error(err))
		return err
	}

	return container.EvaluationHandler.HandleEvaluationCompleted(ctx, &completed)
}

func main() {
	lambda.Start(handler)
}
