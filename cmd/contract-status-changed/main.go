// Lambda entrypoint for ContractStatusChanged events from the bus.
// Maintains the Properties-domain contract status mirror.
package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"unicorn-properties/domain/contracts"
	domainevents "unicorn-properties/domain/events"
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
	if event.DetailType != domainevents.DetailTypeContractStatusChanged {
		container.Logger.Warn("Ignoring unexpected detail-type",
			zap.String("detailType", event.DetailType),
		)
		return nil
	}

	var statusChanged contracts.ContractStatusChangedEvent
	if err := json.Unmarshal(event.Detail, &statusChanged); err != nil {
		container.Logger.Error("Unparseable event detail", zap.Error(err))
		return err
	}

	return container.StatusMirror.Apply(ctx, &statusChanged)
}

func main() {
	lambda.Start(handler)
}
