// Lambda entrypoint for the contract status table change stream. Every
// changed item is re-examined; workflows waiting on an approved
// contract are resumed.
package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"unicorn-properties/infrastructure/di"
	apperrors "unicorn-properties/pkg/errors"
)

var container *di.Container

func init() {
	var err error
	container, err = di.InitializeContainer(context.Background())
	if err != nil {
		log.Fatalf("failed to initialize container: %v", err)
	}
}

func handler(ctx context.Context, event events.DynamoDBEvent) error {
	for _, record := range event.Records {
		key, ok := record.Change.Keys["PropertyId"]
		if !ok || key.DataType() != events.DataTypeString {
			continue
		}
		propertyID := key.String()

		if err := container.ApprovalSyncer.Sync(ctx, propertyID); err != nil {
			// An item deleted between the stream record and the re-read
			// has nothing left to sync.
			if apperrors.IsNotFound(err) {
				container.Logger.Warn("Status item vanished before sync",
					zap.String("propertyId", propertyID),
				)
				continue
			}
			return err
		}
	}
	return nil
}

func main() {
	lambda.Start(handler)
}
