// Lambda entrypoint for the contracts table change stream. Inserts and
// modifications of contracts in DRAFT or APPROVED are republished to
// the event bus as ContractStatusChanged.
package main

import (
	"context"
	"log"
	"time"

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

func handler(ctx context.Context, event events.DynamoDBEvent) error {
	logger := container.Logger

	var toPublish []domainevents.DomainEvent
	for _, record := range event.Records {
		if record.EventName != "INSERT" && record.EventName != "MODIFY" {
			continue
		}

		image := record.Change.NewImage
		status := stringAttr(image, "ContractStatus")
		if status != contracts.StatusDraft && status != contracts.StatusApproved {
			logger.Debug("Skipping stream record with non-published status",
				zap.String("contractStatus", status),
			)
			continue
		}

		propertyID := stringAttr(image, "PropertyId")
		modified, err := time.Parse(time.RFC3339Nano, stringAttr(image, "ContractLastModifiedOn"))
		if err != nil {
			logger.Warn("Unparseable ContractLastModifiedOn in stream record, using now",
				zap.String("propertyId", propertyID),
				zap.Error(err),
			)
			modified = time.Now()
		}

		toPublish = append(toPublish, contracts.ContractStatusChangedEvent{
			PropertyID:             propertyID,
			ContractID:             stringAttr(image, "ContractId"),
			ContractStatus:         status,
			ContractLastModifiedOn: modified,
		})
	}

	if len(toPublish) == 0 {
		return nil
	}

	logger.Info("Publishing contract status changes from stream",
		zap.Int("count", len(toPublish)),
	)
	return container.EventPublisher.PublishBatch(ctx, toPublish)
}

// stringAttr reads a string attribute from a stream image, tolerating
// absent or non-string attributes.
func stringAttr(image map[string]events.DynamoDBAttributeValue, name string) string {
	av, ok := image[name]
	if !ok || av.DataType() != events.DataTypeString {
		return ""
	}
	return av.String()
}

func main() {
	lambda.Start(handler)
}
