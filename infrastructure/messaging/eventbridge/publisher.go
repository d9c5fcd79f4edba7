// Package eventbridge publishes domain events to the shared bus.
package eventbridge

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"go.uber.org/zap"

	"unicorn-properties/application/ports"
	"unicorn-properties/domain/events"
	apperrors "unicorn-properties/pkg/errors"
)

// maxBatchSize is the PutEvents API limit.
const maxBatchSize = 10

// Publisher implements ports.EventPublisher on EventBridge.
type Publisher struct {
	client       *awseventbridge.Client
	eventBusName string
	source       string
	logger       *zap.Logger
}

var _ ports.EventPublisher = (*Publisher)(nil)

// NewPublisher creates an EventBridge publisher
func NewPublisher(client *awseventbridge.Client, eventBusName, source string, logger *zap.Logger) *Publisher {
	return &Publisher{
		client:       client,
		eventBusName: eventBusName,
		source:       source,
		logger:       logger,
	}
}

// Publish publishes a single domain event.
func (p *Publisher) Publish(ctx context.Context, event events.DomainEvent) error {
	return p.PublishBatch(ctx, []events.DomainEvent{event})
}

// PublishBatch publishes events in PutEvents batches. Any entry the bus
// rejects fails the whole call so the caller can retry.
func (p *Publisher) PublishBatch(ctx context.Context, domainEvents []events.DomainEvent) error {
	if len(domainEvents) == 0 {
		return nil
	}

	for start := 0; start < len(domainEvents); start += maxBatchSize {
		end := start + maxBatchSize
		if end > len(domainEvents) {
			end = len(domainEvents)
		}
		if err := p.publishChunk(ctx, domainEvents[start:end]); err != nil {
			return err
		}
	}
	return nil
}

func (p *Publisher) publishChunk(ctx context.Context, domainEvents []events.DomainEvent) error {
	entries := make([]types.PutEventsRequestEntry, 0, len(domainEvents))
	for _, event := range domainEvents {
		detail, err := json.Marshal(event)
		if err != nil {
			return apperrors.Wrap(err, "failed to marshal event "+event.EventType())
		}
		entries = append(entries, types.PutEventsRequestEntry{
			EventBusName: aws.String(p.eventBusName),
			Source:       aws.String(p.source),
			DetailType:   aws.String(event.EventType()),
			Detail:       aws.String(string(detail)),
			Resources:    event.Resources(),
			Time:         aws.Time(event.OccurredAt()),
		})
	}

	out, err := p.client.PutEvents(ctx, &awseventbridge.PutEventsInput{Entries: entries})
	if err != nil {
		p.logger.Error("PutEvents call failed",
			zap.Int("entries", len(entries)),
			zap.Error(err),
		)
		return apperrors.NewInternal("failed to publish events", err)
	}

	if out.FailedEntryCount > 0 {
		for i, entry := range out.Entries {
			if entry.ErrorCode != nil {
				p.logger.Error("Event entry rejected by bus",
					zap.String("detailType", domainEvents[i].EventType()),
					zap.String("errorCode", aws.ToString(entry.ErrorCode)),
					zap.String("errorMessage", aws.ToString(entry.ErrorMessage)),
				)
			}
		}
		return apperrors.NewInternal(
			fmt.Sprintf("%d of %d events failed to publish", out.FailedEntryCount, len(entries)), nil)
	}

	p.logger.Debug("Published events",
		zap.Int("count", len(entries)),
		zap.String("eventBus", p.eventBusName),
	)
	return nil
}
