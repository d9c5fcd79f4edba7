package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"unicorn-properties/application/ports"
	"unicorn-properties/domain/properties"
	"unicorn-properties/pkg/observability"
)

// EvaluationHandler applies the outcome of the publication approval
// workflow to the property listing.
type EvaluationHandler struct {
	propertyRepo ports.PropertyRepository
	metrics      *observability.Metrics
	logger       *zap.Logger
}

// NewEvaluationHandler creates an evaluation handler
func NewEvaluationHandler(
	propertyRepo ports.PropertyRepository,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *EvaluationHandler {
	return &EvaluationHandler{
		propertyRepo: propertyRepo,
		metrics:      metrics,
		logger:       logger,
	}
}

// HandleEvaluationCompleted maps the evaluation result onto the listing
// status. Results are matched case-insensitively; an unrecognized
// result is logged and dropped without touching the listing.
func (s *EvaluationHandler) HandleEvaluationCompleted(ctx context.Context, event *properties.PublicationEvaluationCompletedEvent) error {
	country, city, street, number, err := properties.ParsePropertyID(event.PropertyID)
	if err != nil {
		return err
	}

	pk := properties.PartitionKey(country, city)
	sk := properties.SortKey(street, number)

	record, err := s.propertyRepo.Get(ctx, pk, sk)
	if err != nil {
		return err
	}

	var status string
	switch {
	case strings.EqualFold(event.EvaluationResult, properties.StatusApproved):
		status = properties.StatusApproved
	case strings.EqualFold(event.EvaluationResult, properties.StatusDeclined):
		status = properties.StatusDeclined
	default:
		s.logger.Warn("Unrecognized evaluation result, no action taken",
			zap.String("propertyId", event.PropertyID),
			zap.String("evaluationResult", event.EvaluationResult),
		)
		return nil
	}

	if err := s.propertyRepo.SetStatus(ctx, pk, sk, status, record.Status); err != nil {
		return err
	}

	s.logger.Info("Publication evaluation applied",
		zap.String("propertyId", event.PropertyID),
		zap.String("status", status),
	)

	if status == properties.StatusApproved {
		s.metrics.AddCount(ctx, observability.MetricPropertiesApproved, 1)
	}
	return nil
}
