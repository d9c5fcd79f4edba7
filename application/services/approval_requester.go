package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"unicorn-properties/application/ports"
	"unicorn-properties/domain/properties"
	apperrors "unicorn-properties/pkg/errors"
	"unicorn-properties/pkg/observability"
	"unicorn-properties/pkg/validation"
)

// ApprovalRequester starts the publication approval flow for a property
// listing. The approval request event is published before the listing
// transitions to PENDING, so a failed publish leaves the listing
// untouched.
type ApprovalRequester struct {
	propertyRepo ports.PropertyRepository
	publisher    ports.EventPublisher
	metrics      *observability.Metrics
	logger       *zap.Logger
}

// NewApprovalRequester creates an approval requester
func NewApprovalRequester(
	propertyRepo ports.PropertyRepository,
	publisher ports.EventPublisher,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *ApprovalRequester {
	return &ApprovalRequester{
		propertyRepo: propertyRepo,
		publisher:    publisher,
		metrics:      metrics,
		logger:       logger,
	}
}

// RequestApproval validates the property id, loads the listing and
// publishes a PublicationApprovalRequested event. A listing that is
// already APPROVED is rejected with a Conflict error and nothing is
// published or written.
func (s *ApprovalRequester) RequestApproval(ctx context.Context, req *RequestApprovalRequest) error {
	if err := validation.ValidateStruct(req); err != nil {
		return apperrors.NewValidation(err.Error())
	}

	country, city, street, number, err := properties.ParsePropertyID(req.PropertyID)
	if err != nil {
		return err
	}

	pk := properties.PartitionKey(country, city)
	sk := properties.SortKey(street, number)

	records, err := s.propertyRepo.Query(ctx, pk, sk)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return apperrors.NewNotFound("no property found for " + req.PropertyID)
	}

	record := records[0]
	record.EnsureKeys()
	if strings.EqualFold(record.Status, properties.StatusApproved) {
		s.logger.Warn("Property already approved, ignoring approval request",
			zap.String("propertyId", req.PropertyID),
		)
		return apperrors.NewConflict("property is already approved for publication")
	}

	prevStatus := record.Status
	record.Status = properties.StatusPending

	event := properties.NewRequestApprovalEvent(req.PropertyID, record)
	if err := s.publisher.Publish(ctx, event); err != nil {
		return apperrors.Wrap(err, "failed to publish approval request")
	}

	if err := s.propertyRepo.SetStatus(ctx, record.PK, record.SK, properties.StatusPending, prevStatus); err != nil {
		return err
	}

	s.logger.Info("Publication approval requested",
		zap.String("propertyId", req.PropertyID),
	)
	s.metrics.AddCount(ctx, observability.MetricApprovalsRequested, 1)
	return nil
}
