package services

import (
	"context"

	"go.uber.org/zap"

	"unicorn-properties/application/ports"
	"unicorn-properties/domain/approvals"
	"unicorn-properties/domain/contracts"
	apperrors "unicorn-properties/pkg/errors"
)

// StatusMirror maintains the Properties-domain copy of contract status.
// It applies ContractStatusChanged events while preserving any wait
// token already registered on the mirrored item.
type StatusMirror struct {
	statusRepo ports.ContractStatusRepository
	logger     *zap.Logger
}

// NewStatusMirror creates a status mirror
func NewStatusMirror(statusRepo ports.ContractStatusRepository, logger *zap.Logger) *StatusMirror {
	return &StatusMirror{
		statusRepo: statusRepo,
		logger:     logger,
	}
}

// Apply upserts the mirrored status item for the event's property.
// A token stored by a concurrently registered workflow survives the
// upsert.
func (m *StatusMirror) Apply(ctx context.Context, event *contracts.ContractStatusChangedEvent) error {
	if event.PropertyID == "" {
		return apperrors.NewValidation("event is missing PropertyId")
	}

	item := &approvals.ContractStatusItem{
		PropertyID:             event.PropertyID,
		ContractID:             event.ContractID,
		ContractStatus:         event.ContractStatus,
		ContractLastModifiedOn: event.ContractLastModifiedOn,
	}

	existing, err := m.statusRepo.Get(ctx, event.PropertyID)
	switch {
	case err == nil:
		item.SfnWaitApprovedTaskToken = existing.SfnWaitApprovedTaskToken
	case apperrors.IsNotFound(err):
		// first event for this property
	default:
		return err
	}

	m.logger.Info("Mirroring contract status",
		zap.String("propertyId", item.PropertyID),
		zap.String("contractStatus", item.ContractStatus),
		zap.Bool("hasWaitToken", item.HasWaitToken()),
	)

	return m.statusRepo.Put(ctx, item)
}
