package services

import (
	"context"

	"go.uber.org/zap"

	"unicorn-properties/application/ports"
	apperrors "unicorn-properties/pkg/errors"
)

// WaitRegistrar parks a workflow task token on the mirrored contract
// status item so the approval sync can redeem it once the contract is
// approved.
type WaitRegistrar struct {
	statusRepo ports.ContractStatusRepository
	logger     *zap.Logger
}

// NewWaitRegistrar creates a wait registrar
func NewWaitRegistrar(statusRepo ports.ContractStatusRepository, logger *zap.Logger) *WaitRegistrar {
	return &WaitRegistrar{
		statusRepo: statusRepo,
		logger:     logger,
	}
}

// RegisterWait attaches the task token to the property's status item.
// The workflow must not reach this step before a contract exists, so a
// missing item is an error, not a retryable condition.
func (r *WaitRegistrar) RegisterWait(ctx context.Context, propertyID, taskToken string) error {
	if propertyID == "" {
		return apperrors.NewValidation("property id is required")
	}
	if taskToken == "" {
		return apperrors.NewValidation("task token is required")
	}

	item, err := r.statusRepo.Get(ctx, propertyID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NewNotFound("no contract status found for property " + propertyID)
		}
		return err
	}

	item.SfnWaitApprovedTaskToken = taskToken

	r.logger.Info("Registering approval wait",
		zap.String("propertyId", propertyID),
		zap.String("contractStatus", item.ContractStatus),
	)

	return r.statusRepo.Put(ctx, item)
}
