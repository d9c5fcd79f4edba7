package services

import (
	"context"

	"go.uber.org/zap"

	"unicorn-properties/application/ports"
	apperrors "unicorn-properties/pkg/errors"
)

// ContractChecker answers whether a contract exists for a property. The
// approval workflow calls it as a hard gate before evaluating content.
type ContractChecker struct {
	statusRepo ports.ContractStatusRepository
	logger     *zap.Logger
}

// NewContractChecker creates a contract checker
func NewContractChecker(statusRepo ports.ContractStatusRepository, logger *zap.Logger) *ContractChecker {
	return &ContractChecker{
		statusRepo: statusRepo,
		logger:     logger,
	}
}

// EnsureExists fails with a NotFound error when no contract status item
// exists for the property.
func (c *ContractChecker) EnsureExists(ctx context.Context, propertyID string) error {
	if propertyID == "" {
		return apperrors.NewValidation("property id is required")
	}

	item, err := c.statusRepo.Get(ctx, propertyID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NewNotFound("no contract found for property " + propertyID)
		}
		return err
	}

	c.logger.Info("Contract exists for property",
		zap.String("propertyId", propertyID),
		zap.String("contractStatus", item.ContractStatus),
	)
	return nil
}
