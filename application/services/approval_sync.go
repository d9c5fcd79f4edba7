package services

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"unicorn-properties/application/ports"
	apperrors "unicorn-properties/pkg/errors"
)

// ApprovalSyncer reacts to changes of mirrored status items. When an
// item holds both an APPROVED contract status and a wait token, the
// paused workflow is resumed and the token consumed.
type ApprovalSyncer struct {
	statusRepo ports.ContractStatusRepository
	workflow   ports.WorkflowCallback
	logger     *zap.Logger
}

// NewApprovalSyncer creates an approval syncer
func NewApprovalSyncer(
	statusRepo ports.ContractStatusRepository,
	workflow ports.WorkflowCallback,
	logger *zap.Logger,
) *ApprovalSyncer {
	return &ApprovalSyncer{
		statusRepo: statusRepo,
		workflow:   workflow,
		logger:     logger,
	}
}

// Sync re-reads the status item for the property and resumes the
// waiting workflow if the gate condition holds. Items without a token
// or without an approved contract are skipped without error. After a
// successful resume the token is cleared with a guarded write so a
// replayed invocation does not redeem it twice.
func (s *ApprovalSyncer) Sync(ctx context.Context, propertyID string) error {
	item, err := s.statusRepo.Get(ctx, propertyID)
	if err != nil {
		return err
	}

	if !item.HasWaitToken() {
		s.logger.Info("No workflow waiting for property, skipping",
			zap.String("propertyId", propertyID),
		)
		return nil
	}

	if !item.ContractApproved() {
		s.logger.Info("Contract not yet approved, workflow keeps waiting",
			zap.String("propertyId", propertyID),
			zap.String("contractStatus", item.ContractStatus),
		)
		return nil
	}

	output, err := json.Marshal(item)
	if err != nil {
		return apperrors.Wrap(err, "failed to serialize contract status item")
	}

	if err := s.workflow.ResumeSuccess(ctx, item.SfnWaitApprovedTaskToken, output); err != nil {
		return err
	}

	s.logger.Info("Resumed approval workflow",
		zap.String("propertyId", propertyID),
	)

	if err := s.statusRepo.ClearWaitToken(ctx, propertyID, item.SfnWaitApprovedTaskToken); err != nil {
		if apperrors.IsConflict(err) {
			s.logger.Warn("Wait token already consumed elsewhere",
				zap.String("propertyId", propertyID),
			)
			return nil
		}
		return err
	}

	return nil
}
