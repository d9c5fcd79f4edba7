package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"unicorn-properties/application/ports"
	"unicorn-properties/domain/contracts"
	apperrors "unicorn-properties/pkg/errors"
	"unicorn-properties/pkg/observability"
	"unicorn-properties/pkg/validation"
)

// ContractService is the single write path for contracts. Every
// successful mutation publishes a ContractStatusChanged event through
// the injected publisher.
type ContractService struct {
	contractRepo ports.ContractRepository
	publisher    ports.EventPublisher
	metrics      *observability.Metrics
	logger       *zap.Logger
}

// NewContractService creates a contract service
func NewContractService(
	contractRepo ports.ContractRepository,
	publisher ports.EventPublisher,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *ContractService {
	return &ContractService{
		contractRepo: contractRepo,
		publisher:    publisher,
		metrics:      metrics,
		logger:       logger,
	}
}

// CreateContract stores a new DRAFT contract for a property. The write
// is rejected with a Conflict error when a non-terminal contract
// already exists for the property; nothing is published in that case.
func (s *ContractService) CreateContract(ctx context.Context, req *CreateContractRequest) (*contracts.Contract, error) {
	if err := validation.ValidateStruct(req); err != nil {
		return nil, apperrors.NewValidation(err.Error())
	}

	now := time.Now()
	contract := &contracts.Contract{
		PropertyID:             req.PropertyID,
		ContractID:             uuid.New().String(),
		ContractStatus:         contracts.StatusDraft,
		ContractCreated:        now,
		ContractLastModifiedOn: now,
		Address:                req.Address.toDomain(),
		SellerName:             req.SellerName,
	}

	s.logger.Info("Creating new contract",
		zap.String("propertyId", contract.PropertyID),
		zap.String("contractId", contract.ContractID),
	)

	if err := s.contractRepo.Create(ctx, contract); err != nil {
		if apperrors.IsConflict(err) {
			s.logger.Warn("Contract create rejected, active contract exists",
				zap.String("propertyId", contract.PropertyID),
			)
		}
		return nil, err
	}

	if err := s.publishStatusChanged(ctx, contract); err != nil {
		return nil, err
	}

	s.metrics.AddCount(ctx, observability.MetricNewContracts, 1)
	return contract, nil
}

// UpdateContract approves the contract for a property and refreshes its
// last-modified timestamp. Returns a NotFound error when no contract
// exists.
func (s *ContractService) UpdateContract(ctx context.Context, req *UpdateContractRequest) (*contracts.Contract, error) {
	if err := validation.ValidateStruct(req); err != nil {
		return nil, apperrors.NewValidation(err.Error())
	}

	contract, err := s.contractRepo.Get(ctx, req.PropertyID)
	if err != nil {
		return nil, err
	}

	contract.ContractStatus = contracts.StatusApproved
	contract.ContractLastModifiedOn = time.Now()

	s.logger.Info("Approving contract",
		zap.String("propertyId", contract.PropertyID),
		zap.String("contractId", contract.ContractID),
	)

	if err := s.contractRepo.Save(ctx, contract); err != nil {
		return nil, err
	}

	if err := s.publishStatusChanged(ctx, contract); err != nil {
		return nil, err
	}

	return contract, nil
}

func (s *ContractService) publishStatusChanged(ctx context.Context, contract *contracts.Contract) error {
	event := contracts.NewContractStatusChangedEvent(contract)
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("Failed to publish ContractStatusChanged",
			zap.String("propertyId", contract.PropertyID),
			zap.Error(err),
		)
		return apperrors.Wrap(err, "failed to publish contract status change")
	}
	return nil
}
