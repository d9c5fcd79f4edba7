package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"unicorn-properties/domain/contracts"
	apperrors "unicorn-properties/pkg/errors"
	"unicorn-properties/pkg/observability"
)

func newContractService(repo *MockContractRepository, publisher *MockEventPublisher) *ContractService {
	return NewContractService(repo, publisher, observability.NewMetrics("test", nil), zap.NewNop())
}

func TestCreateContract_Success(t *testing.T) {
	// Arrange
	repo := new(MockContractRepository)
	publisher := new(MockEventPublisher)
	service := newContractService(repo, publisher)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*contracts.Contract")).Return(nil)
	publisher.On("Publish", mock.Anything, mock.AnythingOfType("contracts.ContractStatusChangedEvent")).Return(nil)

	req := &CreateContractRequest{
		PropertyID: "usa/anytown/main-street/111",
		SellerName: "John Stiles",
		Address:    &AddressInput{Number: 111, Street: "Main Street", City: "Anytown"},
	}

	// Act
	contract, err := service.CreateContract(context.Background(), req)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "usa/anytown/main-street/111", contract.PropertyID)
	assert.Equal(t, contracts.StatusDraft, contract.ContractStatus)
	assert.NotEmpty(t, contract.ContractID)
	assert.Equal(t, contract.ContractCreated, contract.ContractLastModifiedOn)
	assert.Equal(t, "USA", contract.Address.Country)
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCreateContract_MissingPropertyID(t *testing.T) {
	repo := new(MockContractRepository)
	publisher := new(MockEventPublisher)
	service := newContractService(repo, publisher)

	_, err := service.CreateContract(context.Background(), &CreateContractRequest{})

	assert.True(t, apperrors.IsValidation(err))
	repo.AssertNotCalled(t, "Create")
	publisher.AssertNotCalled(t, "Publish")
}

func TestCreateContract_DuplicateRejectedWithoutPublish(t *testing.T) {
	repo := new(MockContractRepository)
	publisher := new(MockEventPublisher)
	service := newContractService(repo, publisher)

	repo.On("Create", mock.Anything, mock.Anything).
		Return(apperrors.NewConflict("an active contract already exists"))

	_, err := service.CreateContract(context.Background(), &CreateContractRequest{
		PropertyID: "usa/anytown/main-street/111",
	})

	assert.True(t, apperrors.IsConflict(err))
	publisher.AssertNotCalled(t, "Publish")
}

func TestCreateContract_PublishFailureSurfaces(t *testing.T) {
	repo := new(MockContractRepository)
	publisher := new(MockEventPublisher)
	service := newContractService(repo, publisher)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	publisher.On("Publish", mock.Anything, mock.Anything).
		Return(apperrors.NewInternal("bus unavailable", nil))

	_, err := service.CreateContract(context.Background(), &CreateContractRequest{
		PropertyID: "usa/anytown/main-street/111",
	})

	assert.Error(t, err)
	assert.True(t, apperrors.IsInternal(err))
}

func TestUpdateContract_ApprovesAndBumpsModified(t *testing.T) {
	repo := new(MockContractRepository)
	publisher := new(MockEventPublisher)
	service := newContractService(repo, publisher)

	created := time.Now().Add(-time.Hour)
	repo.On("Get", mock.Anything, "usa/anytown/main-street/111").Return(&contracts.Contract{
		PropertyID:             "usa/anytown/main-street/111",
		ContractID:             "25a238b6-3a8c-4ef2-9d0f-2599bbebbbb3",
		ContractStatus:         contracts.StatusDraft,
		ContractCreated:        created,
		ContractLastModifiedOn: created,
	}, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	contract, err := service.UpdateContract(context.Background(), &UpdateContractRequest{
		PropertyID: "usa/anytown/main-street/111",
	})

	assert.NoError(t, err)
	assert.Equal(t, contracts.StatusApproved, contract.ContractStatus)
	assert.True(t, contract.ContractLastModifiedOn.After(created))
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestUpdateContract_MissingContract(t *testing.T) {
	repo := new(MockContractRepository)
	publisher := new(MockEventPublisher)
	service := newContractService(repo, publisher)

	repo.On("Get", mock.Anything, "usa/nowhere/main-street/1").
		Return(nil, apperrors.NewNotFound("no contract found"))

	_, err := service.UpdateContract(context.Background(), &UpdateContractRequest{
		PropertyID: "usa/nowhere/main-street/1",
	})

	assert.True(t, apperrors.IsNotFound(err))
	repo.AssertNotCalled(t, "Save")
	publisher.AssertNotCalled(t, "Publish")
}
