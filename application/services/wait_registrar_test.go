package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"unicorn-properties/domain/approvals"
	"unicorn-properties/domain/contracts"
	apperrors "unicorn-properties/pkg/errors"
)

func TestRegisterWait_AttachesToken(t *testing.T) {
	statusRepo := new(MockContractStatusRepository)
	registrar := NewWaitRegistrar(statusRepo, zap.NewNop())

	statusRepo.On("Get", mock.Anything, "usa/anytown/main-street/111").
		Return(&approvals.ContractStatusItem{
			PropertyID:     "usa/anytown/main-street/111",
			ContractStatus: contracts.StatusDraft,
		}, nil)
	statusRepo.On("Put", mock.Anything, mock.MatchedBy(func(item *approvals.ContractStatusItem) bool {
		return item.SfnWaitApprovedTaskToken == "token-abc"
	})).Return(nil)

	err := registrar.RegisterWait(context.Background(), "usa/anytown/main-street/111", "token-abc")

	assert.NoError(t, err)
	statusRepo.AssertExpectations(t)
}

func TestRegisterWait_MissingStatusItem(t *testing.T) {
	statusRepo := new(MockContractStatusRepository)
	registrar := NewWaitRegistrar(statusRepo, zap.NewNop())

	statusRepo.On("Get", mock.Anything, "usa/nowhere/main-street/1").
		Return(nil, apperrors.NewNotFound("absent"))

	err := registrar.RegisterWait(context.Background(), "usa/nowhere/main-street/1", "token-abc")

	assert.True(t, apperrors.IsNotFound(err))
	statusRepo.AssertNotCalled(t, "Put")
}

func TestRegisterWait_RejectsEmptyInput(t *testing.T) {
	registrar := NewWaitRegistrar(new(MockContractStatusRepository), zap.NewNop())

	assert.True(t, apperrors.IsValidation(
		registrar.RegisterWait(context.Background(), "", "token-abc")))
	assert.True(t, apperrors.IsValidation(
		registrar.RegisterWait(context.Background(), "usa/anytown/main-street/111", "")))
}
