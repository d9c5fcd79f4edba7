package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"unicorn-properties/domain/approvals"
	"unicorn-properties/domain/contracts"
	"unicorn-properties/domain/events"
	"unicorn-properties/domain/properties"
)

// MockContractRepository is a mock implementation of ports.ContractRepository
type MockContractRepository struct {
	mock.Mock
}

func (m *MockContractRepository) Create(ctx context.Context, c *contracts.Contract) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContractRepository) Get(ctx context.Context, propertyID string) (*contracts.Contract, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contracts.Contract), args.Error(1)
}

func (m *MockContractRepository) Save(ctx context.Context, c *contracts.Contract) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

// MockContractStatusRepository is a mock implementation of ports.ContractStatusRepository
type MockContractStatusRepository struct {
	mock.Mock
}

func (m *MockContractStatusRepository) Get(ctx context.Context, propertyID string) (*approvals.ContractStatusItem, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*approvals.ContractStatusItem), args.Error(1)
}

func (m *MockContractStatusRepository) Put(ctx context.Context, item *approvals.ContractStatusItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockContractStatusRepository) ClearWaitToken(ctx context.Context, propertyID, token string) error {
	args := m.Called(ctx, propertyID, token)
	return args.Error(0)
}

// MockPropertyRepository is a mock implementation of ports.PropertyRepository
type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) Query(ctx context.Context, pk, skPrefix string) ([]properties.PropertyRecord, error) {
	args := m.Called(ctx, pk, skPrefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]properties.PropertyRecord), args.Error(1)
}

func (m *MockPropertyRepository) QueryApproved(ctx context.Context, pk, skPrefix string) ([]properties.PropertyRecord, error) {
	args := m.Called(ctx, pk, skPrefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]properties.PropertyRecord), args.Error(1)
}

func (m *MockPropertyRepository) Get(ctx context.Context, pk, sk string) (*properties.PropertyRecord, error) {
	args := m.Called(ctx, pk, sk)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*properties.PropertyRecord), args.Error(1)
}

func (m *MockPropertyRepository) SetStatus(ctx context.Context, pk, sk, status, prevStatus string) error {
	args := m.Called(ctx, pk, sk, status, prevStatus)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of ports.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event events.DomainEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventPublisher) PublishBatch(ctx context.Context, batch []events.DomainEvent) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}

// MockWorkflowCallback is a mock implementation of ports.WorkflowCallback
type MockWorkflowCallback struct {
	mock.Mock
}

func (m *MockWorkflowCallback) ResumeSuccess(ctx context.Context, token string, output []byte) error {
	args := m.Called(ctx, token, output)
	return args.Error(0)
}
