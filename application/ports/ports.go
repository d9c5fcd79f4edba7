// Package ports defines the capability interfaces the application
// services depend on. Infrastructure packages provide the production
// implementations; tests substitute mocks.
package ports

import (
	"context"

	"unicorn-properties/domain/approvals"
	"unicorn-properties/domain/contracts"
	"unicorn-properties/domain/events"
	"unicorn-properties/domain/properties"
)

// ContractRepository persists contracts keyed by property id.
type ContractRepository interface {
	// Create stores a new contract guarded by a conditional write:
	// it succeeds only when no contract exists for the property or the
	// existing one is in a terminal status. A rejected precondition is
	// reported as a Conflict error.
	Create(ctx context.Context, c *contracts.Contract) error

	// Get loads a contract, returning a NotFound error when absent.
	Get(ctx context.Context, propertyID string) (*contracts.Contract, error)

	// Save stores a contract unconditionally.
	Save(ctx context.Context, c *contracts.Contract) error
}

// ContractStatusRepository persists the Properties-domain contract
// status mirror.
type ContractStatusRepository interface {
	// Get loads the status item, returning a NotFound error when absent.
	Get(ctx context.Context, propertyID string) (*approvals.ContractStatusItem, error)

	// Put upserts the status item.
	Put(ctx context.Context, item *approvals.ContractStatusItem) error

	// ClearWaitToken removes the wait token from the status item, but
	// only while the stored token still equals the given one. A lost
	// race is reported as a Conflict error.
	ClearWaitToken(ctx context.Context, propertyID, token string) error
}

// PropertyRepository persists property listing records.
type PropertyRepository interface {
	// Query returns records under the partition key, optionally
	// restricted to a sort-key prefix.
	Query(ctx context.Context, pk, skPrefix string) ([]properties.PropertyRecord, error)

	// QueryApproved is Query filtered to Status == APPROVED.
	QueryApproved(ctx context.Context, pk, skPrefix string) ([]properties.PropertyRecord, error)

	// Get loads a single record, returning a NotFound error when absent.
	Get(ctx context.Context, pk, sk string) (*properties.PropertyRecord, error)

	// SetStatus transitions a record's status with an optimistic guard
	// on the previously observed status. A lost race is reported as a
	// Conflict error.
	SetStatus(ctx context.Context, pk, sk, status, prevStatus string) error
}

// EventPublisher publishes domain events to the shared bus.
type EventPublisher interface {
	Publish(ctx context.Context, event events.DomainEvent) error
	PublishBatch(ctx context.Context, events []events.DomainEvent) error
}

// WorkflowCallback resumes paused workflow executions.
type WorkflowCallback interface {
	// ResumeSuccess redeems a task token, delivering output as the
	// task result.
	ResumeSuccess(ctx context.Context, token string, output []byte) error
}
