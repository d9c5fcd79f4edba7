// Package events defines the event envelope contract shared by all
// publishers and consumers on the service event bus.
package events

import "time"

// Detail-type strings are part of the wire contract with external
// consumers and must not change.
const (
	DetailTypeContractStatusChanged          = "ContractStatusChanged"
	DetailTypePublicationApprovalRequested   = "PublicationApprovalRequested"
	DetailTypePublicationEvaluationCompleted = "PublicationEvaluationCompleted"
)

// DomainEvent is implemented by every event published to the bus.
// The event itself is serialized verbatim as the EventBridge detail.
type DomainEvent interface {
	// EventType returns the EventBridge detail-type
	EventType() string

	// Resources lists the entity identifiers the event relates to
	Resources() []string

	// OccurredAt returns the event timestamp
	OccurredAt() time.Time
}
