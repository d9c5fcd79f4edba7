package contracts

import (
	"time"

	"unicorn-properties/domain/events"
)

// ContractStatusChangedEvent is published on every successful contract
// mutation and consumed by the Properties domain to maintain its
// contract status mirror.
type ContractStatusChangedEvent struct {
	PropertyID             string    `json:"PropertyId"`
	ContractID             string    `json:"ContractId"`
	ContractStatus         string    `json:"ContractStatus"`
	ContractLastModifiedOn time.Time `json:"ContractLastModifiedOn"`
}

// NewContractStatusChangedEvent derives the event from a contract.
func NewContractStatusChangedEvent(c *Contract) ContractStatusChangedEvent {
	return ContractStatusChangedEvent{
		PropertyID:             c.PropertyID,
		ContractID:             c.ContractID,
		ContractStatus:         c.ContractStatus,
		ContractLastModifiedOn: c.ContractLastModifiedOn,
	}
}

// EventType returns the EventBridge detail-type
func (e ContractStatusChangedEvent) EventType() string {
	return events.DetailTypeContractStatusChanged
}

// Resources lists the property the event relates to
func (e ContractStatusChangedEvent) Resources() []string {
	return []string{e.PropertyID}
}

// OccurredAt returns the event timestamp
func (e ContractStatusChangedEvent) OccurredAt() time.Time {
	return e.ContractLastModifiedOn
}
