package properties

import (
	"time"

	"unicorn-properties/domain/events"
)

// RequestApprovalEventAddress is the denormalized address carried on an
// approval request event.
type RequestApprovalEventAddress struct {
	Country string `json:"Country"`
	City    string `json:"City"`
	Street  string `json:"Street"`
	Number  string `json:"Number"`
}

// RequestApprovalEvent asks the evaluation pipeline to review a
// property listing for publication.
type RequestApprovalEvent struct {
	PropertyID  string                      `json:"PropertyId"`
	Status      string                      `json:"Status"`
	Description string                      `json:"Description"`
	Address     RequestApprovalEventAddress `json:"Address"`
	Images      []string                    `json:"Images"`

	requestedAt time.Time
}

// NewRequestApprovalEvent builds the approval request for a property
// record about to enter PENDING.
func NewRequestApprovalEvent(propertyID string, p PropertyRecord) RequestApprovalEvent {
	return RequestApprovalEvent{
		PropertyID:  propertyID,
		Status:      p.Status,
		Description: p.Description,
		Images:      p.Images,
		Address: RequestApprovalEventAddress{
			Country: p.Country,
			City:    p.City,
			Street:  p.Street,
			Number:  p.PropertyNumber,
		},
		requestedAt: time.Now(),
	}
}

// EventType returns the EventBridge detail-type
func (e RequestApprovalEvent) EventType() string {
	return events.DetailTypePublicationApprovalRequested
}

// Resources lists the property the event relates to
func (e RequestApprovalEvent) Resources() []string {
	return []string{e.PropertyID}
}

// OccurredAt returns the event timestamp
func (e RequestApprovalEvent) OccurredAt() time.Time {
	return e.requestedAt
}

// PublicationEvaluationCompletedEvent carries the outcome of the
// content evaluation pipeline for a property.
type PublicationEvaluationCompletedEvent struct {
	PropertyID       string `json:"PropertyId"`
	EvaluationResult string `json:"EvaluationResult"`
}
