// Package contracts holds the Contract entity owned by the Contracts
// service and its status lifecycle.
package contracts

import "time"

// Contract status values stored in the contracts table.
const (
	StatusDraft     = "DRAFT"
	StatusApproved  = "APPROVED"
	StatusCancelled = "CANCELLED"
	StatusClosed    = "CLOSED"
	StatusExpired   = "EXPIRED"
)

// TerminalStatuses are the statuses that allow a contract to be replaced
// by a new one for the same property.
var TerminalStatuses = []string{StatusCancelled, StatusClosed, StatusExpired}

// IsTerminal reports whether a contract status allows re-creation.
func IsTerminal(status string) bool {
	for _, s := range TerminalStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Address is the denormalized property address carried on a contract.
type Address struct {
	Number  int    `json:"Number" dynamodbav:"Number"`
	Street  string `json:"Street" dynamodbav:"Street"`
	City    string `json:"City" dynamodbav:"City"`
	Country string `json:"Country" dynamodbav:"Country"`
}

// Contract represents a property sales contract, keyed by PropertyID.
// Contracts are never deleted; terminal statuses are retained.
type Contract struct {
	PropertyID             string    `json:"PropertyId" dynamodbav:"PropertyId"`
	ContractID             string    `json:"ContractId" dynamodbav:"ContractId"`
	ContractStatus         string    `json:"ContractStatus" dynamodbav:"ContractStatus"`
	ContractCreated        time.Time `json:"ContractCreated" dynamodbav:"ContractCreated"`
	ContractLastModifiedOn time.Time `json:"ContractLastModifiedOn" dynamodbav:"ContractLastModifiedOn"`
	Address                *Address  `json:"Address,omitempty" dynamodbav:"Address,omitempty"`
	SellerName             string    `json:"SellerName,omitempty" dynamodbav:"SellerName,omitempty"`
}
