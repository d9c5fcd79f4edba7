// Package approvals holds the Properties-domain mirror of contract
// status, including the workflow wait token used to resume paused
// approval executions.
package approvals

import (
	"time"

	"unicorn-properties/domain/contracts"
)

// ContractStatusItem mirrors a contract's status for the Properties
// domain. SfnWaitApprovedTaskToken holds an opaque workflow callback
// handle while an approval execution is paused; it is cleared once the
// callback has been delivered.
type ContractStatusItem struct {
	PropertyID               string    `json:"PropertyId" dynamodbav:"PropertyId"`
	ContractID               string    `json:"ContractId" dynamodbav:"ContractId"`
	ContractStatus           string    `json:"ContractStatus" dynamodbav:"ContractStatus"`
	ContractLastModifiedOn   time.Time `json:"ContractLastModifiedOn" dynamodbav:"ContractLastModifiedOn"`
	SfnWaitApprovedTaskToken string    `json:"SfnWaitApprovedTaskToken,omitempty" dynamodbav:"SfnWaitApprovedTaskToken,omitempty"`
}

// HasWaitToken reports whether a workflow execution is waiting on this item.
func (i *ContractStatusItem) HasWaitToken() bool {
	return i.SfnWaitApprovedTaskToken != ""
}

// ContractApproved reports whether the mirrored contract is APPROVED.
func (i *ContractStatusItem) ContractApproved() bool {
	return i.ContractStatus == contracts.StatusApproved
}
