package services

import (
	"unicorn-properties/domain/contracts"
)

// AddressInput is the address shape accepted on contract creation.
type AddressInput struct {
	Number  int    `json:"number"`
	Street  string `json:"street"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// CreateContractRequest is the inbound payload for contract creation,
// accepted over both the HTTP and the queue surface.
type CreateContractRequest struct {
	PropertyID string        `json:"property_id" validate:"required"`
	SellerName string        `json:"seller_name"`
	Address    *AddressInput `json:"address"`
}

// UpdateContractRequest approves the contract for a property.
type UpdateContractRequest struct {
	PropertyID string `json:"property_id" validate:"required"`
}

// RequestApprovalRequest asks for a property listing to be evaluated
// for publication.
type RequestApprovalRequest struct {
	PropertyID string `json:"property_id" validate:"required"`
}

func (a *AddressInput) toDomain() *contracts.Address {
	if a == nil {
		return nil
	}
	country := a.Country
	if country == "" {
		country = "USA"
	}
	return &contracts.Address{
		Number:  a.Number,
		Street:  a.Street,
		City:    a.City,
		Country: country,
	}
}
