// Package properties holds the web-facing property listing records and
// the canonical key derivation scheme for the properties table.
package properties

// Property publication status values.
const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusDeclined = "DECLINED"
)

// Content integrity verdicts for a listing under evaluation.
const (
	ValidationPass = "PASS"
	ValidationFail = "FAIL"
)

// PropertyRecord is a property listing as stored in the properties
// table. PK/SK are derived from the address fields; see keys.go for the
// derivation scheme.
type PropertyRecord struct {
	PK             string   `json:"PK" dynamodbav:"PK"`
	SK             string   `json:"SK" dynamodbav:"SK"`
	Country        string   `json:"Country" dynamodbav:"Country"`
	City           string   `json:"City" dynamodbav:"City"`
	Street         string   `json:"Street" dynamodbav:"Street"`
	PropertyNumber string   `json:"Number" dynamodbav:"Number"`
	Description    string   `json:"Description" dynamodbav:"Description"`
	Contract       string   `json:"Contract" dynamodbav:"Contract"`
	ListPrice      float64  `json:"ListPrice" dynamodbav:"ListPrice"`
	Currency       string   `json:"Currency" dynamodbav:"Currency"`
	Images         []string `json:"Images" dynamodbav:"Images"`
	Status         string   `json:"Status" dynamodbav:"Status"`
}

// EnsureKeys fills PK/SK from the address fields when unset.
func (p *PropertyRecord) EnsureKeys() {
	if p.PK == "" {
		p.PK = PartitionKey(p.Country, p.City)
	}
	if p.SK == "" {
		p.SK = SortKey(p.Street, p.PropertyNumber)
	}
}

// PropertyDto is the public projection of a PropertyRecord returned by
// the search surface. It drops the internal PK/SK attributes.
type PropertyDto struct {
	Country        string   `json:"Country"`
	City           string   `json:"City"`
	Street         string   `json:"Street"`
	PropertyNumber string   `json:"Number"`
	Description    string   `json:"Description"`
	Contract       string   `json:"Contract"`
	ListPrice      float64  `json:"ListPrice"`
	Currency       string   `json:"Currency"`
	Images         []string `json:"Images"`
	Status         string   `json:"Status"`
}

// ToDto projects a record to its public DTO.
func ToDto(p PropertyRecord) PropertyDto {
	return PropertyDto{
		Country:        p.Country,
		City:           p.City,
		Street:         p.Street,
		PropertyNumber: p.PropertyNumber,
		Description:    p.Description,
		Contract:       p.Contract,
		ListPrice:      p.ListPrice,
		Currency:       p.Currency,
		Images:         p.Images,
		Status:         p.Status,
	}
}
