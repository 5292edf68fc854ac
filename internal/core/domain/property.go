package domain

import "github.com/shopspring/decimal"

// PropertyType classifies a listing.
type PropertyType string

const (
	PropertyApartment PropertyType = "apartment"
	PropertyHouse     PropertyType = "house"
	PropertyPlot      PropertyType = "plot"
)

// Valid reports whether t is a known property type.
func (t PropertyType) Valid() bool {
	switch t {
	case PropertyApartment, PropertyHouse, PropertyPlot:
		return true
	}
	return false
}

// PropertyStatus is the market state of a listing. The only permitted
// transition is available -> sold, and it happens exclusively inside the same
// transaction that moves a sale contract to executed.
type PropertyStatus string

const (
	PropertyAvailable PropertyStatus = "available"
	PropertySold      PropertyStatus = "sold"
)

// Property is a listing created by an approved owner. The owning owner is
// immutable after creation; the assigned realtor may be set later by the owner.
type Property struct {
	PropertyID string          `json:"propertyID"`
	Name       string          `json:"name"`
	Type       PropertyType    `json:"type"`
	Status     PropertyStatus  `json:"status"`
	Price      decimal.Decimal `json:"price"`
	Area       float64         `json:"area,omitempty"`
	Bedrooms   int             `json:"bedrooms,omitempty"`
	Location   string          `json:"location,omitempty"`
	// ImageRefs holds opaque document-store references, never content.
	ImageRefs             []string `json:"images,omitempty"`
	OwnerID               string   `json:"ownerID"`
	RealtorID             string   `json:"realtorID,omitempty"`
	InterestedCustomerIDs []string `json:"interestedCustomers,omitempty"`
	Version               int64    `json:"-"`
	AuditFields
}
