package dto

import (
	"github.com/shopspring/decimal"

	"github.com/EstateDesk/estate_management_app/internal/core/domain"
)

// CreatePropertyRequest defines the payload for listing a new property.
type CreatePropertyRequest struct {
	Name      string              `json:"name" binding:"required"`
	Type      domain.PropertyType `json:"type" binding:"required,oneof=apartment house plot"`
	Price     decimal.Decimal     `json:"price" binding:"required"`
	Area      float64             `json:"area"`
	Bedrooms  int                 `json:"bedrooms"`
	Location  string              `json:"location"`
	ImageRefs []string            `json:"images"`
	// RealtorID optionally assigns a realtor at creation time.
	RealtorID string `json:"realtorID"`
}

// AssignRealtorRequest sets the assigned realtor on an existing listing.
type AssignRealtorRequest struct {
	RealtorID string `json:"realtorID" binding:"required"`
}
