package dto

import (
	"github.com/shopspring/decimal"

	"github.com/EstateDesk/estate_management_app/internal/core/domain"
)

// SubmitApplicationRequest defines the payload for a customer applying to a
// property. Document fields are opaque references into the document store;
// all four are required and their absence is reported by the service as a
// missing-documents error rather than a binding failure, so the API can name
// the exact problem.
type SubmitApplicationRequest struct {
	PropertyID       string                      `json:"propertyID" binding:"required"`
	FullName         string                      `json:"fullName" binding:"required"`
	Email            string                      `json:"email"`
	Phone            string                      `json:"phone"`
	NationalID       string                      `json:"nationalID"`
	EmployerName     string                      `json:"employerName"`
	EmploymentStatus string                      `json:"employmentStatus"`
	AnnualIncome     decimal.Decimal             `json:"annualIncome"`
	Documents        domain.ApplicationDocuments `json:"documents"`
}
