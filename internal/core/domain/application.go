package domain

import "github.com/shopspring/decimal"

// ApplicationStatus is the review state of a customer's application.
// pending is the only non-terminal state.
type ApplicationStatus string

const (
	ApplicationPending   ApplicationStatus = "pending"
	ApplicationApproved  ApplicationStatus = "approved"
	ApplicationRejected  ApplicationStatus = "rejected"
	ApplicationWithdrawn ApplicationStatus = "withdrawn"
)

// Active reports whether the application blocks the customer from re-applying
// to the same property. Rejected and withdrawn applications do not.
func (s ApplicationStatus) Active() bool {
	return s == ApplicationPending || s == ApplicationApproved
}

// Terminal reports whether no further transition is permitted.
func (s ApplicationStatus) Terminal() bool {
	return s != ApplicationPending
}

// ApplicationDocuments holds opaque references into the document store.
// All four are required at submission.
type ApplicationDocuments struct {
	EmploymentProof string `json:"proofOfEmployment"`
	GovernmentID    string `json:"governmentId"`
	AddressProof    string `json:"proofOfAddress"`
	BankStatement   string `json:"bankStatement"`
}

// Complete reports whether every required document reference is present.
func (d ApplicationDocuments) Complete() bool {
	return d.EmploymentProof != "" && d.GovernmentID != "" && d.AddressProof != "" && d.BankStatement != ""
}

// Application is a customer's rental/sale application against a property.
// At most one active application may exist per (customer, property) pair.
type Application struct {
	ApplicationID    string            `json:"applicationID"`
	CustomerID       string            `json:"customerID"`
	PropertyID       string            `json:"propertyID"`
	ReviewedBy       string            `json:"reviewedBy,omitempty"` // realtor id, set on decision
	FullName         string            `json:"fullName"`
	Email            string            `json:"email,omitempty"`
	Phone            string            `json:"phone,omitempty"`
	NationalID       string            `json:"-"`
	EmployerName     string            `json:"employerName,omitempty"`
	EmploymentStatus string            `json:"employmentStatus,omitempty"`
	AnnualIncome     decimal.Decimal   `json:"annualIncome"`
	Documents        ApplicationDocuments `json:"documents"`
	Status           ApplicationStatus `json:"status"`
	Version          int64             `json:"-"`
	AuditFields
}
