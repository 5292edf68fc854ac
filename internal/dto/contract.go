package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/EstateDesk/estate_management_app/internal/core/domain"
)

// LoanDetailsRequest is the optional financing sub-record on contract creation.
type LoanDetailsRequest struct {
	Amount       decimal.Decimal `json:"amount"`
	Provider     string          `json:"provider"`
	InterestRate decimal.Decimal `json:"interestRate"`
	ApprovalDate *time.Time      `json:"approvalDate"`
	Status       string          `json:"status"`
}

// CreateContractRequest defines the payload for drafting a contract from an
// approved application. Party and property references are copied from the
// application chain, never taken from the request.
type CreateContractRequest struct {
	ApplicationID string              `json:"applicationID" binding:"required"`
	Type          domain.ContractType `json:"type" binding:"required,oneof=sale rental"`
	StartDate     *time.Time          `json:"startDate"`
	EndDate       *time.Time          `json:"endDate"`
	ClosingDate   *time.Time          `json:"closingDate"`
	SalePrice     decimal.Decimal     `json:"salePrice"`
	DepositAmount decimal.Decimal     `json:"depositAmount"`
	PaymentTerms  string              `json:"paymentTerms"`
	Loan          *LoanDetailsRequest `json:"loanDetails"`
}

// SignContractRequest carries the signing party's signature artifact reference.
type SignContractRequest struct {
	Signature string `json:"signature" binding:"required"`
}
