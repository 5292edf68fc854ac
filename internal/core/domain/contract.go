package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContractType distinguishes sale from rental contracts. Only sale contracts
// flip the property to sold on execution.
type ContractType string

const (
	ContractSale   ContractType = "sale"
	ContractRental ContractType = "rental"
)

// Valid reports whether t is a known contract type.
func (t ContractType) Valid() bool {
	return t == ContractSale || t == ContractRental
}

// ContractStatus is the two-party signature state machine:
//
//	drafted -> owner_signed    -> executed
//	drafted -> customer_signed -> executed
//	any non-terminal state     -> rejected_by_owner | rejected_by_customer
//
// executed and both rejected variants are absorbing.
type ContractStatus string

const (
	ContractDrafted            ContractStatus = "drafted"
	ContractOwnerSigned        ContractStatus = "owner_signed"
	ContractCustomerSigned     ContractStatus = "customer_signed"
	ContractExecuted           ContractStatus = "executed"
	ContractRejectedByOwner    ContractStatus = "rejected_by_owner"
	ContractRejectedByCustomer ContractStatus = "rejected_by_customer"
)

// Terminal reports whether no further mutation of the contract is permitted.
func (s ContractStatus) Terminal() bool {
	switch s {
	case ContractExecuted, ContractRejectedByOwner, ContractRejectedByCustomer:
		return true
	}
	return false
}

// LoanDetails is the optional financing sub-record on a contract.
type LoanDetails struct {
	Amount       decimal.Decimal `json:"amount"`
	Provider     string          `json:"provider,omitempty"`
	InterestRate decimal.Decimal `json:"interestRate"`
	ApprovalDate *time.Time      `json:"approvalDate,omitempty"`
	Status       string          `json:"status,omitempty"`
}

// Signatures holds the two parties' signature artifact references. An empty
// string marks an unsigned slot. Re-signing by the same party before the
// contract is terminal overwrites the slot (intentional idempotent
// re-signature, last write wins).
type Signatures struct {
	Owner    string `json:"owner,omitempty"`
	Customer string `json:"customer,omitempty"`
}

// BothPresent reports whether both parties have signed.
func (s Signatures) BothPresent() bool {
	return s.Owner != "" && s.Customer != ""
}

// Contract is drafted by a realtor from an approved application and executes
// only once both parties have signed and neither has rejected.
type Contract struct {
	ContractID    string          `json:"contractID"`
	Type          ContractType    `json:"type"`
	Status        ContractStatus  `json:"status"`
	ContractDate  time.Time       `json:"contractDate"`
	StartDate     *time.Time      `json:"startDate,omitempty"`
	EndDate       *time.Time      `json:"endDate,omitempty"`
	ClosingDate   *time.Time      `json:"closingDate,omitempty"`
	SalePrice     decimal.Decimal `json:"salePrice"`
	DepositAmount decimal.Decimal `json:"depositAmount"`
	PaymentTerms  string          `json:"paymentTerms,omitempty"`
	Loan          *LoanDetails    `json:"loanDetails,omitempty"`
	OwnerID       string          `json:"ownerID"`
	CustomerID    string          `json:"customerID"`
	RealtorID     string          `json:"realtorID,omitempty"`
	PropertyID    string          `json:"propertyID"`
	Signatures    Signatures      `json:"signatures"`
	Version       int64           `json:"-"`
	AuditFields
}
