package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Each role gets its own struct rather than one loosely-shaped record: the
// fields present differ per role, and the uniqueness constraint on email is
// scoped to the role's own collection.

// Admin is the platform operator account. Admins log in with an admin
// identifier instead of an email and are never subject to approval.
type Admin struct {
	AdminRecordID string `json:"id"`
	AdminID       string `json:"adminID"`
	PasswordHash  string `json:"-"`
	Name          string `json:"name"`
	AuditFields
}

// PersonalProfile holds the descriptive fields collected from owners and
// customers. None of them affect workflow state.
type PersonalProfile struct {
	DateOfBirth  *time.Time      `json:"dob,omitempty"`
	Occupation   string          `json:"occupation,omitempty"`
	AnnualIncome decimal.Decimal `json:"annualIncome"`
	Address      string          `json:"address,omitempty"`
	NationalID   string          `json:"-"`
}

// Owner lists properties and signs contracts as the selling/letting party.
// A new owner starts in ApprovalPending and cannot obtain a session until an
// admin approves the account.
type Owner struct {
	OwnerID      string         `json:"ownerID"`
	Email        string         `json:"email"`
	PasswordHash string         `json:"-"`
	Name         string         `json:"name"`
	Phone        string         `json:"phone,omitempty"`
	Status       ApprovalStatus `json:"status"`
	PersonalProfile
	// ListedPropertyIDs is append-only from the owner's perspective; entries
	// are written in the same transaction as the property itself.
	ListedPropertyIDs []string `json:"listedProperties,omitempty"`
	Version           int64    `json:"-"`
	AuditFields
}

// Realtor manages properties on behalf of owners and reviews customer
// applications. Subject to the same admin approval gate as owners.
type Realtor struct {
	RealtorID          string         `json:"realtorID"`
	Email              string         `json:"email"`
	PasswordHash       string         `json:"-"`
	Name               string         `json:"name"`
	Phone              string         `json:"phone,omitempty"`
	Status             ApprovalStatus `json:"status"`
	ManagedPropertyIDs []string       `json:"managedProperties,omitempty"`
	CustomerIDs        []string       `json:"customers,omitempty"`
	Version            int64          `json:"-"`
	AuditFields
}

// AuthProvider records how a customer account authenticates.
type AuthProvider string

const (
	AuthProviderLocal  AuthProvider = "local"
	AuthProviderGoogle AuthProvider = "google"
)

// Customer applies to properties and signs contracts as the buying/renting
// party. Customers are never gated on approval and receive a session
// immediately on registration.
type Customer struct {
	CustomerID   string       `json:"customerID"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	Name         string       `json:"name"`
	Phone        string       `json:"phone,omitempty"`
	AuthProvider AuthProvider `json:"-"`
	PersonalProfile
	AuditFields
}
