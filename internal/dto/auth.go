package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterOwnerRequest defines the payload for owner self-registration.
// Owners carry the full personal profile; none of it affects workflow state.
type RegisterOwnerRequest struct {
	Name         string          `json:"name" binding:"required"`
	Email        string          `json:"email" binding:"required,email"`
	Password     string          `json:"password" binding:"required,min=8"`
	Phone        string          `json:"phone"`
	DateOfBirth  *time.Time      `json:"dob"`
	Occupation   string          `json:"occupation"`
	AnnualIncome decimal.Decimal `json:"annualIncome"`
	Address      string          `json:"address"`
	NationalID   string          `json:"nationalID"`
}

// RegisterRealtorRequest defines the payload for realtor self-registration.
type RegisterRealtorRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Phone    string `json:"phone"`
}

// RegisterCustomerRequest defines the payload for customer self-registration.
type RegisterCustomerRequest struct {
	Name         string          `json:"name" binding:"required"`
	Email        string          `json:"email" binding:"required,email"`
	Password     string          `json:"password" binding:"required,min=8"`
	Phone        string          `json:"phone"`
	DateOfBirth  *time.Time      `json:"dob"`
	Occupation   string          `json:"occupation"`
	AnnualIncome decimal.Decimal `json:"annualIncome"`
	Address      string          `json:"address"`
	NationalID   string          `json:"nationalID"`
}

// LoginRequest is the credential payload for owner/realtor/customer login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminLoginRequest is the credential payload for admin login. Admins use an
// admin identifier instead of an email.
type AdminLoginRequest struct {
	AdminID  string `json:"adminID" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the session token issued after a successful
// credential check.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      any       `json:"user"`
}

// PendingRegistrationResponse is returned when an owner/realtor registers:
// the account exists but no token is issued until an admin approves it.
type PendingRegistrationResponse struct {
	Message string `json:"message"`
	User    any    `json:"user"`
}

// ExchangeCodeRequest is the body for the Google sign-in code exchange.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}
