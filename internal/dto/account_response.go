package dto

import (
	"github.com/EstateDesk/estate_management_app/internal/core/domain"
)

// AccountSummary is the public shape of an account returned by auth and admin
// endpoints. Credential and profile secrets never appear here.
type AccountSummary struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Email  string      `json:"email,omitempty"`
	Phone  string      `json:"phone,omitempty"`
	Role   domain.Role `json:"role"`
	Status string      `json:"status,omitempty"`
}

// ToOwnerSummary converts a domain.Owner to its public shape.
func ToOwnerSummary(o *domain.Owner) AccountSummary {
	return AccountSummary{
		ID:     o.OwnerID,
		Name:   o.Name,
		Email:  o.Email,
		Phone:  o.Phone,
		Role:   domain.RoleOwner,
		Status: string(o.Status),
	}
}

// ToRealtorSummary converts a domain.Realtor to its public shape.
func ToRealtorSummary(r *domain.Realtor) AccountSummary {
	return AccountSummary{
		ID:     r.RealtorID,
		Name:   r.Name,
		Email:  r.Email,
		Phone:  r.Phone,
		Role:   domain.RoleRealtor,
		Status: string(r.Status),
	}
}

// ToCustomerSummary converts a domain.Customer to its public shape.
func ToCustomerSummary(c *domain.Customer) AccountSummary {
	return AccountSummary{
		ID:    c.CustomerID,
		Name:  c.Name,
		Email: c.Email,
		Phone: c.Phone,
		Role:  domain.RoleCustomer,
	}
}

// ToAdminSummary converts a domain.Admin to its public shape.
func ToAdminSummary(a *domain.Admin) AccountSummary {
	return AccountSummary{
		ID:   a.AdminRecordID,
		Name: a.Name,
		Role: domain.RoleAdmin,
	}
}
