package repositories

import (
	"context"

	"github.com/EstateDesk/estate_management_app/internal/core/domain"
)

// AdminReader defines read operations for admin accounts.
type AdminReader interface {
	// FindAdminByAdminID retrieves an admin by their login identifier.
	FindAdminByAdminID(ctx context.Context, adminID string) (*domain.Admin, error)
}

// OwnerReader defines read operations for owner accounts.
type OwnerReader interface {
	FindOwnerByID(ctx context.Context, ownerID string) (*domain.Owner, error)
	FindOwnerByEmail(ctx context.Context, email string) (*domain.Owner, error)

	// ListOwners retrieves owners, optionally filtered by approval status.
	ListOwners(ctx context.Context, status *domain.ApprovalStatus) ([]domain.Owner, error)
}

// OwnerWriter defines write operations for owner accounts.
type OwnerWriter interface {
	// SaveOwner persists a new owner. Returns apperrors.ErrDuplicate when the
	// email is already registered in the owners collection.
	SaveOwner(ctx context.Context, owner domain.Owner) error

	// UpdateOwnerStatus applies an approval decision with a conditional update
	// keyed on the owner's current version. Returns apperrors.ErrConflict when
	// the version no longer matches.
	UpdateOwnerStatus(ctx context.Context, ownerID string, status domain.ApprovalStatus, expectedVersion int64) error

	// DeleteOwner removes an owner record. Administrative operation, not a
	// workflow transition.
	DeleteOwner(ctx context.Context, ownerID string) error
}

// RealtorReader defines read operations for realtor accounts.
type RealtorReader interface {
	FindRealtorByID(ctx context.Context, realtorID string) (*domain.Realtor, error)
	FindRealtorByEmail(ctx context.Context, email string) (*domain.Realtor, error)
	ListRealtors(ctx context.Context, status *domain.ApprovalStatus) ([]domain.Realtor, error)

	// ListRealtorCustomers retrieves the customers associated with a realtor
	// through reviewed applications.
	ListRealtorCustomers(ctx context.Context, realtorID string) ([]domain.Customer, error)
}

// RealtorWriter defines write operations for realtor accounts.
type RealtorWriter interface {
	SaveRealtor(ctx context.Context, realtor domain.Realtor) error
	UpdateRealtorStatus(ctx context.Context, realtorID string, status domain.ApprovalStatus, expectedVersion int64) error
	DeleteRealtor(ctx context.Context, realtorID string) error

	// AddRealtorCustomer records the realtor<->customer association. Idempotent.
	AddRealtorCustomer(ctx context.Context, realtorID, customerID string) error
}

// CustomerReader defines read operations for customer accounts.
type CustomerReader interface {
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	FindCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error)
}

// CustomerWriter defines write operations for customer accounts.
type CustomerWriter interface {
	SaveCustomer(ctx context.Context, customer domain.Customer) error
}

// StatsReader provides the aggregate counts shown on the admin dashboard.
type StatsReader interface {
	GetApprovalStats(ctx context.Context) (*domain.ApprovalStats, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AdminReader
	OwnerReader
	OwnerWriter
	RealtorReader
	RealtorWriter
	CustomerReader
	CustomerWriter
	StatsReader
}
