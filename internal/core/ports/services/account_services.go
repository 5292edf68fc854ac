package services

import (
	"context"

	"github.com/EstateDesk/estate_management_app/internal/core/domain"
	"github.com/EstateDesk/estate_management_app/internal/dto"
)

// RegistrationSvc defines account creation per role. Owner and realtor
// accounts come back with status pending and must not be issued a session;
// customers are usable immediately.
type RegistrationSvc interface {
	RegisterOwner(ctx context.Context, req dto.RegisterOwnerRequest) (*domain.Owner, error)
	RegisterRealtor(ctx context.Context, req dto.RegisterRealtorRequest) (*domain.Realtor, error)
	RegisterCustomer(ctx context.Context, req dto.RegisterCustomerRequest) (*domain.Customer, error)

	// GetOrCreateGoogleCustomer resolves a Google-authenticated email to a
	// customer account, creating one on first sign-in.
	GetOrCreateGoogleCustomer(ctx context.Context, email, name string) (*domain.Customer, error)
}

// AuthenticationSvc defines the credential checks per role. All variants
// return apperrors.ErrInvalidCredentials for unknown accounts and wrong
// passwords alike; owner/realtor variants return apperrors.ErrPendingApproval
// when the credentials are valid but the account is not approved.
type AuthenticationSvc interface {
	AuthenticateAdmin(ctx context.Context, adminID, password string) (*domain.Admin, error)
	AuthenticateOwner(ctx context.Context, email, password string) (*domain.Owner, error)
	AuthenticateRealtor(ctx context.Context, email, password string) (*domain.Realtor, error)
	AuthenticateCustomer(ctx context.Context, email, password string) (*domain.Customer, error)
}

// ApprovalSvc is the admin-driven account approval workflow.
type ApprovalSvc interface {
	// Decide sets an owner/realtor account to approved or rejected.
	// Re-applying the same outcome is an idempotent overwrite, not an error.
	Decide(ctx context.Context, role domain.Role, accountID string, outcome domain.ApprovalStatus) error
}

// AdminDirectorySvc provides the admin dashboard reads and administrative
// account removal (an external operation, not a workflow transition).
type AdminDirectorySvc interface {
	GetApprovalStats(ctx context.Context) (*domain.ApprovalStats, error)
	ListOwners(ctx context.Context, status *domain.ApprovalStatus) ([]domain.Owner, error)
	ListRealtors(ctx context.Context, status *domain.ApprovalStatus) ([]domain.Realtor, error)
	DeleteOwner(ctx context.Context, ownerID string) error
	DeleteRealtor(ctx context.Context, realtorID string) error
}

// RealtorDirectorySvc provides the realtor's view of their linked customers.
// A customer becomes linked when the realtor approves one of their applications.
type RealtorDirectorySvc interface {
	ListRealtorCustomers(ctx context.Context, realtorID string) ([]domain.Customer, error)
}

// AccountSvcFacade combines all account-related service interfaces.
type AccountSvcFacade interface {
	RegistrationSvc
	AuthenticationSvc
	ApprovalSvc
	AdminDirectorySvc
	RealtorDirectorySvc
}
