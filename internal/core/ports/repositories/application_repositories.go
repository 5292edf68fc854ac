package repositories

import (
	"context"

	"github.com/EstateDesk/estate_management_app/internal/core/domain"
)

// ApplicationReader defines read operations for applications.
type ApplicationReader interface {
	FindApplicationByID(ctx context.Context, applicationID string) (*domain.Application, error)

	// HasActiveApplication reports whether the customer already has a pending
	// or approved application for the property.
	HasActiveApplication(ctx context.Context, customerID, propertyID string) (bool, error)

	ListApplicationsByCustomer(ctx context.Context, customerID string) ([]domain.Application, error)
	ListApplicationsByProperty(ctx context.Context, propertyID string) ([]domain.Application, error)

	// ListApplicationsByRealtor retrieves applications against properties the
	// realtor is assigned to.
	ListApplicationsByRealtor(ctx context.Context, realtorID string) ([]domain.Application, error)
}

// ApplicationWriter defines write operations for applications.
type ApplicationWriter interface {
	// SaveApplication persists a new application. The uniqueness of active
	// applications per (customer, property) is also enforced by a partial
	// unique index; a violation surfaces as apperrors.ErrDuplicateApplication.
	SaveApplication(ctx context.Context, application domain.Application) error

	// UpdateApplicationStatus transitions an application with a conditional
	// update keyed on its current version. reviewedBy is recorded when set.
	// Returns apperrors.ErrConflict when the version no longer matches.
	UpdateApplicationStatus(ctx context.Context, applicationID string, status domain.ApplicationStatus, reviewedBy string, expectedVersion int64) error
}

// ApplicationRepositoryFacade combines all application-related repository interfaces.
type ApplicationRepositoryFacade interface {
	ApplicationReader
	ApplicationWriter
}
