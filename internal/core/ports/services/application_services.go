package services

import (
	"context"

	"github.com/EstateDesk/estate_management_app/internal/core/domain"
	"github.com/EstateDesk/estate_management_app/internal/dto"
)

// ApplicationReaderSvc defines the application reads per role.
type ApplicationReaderSvc interface {
	ListCustomerApplications(ctx context.Context, customerID string) ([]domain.Application, error)
	ListRealtorApplications(ctx context.Context, realtorID string) ([]domain.Application, error)

	// ListPropertyApplications retrieves applications for one property; the
	// caller must be the property's assigned realtor.
	ListPropertyApplications(ctx context.Context, realtorID, propertyID string) ([]domain.Application, error)
}

// ApplicationWriterSvc is the application workflow.
type ApplicationWriterSvc interface {
	// SubmitApplication creates a pending application for an available
	// property. At most one active application may exist per
	// (customer, property) pair.
	SubmitApplication(ctx context.Context, customerID string, req dto.SubmitApplicationRequest) (*domain.Application, error)

	// DecideApplication moves a pending application to approved or rejected.
	// Only the assigned realtor of the application's property may decide.
	DecideApplication(ctx context.Context, realtorID, applicationID string, outcome domain.ApplicationStatus) (*domain.Application, error)

	// WithdrawApplication lets the applicant retract a still-pending application.
	WithdrawApplication(ctx context.Context, customerID, applicationID string) error
}

// ApplicationSvcFacade combines all application-related service interfaces.
type ApplicationSvcFacade interface {
	ApplicationReaderSvc
	ApplicationWriterSvc
}
