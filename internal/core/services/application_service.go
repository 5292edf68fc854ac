package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/EstateDesk/estate_management_app/internal/apperrors"
	"github.com/EstateDesk/estate_management_app/internal/core/domain"
	portsrepo "github.com/EstateDesk/estate_management_app/internal/core/ports/repositories"
	portssvc "github.com/EstateDesk/estate_management_app/internal/core/ports/services"
	"github.com/EstateDesk/estate_management_app/internal/dto"
)

// applicationService implements ApplicationSvcFacade: the customer application
// workflow and its realtor review side.
type applicationService struct {
	BaseService
	applicationRepo portsrepo.ApplicationRepositoryFacade
	propertyRepo    portsrepo.PropertyRepositoryFacade
	accountRepo     portsrepo.AccountRepositoryFacade
	events          portssvc.EventPublisherSvc
	now             func() time.Time
}

// NewApplicationService creates a new application service. events may be nil
// when no broker is configured.
func NewApplicationService(
	applicationRepo portsrepo.ApplicationRepositoryFacade,
	propertyRepo portsrepo.PropertyRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	events portssvc.EventPublisherSvc,
) portssvc.ApplicationSvcFacade {
	return &applicationService{
		applicationRepo: applicationRepo,
		propertyRepo:    propertyRepo,
		accountRepo:     accountRepo,
		events:          events,
		now:             time.Now,
	}
}

// --- Reads ---

func (s *applicationService) ListCustomerApplications(ctx context.Context, customerID string) ([]domain.Application, error) {
	return s.applicationRepo.ListApplicationsByCustomer(ctx, customerID)
}

func (s *applicationService) ListRealtorApplications(ctx context.Context, realtorID string) ([]domain.Application, error) {
	return s.applicationRepo.ListApplicationsByRealtor(ctx, realtorID)
}

func (s *applicationService) ListPropertyApplications(ctx context.Context, realtorID, propertyID string) ([]domain.Application, error) {
	property, err := s.propertyRepo.FindPropertyByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property.RealtorID != realtorID {
		return nil, apperrors.ErrNotAssignedRealtor
	}
	return s.applicationRepo.ListApplicationsByProperty(ctx, propertyID)
}

// --- Workflow ---

// SubmitApplication creates a pending application against an available
// property. All four document references must be present, and the customer
// may hold at most one active application per property.
func (s *applicationService) SubmitApplication(ctx context.Context, customerID string, req dto.SubmitApplicationRequest) (*domain.Application, error) {
	if !req.Documents.Complete() {
		return nil, apperrors.ErrMissingDocuments
	}

	property, err := s.propertyRepo.FindPropertyByID(ctx, req.PropertyID)
	if err != nil {
		return nil, err
	}
	if property.Status != domain.PropertyAvailable {
		return nil, apperrors.ErrPropertyUnavailable
	}

	exists, err := s.applicationRepo.HasActiveApplication(ctx, customerID, req.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to check active applications: %w", err)
	}
	if exists {
		return nil, apperrors.ErrDuplicateApplication
	}

	now := s.now()
	application := domain.Application{
		ApplicationID:    uuid.NewString(),
		CustomerID:       customerID,
		PropertyID:       req.PropertyID,
		FullName:         req.FullName,
		Email:            req.Email,
		Phone:            req.Phone,
		NationalID:       req.NationalID,
		EmployerName:     req.EmployerName,
		EmploymentStatus: req.EmploymentStatus,
		AnnualIncome:     req.AnnualIncome,
		Documents:        req.Documents,
		Status:           domain.ApplicationPending,
		Version:          1,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.applicationRepo.SaveApplication(ctx, application); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateApplication) {
			return nil, apperrors.ErrDuplicateApplication
		}
		s.LogError(ctx, err, "Failed to save application",
			slog.String("customer_id", customerID),
			slog.String("property_id", req.PropertyID))
		return nil, fmt.Errorf("failed to submit application: %w", err)
	}

	if err := s.propertyRepo.AddInterestedCustomer(ctx, req.PropertyID, customerID); err != nil {
		s.LogWarn(ctx, "Failed to record customer interest", slog.String("error", err.Error()))
	}

	s.LogInfo(ctx, "Application submitted",
		slog.String("application_id", application.ApplicationID),
		slog.String("property_id", req.PropertyID))
	return &application, nil
}

// DecideApplication moves a pending application to approved or rejected. Only
// the realtor assigned to the application's property may decide. Re-applying
// the already-recorded outcome is an idempotent overwrite.
func (s *applicationService) DecideApplication(ctx context.Context, realtorID, applicationID string, outcome domain.ApplicationStatus) (*domain.Application, error) {
	if outcome != domain.ApplicationApproved && outcome != domain.ApplicationRejected {
		return nil, apperrors.ErrValidation
	}

	var decided *domain.Application
	for attempt := 0; ; attempt++ {
		application, err := s.applicationRepo.FindApplicationByID(ctx, applicationID)
		if err != nil {
			return nil, err
		}

		property, err := s.propertyRepo.FindPropertyByID(ctx, application.PropertyID)
		if err != nil {
			return nil, err
		}
		if property.RealtorID != realtorID {
			return nil, apperrors.ErrNotAssignedRealtor
		}

		if application.Status != domain.ApplicationPending && application.Status != outcome {
			return nil, apperrors.ErrInvalidTransition
		}

		err = s.applicationRepo.UpdateApplicationStatus(ctx, applicationID, outcome, realtorID, application.Version)
		if errors.Is(err, apperrors.ErrConflict) && attempt == 0 {
			continue
		}
		if err != nil {
			return nil, err
		}

		application.Status = outcome
		application.ReviewedBy = realtorID
		application.Version++
		decided = application
		break
	}

	if outcome == domain.ApplicationApproved {
		if err := s.accountRepo.AddRealtorCustomer(ctx, realtorID, decided.CustomerID); err != nil {
			s.LogWarn(ctx, "Failed to link customer to realtor", slog.String("error", err.Error()))
		}
	}

	s.LogInfo(ctx, "Application decided",
		slog.String("application_id", applicationID),
		slog.String("outcome", string(outcome)))
	s.publishApplicationDecided(ctx, decided, realtorID, outcome)
	return decided, nil
}

// WithdrawApplication lets the applicant retract a still-pending application.
func (s *applicationService) WithdrawApplication(ctx context.Context, customerID, applicationID string) error {
	for attempt := 0; ; attempt++ {
		application, err := s.applicationRepo.FindApplicationByID(ctx, applicationID)
		if err != nil {
			return err
		}
		if application.CustomerID != customerID {
			return apperrors.ErrForbidden
		}
		if application.Status != domain.ApplicationPending {
			return apperrors.ErrInvalidTransition
		}

		err = s.applicationRepo.UpdateApplicationStatus(ctx, applicationID, domain.ApplicationWithdrawn, "", application.Version)
		if errors.Is(err, apperrors.ErrConflict) && attempt == 0 {
			continue
		}
		if err != nil {
			return err
		}

		s.LogInfo(ctx, "Application withdrawn", slog.String("application_id", applicationID))
		return nil
	}
}

func (s *applicationService) publishApplicationDecided(ctx context.Context, application *domain.Application, realtorID string, outcome domain.ApplicationStatus) {
	if s.events == nil {
		return
	}
	event := portssvc.ApplicationDecidedEvent{
		ApplicationID: application.ApplicationID,
		CustomerID:    application.CustomerID,
		PropertyID:    application.PropertyID,
		RealtorID:     realtorID,
		Outcome:       string(outcome),
		DecidedAt:     s.now().UTC().Format(time.RFC3339),
	}
	if err := s.events.PublishApplicationDecided(ctx, event); err != nil {
		s.LogWarn(ctx, "Failed to publish application decided event", slog.String("error", err.Error()))
	}
}
