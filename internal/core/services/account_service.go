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
	"github.com/EstateDesk/estate_management_app/internal/utils"
)

// accountService implements AccountSvcFacade: registration, authentication,
// the admin approval workflow and the admin directory reads.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	events      portssvc.EventPublisherSvc
	now         func() time.Time
}

// NewAccountService creates a new account service. events may be nil when no
// broker is configured.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, events portssvc.EventPublisherSvc) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo: accountRepo,
		events:      events,
		now:         time.Now,
	}
}

// --- Registration ---

func (s *accountService) RegisterOwner(ctx context.Context, req dto.RegisterOwnerRequest) (*domain.Owner, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, apperrors.ErrValidation
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.now()
	owner := domain.Owner{
		OwnerID:      uuid.NewString(),
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		Phone:        req.Phone,
		Status:       domain.ApprovalPending,
		PersonalProfile: domain.PersonalProfile{
			DateOfBirth:  req.DateOfBirth,
			Occupation:   req.Occupation,
			AnnualIncome: req.AnnualIncome,
			Address:      req.Address,
			NationalID:   req.NationalID,
		},
		Version: 1,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.accountRepo.SaveOwner(ctx, owner); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.ErrDuplicate
		}
		s.LogError(ctx, err, "Failed to save owner", slog.String("email", req.Email))
		return nil, fmt.Errorf("failed to register owner: %w", err)
	}

	s.LogInfo(ctx, "Owner registered, awaiting approval", slog.String("owner_id", owner.OwnerID))
	return &owner, nil
}

func (s *accountService) RegisterRealtor(ctx context.Context, req dto.RegisterRealtorRequest) (*domain.Realtor, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, apperrors.ErrValidation
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.now()
	realtor := domain.Realtor{
		RealtorID:    uuid.NewString(),
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		Phone:        req.Phone,
		Status:       domain.ApprovalPending,
		Version:      1,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.accountRepo.SaveRealtor(ctx, realtor); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.ErrDuplicate
		}
		s.LogError(ctx, err, "Failed to save realtor", slog.String("email", req.Email))
		return nil, fmt.Errorf("failed to register realtor: %w", err)
	}

	s.LogInfo(ctx, "Realtor registered, awaiting approval", slog.String("realtor_id", realtor.RealtorID))
	return &realtor, nil
}

func (s *accountService) RegisterCustomer(ctx context.Context, req dto.RegisterCustomerRequest) (*domain.Customer, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, apperrors.ErrValidation
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.now()
	customer := domain.Customer{
		CustomerID:   uuid.NewString(),
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		Phone:        req.Phone,
		AuthProvider: domain.AuthProviderLocal,
		PersonalProfile: domain.PersonalProfile{
			DateOfBirth:  req.DateOfBirth,
			Occupation:   req.Occupation,
			AnnualIncome: req.AnnualIncome,
			Address:      req.Address,
			NationalID:   req.NationalID,
		},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.accountRepo.SaveCustomer(ctx, customer); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.ErrDuplicate
		}
		s.LogError(ctx, err, "Failed to save customer", slog.String("email", req.Email))
		return nil, fmt.Errorf("failed to register customer: %w", err)
	}

	s.LogInfo(ctx, "Customer registered", slog.String("customer_id", customer.CustomerID))
	return &customer, nil
}

// GetOrCreateGoogleCustomer resolves a Google-verified email to a customer
// account, provisioning one on first sign-in. Google accounts carry no local
// password; password login for them always fails the credential check.
func (s *accountService) GetOrCreateGoogleCustomer(ctx context.Context, email, name string) (*domain.Customer, error) {
	customer, err := s.accountRepo.FindCustomerByEmail(ctx, email)
	if err == nil {
		return customer, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up customer by email: %w", err)
	}

	now := s.now()
	created := domain.Customer{
		CustomerID:   uuid.NewString(),
		Email:        email,
		Name:         name,
		AuthProvider: domain.AuthProviderGoogle,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.accountRepo.SaveCustomer(ctx, created); err != nil {
		// A concurrent first sign-in may have created the account; re-read.
		if errors.Is(err, apperrors.ErrDuplicate) {
			return s.accountRepo.FindCustomerByEmail(ctx, email)
		}
		return nil, fmt.Errorf("failed to provision google customer: %w", err)
	}

	s.LogInfo(ctx, "Customer provisioned via google sign-in", slog.String("customer_id", created.CustomerID))
	return &created, nil
}

// --- Authentication ---
//
// Unknown account and wrong password are deliberately indistinguishable:
// both return ErrInvalidCredentials.

func (s *accountService) AuthenticateAdmin(ctx context.Context, adminID, password string) (*domain.Admin, error) {
	admin, err := s.accountRepo.FindAdminByAdminID(ctx, adminID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}
	if !utils.CheckPasswordHash(password, admin.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return admin, nil
}

func (s *accountService) AuthenticateOwner(ctx context.Context, email, password string) (*domain.Owner, error) {
	owner, err := s.accountRepo.FindOwnerByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up owner: %w", err)
	}
	if !utils.CheckPasswordHash(password, owner.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if owner.Status != domain.ApprovalApproved {
		return nil, apperrors.ErrPendingApproval
	}
	return owner, nil
}

func (s *accountService) AuthenticateRealtor(ctx context.Context, email, password string) (*domain.Realtor, error) {
	realtor, err := s.accountRepo.FindRealtorByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up realtor: %w", err)
	}
	if !utils.CheckPasswordHash(password, realtor.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if realtor.Status != domain.ApprovalApproved {
		return nil, apperrors.ErrPendingApproval
	}
	return realtor, nil
}

func (s *accountService) AuthenticateCustomer(ctx context.Context, email, password string) (*domain.Customer, error) {
	customer, err := s.accountRepo.FindCustomerByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up customer: %w", err)
	}
	if customer.PasswordHash == "" || !utils.CheckPasswordHash(password, customer.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return customer, nil
}

// --- Approval workflow ---

// Decide sets an owner/realtor account to approved or rejected. Re-applying
// the same outcome overwrites idempotently. A version conflict with a
// concurrent decision is retried once against fresh state.
func (s *accountService) Decide(ctx context.Context, role domain.Role, accountID string, outcome domain.ApprovalStatus) error {
	if outcome != domain.ApprovalApproved && outcome != domain.ApprovalRejected {
		return apperrors.ErrValidation
	}

	var err error
	switch role {
	case domain.RoleOwner:
		err = s.decideOwner(ctx, accountID, outcome)
	case domain.RoleRealtor:
		err = s.decideRealtor(ctx, accountID, outcome)
	default:
		return apperrors.ErrValidation
	}
	if err != nil {
		return err
	}

	s.LogInfo(ctx, "Account approval decided",
		slog.String("role", string(role)),
		slog.String("account_id", accountID),
		slog.String("outcome", string(outcome)))
	s.publishAccountDecided(ctx, role, accountID, outcome)
	return nil
}

func (s *accountService) decideOwner(ctx context.Context, ownerID string, outcome domain.ApprovalStatus) error {
	for attempt := 0; ; attempt++ {
		owner, err := s.accountRepo.FindOwnerByID(ctx, ownerID)
		if err != nil {
			return err
		}
		err = s.accountRepo.UpdateOwnerStatus(ctx, ownerID, outcome, owner.Version)
		if errors.Is(err, apperrors.ErrConflict) && attempt == 0 {
			continue
		}
		return err
	}
}

func (s *accountService) decideRealtor(ctx context.Context, realtorID string, outcome domain.ApprovalStatus) error {
	for attempt := 0; ; attempt++ {
		realtor, err := s.accountRepo.FindRealtorByID(ctx, realtorID)
		if err != nil {
			return err
		}
		err = s.accountRepo.UpdateRealtorStatus(ctx, realtorID, outcome, realtor.Version)
		if errors.Is(err, apperrors.ErrConflict) && attempt == 0 {
			continue
		}
		return err
	}
}

func (s *accountService) publishAccountDecided(ctx context.Context, role domain.Role, accountID string, outcome domain.ApprovalStatus) {
	if s.events == nil {
		return
	}
	event := portssvc.AccountDecidedEvent{
		AccountID: accountID,
		Role:      string(role),
		Outcome:   string(outcome),
		DecidedAt: s.now().UTC().Format(time.RFC3339),
	}
	if err := s.events.PublishAccountDecided(ctx, event); err != nil {
		s.LogWarn(ctx, "Failed to publish account decided event", slog.String("error", err.Error()))
	}
}

// --- Admin directory ---

func (s *accountService) GetApprovalStats(ctx context.Context) (*domain.ApprovalStats, error) {
	return s.accountRepo.GetApprovalStats(ctx)
}

func (s *accountService) ListOwners(ctx context.Context, status *domain.ApprovalStatus) ([]domain.Owner, error) {
	return s.accountRepo.ListOwners(ctx, status)
}

func (s *accountService) ListRealtors(ctx context.Context, status *domain.ApprovalStatus) ([]domain.Realtor, error) {
	return s.accountRepo.ListRealtors(ctx, status)
}

func (s *accountService) DeleteOwner(ctx context.Context, ownerID string) error {
	if err := s.accountRepo.DeleteOwner(ctx, ownerID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Owner account deleted", slog.String("owner_id", ownerID))
	return nil
}

func (s *accountService) ListRealtorCustomers(ctx context.Context, realtorID string) ([]domain.Customer, error) {
	return s.accountRepo.ListRealtorCustomers(ctx, realtorID)
}

func (s *accountService) DeleteRealtor(ctx context.Context, realtorID string) error {
	if err := s.accountRepo.DeleteRealtor(ctx, realtorID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Realtor account deleted", slog.String("realtor_id", realtorID))
	return nil
}
