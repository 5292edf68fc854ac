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

// contractService implements ContractSvcFacade: drafting, the two-party
// signature state machine and execution.
type contractService struct {
	BaseService
	contractRepo    portsrepo.ContractRepositoryFacade
	applicationRepo portsrepo.ApplicationRepositoryFacade
	propertyRepo    portsrepo.PropertyRepositoryFacade
	cache           portsrepo.ListingCache
	events          portssvc.EventPublisherSvc
	now             func() time.Time
}

// NewContractService creates a new contract service. cache and events may be
// nil when the corresponding infrastructure is not configured.
func NewContractService(
	contractRepo portsrepo.ContractRepositoryFacade,
	applicationRepo portsrepo.ApplicationRepositoryFacade,
	propertyRepo portsrepo.PropertyRepositoryFacade,
	cache portsrepo.ListingCache,
	events portssvc.EventPublisherSvc,
) portssvc.ContractSvcFacade {
	return &contractService{
		contractRepo:    contractRepo,
		applicationRepo: applicationRepo,
		propertyRepo:    propertyRepo,
		cache:           cache,
		events:          events,
		now:             time.Now,
	}
}

// --- Reads ---

func (s *contractService) GetContract(ctx context.Context, contractID string) (*domain.Contract, error) {
	return s.contractRepo.FindContractByID(ctx, contractID)
}

func (s *contractService) ListOwnerContracts(ctx context.Context, ownerID string) ([]domain.Contract, error) {
	return s.contractRepo.ListContractsByOwner(ctx, ownerID)
}

func (s *contractService) ListCustomerContracts(ctx context.Context, customerID string) ([]domain.Contract, error) {
	return s.contractRepo.ListContractsByCustomer(ctx, customerID)
}

func (s *contractService) ListRealtorContracts(ctx context.Context, realtorID string) ([]domain.Contract, error) {
	return s.contractRepo.ListContractsByRealtor(ctx, realtorID)
}

// --- Workflow ---

// CreateContract drafts a contract from an approved application. The party
// and property references come from the application chain, never from the
// request body.
func (s *contractService) CreateContract(ctx context.Context, realtorID string, req dto.CreateContractRequest) (*domain.Contract, error) {
	application, err := s.applicationRepo.FindApplicationByID(ctx, req.ApplicationID)
	if err != nil {
		return nil, err
	}
	if application.Status != domain.ApplicationApproved {
		return nil, apperrors.ErrInvalidTransition
	}

	property, err := s.propertyRepo.FindPropertyByID(ctx, application.PropertyID)
	if err != nil {
		return nil, err
	}
	if property.RealtorID != realtorID {
		return nil, apperrors.ErrNotAssignedRealtor
	}
	if property.Status != domain.PropertyAvailable {
		return nil, apperrors.ErrPropertyUnavailable
	}

	now := s.now()
	contract := domain.Contract{
		ContractID:    uuid.NewString(),
		Type:          req.Type,
		Status:        domain.ContractDrafted,
		ContractDate:  now,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		ClosingDate:   req.ClosingDate,
		SalePrice:     req.SalePrice,
		DepositAmount: req.DepositAmount,
		PaymentTerms:  req.PaymentTerms,
		OwnerID:       property.OwnerID,
		CustomerID:    application.CustomerID,
		RealtorID:     realtorID,
		PropertyID:    property.PropertyID,
		Version:       1,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if req.Loan != nil {
		contract.Loan = &domain.LoanDetails{
			Amount:       req.Loan.Amount,
			Provider:     req.Loan.Provider,
			InterestRate: req.Loan.InterestRate,
			ApprovalDate: req.Loan.ApprovalDate,
			Status:       req.Loan.Status,
		}
	}

	if err := s.contractRepo.SaveContract(ctx, contract); err != nil {
		s.LogError(ctx, err, "Failed to save contract", slog.String("application_id", req.ApplicationID))
		return nil, fmt.Errorf("failed to create contract: %w", err)
	}

	s.LogInfo(ctx, "Contract drafted",
		slog.String("contract_id", contract.ContractID),
		slog.String("property_id", contract.PropertyID))
	return &contract, nil
}

// SignContract records the party's signature artifact. Re-signing before the
// contract is terminal overwrites the slot; the second distinct signature
// executes the contract and, for sales, flips the property to sold in the
// same transaction. A version conflict with a concurrent signature is retried
// once against fresh state.
func (s *contractService) SignContract(ctx context.Context, party domain.Role, partyID, contractID, signatureRef string) (*domain.Contract, error) {
	if party != domain.RoleOwner && party != domain.RoleCustomer {
		return nil, apperrors.ErrValidation
	}

	for attempt := 0; ; attempt++ {
		contract, err := s.contractRepo.FindContractByID(ctx, contractID)
		if err != nil {
			return nil, err
		}
		if err := requireContractParty(contract, party, partyID); err != nil {
			return nil, err
		}
		if contract.Status.Terminal() {
			return nil, apperrors.ErrInvalidTransition
		}

		switch party {
		case domain.RoleOwner:
			contract.Signatures.Owner = signatureRef
		case domain.RoleCustomer:
			contract.Signatures.Customer = signatureRef
		}

		if contract.Signatures.BothPresent() {
			markSold := contract.Type == domain.ContractSale
			err = s.contractRepo.ExecuteContract(ctx, *contract, contract.Version, markSold)
			if errors.Is(err, apperrors.ErrConflict) && attempt == 0 {
				continue
			}
			if err != nil {
				return nil, err
			}

			contract.Status = domain.ContractExecuted
			contract.Version++
			if markSold && s.cache != nil {
				s.cache.InvalidatePropertyList(ctx)
			}
			s.LogInfo(ctx, "Contract executed",
				slog.String("contract_id", contractID),
				slog.Bool("property_sold", markSold))
			s.publishContractExecuted(ctx, contract, markSold)
			return contract, nil
		}

		if party == domain.RoleOwner {
			contract.Status = domain.ContractOwnerSigned
		} else {
			contract.Status = domain.ContractCustomerSigned
		}
		err = s.contractRepo.UpdateContract(ctx, *contract, contract.Version)
		if errors.Is(err, apperrors.ErrConflict) && attempt == 0 {
			continue
		}
		if err != nil {
			return nil, err
		}

		contract.Version++
		s.LogInfo(ctx, "Contract signed",
			slog.String("contract_id", contractID),
			slog.String("party", string(party)))
		return contract, nil
	}
}

// RejectContract moves the contract to the party's terminal rejected state.
// A rejection stands regardless of the other party's signature slot.
func (s *contractService) RejectContract(ctx context.Context, party domain.Role, partyID, contractID string) (*domain.Contract, error) {
	if party != domain.RoleOwner && party != domain.RoleCustomer {
		return nil, apperrors.ErrValidation
	}

	for attempt := 0; ; attempt++ {
		contract, err := s.contractRepo.FindContractByID(ctx, contractID)
		if err != nil {
			return nil, err
		}
		if err := requireContractParty(contract, party, partyID); err != nil {
			return nil, err
		}
		if contract.Status.Terminal() {
			return nil, apperrors.ErrInvalidTransition
		}

		if party == domain.RoleOwner {
			contract.Status = domain.ContractRejectedByOwner
		} else {
			contract.Status = domain.ContractRejectedByCustomer
		}

		err = s.contractRepo.UpdateContract(ctx, *contract, contract.Version)
		if errors.Is(err, apperrors.ErrConflict) && attempt == 0 {
			continue
		}
		if err != nil {
			return nil, err
		}

		contract.Version++
		s.LogInfo(ctx, "Contract rejected",
			slog.String("contract_id", contractID),
			slog.String("party", string(party)))
		return contract, nil
	}
}

func requireContractParty(contract *domain.Contract, party domain.Role, partyID string) error {
	switch party {
	case domain.RoleOwner:
		if contract.OwnerID != partyID {
			return apperrors.ErrForbidden
		}
	case domain.RoleCustomer:
		if contract.CustomerID != partyID {
			return apperrors.ErrForbidden
		}
	}
	return nil
}

func (s *contractService) publishContractExecuted(ctx context.Context, contract *domain.Contract, propertySold bool) {
	if s.events == nil {
		return
	}
	event := portssvc.ContractExecutedEvent{
		ContractID:   contract.ContractID,
		ContractType: string(contract.Type),
		OwnerID:      contract.OwnerID,
		CustomerID:   contract.CustomerID,
		PropertyID:   contract.PropertyID,
		PropertySold: propertySold,
		ExecutedAt:   s.now().UTC().Format(time.RFC3339),
	}
	if err := s.events.PublishContractExecuted(ctx, event); err != nil {
		s.LogWarn(ctx, "Failed to publish contract executed event", slog.String("error", err.Error()))
	}
}
