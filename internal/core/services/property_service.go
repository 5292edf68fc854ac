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

// propertyService implements PropertySvcFacade: the listing ledger and the
// public catalogue reads.
type propertyService struct {
	BaseService
	propertyRepo portsrepo.PropertyRepositoryFacade
	accountRepo  portsrepo.AccountRepositoryFacade
	cache        portsrepo.ListingCache
	now          func() time.Time
}

// NewPropertyService creates a new property service. cache may be nil when no
// Redis instance is configured; reads then always hit the database.
func NewPropertyService(propertyRepo portsrepo.PropertyRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade, cache portsrepo.ListingCache) portssvc.PropertySvcFacade {
	return &propertyService{
		propertyRepo: propertyRepo,
		accountRepo:  accountRepo,
		cache:        cache,
		now:          time.Now,
	}
}

func (s *propertyService) GetProperty(ctx context.Context, propertyID string) (*domain.Property, error) {
	return s.propertyRepo.FindPropertyByID(ctx, propertyID)
}

// ListProperties serves the public catalogue, answered from cache when warm.
func (s *propertyService) ListProperties(ctx context.Context) ([]domain.Property, error) {
	if s.cache != nil {
		if properties, ok := s.cache.GetPropertyList(ctx); ok {
			return properties, nil
		}
	}

	properties, err := s.propertyRepo.ListProperties(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetPropertyList(ctx, properties)
	}
	return properties, nil
}

func (s *propertyService) ListOwnerProperties(ctx context.Context, ownerID string) ([]domain.Property, error) {
	return s.propertyRepo.ListPropertiesByOwner(ctx, ownerID)
}

func (s *propertyService) ListManagedProperties(ctx context.Context, realtorID string) ([]domain.Property, error) {
	return s.propertyRepo.ListPropertiesByRealtor(ctx, realtorID)
}

func (s *propertyService) ListApprovedRealtors(ctx context.Context) ([]domain.Realtor, error) {
	approved := domain.ApprovalApproved
	return s.accountRepo.ListRealtors(ctx, &approved)
}

// CreateProperty persists a new listing for an approved owner. The approval
// status is re-read from the store rather than trusted from the session, so a
// rejection after token issuance still blocks listing.
func (s *propertyService) CreateProperty(ctx context.Context, ownerID string, req dto.CreatePropertyRequest) (*domain.Property, error) {
	if !req.Price.IsPositive() {
		return nil, apperrors.ErrValidation
	}

	owner, err := s.accountRepo.FindOwnerByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if owner.Status != domain.ApprovalApproved {
		return nil, apperrors.ErrForbidden
	}

	if req.RealtorID != "" {
		if err := s.requireApprovedRealtor(ctx, req.RealtorID); err != nil {
			return nil, err
		}
	}

	now := s.now()
	property := domain.Property{
		PropertyID: uuid.NewString(),
		Name:       req.Name,
		Type:       req.Type,
		Status:     domain.PropertyAvailable,
		Price:      req.Price,
		Area:       req.Area,
		Bedrooms:   req.Bedrooms,
		Location:   req.Location,
		ImageRefs:  req.ImageRefs,
		OwnerID:    ownerID,
		RealtorID:  req.RealtorID,
		Version:    1,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.propertyRepo.SaveProperty(ctx, property); err != nil {
		s.LogError(ctx, err, "Failed to save property", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	if s.cache != nil {
		s.cache.InvalidatePropertyList(ctx)
	}
	s.LogInfo(ctx, "Property listed",
		slog.String("property_id", property.PropertyID),
		slog.String("owner_id", ownerID))
	return &property, nil
}

// AssignRealtor sets the property's assigned realtor. Only the owning owner
// may assign, and the target realtor must be approved.
func (s *propertyService) AssignRealtor(ctx context.Context, ownerID, propertyID, realtorID string) (*domain.Property, error) {
	if err := s.requireApprovedRealtor(ctx, realtorID); err != nil {
		return nil, err
	}

	for attempt := 0; ; attempt++ {
		property, err := s.propertyRepo.FindPropertyByID(ctx, propertyID)
		if err != nil {
			return nil, err
		}
		if property.OwnerID != ownerID {
			return nil, apperrors.ErrForbidden
		}

		err = s.propertyRepo.AssignRealtor(ctx, propertyID, realtorID, property.Version)
		if errors.Is(err, apperrors.ErrConflict) && attempt == 0 {
			continue
		}
		if err != nil {
			return nil, err
		}
		break
	}

	s.LogInfo(ctx, "Realtor assigned to property",
		slog.String("property_id", propertyID),
		slog.String("realtor_id", realtorID))
	return s.propertyRepo.FindPropertyByID(ctx, propertyID)
}

func (s *propertyService) requireApprovedRealtor(ctx context.Context, realtorID string) error {
	realtor, err := s.accountRepo.FindRealtorByID(ctx, realtorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to look up realtor: %w", err)
	}
	if realtor.Status != domain.ApprovalApproved {
		return apperrors.ErrValidation
	}
	return nil
}
