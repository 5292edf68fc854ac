package services

import (
	"context"

	"github.com/EstateDesk/estate_management_app/internal/core/domain"
	"github.com/EstateDesk/estate_management_app/internal/dto"
)

// PropertyReaderSvc defines the listing reads. ListProperties serves the
// public catalogue and may be answered from cache.
type PropertyReaderSvc interface {
	GetProperty(ctx context.Context, propertyID string) (*domain.Property, error)
	ListProperties(ctx context.Context) ([]domain.Property, error)
	ListOwnerProperties(ctx context.Context, ownerID string) ([]domain.Property, error)
	ListManagedProperties(ctx context.Context, realtorID string) ([]domain.Property, error)

	// ListApprovedRealtors is the directory owners pick an assigned realtor from.
	ListApprovedRealtors(ctx context.Context) ([]domain.Realtor, error)
}

// PropertyWriterSvc defines the listing mutations.
type PropertyWriterSvc interface {
	// CreateProperty persists a listing for an approved owner and appends it
	// to the owner's listed-properties set atomically.
	CreateProperty(ctx context.Context, ownerID string, req dto.CreatePropertyRequest) (*domain.Property, error)

	// AssignRealtor sets the property's assigned realtor. Only the owning
	// owner may do this.
	AssignRealtor(ctx context.Context, ownerID, propertyID, realtorID string) (*domain.Property, error)
}

// PropertySvcFacade combines all property-related service interfaces.
type PropertySvcFacade interface {
	PropertyReaderSvc
	PropertyWriterSvc
}
