package repositories

import (
	"context"

	"github.com/EstateDesk/estate_management_app/internal/core/domain"
)

// PropertyReader defines read operations for property listings.
type PropertyReader interface {
	FindPropertyByID(ctx context.Context, propertyID string) (*domain.Property, error)

	// ListProperties retrieves all listings for the public catalogue.
	ListProperties(ctx context.Context) ([]domain.Property, error)

	ListPropertiesByOwner(ctx context.Context, ownerID string) ([]domain.Property, error)
	ListPropertiesByRealtor(ctx context.Context, realtorID string) ([]domain.Property, error)
}

// PropertyWriter defines write operations for property listings.
type PropertyWriter interface {
	// SaveProperty persists a new property and appends its id to the owner's
	// listed-properties set inside a single transaction. Both writes succeed
	// or neither does.
	SaveProperty(ctx context.Context, property domain.Property) error

	// AssignRealtor sets the assigned realtor with a conditional update keyed
	// on the property's current version. Returns apperrors.ErrConflict when the
	// version no longer matches.
	AssignRealtor(ctx context.Context, propertyID, realtorID string, expectedVersion int64) error

	// AddInterestedCustomer records a customer's interest in a property.
	// Idempotent.
	AddInterestedCustomer(ctx context.Context, propertyID, customerID string) error
}

// PropertyRepositoryFacade combines all property-related repository interfaces.
type PropertyRepositoryFacade interface {
	PropertyReader
	PropertyWriter
}

// ListingCache is a read-through cache for the public property catalogue.
// A nil or unavailable cache must degrade to direct repository reads.
type ListingCache interface {
	GetPropertyList(ctx context.Context) ([]domain.Property, bool)
	SetPropertyList(ctx context.Context, properties []domain.Property)

	// InvalidatePropertyList drops the cached catalogue. Called after listing
	// creation and after a property is marked sold.
	InvalidatePropertyList(ctx context.Context)
}
