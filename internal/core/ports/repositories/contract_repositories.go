package repositories

import (
	"context"

	"github.com/EstateDesk/estate_management_app/internal/core/domain"
)

// ContractReader defines read operations for contracts.
type ContractReader interface {
	FindContractByID(ctx context.Context, contractID string) (*domain.Contract, error)
	ListContractsByOwner(ctx context.Context, ownerID string) ([]domain.Contract, error)
	ListContractsByCustomer(ctx context.Context, customerID string) ([]domain.Contract, error)
	ListContractsByRealtor(ctx context.Context, realtorID string) ([]domain.Contract, error)
}

// ContractWriter defines write operations for contracts.
type ContractWriter interface {
	SaveContract(ctx context.Context, contract domain.Contract) error

	// UpdateContract writes the contract's status and signature slots with a
	// conditional update keyed on its current version. Returns
	// apperrors.ErrConflict when the version no longer matches.
	UpdateContract(ctx context.Context, contract domain.Contract, expectedVersion int64) error

	// ExecuteContract moves the contract to executed and, when markPropertySold
	// is set, flips the linked property to sold in the same transaction. This
	// is the single path by which a property's status changes.
	ExecuteContract(ctx context.Context, contract domain.Contract, expectedVersion int64, markPropertySold bool) error
}

// ContractRepositoryFacade combines all contract-related repository interfaces.
type ContractRepositoryFacade interface {
	ContractReader
	ContractWriter
}
