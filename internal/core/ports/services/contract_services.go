package services

import (
	"context"

	"github.com/EstateDesk/estate_management_app/internal/core/domain"
	"github.com/EstateDesk/estate_management_app/internal/dto"
)

// ContractReaderSvc defines the contract reads per role.
type ContractReaderSvc interface {
	GetContract(ctx context.Context, contractID string) (*domain.Contract, error)
	ListOwnerContracts(ctx context.Context, ownerID string) ([]domain.Contract, error)
	ListCustomerContracts(ctx context.Context, customerID string) ([]domain.Contract, error)
	ListRealtorContracts(ctx context.Context, realtorID string) ([]domain.Contract, error)
}

// ContractWriterSvc is the two-party signature workflow.
type ContractWriterSvc interface {
	// CreateContract drafts a contract from an approved application, copying
	// the owner/customer/property references from the application chain.
	CreateContract(ctx context.Context, realtorID string, req dto.CreateContractRequest) (*domain.Contract, error)

	// SignContract records the party's signature artifact. When the other
	// slot is already filled the contract transitions to executed and, for
	// sale contracts, the property is marked sold in the same transaction.
	// party must be RoleOwner or RoleCustomer and partyID must match the
	// contract's corresponding reference.
	SignContract(ctx context.Context, party domain.Role, partyID, contractID, signatureRef string) (*domain.Contract, error)

	// RejectContract moves the contract to the party's terminal rejected state
	// regardless of the other party's signature slot.
	RejectContract(ctx context.Context, party domain.Role, partyID, contractID string) (*domain.Contract, error)
}

// ContractSvcFacade combines all contract-related service interfaces.
type ContractSvcFacade interface {
	ContractReaderSvc
	ContractWriterSvc
}
