package services

import (
	portsrepo "github.com/EstateDesk/estate_management_app/internal/core/ports/repositories"
	portssvc "github.com/EstateDesk/estate_management_app/internal/core/ports/services"
	"github.com/EstateDesk/estate_management_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, events portssvc.EventPublisherSvc) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo, events)
	container.Property = NewPropertyService(repos.PropertyRepo, repos.AccountRepo, repos.ListingCache)
	container.Application = NewApplicationService(repos.ApplicationRepo, repos.PropertyRepo, repos.AccountRepo, events)
	container.Contract = NewContractService(repos.ContractRepo, repos.ApplicationRepo, repos.PropertyRepo, repos.ListingCache, events)
	container.Token = NewTokenService(cfg)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)
	container.Events = events

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AccountSvcFacade     = (*accountService)(nil)
	_ portssvc.PropertySvcFacade    = (*propertyService)(nil)
	_ portssvc.ApplicationSvcFacade = (*applicationService)(nil)
	_ portssvc.ContractSvcFacade    = (*contractService)(nil)
)
