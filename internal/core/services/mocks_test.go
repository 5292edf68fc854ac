package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/EstateDesk/estate_management_app/internal/core/domain"
	portssvc "github.com/EstateDesk/estate_management_app/internal/core/ports/services"
)

// MockAccountRepository is a mock implementation of AccountRepositoryFacade.
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAdminByAdminID(ctx context.Context, adminID string) (*domain.Admin, error) {
	args := m.Called(ctx, adminID)
	var admin *domain.Admin
	if args.Get(0) != nil {
		admin = args.Get(0).(*domain.Admin)
	}
	return admin, args.Error(1)
}

func (m *MockAccountRepository) SaveOwner(ctx context.Context, owner domain.Owner) error {
	args := m.Called(ctx, owner)
	return args.Error(0)
}

func (m *MockAccountRepository) FindOwnerByID(ctx context.Context, ownerID string) (*domain.Owner, error) {
	args := m.Called(ctx, ownerID)
	var owner *domain.Owner
	if args.Get(0) != nil {
		owner = args.Get(0).(*domain.Owner)
	}
	return owner, args.Error(1)
}

func (m *MockAccountRepository) FindOwnerByEmail(ctx context.Context, email string) (*domain.Owner, error) {
	args := m.Called(ctx, email)
	var owner *domain.Owner
	if args.Get(0) != nil {
		owner = args.Get(0).(*domain.Owner)
	}
	return owner, args.Error(1)
}

func (m *MockAccountRepository) ListOwners(ctx context.Context, status *domain.ApprovalStatus) ([]domain.Owner, error) {
	args := m.Called(ctx, status)
	var owners []domain.Owner
	if args.Get(0) != nil {
		owners = args.Get(0).([]domain.Owner)
	}
	return owners, args.Error(1)
}

func (m *MockAccountRepository) UpdateOwnerStatus(ctx context.Context, ownerID string, status domain.ApprovalStatus, expectedVersion int64) error {
	args := m.Called(ctx, ownerID, status, expectedVersion)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteOwner(ctx context.Context, ownerID string) error {
	args := m.Called(ctx, ownerID)
	return args.Error(0)
}

func (m *MockAccountRepository) SaveRealtor(ctx context.Context, realtor domain.Realtor) error {
	args := m.Called(ctx, realtor)
	return args.Error(0)
}

func (m *MockAccountRepository) FindRealtorByID(ctx context.Context, realtorID string) (*domain.Realtor, error) {
	args := m.Called(ctx, realtorID)
	var realtor *domain.Realtor
	if args.Get(0) != nil {
		realtor = args.Get(0).(*domain.Realtor)
	}
	return realtor, args.Error(1)
}

func (m *MockAccountRepository) FindRealtorByEmail(ctx context.Context, email string) (*domain.Realtor, error) {
	args := m.Called(ctx, email)
	var realtor *domain.Realtor
	if args.Get(0) != nil {
		realtor = args.Get(0).(*domain.Realtor)
	}
	return realtor, args.Error(1)
}

func (m *MockAccountRepository) ListRealtors(ctx context.Context, status *domain.ApprovalStatus) ([]domain.Realtor, error) {
	args := m.Called(ctx, status)
	var realtors []domain.Realtor
	if args.Get(0) != nil {
		realtors = args.Get(0).([]domain.Realtor)
	}
	return realtors, args.Error(1)
}

func (m *MockAccountRepository) ListRealtorCustomers(ctx context.Context, realtorID string) ([]domain.Customer, error) {
	args := m.Called(ctx, realtorID)
	var customers []domain.Customer
	if args.Get(0) != nil {
		customers = args.Get(0).([]domain.Customer)
	}
	return customers, args.Error(1)
}

func (m *MockAccountRepository) UpdateRealtorStatus(ctx context.Context, realtorID string, status domain.ApprovalStatus, expectedVersion int64) error {
	args := m.Called(ctx, realtorID, status, expectedVersion)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteRealtor(ctx context.Context, realtorID string) error {
	args := m.Called(ctx, realtorID)
	return args.Error(0)
}

func (m *MockAccountRepository) AddRealtorCustomer(ctx context.Context, realtorID, customerID string) error {
	args := m.Called(ctx, realtorID, customerID)
	return args.Error(0)
}

func (m *MockAccountRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockAccountRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	var customer *domain.Customer
	if args.Get(0) != nil {
		customer = args.Get(0).(*domain.Customer)
	}
	return customer, args.Error(1)
}

func (m *MockAccountRepository) FindCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	args := m.Called(ctx, email)
	var customer *domain.Customer
	if args.Get(0) != nil {
		customer = args.Get(0).(*domain.Customer)
	}
	return customer, args.Error(1)
}

func (m *MockAccountRepository) GetApprovalStats(ctx context.Context) (*domain.ApprovalStats, error) {
	args := m.Called(ctx)
	var stats *domain.ApprovalStats
	if args.Get(0) != nil {
		stats = args.Get(0).(*domain.ApprovalStats)
	}
	return stats, args.Error(1)
}

// MockPropertyRepository is a mock implementation of PropertyRepositoryFacade.
type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) FindPropertyByID(ctx context.Context, propertyID string) (*domain.Property, error) {
	args := m.Called(ctx, propertyID)
	var property *domain.Property
	if args.Get(0) != nil {
		property = args.Get(0).(*domain.Property)
	}
	return property, args.Error(1)
}

func (m *MockPropertyRepository) ListProperties(ctx context.Context) ([]domain.Property, error) {
	args := m.Called(ctx)
	var properties []domain.Property
	if args.Get(0) != nil {
		properties = args.Get(0).([]domain.Property)
	}
	return properties, args.Error(1)
}

func (m *MockPropertyRepository) ListPropertiesByOwner(ctx context.Context, ownerID string) ([]domain.Property, error) {
	args := m.Called(ctx, ownerID)
	var properties []domain.Property
	if args.Get(0) != nil {
		properties = args.Get(0).([]domain.Property)
	}
	return properties, args.Error(1)
}

func (m *MockPropertyRepository) ListPropertiesByRealtor(ctx context.Context, realtorID string) ([]domain.Property, error) {
	args := m.Called(ctx, realtorID)
	var properties []domain.Property
	if args.Get(0) != nil {
		properties = args.Get(0).([]domain.Property)
	}
	return properties, args.Error(1)
}

func (m *MockPropertyRepository) SaveProperty(ctx context.Context, property domain.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}

func (m *MockPropertyRepository) AssignRealtor(ctx context.Context, propertyID, realtorID string, expectedVersion int64) error {
	args := m.Called(ctx, propertyID, realtorID, expectedVersion)
	return args.Error(0)
}

func (m *MockPropertyRepository) AddInterestedCustomer(ctx context.Context, propertyID, customerID string) error {
	args := m.Called(ctx, propertyID, customerID)
	return args.Error(0)
}

// MockApplicationRepository is a mock implementation of ApplicationRepositoryFacade.
type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) FindApplicationByID(ctx context.Context, applicationID string) (*domain.Application, error) {
	args := m.Called(ctx, applicationID)
	var application *domain.Application
	if args.Get(0) != nil {
		application = args.Get(0).(*domain.Application)
	}
	return application, args.Error(1)
}

func (m *MockApplicationRepository) HasActiveApplication(ctx context.Context, customerID, propertyID string) (bool, error) {
	args := m.Called(ctx, customerID, propertyID)
	return args.Bool(0), args.Error(1)
}

func (m *MockApplicationRepository) ListApplicationsByCustomer(ctx context.Context, customerID string) ([]domain.Application, error) {
	args := m.Called(ctx, customerID)
	var applications []domain.Application
	if args.Get(0) != nil {
		applications = args.Get(0).([]domain.Application)
	}
	return applications, args.Error(1)
}

func (m *MockApplicationRepository) ListApplicationsByProperty(ctx context.Context, propertyID string) ([]domain.Application, error) {
	args := m.Called(ctx, propertyID)
	var applications []domain.Application
	if args.Get(0) != nil {
		applications = args.Get(0).([]domain.Application)
	}
	return applications, args.Error(1)
}

func (m *MockApplicationRepository) ListApplicationsByRealtor(ctx context.Context, realtorID string) ([]domain.Application, error) {
	args := m.Called(ctx, realtorID)
	var applications []domain.Application
	if args.Get(0) != nil {
		applications = args.Get(0).([]domain.Application)
	}
	return applications, args.Error(1)
}

func (m *MockApplicationRepository) SaveApplication(ctx context.Context, application domain.Application) error {
	args := m.Called(ctx, application)
	return args.Error(0)
}

func (m *MockApplicationRepository) UpdateApplicationStatus(ctx context.Context, applicationID string, status domain.ApplicationStatus, reviewedBy string, expectedVersion int64) error {
	args := m.Called(ctx, applicationID, status, reviewedBy, expectedVersion)
	return args.Error(0)
}

// MockContractRepository is a mock implementation of ContractRepositoryFacade.
// The Fn fields, when set, take precedence over the testify expectations; the
// concurrency tests use them to run against a stateful in-memory store.
type MockContractRepository struct {
	mock.Mock
	FindContractByIDFn func(ctx context.Context, contractID string) (*domain.Contract, error)
	UpdateContractFn   func(ctx context.Context, contract domain.Contract, expectedVersion int64) error
	ExecuteContractFn  func(ctx context.Context, contract domain.Contract, expectedVersion int64, markPropertySold bool) error
}

func (m *MockContractRepository) FindContractByID(ctx context.Context, contractID string) (*domain.Contract, error) {
	if m.FindContractByIDFn != nil {
		return m.FindContractByIDFn(ctx, contractID)
	}
	args := m.Called(ctx, contractID)
	var contract *domain.Contract
	if args.Get(0) != nil {
		contract = args.Get(0).(*domain.Contract)
	}
	return contract, args.Error(1)
}

func (m *MockContractRepository) ListContractsByOwner(ctx context.Context, ownerID string) ([]domain.Contract, error) {
	args := m.Called(ctx, ownerID)
	var contracts []domain.Contract
	if args.Get(0) != nil {
		contracts = args.Get(0).([]domain.Contract)
	}
	return contracts, args.Error(1)
}

func (m *MockContractRepository) ListContractsByCustomer(ctx context.Context, customerID string) ([]domain.Contract, error) {
	args := m.Called(ctx, customerID)
	var contracts []domain.Contract
	if args.Get(0) != nil {
		contracts = args.Get(0).([]domain.Contract)
	}
	return contracts, args.Error(1)
}

func (m *MockContractRepository) ListContractsByRealtor(ctx context.Context, realtorID string) ([]domain.Contract, error) {
	args := m.Called(ctx, realtorID)
	var contracts []domain.Contract
	if args.Get(0) != nil {
		contracts = args.Get(0).([]domain.Contract)
	}
	return contracts, args.Error(1)
}

func (m *MockContractRepository) SaveContract(ctx context.Context, contract domain.Contract) error {
	args := m.Called(ctx, contract)
	return args.Error(0)
}

func (m *MockContractRepository) UpdateContract(ctx context.Context, contract domain.Contract, expectedVersion int64) error {
	if m.UpdateContractFn != nil {
		return m.UpdateContractFn(ctx, contract, expectedVersion)
	}
	args := m.Called(ctx, contract, expectedVersion)
	return args.Error(0)
}

func (m *MockContractRepository) ExecuteContract(ctx context.Context, contract domain.Contract, expectedVersion int64, markPropertySold bool) error {
	if m.ExecuteContractFn != nil {
		return m.ExecuteContractFn(ctx, contract, expectedVersion, markPropertySold)
	}
	args := m.Called(ctx, contract, expectedVersion, markPropertySold)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of EventPublisherSvc.
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishAccountDecided(ctx context.Context, event portssvc.AccountDecidedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventPublisher) PublishApplicationDecided(ctx context.Context, event portssvc.ApplicationDecidedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventPublisher) PublishContractExecuted(ctx context.Context, event portssvc.ContractExecutedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockListingCache is a mock implementation of ListingCache.
type MockListingCache struct {
	mock.Mock
}

func (m *MockListingCache) GetPropertyList(ctx context.Context) ([]domain.Property, bool) {
	args := m.Called(ctx)
	var properties []domain.Property
	if args.Get(0) != nil {
		properties = args.Get(0).([]domain.Property)
	}
	return properties, args.Bool(1)
}

func (m *MockListingCache) SetPropertyList(ctx context.Context, properties []domain.Property) {
	m.Called(ctx, properties)
}

func (m *MockListingCache) InvalidatePropertyList(ctx context.Context) {
	m.Called(ctx)
}
