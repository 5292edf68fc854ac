package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/EstateDesk/estate_management_app/internal/apperrors"
	"github.com/EstateDesk/estate_management_app/internal/core/domain"
	portssvc "github.com/EstateDesk/estate_management_app/internal/core/ports/services"
	"github.com/EstateDesk/estate_management_app/internal/core/services"
	"github.com/EstateDesk/estate_management_app/internal/dto"
	"github.com/EstateDesk/estate_management_app/internal/utils"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockEvents      *MockEventPublisher
	service         portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockEvents = new(MockEventPublisher)
	suite.service = services.NewAccountService(suite.mockAccountRepo, suite.mockEvents)
}

func TestAccountServiceSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

// --- Registration ---

func (suite *AccountServiceTestSuite) TestRegisterOwner_StartsPending() {
	ctx := context.Background()
	req := dto.RegisterOwnerRequest{
		Name:     "Maria Santos",
		Email:    "maria@example.com",
		Password: "correct horse battery",
	}

	suite.mockAccountRepo.On("SaveOwner", ctx, mock.MatchedBy(func(owner domain.Owner) bool {
		return owner.Email == req.Email &&
			owner.Status == domain.ApprovalPending &&
			owner.Version == 1 &&
			owner.PasswordHash != req.Password &&
			utils.CheckPasswordHash(req.Password, owner.PasswordHash)
	})).Return(nil).Once()

	owner, err := suite.service.RegisterOwner(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.ApprovalPending, owner.Status)
	suite.NotEmpty(owner.OwnerID)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestRegisterOwner_DuplicateEmail() {
	ctx := context.Background()
	req := dto.RegisterOwnerRequest{
		Name:     "Maria Santos",
		Email:    "maria@example.com",
		Password: "correct horse battery",
	}

	suite.mockAccountRepo.On("SaveOwner", ctx, mock.AnythingOfType("domain.Owner")).
		Return(apperrors.ErrDuplicate).Once()

	owner, err := suite.service.RegisterOwner(ctx, req)

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(owner)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestRegisterOwner_IncompleteRequest() {
	ctx := context.Background()

	for _, req := range []dto.RegisterOwnerRequest{
		{Email: "maria@example.com", Password: "correct horse battery"},
		{Name: "Maria Santos", Password: "correct horse battery"},
		{Name: "Maria Santos", Email: "maria@example.com"},
	} {
		_, err := suite.service.RegisterOwner(ctx, req)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveOwner", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestRegisterCustomer_IncompleteRequest() {
	ctx := context.Background()

	_, err := suite.service.RegisterCustomer(ctx, dto.RegisterCustomerRequest{
		Name:  "Ana Costa",
		Email: "ana@example.com",
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveCustomer", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestRegisterRealtor_StartsPending() {
	ctx := context.Background()
	req := dto.RegisterRealtorRequest{
		Name:     "Dev Kapoor",
		Email:    "dev@example.com",
		Password: "correct horse battery",
	}

	suite.mockAccountRepo.On("SaveRealtor", ctx, mock.MatchedBy(func(realtor domain.Realtor) bool {
		return realtor.Email == req.Email && realtor.Status == domain.ApprovalPending && realtor.Version == 1
	})).Return(nil).Once()

	realtor, err := suite.service.RegisterRealtor(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.ApprovalPending, realtor.Status)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetOrCreateGoogleCustomer_ExistingAccount() {
	ctx := context.Background()
	existing := &domain.Customer{CustomerID: "cust-1", Email: "g@example.com", AuthProvider: domain.AuthProviderGoogle}

	suite.mockAccountRepo.On("FindCustomerByEmail", ctx, "g@example.com").Return(existing, nil).Once()

	customer, err := suite.service.GetOrCreateGoogleCustomer(ctx, "g@example.com", "G User")

	suite.Require().NoError(err)
	suite.Equal("cust-1", customer.CustomerID)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveCustomer", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestGetOrCreateGoogleCustomer_ProvisionsOnFirstSignIn() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindCustomerByEmail", ctx, "g@example.com").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountRepo.On("SaveCustomer", ctx, mock.MatchedBy(func(customer domain.Customer) bool {
		return customer.Email == "g@example.com" &&
			customer.AuthProvider == domain.AuthProviderGoogle &&
			customer.PasswordHash == ""
	})).Return(nil).Once()

	customer, err := suite.service.GetOrCreateGoogleCustomer(ctx, "g@example.com", "G User")

	suite.Require().NoError(err)
	suite.Equal("G User", customer.Name)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetOrCreateGoogleCustomer_ConcurrentFirstSignIn() {
	ctx := context.Background()
	winner := &domain.Customer{CustomerID: "cust-1", Email: "g@example.com", AuthProvider: domain.AuthProviderGoogle}

	suite.mockAccountRepo.On("FindCustomerByEmail", ctx, "g@example.com").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountRepo.On("SaveCustomer", ctx, mock.AnythingOfType("domain.Customer")).
		Return(apperrors.ErrDuplicate).Once()
	suite.mockAccountRepo.On("FindCustomerByEmail", ctx, "g@example.com").
		Return(winner, nil).Once()

	customer, err := suite.service.GetOrCreateGoogleCustomer(ctx, "g@example.com", "G User")

	suite.Require().NoError(err)
	suite.Equal("cust-1", customer.CustomerID)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

// --- Authentication ---

func (suite *AccountServiceTestSuite) TestAuthenticateOwner_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct horse battery")
	suite.Require().NoError(err)
	owner := &domain.Owner{OwnerID: "own-1", Email: "maria@example.com", PasswordHash: hash, Status: domain.ApprovalApproved}

	suite.mockAccountRepo.On("FindOwnerByEmail", ctx, "maria@example.com").Return(owner, nil).Once()

	authenticated, err := suite.service.AuthenticateOwner(ctx, "maria@example.com", "correct horse battery")

	suite.Require().NoError(err)
	suite.Equal("own-1", authenticated.OwnerID)
}

func (suite *AccountServiceTestSuite) TestAuthenticateOwner_UnknownEmail() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindOwnerByEmail", ctx, "nobody@example.com").
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.AuthenticateOwner(ctx, "nobody@example.com", "whatever")

	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (suite *AccountServiceTestSuite) TestAuthenticateOwner_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("the real password")
	suite.Require().NoError(err)
	owner := &domain.Owner{OwnerID: "own-1", PasswordHash: hash, Status: domain.ApprovalApproved}

	suite.mockAccountRepo.On("FindOwnerByEmail", ctx, "maria@example.com").Return(owner, nil).Once()

	_, err = suite.service.AuthenticateOwner(ctx, "maria@example.com", "a guess")

	// Indistinguishable from the unknown-email case.
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (suite *AccountServiceTestSuite) TestAuthenticateOwner_PendingApproval() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct horse battery")
	suite.Require().NoError(err)
	owner := &domain.Owner{OwnerID: "own-1", PasswordHash: hash, Status: domain.ApprovalPending}

	suite.mockAccountRepo.On("FindOwnerByEmail", ctx, "maria@example.com").Return(owner, nil).Once()

	_, err = suite.service.AuthenticateOwner(ctx, "maria@example.com", "correct horse battery")

	suite.ErrorIs(err, apperrors.ErrPendingApproval)
}

func (suite *AccountServiceTestSuite) TestAuthenticateRealtor_Rejected() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct horse battery")
	suite.Require().NoError(err)
	realtor := &domain.Realtor{RealtorID: "rea-1", PasswordHash: hash, Status: domain.ApprovalRejected}

	suite.mockAccountRepo.On("FindRealtorByEmail", ctx, "dev@example.com").Return(realtor, nil).Once()

	_, err = suite.service.AuthenticateRealtor(ctx, "dev@example.com", "correct horse battery")

	suite.ErrorIs(err, apperrors.ErrPendingApproval)
}

func (suite *AccountServiceTestSuite) TestAuthenticateCustomer_GoogleAccountHasNoPassword() {
	ctx := context.Background()
	customer := &domain.Customer{CustomerID: "cust-1", PasswordHash: "", AuthProvider: domain.AuthProviderGoogle}

	suite.mockAccountRepo.On("FindCustomerByEmail", ctx, "g@example.com").Return(customer, nil).Once()

	_, err := suite.service.AuthenticateCustomer(ctx, "g@example.com", "anything")

	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

// --- Approval workflow ---

func (suite *AccountServiceTestSuite) TestDecide_ApprovesOwner() {
	ctx := context.Background()
	owner := &domain.Owner{OwnerID: "own-1", Status: domain.ApprovalPending, Version: 3}

	suite.mockAccountRepo.On("FindOwnerByID", ctx, "own-1").Return(owner, nil).Once()
	suite.mockAccountRepo.On("UpdateOwnerStatus", ctx, "own-1", domain.ApprovalApproved, int64(3)).
		Return(nil).Once()
	suite.mockEvents.On("PublishAccountDecided", ctx, mock.MatchedBy(func(event portssvc.AccountDecidedEvent) bool {
		return event.AccountID == "own-1" && event.Role == "owner" && event.Outcome == "approved"
	})).Return(nil).Once()

	err := suite.service.Decide(ctx, domain.RoleOwner, "own-1", domain.ApprovalApproved)

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockEvents.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDecide_SameOutcomeIsIdempotent() {
	ctx := context.Background()
	owner := &domain.Owner{OwnerID: "own-1", Status: domain.ApprovalApproved, Version: 4}

	suite.mockAccountRepo.On("FindOwnerByID", ctx, "own-1").Return(owner, nil).Once()
	suite.mockAccountRepo.On("UpdateOwnerStatus", ctx, "own-1", domain.ApprovalApproved, int64(4)).
		Return(nil).Once()
	suite.mockEvents.On("PublishAccountDecided", ctx, mock.AnythingOfType("services.AccountDecidedEvent")).
		Return(nil).Once()

	err := suite.service.Decide(ctx, domain.RoleOwner, "own-1", domain.ApprovalApproved)

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDecide_RetriesOnceOnConflict() {
	ctx := context.Background()
	stale := &domain.Realtor{RealtorID: "rea-1", Status: domain.ApprovalPending, Version: 1}
	fresh := &domain.Realtor{RealtorID: "rea-1", Status: domain.ApprovalPending, Version: 2}

	suite.mockAccountRepo.On("FindRealtorByID", ctx, "rea-1").Return(stale, nil).Once()
	suite.mockAccountRepo.On("UpdateRealtorStatus", ctx, "rea-1", domain.ApprovalApproved, int64(1)).
		Return(apperrors.ErrConflict).Once()
	suite.mockAccountRepo.On("FindRealtorByID", ctx, "rea-1").Return(fresh, nil).Once()
	suite.mockAccountRepo.On("UpdateRealtorStatus", ctx, "rea-1", domain.ApprovalApproved, int64(2)).
		Return(nil).Once()
	suite.mockEvents.On("PublishAccountDecided", ctx, mock.AnythingOfType("services.AccountDecidedEvent")).
		Return(nil).Once()

	err := suite.service.Decide(ctx, domain.RoleRealtor, "rea-1", domain.ApprovalApproved)

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDecide_SecondConflictSurfaces() {
	ctx := context.Background()
	owner := &domain.Owner{OwnerID: "own-1", Status: domain.ApprovalPending, Version: 1}

	suite.mockAccountRepo.On("FindOwnerByID", ctx, "own-1").Return(owner, nil).Twice()
	suite.mockAccountRepo.On("UpdateOwnerStatus", ctx, "own-1", domain.ApprovalRejected, int64(1)).
		Return(apperrors.ErrConflict).Twice()

	err := suite.service.Decide(ctx, domain.RoleOwner, "own-1", domain.ApprovalRejected)

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockEvents.AssertNotCalled(suite.T(), "PublishAccountDecided", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestDecide_InvalidOutcome() {
	ctx := context.Background()

	err := suite.service.Decide(ctx, domain.RoleOwner, "own-1", domain.ApprovalPending)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "UpdateOwnerStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestDecide_RoleWithoutApprovalGate() {
	ctx := context.Background()

	err := suite.service.Decide(ctx, domain.RoleCustomer, "cust-1", domain.ApprovalApproved)

	suite.ErrorIs(err, apperrors.ErrValidation)
}
