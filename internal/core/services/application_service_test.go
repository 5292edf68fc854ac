package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/EstateDesk/estate_management_app/internal/apperrors"
	"github.com/EstateDesk/estate_management_app/internal/core/domain"
	portssvc "github.com/EstateDesk/estate_management_app/internal/core/ports/services"
	"github.com/EstateDesk/estate_management_app/internal/core/services"
	"github.com/EstateDesk/estate_management_app/internal/dto"
)

type ApplicationServiceTestSuite struct {
	suite.Suite
	mockApplicationRepo *MockApplicationRepository
	mockPropertyRepo    *MockPropertyRepository
	mockAccountRepo     *MockAccountRepository
	mockEvents          *MockEventPublisher
	service             portssvc.ApplicationSvcFacade
}

func (suite *ApplicationServiceTestSuite) SetupTest() {
	suite.mockApplicationRepo = new(MockApplicationRepository)
	suite.mockPropertyRepo = new(MockPropertyRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockEvents = new(MockEventPublisher)
	suite.service = services.NewApplicationService(
		suite.mockApplicationRepo,
		suite.mockPropertyRepo,
		suite.mockAccountRepo,
		suite.mockEvents,
	)
}

func TestApplicationServiceSuite(t *testing.T) {
	suite.Run(t, new(ApplicationServiceTestSuite))
}

func completeDocuments() domain.ApplicationDocuments {
	return domain.ApplicationDocuments{
		EmploymentProof: "doc://employment/1",
		GovernmentID:    "doc://gov-id/1",
		AddressProof:    "doc://address/1",
		BankStatement:   "doc://bank/1",
	}
}

func (suite *ApplicationServiceTestSuite) TestSubmitApplication_Success() {
	ctx := context.Background()
	property := &domain.Property{PropertyID: "prop-1", Status: domain.PropertyAvailable}
	req := dto.SubmitApplicationRequest{
		PropertyID:   "prop-1",
		FullName:     "Ana Costa",
		AnnualIncome: decimal.NewFromInt(72000),
		Documents:    completeDocuments(),
	}

	suite.mockPropertyRepo.On("FindPropertyByID", ctx, "prop-1").Return(property, nil).Once()
	suite.mockApplicationRepo.On("HasActiveApplication", ctx, "cust-1", "prop-1").Return(false, nil).Once()
	suite.mockApplicationRepo.On("SaveApplication", ctx, mock.MatchedBy(func(application domain.Application) bool {
		return application.CustomerID == "cust-1" &&
			application.PropertyID == "prop-1" &&
			application.Status == domain.ApplicationPending &&
			application.Version == 1
	})).Return(nil).Once()
	suite.mockPropertyRepo.On("AddInterestedCustomer", ctx, "prop-1", "cust-1").Return(nil).Once()

	application, err := suite.service.SubmitApplication(ctx, "cust-1", req)

	suite.Require().NoError(err)
	suite.Equal(domain.ApplicationPending, application.Status)
	suite.NotEmpty(application.ApplicationID)
	suite.mockApplicationRepo.AssertExpectations(suite.T())
}

func (suite *ApplicationServiceTestSuite) TestSubmitApplication_MissingDocuments() {
	ctx := context.Background()
	docs := completeDocuments()
	docs.BankStatement = ""

	_, err := suite.service.SubmitApplication(ctx, "cust-1", dto.SubmitApplicationRequest{
		PropertyID: "prop-1",
		FullName:   "Ana Costa",
		Documents:  docs,
	})

	suite.ErrorIs(err, apperrors.ErrMissingDocuments)
	suite.mockPropertyRepo.AssertNotCalled(suite.T(), "FindPropertyByID", mock.Anything, mock.Anything)
}

func (suite *ApplicationServiceTestSuite) TestSubmitApplication_PropertySold() {
	ctx := context.Background()
	property := &domain.Property{PropertyID: "prop-1", Status: domain.PropertySold}

	suite.mockPropertyRepo.On("FindPropertyByID", ctx, "prop-1").Return(property, nil).Once()

	_, err := suite.service.SubmitApplication(ctx, "cust-1", dto.SubmitApplicationRequest{
		PropertyID: "prop-1",
		FullName:   "Ana Costa",
		Documents:  completeDocuments(),
	})

	suite.ErrorIs(err, apperrors.ErrPropertyUnavailable)
}

func (suite *ApplicationServiceTestSuite) TestSubmitApplication_DuplicateActive() {
	ctx := context.Background()
	property := &domain.Property{PropertyID: "prop-1", Status: domain.PropertyAvailable}

	suite.mockPropertyRepo.On("FindPropertyByID", ctx, "prop-1").Return(property, nil).Once()
	suite.mockApplicationRepo.On("HasActiveApplication", ctx, "cust-1", "prop-1").Return(true, nil).Once()

	_, err := suite.service.SubmitApplication(ctx, "cust-1", dto.SubmitApplicationRequest{
		PropertyID: "prop-1",
		FullName:   "Ana Costa",
		Documents:  completeDocuments(),
	})

	suite.ErrorIs(err, apperrors.ErrDuplicateApplication)
	suite.mockApplicationRepo.AssertNotCalled(suite.T(), "SaveApplication", mock.Anything, mock.Anything)
}

func (suite *ApplicationServiceTestSuite) TestSubmitApplication_DuplicateRaceCaughtByIndex() {
	ctx := context.Background()
	property := &domain.Property{PropertyID: "prop-1", Status: domain.PropertyAvailable}

	suite.mockPropertyRepo.On("FindPropertyByID", ctx, "prop-1").Return(property, nil).Once()
	suite.mockApplicationRepo.On("HasActiveApplication", ctx, "cust-1", "prop-1").Return(false, nil).Once()
	suite.mockApplicationRepo.On("SaveApplication", ctx, mock.AnythingOfType("domain.Application")).
		Return(apperrors.ErrDuplicateApplication).Once()

	_, err := suite.service.SubmitApplication(ctx, "cust-1", dto.SubmitApplicationRequest{
		PropertyID: "prop-1",
		FullName:   "Ana Costa",
		Documents:  completeDocuments(),
	})

	suite.ErrorIs(err, apperrors.ErrDuplicateApplication)
}

func (suite *ApplicationServiceTestSuite) TestDecideApplication_Approve() {
	ctx := context.Background()
	application := &domain.Application{
		ApplicationID: "app-1",
		CustomerID:    "cust-1",
		PropertyID:    "prop-1",
		Status:        domain.ApplicationPending,
		Version:       1,
	}
	property := &domain.Property{PropertyID: "prop-1", RealtorID: "rea-1"}

	suite.mockApplicationRepo.On("FindApplicationByID", ctx, "app-1").Return(application, nil).Once()
	suite.mockPropertyRepo.On("FindPropertyByID", ctx, "prop-1").Return(property, nil).Once()
	suite.mockApplicationRepo.On("UpdateApplicationStatus", ctx, "app-1", domain.ApplicationApproved, "rea-1", int64(1)).
		Return(nil).Once()
	suite.mockAccountRepo.On("AddRealtorCustomer", ctx, "rea-1", "cust-1").Return(nil).Once()
	suite.mockEvents.On("PublishApplicationDecided", ctx, mock.MatchedBy(func(event portssvc.ApplicationDecidedEvent) bool {
		return event.ApplicationID == "app-1" && event.Outcome == "approved" && event.RealtorID == "rea-1"
	})).Return(nil).Once()

	decided, err := suite.service.DecideApplication(ctx, "rea-1", "app-1", domain.ApplicationApproved)

	suite.Require().NoError(err)
	suite.Equal(domain.ApplicationApproved, decided.Status)
	suite.Equal("rea-1", decided.ReviewedBy)
	suite.mockApplicationRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockEvents.AssertExpectations(suite.T())
}

func (suite *ApplicationServiceTestSuite) TestDecideApplication_Reject() {
	ctx := context.Background()
	application := &domain.Application{
		ApplicationID: "app-1",
		CustomerID:    "cust-1",
		PropertyID:    "prop-1",
		Status:        domain.ApplicationPending,
		Version:       1,
	}
	property := &domain.Property{PropertyID: "prop-1", RealtorID: "rea-1"}

	suite.mockApplicationRepo.On("FindApplicationByID", ctx, "app-1").Return(application, nil).Once()
	suite.mockPropertyRepo.On("FindPropertyByID", ctx, "prop-1").Return(property, nil).Once()
	suite.mockApplicationRepo.On("UpdateApplicationStatus", ctx, "app-1", domain.ApplicationRejected, "rea-1", int64(1)).
		Return(nil).Once()
	suite.mockEvents.On("PublishApplicationDecided", ctx, mock.AnythingOfType("services.ApplicationDecidedEvent")).
		Return(nil).Once()

	decided, err := suite.service.DecideApplication(ctx, "rea-1", "app-1", domain.ApplicationRejected)

	suite.Require().NoError(err)
	suite.Equal(domain.ApplicationRejected, decided.Status)
	// A rejection does not link the customer to the realtor.
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "AddRealtorCustomer", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ApplicationServiceTestSuite) TestDecideApplication_NotAssignedRealtor() {
	ctx := context.Background()
	application := &domain.Application{ApplicationID: "app-1", PropertyID: "prop-1", Status: domain.ApplicationPending}
	property := &domain.Property{PropertyID: "prop-1", RealtorID: "rea-2"}

	suite.mockApplicationRepo.On("FindApplicationByID", ctx, "app-1").Return(application, nil).Once()
	suite.mockPropertyRepo.On("FindPropertyByID", ctx, "prop-1").Return(property, nil).Once()

	_, err := suite.service.DecideApplication(ctx, "rea-1", "app-1", domain.ApplicationApproved)

	suite.ErrorIs(err, apperrors.ErrNotAssignedRealtor)
	suite.mockApplicationRepo.AssertNotCalled(suite.T(), "UpdateApplicationStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ApplicationServiceTestSuite) TestDecideApplication_RepeatOutcomeIsIdempotent() {
	ctx := context.Background()
	application := &domain.Application{
		ApplicationID: "app-1",
		CustomerID:    "cust-1",
		PropertyID:    "prop-1",
		Status:        domain.ApplicationApproved,
		ReviewedBy:    "rea-1",
		Version:       2,
	}
	property := &domain.Property{PropertyID: "prop-1", RealtorID: "rea-1"}

	suite.mockApplicationRepo.On("FindApplicationByID", ctx, "app-1").Return(application, nil).Once()
	suite.mockPropertyRepo.On("FindPropertyByID", ctx, "prop-1").Return(property, nil).Once()
	suite.mockApplicationRepo.On("UpdateApplicationStatus", ctx, "app-1", domain.ApplicationApproved, "rea-1", int64(2)).
		Return(nil).Once()
	suite.mockAccountRepo.On("AddRealtorCustomer", ctx, "rea-1", "cust-1").Return(nil).Once()
	suite.mockEvents.On("PublishApplicationDecided", ctx, mock.AnythingOfType("services.ApplicationDecidedEvent")).
		Return(nil).Once()

	decided, err := suite.service.DecideApplication(ctx, "rea-1", "app-1", domain.ApplicationApproved)

	suite.Require().NoError(err)
	suite.Equal(domain.ApplicationApproved, decided.Status)
}

func (suite *ApplicationServiceTestSuite) TestDecideApplication_ConflictingOutcome() {
	ctx := context.Background()
	application := &domain.Application{ApplicationID: "app-1", PropertyID: "prop-1", Status: domain.ApplicationApproved}
	property := &domain.Property{PropertyID: "prop-1", RealtorID: "rea-1"}

	suite.mockApplicationRepo.On("FindApplicationByID", ctx, "app-1").Return(application, nil).Once()
	suite.mockPropertyRepo.On("FindPropertyByID", ctx, "prop-1").Return(property, nil).Once()

	_, err := suite.service.DecideApplication(ctx, "rea-1", "app-1", domain.ApplicationRejected)

	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
}

func (suite *ApplicationServiceTestSuite) TestDecideApplication_InvalidOutcome() {
	ctx := context.Background()

	_, err := suite.service.DecideApplication(ctx, "rea-1", "app-1", domain.ApplicationWithdrawn)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockApplicationRepo.AssertNotCalled(suite.T(), "FindApplicationByID", mock.Anything, mock.Anything)
}

func (suite *ApplicationServiceTestSuite) TestWithdrawApplication_Success() {
	ctx := context.Background()
	application := &domain.Application{
		ApplicationID: "app-1",
		CustomerID:    "cust-1",
		Status:        domain.ApplicationPending,
		Version:       1,
	}

	suite.mockApplicationRepo.On("FindApplicationByID", ctx, "app-1").Return(application, nil).Once()
	suite.mockApplicationRepo.On("UpdateApplicationStatus", ctx, "app-1", domain.ApplicationWithdrawn, "", int64(1)).
		Return(nil).Once()

	err := suite.service.WithdrawApplication(ctx, "cust-1", "app-1")

	suite.Require().NoError(err)
	suite.mockApplicationRepo.AssertExpectations(suite.T())
}

func (suite *ApplicationServiceTestSuite) TestWithdrawApplication_NotTheApplicant() {
	ctx := context.Background()
	application := &domain.Application{ApplicationID: "app-1", CustomerID: "cust-2", Status: domain.ApplicationPending}

	suite.mockApplicationRepo.On("FindApplicationByID", ctx, "app-1").Return(application, nil).Once()

	err := suite.service.WithdrawApplication(ctx, "cust-1", "app-1")

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ApplicationServiceTestSuite) TestWithdrawApplication_AlreadyDecided() {
	ctx := context.Background()
	application := &domain.Application{ApplicationID: "app-1", CustomerID: "cust-1", Status: domain.ApplicationApproved}

	suite.mockApplicationRepo.On("FindApplicationByID", ctx, "app-1").Return(application, nil).Once()

	err := suite.service.WithdrawApplication(ctx, "cust-1", "app-1")

	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
	suite.mockApplicationRepo.AssertNotCalled(suite.T(), "UpdateApplicationStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ApplicationServiceTestSuite) TestListPropertyApplications_NotAssignedRealtor() {
	ctx := context.Background()
	property := &domain.Property{PropertyID: "prop-1", RealtorID: "rea-2"}

	suite.mockPropertyRepo.On("FindPropertyByID", ctx, "prop-1").Return(property, nil).Once()

	_, err := suite.service.ListPropertyApplications(ctx, "rea-1", "prop-1")

	suite.ErrorIs(err, apperrors.ErrNotAssignedRealtor)
	suite.mockApplicationRepo.AssertNotCalled(suite.T(), "ListApplicationsByProperty", mock.Anything, mock.Anything)
}
