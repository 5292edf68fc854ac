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

type PropertyServiceTestSuite struct {
	suite.Suite
	mockPropertyRepo *MockPropertyRepository
	mockAccountRepo  *MockAccountRepository
	mockCache        *MockListingCache
	service          portssvc.PropertySvcFacade
}

func (suite *PropertyServiceTestSuite) SetupTest() {
	suite.mockPropertyRepo = new(MockPropertyRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockCache = new(MockListingCache)
	suite.service = services.NewPropertyService(suite.mockPropertyRepo, suite.mockAccountRepo, suite.mockCache)
}

func TestPropertyServiceSuite(t *testing.T) {
	suite.Run(t, new(PropertyServiceTestSuite))
}

func (suite *PropertyServiceTestSuite) TestCreateProperty_Success() {
	ctx := context.Background()
	owner := &domain.Owner{OwnerID: "own-1", Status: domain.ApprovalApproved}
	req := dto.CreatePropertyRequest{
		Name:  "Hillside Villa",
		Type:  domain.PropertyHouse,
		Price: decimal.NewFromInt(450000),
	}

	suite.mockAccountRepo.On("FindOwnerByID", ctx, "own-1").Return(owner, nil).Once()
	suite.mockPropertyRepo.On("SaveProperty", ctx, mock.MatchedBy(func(property domain.Property) bool {
		return property.OwnerID == "own-1" &&
			property.Status == domain.PropertyAvailable &&
			property.Version == 1
	})).Return(nil).Once()
	suite.mockCache.On("InvalidatePropertyList", ctx).Return().Once()

	property, err := suite.service.CreateProperty(ctx, "own-1", req)

	suite.Require().NoError(err)
	suite.Equal(domain.PropertyAvailable, property.Status)
	suite.NotEmpty(property.PropertyID)
	suite.mockPropertyRepo.AssertExpectations(suite.T())
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *PropertyServiceTestSuite) TestCreateProperty_NonPositivePrice() {
	ctx := context.Background()

	for _, price := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-500)} {
		_, err := suite.service.CreateProperty(ctx, "own-1", dto.CreatePropertyRequest{
			Name:  "Hillside Villa",
			Type:  domain.PropertyHouse,
			Price: price,
		})

		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindOwnerByID", mock.Anything, mock.Anything)
	suite.mockPropertyRepo.AssertNotCalled(suite.T(), "SaveProperty", mock.Anything, mock.Anything)
}

func (suite *PropertyServiceTestSuite) TestCreateProperty_UnapprovedOwner() {
	ctx := context.Background()
	owner := &domain.Owner{OwnerID: "own-1", Status: domain.ApprovalPending}

	suite.mockAccountRepo.On("FindOwnerByID", ctx, "own-1").Return(owner, nil).Once()

	_, err := suite.service.CreateProperty(ctx, "own-1", dto.CreatePropertyRequest{
		Name:  "Corner Plot",
		Type:  domain.PropertyPlot,
		Price: decimal.NewFromInt(90000),
	})

	// A token issued before a rejection is not enough; approval is re-read.
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockPropertyRepo.AssertNotCalled(suite.T(), "SaveProperty", mock.Anything, mock.Anything)
}

func (suite *PropertyServiceTestSuite) TestCreateProperty_UnapprovedAssignedRealtor() {
	ctx := context.Background()
	owner := &domain.Owner{OwnerID: "own-1", Status: domain.ApprovalApproved}
	realtor := &domain.Realtor{RealtorID: "rea-1", Status: domain.ApprovalPending}

	suite.mockAccountRepo.On("FindOwnerByID", ctx, "own-1").Return(owner, nil).Once()
	suite.mockAccountRepo.On("FindRealtorByID", ctx, "rea-1").Return(realtor, nil).Once()

	_, err := suite.service.CreateProperty(ctx, "own-1", dto.CreatePropertyRequest{
		Name:      "Hillside Villa",
		Type:      domain.PropertyHouse,
		Price:     decimal.NewFromInt(450000),
		RealtorID: "rea-1",
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPropertyRepo.AssertNotCalled(suite.T(), "SaveProperty", mock.Anything, mock.Anything)
}

func (suite *PropertyServiceTestSuite) TestListProperties_CacheHit() {
	ctx := context.Background()
	cached := []domain.Property{{PropertyID: "prop-1"}}

	suite.mockCache.On("GetPropertyList", ctx).Return(cached, true).Once()

	properties, err := suite.service.ListProperties(ctx)

	suite.Require().NoError(err)
	suite.Len(properties, 1)
	suite.mockPropertyRepo.AssertNotCalled(suite.T(), "ListProperties", mock.Anything)
}

func (suite *PropertyServiceTestSuite) TestListProperties_CacheMissFillsCache() {
	ctx := context.Background()
	stored := []domain.Property{{PropertyID: "prop-1"}, {PropertyID: "prop-2"}}

	suite.mockCache.On("GetPropertyList", ctx).Return(nil, false).Once()
	suite.mockPropertyRepo.On("ListProperties", ctx).Return(stored, nil).Once()
	suite.mockCache.On("SetPropertyList", ctx, stored).Return().Once()

	properties, err := suite.service.ListProperties(ctx)

	suite.Require().NoError(err)
	suite.Len(properties, 2)
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *PropertyServiceTestSuite) TestAssignRealtor_Success() {
	ctx := context.Background()
	realtor := &domain.Realtor{RealtorID: "rea-1", Status: domain.ApprovalApproved}
	property := &domain.Property{PropertyID: "prop-1", OwnerID: "own-1", Version: 2}
	updated := &domain.Property{PropertyID: "prop-1", OwnerID: "own-1", RealtorID: "rea-1", Version: 3}

	suite.mockAccountRepo.On("FindRealtorByID", ctx, "rea-1").Return(realtor, nil).Once()
	suite.mockPropertyRepo.On("FindPropertyByID", ctx, "prop-1").Return(property, nil).Once()
	suite.mockPropertyRepo.On("AssignRealtor", ctx, "prop-1", "rea-1", int64(2)).Return(nil).Once()
	suite.mockPropertyRepo.On("FindPropertyByID", ctx, "prop-1").Return(updated, nil).Once()

	result, err := suite.service.AssignRealtor(ctx, "own-1", "prop-1", "rea-1")

	suite.Require().NoError(err)
	suite.Equal("rea-1", result.RealtorID)
	suite.mockPropertyRepo.AssertExpectations(suite.T())
}

func (suite *PropertyServiceTestSuite) TestAssignRealtor_NotTheOwner() {
	ctx := context.Background()
	realtor := &domain.Realtor{RealtorID: "rea-1", Status: domain.ApprovalApproved}
	property := &domain.Property{PropertyID: "prop-1", OwnerID: "own-2", Version: 1}

	suite.mockAccountRepo.On("FindRealtorByID", ctx, "rea-1").Return(realtor, nil).Once()
	suite.mockPropertyRepo.On("FindPropertyByID", ctx, "prop-1").Return(property, nil).Once()

	_, err := suite.service.AssignRealtor(ctx, "own-1", "prop-1", "rea-1")

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockPropertyRepo.AssertNotCalled(suite.T(), "AssignRealtor", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PropertyServiceTestSuite) TestAssignRealtor_RetriesOnceOnConflict() {
	ctx := context.Background()
	realtor := &domain.Realtor{RealtorID: "rea-1", Status: domain.ApprovalApproved}
	stale := &domain.Property{PropertyID: "prop-1", OwnerID: "own-1", Version: 1}
	fresh := &domain.Property{PropertyID: "prop-1", OwnerID: "own-1", Version: 2}

	suite.mockAccountRepo.On("FindRealtorByID", ctx, "rea-1").Return(realtor, nil).Once()
	suite.mockPropertyRepo.On("FindPropertyByID", ctx, "prop-1").Return(stale, nil).Once()
	suite.mockPropertyRepo.On("AssignRealtor", ctx, "prop-1", "rea-1", int64(1)).
		Return(apperrors.ErrConflict).Once()
	suite.mockPropertyRepo.On("FindPropertyByID", ctx, "prop-1").Return(fresh, nil)
	suite.mockPropertyRepo.On("AssignRealtor", ctx, "prop-1", "rea-1", int64(2)).Return(nil).Once()

	_, err := suite.service.AssignRealtor(ctx, "own-1", "prop-1", "rea-1")

	suite.Require().NoError(err)
	suite.mockPropertyRepo.AssertExpectations(suite.T())
}

func (suite *PropertyServiceTestSuite) TestListApprovedRealtors_FiltersByStatus() {
	ctx := context.Background()
	approved := domain.ApprovalApproved

	suite.mockAccountRepo.On("ListRealtors", ctx, &approved).
		Return([]domain.Realtor{{RealtorID: "rea-1", Status: domain.ApprovalApproved}}, nil).Once()

	realtors, err := suite.service.ListApprovedRealtors(ctx)

	suite.Require().NoError(err)
	suite.Len(realtors, 1)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}
