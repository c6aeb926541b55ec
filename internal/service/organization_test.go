package service_test

import (
	"testing"

	"fleet-supply-backend/internal/database/models"
	apperrors "fleet-supply-backend/internal/errors"
	"fleet-supply-backend/internal/mocks"
	"fleet-supply-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// OrganizationServiceTestSuite defines the test suite for OrganizationService
type OrganizationServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *mocks.MockOrganizationRepositoryInterface
	mockUserRepo *mocks.MockUserRepositoryInterface
	orgService   *service.OrganizationService
	validator    *validator.Validate

	ownerID uuid.UUID
}

// SetupTest sets up the test suite
func (suite *OrganizationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.orgService = service.NewOrganizationService(suite.mockRepo, suite.mockUserRepo, suite.validator)
	suite.ownerID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *OrganizationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *OrganizationServiceTestSuite) ownerUser() *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: suite.ownerID},
		Email:     "owner@nordic-fleet.com",
		UserType:  models.UserTypeOrganizationOwner,
	}
}

// TestCreateOrganization tests creating an organization
func (suite *OrganizationServiceTestSuite) TestCreateOrganization() {
	req := &service.CreateOrganizationRequest{
		Name:        "nordic-fleet",
		DisplayName: "Nordic Fleet Services",
		Description: "Baltic supply operator",
		OwnerID:     suite.ownerID,
	}

	suite.mockUserRepo.EXPECT().GetByID(suite.ownerID).Return(suite.ownerUser(), nil).Times(1)
	suite.mockRepo.EXPECT().GetByName(req.Name).Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(org *models.Organization) error {
			org.ID = uuid.New()
			return nil
		}).
		Times(1)

	response, err := suite.orgService.Create(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), req.Name, response.Name)
	assert.Equal(suite.T(), suite.ownerID, response.OwnerID)
}

// TestCreateOrganizationRegularUser tests that regular users cannot found organizations
func (suite *OrganizationServiceTestSuite) TestCreateOrganizationRegularUser() {
	req := &service.CreateOrganizationRequest{
		Name:        "nordic-fleet",
		DisplayName: "Nordic Fleet Services",
		OwnerID:     suite.ownerID,
	}
	user := suite.ownerUser()
	user.UserType = models.UserTypeRegular

	suite.mockUserRepo.EXPECT().GetByID(suite.ownerID).Return(user, nil).Times(1)

	response, err := suite.orgService.Create(req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOwnerSignupRequired)
}

// TestCreateOrganizationDuplicateName tests creating an organization with an existing name
func (suite *OrganizationServiceTestSuite) TestCreateOrganizationDuplicateName() {
	req := &service.CreateOrganizationRequest{
		Name:        "nordic-fleet",
		DisplayName: "Nordic Fleet Services",
		OwnerID:     suite.ownerID,
	}

	suite.mockUserRepo.EXPECT().GetByID(suite.ownerID).Return(suite.ownerUser(), nil).Times(1)
	suite.mockRepo.EXPECT().
		GetByName(req.Name).
		Return(&models.Organization{Name: req.Name}, nil).
		Times(1)

	response, err := suite.orgService.Create(req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationExists)
}

// TestCreateOrganizationOwnerNotFound tests creating with an unknown owner
func (suite *OrganizationServiceTestSuite) TestCreateOrganizationOwnerNotFound() {
	req := &service.CreateOrganizationRequest{
		Name:        "nordic-fleet",
		DisplayName: "Nordic Fleet Services",
		OwnerID:     suite.ownerID,
	}

	suite.mockUserRepo.EXPECT().GetByID(suite.ownerID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	response, err := suite.orgService.Create(req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

// TestCreateOrganizationValidationError tests creating with a missing name
func (suite *OrganizationServiceTestSuite) TestCreateOrganizationValidationError() {
	req := &service.CreateOrganizationRequest{
		DisplayName: "Nordic Fleet Services",
		OwnerID:     suite.ownerID,
	}

	response, err := suite.orgService.Create(req)

	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestGetOrganizationNotFound tests getting a missing organization
func (suite *OrganizationServiceTestSuite) TestGetOrganizationNotFound() {
	id := uuid.New()

	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound).Times(1)

	response, err := suite.orgService.GetByID(id)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationNotFound)
}

// TestUpdateOrganization tests updating an organization
func (suite *OrganizationServiceTestSuite) TestUpdateOrganization() {
	org := &models.Organization{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		Name:        "nordic-fleet",
		DisplayName: "Nordic Fleet Services",
		OwnerID:     suite.ownerID,
	}
	req := &service.UpdateOrganizationRequest{
		DisplayName: "Nordic Fleet Services AS",
		Description: "Baltic and North Sea operator",
	}

	suite.mockRepo.EXPECT().GetByID(org.ID).Return(org, nil).Times(1)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)

	response, err := suite.orgService.Update(org.ID, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Nordic Fleet Services AS", response.DisplayName)
	// Name stays fixed, it anchors vessel name uniqueness.
	assert.Equal(suite.T(), "nordic-fleet", response.Name)
}

// TestListForUser tests listing organizations visible to a user
func (suite *OrganizationServiceTestSuite) TestListForUser() {
	userID := uuid.New()
	orgs := []models.Organization{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "nordic-fleet", OwnerID: userID},
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "pacific-lines", OwnerID: uuid.New()},
	}

	suite.mockRepo.EXPECT().ListForUser(userID).Return(orgs, nil).Times(1)

	responses, err := suite.orgService.ListForUser(userID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 2)
	assert.Equal(suite.T(), "nordic-fleet", responses[0].Name)
}

// TestOrganizationServiceTestSuite runs the test suite
func TestOrganizationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationServiceTestSuite))
}
