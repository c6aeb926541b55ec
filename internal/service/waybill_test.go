package service_test

import (
	"testing"
	"time"

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

// WaybillServiceTestSuite defines the test suite for WaybillService
type WaybillServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockRepo        *mocks.MockWaybillRepositoryInterface
	mockRequestRepo *mocks.MockSupplyRequestRepositoryInterface
	waybillService  *service.WaybillService
	validator       *validator.Validate

	requestID uuid.UUID
}

// SetupTest sets up the test suite
func (suite *WaybillServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockWaybillRepositoryInterface(suite.ctrl)
	suite.mockRequestRepo = mocks.NewMockSupplyRequestRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.waybillService = service.NewWaybillService(suite.mockRepo, suite.mockRequestRepo, suite.validator)
	suite.requestID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *WaybillServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *WaybillServiceTestSuite) orderedRequest() *models.SupplyRequest {
	return &models.SupplyRequest{
		BaseModel: models.BaseModel{ID: suite.requestID},
		VesselID:  uuid.New(),
		Title:     "Fresh provisions",
		Status:    models.SupplyStatusOrdered,
	}
}

func (suite *WaybillServiceTestSuite) storedWaybill(status models.WaybillStatus) *models.Waybill {
	return &models.Waybill{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		SupplyRequestID: suite.requestID,
		Number:          "WB-1001",
		Carrier:         "Nordic Freight",
		OriginPort:      "Rotterdam",
		DestinationPort: "Singapore",
		Status:          status,
		IssuedAt:        time.Now().UTC().Add(-24 * time.Hour),
	}
}

// TestCreateWaybill tests issuing a waybill for an ordered request
func (suite *WaybillServiceTestSuite) TestCreateWaybill() {
	req := &service.CreateWaybillRequest{
		Number:          "WB-1001",
		Carrier:         "Nordic Freight",
		OriginPort:      "Rotterdam",
		DestinationPort: "Singapore",
	}

	suite.mockRequestRepo.EXPECT().
		GetByID(suite.requestID).
		Return(suite.orderedRequest(), nil).
		Times(1)
	suite.mockRepo.EXPECT().
		GetByNumber(req.Number).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(waybill *models.Waybill) error {
			waybill.ID = uuid.New()
			return nil
		}).
		Times(1)

	response, err := suite.waybillService.Create(suite.requestID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), models.WaybillStatusIssued, response.Status)
	assert.Equal(suite.T(), "WB-1001", response.Number)
	assert.NotEmpty(suite.T(), response.IssuedAt)
}

// TestCreateWaybillRequestNotOrdered tests that only ordered requests get waybills
func (suite *WaybillServiceTestSuite) TestCreateWaybillRequestNotOrdered() {
	request := suite.orderedRequest()
	request.Status = models.SupplyStatusApproved

	suite.mockRequestRepo.EXPECT().GetByID(suite.requestID).Return(request, nil).Times(1)

	response, err := suite.waybillService.Create(suite.requestID, &service.CreateWaybillRequest{Number: "WB-1001"})

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestCreateWaybillDuplicateNumber tests rejecting a number already in use
func (suite *WaybillServiceTestSuite) TestCreateWaybillDuplicateNumber() {
	suite.mockRequestRepo.EXPECT().
		GetByID(suite.requestID).
		Return(suite.orderedRequest(), nil).
		Times(1)
	suite.mockRepo.EXPECT().
		GetByNumber("WB-1001").
		Return(suite.storedWaybill(models.WaybillStatusIssued), nil).
		Times(1)

	response, err := suite.waybillService.Create(suite.requestID, &service.CreateWaybillRequest{Number: "WB-1001"})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrWaybillExists)
}

// TestCreateWaybillRequestNotFound tests issuing against a missing request
func (suite *WaybillServiceTestSuite) TestCreateWaybillRequestNotFound() {
	suite.mockRequestRepo.EXPECT().
		GetByID(suite.requestID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.waybillService.Create(suite.requestID, &service.CreateWaybillRequest{Number: "WB-1001"})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSupplyRequestNotFound)
}

// TestUpdateStatusInTransit tests marking a waybill in transit
func (suite *WaybillServiceTestSuite) TestUpdateStatusInTransit() {
	waybill := suite.storedWaybill(models.WaybillStatusIssued)

	suite.mockRepo.EXPECT().GetByID(waybill.ID).Return(waybill, nil).Times(1)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)

	response, err := suite.waybillService.UpdateStatus(waybill.ID, &service.UpdateWaybillStatusRequest{
		Status: string(models.WaybillStatusInTransit),
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.WaybillStatusInTransit, response.Status)
	assert.Empty(suite.T(), response.DeliveredAt)
}

// TestUpdateStatusDeliveredFlipsRequest tests that the last delivered waybill
// marks the parent request delivered
func (suite *WaybillServiceTestSuite) TestUpdateStatusDeliveredFlipsRequest() {
	waybill := suite.storedWaybill(models.WaybillStatusInTransit)
	request := suite.orderedRequest()

	suite.mockRepo.EXPECT().GetByID(waybill.ID).Return(waybill, nil).Times(1)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)
	// Snapshot the waybill at call time so the list reflects the delivered
	// transition applied by the service.
	suite.mockRepo.EXPECT().
		ListBySupplyRequest(suite.requestID, 100, 0).
		DoAndReturn(func(uuid.UUID, int, int) ([]models.Waybill, int64, error) {
			return []models.Waybill{*waybill}, 1, nil
		}).
		Times(1)
	suite.mockRequestRepo.EXPECT().GetByID(suite.requestID).Return(request, nil).Times(1)
	suite.mockRequestRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(updated *models.SupplyRequest) error {
			assert.Equal(suite.T(), models.SupplyStatusDelivered, updated.Status)
			return nil
		}).
		Times(1)

	response, err := suite.waybillService.UpdateStatus(waybill.ID, &service.UpdateWaybillStatusRequest{
		Status: string(models.WaybillStatusDelivered),
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.WaybillStatusDelivered, response.Status)
	assert.NotEmpty(suite.T(), response.DeliveredAt)
}

// TestUpdateStatusDeliveredWithOpenSibling tests that the parent request keeps
// its status while another waybill is still on the water
func (suite *WaybillServiceTestSuite) TestUpdateStatusDeliveredWithOpenSibling() {
	waybill := suite.storedWaybill(models.WaybillStatusInTransit)
	sibling := suite.storedWaybill(models.WaybillStatusInTransit)
	sibling.Number = "WB-1002"

	suite.mockRepo.EXPECT().GetByID(waybill.ID).Return(waybill, nil).Times(1)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)
	suite.mockRepo.EXPECT().
		ListBySupplyRequest(suite.requestID, 100, 0).
		DoAndReturn(func(uuid.UUID, int, int) ([]models.Waybill, int64, error) {
			return []models.Waybill{*waybill, *sibling}, 2, nil
		}).
		Times(1)

	response, err := suite.waybillService.UpdateStatus(waybill.ID, &service.UpdateWaybillStatusRequest{
		Status: string(models.WaybillStatusDelivered),
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.WaybillStatusDelivered, response.Status)
}

// TestUpdateStatusBackwards tests rejecting a reversal
func (suite *WaybillServiceTestSuite) TestUpdateStatusBackwards() {
	waybill := suite.storedWaybill(models.WaybillStatusDelivered)

	suite.mockRepo.EXPECT().GetByID(waybill.ID).Return(waybill, nil).Times(1)

	response, err := suite.waybillService.UpdateStatus(waybill.ID, &service.UpdateWaybillStatusRequest{
		Status: string(models.WaybillStatusInTransit),
	})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidStatusTransition)
}

// TestWaybillServiceTestSuite runs the test suite
func TestWaybillServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WaybillServiceTestSuite))
}
