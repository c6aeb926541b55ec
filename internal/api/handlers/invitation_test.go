package handlers

import (
	"net/http"
	"testing"

	"fleet-supply-backend/internal/database/models"
	apperrors "fleet-supply-backend/internal/errors"
	"fleet-supply-backend/internal/mocks"
	"fleet-supply-backend/internal/service"
	"fleet-supply-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// InvitationHandlerTestSuite defines the test suite for InvitationHandler
type InvitationHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockInvitationServiceInterface
	handler     *InvitationHandler
	httpSuite   *testutils.HTTPTestSuite

	userID uuid.UUID
	orgID  uuid.UUID
}

// SetupTest sets up the test suite
func (suite *InvitationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockInvitationServiceInterface(suite.ctrl)
	suite.handler = NewInvitationHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.userID = uuid.New()
	suite.orgID = uuid.New()

	// Stand in for the auth middleware.
	suite.httpSuite.Router.Use(func(c *gin.Context) {
		c.Set("user_id", suite.userID)
		c.Next()
	})
	suite.httpSuite.Router.POST("/organizations/:id/invitations", suite.handler.IssueInvitation)
	suite.httpSuite.Router.GET("/organizations/:id/invitations", suite.handler.ListInvitations)
	suite.httpSuite.Router.DELETE("/organizations/:id/invitations/:invitation_id", suite.handler.RevokeInvitation)
	suite.httpSuite.Router.POST("/invitations/redeem", suite.handler.RedeemInvitation)
}

// TearDownTest cleans up after each test
func (suite *InvitationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestIssueInvitation tests issuing an invitation
func (suite *InvitationHandlerTestSuite) TestIssueInvitation() {
	body := map[string]interface{}{"email": "newcrew@test.com", "org_role": "member"}
	expected := &service.InvitationResponse{
		ID:             uuid.New(),
		Code:           "ABC234",
		Email:          "newcrew@test.com",
		OrganizationID: &suite.orgID,
		OrgRole:        "member",
		InvitedBy:      suite.userID,
		Status:         "pending",
	}

	suite.mockService.EXPECT().
		Issue(gomock.Any()).
		DoAndReturn(func(req *service.IssueInvitationRequest) (*service.InvitationResponse, error) {
			// The route pins the issuer and the organization scope.
			assert.Equal(suite.T(), suite.userID, req.InvitedBy)
			assert.Equal(suite.T(), suite.orgID, *req.OrganizationID)
			return expected, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/organizations/"+suite.orgID.String()+"/invitations", body)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
	var response service.InvitationResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "ABC234", response.Code)
	assert.Equal(suite.T(), "pending", response.Status)
}

// TestIssueInvitationInvalidOrgID tests issuing with a malformed organization ID
func (suite *InvitationHandlerTestSuite) TestIssueInvitationInvalidOrgID() {
	recorder := suite.httpSuite.MakeRequest("POST", "/organizations/not-a-uuid/invitations", map[string]interface{}{"email": "newcrew@test.com"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid organization ID")
}

// TestIssueInvitationVesselNotFound tests issuing scoped to a missing vessel
func (suite *InvitationHandlerTestSuite) TestIssueInvitationVesselNotFound() {
	suite.mockService.EXPECT().
		Issue(gomock.Any()).
		Return(nil, apperrors.ErrVesselNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/organizations/"+suite.orgID.String()+"/invitations", map[string]interface{}{
		"email":     "newcrew@test.com",
		"vessel_id": uuid.New().String(),
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "not found")
}

// TestIssueInvitationInvalidRole tests issuing with an unknown role
func (suite *InvitationHandlerTestSuite) TestIssueInvitationInvalidRole() {
	suite.mockService.EXPECT().
		Issue(gomock.Any()).
		Return(nil, apperrors.NewValidationError("org_role", "invalid organization role")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/organizations/"+suite.orgID.String()+"/invitations", map[string]interface{}{
		"email":    "newcrew@test.com",
		"org_role": "captain",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "validation error")
}

// TestRedeemInvitation tests redeeming a code
func (suite *InvitationHandlerTestSuite) TestRedeemInvitation() {
	expected := &service.RedeemInvitationResponse{
		OrganizationMember: &models.OrganizationMember{
			UserID:         suite.userID,
			OrganizationID: suite.orgID,
			Role:           models.OrgRoleMember,
			Status:         models.MemberStatusActive,
		},
	}

	suite.mockService.EXPECT().Redeem("ABC234", suite.userID).Return(expected, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/invitations/redeem", map[string]interface{}{"code": "ABC234"})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	var response service.RedeemInvitationResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.NotNil(suite.T(), response.OrganizationMember)
	assert.Equal(suite.T(), models.MemberStatusActive, response.OrganizationMember.Status)
}

// TestRedeemInvitationNotFound tests redeeming an unknown code
func (suite *InvitationHandlerTestSuite) TestRedeemInvitationNotFound() {
	suite.mockService.EXPECT().
		Redeem("ZZZZZZ", suite.userID).
		Return(nil, apperrors.ErrInvitationNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/invitations/redeem", map[string]interface{}{"code": "ZZZZZZ"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "not found")
}

// TestRedeemInvitationAlreadyUsed tests redeeming a consumed code
func (suite *InvitationHandlerTestSuite) TestRedeemInvitationAlreadyUsed() {
	suite.mockService.EXPECT().
		Redeem("ABC234", suite.userID).
		Return(nil, apperrors.ErrInvitationAlreadyUsed).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/invitations/redeem", map[string]interface{}{"code": "ABC234"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "already used")
}

// TestRedeemInvitationExpired tests redeeming an expired code
func (suite *InvitationHandlerTestSuite) TestRedeemInvitationExpired() {
	suite.mockService.EXPECT().
		Redeem("ABC234", suite.userID).
		Return(nil, apperrors.ErrInvitationExpired).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/invitations/redeem", map[string]interface{}{"code": "ABC234"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusGone, "expired")
}

// TestRedeemInvitationRevoked tests redeeming a revoked code
func (suite *InvitationHandlerTestSuite) TestRedeemInvitationRevoked() {
	suite.mockService.EXPECT().
		Redeem("ABC234", suite.userID).
		Return(nil, apperrors.ErrInvitationRevoked).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/invitations/redeem", map[string]interface{}{"code": "ABC234"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "revoked")
}

// TestListInvitations tests listing an organization's invitations
func (suite *InvitationHandlerTestSuite) TestListInvitations() {
	expected := &service.InvitationListResponse{
		Invitations: []service.InvitationResponse{{ID: uuid.New(), Code: "ABC234", Status: "pending"}},
		Total:       1,
		Page:        1,
		PageSize:    20,
	}

	suite.mockService.EXPECT().ListByOrganization(suite.orgID, 1, 20).Return(expected, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/organizations/"+suite.orgID.String()+"/invitations", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	var response service.InvitationListResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), int64(1), response.Total)
}

// TestRevokeInvitation tests revoking a pending invitation
func (suite *InvitationHandlerTestSuite) TestRevokeInvitation() {
	id := uuid.New()

	suite.mockService.EXPECT().Revoke(suite.orgID, id).Return(nil).Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/organizations/"+suite.orgID.String()+"/invitations/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestRevokeInvitationOtherOrganization tests that an invitation outside the
// route's organization is reported as not found
func (suite *InvitationHandlerTestSuite) TestRevokeInvitationOtherOrganization() {
	id := uuid.New()

	suite.mockService.EXPECT().Revoke(suite.orgID, id).Return(apperrors.ErrInvitationNotFound).Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/organizations/"+suite.orgID.String()+"/invitations/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "not found")
}

// TestRevokeConsumedInvitation tests revoking a code that was already redeemed
func (suite *InvitationHandlerTestSuite) TestRevokeConsumedInvitation() {
	id := uuid.New()

	suite.mockService.EXPECT().Revoke(suite.orgID, id).Return(apperrors.ErrInvitationAlreadyUsed).Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/organizations/"+suite.orgID.String()+"/invitations/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "already used")
}

// TestInvitationHandlerTestSuite runs the test suite
func TestInvitationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(InvitationHandlerTestSuite))
}
