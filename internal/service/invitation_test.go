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

// InvitationServiceTestSuite defines the test suite for InvitationService
type InvitationServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockInvitationRepo *mocks.MockInvitationRepositoryInterface
	mockMemberRepo     *mocks.MockOrganizationMemberRepositoryInterface
	mockUserVesselRepo *mocks.MockUserVesselRepositoryInterface
	mockOrgRepo        *mocks.MockOrganizationRepositoryInterface
	mockVesselRepo     *mocks.MockVesselRepositoryInterface
	mockUserRepo       *mocks.MockUserRepositoryInterface
	mockTxManager      *mocks.MockTxManager
	invitationService  *service.InvitationService
	validator          *validator.Validate
}

// SetupTest sets up the test suite
func (suite *InvitationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockInvitationRepo = mocks.NewMockInvitationRepositoryInterface(suite.ctrl)
	suite.mockMemberRepo = mocks.NewMockOrganizationMemberRepositoryInterface(suite.ctrl)
	suite.mockUserVesselRepo = mocks.NewMockUserVesselRepositoryInterface(suite.ctrl)
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockVesselRepo = mocks.NewMockVesselRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockTxManager = mocks.NewMockTxManager(suite.ctrl)
	suite.validator = validator.New()

	// Repositories hand themselves back when bound to a transaction.
	suite.mockInvitationRepo.EXPECT().WithTx(gomock.Any()).Return(suite.mockInvitationRepo).AnyTimes()
	suite.mockMemberRepo.EXPECT().WithTx(gomock.Any()).Return(suite.mockMemberRepo).AnyTimes()
	suite.mockUserVesselRepo.EXPECT().WithTx(gomock.Any()).Return(suite.mockUserVesselRepo).AnyTimes()

	suite.invitationService = service.NewInvitationService(
		suite.mockInvitationRepo,
		suite.mockMemberRepo,
		suite.mockUserVesselRepo,
		suite.mockOrgRepo,
		suite.mockVesselRepo,
		suite.mockUserRepo,
		suite.mockTxManager,
		suite.validator,
		72*time.Hour,
	)
}

// TearDownTest cleans up after each test
func (suite *InvitationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// expectTransaction makes the tx manager execute the unit of work directly
func (suite *InvitationServiceTestSuite) expectTransaction() {
	suite.mockTxManager.EXPECT().
		Transaction(gomock.Any()).
		DoAndReturn(func(fn func(tx *gorm.DB) error) error {
			return fn(nil)
		}).
		Times(1)
}

func (suite *InvitationServiceTestSuite) pendingInvitation(orgID uuid.UUID) *models.Invitation {
	return &models.Invitation{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		Code:           "ABC234",
		Email:          "deckhand@test.com",
		OrganizationID: &orgID,
		OrgRole:        models.OrgRoleMember,
		VesselRole:     models.VesselRoleCrew,
		InvitedBy:      uuid.New(),
		Status:         models.InvitationStatusPending,
		ExpiresAt:      time.Now().Add(time.Hour),
	}
}

// TestIssueInvitation tests issuing an organization-scoped invitation
func (suite *InvitationServiceTestSuite) TestIssueInvitation() {
	orgID := uuid.New()
	inviterID := uuid.New()
	req := &service.IssueInvitationRequest{
		InvitedBy:      inviterID,
		Email:          "deckhand@test.com",
		OrganizationID: &orgID,
		OrgRole:        "manager",
	}

	suite.mockUserRepo.EXPECT().
		GetByID(inviterID).
		Return(&models.User{BaseModel: models.BaseModel{ID: inviterID}}, nil).
		Times(1)
	suite.mockOrgRepo.EXPECT().
		GetByID(orgID).
		Return(&models.Organization{BaseModel: models.BaseModel{ID: orgID}}, nil).
		Times(1)
	suite.mockInvitationRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(invitation *models.Invitation) error {
			assert.Len(suite.T(), invitation.Code, models.InvitationCodeLength)
			assert.Equal(suite.T(), models.InvitationStatusPending, invitation.Status)
			assert.Equal(suite.T(), models.OrgRoleManager, invitation.OrgRole)
			return nil
		}).
		Times(1)

	response, err := suite.invitationService.Issue(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Len(suite.T(), response.Code, models.InvitationCodeLength)
	assert.Equal(suite.T(), "manager", response.OrgRole)
	assert.Equal(suite.T(), string(models.InvitationStatusPending), response.Status)
}

// TestIssueInvitationScopeMissing tests issuing without organization or vessel scope
func (suite *InvitationServiceTestSuite) TestIssueInvitationScopeMissing() {
	req := &service.IssueInvitationRequest{
		InvitedBy: uuid.New(),
		Email:     "deckhand@test.com",
	}

	response, err := suite.invitationService.Issue(req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvitationScopeMissing)
}

// TestIssueInvitationInvalidRole tests issuing with an unknown organization role
func (suite *InvitationServiceTestSuite) TestIssueInvitationInvalidRole() {
	orgID := uuid.New()
	req := &service.IssueInvitationRequest{
		InvitedBy:      uuid.New(),
		Email:          "deckhand@test.com",
		OrganizationID: &orgID,
		OrgRole:        "captain",
	}

	response, err := suite.invitationService.Issue(req)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestIssueInvitationWithVesselScope tests issuing a code tied to one of the
// organization's vessels
func (suite *InvitationServiceTestSuite) TestIssueInvitationWithVesselScope() {
	orgID := uuid.New()
	vesselID := uuid.New()
	inviterID := uuid.New()
	req := &service.IssueInvitationRequest{
		InvitedBy:      inviterID,
		Email:          "deckhand@test.com",
		OrganizationID: &orgID,
		VesselID:       &vesselID,
		VesselRole:     "chief_engineer",
	}

	suite.mockUserRepo.EXPECT().
		GetByID(inviterID).
		Return(&models.User{BaseModel: models.BaseModel{ID: inviterID}}, nil).
		Times(1)
	suite.mockOrgRepo.EXPECT().
		GetByID(orgID).
		Return(&models.Organization{BaseModel: models.BaseModel{ID: orgID}}, nil).
		Times(1)
	suite.mockVesselRepo.EXPECT().
		GetByID(vesselID).
		Return(&models.Vessel{BaseModel: models.BaseModel{ID: vesselID}, OrganizationID: orgID}, nil).
		Times(1)
	suite.mockInvitationRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(invitation *models.Invitation) error {
			assert.Equal(suite.T(), vesselID, *invitation.VesselID)
			assert.Equal(suite.T(), models.VesselRoleChiefEngineer, invitation.VesselRole)
			return nil
		}).
		Times(1)

	response, err := suite.invitationService.Issue(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
}

// TestIssueInvitationVesselOutsideOrganization tests that a vessel belonging
// to another organization cannot be attached as scope
func (suite *InvitationServiceTestSuite) TestIssueInvitationVesselOutsideOrganization() {
	orgID := uuid.New()
	vesselID := uuid.New()
	inviterID := uuid.New()
	req := &service.IssueInvitationRequest{
		InvitedBy:      inviterID,
		Email:          "deckhand@test.com",
		OrganizationID: &orgID,
		VesselID:       &vesselID,
	}

	suite.mockUserRepo.EXPECT().
		GetByID(inviterID).
		Return(&models.User{BaseModel: models.BaseModel{ID: inviterID}}, nil).
		Times(1)
	suite.mockOrgRepo.EXPECT().
		GetByID(orgID).
		Return(&models.Organization{BaseModel: models.BaseModel{ID: orgID}}, nil).
		Times(1)
	suite.mockVesselRepo.EXPECT().
		GetByID(vesselID).
		Return(&models.Vessel{BaseModel: models.BaseModel{ID: vesselID}, OrganizationID: uuid.New()}, nil).
		Times(1)

	response, err := suite.invitationService.Issue(req)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "vessel does not belong")
}

// TestIssueInvitationRetriesOnCodeCollision tests code regeneration on a unique-index collision
func (suite *InvitationServiceTestSuite) TestIssueInvitationRetriesOnCodeCollision() {
	orgID := uuid.New()
	inviterID := uuid.New()
	req := &service.IssueInvitationRequest{
		InvitedBy:      inviterID,
		Email:          "deckhand@test.com",
		OrganizationID: &orgID,
	}

	suite.mockUserRepo.EXPECT().
		GetByID(inviterID).
		Return(&models.User{BaseModel: models.BaseModel{ID: inviterID}}, nil).
		Times(1)
	suite.mockOrgRepo.EXPECT().
		GetByID(orgID).
		Return(&models.Organization{BaseModel: models.BaseModel{ID: orgID}}, nil).
		Times(1)

	first := suite.mockInvitationRepo.EXPECT().
		Create(gomock.Any()).
		Return(gorm.ErrDuplicatedKey).
		Times(1)
	suite.mockInvitationRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1).
		After(first)

	response, err := suite.invitationService.Issue(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
}

// TestRedeemInvitation tests redeeming a pending organization invitation
func (suite *InvitationServiceTestSuite) TestRedeemInvitation() {
	userID := uuid.New()
	orgID := uuid.New()
	invitation := suite.pendingInvitation(orgID)

	suite.mockUserRepo.EXPECT().
		GetByID(userID).
		Return(&models.User{BaseModel: models.BaseModel{ID: userID}}, nil).
		Times(1)
	suite.expectTransaction()
	suite.mockInvitationRepo.EXPECT().
		GetByCodeForUpdate(invitation.Code).
		Return(invitation, nil).
		Times(1)
	suite.mockMemberRepo.EXPECT().
		GetByUserAndOrg(userID, orgID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockMemberRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(member *models.OrganizationMember) error {
			assert.Equal(suite.T(), userID, member.UserID)
			assert.Equal(suite.T(), orgID, member.OrganizationID)
			assert.Equal(suite.T(), models.OrgRoleMember, member.Role)
			assert.Equal(suite.T(), models.MemberStatusActive, member.Status)
			return nil
		}).
		Times(1)
	suite.mockInvitationRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(inv *models.Invitation) error {
			assert.Equal(suite.T(), models.InvitationStatusConsumed, inv.Status)
			assert.Equal(suite.T(), userID, *inv.ConsumedBy)
			assert.NotNil(suite.T(), inv.ConsumedAt)
			return nil
		}).
		Times(1)

	result, err := suite.invitationService.Redeem(invitation.Code, userID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), result.OrganizationMember)
	assert.Nil(suite.T(), result.UserVessel)
}

// TestRedeemInvitationWithVesselScope tests that a vessel-scoped invitation grants vessel access
func (suite *InvitationServiceTestSuite) TestRedeemInvitationWithVesselScope() {
	userID := uuid.New()
	orgID := uuid.New()
	vesselID := uuid.New()
	invitation := suite.pendingInvitation(orgID)
	invitation.VesselID = &vesselID
	invitation.VesselRole = models.VesselRoleSupplier

	suite.mockUserRepo.EXPECT().
		GetByID(userID).
		Return(&models.User{BaseModel: models.BaseModel{ID: userID}}, nil).
		Times(1)
	suite.expectTransaction()
	suite.mockInvitationRepo.EXPECT().
		GetByCodeForUpdate(invitation.Code).
		Return(invitation, nil).
		Times(1)
	suite.mockMemberRepo.EXPECT().
		GetByUserAndOrg(userID, orgID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockMemberRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)
	suite.mockUserVesselRepo.EXPECT().
		GetByUserAndVessel(userID, vesselID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockUserVesselRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(uv *models.UserVessel) error {
			assert.Equal(suite.T(), models.VesselRoleSupplier, uv.Role)
			assert.Equal(suite.T(), models.AccessStatusActive, uv.AccessStatus)
			return nil
		}).
		Times(1)
	suite.mockInvitationRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	result, err := suite.invitationService.Redeem(invitation.Code, userID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), result.OrganizationMember)
	assert.NotNil(suite.T(), result.UserVessel)
}

// TestRedeemInvitationExistingMembership tests that an existing membership makes redemption idempotent
func (suite *InvitationServiceTestSuite) TestRedeemInvitationExistingMembership() {
	userID := uuid.New()
	orgID := uuid.New()
	invitation := suite.pendingInvitation(orgID)
	existing := &models.OrganizationMember{
		UserID:         userID,
		OrganizationID: orgID,
		Role:           models.OrgRoleAdmin,
		Status:         models.MemberStatusActive,
	}

	suite.mockUserRepo.EXPECT().
		GetByID(userID).
		Return(&models.User{BaseModel: models.BaseModel{ID: userID}}, nil).
		Times(1)
	suite.expectTransaction()
	suite.mockInvitationRepo.EXPECT().
		GetByCodeForUpdate(invitation.Code).
		Return(invitation, nil).
		Times(1)
	suite.mockMemberRepo.EXPECT().
		GetByUserAndOrg(userID, orgID).
		Return(existing, nil).
		Times(1)
	suite.mockInvitationRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	result, err := suite.invitationService.Redeem(invitation.Code, userID)

	assert.NoError(suite.T(), err)
	// The existing row is returned untouched; the admin role is not downgraded.
	assert.Equal(suite.T(), models.OrgRoleAdmin, result.OrganizationMember.Role)
}

// TestRedeemInvitationAlreadyConsumed tests that a consumed code cannot be redeemed again
func (suite *InvitationServiceTestSuite) TestRedeemInvitationAlreadyConsumed() {
	userID := uuid.New()
	invitation := suite.pendingInvitation(uuid.New())
	invitation.Status = models.InvitationStatusConsumed

	suite.mockUserRepo.EXPECT().
		GetByID(userID).
		Return(&models.User{BaseModel: models.BaseModel{ID: userID}}, nil).
		Times(1)
	suite.expectTransaction()
	suite.mockInvitationRepo.EXPECT().
		GetByCodeForUpdate(invitation.Code).
		Return(invitation, nil).
		Times(1)

	result, err := suite.invitationService.Redeem(invitation.Code, userID)

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvitationAlreadyUsed)
}

// TestRedeemInvitationRevoked tests that a revoked code cannot be redeemed
func (suite *InvitationServiceTestSuite) TestRedeemInvitationRevoked() {
	userID := uuid.New()
	invitation := suite.pendingInvitation(uuid.New())
	invitation.Status = models.InvitationStatusRevoked

	suite.mockUserRepo.EXPECT().
		GetByID(userID).
		Return(&models.User{BaseModel: models.BaseModel{ID: userID}}, nil).
		Times(1)
	suite.expectTransaction()
	suite.mockInvitationRepo.EXPECT().
		GetByCodeForUpdate(invitation.Code).
		Return(invitation, nil).
		Times(1)

	result, err := suite.invitationService.Redeem(invitation.Code, userID)

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvitationRevoked)
}

// TestRedeemInvitationExpired tests that a lapsed code is rejected and marked expired
func (suite *InvitationServiceTestSuite) TestRedeemInvitationExpired() {
	userID := uuid.New()
	invitation := suite.pendingInvitation(uuid.New())
	invitation.ExpiresAt = time.Now().Add(-time.Minute)

	suite.mockUserRepo.EXPECT().
		GetByID(userID).
		Return(&models.User{BaseModel: models.BaseModel{ID: userID}}, nil).
		Times(1)
	suite.expectTransaction()
	suite.mockInvitationRepo.EXPECT().
		GetByCodeForUpdate(invitation.Code).
		Return(invitation, nil).
		Times(1)
	// The expiry transition is persisted outside the rolled-back transaction.
	suite.mockInvitationRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(inv *models.Invitation) error {
			assert.Equal(suite.T(), models.InvitationStatusExpired, inv.Status)
			return nil
		}).
		Times(1)

	result, err := suite.invitationService.Redeem(invitation.Code, userID)

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvitationExpired)
}

// TestRedeemInvitationNotFound tests redeeming an unknown code
func (suite *InvitationServiceTestSuite) TestRedeemInvitationNotFound() {
	userID := uuid.New()

	suite.mockUserRepo.EXPECT().
		GetByID(userID).
		Return(&models.User{BaseModel: models.BaseModel{ID: userID}}, nil).
		Times(1)
	suite.expectTransaction()
	suite.mockInvitationRepo.EXPECT().
		GetByCodeForUpdate("ZZZZZZ").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	result, err := suite.invitationService.Redeem("ZZZZZZ", userID)

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvitationNotFound)
}

// TestRedeemInvitationBadCode tests that a malformed code fails validation before any lookup
func (suite *InvitationServiceTestSuite) TestRedeemInvitationBadCode() {
	result, err := suite.invitationService.Redeem("TOO-LONG-CODE", uuid.New())

	assert.Nil(suite.T(), result)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestRevokeInvitation tests revoking a pending invitation
func (suite *InvitationServiceTestSuite) TestRevokeInvitation() {
	orgID := uuid.New()
	invitation := suite.pendingInvitation(orgID)

	suite.expectTransaction()
	suite.mockInvitationRepo.EXPECT().
		GetByID(invitation.ID).
		Return(invitation, nil).
		Times(1)
	suite.mockInvitationRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(inv *models.Invitation) error {
			assert.Equal(suite.T(), models.InvitationStatusRevoked, inv.Status)
			return nil
		}).
		Times(1)

	err := suite.invitationService.Revoke(orgID, invitation.ID)

	assert.NoError(suite.T(), err)
}

// TestRevokeInvitationWrongOrganization tests that an invitation scoped to
// another organization cannot be revoked through this one
func (suite *InvitationServiceTestSuite) TestRevokeInvitationWrongOrganization() {
	invitation := suite.pendingInvitation(uuid.New())

	suite.expectTransaction()
	suite.mockInvitationRepo.EXPECT().
		GetByID(invitation.ID).
		Return(invitation, nil).
		Times(1)

	err := suite.invitationService.Revoke(uuid.New(), invitation.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvitationNotFound)
}

// TestRevokeConsumedInvitation tests that a consumed invitation cannot be revoked
func (suite *InvitationServiceTestSuite) TestRevokeConsumedInvitation() {
	orgID := uuid.New()
	invitation := suite.pendingInvitation(orgID)
	invitation.Status = models.InvitationStatusConsumed

	suite.expectTransaction()
	suite.mockInvitationRepo.EXPECT().
		GetByID(invitation.ID).
		Return(invitation, nil).
		Times(1)

	err := suite.invitationService.Revoke(orgID, invitation.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvitationAlreadyUsed)
}

// TestInvitationServiceTestSuite runs the test suite
func TestInvitationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvitationServiceTestSuite))
}
