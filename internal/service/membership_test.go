package service_test

import (
	"testing"

	"fleet-supply-backend/internal/database/models"
	apperrors "fleet-supply-backend/internal/errors"
	"fleet-supply-backend/internal/mocks"
	"fleet-supply-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// MembershipServiceTestSuite defines the test suite for MembershipService
type MembershipServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockOrgRepo        *mocks.MockOrganizationRepositoryInterface
	mockMemberRepo     *mocks.MockOrganizationMemberRepositoryInterface
	mockUserVesselRepo *mocks.MockUserVesselRepositoryInterface
	mockVesselRepo     *mocks.MockVesselRepositoryInterface
	membershipService  *service.MembershipService
}

// SetupTest sets up the test suite
func (suite *MembershipServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockMemberRepo = mocks.NewMockOrganizationMemberRepositoryInterface(suite.ctrl)
	suite.mockUserVesselRepo = mocks.NewMockUserVesselRepositoryInterface(suite.ctrl)
	suite.mockVesselRepo = mocks.NewMockVesselRepositoryInterface(suite.ctrl)

	suite.membershipService = service.NewMembershipService(
		suite.mockOrgRepo,
		suite.mockMemberRepo,
		suite.mockUserVesselRepo,
		suite.mockVesselRepo,
	)
}

// TearDownTest cleans up after each test
func (suite *MembershipServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MembershipServiceTestSuite) newOrg(ownerID uuid.UUID) *models.Organization {
	return &models.Organization{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "northwind-fleet",
		OwnerID:   ownerID,
	}
}

// TestResolveOwner tests that the organization owner is privileged without a membership row
func (suite *MembershipServiceTestSuite) TestResolveOwner() {
	userID := uuid.New()
	org := suite.newOrg(userID)

	suite.mockOrgRepo.EXPECT().GetByID(org.ID).Return(org, nil).Times(1)
	suite.mockMemberRepo.EXPECT().GetByUserAndOrg(userID, org.ID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	membership, err := suite.membershipService.Resolve(userID, org.ID)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), membership.IsOwner)
	assert.Equal(suite.T(), service.PrivilegeSourceOwner, membership.Source)
	assert.True(suite.T(), membership.Privileged())
	assert.True(suite.T(), membership.CanCreateVessels())
	assert.True(suite.T(), membership.CanInviteMembers())
	assert.Nil(suite.T(), membership.OrgRole)
}

// TestResolveRolePrivilege tests privilege derived from an active admin or manager role
func (suite *MembershipServiceTestSuite) TestResolveRolePrivilege() {
	for _, role := range []models.OrgRole{models.OrgRoleAdmin, models.OrgRoleManager} {
		userID := uuid.New()
		org := suite.newOrg(uuid.New())
		member := &models.OrganizationMember{
			UserID:         userID,
			OrganizationID: org.ID,
			Role:           role,
			Status:         models.MemberStatusActive,
		}

		suite.mockOrgRepo.EXPECT().GetByID(org.ID).Return(org, nil).Times(1)
		suite.mockMemberRepo.EXPECT().GetByUserAndOrg(userID, org.ID).Return(member, nil).Times(1)

		membership, err := suite.membershipService.Resolve(userID, org.ID)

		assert.NoError(suite.T(), err)
		assert.False(suite.T(), membership.IsOwner)
		assert.Equal(suite.T(), service.PrivilegeSourceRole, membership.Source)
		assert.True(suite.T(), membership.Privileged())
		assert.Equal(suite.T(), role, *membership.OrgRole)
	}
}

// TestResolvePlainMember tests that a plain member carries no privilege
func (suite *MembershipServiceTestSuite) TestResolvePlainMember() {
	userID := uuid.New()
	org := suite.newOrg(uuid.New())
	member := &models.OrganizationMember{
		UserID:         userID,
		OrganizationID: org.ID,
		Role:           models.OrgRoleMember,
		Status:         models.MemberStatusActive,
	}

	suite.mockOrgRepo.EXPECT().GetByID(org.ID).Return(org, nil).Times(1)
	suite.mockMemberRepo.EXPECT().GetByUserAndOrg(userID, org.ID).Return(member, nil).Times(1)

	membership, err := suite.membershipService.Resolve(userID, org.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), service.PrivilegeSourceNone, membership.Source)
	assert.False(suite.T(), membership.Privileged())
	assert.Equal(suite.T(), models.OrgRoleMember, *membership.OrgRole)
}

// TestResolveSuspendedAdmin tests that a suspended admin keeps the role but loses privilege
func (suite *MembershipServiceTestSuite) TestResolveSuspendedAdmin() {
	userID := uuid.New()
	org := suite.newOrg(uuid.New())
	member := &models.OrganizationMember{
		UserID:         userID,
		OrganizationID: org.ID,
		Role:           models.OrgRoleAdmin,
		Status:         models.MemberStatusSuspended,
	}

	suite.mockOrgRepo.EXPECT().GetByID(org.ID).Return(org, nil).Times(1)
	suite.mockMemberRepo.EXPECT().GetByUserAndOrg(userID, org.ID).Return(member, nil).Times(1)

	membership, err := suite.membershipService.Resolve(userID, org.ID)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), membership.Privileged())
	assert.Equal(suite.T(), models.OrgRoleAdmin, *membership.OrgRole)
}

// TestResolveStranger tests that a user without any relation gets no privilege
func (suite *MembershipServiceTestSuite) TestResolveStranger() {
	userID := uuid.New()
	org := suite.newOrg(uuid.New())

	suite.mockOrgRepo.EXPECT().GetByID(org.ID).Return(org, nil).Times(1)
	suite.mockMemberRepo.EXPECT().GetByUserAndOrg(userID, org.ID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	membership, err := suite.membershipService.Resolve(userID, org.ID)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), membership.IsOwner)
	assert.False(suite.T(), membership.Privileged())
	assert.Nil(suite.T(), membership.OrgRole)
}

// TestResolveOrganizationNotFound tests resolving against a missing organization
func (suite *MembershipServiceTestSuite) TestResolveOrganizationNotFound() {
	userID := uuid.New()
	orgID := uuid.New()

	suite.mockOrgRepo.EXPECT().GetByID(orgID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	membership, err := suite.membershipService.Resolve(userID, orgID)

	assert.Nil(suite.T(), membership)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationNotFound)
}

// TestResolveVesselActiveGrant tests vessel access through an active UserVessel row
func (suite *MembershipServiceTestSuite) TestResolveVesselActiveGrant() {
	userID := uuid.New()
	vessel := &models.Vessel{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: uuid.New(),
		Name:           "MV Aurora",
	}
	uv := &models.UserVessel{
		UserID:       userID,
		VesselID:     vessel.ID,
		Role:         models.VesselRoleChiefEngineer,
		AccessStatus: models.AccessStatusActive,
	}

	suite.mockVesselRepo.EXPECT().GetByID(vessel.ID).Return(vessel, nil).Times(1)
	suite.mockUserVesselRepo.EXPECT().GetByUserAndVessel(userID, vessel.ID).Return(uv, nil).Times(1)

	access, err := suite.membershipService.ResolveVessel(userID, vessel.ID)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), access.Active)
	assert.Equal(suite.T(), models.VesselRoleChiefEngineer, *access.Role)
}

// TestResolveVesselRevokedGrantFallsBackToOrg tests that a revoked grant defers to org privilege
func (suite *MembershipServiceTestSuite) TestResolveVesselRevokedGrantFallsBackToOrg() {
	userID := uuid.New()
	org := suite.newOrg(userID) // the caller owns the organization
	vessel := &models.Vessel{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: org.ID,
		Name:           "MV Aurora",
	}
	uv := &models.UserVessel{
		UserID:       userID,
		VesselID:     vessel.ID,
		Role:         models.VesselRoleCrew,
		AccessStatus: models.AccessStatusRevoked,
	}

	suite.mockVesselRepo.EXPECT().GetByID(vessel.ID).Return(vessel, nil).Times(1)
	suite.mockUserVesselRepo.EXPECT().GetByUserAndVessel(userID, vessel.ID).Return(uv, nil).Times(1)
	suite.mockOrgRepo.EXPECT().GetByID(org.ID).Return(org, nil).Times(1)
	suite.mockMemberRepo.EXPECT().GetByUserAndOrg(userID, org.ID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	access, err := suite.membershipService.ResolveVessel(userID, vessel.ID)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), access.Active)
}

// TestResolveVesselStranger tests that a user with no grant and no org standing is denied
func (suite *MembershipServiceTestSuite) TestResolveVesselStranger() {
	userID := uuid.New()
	org := suite.newOrg(uuid.New())
	vessel := &models.Vessel{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: org.ID,
		Name:           "MV Aurora",
	}

	suite.mockVesselRepo.EXPECT().GetByID(vessel.ID).Return(vessel, nil).Times(1)
	suite.mockUserVesselRepo.EXPECT().GetByUserAndVessel(userID, vessel.ID).Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockOrgRepo.EXPECT().GetByID(org.ID).Return(org, nil).Times(1)
	suite.mockMemberRepo.EXPECT().GetByUserAndOrg(userID, org.ID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	access, err := suite.membershipService.ResolveVessel(userID, vessel.ID)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), access.Active)
	assert.Nil(suite.T(), access.Role)
}

// TestResolveVesselNotFound tests resolving access on a missing vessel
func (suite *MembershipServiceTestSuite) TestResolveVesselNotFound() {
	vesselID := uuid.New()

	suite.mockVesselRepo.EXPECT().GetByID(vesselID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	access, err := suite.membershipService.ResolveVessel(uuid.New(), vesselID)

	assert.Nil(suite.T(), access)
	assert.ErrorIs(suite.T(), err, apperrors.ErrVesselNotFound)
}

// TestMembershipServiceTestSuite runs the test suite
func TestMembershipServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipServiceTestSuite))
}
