//go:build integration
// +build integration

package repository

import (
	"testing"

	"fleet-supply-backend/internal/database/models"
	"fleet-supply-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// OrganizationMemberRepositoryTestSuite tests the OrganizationMemberRepository
type OrganizationMemberRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *OrganizationMemberRepository
	userRepo      *UserRepository
	orgRepo       *OrganizationRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *OrganizationMemberRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewOrganizationMemberRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.orgRepo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *OrganizationMemberRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *OrganizationMemberRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *OrganizationMemberRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *OrganizationMemberRepositoryTestSuite) createScope() (*models.User, *models.Organization) {
	owner := suite.factories.User.Owner()
	suite.NoError(suite.userRepo.Create(owner))

	org := suite.factories.Organization.Create(owner.ID)
	suite.NoError(suite.orgRepo.Create(org))

	user := suite.factories.User.Create()
	suite.NoError(suite.userRepo.Create(user))
	return user, org
}

// TestCreate tests enrolling a member
func (suite *OrganizationMemberRepositoryTestSuite) TestCreate() {
	user, org := suite.createScope()
	member := suite.factories.Member.Create(user.ID, org.ID, models.OrgRoleMember)

	err := suite.repo.Create(member)

	suite.NoError(err)
	suite.Equal(models.MemberStatusActive, member.Status)
}

// TestCreateDuplicateMembership tests the one-membership-per-org constraint
func (suite *OrganizationMemberRepositoryTestSuite) TestCreateDuplicateMembership() {
	user, org := suite.createScope()

	first := suite.factories.Member.Create(user.ID, org.ID, models.OrgRoleMember)
	suite.NoError(suite.repo.Create(first))

	second := suite.factories.Member.Create(user.ID, org.ID, models.OrgRoleAdmin)
	err := suite.repo.Create(second)

	suite.Error(err)
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestGetByUserAndOrg tests looking up a membership row
func (suite *OrganizationMemberRepositoryTestSuite) TestGetByUserAndOrg() {
	user, org := suite.createScope()
	member := suite.factories.Member.Create(user.ID, org.ID, models.OrgRoleManager)
	suite.NoError(suite.repo.Create(member))

	found, err := suite.repo.GetByUserAndOrg(user.ID, org.ID)

	suite.NoError(err)
	suite.Equal(member.ID, found.ID)
	suite.Equal(models.OrgRoleManager, found.Role)
}

// TestGetByUserAndOrgNotFound tests looking up a non-member
func (suite *OrganizationMemberRepositoryTestSuite) TestGetByUserAndOrgNotFound() {
	user, org := suite.createScope()

	_, err := suite.repo.GetByUserAndOrg(user.ID, org.ID)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestCountActiveByOrganization tests that suspended members are not counted
func (suite *OrganizationMemberRepositoryTestSuite) TestCountActiveByOrganization() {
	user, org := suite.createScope()
	suite.NoError(suite.repo.Create(suite.factories.Member.Create(user.ID, org.ID, models.OrgRoleMember)))

	suspended := suite.factories.User.Create()
	suite.NoError(suite.userRepo.Create(suspended))
	suite.NoError(suite.repo.Create(suite.factories.Member.Suspended(suspended.ID, org.ID, models.OrgRoleMember)))

	count, err := suite.repo.CountActiveByOrganization(org.ID)

	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestUpdate tests changing a member's role and status
func (suite *OrganizationMemberRepositoryTestSuite) TestUpdate() {
	user, org := suite.createScope()
	member := suite.factories.Member.Create(user.ID, org.ID, models.OrgRoleMember)
	suite.NoError(suite.repo.Create(member))

	member.Role = models.OrgRoleAdmin
	member.Status = models.MemberStatusSuspended
	suite.NoError(suite.repo.Update(member))

	updated, err := suite.repo.GetByID(member.ID)
	suite.NoError(err)
	suite.Equal(models.OrgRoleAdmin, updated.Role)
	suite.Equal(models.MemberStatusSuspended, updated.Status)
}

// TestDeleteByUserAndOrg tests removing a membership by its composite key
func (suite *OrganizationMemberRepositoryTestSuite) TestDeleteByUserAndOrg() {
	user, org := suite.createScope()
	member := suite.factories.Member.Create(user.ID, org.ID, models.OrgRoleMember)
	suite.NoError(suite.repo.Create(member))

	suite.NoError(suite.repo.DeleteByUserAndOrg(user.ID, org.ID))

	_, err := suite.repo.GetByUserAndOrg(user.ID, org.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// Run the test suite
func TestOrganizationMemberRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationMemberRepositoryTestSuite))
}
