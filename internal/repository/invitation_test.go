//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"fleet-supply-backend/internal/database/models"
	"fleet-supply-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// InvitationRepositoryTestSuite tests the InvitationRepository
type InvitationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *InvitationRepository
	userRepo      *UserRepository
	orgRepo       *OrganizationRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *InvitationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewInvitationRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.orgRepo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *InvitationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *InvitationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *InvitationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createScope persists an owner and organization to hang invitations on
func (suite *InvitationRepositoryTestSuite) createScope() (*models.User, *models.Organization) {
	owner := suite.factories.User.Owner()
	suite.NoError(suite.userRepo.Create(owner))

	org := suite.factories.Organization.Create(owner.ID)
	suite.NoError(suite.orgRepo.Create(org))
	return owner, org
}

// TestCreate tests creating an invitation
func (suite *InvitationRepositoryTestSuite) TestCreate() {
	owner, org := suite.createScope()
	invitation := suite.factories.Invitation.Create(org.ID, owner.ID)

	err := suite.repo.Create(invitation)

	suite.NoError(err)
	suite.Len(invitation.Code, models.InvitationCodeLength)
	suite.Equal(models.InvitationStatusPending, invitation.Status)
}

// TestCreateDuplicateCode tests the unique index on the code column
func (suite *InvitationRepositoryTestSuite) TestCreateDuplicateCode() {
	owner, org := suite.createScope()

	first := suite.factories.Invitation.Create(org.ID, owner.ID)
	suite.NoError(suite.repo.Create(first))

	second := suite.factories.Invitation.Create(org.ID, owner.ID)
	second.Code = first.Code
	err := suite.repo.Create(second)

	suite.Error(err)
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestGetByCode tests retrieving an invitation by its code
func (suite *InvitationRepositoryTestSuite) TestGetByCode() {
	owner, org := suite.createScope()
	invitation := suite.factories.Invitation.Create(org.ID, owner.ID)
	suite.NoError(suite.repo.Create(invitation))

	found, err := suite.repo.GetByCode(invitation.Code)

	suite.NoError(err)
	suite.Equal(invitation.ID, found.ID)
}

// TestGetByCodeNotFound tests retrieving an unknown code
func (suite *InvitationRepositoryTestSuite) TestGetByCodeNotFound() {
	_, err := suite.repo.GetByCode("ZZZZZZ")

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByCodeForUpdate tests that the locking read returns the row inside a transaction
func (suite *InvitationRepositoryTestSuite) TestGetByCodeForUpdate() {
	owner, org := suite.createScope()
	invitation := suite.factories.Invitation.Create(org.ID, owner.ID)
	suite.NoError(suite.repo.Create(invitation))

	err := suite.baseTestSuite.DB.Transaction(func(tx *gorm.DB) error {
		locked, err := suite.repo.WithTx(tx).GetByCodeForUpdate(invitation.Code)
		if err != nil {
			return err
		}
		suite.Equal(invitation.ID, locked.ID)

		locked.Status = models.InvitationStatusConsumed
		now := time.Now().UTC()
		locked.ConsumedAt = &now
		return suite.repo.WithTx(tx).Update(locked)
	})

	suite.NoError(err)

	updated, err := suite.repo.GetByCode(invitation.Code)
	suite.NoError(err)
	suite.Equal(models.InvitationStatusConsumed, updated.Status)
	suite.NotNil(updated.ConsumedAt)
}

// TestListByOrganization tests listing an organization's invitations
func (suite *InvitationRepositoryTestSuite) TestListByOrganization() {
	owner, org := suite.createScope()
	for i := 0; i < 3; i++ {
		suite.NoError(suite.repo.Create(suite.factories.Invitation.Create(org.ID, owner.ID)))
	}

	// Another organization's invitations stay out of the listing.
	otherOwner, otherOrg := suite.createScope()
	suite.NoError(suite.repo.Create(suite.factories.Invitation.Create(otherOrg.ID, otherOwner.ID)))

	invitations, total, err := suite.repo.ListByOrganization(org.ID, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(invitations, 3)
}

// TestUpdate tests persisting a status change
func (suite *InvitationRepositoryTestSuite) TestUpdate() {
	owner, org := suite.createScope()
	invitation := suite.factories.Invitation.Create(org.ID, owner.ID)
	suite.NoError(suite.repo.Create(invitation))

	invitation.Status = models.InvitationStatusRevoked
	suite.NoError(suite.repo.Update(invitation))

	updated, err := suite.repo.GetByID(invitation.ID)
	suite.NoError(err)
	suite.Equal(models.InvitationStatusRevoked, updated.Status)
}

// Run the test suite
func TestInvitationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(InvitationRepositoryTestSuite))
}
