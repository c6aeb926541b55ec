//go:build integration
// +build integration

package repository

import (
	"testing"

	"fleet-supply-backend/internal/database/models"
	"fleet-supply-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// VesselRepositoryTestSuite tests the VesselRepository
type VesselRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *VesselRepository
	userRepo      *UserRepository
	orgRepo       *OrganizationRepository
	accessRepo    *UserVesselRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *VesselRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewVesselRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.orgRepo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.accessRepo = NewUserVesselRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *VesselRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *VesselRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *VesselRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createOrganization persists an owner and their organization
func (suite *VesselRepositoryTestSuite) createOrganization() *models.Organization {
	owner := suite.factories.User.Owner()
	suite.NoError(suite.userRepo.Create(owner))

	org := suite.factories.Organization.Create(owner.ID)
	suite.NoError(suite.orgRepo.Create(org))
	return org
}

// TestCreate tests creating a new vessel
func (suite *VesselRepositoryTestSuite) TestCreate() {
	org := suite.createOrganization()
	vessel := suite.factories.Vessel.Create(org.ID)

	err := suite.repo.Create(vessel)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, vessel.ID)
	suite.NotZero(vessel.CreatedAt)
}

// TestCreateDuplicateNameSameOrg tests the per-organization name uniqueness
func (suite *VesselRepositoryTestSuite) TestCreateDuplicateNameSameOrg() {
	org := suite.createOrganization()

	vessel1 := suite.factories.Vessel.WithName(org.ID, "MV Aurora")
	suite.NoError(suite.repo.Create(vessel1))

	vessel2 := suite.factories.Vessel.WithName(org.ID, "MV Aurora")
	err := suite.repo.Create(vessel2)

	suite.Error(err)
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestCreateSameNameDifferentOrg tests that name uniqueness is scoped to the organization
func (suite *VesselRepositoryTestSuite) TestCreateSameNameDifferentOrg() {
	org1 := suite.createOrganization()
	org2 := suite.createOrganization()

	vessel1 := suite.factories.Vessel.WithName(org1.ID, "MV Aurora")
	suite.NoError(suite.repo.Create(vessel1))

	vessel2 := suite.factories.Vessel.WithName(org2.ID, "MV Aurora")
	suite.NoError(suite.repo.Create(vessel2))
}

// TestGetByName tests retrieving a vessel by name within its organization
func (suite *VesselRepositoryTestSuite) TestGetByName() {
	org := suite.createOrganization()
	vessel := suite.factories.Vessel.WithName(org.ID, "MV Aurora")
	suite.NoError(suite.repo.Create(vessel))

	found, err := suite.repo.GetByName(org.ID, "MV Aurora")

	suite.NoError(err)
	suite.Equal(vessel.ID, found.ID)

	// Same name in another organization is not visible here.
	other := suite.createOrganization()
	_, err = suite.repo.GetByName(other.ID, "MV Aurora")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestCountByOrganization tests counting an organization's vessels
func (suite *VesselRepositoryTestSuite) TestCountByOrganization() {
	org := suite.createOrganization()
	for i := 0; i < 3; i++ {
		suite.NoError(suite.repo.Create(suite.factories.Vessel.Create(org.ID)))
	}

	count, err := suite.repo.CountByOrganization(org.ID)

	suite.NoError(err)
	suite.Equal(int64(3), count)
}

// TestListByOrganization tests listing vessels with pagination
func (suite *VesselRepositoryTestSuite) TestListByOrganization() {
	org := suite.createOrganization()
	suite.NoError(suite.repo.Create(suite.factories.Vessel.WithName(org.ID, "MV Aurora")))
	suite.NoError(suite.repo.Create(suite.factories.Vessel.WithName(org.ID, "MV Borealis")))
	suite.NoError(suite.repo.Create(suite.factories.Vessel.WithName(org.ID, "MV Cygnus")))

	vessels, total, err := suite.repo.ListByOrganization(org.ID, 2, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(vessels, 2)
	// Ordered by name.
	suite.Equal("MV Aurora", vessels[0].Name)
	suite.Equal("MV Borealis", vessels[1].Name)
}

// TestListForUser tests that only active access rows surface vessels
func (suite *VesselRepositoryTestSuite) TestListForUser() {
	org := suite.createOrganization()
	user := suite.factories.User.Create()
	suite.NoError(suite.userRepo.Create(user))

	active := suite.factories.Vessel.WithName(org.ID, "MV Aurora")
	suite.NoError(suite.repo.Create(active))
	revoked := suite.factories.Vessel.WithName(org.ID, "MV Borealis")
	suite.NoError(suite.repo.Create(revoked))

	suite.NoError(suite.accessRepo.Create(suite.factories.UserVessel.Create(user.ID, active.ID, models.VesselRoleCrew)))
	suite.NoError(suite.accessRepo.Create(suite.factories.UserVessel.Revoked(user.ID, revoked.ID, models.VesselRoleCrew)))

	vessels, err := suite.repo.ListForUser(user.ID)

	suite.NoError(err)
	suite.Len(vessels, 1)
	suite.Equal(active.ID, vessels[0].ID)
}

// TestUpdate tests updating a vessel
func (suite *VesselRepositoryTestSuite) TestUpdate() {
	org := suite.createOrganization()
	vessel := suite.factories.Vessel.Create(org.ID)
	suite.NoError(suite.repo.Create(vessel))

	vessel.Flag = "Liberia"
	suite.NoError(suite.repo.Update(vessel))

	updated, err := suite.repo.GetByID(vessel.ID)
	suite.NoError(err)
	suite.Equal("Liberia", updated.Flag)
}

// TestDelete tests deleting a vessel
func (suite *VesselRepositoryTestSuite) TestDelete() {
	org := suite.createOrganization()
	vessel := suite.factories.Vessel.Create(org.ID)
	suite.NoError(suite.repo.Create(vessel))

	suite.NoError(suite.repo.Delete(vessel.ID))

	_, err := suite.repo.GetByID(vessel.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// Run the test suite
func TestVesselRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(VesselRepositoryTestSuite))
}
