//go:build integration
// +build integration

package repository

import (
	"testing"

	"conservation-portal-backend/internal/database/models"
	"conservation-portal-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// SolutionLayerRepositoryTestSuite tests theme-override persistence against
// Postgres, including the unique pairing constraint.
type SolutionLayerRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *SolutionLayerRepository
	factories     *testutils.FactorySet

	author   *models.User
	project  *models.Project
	theme    *models.ProjectLayer
	solution *models.Solution
}

// SetupSuite runs before all tests in the suite
func (suite *SolutionLayerRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewSolutionLayerRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *SolutionLayerRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *SolutionLayerRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	db := suite.baseTestSuite.DB
	suite.author = suite.factories.User.Create()
	suite.Require().NoError(db.Create(suite.author).Error)
	suite.project = suite.factories.Project.Create(suite.author.ID)
	suite.Require().NoError(db.Create(suite.project).Error)
	suite.theme = suite.factories.ProjectLayer.Create(suite.project.ID)
	suite.Require().NoError(db.Create(suite.theme).Error)
	suite.solution = suite.factories.Solution.Create(suite.project.ID, suite.author.ID)
	suite.Require().NoError(db.Create(suite.solution).Error)
}

// TearDownTest runs after each test
func (suite *SolutionLayerRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a theme override
func (suite *SolutionLayerRepositoryTestSuite) TestCreate() {
	goal := 0.4
	override := &models.SolutionLayer{
		SolutionID:     suite.solution.ID,
		ProjectLayerID: suite.theme.ID,
		Goal:           &goal,
	}

	err := suite.repo.Create(override)

	suite.NoError(err)
}

// TestDuplicatePairRejectedByIndex tests that the database refuses a second
// override for the same solution and layer
func (suite *SolutionLayerRepositoryTestSuite) TestDuplicatePairRejectedByIndex() {
	first := &models.SolutionLayer{SolutionID: suite.solution.ID, ProjectLayerID: suite.theme.ID}
	suite.Require().NoError(suite.repo.Create(first))

	second := &models.SolutionLayer{SolutionID: suite.solution.ID, ProjectLayerID: suite.theme.ID}
	err := suite.repo.Create(second)

	suite.Error(err)
}

// TestGetByPair tests looking up an override by its pairing
func (suite *SolutionLayerRepositoryTestSuite) TestGetByPair() {
	override := &models.SolutionLayer{SolutionID: suite.solution.ID, ProjectLayerID: suite.theme.ID}
	suite.Require().NoError(suite.repo.Create(override))

	found, err := suite.repo.GetByPair(suite.solution.ID, suite.theme.ID)

	suite.NoError(err)
	suite.Equal(override.ID, found.ID)
}

// TestGetByPairNotFound tests looking up a missing pairing
func (suite *SolutionLayerRepositoryTestSuite) TestGetByPairNotFound() {
	_, err := suite.repo.GetByPair(suite.solution.ID, suite.theme.ID)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetBySolutionID tests listing a solution's overrides
func (suite *SolutionLayerRepositoryTestSuite) TestGetBySolutionID() {
	db := suite.baseTestSuite.DB
	secondTheme := suite.factories.ProjectLayer.Create(suite.project.ID)
	suite.Require().NoError(db.Create(secondTheme).Error)

	suite.Require().NoError(suite.repo.Create(&models.SolutionLayer{SolutionID: suite.solution.ID, ProjectLayerID: suite.theme.ID}))
	suite.Require().NoError(suite.repo.Create(&models.SolutionLayer{SolutionID: suite.solution.ID, ProjectLayerID: secondTheme.ID}))

	overrides, err := suite.repo.GetBySolutionID(suite.solution.ID)

	suite.NoError(err)
	suite.Len(overrides, 2)
}

// TestSolutionLayerRepositoryTestSuite runs the test suite
func TestSolutionLayerRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SolutionLayerRepositoryTestSuite))
}
