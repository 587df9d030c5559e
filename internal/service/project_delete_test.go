package service_test

import (
	"testing"

	"conservation-portal-backend/internal/database/models"
	apperrors "conservation-portal-backend/internal/errors"
	"conservation-portal-backend/internal/logger"
	"conservation-portal-backend/internal/repository"
	"conservation-portal-backend/internal/service"
	"conservation-portal-backend/internal/storage"
	"conservation-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type DeletionCoordinatorTestSuite struct {
	suite.Suite
	db          *gorm.DB
	fs          afero.Fs
	store       *storage.Store
	projectRepo *repository.ProjectRepository
	coordinator *service.DeletionCoordinator

	owner   *models.User
	project *models.Project
	files   []*models.File
}

func (suite *DeletionCoordinatorTestSuite) SetupTest() {
	suite.db = testutils.NewSQLiteDB(suite.T())
	suite.fs = afero.NewMemMapFs()
	suite.store = storage.New(suite.fs, "/data/projects")
	suite.projectRepo = repository.NewProjectRepository(suite.db)
	suite.coordinator = service.NewDeletionCoordinator(suite.db, suite.projectRepo, suite.store, logger.New())

	suite.owner = testutils.NewUserFactory().Create()
	suite.Require().NoError(suite.db.Create(suite.owner).Error)
	suite.project = testutils.NewProjectFactory().Create(suite.owner.ID)
	suite.Require().NoError(suite.db.Create(suite.project).Error)
}

// seedGraph fills the project with files, layers, a solution and its
// selections, and writes the physical files into the in-memory store.
func (suite *DeletionCoordinatorTestSuite) seedGraph() {
	dir := suite.store.ProjectDir(suite.project.Title, suite.project.ID)
	fileFactory := testutils.NewFileFactory()
	suite.files = nil
	for i := 0; i < 2; i++ {
		file := fileFactory.Create(suite.project.ID, suite.owner.ID)
		file.Path = dir + "/" + file.Name
		suite.Require().NoError(suite.db.Create(file).Error)
		suite.Require().NoError(afero.WriteFile(suite.fs, suite.store.Resolve(file.Path), []byte("raster"), 0o644))
		suite.files = append(suite.files, file)
	}

	layers := testutils.NewProjectLayerFactory()
	theme := layers.Create(suite.project.ID)
	weight := layers.WithType(suite.project.ID, models.LayerTypeWeight)
	suite.Require().NoError(suite.db.Create(theme).Error)
	suite.Require().NoError(suite.db.Create(weight).Error)

	solution := testutils.NewSolutionFactory().Create(suite.project.ID, suite.owner.ID)
	suite.Require().NoError(suite.db.Create(solution).Error)
	suite.Require().NoError(suite.db.Create(&models.SolutionWeight{SolutionID: solution.ID, ProjectLayerID: weight.ID}).Error)
	suite.Require().NoError(suite.db.Create(&models.SolutionLayer{SolutionID: solution.ID, ProjectLayerID: theme.ID}).Error)
}

func (suite *DeletionCoordinatorTestSuite) countAll() map[string]int64 {
	counts := map[string]int64{}
	for table, model := range map[string]interface{}{
		"projects":         &models.Project{},
		"files":            &models.File{},
		"project_layers":   &models.ProjectLayer{},
		"solutions":        &models.Solution{},
		"solution_layers":  &models.SolutionLayer{},
		"solution_weights": &models.SolutionWeight{},
	} {
		var n int64
		suite.Require().NoError(suite.db.Model(model).Count(&n).Error)
		counts[table] = n
	}
	return counts
}

func (suite *DeletionCoordinatorTestSuite) TestDeleteProject_RemovesEntireGraph() {
	suite.seedGraph()

	err := suite.coordinator.DeleteProject(suite.project.ID)
	suite.Require().NoError(err)

	for table, n := range suite.countAll() {
		assert.Zero(suite.T(), n, "table %s should be empty", table)
	}

	// physical cleanup ran too
	for _, file := range suite.files {
		exists, err := afero.Exists(suite.fs, suite.store.Resolve(file.Path))
		suite.Require().NoError(err)
		assert.False(suite.T(), exists)
	}
	dir := suite.store.ProjectDir(suite.project.Title, suite.project.ID)
	exists, err := afero.DirExists(suite.fs, suite.store.Resolve(dir))
	suite.Require().NoError(err)
	assert.False(suite.T(), exists)
}

func (suite *DeletionCoordinatorTestSuite) TestDeleteProject_LeavesOtherProjectsAlone() {
	suite.seedGraph()

	other := testutils.NewProjectFactory().Create(suite.owner.ID)
	suite.Require().NoError(suite.db.Create(other).Error)
	otherLayer := testutils.NewProjectLayerFactory().Create(other.ID)
	suite.Require().NoError(suite.db.Create(otherLayer).Error)
	otherSolution := testutils.NewSolutionFactory().Create(other.ID, suite.owner.ID)
	suite.Require().NoError(suite.db.Create(otherSolution).Error)
	suite.Require().NoError(suite.db.Create(&models.SolutionLayer{SolutionID: otherSolution.ID, ProjectLayerID: otherLayer.ID}).Error)

	err := suite.coordinator.DeleteProject(suite.project.ID)
	suite.Require().NoError(err)

	var projects, layers, solutions, overrides int64
	suite.Require().NoError(suite.db.Model(&models.Project{}).Count(&projects).Error)
	suite.Require().NoError(suite.db.Model(&models.ProjectLayer{}).Count(&layers).Error)
	suite.Require().NoError(suite.db.Model(&models.Solution{}).Count(&solutions).Error)
	suite.Require().NoError(suite.db.Model(&models.SolutionLayer{}).Count(&overrides).Error)
	assert.Equal(suite.T(), int64(1), projects)
	assert.Equal(suite.T(), int64(1), layers)
	assert.Equal(suite.T(), int64(1), solutions)
	assert.Equal(suite.T(), int64(1), overrides)
}

func (suite *DeletionCoordinatorTestSuite) TestDeleteProject_NotFound() {
	err := suite.coordinator.DeleteProject(uuid.New())

	assert.ErrorIs(suite.T(), err, apperrors.ErrProjectNotFound)
}

func (suite *DeletionCoordinatorTestSuite) TestDeleteProject_SecondDeleteNotFound() {
	suite.seedGraph()

	suite.Require().NoError(suite.coordinator.DeleteProject(suite.project.ID))

	err := suite.coordinator.DeleteProject(suite.project.ID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrProjectNotFound)
}

func (suite *DeletionCoordinatorTestSuite) TestDeleteProject_CleanupFailureDoesNotFail() {
	suite.seedGraph()

	// the database phase must succeed even when no file can be removed
	readOnly := storage.New(afero.NewReadOnlyFs(suite.fs), "/data/projects")
	coordinator := service.NewDeletionCoordinator(suite.db, suite.projectRepo, readOnly, logger.New())

	err := coordinator.DeleteProject(suite.project.ID)
	suite.Require().NoError(err)

	var projects int64
	suite.Require().NoError(suite.db.Model(&models.Project{}).Count(&projects).Error)
	assert.Zero(suite.T(), projects)

	// the files survived the failed cleanup
	exists, err := afero.Exists(suite.fs, suite.store.Resolve(suite.files[0].Path))
	suite.Require().NoError(err)
	assert.True(suite.T(), exists)
}

func TestDeletionCoordinatorTestSuite(t *testing.T) {
	suite.Run(t, new(DeletionCoordinatorTestSuite))
}
