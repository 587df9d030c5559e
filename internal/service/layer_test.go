package service_test

import (
	"sort"
	"testing"
	"time"

	"conservation-portal-backend/internal/database/models"
	apperrors "conservation-portal-backend/internal/errors"
	"conservation-portal-backend/internal/repository"
	"conservation-portal-backend/internal/service"
	"conservation-portal-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type LayerServiceTestSuite struct {
	suite.Suite
	db           *gorm.DB
	layerService *service.LayerService
	owner        *models.User
	project      *models.Project
}

func (suite *LayerServiceTestSuite) SetupTest() {
	suite.db = testutils.NewSQLiteDB(suite.T())

	v := validator.New()
	layerRepo := repository.NewProjectLayerRepository(suite.db)
	projectRepo := repository.NewProjectRepository(suite.db)
	fileRepo := repository.NewFileRepository(suite.db)
	suite.layerService = service.NewLayerService(layerRepo, projectRepo, fileRepo, v)

	suite.owner = testutils.NewUserFactory().Create()
	suite.Require().NoError(suite.db.Create(suite.owner).Error)
	suite.project = testutils.NewProjectFactory().Create(suite.owner.ID)
	suite.Require().NoError(suite.db.Create(suite.project).Error)
}

func (suite *LayerServiceTestSuite) TestCreate_ManualLegend_Success() {
	layer, err := suite.layerService.Create(&service.CreateLayerRequest{
		ProjectID:  suite.project.ID,
		Type:       models.LayerTypeTheme,
		Theme:      "Biodiversity",
		Name:       "Woodland Habitat",
		Legend:     models.LegendTypeManual,
		Values:     []string{"0", "1"},
		Color:      []string{"#ffffff", "#2d6a4f"},
		Labels:     []string{"absent", "present"},
		Provenance: models.ProvenanceRegional,
	})

	suite.Require().NoError(err)
	assert.NotEqual(suite.T(), uuid.Nil, layer.ID)
	assert.Equal(suite.T(), models.LayerTypeTheme, layer.Type)
	assert.Equal(suite.T(), []string{"absent", "present"}, []string(layer.Labels))
	// unset display flags take their defaults
	assert.True(suite.T(), layer.Visible)
	assert.False(suite.T(), layer.Hidden)
	assert.True(suite.T(), layer.Downloadable)
}

func (suite *LayerServiceTestSuite) TestCreate_ManualLegend_LengthMismatch() {
	_, err := suite.layerService.Create(&service.CreateLayerRequest{
		ProjectID: suite.project.ID,
		Type:      models.LayerTypeTheme,
		Theme:     "Biodiversity",
		Name:      "Woodland Habitat",
		Legend:    models.LegendTypeManual,
		Values:    []string{"0", "1", "2"},
		Color:     []string{"#ffffff", "#2d6a4f"},
		Labels:    []string{"absent", "present"},
	})

	suite.Require().Error(err)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *LayerServiceTestSuite) TestCreate_ManualLegend_MissingArrays() {
	_, err := suite.layerService.Create(&service.CreateLayerRequest{
		ProjectID: suite.project.ID,
		Type:      models.LayerTypeWeight,
		Name:      "Recreation Pressure",
		Legend:    models.LegendTypeManual,
		Values:    []string{"0", "1"},
	})

	suite.Require().Error(err)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *LayerServiceTestSuite) TestCreate_ContinuousLegend_Success() {
	layer, err := suite.layerService.Create(&service.CreateLayerRequest{
		ProjectID: suite.project.ID,
		Type:      models.LayerTypeWeight,
		Name:      "Carbon Density",
		Legend:    models.LegendTypeContinuous,
		Unit:      "tonnes/ha",
		Color:     []string{"#ffffff", "#1b4332"},
	})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "tonnes/ha", layer.Unit)
}

func (suite *LayerServiceTestSuite) TestCreate_ContinuousLegend_RequiresUnit() {
	_, err := suite.layerService.Create(&service.CreateLayerRequest{
		ProjectID: suite.project.ID,
		Type:      models.LayerTypeWeight,
		Name:      "Carbon Density",
		Legend:    models.LegendTypeContinuous,
	})

	suite.Require().Error(err)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *LayerServiceTestSuite) TestCreate_ContinuousLegend_ForbidsLabels() {
	_, err := suite.layerService.Create(&service.CreateLayerRequest{
		ProjectID: suite.project.ID,
		Type:      models.LayerTypeWeight,
		Name:      "Carbon Density",
		Legend:    models.LegendTypeContinuous,
		Unit:      "tonnes/ha",
		Labels:    []string{"low", "high"},
	})

	suite.Require().Error(err)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *LayerServiceTestSuite) TestCreate_InvalidType() {
	_, err := suite.layerService.Create(&service.CreateLayerRequest{
		ProjectID: suite.project.ID,
		Type:      models.LayerType("raster"),
		Name:      "Bad Layer",
	})

	suite.Require().Error(err)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *LayerServiceTestSuite) TestCreate_ProjectNotFound() {
	_, err := suite.layerService.Create(&service.CreateLayerRequest{
		ProjectID: uuid.New(),
		Type:      models.LayerTypeTheme,
		Theme:     "Biodiversity",
		Name:      "Orphan Layer",
	})

	suite.Require().Error(err)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func (suite *LayerServiceTestSuite) TestCreate_FileFromOtherProject() {
	other := testutils.NewProjectFactory().Create(suite.owner.ID)
	suite.Require().NoError(suite.db.Create(other).Error)
	file := testutils.NewFileFactory().Create(other.ID, suite.owner.ID)
	suite.Require().NoError(suite.db.Create(file).Error)

	_, err := suite.layerService.Create(&service.CreateLayerRequest{
		ProjectID: suite.project.ID,
		FileID:    &file.ID,
		Type:      models.LayerTypeTheme,
		Theme:     "Biodiversity",
		Name:      "Wrong File Layer",
	})

	suite.Require().Error(err)
	assert.True(suite.T(), apperrors.IsReferential(err))
}

func (suite *LayerServiceTestSuite) TestListByProject_DisplayOrder() {
	factory := testutils.NewProjectLayerFactory()
	for _, order := range []int{3, 1, 2} {
		layer := factory.WithOrder(suite.project.ID, order)
		suite.Require().NoError(suite.db.Create(layer).Error)
	}

	layers, err := suite.layerService.ListByProject(suite.project.ID)

	suite.Require().NoError(err)
	suite.Require().Len(layers, 3)
	assert.Equal(suite.T(), 1, layers[0].SortOrder)
	assert.Equal(suite.T(), 2, layers[1].SortOrder)
	assert.Equal(suite.T(), 3, layers[2].SortOrder)
}

func (suite *LayerServiceTestSuite) TestListByProject_EqualTimestampsStableOrder() {
	factory := testutils.NewProjectLayerFactory()
	stamp := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	var ids []string
	for i := 0; i < 4; i++ {
		layer := factory.WithOrder(suite.project.ID, 1)
		layer.CreatedAt = stamp
		suite.Require().NoError(suite.db.Create(layer).Error)
		ids = append(ids, layer.ID.String())
	}
	sort.Strings(ids)

	first, err := suite.layerService.ListByProject(suite.project.ID)

	suite.Require().NoError(err)
	suite.Require().Len(first, 4)
	for i, layer := range first {
		assert.Equal(suite.T(), ids[i], layer.ID.String())
	}

	second, err := suite.layerService.ListByProject(suite.project.ID)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), first, second)
}

func (suite *LayerServiceTestSuite) TestGetByID_NotFound() {
	_, err := suite.layerService.GetByID(uuid.New())

	suite.Require().Error(err)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func TestLayerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LayerServiceTestSuite))
}
