package service_test

import (
	"testing"

	"conservation-portal-backend/internal/database/models"
	apperrors "conservation-portal-backend/internal/errors"
	"conservation-portal-backend/internal/mocks"
	"conservation-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type ProjectServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockProjectRepo *mocks.MockProjectRepositoryInterface
	mockUserRepo    *mocks.MockUserRepositoryInterface
	mockFileRepo    *mocks.MockFileRepositoryInterface
	projectService  *service.ProjectService
	validator       *validator.Validate
}

func (suite *ProjectServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockProjectRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockFileRepo = mocks.NewMockFileRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.projectService = service.NewProjectService(suite.mockProjectRepo, suite.mockUserRepo, suite.mockFileRepo, nil, suite.validator)
}

func (suite *ProjectServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ProjectServiceTestSuite) TestCreateProject_Success() {
	ownerID := uuid.New()
	req := &service.CreateProjectRequest{
		OwnerID:   ownerID,
		Title:     "Highland Corridors",
		UserGroup: models.UserGroupPublic,
	}

	suite.mockUserRepo.EXPECT().GetByID(ownerID).Return(&models.User{}, nil)
	suite.mockProjectRepo.EXPECT().GetByTitle("Highland Corridors").Return(nil, gorm.ErrRecordNotFound)
	suite.mockProjectRepo.EXPECT().Create(gomock.Any()).Return(nil)

	project, err := suite.projectService.Create(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Highland Corridors", project.Title)
	assert.Equal(suite.T(), ownerID, project.OwnerID)
}

func (suite *ProjectServiceTestSuite) TestCreateProject_InvalidUserGroup() {
	req := &service.CreateProjectRequest{
		OwnerID:   uuid.New(),
		Title:     "Highland Corridors",
		UserGroup: models.UserGroup("admins"),
	}

	_, err := suite.projectService.Create(req)

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *ProjectServiceTestSuite) TestCreateProject_OwnerNotFound() {
	ownerID := uuid.New()
	req := &service.CreateProjectRequest{
		OwnerID:   ownerID,
		Title:     "Highland Corridors",
		UserGroup: models.UserGroupPublic,
	}

	suite.mockUserRepo.EXPECT().GetByID(ownerID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.projectService.Create(req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

func (suite *ProjectServiceTestSuite) TestCreateProject_DuplicateTitle() {
	ownerID := uuid.New()
	req := &service.CreateProjectRequest{
		OwnerID:   ownerID,
		Title:     "Highland Corridors",
		UserGroup: models.UserGroupPublic,
	}

	suite.mockUserRepo.EXPECT().GetByID(ownerID).Return(&models.User{}, nil)
	suite.mockProjectRepo.EXPECT().GetByTitle("Highland Corridors").Return(&models.Project{}, nil)

	_, err := suite.projectService.Create(req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrProjectExists)
}

func (suite *ProjectServiceTestSuite) TestListProjects_DefaultPagination() {
	// page and pageSize out of range normalize to page=1, pageSize=20
	suite.mockProjectRepo.EXPECT().GetAll(models.UserGroup(""), 20, 0).Return([]models.Project{}, int64(0), nil)

	_, total, err := suite.projectService.List("", 0, 0)

	assert.NoError(suite.T(), err)
	assert.Zero(suite.T(), total)
}

func (suite *ProjectServiceTestSuite) TestListProjects_UserGroupFilter() {
	suite.mockProjectRepo.EXPECT().GetAll(models.UserGroupPlanner, 10, 10).Return([]models.Project{{Title: "A"}}, int64(11), nil)

	projects, total, err := suite.projectService.List(models.UserGroupPlanner, 2, 10)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(11), total)
	assert.Len(suite.T(), projects, 1)
}

func (suite *ProjectServiceTestSuite) TestListProjects_InvalidUserGroup() {
	_, _, err := suite.projectService.List(models.UserGroup("admins"), 1, 20)

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *ProjectServiceTestSuite) TestUpdatePlanningUnit_FileFromOtherProject() {
	projectID := uuid.New()
	fileID := uuid.New()

	suite.mockProjectRepo.EXPECT().GetByID(projectID).Return(&models.Project{}, nil)
	suite.mockFileRepo.EXPECT().GetByID(fileID).Return(&models.File{ProjectID: uuid.New()}, nil)

	_, err := suite.projectService.UpdatePlanningUnit(projectID, fileID)

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsReferential(err))
}

func (suite *ProjectServiceTestSuite) TestUpdatePlanningUnit_FileNotFound() {
	projectID := uuid.New()
	fileID := uuid.New()

	suite.mockProjectRepo.EXPECT().GetByID(projectID).Return(&models.Project{}, nil)
	suite.mockFileRepo.EXPECT().GetByID(fileID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.projectService.UpdatePlanningUnit(projectID, fileID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrFileNotFound)
}

func (suite *ProjectServiceTestSuite) TestGetProject_NotFound() {
	id := uuid.New()
	suite.mockProjectRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.projectService.GetByID(id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrProjectNotFound)
}

func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
