package testutils

import (
	"time"

	"conservation-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// FactorySet bundles all factories for test suites
type FactorySet struct {
	User         *UserFactory
	Project      *ProjectFactory
	File         *FileFactory
	ProjectLayer *ProjectLayerFactory
	Solution     *SolutionFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:         NewUserFactory(),
		Project:      NewProjectFactory(),
		File:         NewFileFactory(),
		ProjectLayer: NewProjectLayerFactory(),
		Solution:     NewSolutionFactory(),
	}
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	// Unique username derived from the UUID to avoid collisions between tests
	username := "planner-" + id.String()[:8]

	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Username: username,
		Email:    username + "@test.org",
		Role:     models.UserRolePlanner,
	}
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project with default values
func (f *ProjectFactory) Create(ownerID uuid.UUID) *models.Project {
	id := uuid.New()

	return &models.Project{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:       "Test Project " + id.String()[:8],
		Description: "A planning project created for testing",
		OwnerID:     ownerID,
		UserGroup:   models.UserGroupPublic,
	}
}

// WithTitle sets a custom title for the project
func (f *ProjectFactory) WithTitle(ownerID uuid.UUID, title string) *models.Project {
	project := f.Create(ownerID)
	project.Title = title
	return project
}

// WithUserGroup sets a custom user group for the project
func (f *ProjectFactory) WithUserGroup(ownerID uuid.UUID, group models.UserGroup) *models.Project {
	project := f.Create(ownerID)
	project.UserGroup = group
	return project
}

// FileFactory provides methods to create test File data
type FileFactory struct{}

// NewFileFactory creates a new FileFactory
func NewFileFactory() *FileFactory {
	return &FileFactory{}
}

// Create creates a test File with default values
func (f *FileFactory) Create(projectID, uploaderID uuid.UUID) *models.File {
	id := uuid.New()
	name := "layer-" + id.String()[:8] + ".tif"

	return &models.File{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        name,
		Description: "A raster layer uploaded for testing",
		UploaderID:  uploaderID,
		ProjectID:   projectID,
		Path:        "test-project/" + name,
	}
}

// WithPath sets a custom storage path for the file
func (f *FileFactory) WithPath(projectID, uploaderID uuid.UUID, path string) *models.File {
	file := f.Create(projectID, uploaderID)
	file.Path = path
	return file
}

// ProjectLayerFactory provides methods to create test ProjectLayer data
type ProjectLayerFactory struct{}

// NewProjectLayerFactory creates a new ProjectLayerFactory
func NewProjectLayerFactory() *ProjectLayerFactory {
	return &ProjectLayerFactory{}
}

// Create creates a manual-legend theme layer with default values
func (f *ProjectLayerFactory) Create(projectID uuid.UUID) *models.ProjectLayer {
	id := uuid.New()

	return &models.ProjectLayer{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ProjectID:    projectID,
		Type:         models.LayerTypeTheme,
		Theme:        "Biodiversity",
		Name:         "Layer " + id.String()[:8],
		Legend:       models.LegendTypeManual,
		Values:       datatypes.JSONSlice[string]{"0", "1"},
		Color:        datatypes.JSONSlice[string]{"#ffffff", "#00ff00"},
		Labels:       datatypes.JSONSlice[string]{"absent", "present"},
		Provenance:   models.ProvenanceRegional,
		Visible:      true,
		Hidden:       false,
		Downloadable: true,
	}
}

// WithType sets a custom layer type; non-theme layers keep no theme name
func (f *ProjectLayerFactory) WithType(projectID uuid.UUID, layerType models.LayerType) *models.ProjectLayer {
	layer := f.Create(projectID)
	layer.Type = layerType
	if layerType != models.LayerTypeTheme {
		layer.Theme = ""
	}
	return layer
}

// WithOrder sets a custom display order for the layer
func (f *ProjectLayerFactory) WithOrder(projectID uuid.UUID, order int) *models.ProjectLayer {
	layer := f.Create(projectID)
	layer.SortOrder = order
	return layer
}

// SolutionFactory provides methods to create test Solution data
type SolutionFactory struct{}

// NewSolutionFactory creates a new SolutionFactory
func NewSolutionFactory() *SolutionFactory {
	return &SolutionFactory{}
}

// Create creates a test Solution with default values
func (f *SolutionFactory) Create(projectID, authorID uuid.UUID) *models.Solution {
	id := uuid.New()

	return &models.Solution{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ProjectID:   projectID,
		AuthorID:    authorID,
		Title:       "Scenario " + id.String()[:8],
		Description: "A candidate scenario created for testing",
		AuthorName:  "Jane Planner",
		AuthorEmail: "jane.planner@test.org",
		UserGroup:   models.UserGroupPublic,
	}
}

// WithTitle sets a custom title for the solution
func (f *SolutionFactory) WithTitle(projectID, authorID uuid.UUID, title string) *models.Solution {
	solution := f.Create(projectID, authorID)
	solution.Title = title
	return solution
}
