package repository

import (
	"conservation-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetAll(limit, offset int) ([]models.User, int64, error)
}

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(project *models.Project) error
	GetByID(id uuid.UUID) (*models.Project, error)
	GetByTitle(title string) (*models.Project, error)
	GetAll(userGroup models.UserGroup, limit, offset int) ([]models.Project, int64, error)
	GetWithFiles(id uuid.UUID) (*models.Project, error)
	UpdatePlanningUnit(id uuid.UUID, fileID uuid.UUID) error
}

// FileRepositoryInterface defines the interface for file repository operations
type FileRepositoryInterface interface {
	Create(file *models.File) error
	GetByID(id uuid.UUID) (*models.File, error)
	GetByProjectID(projectID uuid.UUID) ([]models.File, error)
}

// ProjectLayerRepositoryInterface defines the interface for project layer repository operations
type ProjectLayerRepositoryInterface interface {
	Create(layer *models.ProjectLayer) error
	GetByID(id uuid.UUID) (*models.ProjectLayer, error)
	GetByIDs(ids []uuid.UUID) ([]models.ProjectLayer, error)
	GetByProjectID(projectID uuid.UUID) ([]models.ProjectLayer, error)
}

// SolutionRepositoryInterface defines the interface for solution repository operations
type SolutionRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.Solution, error)
	GetByTitle(title string) (*models.Solution, error)
	GetByProjectID(projectID uuid.UUID) ([]models.Solution, error)
}

// SolutionLayerRepositoryInterface defines the interface for solution layer repository operations
type SolutionLayerRepositoryInterface interface {
	Create(layer *models.SolutionLayer) error
	GetBySolutionID(solutionID uuid.UUID) ([]models.SolutionLayer, error)
	GetByPair(solutionID, projectLayerID uuid.UUID) (*models.SolutionLayer, error)
}
