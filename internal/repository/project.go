package repository

import (
	"conservation-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetByTitle retrieves a project by its unique title
func (r *ProjectRepository) GetByTitle(title string) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "title = ?", title).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetAll retrieves projects with pagination, optionally filtered by user group
func (r *ProjectRepository) GetAll(userGroup models.UserGroup, limit, offset int) ([]models.Project, int64, error) {
	var projects []models.Project
	var total int64

	query := r.db.Model(&models.Project{})
	if userGroup != "" {
		query = query.Where("user_group = ?", userGroup)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at asc").Limit(limit).Offset(offset).Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

// GetWithFiles retrieves a project with all its file references
func (r *ProjectRepository) GetWithFiles(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Files").First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// UpdatePlanningUnit attaches or replaces the project's planning-unit file reference
func (r *ProjectRepository) UpdatePlanningUnit(id uuid.UUID, fileID uuid.UUID) error {
	return r.db.Model(&models.Project{}).Where("id = ?", id).Update("planning_unit_file_id", fileID).Error
}
