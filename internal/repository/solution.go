package repository

import (
	"conservation-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SolutionRepository handles database operations for solutions
type SolutionRepository struct {
	db *gorm.DB
}

// NewSolutionRepository creates a new solution repository
func NewSolutionRepository(db *gorm.DB) *SolutionRepository {
	return &SolutionRepository{db: db}
}

// GetByID retrieves a solution by ID with its theme overrides and
// membership sets.
func (r *SolutionRepository) GetByID(id uuid.UUID) (*models.Solution, error) {
	var solution models.Solution
	err := r.db.
		Preload("Layers").
		Preload("Weights").
		Preload("Includes").
		Preload("Excludes").
		First(&solution, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &solution, nil
}

// GetByTitle retrieves a solution by its unique title
func (r *SolutionRepository) GetByTitle(title string) (*models.Solution, error) {
	var solution models.Solution
	err := r.db.First(&solution, "title = ?", title).Error
	if err != nil {
		return nil, err
	}
	return &solution, nil
}

// GetByProjectID retrieves all solutions for a project with their theme
// overrides and membership sets.
func (r *SolutionRepository) GetByProjectID(projectID uuid.UUID) ([]models.Solution, error) {
	var solutions []models.Solution
	err := r.db.
		Preload("Layers").
		Preload("Weights").
		Preload("Includes").
		Preload("Excludes").
		Where("project_id = ?", projectID).
		Order("created_at asc").
		Find(&solutions).Error
	if err != nil {
		return nil, err
	}
	return solutions, nil
}
