package repository

import (
	"conservation-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SolutionLayerRepository handles database operations for theme overrides
type SolutionLayerRepository struct {
	db *gorm.DB
}

// NewSolutionLayerRepository creates a new solution layer repository
func NewSolutionLayerRepository(db *gorm.DB) *SolutionLayerRepository {
	return &SolutionLayerRepository{db: db}
}

// Create creates a new solution layer
func (r *SolutionLayerRepository) Create(layer *models.SolutionLayer) error {
	return r.db.Create(layer).Error
}

// GetBySolutionID retrieves all theme overrides of a solution
func (r *SolutionLayerRepository) GetBySolutionID(solutionID uuid.UUID) ([]models.SolutionLayer, error) {
	var layers []models.SolutionLayer
	err := r.db.Preload("ProjectLayer").
		Where("solution_id = ?", solutionID).
		Order("created_at asc").
		Find(&layers).Error
	if err != nil {
		return nil, err
	}
	return layers, nil
}

// GetByPair retrieves the override for a (solution, project layer) pairing
func (r *SolutionLayerRepository) GetByPair(solutionID, projectLayerID uuid.UUID) (*models.SolutionLayer, error) {
	var layer models.SolutionLayer
	err := r.db.First(&layer, "solution_id = ? AND project_layer_id = ?", solutionID, projectLayerID).Error
	if err != nil {
		return nil, err
	}
	return &layer, nil
}
