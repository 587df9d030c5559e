package repository

import (
	"conservation-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectLayerRepository handles database operations for the layer catalog
type ProjectLayerRepository struct {
	db *gorm.DB
}

// NewProjectLayerRepository creates a new project layer repository
func NewProjectLayerRepository(db *gorm.DB) *ProjectLayerRepository {
	return &ProjectLayerRepository{db: db}
}

// Create creates a new project layer
func (r *ProjectLayerRepository) Create(layer *models.ProjectLayer) error {
	return r.db.Create(layer).Error
}

// GetByID retrieves a project layer by ID
func (r *ProjectLayerRepository) GetByID(id uuid.UUID) (*models.ProjectLayer, error) {
	var layer models.ProjectLayer
	err := r.db.First(&layer, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &layer, nil
}

// GetByIDs retrieves the project layers matching the given ids; absent ids
// are simply missing from the result.
func (r *ProjectLayerRepository) GetByIDs(ids []uuid.UUID) ([]models.ProjectLayer, error) {
	var layers []models.ProjectLayer
	if len(ids) == 0 {
		return layers, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&layers).Error
	if err != nil {
		return nil, err
	}
	return layers, nil
}

// GetByProjectID retrieves a project's catalog sorted by sort order ascending,
// ties broken by creation time and finally by id so the order is stable even
// when rows share a timestamp.
func (r *ProjectLayerRepository) GetByProjectID(projectID uuid.UUID) ([]models.ProjectLayer, error) {
	var layers []models.ProjectLayer
	err := r.db.Where("project_id = ?", projectID).
		Order("sort_order asc, created_at asc, id asc").
		Find(&layers).Error
	if err != nil {
		return nil, err
	}
	return layers, nil
}
