package repository

import (
	"conservation-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FileRepository handles database operations for file references
type FileRepository struct {
	db *gorm.DB
}

// NewFileRepository creates a new file repository
func NewFileRepository(db *gorm.DB) *FileRepository {
	return &FileRepository{db: db}
}

// Create creates a new file reference
func (r *FileRepository) Create(file *models.File) error {
	return r.db.Create(file).Error
}

// GetByID retrieves a file by ID
func (r *FileRepository) GetByID(id uuid.UUID) (*models.File, error) {
	var file models.File
	err := r.db.First(&file, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &file, nil
}

// GetByProjectID retrieves all file references owned by a project
func (r *FileRepository) GetByProjectID(projectID uuid.UUID) ([]models.File, error) {
	var files []models.File
	err := r.db.Where("project_id = ?", projectID).Find(&files).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}
