package service

import (
	"errors"
	"fmt"
	"path/filepath"

	"conservation-portal-backend/internal/database/models"
	apperrors "conservation-portal-backend/internal/errors"
	"conservation-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FileService handles business logic for file references. Physical upload
// happens outside this service; only the reference and its relative path
// are registered here.
type FileService struct {
	repo        repository.FileRepositoryInterface
	projectRepo repository.ProjectRepositoryInterface
	userRepo    repository.UserRepositoryInterface
	validator   *validator.Validate
}

// NewFileService creates a new file service
func NewFileService(repo repository.FileRepositoryInterface, projectRepo repository.ProjectRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *FileService {
	return &FileService{
		repo:        repo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
		validator:   validator,
	}
}

// CreateFileRequest represents the request to register an uploaded file
type CreateFileRequest struct {
	Name        string    `json:"name" validate:"required,min=1,max=200"`
	Description string    `json:"description,omitempty"`
	UploaderID  uuid.UUID `json:"uploader_id" validate:"required"`
	ProjectID   uuid.UUID `json:"project_id" validate:"required"`
	Path        string    `json:"path" validate:"required,max=500"` // relative to the storage root
}

// Create registers a file reference against its owning project
func (s *FileService) Create(req *CreateFileRequest) (*models.File, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	// Stored paths feed filesystem cleanup later; anything that could climb
	// out of the storage root is refused at the door.
	if !filepath.IsLocal(req.Path) {
		return nil, &apperrors.ValidationError{Field: "path", Message: "must be a relative path inside the storage root"}
	}

	if _, err := s.projectRepo.GetByID(req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to verify project: %w", err)
	}
	if _, err := s.userRepo.GetByID(req.UploaderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to verify uploader: %w", err)
	}

	file := &models.File{
		Name:        req.Name,
		Description: req.Description,
		UploaderID:  req.UploaderID,
		ProjectID:   req.ProjectID,
		Path:        req.Path,
	}
	if err := s.repo.Create(file); err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	return file, nil
}

// GetByID retrieves a file reference by ID
func (s *FileService) GetByID(id uuid.UUID) (*models.File, error) {
	file, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFileNotFound
		}
		return nil, fmt.Errorf("failed to get file: %w", err)
	}
	return file, nil
}
