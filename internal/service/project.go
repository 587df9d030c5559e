package service

import (
	"errors"
	"fmt"

	"conservation-portal-backend/internal/database/models"
	apperrors "conservation-portal-backend/internal/errors"
	"conservation-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	repo        repository.ProjectRepositoryInterface
	userRepo    repository.UserRepositoryInterface
	fileRepo    repository.FileRepositoryInterface
	coordinator *DeletionCoordinator
	validator   *validator.Validate
}

// NewProjectService creates a new project service
func NewProjectService(repo repository.ProjectRepositoryInterface, userRepo repository.UserRepositoryInterface, fileRepo repository.FileRepositoryInterface, coordinator *DeletionCoordinator, validator *validator.Validate) *ProjectService {
	return &ProjectService{
		repo:        repo,
		userRepo:    userRepo,
		fileRepo:    fileRepo,
		coordinator: coordinator,
		validator:   validator,
	}
}

// CreateProjectRequest represents the request to create a project
type CreateProjectRequest struct {
	OwnerID            uuid.UUID        `json:"owner_id" validate:"required"`
	Title              string           `json:"title" validate:"required,min=1,max=200"`
	Description        string           `json:"description,omitempty"`
	UserGroup          models.UserGroup `json:"user_group" validate:"required"`
	PlanningUnitFileID *uuid.UUID       `json:"planning_unit_file_id,omitempty"`
}

// Create creates a new project
func (s *ProjectService) Create(req *CreateProjectRequest) (*models.Project, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.UserGroup.IsValid() {
		return nil, &apperrors.ValidationError{Field: "user_group", Message: "must be one of public, planner, manager"}
	}

	if _, err := s.userRepo.GetByID(req.OwnerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to verify owner: %w", err)
	}

	existing, err := s.repo.GetByTitle(req.Title)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing project by title: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrProjectExists
	}

	project := &models.Project{
		Title:              req.Title,
		Description:        req.Description,
		OwnerID:            req.OwnerID,
		UserGroup:          req.UserGroup,
		PlanningUnitFileID: req.PlanningUnitFileID,
	}
	if err := s.repo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// GetByID retrieves a project by ID
func (s *ProjectService) GetByID(id uuid.UUID) (*models.Project, error) {
	project, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

// List retrieves projects, optionally filtered by user group
func (s *ProjectService) List(userGroup models.UserGroup, page, pageSize int) ([]models.Project, int64, error) {
	if userGroup != "" && !userGroup.IsValid() {
		return nil, 0, &apperrors.ValidationError{Field: "user_group", Message: "must be one of public, planner, manager"}
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	projects, total, err := s.repo.GetAll(userGroup, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, total, nil
}

// UpdatePlanningUnit attaches or replaces the project's planning-unit file.
// The file must already belong to the project.
func (s *ProjectService) UpdatePlanningUnit(id uuid.UUID, fileID uuid.UUID) (*models.Project, error) {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	file, err := s.fileRepo.GetByID(fileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFileNotFound
		}
		return nil, fmt.Errorf("failed to get file: %w", err)
	}
	if file.ProjectID != id {
		return nil, &apperrors.ReferentialError{Entity: "file", Message: "belongs to a different project"}
	}

	if err := s.repo.UpdatePlanningUnit(id, fileID); err != nil {
		return nil, fmt.Errorf("failed to update planning unit: %w", err)
	}

	return s.GetByID(id)
}

// Delete removes the project and its entire dependent graph, then cleans up
// the physical files it owned. See DeletionCoordinator for the two-phase
// semantics.
func (s *ProjectService) Delete(id uuid.UUID) error {
	return s.coordinator.DeleteProject(id)
}
