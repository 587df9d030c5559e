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

// LayerService handles business logic for the project layer catalog. Layers
// have no delete or type-update surface: they are created once and removed
// only by the project cascade.
type LayerService struct {
	repo        repository.ProjectLayerRepositoryInterface
	projectRepo repository.ProjectRepositoryInterface
	fileRepo    repository.FileRepositoryInterface
	validator   *validator.Validate
}

// NewLayerService creates a new layer service
func NewLayerService(repo repository.ProjectLayerRepositoryInterface, projectRepo repository.ProjectRepositoryInterface, fileRepo repository.FileRepositoryInterface, validator *validator.Validate) *LayerService {
	return &LayerService{
		repo:        repo,
		projectRepo: projectRepo,
		fileRepo:    fileRepo,
		validator:   validator,
	}
}

// CreateLayerRequest represents the request to add a layer to a project's catalog
type CreateLayerRequest struct {
	ProjectID    uuid.UUID         `json:"project_id" validate:"required"`
	FileID       *uuid.UUID        `json:"file_id,omitempty"`
	Type         models.LayerType  `json:"type" validate:"required"`
	Theme        string            `json:"theme,omitempty" validate:"max=200"`
	Name         string            `json:"name" validate:"required,min=1,max=200"`
	Legend       models.LegendType `json:"legend,omitempty"`
	Values       []string          `json:"values,omitempty"`
	Color        []string          `json:"color,omitempty"`
	Labels       []string          `json:"labels,omitempty"`
	Unit         string            `json:"unit,omitempty" validate:"max=50"`
	Provenance   models.Provenance `json:"provenance,omitempty"`
	Order        int               `json:"order,omitempty"`
	Visible      *bool             `json:"visible,omitempty"`
	Hidden       *bool             `json:"hidden,omitempty"`
	Downloadable *bool             `json:"downloadable,omitempty"`
}

// Create adds a layer to the project's catalog
func (s *LayerService) Create(req *CreateLayerRequest) (*models.ProjectLayer, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateLayerInvariants(req); err != nil {
		return nil, err
	}

	if _, err := s.projectRepo.GetByID(req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to verify project: %w", err)
	}

	if req.FileID != nil {
		file, err := s.fileRepo.GetByID(*req.FileID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrFileNotFound
			}
			return nil, fmt.Errorf("failed to verify file: %w", err)
		}
		if file.ProjectID != req.ProjectID {
			return nil, &apperrors.ReferentialError{Entity: "file", Message: "belongs to a different project"}
		}
	}

	layer := &models.ProjectLayer{
		ProjectID:    req.ProjectID,
		FileID:       req.FileID,
		Type:         req.Type,
		Theme:        req.Theme,
		Name:         req.Name,
		Legend:       req.Legend,
		Values:       req.Values,
		Color:        req.Color,
		Labels:       req.Labels,
		Unit:         req.Unit,
		Provenance:   req.Provenance,
		SortOrder:    req.Order,
		Visible:      boolOrDefault(req.Visible, true),
		Hidden:       boolOrDefault(req.Hidden, false),
		Downloadable: boolOrDefault(req.Downloadable, true),
	}
	if err := s.repo.Create(layer); err != nil {
		return nil, fmt.Errorf("failed to create project layer: %w", err)
	}

	return layer, nil
}

// GetByID retrieves a project layer by ID
func (s *LayerService) GetByID(id uuid.UUID) (*models.ProjectLayer, error) {
	layer, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectLayerNotFound
		}
		return nil, fmt.Errorf("failed to get project layer: %w", err)
	}
	return layer, nil
}

// ListByProject retrieves a project's catalog in display order
func (s *LayerService) ListByProject(projectID uuid.UUID) ([]models.ProjectLayer, error) {
	if _, err := s.projectRepo.GetByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to verify project: %w", err)
	}

	layers, err := s.repo.GetByProjectID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list project layers: %w", err)
	}
	return layers, nil
}

// validateLayerInvariants enforces the type and legend rules before any write.
// Manual legends enumerate values/color/labels in parallel arrays of equal
// length; continuous legends carry a unit and no labels.
func validateLayerInvariants(req *CreateLayerRequest) error {
	if !req.Type.IsValid() {
		return &apperrors.ValidationError{Field: "type", Message: "must be one of theme, weight, include, exclude"}
	}
	if req.Provenance != "" && !req.Provenance.IsValid() {
		return &apperrors.ValidationError{Field: "provenance", Message: "must be one of regional, national, missing"}
	}

	switch req.Legend {
	case "":
		// no legend metadata
	case models.LegendTypeManual:
		if len(req.Values) == 0 || len(req.Color) == 0 || len(req.Labels) == 0 {
			return &apperrors.ValidationError{Field: "legend", Message: "manual legend requires values, color and labels"}
		}
		if len(req.Values) != len(req.Color) || len(req.Values) != len(req.Labels) {
			return &apperrors.ValidationError{Field: "legend", Message: "values, color and labels must have equal length"}
		}
	case models.LegendTypeContinuous:
		if req.Unit == "" {
			return &apperrors.ValidationError{Field: "legend", Message: "continuous legend requires a unit"}
		}
		if len(req.Labels) != 0 {
			return &apperrors.ValidationError{Field: "legend", Message: "continuous legend forbids labels"}
		}
	default:
		return &apperrors.ValidationError{Field: "legend", Message: "must be one of manual, continuous"}
	}

	return nil
}

func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
