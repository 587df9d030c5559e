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

// MembershipSet names one of a solution's three layer-selection sets
type MembershipSet string

const (
	MembershipWeights  MembershipSet = "weights"
	MembershipIncludes MembershipSet = "includes"
	MembershipExcludes MembershipSet = "excludes"
)

// IsValid checks if the MembershipSet is valid
func (m MembershipSet) IsValid() bool {
	switch m {
	case MembershipWeights, MembershipIncludes, MembershipExcludes:
		return true
	}
	return false
}

// layerType returns the project-layer type legal for this set
func (m MembershipSet) layerType() models.LayerType {
	switch m {
	case MembershipWeights:
		return models.LayerTypeWeight
	case MembershipIncludes:
		return models.LayerTypeInclude
	default:
		return models.LayerTypeExclude
	}
}

// SolutionService translates a solution request into persisted selections and
// overrides. Creation is atomic: the solution row, its deduplicated
// membership sets and its theme overrides are written in one transaction or
// not at all.
type SolutionService struct {
	db        *gorm.DB
	repo      repository.SolutionRepositoryInterface
	layerRepo repository.ProjectLayerRepositoryInterface
	solLayers repository.SolutionLayerRepositoryInterface
	projRepo  repository.ProjectRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewSolutionService creates a new solution service
func NewSolutionService(db *gorm.DB, repo repository.SolutionRepositoryInterface, layerRepo repository.ProjectLayerRepositoryInterface, solLayers repository.SolutionLayerRepositoryInterface, projRepo repository.ProjectRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *SolutionService {
	return &SolutionService{
		db:        db,
		repo:      repo,
		layerRepo: layerRepo,
		solLayers: solLayers,
		projRepo:  projRepo,
		userRepo:  userRepo,
		validator: validator,
	}
}

// ThemeOverrideInput binds a theme layer to a goal within a solution request
type ThemeOverrideInput struct {
	ProjectLayerID uuid.UUID `json:"project_layer_id" validate:"required"`
	Goal           *float64  `json:"goal,omitempty" validate:"omitempty,gte=0,lte=1"`
}

// CreateSolutionRequest represents the request to create a solution
type CreateSolutionRequest struct {
	ProjectID   uuid.UUID        `json:"project_id" validate:"required"`
	AuthorID    uuid.UUID        `json:"author_id" validate:"required"`
	Title       string           `json:"title" validate:"required,min=1,max=200"`
	Description string           `json:"description,omitempty"`
	AuthorName  string           `json:"author_name" validate:"required,max=200"`
	AuthorEmail string           `json:"author_email" validate:"required,email"`
	UserGroup   models.UserGroup `json:"user_group" validate:"required"`

	WeightIDs  []uuid.UUID          `json:"weight_ids,omitempty"`
	IncludeIDs []uuid.UUID          `json:"include_ids,omitempty"`
	ExcludeIDs []uuid.UUID          `json:"exclude_ids,omitempty"`
	Themes     []ThemeOverrideInput `json:"themes,omitempty" validate:"dive"`
}

// Create validates every referenced layer, then persists the solution, its
// membership sets (set semantics: duplicates collapse, order irrelevant) and
// its theme overrides as one atomic unit.
func (s *SolutionService) Create(req *CreateSolutionRequest) (*models.Solution, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.UserGroup.IsValid() {
		return nil, &apperrors.ValidationError{Field: "user_group", Message: "must be one of public, planner, manager"}
	}

	if _, err := s.projRepo.GetByID(req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to verify project: %w", err)
	}
	if _, err := s.userRepo.GetByID(req.AuthorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to verify author: %w", err)
	}

	existing, err := s.repo.GetByTitle(req.Title)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing solution by title: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrSolutionExists
	}

	// The theme-override list is sequence-shaped input over set-shaped
	// storage: the same layer twice in one call is ambiguous and rejected.
	seen := make(map[uuid.UUID]bool, len(req.Themes))
	for _, t := range req.Themes {
		if seen[t.ProjectLayerID] {
			return nil, &apperrors.ValidationError{Field: "themes", Message: fmt.Sprintf("duplicate theme override for layer %s", t.ProjectLayerID)}
		}
		seen[t.ProjectLayerID] = true
	}

	weights := dedupIDs(req.WeightIDs)
	includes := dedupIDs(req.IncludeIDs)
	excludes := dedupIDs(req.ExcludeIDs)

	layers, err := s.resolveLayers(req.ProjectID, weights, includes, excludes, req.Themes)
	if err != nil {
		return nil, err
	}
	if err := checkLayerTypes(layers, weights, models.LayerTypeWeight, "weight_ids"); err != nil {
		return nil, err
	}
	if err := checkLayerTypes(layers, includes, models.LayerTypeInclude, "include_ids"); err != nil {
		return nil, err
	}
	if err := checkLayerTypes(layers, excludes, models.LayerTypeExclude, "exclude_ids"); err != nil {
		return nil, err
	}
	for _, t := range req.Themes {
		if layers[t.ProjectLayerID].Type != models.LayerTypeTheme {
			return nil, &apperrors.ReferentialError{Entity: "project layer", Message: fmt.Sprintf("%s in themes is not a theme layer", t.ProjectLayerID)}
		}
	}

	solution := &models.Solution{
		ProjectID:   req.ProjectID,
		AuthorID:    req.AuthorID,
		Title:       req.Title,
		Description: req.Description,
		AuthorName:  req.AuthorName,
		AuthorEmail: req.AuthorEmail,
		UserGroup:   req.UserGroup,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(solution).Error; err != nil {
			return err
		}
		for _, id := range weights {
			if err := tx.Create(&models.SolutionWeight{SolutionID: solution.ID, ProjectLayerID: id}).Error; err != nil {
				return err
			}
		}
		for _, id := range includes {
			if err := tx.Create(&models.SolutionInclude{SolutionID: solution.ID, ProjectLayerID: id}).Error; err != nil {
				return err
			}
		}
		for _, id := range excludes {
			if err := tx.Create(&models.SolutionExclude{SolutionID: solution.ID, ProjectLayerID: id}).Error; err != nil {
				return err
			}
		}
		for _, t := range req.Themes {
			override := &models.SolutionLayer{
				SolutionID:     solution.ID,
				ProjectLayerID: t.ProjectLayerID,
				Goal:           t.Goal,
			}
			if err := tx.Create(override).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create solution: %w", err)
	}

	return s.GetByID(solution.ID)
}

// GetByID retrieves a solution by ID
func (s *SolutionService) GetByID(id uuid.UUID) (*models.Solution, error) {
	solution, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSolutionNotFound
		}
		return nil, fmt.Errorf("failed to get solution: %w", err)
	}
	return solution, nil
}

// ListByProject retrieves a project's solutions with overrides and memberships
func (s *SolutionService) ListByProject(projectID uuid.UUID) ([]models.Solution, error) {
	if _, err := s.projRepo.GetByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to verify project: %w", err)
	}

	solutions, err := s.repo.GetByProjectID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list solutions: %w", err)
	}
	return solutions, nil
}

// ListSolutionLayers retrieves a solution's theme overrides
func (s *SolutionService) ListSolutionLayers(solutionID uuid.UUID) ([]models.SolutionLayer, error) {
	if _, err := s.repo.GetByID(solutionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSolutionNotFound
		}
		return nil, fmt.Errorf("failed to verify solution: %w", err)
	}

	layers, err := s.solLayers.GetBySolutionID(solutionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list solution layers: %w", err)
	}
	return layers, nil
}

// ReplaceMembership overwrites the named membership set wholesale. Duplicate
// ids collapse and order is irrelevant; re-running with the same ids yields
// the same membership.
func (s *SolutionService) ReplaceMembership(solutionID uuid.UUID, set MembershipSet, layerIDs []uuid.UUID) error {
	if !set.IsValid() {
		return &apperrors.ValidationError{Field: "set", Message: "must be one of weights, includes, excludes"}
	}

	solution, err := s.repo.GetByID(solutionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSolutionNotFound
		}
		return fmt.Errorf("failed to get solution: %w", err)
	}

	ids := dedupIDs(layerIDs)
	layers, err := s.resolveLayers(solution.ProjectID, ids, nil, nil, nil)
	if err != nil {
		return err
	}
	if err := checkLayerTypes(layers, ids, set.layerType(), "layer_ids"); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		switch set {
		case MembershipWeights:
			if err := tx.Where("solution_id = ?", solutionID).Delete(&models.SolutionWeight{}).Error; err != nil {
				return err
			}
			for _, id := range ids {
				if err := tx.Create(&models.SolutionWeight{SolutionID: solutionID, ProjectLayerID: id}).Error; err != nil {
					return err
				}
			}
		case MembershipIncludes:
			if err := tx.Where("solution_id = ?", solutionID).Delete(&models.SolutionInclude{}).Error; err != nil {
				return err
			}
			for _, id := range ids {
				if err := tx.Create(&models.SolutionInclude{SolutionID: solutionID, ProjectLayerID: id}).Error; err != nil {
					return err
				}
			}
		case MembershipExcludes:
			if err := tx.Where("solution_id = ?", solutionID).Delete(&models.SolutionExclude{}).Error; err != nil {
				return err
			}
			for _, id := range ids {
				if err := tx.Create(&models.SolutionExclude{SolutionID: solutionID, ProjectLayerID: id}).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// CreateSolutionLayer adds a single theme override outside of solution
// creation. An override for the same pairing must not already exist.
func (s *SolutionService) CreateSolutionLayer(solutionID, projectLayerID uuid.UUID, goal *float64) (*models.SolutionLayer, error) {
	if goal != nil && (*goal < 0 || *goal > 1) {
		return nil, &apperrors.ValidationError{Field: "goal", Message: "must be between 0 and 1"}
	}

	solution, err := s.repo.GetByID(solutionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSolutionNotFound
		}
		return nil, fmt.Errorf("failed to get solution: %w", err)
	}

	layer, err := s.layerRepo.GetByID(projectLayerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.ReferentialError{Entity: "project layer", Message: fmt.Sprintf("%s does not exist", projectLayerID)}
		}
		return nil, fmt.Errorf("failed to get project layer: %w", err)
	}
	if layer.ProjectID != solution.ProjectID {
		return nil, &apperrors.ReferentialError{Entity: "project layer", Message: "belongs to a different project"}
	}
	if layer.Type != models.LayerTypeTheme {
		return nil, &apperrors.ReferentialError{Entity: "project layer", Message: "is not a theme layer"}
	}

	existing, err := s.solLayers.GetByPair(solutionID, projectLayerID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing override: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrSolutionLayerExists
	}

	override := &models.SolutionLayer{
		SolutionID:     solutionID,
		ProjectLayerID: projectLayerID,
		Goal:           goal,
	}
	if err := s.solLayers.Create(override); err != nil {
		return nil, fmt.Errorf("failed to create solution layer: %w", err)
	}

	return override, nil
}

// resolveLayers loads every referenced layer and verifies existence and
// project ownership. Any violation is a ReferentialError.
func (s *SolutionService) resolveLayers(projectID uuid.UUID, weights, includes, excludes []uuid.UUID, themes []ThemeOverrideInput) (map[uuid.UUID]models.ProjectLayer, error) {
	var all []uuid.UUID
	all = append(all, weights...)
	all = append(all, includes...)
	all = append(all, excludes...)
	for _, t := range themes {
		all = append(all, t.ProjectLayerID)
	}
	all = dedupIDs(all)

	layers, err := s.layerRepo.GetByIDs(all)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project layers: %w", err)
	}

	byID := make(map[uuid.UUID]models.ProjectLayer, len(layers))
	for _, l := range layers {
		byID[l.ID] = l
	}
	for _, id := range all {
		layer, ok := byID[id]
		if !ok {
			return nil, &apperrors.ReferentialError{Entity: "project layer", Message: fmt.Sprintf("%s does not exist", id)}
		}
		if layer.ProjectID != projectID {
			return nil, &apperrors.ReferentialError{Entity: "project layer", Message: fmt.Sprintf("%s belongs to a different project", id)}
		}
	}
	return byID, nil
}

// checkLayerTypes verifies every id in a membership set references a layer of
// the set's type.
func checkLayerTypes(layers map[uuid.UUID]models.ProjectLayer, ids []uuid.UUID, want models.LayerType, field string) error {
	for _, id := range ids {
		if layers[id].Type != want {
			return &apperrors.ReferentialError{Entity: "project layer", Message: fmt.Sprintf("%s in %s is not a %s layer", id, field, want)}
		}
	}
	return nil
}

// dedupIDs collapses duplicates preserving first-seen order
func dedupIDs(ids []uuid.UUID) []uuid.UUID {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
