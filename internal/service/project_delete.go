package service

import (
	"errors"
	"fmt"

	"conservation-portal-backend/internal/database/models"
	apperrors "conservation-portal-backend/internal/errors"
	"conservation-portal-backend/internal/logger"
	"conservation-portal-backend/internal/repository"
	"conservation-portal-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeletionCoordinator removes a project's entire dependent entity graph and
// the physical files it owns.
//
// The operation has two phases with different guarantees. The database phase
// runs as one transaction: either the full graph (memberships, theme
// overrides, solutions, layers, files, project) is removed or nothing is.
// The filesystem phase runs only after the database phase committed and is
// best-effort: each failed removal is logged as a warning and never rolls
// back or fails the operation. Residual files are a monitored cost, not a
// correctness violation.
type DeletionCoordinator struct {
	db    *gorm.DB
	repo  repository.ProjectRepositoryInterface
	store *storage.Store
	log   *logger.Logger
}

// NewDeletionCoordinator creates a new deletion coordinator
func NewDeletionCoordinator(db *gorm.DB, repo repository.ProjectRepositoryInterface, store *storage.Store, log *logger.Logger) *DeletionCoordinator {
	return &DeletionCoordinator{
		db:    db,
		repo:  repo,
		store: store,
		log:   log,
	}
}

// deletionPlan lists the physical paths owned by a project, computed before
// any row is removed.
type deletionPlan struct {
	files      []string // stored relative paths
	projectDir string   // relative directory, removed last
}

// DeleteProject drives the Load → Plan → Commit → Cleanup state machine.
func (c *DeletionCoordinator) DeleteProject(id uuid.UUID) error {
	// Load
	project, err := c.repo.GetWithFiles(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return fmt.Errorf("failed to load project: %w", err)
	}

	// Plan
	plan := deletionPlan{
		projectDir: c.store.ProjectDir(project.Title, project.ID),
	}
	for _, f := range project.Files {
		plan.files = append(plan.files, f.Path)
	}

	// Commit: the relational graph goes in one transaction, child rows first.
	err = c.db.Transaction(func(tx *gorm.DB) error {
		solutionIDs := tx.Model(&models.Solution{}).Select("id").Where("project_id = ?", id)

		if err := tx.Where("solution_id IN (?)", solutionIDs).Delete(&models.SolutionLayer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("solution_id IN (?)", solutionIDs).Delete(&models.SolutionWeight{}).Error; err != nil {
			return err
		}
		if err := tx.Where("solution_id IN (?)", solutionIDs).Delete(&models.SolutionInclude{}).Error; err != nil {
			return err
		}
		if err := tx.Where("solution_id IN (?)", solutionIDs).Delete(&models.SolutionExclude{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.Solution{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectLayer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.File{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, "id = ?", id).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	// Cleanup: best-effort, per-file, never fails the operation.
	log := c.log.WithField("project_id", id)
	for _, rel := range plan.files {
		if err := c.store.Remove(rel); err != nil {
			log.WithField("path", rel).WithError(err).Warn("failed to remove project file")
		}
	}
	if err := c.store.RemoveDir(plan.projectDir); err != nil {
		log.WithField("path", plan.projectDir).WithError(err).Warn("failed to remove project directory")
	}

	return nil
}
