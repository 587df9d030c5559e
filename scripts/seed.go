package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"conservation-portal-backend/internal/config"
	"conservation-portal-backend/internal/database"
	"conservation-portal-backend/internal/database/models"
	"conservation-portal-backend/internal/storage"

	"github.com/joho/godotenv"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Seeds a demo planning project with a layer catalog and one solution so a
// fresh install has something to show. Run with: go run scripts/seed.go
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := seed(db, cfg.StorageRoot); err != nil {
		log.Fatalf("failed to seed: %v", err)
	}
	log.Println("Demo data seeded")
}

func seed(db *gorm.DB, storageRoot string) error {
	var existing int64
	if err := db.Model(&models.Project{}).Where("title = ?", "Highland Corridors Demo").Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		log.Println("Demo project already present, nothing to do")
		return nil
	}

	planner := &models.User{
		Username: "demo-planner",
		Email:    "planner@example.org",
		Role:     models.UserRolePlanner,
	}
	if err := db.Where(models.User{Username: planner.Username}).FirstOrCreate(planner).Error; err != nil {
		return fmt.Errorf("create planner: %w", err)
	}

	project := &models.Project{
		Title:       "Highland Corridors Demo",
		Description: "Demo project connecting upland habitat patches",
		OwnerID:     planner.ID,
		UserGroup:   models.UserGroupPublic,
	}
	if err := db.Create(project).Error; err != nil {
		return fmt.Errorf("create project: %w", err)
	}

	store := storage.NewOSStore(storageRoot)
	dir := store.ProjectDir(project.Title, project.ID)
	if err := os.MkdirAll(store.Resolve(dir), 0o755); err != nil {
		return fmt.Errorf("create project dir: %w", err)
	}

	file := &models.File{
		Name:        "planning-units.tif",
		Description: "Hexagonal planning-unit grid",
		UploaderID:  planner.ID,
		ProjectID:   project.ID,
		Path:        filepath.ToSlash(filepath.Join(dir, "planning-units.tif")),
	}
	if err := db.Create(file).Error; err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	if err := os.WriteFile(store.Resolve(file.Path), []byte{}, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	if err := db.Model(project).Update("planning_unit_file_id", file.ID).Error; err != nil {
		return fmt.Errorf("attach planning unit: %w", err)
	}

	theme := &models.ProjectLayer{
		ProjectID:  project.ID,
		Type:       models.LayerTypeTheme,
		Theme:      "Biodiversity",
		Name:       "Ancient Woodland",
		Legend:     models.LegendTypeManual,
		Values:     datatypes.JSONSlice[string]{"0", "1"},
		Color:      datatypes.JSONSlice[string]{"#f1faee", "#2d6a4f"},
		Labels:     datatypes.JSONSlice[string]{"absent", "present"},
		Provenance: models.ProvenanceNational,
		SortOrder:  1,
		Visible:    true,
	}
	weight := &models.ProjectLayer{
		ProjectID:    project.ID,
		Type:         models.LayerTypeWeight,
		Name:         "Carbon Density",
		Legend:       models.LegendTypeContinuous,
		Unit:         "tonnes/ha",
		Color:        datatypes.JSONSlice[string]{"#f1faee", "#1b4332"},
		Provenance:   models.ProvenanceRegional,
		SortOrder:    2,
		Visible:      true,
		Downloadable: true,
	}
	exclude := &models.ProjectLayer{
		ProjectID: project.ID,
		Type:      models.LayerTypeExclude,
		Name:      "Urban Areas",
		SortOrder: 3,
	}
	for _, layer := range []*models.ProjectLayer{theme, weight, exclude} {
		if err := db.Create(layer).Error; err != nil {
			return fmt.Errorf("create layer %q: %w", layer.Name, err)
		}
	}

	goal := 0.3
	return db.Transaction(func(tx *gorm.DB) error {
		solution := &models.Solution{
			ProjectID:   project.ID,
			AuthorID:    planner.ID,
			Title:       "Baseline Scenario",
			Description: "30% woodland goal, carbon weighted, urban areas excluded",
			AuthorName:  "Demo Planner",
			AuthorEmail: "planner@example.org",
			UserGroup:   models.UserGroupPublic,
		}
		if err := tx.Create(solution).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.SolutionWeight{SolutionID: solution.ID, ProjectLayerID: weight.ID}).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.SolutionExclude{SolutionID: solution.ID, ProjectLayerID: exclude.ID}).Error; err != nil {
			return err
		}
		return tx.Create(&models.SolutionLayer{
			SolutionID:     solution.ID,
			ProjectLayerID: theme.ID,
			Goal:           &goal,
		}).Error
	})
}
