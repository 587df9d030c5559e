package models

import (
	"github.com/google/uuid"
)

// Membership join rows pair a solution with project layers of the matching
// type. They carry no attributes of their own and have set semantics: the
// composite primary key makes a pairing unique.

// SolutionWeight selects a weight-type layer for a solution
type SolutionWeight struct {
	SolutionID     uuid.UUID `json:"solution_id" gorm:"type:uuid;primaryKey"`
	ProjectLayerID uuid.UUID `json:"project_layer_id" gorm:"type:uuid;primaryKey"`
}

// TableName returns the table name for SolutionWeight
func (SolutionWeight) TableName() string {
	return "solution_weights"
}

// SolutionInclude selects an include-type layer for a solution
type SolutionInclude struct {
	SolutionID     uuid.UUID `json:"solution_id" gorm:"type:uuid;primaryKey"`
	ProjectLayerID uuid.UUID `json:"project_layer_id" gorm:"type:uuid;primaryKey"`
}

// TableName returns the table name for SolutionInclude
func (SolutionInclude) TableName() string {
	return "solution_includes"
}

// SolutionExclude selects an exclude-type layer for a solution
type SolutionExclude struct {
	SolutionID     uuid.UUID `json:"solution_id" gorm:"type:uuid;primaryKey"`
	ProjectLayerID uuid.UUID `json:"project_layer_id" gorm:"type:uuid;primaryKey"`
}

// TableName returns the table name for SolutionExclude
func (SolutionExclude) TableName() string {
	return "solution_excludes"
}
