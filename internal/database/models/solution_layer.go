package models

import (
	"github.com/google/uuid"
)

// SolutionLayer is an override record binding a solution to a theme-type
// project layer with an optional goal. At most one override may exist per
// (solution, project layer) pairing.
type SolutionLayer struct {
	BaseModel
	SolutionID     uuid.UUID `json:"solution_id" gorm:"type:uuid;not null;uniqueIndex:idx_solution_layer_pair" validate:"required"`
	ProjectLayerID uuid.UUID `json:"project_layer_id" gorm:"type:uuid;not null;uniqueIndex:idx_solution_layer_pair" validate:"required"`
	// Goal is a target in [0,1]; nil when the override carries no goal.
	Goal *float64 `json:"goal" validate:"omitempty,gte=0,lte=1"`

	// Relationships
	ProjectLayer ProjectLayer `json:"project_layer,omitempty" gorm:"foreignKey:ProjectLayerID"`
}

// TableName returns the table name for SolutionLayer
func (SolutionLayer) TableName() string {
	return "solution_layers"
}
