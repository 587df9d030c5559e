package models

import (
	"github.com/google/uuid"
)

// Solution is a named, authored parameterization of a project's layer
// catalog: selected weight/include/exclude layers plus per-theme goals,
// intended as input to the external planning engine. The engine's raster
// output, when produced, is attached via FileID.
type Solution struct {
	BaseModel
	ProjectID   uuid.UUID  `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	FileID      *uuid.UUID `json:"file_id" gorm:"type:uuid"`
	AuthorID    uuid.UUID  `json:"author_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title       string     `json:"title" gorm:"not null;uniqueIndex;size:200" validate:"required,min=1,max=200"`
	Description string     `json:"description" gorm:"type:text"`
	AuthorName  string     `json:"author_name" gorm:"not null;size:200" validate:"required,max=200"`
	AuthorEmail string     `json:"author_email" gorm:"not null;size:200" validate:"required,email"`
	UserGroup   UserGroup  `json:"user_group" gorm:"type:varchar(20);not null" validate:"required"`

	// Relationships
	Author   User              `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Layers   []SolutionLayer   `json:"layers,omitempty" gorm:"foreignKey:SolutionID;constraint:OnDelete:CASCADE"`
	Weights  []SolutionWeight  `json:"weights,omitempty" gorm:"foreignKey:SolutionID;constraint:OnDelete:CASCADE"`
	Includes []SolutionInclude `json:"includes,omitempty" gorm:"foreignKey:SolutionID;constraint:OnDelete:CASCADE"`
	Excludes []SolutionExclude `json:"excludes,omitempty" gorm:"foreignKey:SolutionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Solution
func (Solution) TableName() string {
	return "solutions"
}
