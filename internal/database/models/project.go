package models

import (
	"github.com/google/uuid"
)

// Project is a top-level planning workspace. It owns a catalog of layers,
// the files backing them and the solutions parameterizing them; all three
// are removed with the project.
type Project struct {
	BaseModel
	Title       string    `json:"title" gorm:"not null;uniqueIndex;size:200" validate:"required,min=1,max=200"`
	Description string    `json:"description" gorm:"type:text"`
	OwnerID     uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index" validate:"required"`
	UserGroup   UserGroup `json:"user_group" gorm:"type:varchar(20);not null" validate:"required"`
	// PlanningUnitFileID points at one of the project's own files; kept as a
	// plain column to avoid a cyclic foreign key between projects and files.
	PlanningUnitFileID *uuid.UUID `json:"planning_unit_file_id" gorm:"type:uuid"`

	// Relationships
	Owner     User           `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Files     []File         `json:"files,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Layers    []ProjectLayer `json:"layers,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Solutions []Solution     `json:"solutions,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}
