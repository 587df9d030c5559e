package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProjectLayer is a declared entry in a project's layer catalog. Its type is
// fixed at creation and determines where the layer may appear in a solution:
// theme layers carry goal overrides, the other types go into the matching
// membership set.
type ProjectLayer struct {
	BaseModel
	ProjectID uuid.UUID  `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	FileID    *uuid.UUID `json:"file_id" gorm:"type:uuid"`
	Type      LayerType  `json:"type" gorm:"type:varchar(20);not null" validate:"required"`
	Theme     string     `json:"theme" gorm:"size:200"` // e.g. "Species at Risk (ECCC)"
	Name      string     `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`

	// Legend metadata. Manual legends enumerate values/color/labels in
	// parallel arrays; continuous legends carry a unit instead.
	Legend LegendType                  `json:"legend" gorm:"type:varchar(20)"`
	Values datatypes.JSONSlice[string] `json:"values" gorm:"type:jsonb"` // e.g. ["0", "1"]
	Color  datatypes.JSONSlice[string] `json:"color" gorm:"type:jsonb"`  // e.g. ["#00000000", "#b3de69"]
	Labels datatypes.JSONSlice[string] `json:"labels" gorm:"type:jsonb"` // e.g. ["absence", "presence"]
	Unit   string                      `json:"unit" gorm:"size:50"`      // e.g. "km2"

	Provenance   Provenance `json:"provenance" gorm:"type:varchar(20)"`
	SortOrder    int        `json:"order" gorm:"column:sort_order;default:0"`
	Visible      bool       `json:"visible" gorm:"not null;default:true"`
	Hidden       bool       `json:"hidden" gorm:"not null;default:false"`
	Downloadable bool       `json:"downloadable" gorm:"not null;default:true"`
}

// TableName returns the table name for ProjectLayer
func (ProjectLayer) TableName() string {
	return "project_layers"
}
