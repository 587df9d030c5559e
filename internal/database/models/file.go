package models

import (
	"github.com/google/uuid"
)

// File is a reference to an uploaded physical file. Content is owned by the
// upload pipeline; this service only tracks the path relative to the storage
// root so deletion can clean it up.
type File struct {
	BaseModel
	Name        string    `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description string    `json:"description" gorm:"type:text"`
	UploaderID  uuid.UUID `json:"uploader_id" gorm:"type:uuid;not null;index" validate:"required"`
	ProjectID   uuid.UUID `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	Path        string    `json:"path" gorm:"not null;size:500" validate:"required,max=500"`

	// Relationships
	Uploader User `json:"uploader,omitempty" gorm:"foreignKey:UploaderID"`
}

// TableName returns the table name for File
func (File) TableName() string {
	return "files"
}
