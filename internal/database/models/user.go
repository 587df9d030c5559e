package models

// User represents an authenticated portal actor. Token issuance and password
// handling live outside this service; only the identity referenced by
// projects, files and solutions is stored here.
type User struct {
	BaseModel
	Username string   `json:"username" gorm:"not null;uniqueIndex;size:100" validate:"required,min=1,max=100"`
	Email    string   `json:"email" gorm:"size:200" validate:"omitempty,email"`
	Role     UserRole `json:"role" gorm:"type:varchar(20);not null" validate:"required"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
