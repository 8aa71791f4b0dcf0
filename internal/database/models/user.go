package models

// User represents a dashboard user: either a PDA administrator or a club
// account that owns and judges its rounds.
type User struct {
	BaseModel
	Username     string   `json:"username" gorm:"size:50;uniqueIndex;not null" validate:"required,max=50"`
	PasswordHash string   `json:"-" gorm:"size:255;not null"`
	Role         UserRole `json:"role" gorm:"size:20;not null" validate:"required,oneof=admin clubs"`
	Club         string   `json:"club" gorm:"size:100"`
	IsActive     bool     `json:"is_active" gorm:"default:true"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
