package models

// Team represents a registered competition team. TeamID is the business
// identifier (e.g. CRES-96DA2) used as the foreign key everywhere; the UUID
// primary key stays internal.
type Team struct {
	BaseModel
	TeamID               string     `json:"team_id" gorm:"size:20;uniqueIndex;not null" validate:"required,max=20"`
	TeamName             string     `json:"team_name" gorm:"size:100;not null" validate:"required,max=100"`
	LeaderName           string     `json:"leader_name" gorm:"size:100;not null" validate:"required,max=100"`
	LeaderRegisterNumber string     `json:"leader_register_number" gorm:"size:20;not null" validate:"required,max=20"`
	LeaderContact        string     `json:"leader_contact" gorm:"size:15;not null" validate:"required,max=15"`
	LeaderEmail          string     `json:"leader_email" gorm:"size:100;not null" validate:"required,email,max=100"`
	PasswordHash         string     `json:"-" gorm:"size:255;not null"`
	CurrentRound         int        `json:"current_round" gorm:"default:1"`
	Status               TeamStatus `json:"status" gorm:"size:20;default:'ACTIVE'"`

	// Relationships
	Members []TeamMember `json:"members,omitempty" gorm:"foreignKey:TeamID;references:TeamID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// TeamMember represents one member of a team, including the leader
type TeamMember struct {
	BaseModel
	TeamID         string `json:"team_id" gorm:"size:20;not null;index" validate:"required"`
	MemberName     string `json:"member_name" gorm:"size:100;not null" validate:"required,max=100"`
	RegisterNumber string `json:"register_number" gorm:"size:20;not null" validate:"required,max=20"`
	MemberPosition string `json:"member_position" gorm:"size:20;not null" validate:"required,oneof=leader member2 member3 member4"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}
