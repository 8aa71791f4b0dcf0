package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Criterion is a named, capped scoring dimension within a round
type Criterion struct {
	Name      string  `json:"name" validate:"required,max=100"`
	MaxPoints float64 `json:"max_points" validate:"required,gt=0"`
}

// CriteriaList is an ordered list of criteria stored as jsonb
type CriteriaList []Criterion

// Value implements driver.Valuer for CriteriaList
func (c CriteriaList) Value() (driver.Value, error) {
	if c == nil {
		return nil, nil
	}
	return json.Marshal(c)
}

// Scan implements sql.Scanner for CriteriaList
func (c *CriteriaList) Scan(value interface{}) error {
	if value == nil {
		*c = nil
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			b = []byte(s)
		} else {
			return fmt.Errorf("cannot scan %T into CriteriaList", value)
		}
	}
	return json.Unmarshal(b, c)
}

// TotalMaxPoints returns the sum of max_points over all criteria
func (c CriteriaList) TotalMaxPoints() float64 {
	var total float64
	for _, criterion := range c {
		total += criterion.MaxPoints
	}
	return total
}

// StringList is a jsonb-backed list of strings (team IDs)
type StringList []string

// Value implements driver.Valuer for StringList
func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner for StringList
func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		if str, ok := value.(string); ok {
			b = []byte(str)
		} else {
			return fmt.Errorf("cannot scan %T into StringList", value)
		}
	}
	return json.Unmarshal(b, s)
}

// Event represents a competition event that owns a sequence of rounds
type Event struct {
	BaseModel
	EventID     string      `json:"event_id" gorm:"size:20;uniqueIndex;not null" validate:"required,max=20"`
	EventCode   string      `json:"event_code" gorm:"size:20;not null" validate:"required,max=20"`
	Name        string      `json:"name" gorm:"size:200;not null" validate:"required,max=200"`
	Type        EventType   `json:"type" gorm:"size:20;not null" validate:"required,oneof=title rolling"`
	StartDate   *time.Time  `json:"start_date,omitempty"`
	EndDate     *time.Time  `json:"end_date,omitempty"`
	Venue       string      `json:"venue" gorm:"size:200"`
	Description string      `json:"description" gorm:"type:text"`
	Status      EventStatus `json:"status" gorm:"size:20;default:'upcoming'"`
}

// TableName returns the table name for Event
func (Event) TableName() string {
	return "events"
}

// Round represents one judged phase of an event, owned by a club.
// State is the single source of truth for the open/frozen/evaluated
// lifecycle; the booleans the API exposes are derived from it.
type Round struct {
	BaseModel
	EventID     string     `json:"event_id" gorm:"size:20;not null;index" validate:"required,max=20"`
	RoundNumber int        `json:"round_number" gorm:"not null;index" validate:"required,gt=0"`
	Name        string     `json:"name" gorm:"size:200;not null" validate:"required,max=200"`
	Club        string     `json:"club" gorm:"size:100"`
	Mode        EventMode  `json:"mode" gorm:"size:20"`
	Date        *time.Time `json:"date,omitempty"`
	Description string     `json:"description" gorm:"type:text"`
	FormLink    string     `json:"form_link" gorm:"size:500"`
	Contact     string     `json:"contact" gorm:"size:200"`
	IsWildcard  bool       `json:"is_wildcard" gorm:"default:false"`

	Criteria CriteriaList `json:"criteria" gorm:"type:jsonb"`
	State    RoundState   `json:"state" gorm:"size:20;default:'open'"`

	// Statistics computed at freeze time over present teams
	MaxScore          *float64 `json:"max_score,omitempty"`
	MinScore          *float64 `json:"min_score,omitempty"`
	AvgScore          *float64 `json:"avg_score,omitempty"`
	ParticipatedCount int      `json:"participated_count" gorm:"default:0"`

	ShortlistedTeams StringList `json:"shortlisted_teams,omitempty" gorm:"type:jsonb"`
}

// TableName returns the table name for Round
func (Round) TableName() string {
	return "rounds"
}

// CriterionByName looks up a criterion by its unique name
func (r *Round) CriterionByName(name string) (Criterion, bool) {
	for _, c := range r.Criteria {
		if c.Name == name {
			return c, true
		}
	}
	return Criterion{}, false
}

// RoundWeight holds the weight percentage used to scale a round's
// normalized scores in leaderboard aggregation. One row per round.
type RoundWeight struct {
	BaseModel
	RoundID          uuid.UUID `json:"round_id" gorm:"type:uuid;uniqueIndex;not null"`
	WeightPercentage float64   `json:"weight_percentage" gorm:"not null;default:100" validate:"gte=0"`
}

// TableName returns the table name for RoundWeight
func (RoundWeight) TableName() string {
	return "round_weights"
}
