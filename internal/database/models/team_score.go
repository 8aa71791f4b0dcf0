package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// ScoreMap maps criterion name to awarded points, stored as jsonb
type ScoreMap map[string]float64

// Value implements driver.Valuer for ScoreMap
func (m ScoreMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for ScoreMap
func (m *ScoreMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			b = []byte(s)
		} else {
			return fmt.Errorf("cannot scan %T into ScoreMap", value)
		}
	}
	return json.Unmarshal(b, m)
}

// Total returns the sum of all awarded points
func (m ScoreMap) Total() float64 {
	var total float64
	for _, v := range m {
		total += v
	}
	return total
}

// TeamScore holds one team's evaluation for one round. If IsPresent is
// false, all criteria scores are zero and the team contributes nothing to
// the round's statistics.
type TeamScore struct {
	BaseModel
	RoundID         uuid.UUID `json:"round_id" gorm:"type:uuid;not null;uniqueIndex:idx_round_team"`
	TeamID          string    `json:"team_id" gorm:"size:20;not null;uniqueIndex:idx_round_team;index"`
	EventID         string    `json:"event_id" gorm:"size:20;not null;index"`
	CriteriaScores  ScoreMap  `json:"criteria_scores" gorm:"type:jsonb"`
	RawTotalScore   float64   `json:"raw_total_score" gorm:"not null;default:0"`
	NormalizedScore float64   `json:"normalized_score" gorm:"not null;default:0"`
	IsNormalized    bool      `json:"is_normalized" gorm:"default:false"`
	IsPresent       bool      `json:"is_present" gorm:"default:true"`
}

// TableName returns the table name for TeamScore
func (TeamScore) TableName() string {
	return "team_scores"
}
