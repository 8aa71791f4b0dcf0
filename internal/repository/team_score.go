package repository

import (
	"crestora-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TeamScoreRepository handles database operations for team scores
type TeamScoreRepository struct {
	db *gorm.DB
}

// NewTeamScoreRepository creates a new team score repository
func NewTeamScoreRepository(db *gorm.DB) *TeamScoreRepository {
	return &TeamScoreRepository{db: db}
}

// Upsert inserts or updates the score row for a (round, team) pair
func (r *TeamScoreRepository) Upsert(score *models.TeamScore) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "round_id"}, {Name: "team_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"criteria_scores", "raw_total_score", "normalized_score", "is_normalized", "is_present", "updated_at",
		}),
	}).Create(score).Error
}

// CreateBatch inserts score rows in bulk, skipping pairs that already exist
func (r *TeamScoreRepository) CreateBatch(scores []models.TeamScore) error {
	if len(scores) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "round_id"}, {Name: "team_id"}},
		DoNothing: true,
	}).Create(&scores).Error
}

// GetByRound retrieves all score rows for a round ordered by team ID
func (r *TeamScoreRepository) GetByRound(roundID uuid.UUID) ([]models.TeamScore, error) {
	var scores []models.TeamScore
	err := r.db.Where("round_id = ?", roundID).Order("team_id ASC").Find(&scores).Error
	return scores, err
}

// GetByRoundAndTeam retrieves the score row for a (round, team) pair
func (r *TeamScoreRepository) GetByRoundAndTeam(roundID uuid.UUID, teamID string) (*models.TeamScore, error) {
	var score models.TeamScore
	err := r.db.First(&score, "round_id = ? AND team_id = ?", roundID, teamID).Error
	if err != nil {
		return nil, err
	}
	return &score, nil
}

// GetByTeam retrieves all score rows for a team
func (r *TeamScoreRepository) GetByTeam(teamID string) ([]models.TeamScore, error) {
	var scores []models.TeamScore
	err := r.db.Where("team_id = ?", teamID).Find(&scores).Error
	return scores, err
}

// GetByTeamAndRounds retrieves a team's score rows limited to the given rounds
func (r *TeamScoreRepository) GetByTeamAndRounds(teamID string, roundIDs []uuid.UUID) ([]models.TeamScore, error) {
	if len(roundIDs) == 0 {
		return nil, nil
	}
	var scores []models.TeamScore
	err := r.db.Where("team_id = ? AND round_id IN ?", teamID, roundIDs).Find(&scores).Error
	return scores, err
}

// GetByRounds retrieves all score rows across the given rounds
func (r *TeamScoreRepository) GetByRounds(roundIDs []uuid.UUID) ([]models.TeamScore, error) {
	if len(roundIDs) == 0 {
		return nil, nil
	}
	var scores []models.TeamScore
	err := r.db.Where("round_id IN ?", roundIDs).Order("team_id ASC").Find(&scores).Error
	return scores, err
}

// DeleteByRound deletes all score rows for a round
func (r *TeamScoreRepository) DeleteByRound(roundID uuid.UUID) error {
	return r.db.Delete(&models.TeamScore{}, "round_id = ?", roundID).Error
}
