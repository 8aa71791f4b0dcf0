package repository

import (
	"crestora-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RoundWeightRepository handles database operations for round weights
type RoundWeightRepository struct {
	db *gorm.DB
}

// NewRoundWeightRepository creates a new round weight repository
func NewRoundWeightRepository(db *gorm.DB) *RoundWeightRepository {
	return &RoundWeightRepository{db: db}
}

// GetByRoundID retrieves the weight row for a round
func (r *RoundWeightRepository) GetByRoundID(roundID uuid.UUID) (*models.RoundWeight, error) {
	var weight models.RoundWeight
	err := r.db.First(&weight, "round_id = ?", roundID).Error
	if err != nil {
		return nil, err
	}
	return &weight, nil
}

// GetByRoundIDs retrieves weight rows for the given rounds
func (r *RoundWeightRepository) GetByRoundIDs(roundIDs []uuid.UUID) ([]models.RoundWeight, error) {
	if len(roundIDs) == 0 {
		return nil, nil
	}
	var weights []models.RoundWeight
	err := r.db.Where("round_id IN ?", roundIDs).Find(&weights).Error
	return weights, err
}

// Upsert inserts or updates the weight for a round and returns the row
func (r *RoundWeightRepository) Upsert(roundID uuid.UUID, weightPercentage float64) (*models.RoundWeight, error) {
	weight := models.RoundWeight{
		RoundID:          roundID,
		WeightPercentage: weightPercentage,
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "round_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"weight_percentage", "updated_at"}),
	}).Create(&weight).Error
	if err != nil {
		return nil, err
	}
	return r.GetByRoundID(roundID)
}

// DeleteByRound deletes the weight row for a round
func (r *RoundWeightRepository) DeleteByRound(roundID uuid.UUID) error {
	return r.db.Delete(&models.RoundWeight{}, "round_id = ?", roundID).Error
}
