package repository

import (
	"fmt"

	apperrors "crestora-backend/internal/errors"

	"crestora-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoundRepository handles database operations for rounds
type RoundRepository struct {
	db *gorm.DB
}

// NewRoundRepository creates a new round repository
func NewRoundRepository(db *gorm.DB) *RoundRepository {
	return &RoundRepository{db: db}
}

// ShortlistCommit describes the state transition a shortlist applies.
// All of it is written in one transaction so a failed commit leaves
// rounds and team statuses untouched.
type ShortlistCommit struct {
	ShortlistedTeamIDs []string
	EliminatedTeamIDs  []string
	EvaluateRoundIDs   []uuid.UUID
	NextRoundNumber    int
}

// Create creates a new round
func (r *RoundRepository) Create(round *models.Round) error {
	return r.db.Create(round).Error
}

// GetByID retrieves a round by ID
func (r *RoundRepository) GetByID(id uuid.UUID) (*models.Round, error) {
	var round models.Round
	err := r.db.First(&round, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &round, nil
}

// GetByEventAndNumber retrieves a round by event and round number
func (r *RoundRepository) GetByEventAndNumber(eventID string, roundNumber int) (*models.Round, error) {
	var round models.Round
	err := r.db.First(&round, "event_id = ? AND round_number = ?", eventID, roundNumber).Error
	if err != nil {
		return nil, err
	}
	return &round, nil
}

// GetByEventID retrieves all rounds for an event ordered by round number
func (r *RoundRepository) GetByEventID(eventID string) ([]models.Round, error) {
	var rounds []models.Round
	err := r.db.Where("event_id = ?", eventID).Order("round_number ASC").Find(&rounds).Error
	return rounds, err
}

// GetByState retrieves all rounds in any of the given states ordered by round number
func (r *RoundRepository) GetByState(states ...models.RoundState) ([]models.Round, error) {
	var rounds []models.Round
	err := r.db.Where("state IN ?", states).Order("round_number ASC").Find(&rounds).Error
	return rounds, err
}

// Update updates a round
func (r *RoundRepository) Update(round *models.Round) error {
	return r.db.Save(round).Error
}

// Delete deletes a round together with its scores and weight
func (r *RoundRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.TeamScore{}, "round_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.RoundWeight{}, "round_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Round{}, "id = ?", id).Error
	})
}

// ReorderRounds renumbers rounds of an event in one transaction. The
// numbers are first moved out of the way to avoid unique collisions
// while swapping.
func (r *RoundRepository) ReorderRounds(eventID string, newNumbers map[uuid.UUID]int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for id := range newNumbers {
			if err := tx.Model(&models.Round{}).
				Where("id = ? AND event_id = ?", id, eventID).
				Update("round_number", gorm.Expr("-round_number")).Error; err != nil {
				return err
			}
		}
		for id, num := range newNumbers {
			result := tx.Model(&models.Round{}).
				Where("id = ? AND event_id = ?", id, eventID).
				Update("round_number", num)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("round %s does not belong to event %s", id, eventID)
			}
		}
		return nil
	})
}

// CommitShortlist applies a shortlist decision atomically. Rounds being
// locked in must still be frozen and eliminated teams must still be
// active; otherwise the transaction rolls back with a consistency error.
func (r *RoundRepository) CommitShortlist(commit *ShortlistCommit) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if len(commit.EvaluateRoundIDs) > 0 {
			var frozen int64
			if err := tx.Model(&models.Round{}).
				Where("id IN ? AND state = ?", commit.EvaluateRoundIDs, models.RoundStateFrozen).
				Count(&frozen).Error; err != nil {
				return err
			}
			if frozen != int64(len(commit.EvaluateRoundIDs)) {
				return apperrors.NewConsistencyError("a contributing round changed state during shortlisting")
			}
			shortlisted := models.StringList(commit.ShortlistedTeamIDs)
			if err := tx.Model(&models.Round{}).
				Where("id IN ?", commit.EvaluateRoundIDs).
				Updates(map[string]interface{}{
					"state":             models.RoundStateEvaluated,
					"shortlisted_teams": shortlisted,
				}).Error; err != nil {
				return err
			}
		}

		if len(commit.EliminatedTeamIDs) > 0 {
			var active int64
			if err := tx.Model(&models.Team{}).
				Where("team_id IN ? AND status = ?", commit.EliminatedTeamIDs, models.TeamStatusActive).
				Count(&active).Error; err != nil {
				return err
			}
			if active != int64(len(commit.EliminatedTeamIDs)) {
				return apperrors.NewConsistencyError("a team changed status during shortlisting")
			}
			if err := tx.Model(&models.Team{}).
				Where("team_id IN ?", commit.EliminatedTeamIDs).
				Update("status", models.TeamStatusEliminated).Error; err != nil {
				return err
			}
		}

		if len(commit.ShortlistedTeamIDs) > 0 && commit.NextRoundNumber > 0 {
			if err := tx.Model(&models.Team{}).
				Where("team_id IN ?", commit.ShortlistedTeamIDs).
				Update("current_round", commit.NextRoundNumber).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// CountByState returns the number of rounds in the given state
func (r *RoundRepository) CountByState(state models.RoundState) (int64, error) {
	var count int64
	err := r.db.Model(&models.Round{}).Where("state = ?", state).Count(&count).Error
	return count, err
}

// CountAll returns the total number of rounds
func (r *RoundRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Round{}).Count(&count).Error
	return count, err
}
