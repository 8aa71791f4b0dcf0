package repository

import (
	"crestora-backend/internal/database/models"

	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team together with its members
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByTeamID retrieves a team by its public team identifier
func (r *TeamRepository) GetByTeamID(teamID string) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "team_id = ?", teamID).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetWithMembers retrieves a team with all its members
func (r *TeamRepository) GetWithMembers(teamID string) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("Members").First(&team, "team_id = ?", teamID).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetAll retrieves teams with optional status filter and pagination
func (r *TeamRepository) GetAll(status *models.TeamStatus, limit, offset int) ([]models.Team, int64, error) {
	var teams []models.Team
	var total int64

	query := r.db.Model(&models.Team{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.Preload("Members").Order("team_id ASC").Limit(limit).Offset(offset).Find(&teams).Error
	if err != nil {
		return nil, 0, err
	}

	return teams, total, nil
}

// GetByStatus retrieves all teams with the given status ordered by team ID
func (r *TeamRepository) GetByStatus(status models.TeamStatus) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Where("status = ?", status).Order("team_id ASC").Find(&teams).Error
	return teams, err
}

// ListAll retrieves every team ordered by team ID
func (r *TeamRepository) ListAll() ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Order("team_id ASC").Find(&teams).Error
	return teams, err
}

// GetByTeamIDs retrieves teams matching the given team identifiers
func (r *TeamRepository) GetByTeamIDs(teamIDs []string) ([]models.Team, error) {
	if len(teamIDs) == 0 {
		return nil, nil
	}
	var teams []models.Team
	err := r.db.Where("team_id IN ?", teamIDs).Order("team_id ASC").Find(&teams).Error
	return teams, err
}

// Update updates a team
func (r *TeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// Delete deletes a team, its members and its scores
func (r *TeamRepository) Delete(teamID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.TeamScore{}, "team_id = ?", teamID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.TeamMember{}, "team_id = ?", teamID).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Team{}, "team_id = ?", teamID).Error
	})
}

// SetStatus sets the status of a team
func (r *TeamRepository) SetStatus(teamID string, status models.TeamStatus) error {
	return r.db.Model(&models.Team{}).Where("team_id = ?", teamID).Update("status", status).Error
}

// SetStatusBatch sets the status of multiple teams in one statement
func (r *TeamRepository) SetStatusBatch(teamIDs []string, status models.TeamStatus) error {
	if len(teamIDs) == 0 {
		return nil
	}
	return r.db.Model(&models.Team{}).Where("team_id IN ?", teamIDs).Update("status", status).Error
}

// CountByStatus returns the number of teams with the given status
func (r *TeamRepository) CountByStatus(status models.TeamStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Team{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// CountByCurrentRound returns the number of teams currently at the given round number
func (r *TeamRepository) CountByCurrentRound(roundNumber int) (int64, error) {
	var count int64
	err := r.db.Model(&models.Team{}).Where("current_round = ?", roundNumber).Count(&count).Error
	return count, err
}

// CountAll returns the total number of teams
func (r *TeamRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Team{}).Count(&count).Error
	return count, err
}
