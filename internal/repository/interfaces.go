package repository

import (
	"crestora-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByTeamID(teamID string) (*models.Team, error)
	GetWithMembers(teamID string) (*models.Team, error)
	GetAll(status *models.TeamStatus, limit, offset int) ([]models.Team, int64, error)
	GetByStatus(status models.TeamStatus) ([]models.Team, error)
	GetByTeamIDs(teamIDs []string) ([]models.Team, error)
	ListAll() ([]models.Team, error)
	Update(team *models.Team) error
	Delete(teamID string) error
	SetStatus(teamID string, status models.TeamStatus) error
	SetStatusBatch(teamIDs []string, status models.TeamStatus) error
	CountByStatus(status models.TeamStatus) (int64, error)
	CountByCurrentRound(roundNumber int) (int64, error)
	CountAll() (int64, error)
}

// EventRepositoryInterface defines the interface for event repository operations
type EventRepositoryInterface interface {
	Create(event *models.Event) error
	GetByEventID(eventID string) (*models.Event, error)
	GetAll(eventType *models.EventType, status *models.EventStatus, limit, offset int) ([]models.Event, int64, error)
	Update(event *models.Event) error
	Delete(eventID string) error
	CountByType(eventType models.EventType) (int64, error)
	CountByStatus(status models.EventStatus) (int64, error)
	CountAll() (int64, error)
}

// RoundRepositoryInterface defines the interface for round repository operations
type RoundRepositoryInterface interface {
	Create(round *models.Round) error
	GetByID(id uuid.UUID) (*models.Round, error)
	GetByEventAndNumber(eventID string, roundNumber int) (*models.Round, error)
	GetByEventID(eventID string) ([]models.Round, error)
	GetByState(states ...models.RoundState) ([]models.Round, error)
	Update(round *models.Round) error
	Delete(id uuid.UUID) error
	ReorderRounds(eventID string, newNumbers map[uuid.UUID]int) error
	CommitShortlist(commit *ShortlistCommit) error
	CountByState(state models.RoundState) (int64, error)
	CountAll() (int64, error)
}

// TeamScoreRepositoryInterface defines the interface for team score repository operations
type TeamScoreRepositoryInterface interface {
	Upsert(score *models.TeamScore) error
	CreateBatch(scores []models.TeamScore) error
	GetByRound(roundID uuid.UUID) ([]models.TeamScore, error)
	GetByRoundAndTeam(roundID uuid.UUID, teamID string) (*models.TeamScore, error)
	GetByTeam(teamID string) ([]models.TeamScore, error)
	GetByTeamAndRounds(teamID string, roundIDs []uuid.UUID) ([]models.TeamScore, error)
	GetByRounds(roundIDs []uuid.UUID) ([]models.TeamScore, error)
	DeleteByRound(roundID uuid.UUID) error
}

// RoundWeightRepositoryInterface defines the interface for round weight repository operations
type RoundWeightRepositoryInterface interface {
	GetByRoundID(roundID uuid.UUID) (*models.RoundWeight, error)
	GetByRoundIDs(roundIDs []uuid.UUID) ([]models.RoundWeight, error)
	Upsert(roundID uuid.UUID, weightPercentage float64) (*models.RoundWeight, error)
	DeleteByRound(roundID uuid.UUID) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
}
