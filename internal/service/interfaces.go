package service

import (
	"crestora-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TeamServiceInterface defines the interface for team operations
type TeamServiceInterface interface {
	Create(req *CreateTeamRequest) (*TeamResponse, error)
	GetByID(teamID string) (*TeamResponse, error)
	GetAll(status *models.TeamStatus, page, pageSize int) (*TeamListResponse, error)
	Update(teamID string, req *UpdateTeamRequest) (*TeamResponse, error)
	Delete(teamID string) error
	SetStatus(teamID string, req *UpdateTeamStatusRequest) (*TeamResponse, error)
	Stats() (*TeamStatsResponse, error)
	Scores(teamID string) (*TeamScoresResponse, error)
}

// EventServiceInterface defines the interface for event operations
type EventServiceInterface interface {
	Create(req *CreateEventRequest) (*EventResponse, error)
	GetByID(eventID string) (*EventResponse, error)
	GetAll(eventType *models.EventType, status *models.EventStatus, page, pageSize int) (*EventListResponse, error)
	Reorder(eventID string, req *ReorderRoundsRequest) ([]RoundResponse, error)
	Delete(eventID string) error
	Stats() (*EventStatsResponse, error)
}

// RoundServiceInterface defines the interface for round operations
type RoundServiceInterface interface {
	Create(req *CreateRoundRequest) (*RoundResponse, error)
	GetByID(id uuid.UUID) (*RoundResponse, error)
	ListByEvent(eventID string) ([]RoundResponse, error)
	Update(actor Actor, id uuid.UUID, req *UpdateRoundRequest) (*RoundResponse, error)
	Delete(actor Actor, id uuid.UUID) error
	SetCriteria(actor Actor, id uuid.UUID, req *UpdateCriteriaRequest) (*RoundResponse, error)
	Evaluate(actor Actor, roundID uuid.UUID, teamID string, req *EvaluateTeamRequest) (*EvaluationResponse, error)
	GetEvaluations(id uuid.UUID) ([]EvaluationResponse, error)
	Freeze(actor Actor, id uuid.UUID) (*FreezeRoundResponse, error)
	Unfreeze(actor Actor, id uuid.UUID) (*RoundResponse, error)
	HandleAbsentees(actor Actor, id uuid.UUID, eliminate bool) (*AbsenteeReport, error)
	Stats(id uuid.UUID) (*RoundStatsResponse, error)
	WildcardTeams(id uuid.UUID) ([]TeamSummary, error)
}

// LeaderboardServiceInterface defines the interface for leaderboard operations
type LeaderboardServiceInterface interface {
	Compute() (*LeaderboardResponse, error)
	EvaluatedRounds() ([]ContributingRound, error)
	UpdateWeight(actor Actor, roundID uuid.UUID, req *UpdateWeightRequest) (*RoundWeightResponse, error)
	Shortlist(actor Actor, req *ShortlistRequest) (*ShortlistResponse, error)
}

// ExportServiceInterface defines the interface for export operations
type ExportServiceInterface interface {
	ExportRound(roundID uuid.UUID, sortBy string) (*ExportFile, error)
	ExportLeaderboardCSV() (*ExportFile, error)
	ExportLeaderboardXLSX() (*ExportFile, error)
}
