package service

import (
	"errors"
	"fmt"
	"time"

	"crestora-backend/internal/database/models"
	apperrors "crestora-backend/internal/errors"
	"crestora-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventService handles business logic for events
type EventService struct {
	repo      repository.EventRepositoryInterface
	rounds    repository.RoundRepositoryInterface
	validator *validator.Validate
}

// NewEventService creates a new event service
func NewEventService(repo repository.EventRepositoryInterface, rounds repository.RoundRepositoryInterface, validator *validator.Validate) *EventService {
	return &EventService{
		repo:      repo,
		rounds:    rounds,
		validator: validator,
	}
}

// CreateEventRequest represents the request to create an event
type CreateEventRequest struct {
	EventID     string             `json:"event_id" validate:"required,max=20"`
	EventCode   string             `json:"event_code" validate:"required,max=20"`
	Name        string             `json:"name" validate:"required,max=200"`
	Type        models.EventType   `json:"type" validate:"required,oneof=title rolling"`
	StartDate   *time.Time         `json:"start_date,omitempty"`
	EndDate     *time.Time         `json:"end_date,omitempty"`
	Venue       string             `json:"venue" validate:"max=200"`
	Description string             `json:"description"`
	Status      models.EventStatus `json:"status" validate:"omitempty,oneof=upcoming in_progress completed"`
}

// RoundOrder assigns a new round number to one round
type RoundOrder struct {
	RoundID     uuid.UUID `json:"round_id" validate:"required"`
	RoundNumber int       `json:"round_number" validate:"required,gt=0"`
}

// ReorderRoundsRequest represents the request to renumber an event's rounds
type ReorderRoundsRequest struct {
	Rounds []RoundOrder `json:"rounds" validate:"required,min=1,dive"`
}

// EventResponse represents the response for event operations
type EventResponse struct {
	EventID     string             `json:"event_id"`
	EventCode   string             `json:"event_code"`
	Name        string             `json:"name"`
	Type        models.EventType   `json:"type"`
	StartDate   *time.Time         `json:"start_date,omitempty"`
	EndDate     *time.Time         `json:"end_date,omitempty"`
	Venue       string             `json:"venue,omitempty"`
	Description string             `json:"description,omitempty"`
	Status      models.EventStatus `json:"status"`
	Rounds      []RoundResponse    `json:"rounds,omitempty"`
	CreatedAt   string             `json:"created_at"`
	UpdatedAt   string             `json:"updated_at"`
}

// EventListResponse represents a paginated list of events
type EventListResponse struct {
	Events   []EventResponse `json:"events"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// EventStatsResponse summarizes events and their rounds
type EventStatsResponse struct {
	TotalEvents     int64 `json:"total_events"`
	TitleEvents     int64 `json:"title_events"`
	RollingEvents   int64 `json:"rolling_events"`
	UpcomingEvents  int64 `json:"upcoming_events"`
	OngoingEvents   int64 `json:"ongoing_events"`
	CompletedEvents int64 `json:"completed_events"`
	TotalRounds     int64 `json:"total_rounds"`
	OpenRounds      int64 `json:"open_rounds"`
	FrozenRounds    int64 `json:"frozen_rounds"`
	EvaluatedRounds int64 `json:"evaluated_rounds"`
}

// Create creates a new event
func (s *EventService) Create(req *CreateEventRequest) (*EventResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByEventID(req.EventID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing event: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrEventExists
	}

	status := req.Status
	if status == "" {
		status = models.EventStatusUpcoming
	}

	event := &models.Event{
		EventID:     req.EventID,
		EventCode:   req.EventCode,
		Name:        req.Name,
		Type:        req.Type,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Venue:       req.Venue,
		Description: req.Description,
		Status:      status,
	}
	if err := s.repo.Create(event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return s.toResponse(event, nil), nil
}

// GetByID retrieves an event with its rounds
func (s *EventService) GetByID(eventID string) (*EventResponse, error) {
	event, err := s.repo.GetByEventID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	rounds, err := s.rounds.GetByEventID(eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load rounds: %w", err)
	}
	return s.toResponse(event, rounds), nil
}

// GetAll retrieves events with optional filters and pagination
func (s *EventService) GetAll(eventType *models.EventType, status *models.EventStatus, page, pageSize int) (*EventListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 50
	}
	if eventType != nil && !eventType.IsValid() {
		return nil, apperrors.NewValidationError("type", "invalid event type")
	}
	if status != nil && !status.IsValid() {
		return nil, apperrors.NewValidationError("status", "invalid event status")
	}

	events, total, err := s.repo.GetAll(eventType, status, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	responses := make([]EventResponse, 0, len(events))
	for i := range events {
		responses = append(responses, *s.toResponse(&events[i], nil))
	}
	return &EventListResponse{
		Events:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Reorder renumbers an event's rounds in one transaction. Duplicate
// target numbers are rejected before anything is written.
func (s *EventService) Reorder(eventID string, req *ReorderRoundsRequest) ([]RoundResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByEventID(eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	numbers := make(map[uuid.UUID]int, len(req.Rounds))
	seen := make(map[int]bool, len(req.Rounds))
	for _, order := range req.Rounds {
		if seen[order.RoundNumber] {
			return nil, apperrors.ErrDuplicateRoundNums
		}
		seen[order.RoundNumber] = true
		numbers[order.RoundID] = order.RoundNumber
	}

	if err := s.rounds.ReorderRounds(eventID, numbers); err != nil {
		return nil, fmt.Errorf("failed to reorder rounds: %w", err)
	}

	rounds, err := s.rounds.GetByEventID(eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load rounds: %w", err)
	}
	responses := make([]RoundResponse, 0, len(rounds))
	for i := range rounds {
		round := &rounds[i]
		responses = append(responses, RoundResponse{
			ID:          round.ID,
			EventID:     round.EventID,
			RoundNumber: round.RoundNumber,
			Name:        round.Name,
			Club:        round.Club,
			State:       round.State,
			Status:      round.State.DisplayStatus(),
			IsFrozen:    round.State.IsFrozen(),
			IsEvaluated: round.State.IsEvaluated(),
		})
	}
	return responses, nil
}

// Delete removes an event with all its rounds and scores
func (s *EventService) Delete(eventID string) error {
	if _, err := s.repo.GetByEventID(eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEventNotFound
		}
		return fmt.Errorf("failed to get event: %w", err)
	}
	if err := s.repo.Delete(eventID); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

// Stats summarizes event and round counts
func (s *EventService) Stats() (*EventStatsResponse, error) {
	resp := &EventStatsResponse{}
	var err error
	if resp.TotalEvents, err = s.repo.CountAll(); err != nil {
		return nil, fmt.Errorf("failed to count events: %w", err)
	}
	if resp.TitleEvents, err = s.repo.CountByType(models.EventTypeTitle); err != nil {
		return nil, fmt.Errorf("failed to count title events: %w", err)
	}
	if resp.RollingEvents, err = s.repo.CountByType(models.EventTypeRolling); err != nil {
		return nil, fmt.Errorf("failed to count rolling events: %w", err)
	}
	if resp.UpcomingEvents, err = s.repo.CountByStatus(models.EventStatusUpcoming); err != nil {
		return nil, fmt.Errorf("failed to count upcoming events: %w", err)
	}
	if resp.OngoingEvents, err = s.repo.CountByStatus(models.EventStatusInProgress); err != nil {
		return nil, fmt.Errorf("failed to count ongoing events: %w", err)
	}
	if resp.CompletedEvents, err = s.repo.CountByStatus(models.EventStatusCompleted); err != nil {
		return nil, fmt.Errorf("failed to count completed events: %w", err)
	}
	if resp.TotalRounds, err = s.rounds.CountAll(); err != nil {
		return nil, fmt.Errorf("failed to count rounds: %w", err)
	}
	if resp.OpenRounds, err = s.rounds.CountByState(models.RoundStateOpen); err != nil {
		return nil, fmt.Errorf("failed to count open rounds: %w", err)
	}
	if resp.FrozenRounds, err = s.rounds.CountByState(models.RoundStateFrozen); err != nil {
		return nil, fmt.Errorf("failed to count frozen rounds: %w", err)
	}
	if resp.EvaluatedRounds, err = s.rounds.CountByState(models.RoundStateEvaluated); err != nil {
		return nil, fmt.Errorf("failed to count evaluated rounds: %w", err)
	}
	return resp, nil
}

func (s *EventService) toResponse(event *models.Event, rounds []models.Round) *EventResponse {
	resp := &EventResponse{
		EventID:     event.EventID,
		EventCode:   event.EventCode,
		Name:        event.Name,
		Type:        event.Type,
		StartDate:   event.StartDate,
		EndDate:     event.EndDate,
		Venue:       event.Venue,
		Description: event.Description,
		Status:      event.Status,
		CreatedAt:   event.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   event.UpdatedAt.Format(time.RFC3339),
	}
	for i := range rounds {
		round := &rounds[i]
		resp.Rounds = append(resp.Rounds, RoundResponse{
			ID:                round.ID,
			EventID:           round.EventID,
			RoundNumber:       round.RoundNumber,
			Name:              round.Name,
			Club:              round.Club,
			Mode:              round.Mode,
			Date:              round.Date,
			IsWildcard:        round.IsWildcard,
			Criteria:          round.Criteria,
			TotalMaxPoints:    round.Criteria.TotalMaxPoints(),
			State:             round.State,
			Status:            round.State.DisplayStatus(),
			IsFrozen:          round.State.IsFrozen(),
			IsEvaluated:       round.State.IsEvaluated(),
			ParticipatedCount: round.ParticipatedCount,
			CreatedAt:         round.CreatedAt.Format(time.RFC3339),
			UpdatedAt:         round.UpdatedAt.Format(time.RFC3339),
		})
	}
	return resp
}
