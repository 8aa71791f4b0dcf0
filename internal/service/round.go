package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"crestora-backend/internal/database/models"
	apperrors "crestora-backend/internal/errors"
	"crestora-backend/internal/logger"
	"crestora-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoundService handles business logic for rounds: lifecycle transitions,
// criteria management and team evaluation. Transitions for one round are
// serialized through a per-round mutex so concurrent freeze and evaluate
// calls cannot interleave.
type RoundService struct {
	rounds    repository.RoundRepositoryInterface
	events    repository.EventRepositoryInterface
	teams     repository.TeamRepositoryInterface
	scores    repository.TeamScoreRepositoryInterface
	weights   repository.RoundWeightRepositoryInterface
	validator *validator.Validate
	locks     sync.Map
}

// NewRoundService creates a new round service
func NewRoundService(
	rounds repository.RoundRepositoryInterface,
	events repository.EventRepositoryInterface,
	teams repository.TeamRepositoryInterface,
	scores repository.TeamScoreRepositoryInterface,
	weights repository.RoundWeightRepositoryInterface,
	validator *validator.Validate,
) *RoundService {
	return &RoundService{
		rounds:    rounds,
		events:    events,
		teams:     teams,
		scores:    scores,
		weights:   weights,
		validator: validator,
	}
}

// lockRound acquires the mutex for one round and returns its unlock func
func (s *RoundService) lockRound(id uuid.UUID) func() {
	v, _ := s.locks.LoadOrStore(id, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// WildcardEligible reports whether a team may compete in a wildcard
// round. Eliminated teams get a second chance, and teams already scored
// in the round stay eligible even after their status changes.
func WildcardEligible(status models.TeamStatus, hasScore bool) bool {
	return status == models.TeamStatusEliminated || hasScore
}

// DefaultWeightPercentage is applied to every round until an admin sets
// an explicit leaderboard weight.
const DefaultWeightPercentage = 100

// CreateRoundRequest represents the request to create a round
type CreateRoundRequest struct {
	EventID     string             `json:"event_id" validate:"required,max=20"`
	RoundNumber int                `json:"round_number" validate:"required,gt=0"`
	Name        string             `json:"name" validate:"required,max=200"`
	Club        string             `json:"club" validate:"max=100"`
	Mode        models.EventMode   `json:"mode" validate:"omitempty,oneof=online offline"`
	Date        *time.Time         `json:"date,omitempty"`
	Description string             `json:"description"`
	FormLink    string             `json:"form_link" validate:"omitempty,url,max=500"`
	Contact     string             `json:"contact" validate:"max=200"`
	IsWildcard  bool               `json:"is_wildcard"`
	Criteria    []models.Criterion `json:"criteria,omitempty" validate:"omitempty,dive"`
}

// UpdateRoundRequest represents the request to update round metadata
type UpdateRoundRequest struct {
	Name        *string           `json:"name,omitempty" validate:"omitempty,max=200"`
	Club        *string           `json:"club,omitempty" validate:"omitempty,max=100"`
	Mode        *models.EventMode `json:"mode,omitempty" validate:"omitempty,oneof=online offline"`
	Date        *time.Time        `json:"date,omitempty"`
	Description *string           `json:"description,omitempty"`
	FormLink    *string           `json:"form_link,omitempty" validate:"omitempty,url,max=500"`
	Contact     *string           `json:"contact,omitempty" validate:"omitempty,max=200"`
}

// UpdateCriteriaRequest represents the request to replace a round's criteria
type UpdateCriteriaRequest struct {
	Criteria []models.Criterion `json:"criteria" validate:"required,min=1,dive"`
}

// EvaluateTeamRequest represents a judge's score submission for one team.
// A team marked absent has every criterion zeroed regardless of the
// submitted scores.
type EvaluateTeamRequest struct {
	Scores    map[string]float64 `json:"scores"`
	IsPresent *bool              `json:"is_present,omitempty"`
}

// RoundResponse represents the response for round operations
type RoundResponse struct {
	ID                uuid.UUID          `json:"id"`
	EventID           string             `json:"event_id"`
	RoundNumber       int                `json:"round_number"`
	Name              string             `json:"name"`
	Club              string             `json:"club,omitempty"`
	Mode              models.EventMode   `json:"mode,omitempty"`
	Date              *time.Time         `json:"date,omitempty"`
	Description       string             `json:"description,omitempty"`
	FormLink          string             `json:"form_link,omitempty"`
	Contact           string             `json:"contact,omitempty"`
	IsWildcard        bool               `json:"is_wildcard"`
	Criteria          []models.Criterion `json:"criteria"`
	TotalMaxPoints    float64            `json:"total_max_points"`
	State             models.RoundState  `json:"state"`
	Status            models.EventStatus `json:"status"`
	IsFrozen          bool               `json:"is_frozen"`
	IsEvaluated       bool               `json:"is_evaluated"`
	MaxScore          *float64           `json:"max_score,omitempty"`
	MinScore          *float64           `json:"min_score,omitempty"`
	AvgScore          *float64           `json:"avg_score,omitempty"`
	ParticipatedCount int                `json:"participated_count"`
	ShortlistedTeams  []string           `json:"shortlisted_teams,omitempty"`
	WeightPercentage  float64            `json:"weight_percentage"`
	CreatedAt         string             `json:"created_at"`
	UpdatedAt         string             `json:"updated_at"`
}

// EvaluationResponse represents one team's evaluation within a round
type EvaluationResponse struct {
	TeamID          string             `json:"team_id"`
	TeamName        string             `json:"team_name,omitempty"`
	CriteriaScores  map[string]float64 `json:"criteria_scores"`
	RawTotalScore   float64            `json:"raw_total_score"`
	NormalizedScore float64            `json:"normalized_score"`
	IsNormalized    bool               `json:"is_normalized"`
	IsPresent       bool               `json:"is_present"`
	UpdatedAt       string             `json:"updated_at"`
}

// TopTeamEntry represents one entry of a round's top teams list
type TopTeamEntry struct {
	Rank            int     `json:"rank"`
	TeamID          string  `json:"team_id"`
	TeamName        string  `json:"team_name,omitempty"`
	NormalizedScore float64 `json:"normalized_score"`
}

// FreezeRoundResponse represents the result of freezing a round
type FreezeRoundResponse struct {
	Round    *RoundResponse `json:"round"`
	TopTeams []TopTeamEntry `json:"top_teams"`
}

// AbsenteeReport represents the outcome of processing a round's absentees
type AbsenteeReport struct {
	AbsentTeams []string `json:"absent_teams"`
	Eliminated  int      `json:"eliminated"`
	Reactivated int      `json:"reactivated"`
}

// RoundStatsResponse represents live statistics for a round
type RoundStatsResponse struct {
	RoundID           uuid.UUID          `json:"round_id"`
	Name              string             `json:"name"`
	State             models.RoundState  `json:"state"`
	Status            models.EventStatus `json:"status"`
	ScoredTeams       int                `json:"scored_teams"`
	EvaluatedTeams    int                `json:"evaluated_teams"`
	AbsentTeams       int                `json:"absent_teams"`
	ParticipatedCount int                `json:"participated_count"`
	MaxScore          *float64           `json:"max_score,omitempty"`
	MinScore          *float64           `json:"min_score,omitempty"`
	AvgScore          *float64           `json:"avg_score,omitempty"`
	TopTeams          []TopTeamEntry     `json:"top_teams"`
}

// Create creates a new round, seeds a zeroed score row for every active
// team and assigns the default leaderboard weight.
func (s *RoundService) Create(req *CreateRoundRequest) (*RoundResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.events.GetByEventID(req.EventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to verify event: %w", err)
	}

	existing, err := s.rounds.GetByEventAndNumber(req.EventID, req.RoundNumber)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing round: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrRoundExists
	}

	if len(req.Criteria) > 0 {
		if err := ValidateCriteria(req.Criteria); err != nil {
			return nil, err
		}
	}

	round := &models.Round{
		EventID:     req.EventID,
		RoundNumber: req.RoundNumber,
		Name:        req.Name,
		Club:        req.Club,
		Mode:        req.Mode,
		Date:        req.Date,
		Description: req.Description,
		FormLink:    req.FormLink,
		Contact:     req.Contact,
		IsWildcard:  req.IsWildcard,
		Criteria:    req.Criteria,
		State:       models.RoundStateOpen,
	}
	if err := s.rounds.Create(round); err != nil {
		return nil, fmt.Errorf("failed to create round: %w", err)
	}

	if err := s.seedScores(round); err != nil {
		return nil, err
	}

	weight, err := s.weights.Upsert(round.ID, DefaultWeightPercentage)
	if err != nil {
		return nil, fmt.Errorf("failed to assign default weight: %w", err)
	}

	return s.toResponse(round, weight.WeightPercentage), nil
}

// seedScores creates zeroed score rows for all currently active teams
func (s *RoundService) seedScores(round *models.Round) error {
	active, err := s.teams.GetByStatus(models.TeamStatusActive)
	if err != nil {
		return fmt.Errorf("failed to list active teams: %w", err)
	}
	rows := make([]models.TeamScore, 0, len(active))
	for _, team := range active {
		rows = append(rows, models.TeamScore{
			RoundID:        round.ID,
			TeamID:         team.TeamID,
			EventID:        round.EventID,
			CriteriaScores: models.ScoreMap{},
			IsPresent:      true,
		})
	}
	if err := s.scores.CreateBatch(rows); err != nil {
		return fmt.Errorf("failed to seed score rows: %w", err)
	}
	return nil
}

// GetByID retrieves a round by ID
func (s *RoundService) GetByID(id uuid.UUID) (*RoundResponse, error) {
	round, err := s.getRound(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(round, s.weightFor(id)), nil
}

// ListByEvent retrieves all rounds of an event ordered by round number
func (s *RoundService) ListByEvent(eventID string) ([]RoundResponse, error) {
	if _, err := s.events.GetByEventID(eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to verify event: %w", err)
	}
	rounds, err := s.rounds.GetByEventID(eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rounds: %w", err)
	}
	responses := make([]RoundResponse, 0, len(rounds))
	for i := range rounds {
		responses = append(responses, *s.toResponse(&rounds[i], s.weightFor(rounds[i].ID)))
	}
	return responses, nil
}

// Update updates a round's metadata. Frozen rounds reject all changes.
func (s *RoundService) Update(actor Actor, id uuid.UUID, req *UpdateRoundRequest) (*RoundResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	round, err := s.getRound(id)
	if err != nil {
		return nil, err
	}
	if !actor.CanManageRound(round) {
		return nil, apperrors.ErrNotRoundOwner
	}
	if round.State.IsFrozen() {
		return nil, apperrors.NewFrozenRoundError(round.Name, "update")
	}

	if req.Name != nil {
		round.Name = *req.Name
	}
	if req.Club != nil {
		round.Club = *req.Club
	}
	if req.Mode != nil {
		round.Mode = *req.Mode
	}
	if req.Date != nil {
		round.Date = req.Date
	}
	if req.Description != nil {
		round.Description = *req.Description
	}
	if req.FormLink != nil {
		round.FormLink = *req.FormLink
	}
	if req.Contact != nil {
		round.Contact = *req.Contact
	}

	if err := s.rounds.Update(round); err != nil {
		return nil, fmt.Errorf("failed to update round: %w", err)
	}
	return s.toResponse(round, s.weightFor(id)), nil
}

// Delete removes a round and its scores. Only open rounds can be deleted.
func (s *RoundService) Delete(actor Actor, id uuid.UUID) error {
	round, err := s.getRound(id)
	if err != nil {
		return err
	}
	if !actor.CanManageRound(round) {
		return apperrors.ErrNotRoundOwner
	}
	if round.State != models.RoundStateOpen {
		return apperrors.ErrRoundDeleteLocked
	}
	if err := s.rounds.Delete(id); err != nil {
		return fmt.Errorf("failed to delete round: %w", err)
	}
	return nil
}

// SetCriteria replaces a round's criteria definition and rescores every
// existing evaluation against it. Scores for removed criteria are
// dropped and remaining scores are clamped to the new maxima.
func (s *RoundService) SetCriteria(actor Actor, id uuid.UUID, req *UpdateCriteriaRequest) (*RoundResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := ValidateCriteria(req.Criteria); err != nil {
		return nil, err
	}

	unlock := s.lockRound(id)
	defer unlock()

	round, err := s.getRound(id)
	if err != nil {
		return nil, err
	}
	if !actor.CanManageRound(round) {
		return nil, apperrors.ErrNotRoundOwner
	}
	if round.State.IsFrozen() {
		return nil, apperrors.NewFrozenRoundError(round.Name, "criteria update")
	}

	round.Criteria = req.Criteria
	if err := s.rounds.Update(round); err != nil {
		return nil, fmt.Errorf("failed to update criteria: %w", err)
	}

	rows, err := s.scores.GetByRound(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load score rows: %w", err)
	}
	maxTotal := round.Criteria.TotalMaxPoints()
	maxByName := make(map[string]float64, len(round.Criteria))
	for _, c := range round.Criteria {
		maxByName[c.Name] = c.MaxPoints
	}
	for i := range rows {
		row := &rows[i]
		rescored := models.ScoreMap{}
		for name, value := range row.CriteriaScores {
			maxPoints, ok := maxByName[name]
			if !ok {
				continue
			}
			if value > maxPoints {
				value = maxPoints
			}
			rescored[name] = value
		}
		row.CriteriaScores = rescored
		row.RawTotalScore = rescored.Total()
		if row.IsNormalized {
			row.NormalizedScore = NormalizeScore(row.RawTotalScore, maxTotal)
		}
		if err := s.scores.Upsert(row); err != nil {
			return nil, fmt.Errorf("failed to rescore team %s: %w", row.TeamID, err)
		}
	}

	return s.toResponse(round, s.weightFor(id)), nil
}

// Evaluate records a team's scores for a round. The round must not be
// frozen, scores must fit the criteria definition, and wildcard rounds
// only accept eligible teams. Absent teams are zeroed.
func (s *RoundService) Evaluate(actor Actor, roundID uuid.UUID, teamID string, req *EvaluateTeamRequest) (*EvaluationResponse, error) {
	unlock := s.lockRound(roundID)
	defer unlock()

	round, err := s.getRound(roundID)
	if err != nil {
		return nil, err
	}
	if !actor.CanManageRound(round) {
		return nil, apperrors.ErrNotRoundOwner
	}
	if round.State.IsFrozen() {
		return nil, apperrors.NewFrozenRoundError(round.Name, "evaluation")
	}
	if len(round.Criteria) == 0 {
		return nil, apperrors.NewValidationError("criteria", "round has no criteria defined")
	}

	team, err := s.teams.GetByTeamID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	existing, err := s.scores.GetByRoundAndTeam(roundID, teamID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check score row: %w", err)
	}
	hasScore := existing != nil

	if round.IsWildcard {
		if !WildcardEligible(team.Status, hasScore) {
			return nil, apperrors.NewValidationError("team_id", fmt.Sprintf("team %s is not eligible for wildcard round %q", teamID, round.Name))
		}
	} else if !hasScore && team.Status != models.TeamStatusActive {
		return nil, apperrors.NewValidationError("team_id", fmt.Sprintf("team %s is not active in this round", teamID))
	}

	present := true
	if req.IsPresent != nil {
		present = *req.IsPresent
	}

	row := models.TeamScore{
		RoundID:   roundID,
		TeamID:    teamID,
		EventID:   round.EventID,
		IsPresent: present,
	}
	if present {
		scores := models.ScoreMap(req.Scores)
		if scores == nil {
			scores = models.ScoreMap{}
		}
		if err := ValidateScores(round.Criteria, scores); err != nil {
			return nil, err
		}
		row.CriteriaScores = scores
		row.RawTotalScore = scores.Total()
		row.NormalizedScore = NormalizeScore(row.RawTotalScore, round.Criteria.TotalMaxPoints())
		row.IsNormalized = true
	} else {
		row.CriteriaScores = models.ScoreMap{}
		row.IsNormalized = true
	}

	if err := s.scores.Upsert(&row); err != nil {
		return nil, fmt.Errorf("failed to save evaluation: %w", err)
	}

	return &EvaluationResponse{
		TeamID:          teamID,
		TeamName:        team.TeamName,
		CriteriaScores:  row.CriteriaScores,
		RawTotalScore:   row.RawTotalScore,
		NormalizedScore: row.NormalizedScore,
		IsNormalized:    row.IsNormalized,
		IsPresent:       row.IsPresent,
		UpdatedAt:       time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// GetEvaluations lists every score row of a round with team names
func (s *RoundService) GetEvaluations(id uuid.UUID) ([]EvaluationResponse, error) {
	if _, err := s.getRound(id); err != nil {
		return nil, err
	}
	rows, err := s.scores.GetByRound(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load evaluations: %w", err)
	}
	names, err := s.teamNames(rows)
	if err != nil {
		return nil, err
	}
	responses := make([]EvaluationResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, EvaluationResponse{
			TeamID:          row.TeamID,
			TeamName:        names[row.TeamID],
			CriteriaScores:  row.CriteriaScores,
			RawTotalScore:   row.RawTotalScore,
			NormalizedScore: row.NormalizedScore,
			IsNormalized:    row.IsNormalized,
			IsPresent:       row.IsPresent,
			UpdatedAt:       row.UpdatedAt.Format(time.RFC3339),
		})
	}
	return responses, nil
}

// Freeze transitions a round from open to frozen, normalizes any rows
// not yet normalized and locks in the round statistics.
func (s *RoundService) Freeze(actor Actor, id uuid.UUID) (*FreezeRoundResponse, error) {
	unlock := s.lockRound(id)
	defer unlock()

	round, err := s.getRound(id)
	if err != nil {
		return nil, err
	}
	if !actor.CanManageRound(round) {
		return nil, apperrors.ErrNotRoundOwner
	}
	if round.State.IsFrozen() {
		return nil, apperrors.ErrRoundAlreadyFrozen
	}

	rows, err := s.scores.GetByRound(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load score rows: %w", err)
	}

	maxTotal := round.Criteria.TotalMaxPoints()
	for i := range rows {
		row := &rows[i]
		if row.IsNormalized {
			continue
		}
		row.NormalizedScore = NormalizeScore(row.RawTotalScore, maxTotal)
		row.IsNormalized = true
		if err := s.scores.Upsert(row); err != nil {
			return nil, fmt.Errorf("failed to normalize team %s: %w", row.TeamID, err)
		}
	}

	stats := ComputeRoundStats(rows)
	round.State = models.RoundStateFrozen
	round.MaxScore = stats.MaxScore
	round.MinScore = stats.MinScore
	round.AvgScore = stats.AvgScore
	round.ParticipatedCount = stats.ParticipatedCount
	if err := s.rounds.Update(round); err != nil {
		return nil, fmt.Errorf("failed to freeze round: %w", err)
	}
	logger.WithActor(actor.Username).WithFields(map[string]interface{}{
		"round_id":     round.ID,
		"round_number": round.RoundNumber,
		"participated": stats.ParticipatedCount,
	}).Info("Round frozen")

	top, err := s.topTeamEntries(rows, 3)
	if err != nil {
		return nil, err
	}
	return &FreezeRoundResponse{
		Round:    s.toResponse(round, s.weightFor(id)),
		TopTeams: top,
	}, nil
}

// Unfreeze reopens a frozen round and clears its freeze statistics.
// Evaluated rounds stay locked; only administrators may unfreeze.
func (s *RoundService) Unfreeze(actor Actor, id uuid.UUID) (*RoundResponse, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.ErrAdminOnly
	}

	unlock := s.lockRound(id)
	defer unlock()

	round, err := s.getRound(id)
	if err != nil {
		return nil, err
	}
	if round.State.IsEvaluated() {
		return nil, apperrors.ErrRoundEvaluated
	}
	if round.State != models.RoundStateFrozen {
		return nil, apperrors.ErrRoundNotFrozen
	}

	round.State = models.RoundStateOpen
	round.MaxScore = nil
	round.MinScore = nil
	round.AvgScore = nil
	round.ParticipatedCount = 0
	if err := s.rounds.Update(round); err != nil {
		return nil, fmt.Errorf("failed to unfreeze round: %w", err)
	}
	logger.WithActor(actor.Username).WithField("round_id", round.ID).Info("Round unfrozen")
	return s.toResponse(round, s.weightFor(id)), nil
}

// HandleAbsentees eliminates or reactivates the teams marked absent in a
// frozen round. The operation is idempotent: teams already in the target
// status are not counted again.
func (s *RoundService) HandleAbsentees(actor Actor, id uuid.UUID, eliminate bool) (*AbsenteeReport, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.ErrAdminOnly
	}

	unlock := s.lockRound(id)
	defer unlock()

	round, err := s.getRound(id)
	if err != nil {
		return nil, err
	}
	if !round.State.IsFrozen() {
		return nil, apperrors.ErrRoundNotFrozen
	}

	rows, err := s.scores.GetByRound(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load score rows: %w", err)
	}
	var absentIDs []string
	for _, row := range rows {
		if !row.IsPresent {
			absentIDs = append(absentIDs, row.TeamID)
		}
	}

	report := &AbsenteeReport{AbsentTeams: absentIDs}
	if len(absentIDs) == 0 {
		return report, nil
	}

	teams, err := s.teams.GetByTeamIDs(absentIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load absent teams: %w", err)
	}

	var toChange []string
	for _, team := range teams {
		if eliminate && team.Status == models.TeamStatusActive {
			toChange = append(toChange, team.TeamID)
		}
		if !eliminate && team.Status == models.TeamStatusEliminated {
			toChange = append(toChange, team.TeamID)
		}
	}
	if len(toChange) == 0 {
		return report, nil
	}

	target := models.TeamStatusEliminated
	if !eliminate {
		target = models.TeamStatusActive
	}
	if err := s.teams.SetStatusBatch(toChange, target); err != nil {
		return nil, fmt.Errorf("failed to update team statuses: %w", err)
	}
	if eliminate {
		report.Eliminated = len(toChange)
	} else {
		report.Reactivated = len(toChange)
	}
	logger.WithActor(actor.Username).WithFields(map[string]interface{}{
		"round_id":    round.ID,
		"absent":      len(absentIDs),
		"eliminated":  report.Eliminated,
		"reactivated": report.Reactivated,
	}).Info("Absentees handled")
	return report, nil
}

// Stats returns live statistics for a round. Frozen rounds report the
// statistics locked in at freeze time; open rounds compute them on the
// fly from the current score rows.
func (s *RoundService) Stats(id uuid.UUID) (*RoundStatsResponse, error) {
	round, err := s.getRound(id)
	if err != nil {
		return nil, err
	}
	rows, err := s.scores.GetByRound(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load score rows: %w", err)
	}

	resp := &RoundStatsResponse{
		RoundID:     round.ID,
		Name:        round.Name,
		State:       round.State,
		Status:      round.State.DisplayStatus(),
		ScoredTeams: len(rows),
	}
	for _, row := range rows {
		if row.IsNormalized {
			resp.EvaluatedTeams++
		}
		if !row.IsPresent {
			resp.AbsentTeams++
		}
	}

	if round.State.IsFrozen() {
		resp.MaxScore = round.MaxScore
		resp.MinScore = round.MinScore
		resp.AvgScore = round.AvgScore
		resp.ParticipatedCount = round.ParticipatedCount
	} else {
		stats := ComputeRoundStats(rows)
		resp.MaxScore = stats.MaxScore
		resp.MinScore = stats.MinScore
		resp.AvgScore = stats.AvgScore
		resp.ParticipatedCount = stats.ParticipatedCount
	}

	top, err := s.topTeamEntries(rows, 3)
	if err != nil {
		return nil, err
	}
	resp.TopTeams = top
	return resp, nil
}

// WildcardTeams lists the teams eligible for a round's wildcard entry:
// eliminated teams plus teams that already hold a score row in it.
func (s *RoundService) WildcardTeams(id uuid.UUID) ([]TeamSummary, error) {
	round, err := s.getRound(id)
	if err != nil {
		return nil, err
	}
	rows, err := s.scores.GetByRound(round.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load score rows: %w", err)
	}
	scored := make(map[string]bool, len(rows))
	for _, row := range rows {
		scored[row.TeamID] = true
	}

	eliminated, err := s.teams.GetByStatus(models.TeamStatusEliminated)
	if err != nil {
		return nil, fmt.Errorf("failed to list eliminated teams: %w", err)
	}

	byID := make(map[string]models.Team, len(eliminated))
	for _, team := range eliminated {
		byID[team.TeamID] = team
	}
	var missing []string
	for teamID := range scored {
		if _, ok := byID[teamID]; !ok {
			missing = append(missing, teamID)
		}
	}
	scoredTeams, err := s.teams.GetByTeamIDs(missing)
	if err != nil {
		return nil, fmt.Errorf("failed to load scored teams: %w", err)
	}
	for _, team := range scoredTeams {
		byID[team.TeamID] = team
	}

	summaries := make([]TeamSummary, 0, len(byID))
	for _, team := range byID {
		if !WildcardEligible(team.Status, scored[team.TeamID]) {
			continue
		}
		summaries = append(summaries, TeamSummary{
			TeamID:   team.TeamID,
			TeamName: team.TeamName,
			Status:   team.Status,
		})
	}
	sortTeamSummaries(summaries)
	return summaries, nil
}

func (s *RoundService) getRound(id uuid.UUID) (*models.Round, error) {
	round, err := s.rounds.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoundNotFound
		}
		return nil, fmt.Errorf("failed to get round: %w", err)
	}
	return round, nil
}

// weightFor resolves a round's weight, falling back to the default when
// no explicit weight row exists
func (s *RoundService) weightFor(id uuid.UUID) float64 {
	weight, err := s.weights.GetByRoundID(id)
	if err != nil {
		return DefaultWeightPercentage
	}
	return weight.WeightPercentage
}

func (s *RoundService) teamNames(rows []models.TeamScore) (map[string]string, error) {
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.TeamID)
	}
	teams, err := s.teams.GetByTeamIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load team names: %w", err)
	}
	names := make(map[string]string, len(teams))
	for _, team := range teams {
		names[team.TeamID] = team.TeamName
	}
	return names, nil
}

func (s *RoundService) topTeamEntries(rows []models.TeamScore, n int) ([]TopTeamEntry, error) {
	top := TopTeams(rows, n)
	names, err := s.teamNames(top)
	if err != nil {
		return nil, err
	}
	entries := make([]TopTeamEntry, 0, len(top))
	for i, row := range top {
		entries = append(entries, TopTeamEntry{
			Rank:            i + 1,
			TeamID:          row.TeamID,
			TeamName:        names[row.TeamID],
			NormalizedScore: row.NormalizedScore,
		})
	}
	return entries, nil
}

func (s *RoundService) toResponse(round *models.Round, weightPercentage float64) *RoundResponse {
	return &RoundResponse{
		ID:                round.ID,
		EventID:           round.EventID,
		RoundNumber:       round.RoundNumber,
		Name:              round.Name,
		Club:              round.Club,
		Mode:              round.Mode,
		Date:              round.Date,
		Description:       round.Description,
		FormLink:          round.FormLink,
		Contact:           round.Contact,
		IsWildcard:        round.IsWildcard,
		Criteria:          round.Criteria,
		TotalMaxPoints:    round.Criteria.TotalMaxPoints(),
		State:             round.State,
		Status:            round.State.DisplayStatus(),
		IsFrozen:          round.State.IsFrozen(),
		IsEvaluated:       round.State.IsEvaluated(),
		MaxScore:          round.MaxScore,
		MinScore:          round.MinScore,
		AvgScore:          round.AvgScore,
		ParticipatedCount: round.ParticipatedCount,
		ShortlistedTeams:  round.ShortlistedTeams,
		WeightPercentage:  weightPercentage,
		CreatedAt:         round.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         round.UpdatedAt.Format(time.RFC3339),
	}
}
