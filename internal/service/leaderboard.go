package service

import (
	"errors"
	"fmt"
	"math"
	"sort"
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

// Shortlist selection modes
const (
	ShortlistModeTopK      = "top_k"
	ShortlistModeThreshold = "threshold"
)

// LeaderboardService aggregates frozen round results into event-wide
// standings and applies shortlist decisions. Standings are recomputed
// from the score rows on every read; nothing is cached, so a freeze or
// weight change is visible immediately.
type LeaderboardService struct {
	rounds    repository.RoundRepositoryInterface
	teams     repository.TeamRepositoryInterface
	scores    repository.TeamScoreRepositoryInterface
	weights   repository.RoundWeightRepositoryInterface
	validator *validator.Validate

	// serializes shortlist runs so two admins cannot race a decision
	shortlistMu sync.Mutex
}

// NewLeaderboardService creates a new leaderboard service
func NewLeaderboardService(
	rounds repository.RoundRepositoryInterface,
	teams repository.TeamRepositoryInterface,
	scores repository.TeamScoreRepositoryInterface,
	weights repository.RoundWeightRepositoryInterface,
	validator *validator.Validate,
) *LeaderboardService {
	return &LeaderboardService{
		rounds:    rounds,
		teams:     teams,
		scores:    scores,
		weights:   weights,
		validator: validator,
	}
}

// LeaderboardEntry represents one team's standing
type LeaderboardEntry struct {
	Rank            int               `json:"rank"`
	TeamID          string            `json:"team_id"`
	TeamName        string            `json:"team_name"`
	LeaderName      string            `json:"leader_name"`
	Status          models.TeamStatus `json:"status"`
	CurrentRound    int               `json:"current_round"`
	RoundsCompleted int               `json:"rounds_completed"`
	WeightedAverage float64           `json:"weighted_average"`
	FinalScore      float64           `json:"final_score"`
}

// ContributingRound describes one round feeding the standings
type ContributingRound struct {
	RoundID          uuid.UUID         `json:"round_id"`
	RoundNumber      int               `json:"round_number"`
	Name             string            `json:"name"`
	State            models.RoundState `json:"state"`
	WeightPercentage float64           `json:"weight_percentage"`
	ShortlistedTeams []string          `json:"shortlisted_teams,omitempty"`
}

// LeaderboardResponse represents the full standings
type LeaderboardResponse struct {
	Teams              []LeaderboardEntry  `json:"teams"`
	ContributingRounds []ContributingRound `json:"contributing_rounds"`
	GeneratedAt        string              `json:"generated_at"`
}

// UpdateWeightRequest represents the request to set a round's weight
type UpdateWeightRequest struct {
	WeightPercentage float64 `json:"weight_percentage" validate:"gte=0,lte=1000"`
}

// RoundWeightResponse represents the response for weight operations
type RoundWeightResponse struct {
	RoundID          uuid.UUID `json:"round_id"`
	RoundNumber      int       `json:"round_number"`
	RoundName        string    `json:"round_name"`
	WeightPercentage float64   `json:"weight_percentage"`
	UpdatedAt        string    `json:"updated_at"`
}

// ShortlistRequest represents the request to run a shortlist decision
type ShortlistRequest struct {
	Mode  string  `json:"mode" validate:"required,oneof=top_k threshold"`
	Value float64 `json:"value" validate:"gte=0"`
}

// ShortlistResponse represents the outcome of a shortlist run
type ShortlistResponse struct {
	Shortlisted     []LeaderboardEntry `json:"shortlisted"`
	EliminatedCount int                `json:"eliminated_count"`
	RoundsEvaluated int                `json:"rounds_evaluated"`
	NextRound       int                `json:"next_round"`
}

// ComputeStandings derives standings from raw rows. For each team the
// weighted average runs over the contributing rounds the team holds a
// score row in; rounds it never entered are excluded rather than
// counted as zero. Final scores rescale the best weighted average to
// 100. Ordering is by weighted average descending with ties broken by
// ascending team ID, and each team gets its own consecutive rank.
func ComputeStandings(teams []models.Team, rounds []models.Round, weights map[uuid.UUID]float64, scores []models.TeamScore) []LeaderboardEntry {
	scoreByTeam := make(map[string]map[uuid.UUID]models.TeamScore, len(teams))
	for _, row := range scores {
		if scoreByTeam[row.TeamID] == nil {
			scoreByTeam[row.TeamID] = make(map[uuid.UUID]models.TeamScore)
		}
		scoreByTeam[row.TeamID][row.RoundID] = row
	}

	entries := make([]LeaderboardEntry, 0, len(teams))
	for _, team := range teams {
		entry := LeaderboardEntry{
			TeamID:       team.TeamID,
			TeamName:     team.TeamName,
			LeaderName:   team.LeaderName,
			Status:       team.Status,
			CurrentRound: team.CurrentRound,
		}

		var weightedSum, weightSum float64
		for _, round := range rounds {
			row, ok := scoreByTeam[team.TeamID][round.ID]
			if !ok {
				continue
			}
			weight, hasWeight := weights[round.ID]
			if !hasWeight {
				weight = DefaultWeightPercentage
			}
			weightedSum += row.NormalizedScore * weight
			weightSum += weight
			entry.RoundsCompleted++
		}
		if weightSum > 0 {
			entry.WeightedAverage = roundTo2(weightedSum / weightSum)
		}
		entries = append(entries, entry)
	}

	var best float64
	for _, e := range entries {
		best = math.Max(best, e.WeightedAverage)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].WeightedAverage != entries[j].WeightedAverage {
			return entries[i].WeightedAverage > entries[j].WeightedAverage
		}
		return entries[i].TeamID < entries[j].TeamID
	})
	for i := range entries {
		entries[i].Rank = i + 1
		if best > 0 {
			entries[i].FinalScore = roundTo2(entries[i].WeightedAverage / best * 100)
		}
	}
	return entries
}

// DecideShortlist splits active standings into teams that advance and
// teams that drop out. top_k keeps the best k teams where k must be a
// whole number within the field size; threshold keeps every team whose
// weighted average reaches the cutoff (inclusive).
func DecideShortlist(entries []LeaderboardEntry, mode string, value float64) (shortlisted, eliminated []LeaderboardEntry, err error) {
	switch mode {
	case ShortlistModeTopK:
		k := int(value)
		if float64(k) != value || k <= 0 {
			return nil, nil, apperrors.NewValidationError("value", "top_k requires a positive whole number")
		}
		if k > len(entries) {
			return nil, nil, apperrors.NewValidationError("value", fmt.Sprintf("top_k of %d exceeds the %d active teams", k, len(entries)))
		}
		return entries[:k], entries[k:], nil
	case ShortlistModeThreshold:
		if value < 0 {
			return nil, nil, apperrors.NewValidationError("value", "threshold cannot be negative")
		}
		for _, e := range entries {
			if e.WeightedAverage >= value {
				shortlisted = append(shortlisted, e)
			} else {
				eliminated = append(eliminated, e)
			}
		}
		return shortlisted, eliminated, nil
	default:
		return nil, nil, apperrors.NewValidationError("mode", "mode must be top_k or threshold")
	}
}

// Compute returns the current standings over evaluated rounds
func (s *LeaderboardService) Compute() (*LeaderboardResponse, error) {
	return s.compute(false)
}

// compute builds standings. With includeFrozen the aggregation also
// takes frozen rounds whose results are not evaluated yet; shortlisting
// uses this so the latest frozen round counts before it is locked in.
func (s *LeaderboardService) compute(includeFrozen bool) (*LeaderboardResponse, error) {
	states := []models.RoundState{models.RoundStateEvaluated}
	if includeFrozen {
		states = append(states, models.RoundStateFrozen)
	}
	rounds, err := s.rounds.GetByState(states...)
	if err != nil {
		return nil, fmt.Errorf("failed to load contributing rounds: %w", err)
	}

	teams, err := s.teams.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load teams: %w", err)
	}

	roundIDs := make([]uuid.UUID, 0, len(rounds))
	for _, round := range rounds {
		roundIDs = append(roundIDs, round.ID)
	}
	scores, err := s.scores.GetByRounds(roundIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load scores: %w", err)
	}
	weights, err := s.weightMap(roundIDs)
	if err != nil {
		return nil, err
	}

	contributing := make([]ContributingRound, 0, len(rounds))
	for _, round := range rounds {
		weight, ok := weights[round.ID]
		if !ok {
			weight = DefaultWeightPercentage
		}
		contributing = append(contributing, ContributingRound{
			RoundID:          round.ID,
			RoundNumber:      round.RoundNumber,
			Name:             round.Name,
			State:            round.State,
			WeightPercentage: weight,
			ShortlistedTeams: round.ShortlistedTeams,
		})
	}

	return &LeaderboardResponse{
		Teams:              ComputeStandings(teams, rounds, weights, scores),
		ContributingRounds: contributing,
		GeneratedAt:        time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// EvaluatedRounds lists the rounds whose results are locked into the
// standings, with their weights and shortlist outcomes
func (s *LeaderboardService) EvaluatedRounds() ([]ContributingRound, error) {
	rounds, err := s.rounds.GetByState(models.RoundStateEvaluated)
	if err != nil {
		return nil, fmt.Errorf("failed to load evaluated rounds: %w", err)
	}
	roundIDs := make([]uuid.UUID, 0, len(rounds))
	for _, round := range rounds {
		roundIDs = append(roundIDs, round.ID)
	}
	weights, err := s.weightMap(roundIDs)
	if err != nil {
		return nil, err
	}

	result := make([]ContributingRound, 0, len(rounds))
	for _, round := range rounds {
		weight, ok := weights[round.ID]
		if !ok {
			weight = DefaultWeightPercentage
		}
		result = append(result, ContributingRound{
			RoundID:          round.ID,
			RoundNumber:      round.RoundNumber,
			Name:             round.Name,
			State:            round.State,
			WeightPercentage: weight,
			ShortlistedTeams: round.ShortlistedTeams,
		})
	}
	return result, nil
}

// UpdateWeight sets a round's leaderboard weight. Admin only.
func (s *LeaderboardService) UpdateWeight(actor Actor, roundID uuid.UUID, req *UpdateWeightRequest) (*RoundWeightResponse, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.ErrAdminOnly
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	round, err := s.rounds.GetByID(roundID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoundNotFound
		}
		return nil, fmt.Errorf("failed to get round: %w", err)
	}

	weight, err := s.weights.Upsert(roundID, req.WeightPercentage)
	if err != nil {
		return nil, fmt.Errorf("failed to save weight: %w", err)
	}

	return &RoundWeightResponse{
		RoundID:          roundID,
		RoundNumber:      round.RoundNumber,
		RoundName:        round.Name,
		WeightPercentage: weight.WeightPercentage,
		UpdatedAt:        weight.UpdatedAt.Format(time.RFC3339),
	}, nil
}

// Shortlist runs a shortlist decision over the active teams and commits
// it atomically: losers are eliminated, survivors advance a round, and
// every frozen round that fed the standings is marked evaluated. Admin
// only.
func (s *LeaderboardService) Shortlist(actor Actor, req *ShortlistRequest) (*ShortlistResponse, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.ErrAdminOnly
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	s.shortlistMu.Lock()
	defer s.shortlistMu.Unlock()

	standings, err := s.compute(true)
	if err != nil {
		return nil, err
	}

	active := make([]LeaderboardEntry, 0, len(standings.Teams))
	for _, e := range standings.Teams {
		if e.Status == models.TeamStatusActive {
			active = append(active, e)
		}
	}
	if len(active) == 0 {
		return nil, apperrors.ErrNoActiveTeams
	}

	shortlisted, eliminated, err := DecideShortlist(active, req.Mode, req.Value)
	if err != nil {
		return nil, err
	}

	shortlistedIDs := make([]string, 0, len(shortlisted))
	for _, e := range shortlisted {
		shortlistedIDs = append(shortlistedIDs, e.TeamID)
	}
	eliminatedIDs := make([]string, 0, len(eliminated))
	for _, e := range eliminated {
		eliminatedIDs = append(eliminatedIDs, e.TeamID)
	}

	var frozenIDs []uuid.UUID
	nextRound := 1
	for _, round := range standings.ContributingRounds {
		if round.State == models.RoundStateFrozen {
			frozenIDs = append(frozenIDs, round.RoundID)
		}
		if round.RoundNumber >= nextRound {
			nextRound = round.RoundNumber + 1
		}
	}

	commit := &repository.ShortlistCommit{
		ShortlistedTeamIDs: shortlistedIDs,
		EliminatedTeamIDs:  eliminatedIDs,
		EvaluateRoundIDs:   frozenIDs,
		NextRoundNumber:    nextRound,
	}
	if err := s.rounds.CommitShortlist(commit); err != nil {
		return nil, fmt.Errorf("failed to commit shortlist: %w", err)
	}
	logger.WithActor(actor.Username).WithFields(map[string]interface{}{
		"mode":        req.Mode,
		"shortlisted": len(shortlistedIDs),
		"eliminated":  len(eliminatedIDs),
		"next_round":  nextRound,
	}).Info("Shortlist committed")

	return &ShortlistResponse{
		Shortlisted:     shortlisted,
		EliminatedCount: len(eliminatedIDs),
		RoundsEvaluated: len(frozenIDs),
		NextRound:       nextRound,
	}, nil
}

func (s *LeaderboardService) weightMap(roundIDs []uuid.UUID) (map[uuid.UUID]float64, error) {
	rows, err := s.weights.GetByRoundIDs(roundIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load weights: %w", err)
	}
	weights := make(map[uuid.UUID]float64, len(rows))
	for _, row := range rows {
		weights[row.RoundID] = row.WeightPercentage
	}
	return weights, nil
}
