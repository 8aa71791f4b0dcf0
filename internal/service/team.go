package service

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"crestora-backend/internal/database/models"
	apperrors "crestora-backend/internal/errors"
	"crestora-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TeamService handles business logic for teams
type TeamService struct {
	repo      repository.TeamRepositoryInterface
	rounds    repository.RoundRepositoryInterface
	scores    repository.TeamScoreRepositoryInterface
	weights   repository.RoundWeightRepositoryInterface
	validator *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(
	repo repository.TeamRepositoryInterface,
	rounds repository.RoundRepositoryInterface,
	scores repository.TeamScoreRepositoryInterface,
	weights repository.RoundWeightRepositoryInterface,
	validator *validator.Validate,
) *TeamService {
	return &TeamService{
		repo:      repo,
		rounds:    rounds,
		scores:    scores,
		weights:   weights,
		validator: validator,
	}
}

// TeamMemberRequest represents one member in a team registration
type TeamMemberRequest struct {
	MemberName     string `json:"member_name" validate:"required,max=100"`
	RegisterNumber string `json:"register_number" validate:"required,max=20"`
	MemberPosition string `json:"member_position" validate:"required,oneof=leader member2 member3 member4"`
}

// CreateTeamRequest represents the request to register a team
type CreateTeamRequest struct {
	TeamID               string              `json:"team_id" validate:"required,max=20"`
	TeamName             string              `json:"team_name" validate:"required,max=100"`
	LeaderName           string              `json:"leader_name" validate:"required,max=100"`
	LeaderRegisterNumber string              `json:"leader_register_number" validate:"required,max=20"`
	LeaderContact        string              `json:"leader_contact" validate:"required,max=15"`
	LeaderEmail          string              `json:"leader_email" validate:"required,email,max=100"`
	Password             string              `json:"password" validate:"required,min=8,max=72"`
	Members              []TeamMemberRequest `json:"members,omitempty" validate:"omitempty,max=4,dive"`
}

// UpdateTeamRequest represents the request to update team details
type UpdateTeamRequest struct {
	TeamName             *string `json:"team_name,omitempty" validate:"omitempty,max=100"`
	LeaderName           *string `json:"leader_name,omitempty" validate:"omitempty,max=100"`
	LeaderRegisterNumber *string `json:"leader_register_number,omitempty" validate:"omitempty,max=20"`
	LeaderContact        *string `json:"leader_contact,omitempty" validate:"omitempty,max=15"`
	LeaderEmail          *string `json:"leader_email,omitempty" validate:"omitempty,email,max=100"`
}

// UpdateTeamStatusRequest represents the request to set a team's status
type UpdateTeamStatusRequest struct {
	Status models.TeamStatus `json:"status" validate:"required,oneof=ACTIVE ELIMINATED COMPLETED"`
}

// TeamMemberResponse represents one member in team responses
type TeamMemberResponse struct {
	MemberName     string `json:"member_name"`
	RegisterNumber string `json:"register_number"`
	MemberPosition string `json:"member_position"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	TeamID               string               `json:"team_id"`
	TeamName             string               `json:"team_name"`
	LeaderName           string               `json:"leader_name"`
	LeaderRegisterNumber string               `json:"leader_register_number"`
	LeaderContact        string               `json:"leader_contact"`
	LeaderEmail          string               `json:"leader_email"`
	CurrentRound         int                  `json:"current_round"`
	Status               models.TeamStatus    `json:"status"`
	Members              []TeamMemberResponse `json:"members,omitempty"`
	CreatedAt            string               `json:"created_at"`
	UpdatedAt            string               `json:"updated_at"`
}

// TeamListResponse represents a paginated list of teams
type TeamListResponse struct {
	Teams    []TeamResponse `json:"teams"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// TeamSummary is a compact team reference used in eligibility lists
type TeamSummary struct {
	TeamID   string            `json:"team_id"`
	TeamName string            `json:"team_name"`
	Status   models.TeamStatus `json:"status"`
}

func sortTeamSummaries(summaries []TeamSummary) {
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].TeamID < summaries[j].TeamID
	})
}

// TeamStatsResponse summarizes team counts across the event
type TeamStatsResponse struct {
	TotalTeams      int64           `json:"total_teams"`
	ActiveTeams     int64           `json:"active_teams"`
	EliminatedTeams int64           `json:"eliminated_teams"`
	CompletedTeams  int64           `json:"completed_teams"`
	TeamsPerRound   map[string]int64 `json:"teams_per_round"`
}

// TeamScoreEntry represents one round's score in a team's score history
type TeamScoreEntry struct {
	RoundNumber      int                `json:"round_number"`
	RoundName        string             `json:"round_name"`
	State            models.RoundState  `json:"state"`
	CriteriaScores   map[string]float64 `json:"criteria_scores"`
	RawTotalScore    float64            `json:"raw_total_score"`
	NormalizedScore  float64            `json:"normalized_score"`
	WeightPercentage float64            `json:"weight_percentage"`
	IsPresent        bool               `json:"is_present"`
}

// TeamScoresResponse represents a team's full score history with the
// weighted running score over frozen rounds
type TeamScoresResponse struct {
	TeamID       string           `json:"team_id"`
	TeamName     string           `json:"team_name"`
	Status       models.TeamStatus `json:"status"`
	Scores       []TeamScoreEntry `json:"scores"`
	OverallScore float64          `json:"overall_score"`
}

// Create registers a new team with its members. The password is stored
// as a bcrypt hash and a leader member row is derived from the leader
// details when none is supplied.
func (s *TeamService) Create(req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByTeamID(req.TeamID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing team: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrTeamExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	members := make([]models.TeamMember, 0, len(req.Members)+1)
	hasLeader := false
	for _, m := range req.Members {
		if m.MemberPosition == "leader" {
			hasLeader = true
		}
		members = append(members, models.TeamMember{
			TeamID:         req.TeamID,
			MemberName:     m.MemberName,
			RegisterNumber: m.RegisterNumber,
			MemberPosition: m.MemberPosition,
		})
	}
	if !hasLeader {
		members = append(members, models.TeamMember{
			TeamID:         req.TeamID,
			MemberName:     req.LeaderName,
			RegisterNumber: req.LeaderRegisterNumber,
			MemberPosition: "leader",
		})
	}

	team := &models.Team{
		TeamID:               req.TeamID,
		TeamName:             req.TeamName,
		LeaderName:           req.LeaderName,
		LeaderRegisterNumber: req.LeaderRegisterNumber,
		LeaderContact:        req.LeaderContact,
		LeaderEmail:          req.LeaderEmail,
		PasswordHash:         string(hash),
		CurrentRound:         1,
		Status:               models.TeamStatusActive,
		Members:              members,
	}
	if err := s.repo.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return s.toResponse(team), nil
}

// GetByID retrieves a team with its members
func (s *TeamService) GetByID(teamID string) (*TeamResponse, error) {
	team, err := s.repo.GetWithMembers(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return s.toResponse(team), nil
}

// GetAll retrieves teams with optional status filter and pagination
func (s *TeamService) GetAll(status *models.TeamStatus, page, pageSize int) (*TeamListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 50
	}
	if status != nil && !status.IsValid() {
		return nil, apperrors.NewValidationError("status", "invalid team status")
	}

	teams, total, err := s.repo.GetAll(status, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	responses := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		responses = append(responses, *s.toResponse(&teams[i]))
	}
	return &TeamListResponse{
		Teams:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a team's details
func (s *TeamService) Update(teamID string, req *UpdateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team, err := s.repo.GetWithMembers(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if req.TeamName != nil {
		team.TeamName = *req.TeamName
	}
	if req.LeaderName != nil {
		team.LeaderName = *req.LeaderName
	}
	if req.LeaderRegisterNumber != nil {
		team.LeaderRegisterNumber = *req.LeaderRegisterNumber
	}
	if req.LeaderContact != nil {
		team.LeaderContact = *req.LeaderContact
	}
	if req.LeaderEmail != nil {
		team.LeaderEmail = *req.LeaderEmail
	}

	if err := s.repo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	return s.toResponse(team), nil
}

// Delete removes a team together with its members and scores
func (s *TeamService) Delete(teamID string) error {
	if _, err := s.repo.GetByTeamID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team: %w", err)
	}
	if err := s.repo.Delete(teamID); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

// SetStatus sets a team's lifecycle status
func (s *TeamService) SetStatus(teamID string, req *UpdateTeamStatusRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team, err := s.repo.GetByTeamID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if err := s.repo.SetStatus(teamID, req.Status); err != nil {
		return nil, fmt.Errorf("failed to set team status: %w", err)
	}
	team.Status = req.Status
	return s.toResponse(team), nil
}

// Stats summarizes team counts by status and by current round
func (s *TeamService) Stats() (*TeamStatsResponse, error) {
	total, err := s.repo.CountAll()
	if err != nil {
		return nil, fmt.Errorf("failed to count teams: %w", err)
	}
	active, err := s.repo.CountByStatus(models.TeamStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to count active teams: %w", err)
	}
	eliminated, err := s.repo.CountByStatus(models.TeamStatusEliminated)
	if err != nil {
		return nil, fmt.Errorf("failed to count eliminated teams: %w", err)
	}
	completed, err := s.repo.CountByStatus(models.TeamStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to count completed teams: %w", err)
	}

	perRound := make(map[string]int64)
	maxRound, err := s.rounds.CountAll()
	if err != nil {
		return nil, fmt.Errorf("failed to count rounds: %w", err)
	}
	for n := 1; n <= int(maxRound)+1; n++ {
		count, err := s.repo.CountByCurrentRound(n)
		if err != nil {
			return nil, fmt.Errorf("failed to count teams at round %d: %w", n, err)
		}
		if count > 0 {
			perRound[fmt.Sprintf("round_%d", n)] = count
		}
	}

	return &TeamStatsResponse{
		TotalTeams:      total,
		ActiveTeams:     active,
		EliminatedTeams: eliminated,
		CompletedTeams:  completed,
		TeamsPerRound:   perRound,
	}, nil
}

// Scores returns a team's per-round score history and its weighted
// running score over frozen rounds
func (s *TeamService) Scores(teamID string) (*TeamScoresResponse, error) {
	team, err := s.repo.GetByTeamID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	rows, err := s.scores.GetByTeam(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to load scores: %w", err)
	}

	resp := &TeamScoresResponse{
		TeamID:   team.TeamID,
		TeamName: team.TeamName,
		Status:   team.Status,
	}

	var weightedSum, weightSum float64
	for _, row := range rows {
		round, err := s.rounds.GetByID(row.RoundID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to get round: %w", err)
		}

		weight := float64(DefaultWeightPercentage)
		if w, err := s.weights.GetByRoundID(round.ID); err == nil {
			weight = w.WeightPercentage
		}

		resp.Scores = append(resp.Scores, TeamScoreEntry{
			RoundNumber:      round.RoundNumber,
			RoundName:        round.Name,
			State:            round.State,
			CriteriaScores:   row.CriteriaScores,
			RawTotalScore:    row.RawTotalScore,
			NormalizedScore:  row.NormalizedScore,
			WeightPercentage: weight,
			IsPresent:        row.IsPresent,
		})

		if round.State.IsFrozen() {
			weightedSum += row.NormalizedScore * weight
			weightSum += weight
		}
	}

	sort.Slice(resp.Scores, func(i, j int) bool {
		return resp.Scores[i].RoundNumber < resp.Scores[j].RoundNumber
	})
	if weightSum > 0 {
		resp.OverallScore = roundTo2(weightedSum / weightSum)
	}
	return resp, nil
}

func (s *TeamService) toResponse(team *models.Team) *TeamResponse {
	members := make([]TeamMemberResponse, 0, len(team.Members))
	for _, m := range team.Members {
		members = append(members, TeamMemberResponse{
			MemberName:     m.MemberName,
			RegisterNumber: m.RegisterNumber,
			MemberPosition: m.MemberPosition,
		})
	}
	return &TeamResponse{
		TeamID:               team.TeamID,
		TeamName:             team.TeamName,
		LeaderName:           team.LeaderName,
		LeaderRegisterNumber: team.LeaderRegisterNumber,
		LeaderContact:        team.LeaderContact,
		LeaderEmail:          team.LeaderEmail,
		CurrentRound:         team.CurrentRound,
		Status:               team.Status,
		Members:              members,
		CreatedAt:            team.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            team.UpdatedAt.Format(time.RFC3339),
	}
}
