package testutils

import (
	"fmt"
	"strings"
	"time"

	"crestora-backend/internal/database/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// faker is seeded so factory output is stable across runs
var faker = gofakeit.New(42)

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	id := uuid.New()
	teamID := "CRES-" + strings.ToUpper(id.String()[:5])
	leader := faker.Name()
	hash, _ := bcrypt.GenerateFromPassword([]byte("test-password"), bcrypt.MinCost)

	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:               teamID,
		TeamName:             faker.AppName(),
		LeaderName:           leader,
		LeaderRegisterNumber: fmt.Sprintf("RA%09d", faker.Number(100000000, 999999999)),
		LeaderContact:        "9" + fmt.Sprintf("%09d", faker.Number(0, 999999999)),
		LeaderEmail:          faker.Email(),
		PasswordHash:         string(hash),
		CurrentRound:         1,
		Status:               models.TeamStatusActive,
	}
}

// WithTeamID sets a custom team ID
func (f *TeamFactory) WithTeamID(teamID string) *models.Team {
	team := f.Create()
	team.TeamID = teamID
	return team
}

// WithStatus sets a custom status
func (f *TeamFactory) WithStatus(status models.TeamStatus) *models.Team {
	team := f.Create()
	team.Status = status
	return team
}

// WithCurrentRound sets the round the team has advanced to
func (f *TeamFactory) WithCurrentRound(round int) *models.Team {
	team := f.Create()
	team.CurrentRound = round
	return team
}

// EventFactory provides methods to create test Event data
type EventFactory struct{}

// NewEventFactory creates a new EventFactory
func NewEventFactory() *EventFactory {
	return &EventFactory{}
}

// Create creates a test Event with default values
func (f *EventFactory) Create() *models.Event {
	id := uuid.New()
	return &models.Event{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		EventID:     "EVT-" + strings.ToUpper(id.String()[:5]),
		EventCode:   "CRS25",
		Name:        "Crestora '25",
		Type:        models.EventTypeTitle,
		Venue:       faker.City(),
		Description: faker.Sentence(8),
		Status:      models.EventStatusInProgress,
	}
}

// WithEventID sets a custom event ID
func (f *EventFactory) WithEventID(eventID string) *models.Event {
	event := f.Create()
	event.EventID = eventID
	return event
}

// RoundFactory provides methods to create test Round data
type RoundFactory struct{}

// NewRoundFactory creates a new RoundFactory
func NewRoundFactory() *RoundFactory {
	return &RoundFactory{}
}

// Create creates an open test Round with two criteria
func (f *RoundFactory) Create(eventID string, number int) *models.Round {
	return &models.Round{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		EventID:     eventID,
		RoundNumber: number,
		Name:        fmt.Sprintf("Round %d", number),
		Club:        faker.Company(),
		Mode:        models.EventModeOffline,
		Description: faker.Sentence(6),
		Criteria: models.CriteriaList{
			{Name: "Innovation", MaxPoints: 50},
			{Name: "Execution", MaxPoints: 50},
		},
		State: models.RoundStateOpen,
	}
}

// WithState sets the lifecycle state
func (f *RoundFactory) WithState(eventID string, number int, state models.RoundState) *models.Round {
	round := f.Create(eventID, number)
	round.State = state
	return round
}

// Wildcard creates a wildcard round
func (f *RoundFactory) Wildcard(eventID string, number int) *models.Round {
	round := f.Create(eventID, number)
	round.IsWildcard = true
	return round
}

// TeamScoreFactory provides methods to create test TeamScore data
type TeamScoreFactory struct{}

// NewTeamScoreFactory creates a new TeamScoreFactory
func NewTeamScoreFactory() *TeamScoreFactory {
	return &TeamScoreFactory{}
}

// Create creates an unevaluated score row for a team in a round
func (f *TeamScoreFactory) Create(round *models.Round, teamID string) *models.TeamScore {
	return &models.TeamScore{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		RoundID:        round.ID,
		TeamID:         teamID,
		EventID:        round.EventID,
		CriteriaScores: models.ScoreMap{},
		IsPresent:      true,
	}
}

// Evaluated creates a score row with the given per-criterion scores
func (f *TeamScoreFactory) Evaluated(round *models.Round, teamID string, scores models.ScoreMap) *models.TeamScore {
	ts := f.Create(round, teamID)
	ts.CriteriaScores = scores
	ts.RawTotalScore = scores.Total()
	return ts
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a club user with the password "test-password"
func (f *UserFactory) Create() *models.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte("test-password"), bcrypt.MinCost)
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Username:     faker.Username(),
		PasswordHash: string(hash),
		Role:         models.UserRoleClubs,
		Club:         faker.Company(),
		IsActive:     true,
	}
}

// Admin creates an admin user
func (f *UserFactory) Admin() *models.User {
	user := f.Create()
	user.Username = "admin-" + user.Username
	user.Role = models.UserRoleAdmin
	user.Club = ""
	return user
}
