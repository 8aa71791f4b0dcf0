package models

// TeamStatus defines the lifecycle status of a team
type TeamStatus string

const (
	TeamStatusActive     TeamStatus = "ACTIVE"
	TeamStatusEliminated TeamStatus = "ELIMINATED"
	TeamStatusCompleted  TeamStatus = "COMPLETED"
)

// IsValid checks if the TeamStatus is valid
func (s TeamStatus) IsValid() bool {
	switch s {
	case TeamStatusActive, TeamStatusEliminated, TeamStatusCompleted:
		return true
	}
	return false
}

// RoundState is the single source of truth for a round's lifecycle.
// Open rounds accept score and criteria mutations; frozen rounds reject
// them; evaluated rounds have had their contribution locked in by a
// shortlist decision.
type RoundState string

const (
	RoundStateOpen      RoundState = "open"
	RoundStateFrozen    RoundState = "frozen"
	RoundStateEvaluated RoundState = "evaluated"
)

// IsValid checks if the RoundState is valid
func (s RoundState) IsValid() bool {
	switch s {
	case RoundStateOpen, RoundStateFrozen, RoundStateEvaluated:
		return true
	}
	return false
}

// IsFrozen reports whether the round no longer accepts mutations.
// Evaluated rounds remain frozen.
func (s RoundState) IsFrozen() bool {
	return s == RoundStateFrozen || s == RoundStateEvaluated
}

// IsEvaluated reports whether the round's contribution has been locked in.
func (s RoundState) IsEvaluated() bool {
	return s == RoundStateEvaluated
}

// DisplayStatus maps the state to the status string exposed over the API.
func (s RoundState) DisplayStatus() EventStatus {
	switch s {
	case RoundStateFrozen:
		return EventStatusInProgress
	case RoundStateEvaluated:
		return EventStatusCompleted
	default:
		return EventStatusUpcoming
	}
}

// EventType defines the types of events
type EventType string

const (
	EventTypeTitle   EventType = "title"
	EventTypeRolling EventType = "rolling"
)

// IsValid checks if the EventType is valid
func (t EventType) IsValid() bool {
	switch t {
	case EventTypeTitle, EventTypeRolling:
		return true
	}
	return false
}

// EventStatus defines the scheduling status of an event or round
type EventStatus string

const (
	EventStatusUpcoming   EventStatus = "upcoming"
	EventStatusInProgress EventStatus = "in_progress"
	EventStatusCompleted  EventStatus = "completed"
)

// IsValid checks if the EventStatus is valid
func (s EventStatus) IsValid() bool {
	switch s {
	case EventStatusUpcoming, EventStatusInProgress, EventStatusCompleted:
		return true
	}
	return false
}

// EventMode defines how a round is conducted
type EventMode string

const (
	EventModeOnline  EventMode = "online"
	EventModeOffline EventMode = "offline"
)

// IsValid checks if the EventMode is valid
func (m EventMode) IsValid() bool {
	switch m {
	case EventModeOnline, EventModeOffline:
		return true
	}
	return false
}

// UserRole defines the roles for authenticated users
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleClubs UserRole = "clubs"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleClubs:
		return true
	}
	return false
}
