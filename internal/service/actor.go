package service

import "crestora-backend/internal/database/models"

// Actor identifies who is performing an operation. It is built by the
// auth middleware from the verified JWT claims and threaded through the
// services so state machine rules hold regardless of transport.
type Actor struct {
	Username string
	Role     models.UserRole
	Club     string
}

// IsAdmin reports whether the actor has the admin role
func (a Actor) IsAdmin() bool {
	return a.Role == models.UserRoleAdmin
}

// CanManageRound reports whether the actor may mutate the given round.
// Admins manage everything; a club account only its own rounds.
func (a Actor) CanManageRound(round *models.Round) bool {
	if a.IsAdmin() {
		return true
	}
	return a.Role == models.UserRoleClubs && a.Club != "" && a.Club == round.Club
}
