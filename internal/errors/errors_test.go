package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "team"}
		assert.Equal(t, "team not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "team"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "round"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrTeamNotFound, ErrTeamNotFound))
		assert.False(t, errors.Is(ErrTeamNotFound, ErrRoundNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrTeamNotFound))
		assert.False(t, IsNotFound(ErrRoundAlreadyFrozen))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "round", Context: "with this number for the event"}
		assert.Equal(t, "round already exists with this number for the event", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "team"}
		assert.Equal(t, "team already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "team", Context: "with this team ID"}
		err2 := &AlreadyExistsError{Entity: "team", Context: "with this team ID"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrRoundExists))
		assert.False(t, IsAlreadyExists(ErrTeamNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "scores", Message: "negative scores not allowed"}
		assert.Equal(t, "validation error: scores - negative scores not allowed", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid payload"}
		assert.Equal(t, "validation error: invalid payload", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("mode", "unknown shortlist mode")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrTeamNotFound))
	})
}

func TestFrozenRoundError(t *testing.T) {
	t.Run("Error message with round name", func(t *testing.T) {
		err := &FrozenRoundError{RoundName: "Ideathon", Operation: "evaluation"}
		assert.Equal(t, `round "Ideathon" is frozen: evaluation rejected`, err.Error())
	})

	t.Run("Error message without round name", func(t *testing.T) {
		err := &FrozenRoundError{Operation: "update"}
		assert.Equal(t, "round is frozen: update rejected", err.Error())
	})

	t.Run("IsFrozenRound helper", func(t *testing.T) {
		err := NewFrozenRoundError("Ideathon", "deletion")
		assert.True(t, IsFrozenRound(err))
		assert.False(t, IsFrozenRound(ErrRoundAlreadyFrozen))
	})
}

func TestConsistencyError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := NewConsistencyError("a contributing round changed state during shortlisting")
		assert.Equal(t, "consistency error: a contributing round changed state during shortlisting", err.Error())
	})

	t.Run("IsConsistency helper", func(t *testing.T) {
		assert.True(t, IsConsistency(NewConsistencyError("drift")))
		assert.False(t, IsConsistency(ErrRoundNotFrozen))
	})
}

func TestAuthErrors(t *testing.T) {
	t.Run("IsAuthentication helper", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrInvalidCredentials))
		assert.True(t, IsAuthentication(ErrMissingAuthHeader))
		assert.False(t, IsAuthentication(ErrAdminOnly))
	})

	t.Run("IsAuthorization helper", func(t *testing.T) {
		assert.True(t, IsAuthorization(ErrAdminOnly))
		assert.True(t, IsAuthorization(ErrNotRoundOwner))
		assert.False(t, IsAuthorization(ErrInvalidCredentials))
	})

	t.Run("NewAuthorizationError", func(t *testing.T) {
		err := NewAuthorizationError("wildcard rounds are admin managed")
		assert.Equal(t, "wildcard rounds are admin managed", err.Error())
		assert.True(t, IsAuthorization(err))
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("criterion")
		assert.Equal(t, "criterion not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewValidationError", func(t *testing.T) {
		err := NewValidationError("value", "top_k value must be a whole number")
		assert.Equal(t, "validation error: value - top_k value must be a whole number", err.Error())
		assert.True(t, IsValidation(err))
	})
}

func TestStateMachineErrors(t *testing.T) {
	t.Run("Lifecycle errors", func(t *testing.T) {
		assert.Error(t, ErrRoundAlreadyFrozen)
		assert.Error(t, ErrRoundNotFrozen)
		assert.Error(t, ErrRoundEvaluated)
		assert.Error(t, ErrRoundDeleteLocked)
	})

	t.Run("Business logic errors", func(t *testing.T) {
		assert.Error(t, ErrNoEvaluations)
		assert.Error(t, ErrNoActiveTeams)
		assert.Error(t, ErrDuplicateRoundNums)
	})
}
