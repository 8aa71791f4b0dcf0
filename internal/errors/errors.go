package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this event"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// FrozenRoundError represents an attempted mutation against a frozen round.
// Surfaced distinctly so callers can show "round is locked" rather than a
// generic failure.
type FrozenRoundError struct {
	RoundName string
	Operation string
}

func (e *FrozenRoundError) Error() string {
	if e.RoundName != "" {
		return fmt.Sprintf("round %q is frozen: %s rejected", e.RoundName, e.Operation)
	}
	return fmt.Sprintf("round is frozen: %s rejected", e.Operation)
}

// ConsistencyError represents an internal invariant violation, e.g. a
// shortlist computed over state that changed mid-transaction. The whole
// operation must abort; nothing may partially commit.
type ConsistencyError struct {
	Message string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("consistency error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrTeamNotFound        = &NotFoundError{Entity: "team"}
	ErrEventNotFound       = &NotFoundError{Entity: "event"}
	ErrRoundNotFound       = &NotFoundError{Entity: "round"}
	ErrTeamScoreNotFound   = &NotFoundError{Entity: "team score"}
	ErrRoundWeightNotFound = &NotFoundError{Entity: "round weight"}
	ErrUserNotFound        = &NotFoundError{Entity: "user"}
)

// Already Exists Errors
var (
	ErrTeamExists  = &AlreadyExistsError{Entity: "team", Context: "with this team ID"}
	ErrEventExists = &AlreadyExistsError{Entity: "event", Context: "with this event ID"}
	ErrRoundExists = &AlreadyExistsError{Entity: "round", Context: "with this number for the event"}
)

// State Machine Errors
var (
	ErrRoundAlreadyFrozen = errors.New("round is already frozen")
	ErrRoundNotFrozen     = errors.New("round is not frozen")
	ErrRoundEvaluated     = errors.New("round has already been evaluated")
	ErrRoundDeleteLocked  = errors.New("frozen or evaluated rounds cannot be deleted")
)

// Business Logic Errors
var (
	ErrNoEvaluations      = errors.New("no evaluations found for this round")
	ErrNoActiveTeams      = errors.New("no active teams found")
	ErrDuplicateRoundNums = errors.New("duplicate round numbers not allowed")
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid username or password"}
	ErrMissingAuthHeader  = &AuthenticationError{Message: "authorization header is required"}
	ErrAdminOnly          = &AuthorizationError{Message: "only administrators can perform this action"}
	ErrNotRoundOwner      = &AuthorizationError{Message: "you can only manage rounds assigned to your club"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsFrozenRound checks if an error is a FrozenRoundError
func IsFrozenRound(err error) bool {
	var frozenErr *FrozenRoundError
	return errors.As(err, &frozenErr)
}

// IsConsistency checks if an error is a ConsistencyError
func IsConsistency(err error) bool {
	var consistencyErr *ConsistencyError
	return errors.As(err, &consistencyErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewFrozenRoundError creates a new FrozenRoundError for an operation
func NewFrozenRoundError(roundName, operation string) error {
	return &FrozenRoundError{RoundName: roundName, Operation: operation}
}

// NewConsistencyError creates a new ConsistencyError
func NewConsistencyError(message string) error {
	return &ConsistencyError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
