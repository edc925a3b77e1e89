package booking

import (
	"fmt"

	"carelink/models"
)

// Conflict codes surfaced to callers alongside refresh guidance.
const (
	CodeSubscriptionRequired = "SubscriptionRequired"
	CodeCaregiverUnavailable = "CaregiverUnavailable"
	CodeSlotConflict         = "SlotConflict"
	CodeOutsideStartWindow   = "OutsideStartWindow"
)

// ValidationError reports malformed or missing input fields. It is
// recoverable by the caller and surfaced verbatim.
type ValidationError struct {
	Fields []models.FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// AuthorizationError means the actor may not perform the operation. The
// message is logged; callers surface a generic "not authorized" without
// leaking why.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("not authorized: %s", e.Message)
}

// ConflictError means the requested slot or transition is no longer
// available. Callers should refresh and retry.
type ConflictError struct {
	Code    string
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NotFoundError means the entity is absent or not visible to this actor.
// The two cases are deliberately indistinguishable.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// DependencyError wraps a persistence or downstream collaborator failure.
type DependencyError struct {
	Op  string
	Err error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s: dependency failure: %v", e.Op, e.Err)
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}
