package entity

import "fmt"

// ValidationError reports a malformed or missing input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ReferentialIntegrityError reports a dangling foreign key in a write.
type ReferentialIntegrityError struct {
	Reference string
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("referenced %s does not exist", e.Reference)
}

// NotFoundError reports an absent lookup or delete target.
type NotFoundError struct {
	Entity string
	ID     int
}

func (e *NotFoundError) Error() string {
	if e.ID == 0 {
		return fmt.Sprintf("%s not found", e.Entity)
	}
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// AuthenticationError reports a failed credential check.
type AuthenticationError struct {
	Reason string
}

func (e *AuthenticationError) Error() string {
	return e.Reason
}
