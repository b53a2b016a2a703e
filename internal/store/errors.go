package store

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionExists is returned by Create when the generated id is already taken.
	ErrSessionExists = errors.New("the session already existed")
	// ErrForbidden matches every *AuthorizationError.
	ErrForbidden = errors.New("forbidden")
)

// AuthorizationError reports a user acting on a resource they do not own.
type AuthorizationError struct {
	UserID   string
	Resource string
	ID       string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("user %s is not allowed to modify %s %s", e.UserID, e.Resource, e.ID)
}

func (e *AuthorizationError) Is(target error) bool {
	return target == ErrForbidden
}
