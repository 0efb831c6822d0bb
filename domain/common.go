package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var (
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"

	// Base error kinds. Feature errors wrap exactly one of these so the
	// presenter can map any service error to an HTTP status with errors.Is.
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrValidation      = errors.New("validation failed")

	ErrParseUUID     = fmt.Errorf("%w: failed to parse UUID", ErrValidation)
	ErrTokenNotFound = fmt.Errorf("%w: failed to token not found", ErrUnauthenticated)
	ErrTokenExpired  = fmt.Errorf("%w: token expired", ErrUnauthenticated)
	ErrTokenInvalid  = fmt.Errorf("%w: token invalid", ErrUnauthenticated)
)

// Actor is the authenticated user making the current request.
type Actor struct {
	UserID uuid.UUID
	Admin  bool
}

// CanModify is the authorization rule used by every mutating operation:
// the actor owns the resource or holds the admin flag. Services must not
// re-implement this comparison.
func (a Actor) CanModify(ownerID uuid.UUID) bool {
	return a.UserID == ownerID || a.Admin
}
