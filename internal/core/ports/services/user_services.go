package services

import "context"

// UserVerifierSvc checks account ownership preconditions against the external
// identity service.
type UserVerifierSvc interface {
	// UserExists reports whether the user is known to the identity service.
	// When the service is unreachable after retries it returns
	// (false, apperrors.ErrDependency); a clean "no such user" is (false, nil).
	UserExists(ctx context.Context, userID string) (bool, error)
}
