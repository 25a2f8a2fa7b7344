package service

import "errors"

// Error taxonomy surfaced to callers. All of these are validation-style
// failures recovered at the call boundary; none are fatal and none retry.
var (
	// ErrValidation reports missing or malformed required fields.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateEmail reports a registration against an email that
	// already has a credential record.
	ErrDuplicateEmail = errors.New("email already in use")

	// ErrInvalidCredentials reports a login with an unknown email or
	// wrong password. Deliberately indistinguishable between the two.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidSession reports a session token that is unknown, revoked
	// or expired.
	ErrInvalidSession = errors.New("invalid session")

	// ErrRateLimited reports too many login attempts for one email.
	ErrRateLimited = errors.New("too many attempts")

	// ErrNotFound reports an absent profile or event id where presence
	// is required.
	ErrNotFound = errors.New("not found")

	// ErrForbidden reports an operation attempted by an identity that
	// does not own the record.
	ErrForbidden = errors.New("forbidden")

	// ErrIndexOutOfRange reports an achievement index outside the list.
	ErrIndexOutOfRange = errors.New("index out of range")
)
