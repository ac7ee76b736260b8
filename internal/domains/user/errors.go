package user

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateEmail: another account already uses this email,
	// compared case-insensitively.
	ErrDuplicateEmail = errors.New("duplicate email")

	// ErrNoUsersFound: GET /users answers 400 on an empty collection.
	ErrNoUsersFound = errors.New("no users found")
)

// GetHTTPStatusCode maps a domain error to its HTTP status. User
// not-found is 400, matching categories rather than products.
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return 400
	case errors.Is(err, ErrDuplicateEmail):
		return 409
	case errors.Is(err, ErrNoUsersFound):
		return 400
	default:
		return 500
	}
}

// GetErrorMessage returns the exact wire message for a domain error.
func GetErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return "User not found"
	case errors.Is(err, ErrDuplicateEmail):
		return "Duplicate email"
	case errors.Is(err, ErrNoUsersFound):
		return "No users found"
	default:
		return "Internal server error"
	}
}
