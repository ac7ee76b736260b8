package category

import "errors"

// Sentinel errors for the category domain. Handlers map them to HTTP
// status codes and wire messages with the helpers below; services
// compare with errors.Is.
var (
	ErrCategoryNotFound = errors.New("category not found")

	// ErrDuplicateName: another category already carries this name
	// (case-insensitive).
	ErrDuplicateName = errors.New("duplicate category name")

	// ErrDuplicateCategory: the composite check tripped. One category
	// shares the parent and one shares the slug. A slug collision alone,
	// with no record under the same parent, is not a conflict.
	ErrDuplicateCategory = errors.New("duplicate category")

	// ErrHasProducts blocks deletion while products still reference the
	// category.
	ErrHasProducts = errors.New("category has assigned products")
)

// GetHTTPStatusCode maps a domain error to its HTTP status.
// Not-found is 400 here, not 404. Categories and users share that
// behavior while products use 404.
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrCategoryNotFound):
		return 400
	case errors.Is(err, ErrDuplicateName):
		return 409
	case errors.Is(err, ErrDuplicateCategory):
		return 409
	case errors.Is(err, ErrHasProducts):
		return 400
	default:
		return 500
	}
}

// GetErrorMessage returns the exact wire message for a domain error.
func GetErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrCategoryNotFound):
		return "Category not found"
	case errors.Is(err, ErrDuplicateName):
		return "Duplicate category name"
	case errors.Is(err, ErrDuplicateCategory):
		return "Duplicate category"
	case errors.Is(err, ErrHasProducts):
		return "Category has assigned products"
	default:
		return "Internal server error"
	}
}
