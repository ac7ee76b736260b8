package product

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")

	// ErrDuplicateProduct: another product with this name already exists
	// in the same category (case-insensitive). The same name in a
	// different category is fine.
	ErrDuplicateProduct = errors.New("duplicate product")

	// ErrInvalidProductData covers writes the store refuses, most
	// notably a categoryId that resolves to no category.
	ErrInvalidProductData = errors.New("invalid product data received")
)

// GetHTTPStatusCode maps a domain error to its HTTP status. Unlike
// categories and users, product not-found is a 404.
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrProductNotFound):
		return 404
	case errors.Is(err, ErrDuplicateProduct):
		return 409
	case errors.Is(err, ErrInvalidProductData):
		return 400
	default:
		return 500
	}
}

// GetErrorMessage returns the exact wire message for a domain error.
func GetErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrProductNotFound):
		return "Product not found"
	case errors.Is(err, ErrDuplicateProduct):
		return "Duplicate product"
	case errors.Is(err, ErrInvalidProductData):
		return "Invalid product data received"
	default:
		return "Internal server error"
	}
}
