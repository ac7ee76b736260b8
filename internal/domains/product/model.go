package product

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a sellable catalog item. Every product belongs to exactly
// one category; the (name, category) pair is unique case-insensitively,
// so the same name may exist in different categories.
type Product struct {
	ID                uuid.UUID
	Name              string
	Description       string
	Price             decimal.Decimal
	CategoryID        uuid.UUID
	Images            []string
	Stock             int
	LowStockThreshold int
	Brand             *string
	Ratings           Ratings
	IsActive          bool
	Order             int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Ratings is the review aggregate. The catalog only stores it; a
// separate review subsystem owns the values.
type Ratings struct {
	Rating       float64 `json:"rating"`
	NumOfReviews int     `json:"numOfReviews"`
}

// IsLowStock reports whether the product breaches its threshold.
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.LowStockThreshold
}
