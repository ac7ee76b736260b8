package service

import (
	"context"
	"fmt"

	"catalog-backend/internal/domains/product"
	"catalog-backend/internal/domains/stock"
	"catalog-backend/pkg/logger"
)

// StockService scans the active catalog for products whose stock has
// fallen to or below their low-stock threshold. The scan is read-only;
// it never mutates product state.
type StockService struct {
	products product.ProductRepository
	notifier stock.Notifier
}

func NewStockService(products product.ProductRepository, notifier stock.Notifier) *StockService {
	return &StockService{
		products: products,
		notifier: notifier,
	}
}

// Scan walks every active product once and notifies for each breach.
// Notifier errors are logged and skipped so one bad product cannot
// abort the rest of the pass. Returns the number of breaches found.
func (s *StockService) Scan(ctx context.Context) (int, error) {
	entities, err := s.products.GetActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load active products: %w", err)
	}

	breaches := 0
	for _, entity := range entities {
		if !entity.IsLowStock() {
			continue
		}
		breaches++
		if err := s.notifier.NotifyLowStock(ctx, entity); err != nil {
			logger.Error("Failed to send low stock notification", err)
		}
	}

	logger.Info("Low stock scan completed", map[string]interface{}{
		"scanned":  len(entities),
		"breaches": breaches,
	})
	return breaches, nil
}
