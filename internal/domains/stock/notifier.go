package stock

import (
	"context"
	"fmt"

	"catalog-backend/internal/domains/product"
	"catalog-backend/pkg/logger"
)

// Notifier receives low-stock breaches found by the scanner. The
// scanner treats delivery failures as advisory: an error is logged and
// the scan moves on to the next product.
type Notifier interface {
	NotifyLowStock(ctx context.Context, p *product.Product) error
}

// LogNotifier writes low-stock alerts to the application log.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) NotifyLowStock(_ context.Context, p *product.Product) error {
	logger.Warn(fmt.Sprintf("The stock for %s is low (%d items left).", p.Name, p.Stock), map[string]interface{}{
		"product_id": p.ID.String(),
		"stock":      p.Stock,
		"threshold":  p.LowStockThreshold,
	})
	return nil
}
