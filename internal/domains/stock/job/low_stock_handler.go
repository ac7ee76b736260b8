package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"catalog-backend/internal/domains/stock/service"
	"catalog-backend/internal/shared"
	"catalog-backend/pkg/logger"
)

// LowStockScanHandler runs the hourly low-stock scan task.
type LowStockScanHandler struct {
	stockService *service.StockService
}

func NewLowStockScanHandler(stockService *service.StockService) *LowStockScanHandler {
	return &LowStockScanHandler{stockService: stockService}
}

// ProcessTask executes one full scan pass. The scan is read-only, so a
// run that overlaps a delayed previous run is harmless.
func (h *LowStockScanHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload shared.LowStockScanPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Error("LowStockScan: Failed to unmarshal payload", err)
		return fmt.Errorf("unmarshal LowStockScan payload: %w", err)
	}

	breaches, err := h.stockService.Scan(ctx)
	if err != nil {
		logger.Error("LowStockScan: scan failed", err)
		return err
	}

	logger.Info("LowStockScan: completed", map[string]interface{}{
		"breaches": breaches,
	})
	return nil
}
