package main

import (
	"github.com/hibiken/asynq"

	stockJob "catalog-backend/internal/domains/stock/job"
	"catalog-backend/internal/shared"
	"catalog-backend/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	lowStockScan *stockJob.LowStockScanHandler
}

// initializeHandlers creates all job handlers with their dependencies
func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		lowStockScan: stockJob.NewLowStockScanHandler(c.StockService),
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypeStockLowScan, h.lowStockScan.ProcessTask)
}
