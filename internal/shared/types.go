package shared

// Asynq task types and queue names shared between the scheduler and the
// worker mux. Kept here to avoid import cycles with the domain packages.
const (
	TypeStockLowScan = "stock:scan_low"

	QueueHigh    = "high"
	QueueDefault = "default"
	QueueLow     = "low"
)

// LowStockScanPayload is the (currently empty) payload of the hourly
// low-stock scan task.
type LowStockScanPayload struct{}
