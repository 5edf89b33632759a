package store

import "time"

// Visit is one handled hello request. The trace ID is what links the stored
// row back to the trace in the telemetry backend.
type Visit struct {
	ID        uint   `gorm:"primarykey"`
	TraceID   string `gorm:"size:32;index"`
	Message   string
	Status    int
	CreatedAt time.Time
}
