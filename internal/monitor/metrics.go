package monitor

import "time"

// OperationType names a tracked dashboard operation
type OperationType string

const (
	OperationNavigate OperationType = "navigate"
	OperationFilter   OperationType = "filter"
	OperationAsk      OperationType = "ask"
	OperationLoad     OperationType = "load"
	OperationReload   OperationType = "reload"
	OperationRender   OperationType = "render"
)

// Ask outcomes. Exactly one is recorded per ask.
const (
	AskAnswered = "answered"
	AskFallback = "fallback"
	AskCanceled = "canceled"
)

// OperationMetrics summarises one operation type
type OperationMetrics struct {
	Operation    OperationType `json:"operation"`
	SuccessCount int64         `json:"success_count"`
	ErrorCount   int64         `json:"error_count"`
	TotalTime    time.Duration `json:"total_time"`
}

// Count returns the number of tracked runs
func (o OperationMetrics) Count() int64 {
	return o.SuccessCount + o.ErrorCount
}

// AvgTime returns the mean duration, or zero when nothing ran
func (o OperationMetrics) AvgTime() time.Duration {
	if o.Count() == 0 {
		return 0
	}
	return o.TotalTime / time.Duration(o.Count())
}

// Snapshot is a point-in-time read of the session counters
type Snapshot struct {
	Timestamp   time.Time                          `json:"timestamp"`
	Operations  map[OperationType]OperationMetrics `json:"operations"`
	Navigations int64                              `json:"navigations"`
	Asks        map[string]int64                   `json:"asks"`
	AskTokens   int64                              `json:"ask_tokens"`
}
