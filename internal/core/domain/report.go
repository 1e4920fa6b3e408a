package domain

import "time"

// ReportStatus tracks the lifecycle of a generated report.
type ReportStatus string

const (
	ReportCreated   ReportStatus = "CREATED"
	ReportCompleted ReportStatus = "COMPLETED"
	ReportError     ReportStatus = "ERROR"
)

// IsTerminal reports whether no further transition may happen.
func (s ReportStatus) IsTerminal() bool {
	return s == ReportCompleted || s == ReportError
}

// Report is a statistics summary filled in by a background job.
// Content holds the rendered HTML on success or the error text on failure.
type Report struct {
	ReportID     string       `json:"reportID"`
	Status       ReportStatus `json:"status"`
	Content      *string      `json:"content,omitempty"`
	CreationTime *int64       `json:"creationTime,omitempty"` // milliseconds
	CreatedAt    time.Time    `json:"createdAt"`
}

// ReportStats is the data a report is rendered from. Durations are in milliseconds.
type ReportStats struct {
	UserCount           int64
	UserCountElapsed    int64
	TransactionCount    int
	TransactionsElapsed int64
	TotalElapsed        int64
}
