package amqp

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

const (
	EventReportCompleted = "report.completed"
	EventReportFailed    = "report.failed"
)

// ReportFinishedMessage announces that a report reached a terminal state.
// Consumers fetch the content through the API.
type ReportFinishedMessage struct {
	Event          string              `json:"event"`
	ReportID       string              `json:"reportID"`
	Status         domain.ReportStatus `json:"status"`
	CreationTimeMs *int64              `json:"creationTimeMs,omitempty"`
	Timestamp      time.Time           `json:"timestamp"`
}

// NewReportFinishedMessage builds the event for a finished report.
func NewReportFinishedMessage(report domain.Report) *ReportFinishedMessage {
	event := EventReportCompleted
	if report.Status == domain.ReportError {
		event = EventReportFailed
	}
	return &ReportFinishedMessage{
		Event:          event,
		ReportID:       report.ReportID,
		Status:         report.Status,
		CreationTimeMs: report.CreationTime,
		Timestamp:      time.Now().UTC(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *ReportFinishedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ReportFinishedMessageFromJSON decodes a message published by the notifier.
func ReportFinishedMessageFromJSON(data []byte) (*ReportFinishedMessage, error) {
	var msg ReportFinishedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
