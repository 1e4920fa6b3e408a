package dto

import "github.com/SscSPs/finance_tracker/internal/core/domain"

// CreateReportResponse is returned when a report generation has been scheduled.
type CreateReportResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// ReportStatusResponse describes a report that has no HTML content to return yet.
type ReportStatusResponse struct {
	Status  domain.ReportStatus `json:"status"`
	Message string              `json:"message"`
	Error   string              `json:"error,omitempty"`
}
