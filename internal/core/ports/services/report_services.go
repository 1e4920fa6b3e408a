package services

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// ReportSvcFacade creates reports and fills them in the background.
type ReportSvcFacade interface {
	// CreateReport stores a report in the CREATED state and returns its ID.
	CreateReport(ctx context.Context) (string, error)

	// GenerateReportAsync starts filling the report in the background and returns immediately.
	// The returned channel is closed when the job ends; callers need not wait on it.
	GenerateReportAsync(ctx context.Context, reportID string) <-chan struct{}

	// GetReport retrieves a report in whatever state it currently is.
	GetReport(ctx context.Context, reportID string) (*domain.Report, error)

	// Wait blocks until every background job started so far has ended.
	Wait()
}

// ReportRenderer renders a named template with a variable map into HTML.
type ReportRenderer interface {
	Render(templateName string, vars map[string]any) (string, error)
}

// ReportNotifier announces that a report reached a terminal state.
type ReportNotifier interface {
	NotifyReportFinished(ctx context.Context, report domain.Report) error
}
