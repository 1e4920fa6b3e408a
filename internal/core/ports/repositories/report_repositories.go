package repositories

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// ReportRepositoryFacade defines persistence for generated reports.
type ReportRepositoryFacade interface {
	// SaveReport inserts a new report.
	SaveReport(ctx context.Context, report domain.Report) error

	// FindReportByID retrieves a report by ID.
	FindReportByID(ctx context.Context, reportID string) (*domain.Report, error)

	// FinishReport stores the terminal status, content and creation time of a report.
	// It fails with apperrors.ErrConflict if the report already left the CREATED state.
	FinishReport(ctx context.Context, report domain.Report) error
}
