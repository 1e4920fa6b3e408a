package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/finance_tracker/internal/models"
	"github.com/SscSPs/finance_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReportRepository struct {
	pool *pgxpool.Pool
}

func newPgxReportRepository(pool *pgxpool.Pool) portsrepo.ReportRepositoryFacade {
	return &PgxReportRepository{pool: pool}
}

var _ portsrepo.ReportRepositoryFacade = (*PgxReportRepository)(nil)

func (r *PgxReportRepository) SaveReport(ctx context.Context, report domain.Report) error {
	m := mapping.ToModelReport(report)
	_, err := r.pool.Exec(ctx, `
		INSERT INTO reports (report_id, status, content, creation_time, created_at)
		VALUES ($1, $2, $3, $4, $5);`,
		m.ReportID, m.Status, m.Content, m.CreationTime, m.CreatedAt,
	)
	if err != nil {
		return translateWriteError(err, "save report "+m.ReportID)
	}
	return nil
}

func (r *PgxReportRepository) FindReportByID(ctx context.Context, reportID string) (*domain.Report, error) {
	var m models.Report
	err := r.pool.QueryRow(ctx, `
		SELECT report_id, status, content, creation_time, created_at
		FROM reports WHERE report_id = $1;`, reportID,
	).Scan(&m.ReportID, &m.Status, &m.Content, &m.CreationTime, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("report", reportID)
		}
		return nil, fmt.Errorf("failed to find report %s: %w", reportID, err)
	}
	report := mapping.ToDomainReport(m)
	return &report, nil
}

// FinishReport moves a CREATED report into its terminal state. A report that already
// finished is left untouched.
func (r *PgxReportRepository) FinishReport(ctx context.Context, report domain.Report) error {
	m := mapping.ToModelReport(report)
	tag, err := r.pool.Exec(ctx, `
		UPDATE reports
		SET status = $2, content = $3, creation_time = $4
		WHERE report_id = $1 AND status = 'CREATED';`,
		m.ReportID, m.Status, m.Content, m.CreationTime,
	)
	if err != nil {
		return translateWriteError(err, "finish report "+m.ReportID)
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.FindReportByID(ctx, m.ReportID); err != nil {
			return err
		}
		return apperrors.NewConflictError("report " + m.ReportID + " already finished")
	}
	return nil
}
