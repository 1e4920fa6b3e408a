package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ReportTemplate is the name of the template reports are rendered with.
const ReportTemplate = "report"

// reportErrorPrefix precedes the cause stored in the content of a failed report.
const reportErrorPrefix = "Error generating report: "

// reportService creates reports synchronously and fills them in background goroutines.
type reportService struct {
	BaseService
	reportRepo portsrepo.ReportRepositoryFacade
	userRepo   portsrepo.UserReader
	txnRepo    portsrepo.TransactionReader
	renderer   portssvc.ReportRenderer
	notifier   portssvc.ReportNotifier

	jobs sync.WaitGroup
}

// NewReportService creates a new report service. A nil notifier disables notifications.
func NewReportService(
	reportRepo portsrepo.ReportRepositoryFacade,
	userRepo portsrepo.UserReader,
	txnRepo portsrepo.TransactionReader,
	renderer portssvc.ReportRenderer,
	notifier portssvc.ReportNotifier,
) portssvc.ReportSvcFacade {
	return &reportService{
		reportRepo: reportRepo,
		userRepo:   userRepo,
		txnRepo:    txnRepo,
		renderer:   renderer,
		notifier:   notifier,
	}
}

var _ portssvc.ReportSvcFacade = (*reportService)(nil)

func (s *reportService) CreateReport(ctx context.Context) (string, error) {
	report := domain.Report{
		ReportID:  uuid.NewString(),
		Status:    domain.ReportCreated,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.reportRepo.SaveReport(ctx, report); err != nil {
		s.LogError(ctx, err, "Failed to save report")
		return "", fmt.Errorf("failed to create report: %w", err)
	}
	s.LogInfo(ctx, "Report created", slog.String("report_id", report.ReportID))
	return report.ReportID, nil
}

func (s *reportService) GetReport(ctx context.Context, reportID string) (*domain.Report, error) {
	report, err := s.reportRepo.FindReportByID(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return report, nil
}

// GenerateReportAsync fills the report in a goroutine that outlives the request.
func (s *reportService) GenerateReportAsync(ctx context.Context, reportID string) <-chan struct{} {
	done := make(chan struct{})
	jobCtx := context.WithoutCancel(ctx)

	s.jobs.Add(1)
	go func() {
		defer s.jobs.Done()
		defer close(done)
		s.generate(jobCtx, reportID)
	}()
	return done
}

// Wait blocks until all background jobs have ended.
func (s *reportService) Wait() {
	s.jobs.Wait()
}

func (s *reportService) generate(ctx context.Context, reportID string) {
	logger := s.GetLogger(ctx).With(slog.String("report_id", reportID))

	report, err := s.reportRepo.FindReportByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Report vanished before generation started; abandoning job")
		} else {
			logger.Error("Failed to load report; abandoning job", slog.String("error", err.Error()))
		}
		return
	}

	started := time.Now()
	content, err := s.compute(ctx, started)
	if err != nil {
		logger.Error("Report generation failed", slog.String("error", err.Error()))
		s.fail(ctx, logger, reportID, err)
		return
	}

	elapsed := time.Since(started).Milliseconds()
	report.Status = domain.ReportCompleted
	report.Content = &content
	report.CreationTime = &elapsed
	if err := s.reportRepo.FinishReport(ctx, *report); err != nil {
		logger.Error("Failed to store completed report", slog.String("error", err.Error()))
		s.fail(ctx, logger, reportID, err)
		return
	}

	logger.Info("Report completed", slog.Int64("creation_time_ms", elapsed))
	s.notify(ctx, logger, *report)
}

// compute gathers the statistics concurrently and renders them.
func (s *reportService) compute(ctx context.Context, started time.Time) (string, error) {
	var stats domain.ReportStats

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t0 := time.Now()
		count, err := s.userRepo.CountUsers(gctx)
		if err != nil {
			return err
		}
		stats.UserCount = count
		stats.UserCountElapsed = time.Since(t0).Milliseconds()
		return nil
	})
	g.Go(func() error {
		t0 := time.Now()
		txns, err := s.txnRepo.ListAllTransactions(gctx)
		if err != nil {
			return err
		}
		stats.TransactionCount = len(txns)
		stats.TransactionsElapsed = time.Since(t0).Milliseconds()
		return nil
	})
	if err := g.Wait(); err != nil {
		return "", err
	}
	stats.TotalElapsed = time.Since(started).Milliseconds()

	return s.renderer.Render(ReportTemplate, map[string]any{
		"userCount":        stats.UserCount,
		"userCountTime":    stats.UserCountElapsed,
		"transactionCount": stats.TransactionCount,
		"transactionsTime": stats.TransactionsElapsed,
		"totalTime":        stats.TotalElapsed,
	})
}

// fail re-reads the report and stores the ERROR state with the cause as content.
func (s *reportService) fail(ctx context.Context, logger *slog.Logger, reportID string, cause error) {
	report, err := s.reportRepo.FindReportByID(ctx, reportID)
	if err != nil {
		logger.Error("Failed to reload report for error state", slog.String("error", err.Error()))
		return
	}
	if report.Status.IsTerminal() {
		return
	}

	content := reportErrorPrefix + cause.Error()
	report.Status = domain.ReportError
	report.Content = &content
	report.CreationTime = nil
	if err := s.reportRepo.FinishReport(ctx, *report); err != nil {
		logger.Error("Failed to store report error state", slog.String("error", err.Error()))
		return
	}
	s.notify(ctx, logger, *report)
}

func (s *reportService) notify(ctx context.Context, logger *slog.Logger, report domain.Report) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.NotifyReportFinished(ctx, report); err != nil {
		logger.Warn("Failed to publish report event", slog.String("error", err.Error()))
	}
}
