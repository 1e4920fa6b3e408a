package mapping

import (
	"database/sql"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/models"
)

// ToModelReport converts a domain Report to a model Report; nil content and time become NULL.
func ToModelReport(d domain.Report) models.Report {
	m := models.Report{
		ReportID:  d.ReportID,
		Status:    string(d.Status),
		CreatedAt: d.CreatedAt,
	}
	if d.Content != nil {
		m.Content = sql.NullString{String: *d.Content, Valid: true}
	}
	if d.CreationTime != nil {
		m.CreationTime = sql.NullInt64{Int64: *d.CreationTime, Valid: true}
	}
	return m
}

// ToDomainReport converts a model Report to a domain Report
func ToDomainReport(m models.Report) domain.Report {
	d := domain.Report{
		ReportID:  m.ReportID,
		Status:    domain.ReportStatus(m.Status),
		CreatedAt: m.CreatedAt,
	}
	if m.Content.Valid {
		content := m.Content.String
		d.Content = &content
	}
	if m.CreationTime.Valid {
		ms := m.CreationTime.Int64
		d.CreationTime = &ms
	}
	return d
}
