package models

import (
	"database/sql"
	"time"
)

// Report is a row of the reports table. Content and creation_time stay NULL until the job ends.
type Report struct {
	ReportID     string         `db:"report_id"`
	Status       string         `db:"status"`
	Content      sql.NullString `db:"content"`
	CreationTime sql.NullInt64  `db:"creation_time"`
	CreatedAt    time.Time      `db:"created_at"`
}
