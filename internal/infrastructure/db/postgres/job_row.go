package postgres

import (
	"database/sql"
	"time"
)

type jobRow struct {
	ID          string
	Title       string
	Company     string
	Location    sql.NullString
	SalaryRange sql.NullString
	Description sql.NullString
	JobType     sql.NullString
	PostedBy    sql.NullString
	CreatedAt   time.Time
}
