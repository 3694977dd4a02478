package postgres

import (
	"context"
	"database/sql"
	"strings"

	"github.com/pawararyan169/job-portal/internal/domain"
)

type JobRepo struct {
	db *sql.DB
}

func NewJobRepo(db *sql.DB) *JobRepo {
	return &JobRepo{db: db}
}

func toDomainJob(jr jobRow) domain.Job {
	return domain.Job{
		ID:          jr.ID,
		Title:       jr.Title,
		Company:     jr.Company,
		Location:    jr.Location.String,
		SalaryRange: jr.SalaryRange.String,
		Description: jr.Description.String,
		JobType:     jr.JobType.String,
		PostedBy:    jr.PostedBy.String,
		CreatedAt:   jr.CreatedAt,
	}
}

// List returns listings newest first.
func (r *JobRepo) List(ctx context.Context, limit int) ([]domain.Job, error) {
	if limit <= 0 {
		limit = 50
	}

	const q = `
SELECT id, title, company, location, salary_range, description, job_type, posted_by, created_at
FROM jobs
ORDER BY created_at DESC, id DESC
LIMIT $1;
`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	defer rows.Close()

	var out []domain.Job
	for rows.Next() {
		var jr jobRow
		if err := rows.Scan(
			&jr.ID,
			&jr.Title,
			&jr.Company,
			&jr.Location,
			&jr.SalaryRange,
			&jr.Description,
			&jr.JobType,
			&jr.PostedBy,
			&jr.CreatedAt,
		); err != nil {
			return nil, domain.ErrDBUnavailable(err)
		}
		out = append(out, toDomainJob(jr))
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	return out, nil
}

func (r *JobRepo) Create(ctx context.Context, j domain.Job) (domain.Job, error) {
	if strings.TrimSpace(j.ID) == "" {
		return domain.Job{}, domain.ErrMissingField("id")
	}
	if j.Title == "" {
		return domain.Job{}, domain.ErrMissingField("title")
	}
	if j.Company == "" {
		return domain.Job{}, domain.ErrMissingField("company")
	}

	const q = `
INSERT INTO jobs (id, title, company, location, salary_range, description, job_type, posted_by)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
RETURNING created_at;
`
	err := r.db.QueryRowContext(ctx, q,
		j.ID, j.Title, j.Company, j.Location, j.SalaryRange, j.Description, j.JobType, nullIfEmpty(j.PostedBy),
	).Scan(&j.CreatedAt)
	if err != nil {
		return domain.Job{}, domain.ErrDBUnavailable(err)
	}
	return j, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
