package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/pawararyan169/job-portal/internal/domain"
)

func jobColumns() []string {
	return []string{"id", "title", "company", "location", "salary_range", "description", "job_type", "posted_by", "created_at"}
}

func TestJobRepo_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewJobRepo(db)

	t.Run("returns_rows_in_order", func(t *testing.T) {
		now := time.Now().UTC()
		rows := sqlmock.NewRows(jobColumns()).
			AddRow("j_2", "Backend Engineer", "Acme", "Remote", "90k-120k", "Go services", "full_time", "u_rec", now).
			AddRow("j_1", "Data Analyst", "Globex", nil, nil, nil, nil, nil, now.Add(-time.Hour))

		mock.ExpectQuery("SELECT (.+) FROM jobs").
			WithArgs(10).
			WillReturnRows(rows)

		jobs, err := repo.List(context.Background(), 10)
		assert.NoError(t, err)
		assert.Len(t, jobs, 2)
		assert.Equal(t, "j_2", jobs[0].ID)
		assert.Equal(t, "Remote", jobs[0].Location)
		// NULL columns come back as empty strings.
		assert.Equal(t, "", jobs[1].Location)
		assert.Equal(t, "", jobs[1].PostedBy)
	})

	t.Run("non_positive_limit_uses_default", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM jobs").
			WithArgs(50).
			WillReturnRows(sqlmock.NewRows(jobColumns()))

		jobs, err := repo.List(context.Background(), 0)
		assert.NoError(t, err)
		assert.Empty(t, jobs)
	})

	t.Run("db_error_mapping", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM jobs").
			WithArgs(10).
			WillReturnError(errors.New("conn refused"))

		_, err := repo.List(context.Background(), 10)
		assert.True(t, domain.Is(err, "db_unavailable"))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepo_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewJobRepo(db)

	t.Run("success_sets_created_at", func(t *testing.T) {
		now := time.Now().UTC()
		mock.ExpectQuery("INSERT INTO jobs").
			WithArgs("j_1", "Backend Engineer", "Acme", "Remote", "90k-120k", "Go services", "full_time", "u_rec").
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

		j, err := repo.Create(context.Background(), domain.Job{
			ID:          "j_1",
			Title:       "Backend Engineer",
			Company:     "Acme",
			Location:    "Remote",
			SalaryRange: "90k-120k",
			Description: "Go services",
			JobType:     "full_time",
			PostedBy:    "u_rec",
		})
		assert.NoError(t, err)
		assert.Equal(t, now, j.CreatedAt)
	})

	t.Run("missing_title_rejected_before_query", func(t *testing.T) {
		_, err := repo.Create(context.Background(), domain.Job{ID: "j_x", Company: "Acme"})
		assert.True(t, domain.Is(err, "missing_field"))
	})

	t.Run("db_error_mapping", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO jobs").
			WillReturnError(errors.New("conn refused"))

		_, err := repo.Create(context.Background(), domain.Job{
			ID: "j_2", Title: "T", Company: "C",
		})
		assert.True(t, domain.Is(err, "db_unavailable"))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
