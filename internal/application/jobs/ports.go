package jobs

import (
	"context"

	"github.com/pawararyan169/job-portal/internal/domain"
)

// JobRepo is the persistence port for listings.
type JobRepo interface {
	List(ctx context.Context, limit int) ([]domain.Job, error)
	Create(ctx context.Context, j domain.Job) (domain.Job, error)
}

// EventPublisher publishes job lifecycle events to the broker.
type EventPublisher interface {
	PublishJobPosted(ctx context.Context, evt JobPostedEvent) error
}

type JobPostedEvent struct {
	JobID    string
	Title    string
	Company  string
	PostedBy string
}
