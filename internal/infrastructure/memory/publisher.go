package memory

import (
	"context"
	"log"

	"github.com/pawararyan169/job-portal/internal/application/auth"
	"github.com/pawararyan169/job-portal/internal/application/jobs"
)

// NoopPublisher stands in for the broker in local development.
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher { return &NoopPublisher{} }

func (p *NoopPublisher) PublishUserRegistered(ctx context.Context, evt auth.UserRegisteredEvent) error {
	log.Printf("[noop-pub] user registered: user_id=%s email=%s role=%s", evt.UserID, evt.Email, evt.Role)
	return nil
}

func (p *NoopPublisher) PublishJobPosted(ctx context.Context, evt jobs.JobPostedEvent) error {
	log.Printf("[noop-pub] job posted: job_id=%s title=%q company=%s", evt.JobID, evt.Title, evt.Company)
	return nil
}
