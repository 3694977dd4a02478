package jobs

import (
	"context"

	"github.com/google/uuid"

	"github.com/pawararyan169/job-portal/internal/domain"
)

const defaultFeedLimit = 50

type Service struct {
	repo JobRepo
	pub  EventPublisher
}

func NewService(repo JobRepo, pub EventPublisher) *Service {
	return &Service{repo: repo, pub: pub}
}

// Feed returns the public job feed, newest first.
func (s *Service) Feed(ctx context.Context, limit int) ([]domain.Job, error) {
	if limit <= 0 || limit > defaultFeedLimit {
		limit = defaultFeedLimit
	}
	return s.repo.List(ctx, limit)
}

// PostInput is a new listing from an authenticated recruiter.
type PostInput struct {
	Title       string
	Company     string
	Location    string
	SalaryRange string
	Description string
	JobType     string

	PostedBy   string // authenticated user ID
	PosterRole string // role from verified token claims
}

// Post creates a listing. Only recruiters may post.
func (s *Service) Post(ctx context.Context, in PostInput) (domain.Job, error) {
	if in.PosterRole != string(domain.RoleRecruiter) {
		return domain.Job{}, domain.ErrRecruiterOnly()
	}
	if in.Title == "" {
		return domain.Job{}, domain.ErrMissingField("title")
	}
	if in.Company == "" {
		return domain.Job{}, domain.ErrMissingField("company")
	}

	j := domain.Job{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		SalaryRange: in.SalaryRange,
		Description: in.Description,
		JobType:     in.JobType,
		PostedBy:    in.PostedBy,
	}

	created, err := s.repo.Create(ctx, j)
	if err != nil {
		return domain.Job{}, err
	}

	if s.pub != nil {
		_ = s.pub.PublishJobPosted(ctx, JobPostedEvent{
			JobID:    created.ID,
			Title:    created.Title,
			Company:  created.Company,
			PostedBy: created.PostedBy,
		})
	}

	return created, nil
}
