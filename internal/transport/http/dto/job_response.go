package dto

import (
	"fmt"
	"time"

	"github.com/pawararyan169/job-portal/internal/domain"
)

// JobView is one card in the mobile feed.
type JobView struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	Company            string `json:"company"`
	Location           string `json:"location"`
	SalaryRange        string `json:"salaryRange"`
	DescriptionSnippet string `json:"descriptionSnippet"`
	PostDate           string `json:"postDate"`
	JobType            string `json:"jobType"`
}

type JobFeedResponse struct {
	Success bool      `json:"success"`
	Jobs    []JobView `json:"jobs"`
	Message string    `json:"message"`
}

type PostJobResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	JobID   string `json:"jobId"`
}

// NewJobView converts a listing into its feed card, rendering the post
// date the way the client displays it ("Posted 2 hours ago").
func NewJobView(j domain.Job, now time.Time) JobView {
	return JobView{
		ID:                 j.ID,
		Title:              j.Title,
		Company:            j.Company,
		Location:           j.Location,
		SalaryRange:        j.SalaryRange,
		DescriptionSnippet: snippet(j.Description),
		PostDate:           relativePostDate(j.CreatedAt, now),
		JobType:            j.JobType,
	}
}

func NewJobViews(jobs []domain.Job, now time.Time) []JobView {
	out := make([]JobView, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, NewJobView(j, now))
	}
	return out
}

const snippetMax = 140

func snippet(desc string) string {
	runes := []rune(desc)
	if len(runes) <= snippetMax {
		return desc
	}
	return string(runes[:snippetMax]) + "..."
}

func relativePostDate(createdAt, now time.Time) string {
	if createdAt.IsZero() {
		return "Posted recently"
	}

	d := now.Sub(createdAt)
	switch {
	case d < time.Hour:
		return "Posted just now"
	case d < 2*time.Hour:
		return "Posted 1 hour ago"
	case d < 24*time.Hour:
		return fmt.Sprintf("Posted %d hours ago", int(d.Hours()))
	case d < 48*time.Hour:
		return "Posted 1 day ago"
	default:
		return fmt.Sprintf("Posted %d days ago", int(d.Hours()/24))
	}
}
