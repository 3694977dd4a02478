package domain

import "time"

// Job is a single listing on the feed.
type Job struct {
	ID          string
	Title       string
	Company     string
	Location    string
	SalaryRange string
	Description string // short snippet shown on the feed card
	JobType     string // "Full-time", "Part-time", "Contract"
	PostedBy    string // recruiter user ID, empty for seeded listings
	CreatedAt   time.Time
}
