package memory

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/pawararyan169/job-portal/internal/domain"
)

// Hasher is the minimal surface we need for seeding.
type Hasher interface {
	Hash(password string) (string, error)
}

// SeedUsers creates initial accounts for local development (in-memory only).
// Safe to call multiple times (duplicates ignored).
func SeedUsers(ctx context.Context, users *UserRepo, hasher Hasher) {
	type seedUser struct {
		Email   string
		Name    string
		Role    string
		Pass    string
		Profile bool
	}

	seeds := []seedUser{
		{Email: "seeker@example.com", Name: "Sam Seeker", Role: string(domain.RoleJobSeeker), Pass: "SeekerPassword123!", Profile: true},
		{Email: "newbie@example.com", Name: "Nina New", Role: string(domain.RoleJobSeeker), Pass: "NewbiePassword123!", Profile: false},
		{Email: "recruiter@example.com", Name: "Rita Recruiter", Role: string(domain.RoleRecruiter), Pass: "RecruiterPassword123!", Profile: true},
	}

	for _, s := range seeds {
		hash, err := hasher.Hash(s.Pass)
		if err != nil {
			log.Printf("[seed] hash failed (%s): %v", s.Email, err)
			continue
		}

		u := domain.User{
			ID:              uuid.NewString(),
			Email:           s.Email,
			Name:            s.Name,
			PasswordHash:    hash,
			Role:            s.Role,
			ProfileComplete: s.Profile,
			CreatedAt:       time.Now().UTC(),
		}

		if _, err := users.Create(ctx, u); err != nil {
			// ignore duplicates / restart
			continue
		}
	}

	log.Println("[seed] in-memory users seeded")
}

// SeedJobs loads the starter listings the mobile feed renders before any
// recruiter has posted.
func SeedJobs(ctx context.Context, jobs *JobRepo) {
	now := time.Now().UTC()

	seeds := []domain.Job{
		{
			ID:          "1",
			Title:       "Senior Kotlin Developer",
			Company:     "TechInnovate Solutions",
			Location:    "Remote, CA",
			SalaryRange: "$120K - $150K",
			Description: "Leading the development of new Android/Compose features.",
			JobType:     "Full-time",
			CreatedAt:   now.Add(-2 * time.Hour),
		},
		{
			ID:          "2",
			Title:       "UI/UX Designer (Mobile)",
			Company:     "Creative Labs",
			Location:    "New York, NY",
			SalaryRange: "$80K - $100K",
			Description: "Design user-centered interfaces for mobile platforms.",
			JobType:     "Contract",
			CreatedAt:   now.Add(-24 * time.Hour),
		},
		{
			ID:          "3",
			Title:       "Backend Engineer (Node.js/Mongo)",
			Company:     "DataStream Corp",
			Location:    "Seattle, WA",
			SalaryRange: "$100K - $130K",
			Description: "Build and maintain our scalable API using Express and MongoDB.",
			JobType:     "Full-time",
			CreatedAt:   now.Add(-4 * 24 * time.Hour),
		},
	}

	for _, j := range seeds {
		if _, err := jobs.Create(ctx, j); err != nil {
			continue
		}
	}

	log.Println("[seed] in-memory jobs seeded")
}
