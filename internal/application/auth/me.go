package auth

import (
	"context"

	"github.com/pawararyan169/job-portal/internal/domain"
)

// GetUserByID backs the /me endpoint: clients revalidate a cached identity
// (role, profile completeness) before routing.
func (s *Service) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	if userID == "" {
		return domain.User{}, domain.ErrMissingField("id")
	}
	return s.users.GetByID(ctx, userID)
}

// CompleteProfile marks the profile as complete. It is the only mutation
// the auth surface performs after registration; role is never touched.
func (s *Service) CompleteProfile(ctx context.Context, userID string) error {
	if userID == "" {
		return domain.ErrMissingField("id")
	}
	return s.users.SetProfileComplete(ctx, userID)
}
