package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/pawararyan169/job-portal/internal/domain"
)

// RegisterInput is the full registration payload after transport decoding.
type RegisterInput struct {
	Email           string
	Name            string
	Password        string
	ConfirmPassword string
	IsRecruiter     bool
}

// Register creates a new user.
//
// Validation order: missing fields, password/confirm mismatch, duplicate
// email. The pre-lookup gives a friendly conflict error, but the store's
// unique constraint is the real guard: a duplicate insert that slips past
// the lookup still surfaces as ErrEmailAlreadyExists, never a duplicate row.
func (s *Service) Register(ctx context.Context, in RegisterInput) (RegisterResult, error) {
	if in.Email == "" {
		return RegisterResult{}, domain.ErrMissingField("email")
	}
	if in.Name == "" {
		return RegisterResult{}, domain.ErrMissingField("name")
	}
	if in.Password == "" {
		return RegisterResult{}, domain.ErrMissingField("password")
	}
	if in.ConfirmPassword == "" {
		return RegisterResult{}, domain.ErrMissingField("confirmPassword")
	}
	if in.Password != in.ConfirmPassword {
		return RegisterResult{}, domain.ErrPasswordMismatch()
	}

	email := domain.NormalizeEmail(in.Email)

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return RegisterResult{}, domain.ErrEmailAlreadyExists()
	} else if !domain.Is(err, "user_not_found") {
		return RegisterResult{}, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return RegisterResult{}, domain.ErrHashFailed(err)
	}

	u := domain.User{
		ID:              uuid.NewString(),
		Email:           email,
		Name:            in.Name,
		PasswordHash:    hash,
		Role:            string(domain.RoleForRegistration(in.IsRecruiter)),
		ProfileComplete: false,
	}

	created, err := s.users.Create(ctx, u)
	if err != nil {
		return RegisterResult{}, err
	}

	if s.pub != nil {
		// Best effort; a broker outage must not fail a completed registration.
		_ = s.pub.PublishUserRegistered(ctx, UserRegisteredEvent{
			UserID: created.ID,
			Email:  created.Email,
			Name:   created.Name,
			Role:   created.Role,
		})
	}

	return RegisterResult{User: created}, nil
}
