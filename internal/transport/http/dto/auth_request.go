package dto

import (
	"github.com/pawararyan169/job-portal/internal/domain"
)

// -------- Core auth --------

// RegisterRequest mirrors the mobile client's sign-up payload.
type RegisterRequest struct {
	Email           string `json:"email" validate:"omitempty,email"`
	Name            string `json:"name" validate:"omitempty,max=120"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	IsRecruiter     bool   `json:"isRecruiter"`
}

func (r *RegisterRequest) Validate() error {
	// Required fields first: the client renders one blanket message for
	// any blank field, so these outrank format checks.
	if r.Email == "" {
		return domain.ErrMissingField("email")
	}
	if r.Name == "" {
		return domain.ErrMissingField("name")
	}
	if r.Password == "" {
		return domain.ErrMissingField("password")
	}
	if r.ConfirmPassword == "" {
		return domain.ErrMissingField("confirmPassword")
	}
	if r.Password != r.ConfirmPassword {
		return domain.ErrPasswordMismatch()
	}
	return runValidator(r)
}

type LoginRequest struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	if r.Email == "" {
		return domain.ErrMissingField("email")
	}
	if r.Password == "" {
		return domain.ErrMissingField("password")
	}
	return runValidator(r)
}

// -------- Profile --------

type CompleteProfileRequest struct{}
