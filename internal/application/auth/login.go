package auth

import (
	"context"

	"github.com/pawararyan169/job-portal/internal/domain"
)

// Login authenticates a user and issues an access token.
// IMPORTANT: must not leak whether the email exists (avoid user enumeration).
// Unknown email and wrong password collapse into the same error, and the
// bcrypt compare runs on a dummy hash when the user is missing so the two
// paths cost roughly the same.
func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	if email == "" {
		return LoginResult{}, domain.ErrMissingField("email")
	}
	if password == "" {
		return LoginResult{}, domain.ErrMissingField("password")
	}

	email = domain.NormalizeEmail(email)

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if domain.Is(err, "user_not_found") {
			// Burn a compare so response timing doesn't reveal existence.
			_ = s.hasher.Compare(dummyHash, password)
			return LoginResult{}, domain.ErrInvalidCredentials()
		}
		return LoginResult{}, err
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return LoginResult{}, domain.ErrInvalidCredentials()
	}

	tok, err := s.issueToken(u.ID, u.Role)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{User: u, Token: tok}, nil
}

// dummyHash is bcrypt("unused", cost 10). Only ever compared against,
// never stored.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
