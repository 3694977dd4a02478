package auth

import (
	"context"
	"time"

	"github.com/pawararyan169/job-portal/internal/domain"
)

/*
UserRepo
--------
Persistence port for users.
Only describes WHAT the auth service needs, not HOW it's stored.

Create must be the atomic arbiter for email uniqueness: under concurrent
registrations with the same normalized email, exactly one Create succeeds
and the others return ErrEmailAlreadyExists. The service's pre-lookup is
only a fast path for a friendlier error.
*/
type UserRepo interface {
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
	Create(ctx context.Context, u domain.User) (domain.User, error)

	// SetProfileComplete is used by the profile-completion flow only.
	// Role is deliberately not updatable through this port.
	SetProfileComplete(ctx context.Context, userID string) error
}

/*
PasswordHasher
--------------
Abstracts bcrypt / argon2. Compare must be constant-time.
*/
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error // nil if match
}

/*
TokenSigner
-----------
Issues and verifies access tokens (JWT).
Used by service + auth middleware.
*/
type TokenClaims struct {
	UserID string
	Role   string
	Exp    time.Time
}

type TokenSigner interface {
	SignAccessToken(userID string, role string, ttl time.Duration) (string, error)
	VerifyAccessToken(token string) (TokenClaims, error)
}

/*
EventPublisher
--------------
Publishes domain events to the broker. Downstream services (email,
search indexing) consume them; the auth service never calls them directly.
*/
type EventPublisher interface {
	PublishUserRegistered(ctx context.Context, evt UserRegisteredEvent) error
}

type UserRegisteredEvent struct {
	UserID string
	Email  string
	Name   string
	Role   string
}
