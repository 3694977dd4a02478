package auth

import (
	"time"

	"github.com/pawararyan169/job-portal/internal/domain"
)

type Service struct {
	users  UserRepo
	hasher PasswordHasher
	signer TokenSigner
	pub    EventPublisher

	accessTTL time.Duration
}

type Config struct {
	AccessTTL time.Duration
}

func NewService(users UserRepo, hasher PasswordHasher, signer TokenSigner, pub EventPublisher, cfg Config) *Service {
	ttl := cfg.AccessTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Service{
		users:     users,
		hasher:    hasher,
		signer:    signer,
		pub:       pub,
		accessTTL: ttl,
	}
}

// RegisterResult is returned on successful registration.
// No token is issued at registration; the client logs in afterwards.
type RegisterResult struct {
	User domain.User
}

// LoginResult carries the session identity handed back to the client.
type LoginResult struct {
	User  domain.User
	Token string
}

func (s *Service) issueToken(userID, role string) (string, error) {
	tok, err := s.signer.SignAccessToken(userID, role, s.accessTTL)
	if err != nil {
		return "", domain.ErrTokenSignFailed(err)
	}
	return tok, nil
}
