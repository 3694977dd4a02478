package domain

import (
	"strings"
	"time"
)

// User is a registered identity. PasswordHash must never leave the server.
type User struct {
	ID              string
	Email           string // always stored normalized (lowercased, trimmed)
	Name            string
	PasswordHash    string
	Role            string
	ProfileComplete bool
	CreatedAt       time.Time
}

// NormalizeEmail lowercases and trims an email so lookups are case-insensitive.
// Every store lookup and insert goes through this.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
