package postgres

import "time"

type userRow struct {
	ID              string
	Email           string
	Name            string
	PasswordHash    string
	Role            string
	ProfileComplete bool
	CreatedAt       time.Time
}
