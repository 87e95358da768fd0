package domain

import "time"

type User struct {
	ID           string
	Email        string
	Name         string // optional display name
	PasswordHash string // argon2id PHC encoded
	Role         Role
	AgencyID     string
	ClientID     string // set iff Role == RoleClient
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
