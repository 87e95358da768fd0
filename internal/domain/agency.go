package domain

import "time"

// Agency is the tenant root. Every client, project and report is reachable
// only through the agency that owns it.
type Agency struct {
	ID           string
	Name         string
	Slug         string // unique, derived from the name at registration
	PrimaryEmail string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
