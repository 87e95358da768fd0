package domain

import "time"

// Client is an agency's customer, the subject of projects and reports.
type Client struct {
	ID           string
	AgencyID     string
	Name         string
	Company      string // optional
	ContactEmail string
	ContactPhone string // optional
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
