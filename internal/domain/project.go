package domain

import "time"

type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectPaused    ProjectStatus = "paused"
	ProjectCompleted ProjectStatus = "completed"
)

// Valid reports whether s is one of the known project statuses.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectActive, ProjectPaused, ProjectCompleted:
		return true
	}
	return false
}

type Project struct {
	ID        string
	ClientID  string
	Name      string
	Status    ProjectStatus
	Notes     string // optional
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProjectDetail is a project joined with its owning client.
type ProjectDetail struct {
	Project
	Client Client
}
