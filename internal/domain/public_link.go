package domain

import "time"

// PublicReportLink is the 1:1 token gate in front of a report's anonymous
// read-only view. PublicID is minted once and survives disable/enable cycles;
// IsActive is the sole gate the public read path checks.
type PublicReportLink struct {
	ID        string
	ReportID  string
	PublicID  string // 12 hex chars, opaque
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
