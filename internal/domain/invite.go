package domain

import "time"

// ClientInvite is an ephemeral credential-issuance record. Only the SHA-256
// hash of the invite token is ever persisted; the raw token exists solely in
// the one-time URL handed back when the invite is created.
//
// An invite is usable iff UsedAt is nil and ExpiresAt is in the future.
// Consuming it is a one-time transition performed atomically with the
// creation of the portal user.
type ClientInvite struct {
	ID              string
	TokenHash       string
	ClientID        string
	AgencyID        string
	Email           string
	CreatedByUserID string
	ExpiresAt       time.Time
	UsedAt          *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Used reports whether the invite has already been consumed.
func (i ClientInvite) Used() bool { return i.UsedAt != nil }

// Expired reports whether the invite lapsed before now.
func (i ClientInvite) Expired(now time.Time) bool { return i.ExpiresAt.Before(now) }
