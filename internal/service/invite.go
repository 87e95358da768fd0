package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Ivannn15/agencyroom/internal/domain"
	"github.com/Ivannn15/agencyroom/internal/store"
	"github.com/Ivannn15/agencyroom/pkg/cryptox"
	"github.com/Ivannn15/agencyroom/pkg/idx"
	"github.com/Ivannn15/agencyroom/pkg/jwtx"
	"github.com/Ivannn15/agencyroom/pkg/slogx"
)

var (
	ErrInviteNotFound = errors.New("invite not found")
	ErrInviteUsed     = errors.New("invite has already been used")
	ErrInviteExpired  = errors.New("invite has expired")
	ErrBadInviteToken = errors.New("malformed invite token")
	ErrInvalidInvite  = errors.New("invalid invite request")
)

const (
	defaultInviteDays = 7
	minInviteDays     = 1
	maxInviteDays     = 60
	minTokenLength    = 8
)

// MintedInvite is the creation result. Token is the raw secret, surfaced
// exactly once; only its fingerprint is stored.
type MintedInvite struct {
	Invite domain.ClientInvite
	Token  string
	URL    string
}

// InvitePreview is the pre-acceptance view shown on the invite landing page.
type InvitePreview struct {
	Email      string
	ClientName string
	AgencyName string
	ExpiresAt  time.Time
}

// InviteService mints and redeems client portal invites. Acceptance creates
// the portal user and consumes the invite in a single transaction so a raced
// token can never yield two accounts.
type InviteService struct {
	Store store.Store

	// Signer and SessionTTL let acceptance log the new user straight in.
	Signer     jwtx.Signer
	SessionTTL time.Duration

	// FrontendURL is the base for the invite link handed back on creation.
	FrontendURL string
}

// CreateInvite mints an invite for a client of the caller's agency. Expiry is
// whole days from now, clamped to [1, 60], defaulting to 7.
func (s *InviteService) CreateInvite(ctx context.Context, clientID, agencyID, createdBy, email string, expiresInDays int) (MintedInvite, error) {
	log := slogx.FromContext(ctx)

	email = normalizeEmail(email)
	if email == "" {
		return MintedInvite{}, ErrInvalidInvite
	}

	// Tenant check: the client must belong to the caller's agency.
	if _, err := s.Store.Clients().GetClient(ctx, clientID, agencyID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return MintedInvite{}, ErrClientNotFound
		}
		return MintedInvite{}, err
	}

	days := expiresInDays
	if days == 0 {
		days = defaultInviteDays
	}
	if days < minInviteDays {
		days = minInviteDays
	}
	if days > maxInviteDays {
		days = maxInviteDays
	}

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return MintedInvite{}, err
	}

	now := time.Now().UTC()
	invite := domain.ClientInvite{
		ID:              idx.New().String(),
		TokenHash:       cryptox.FingerprintToken(token),
		ClientID:        clientID,
		AgencyID:        agencyID,
		Email:           email,
		CreatedByUserID: createdBy,
		ExpiresAt:       now.AddDate(0, 0, days),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.Store.Invites().CreateInvite(ctx, invite); err != nil {
		log.Error("failed to create invite", slog.Any("error", err))
		return MintedInvite{}, err
	}

	log.Info("invite created",
		slog.String("invite_id", invite.ID),
		slog.String("client_id", clientID),
		slog.Time("expires_at", invite.ExpiresAt),
	)

	return MintedInvite{
		Invite: invite,
		Token:  token,
		URL:    fmt.Sprintf("%s/invite/%s", strings.TrimRight(s.FrontendURL, "/"), token),
	}, nil
}

// InviteDetails resolves a raw token to its pre-acceptance preview,
// distinguishing unknown, used and expired invites.
func (s *InviteService) InviteDetails(ctx context.Context, rawToken string) (InvitePreview, error) {
	invite, err := s.lookupInvite(ctx, rawToken)
	if err != nil {
		return InvitePreview{}, err
	}

	client, err := s.Store.Clients().GetClient(ctx, invite.ClientID, invite.AgencyID)
	if err != nil {
		return InvitePreview{}, err
	}
	agency, err := s.Store.Agencies().GetAgencyByID(ctx, invite.AgencyID)
	if err != nil {
		return InvitePreview{}, err
	}

	return InvitePreview{
		Email:      invite.Email,
		ClientName: client.Name,
		AgencyName: agency.Name,
		ExpiresAt:  invite.ExpiresAt,
	}, nil
}

// AcceptInvite consumes the invite and creates the client-role user bound to
// the invite's client. The invite is re-read inside the transaction so the
// loser of a concurrent accept fails cleanly instead of minting a second user.
func (s *InviteService) AcceptInvite(ctx context.Context, rawToken, password, fullName string) (Session, error) {
	log := slogx.FromContext(ctx)

	if len(password) < 6 {
		return Session{}, ErrWeakPassword
	}

	invite, err := s.lookupInvite(ctx, rawToken)
	if err != nil {
		return Session{}, err
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return Session{}, err
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           idx.New().String(),
		Email:        invite.Email,
		Name:         strings.TrimSpace(fullName),
		PasswordHash: hash,
		Role:         domain.RoleClient,
		AgencyID:     invite.AgencyID,
		ClientID:     invite.ClientID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		// Re-check state under the transaction; the pre-check above can race.
		fresh, err := tx.Invites().GetInviteByID(ctx, invite.ID)
		if err != nil {
			return err
		}
		if fresh.Used() {
			return ErrInviteUsed
		}
		if fresh.Expired(now) {
			return ErrInviteExpired
		}

		if err := tx.Users().CreateUser(ctx, user); err != nil {
			return err
		}
		return tx.Invites().MarkInviteUsed(ctx, invite.ID, now)
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			// A user with the invite email already exists.
			return Session{}, ErrEmailTaken
		}
		if errors.Is(err, ErrInviteUsed) || errors.Is(err, ErrInviteExpired) {
			return Session{}, err
		}
		log.Error("invite acceptance failed",
			slog.String("invite_id", invite.ID),
			slog.Any("error", err),
		)
		return Session{}, err
	}

	agency, err := s.Store.Agencies().GetAgencyByID(ctx, invite.AgencyID)
	if err != nil {
		return Session{}, err
	}

	log.Info("invite accepted",
		slog.String("invite_id", invite.ID),
		slog.String("user_id", user.ID),
	)

	auth := AuthService{Signer: s.Signer, SessionTTL: s.SessionTTL}
	return auth.issueSession(user, agency)
}

// lookupInvite fingerprints the raw token and classifies the invite's state.
func (s *InviteService) lookupInvite(ctx context.Context, rawToken string) (domain.ClientInvite, error) {
	rawToken = strings.TrimSpace(rawToken)
	if len(rawToken) < minTokenLength {
		return domain.ClientInvite{}, ErrBadInviteToken
	}

	invite, err := s.Store.Invites().GetInviteByTokenHash(ctx, cryptox.FingerprintToken(rawToken))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.ClientInvite{}, ErrInviteNotFound
		}
		return domain.ClientInvite{}, err
	}
	if invite.Used() {
		return domain.ClientInvite{}, ErrInviteUsed
	}
	if invite.Expired(time.Now().UTC()) {
		return domain.ClientInvite{}, ErrInviteExpired
	}
	return invite, nil
}
