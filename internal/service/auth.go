package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/Ivannn15/agencyroom/internal/domain"
	"github.com/Ivannn15/agencyroom/internal/store"
	"github.com/Ivannn15/agencyroom/pkg/cryptox"
	"github.com/Ivannn15/agencyroom/pkg/idx"
	"github.com/Ivannn15/agencyroom/pkg/jwtx"
	"github.com/Ivannn15/agencyroom/pkg/slogx"
)

var (
	ErrEmailTaken          = errors.New("email is already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrWeakPassword        = errors.New("password must be at least 6 characters")
	ErrInvalidRegistration = errors.New("invalid registration request")
	ErrUserNotFound        = errors.New("user not found")
)

// Session is the credential bundle handed back by every operation that logs a
// user in (registration, login, invite acceptance).
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      domain.User
	Agency    domain.Agency
}

// AuthService owns agency registration, login and profile reads. It is the
// only writer of session tokens besides invite acceptance.
type AuthService struct {
	Store      store.Store
	Signer     jwtx.Signer
	SessionTTL time.Duration
}

func (s *AuthService) ttl() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return jwtx.DefaultSessionTTL
}

// issueSession signs a fresh session token for the user. The expiry handed
// back is the one callers use for cookie max-age; it is never re-derived from
// the token.
func (s *AuthService) issueSession(user domain.User, agency domain.Agency) (Session, error) {
	now := time.Now().UTC()
	expires := now.Add(s.ttl())

	claims := jwtx.NewSessionClaims(
		user.ID, user.Email, string(user.Role), user.AgencyID, user.ClientID,
		s.ttl(), "", now,
	)
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: token, ExpiresAt: expires, User: user, Agency: agency}, nil
}

// RegisterAgency provisions a new tenant: the agency row plus its owner user,
// atomically, and returns a live session for the owner.
func (s *AuthService) RegisterAgency(ctx context.Context, agencyName, fullName, email, password string) (Session, error) {
	log := slogx.FromContext(ctx)

	agencyName = strings.TrimSpace(agencyName)
	email = normalizeEmail(email)
	if agencyName == "" || email == "" {
		return Session{}, ErrInvalidRegistration
	}
	if len(password) < 6 {
		return Session{}, ErrWeakPassword
	}

	// Early duplicate check; the unique index is the real guard.
	if _, err := s.Store.Users().GetUserByEmail(ctx, email); err == nil {
		return Session{}, ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return Session{}, err
	}

	slug, err := s.uniqueSlug(ctx, agencyName)
	if err != nil {
		return Session{}, err
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return Session{}, err
	}

	now := time.Now().UTC()
	agency := domain.Agency{
		ID:           idx.New().String(),
		Name:         agencyName,
		Slug:         slug,
		PrimaryEmail: email,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	owner := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		Name:         strings.TrimSpace(fullName),
		PasswordHash: hash,
		Role:         domain.RoleOwner,
		AgencyID:     agency.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Agencies().CreateAgency(ctx, agency); err != nil {
			return err
		}
		return tx.Users().CreateUser(ctx, owner)
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return Session{}, ErrEmailTaken
		}
		log.Error("agency registration failed", slog.Any("error", err))
		return Session{}, err
	}

	log.Info("agency registered",
		slog.String("agency_id", agency.ID),
		slog.String("slug", agency.Slug),
	)

	return s.issueSession(owner, agency)
}

// Login verifies credentials and issues a session. All failure modes collapse
// into ErrInvalidCredentials so callers can't probe which emails exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (Session, error) {
	log := slogx.FromContext(ctx)

	email = normalizeEmail(email)

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		log.Warn("login rejected", slog.String("user_id", user.ID))
		return Session{}, ErrInvalidCredentials
	}

	agency, err := s.Store.Agencies().GetAgencyByID(ctx, user.AgencyID)
	if err != nil {
		return Session{}, err
	}

	log.Debug("login succeeded", slog.String("user_id", user.ID))
	return s.issueSession(user, agency)
}

// Profile returns the authenticated user with their agency.
func (s *AuthService) Profile(ctx context.Context, userID string) (domain.User, domain.Agency, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, domain.Agency{}, ErrUserNotFound
		}
		return domain.User{}, domain.Agency{}, err
	}
	agency, err := s.Store.Agencies().GetAgencyByID(ctx, user.AgencyID)
	if err != nil {
		return domain.User{}, domain.Agency{}, err
	}
	return user, agency, nil
}

// uniqueSlug derives a URL slug from the agency name and suffixes -1, -2...
// until it no longer collides with an existing agency.
func (s *AuthService) uniqueSlug(ctx context.Context, name string) (string, error) {
	base := slugify(name)
	if base == "" {
		base = "agency"
	}

	candidate := base
	for i := 1; ; i++ {
		_, err := s.Store.Agencies().GetAgencyBySlug(ctx, candidate)
		if errors.Is(err, store.ErrNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

func slugify(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress leading hyphen
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
