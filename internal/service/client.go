package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/Ivannn15/agencyroom/internal/domain"
	"github.com/Ivannn15/agencyroom/internal/store"
	"github.com/Ivannn15/agencyroom/pkg/cryptox"
	"github.com/Ivannn15/agencyroom/pkg/idx"
	"github.com/Ivannn15/agencyroom/pkg/slogx"
)

var (
	ErrClientNotFound    = errors.New("client not found")
	ErrClientHasProjects = errors.New("client still has projects")
	ErrInvalidClient     = errors.New("invalid client request")
	ErrNoPortalUser      = errors.New("client has no portal user")
)

// ClientService is agency-scoped CRUD over clients. Reads for a client owned
// by another agency are indistinguishable from a missing row.
type ClientService struct {
	Store store.Store
}

// ClientUpdate carries the patchable client fields; nil means "leave as is".
type ClientUpdate struct {
	Name         *string
	Company      *string
	ContactEmail *string
	ContactPhone *string
}

func (s *ClientService) CreateClient(ctx context.Context, agencyID, name, company, contactEmail, contactPhone string) (domain.Client, error) {
	name = strings.TrimSpace(name)
	contactEmail = normalizeEmail(contactEmail)
	if name == "" || contactEmail == "" {
		return domain.Client{}, ErrInvalidClient
	}

	now := time.Now().UTC()
	client := domain.Client{
		ID:           idx.New().String(),
		AgencyID:     agencyID,
		Name:         name,
		Company:      strings.TrimSpace(company),
		ContactEmail: contactEmail,
		ContactPhone: strings.TrimSpace(contactPhone),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.Clients().CreateClient(ctx, client); err != nil {
		return domain.Client{}, err
	}

	slogx.FromContext(ctx).Info("client created",
		slog.String("client_id", client.ID),
		slog.String("agency_id", agencyID),
	)
	return client, nil
}

func (s *ClientService) ListClients(ctx context.Context, agencyID string) ([]domain.Client, error) {
	return s.Store.Clients().ListClients(ctx, agencyID)
}

func (s *ClientService) GetClient(ctx context.Context, id, agencyID string) (domain.Client, error) {
	client, err := s.Store.Clients().GetClient(ctx, id, agencyID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Client{}, ErrClientNotFound
	}
	return client, err
}

func (s *ClientService) UpdateClient(ctx context.Context, id, agencyID string, upd ClientUpdate) (domain.Client, error) {
	client, err := s.GetClient(ctx, id, agencyID)
	if err != nil {
		return domain.Client{}, err
	}

	if upd.Name != nil {
		if strings.TrimSpace(*upd.Name) == "" {
			return domain.Client{}, ErrInvalidClient
		}
		client.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Company != nil {
		client.Company = strings.TrimSpace(*upd.Company)
	}
	if upd.ContactEmail != nil {
		if normalizeEmail(*upd.ContactEmail) == "" {
			return domain.Client{}, ErrInvalidClient
		}
		client.ContactEmail = normalizeEmail(*upd.ContactEmail)
	}
	if upd.ContactPhone != nil {
		client.ContactPhone = strings.TrimSpace(*upd.ContactPhone)
	}

	if err := s.Store.Clients().UpdateClient(ctx, client); err != nil {
		return domain.Client{}, err
	}
	return s.GetClient(ctx, id, agencyID)
}

// DeleteClient refuses while the client still owns projects; callers must
// delete those first.
func (s *ClientService) DeleteClient(ctx context.Context, id, agencyID string) error {
	if _, err := s.GetClient(ctx, id, agencyID); err != nil {
		return err
	}

	n, err := s.Store.Projects().CountProjectsByClient(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrClientHasProjects
	}

	return s.Store.Clients().DeleteClient(ctx, id)
}

// ResetClientPassword regenerates the portal user's password and returns the
// new plaintext exactly once.
func (s *ClientService) ResetClientPassword(ctx context.Context, clientID, agencyID string) (string, error) {
	log := slogx.FromContext(ctx)

	if _, err := s.GetClient(ctx, clientID, agencyID); err != nil {
		return "", err
	}

	user, err := s.Store.Users().GetUserByClientID(ctx, clientID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrNoPortalUser
		}
		return "", err
	}

	password, err := cryptox.GeneratePassword()
	if err != nil {
		return "", err
	}
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return "", err
	}

	if err := s.Store.Users().UpdatePasswordHash(ctx, user.ID, hash); err != nil {
		return "", err
	}

	log.Info("portal password reset",
		slog.String("client_id", clientID),
		slog.String("user_id", user.ID),
	)
	return password, nil
}
