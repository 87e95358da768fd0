package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/Ivannn15/agencyroom/internal/domain"
	"github.com/Ivannn15/agencyroom/internal/store"
	"github.com/Ivannn15/agencyroom/pkg/idx"
	"github.com/Ivannn15/agencyroom/pkg/slogx"
)

var (
	ErrProjectNotFound   = errors.New("project not found")
	ErrProjectHasReports = errors.New("project still has reports")
	ErrInvalidProject    = errors.New("invalid project request")
)

// ProjectService is agency-scoped CRUD over projects. Agency ownership is
// transitive through the owning client, checked on every operation.
type ProjectService struct {
	Store store.Store
}

// ProjectUpdate carries the patchable project fields; nil means "leave as is".
type ProjectUpdate struct {
	Name   *string
	Status *domain.ProjectStatus
	Notes  *string
}

func (s *ProjectService) CreateProject(ctx context.Context, agencyID, clientID, name string, status domain.ProjectStatus, notes string) (domain.ProjectDetail, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ProjectDetail{}, ErrInvalidProject
	}
	if status == "" {
		status = domain.ProjectActive
	}
	if !status.Valid() {
		return domain.ProjectDetail{}, ErrInvalidProject
	}

	// The target client must belong to the caller's agency.
	if _, err := s.Store.Clients().GetClient(ctx, clientID, agencyID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.ProjectDetail{}, ErrClientNotFound
		}
		return domain.ProjectDetail{}, err
	}

	now := time.Now().UTC()
	project := domain.Project{
		ID:        idx.New().String(),
		ClientID:  clientID,
		Name:      name,
		Status:    status,
		Notes:     strings.TrimSpace(notes),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Projects().CreateProject(ctx, project); err != nil {
		return domain.ProjectDetail{}, err
	}

	slogx.FromContext(ctx).Info("project created",
		slog.String("project_id", project.ID),
		slog.String("client_id", clientID),
	)
	return s.GetProject(ctx, project.ID, agencyID)
}

// ListProjects returns the agency's projects, optionally narrowed to one
// client. A clientID from another agency simply yields an empty list.
func (s *ProjectService) ListProjects(ctx context.Context, agencyID, clientID string) ([]domain.ProjectDetail, error) {
	return s.Store.Projects().ListProjects(ctx, agencyID, clientID)
}

func (s *ProjectService) GetProject(ctx context.Context, id, agencyID string) (domain.ProjectDetail, error) {
	detail, err := s.Store.Projects().GetProject(ctx, id, agencyID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.ProjectDetail{}, ErrProjectNotFound
	}
	return detail, err
}

func (s *ProjectService) UpdateProject(ctx context.Context, id, agencyID string, upd ProjectUpdate) (domain.ProjectDetail, error) {
	detail, err := s.GetProject(ctx, id, agencyID)
	if err != nil {
		return domain.ProjectDetail{}, err
	}

	project := detail.Project
	if upd.Name != nil {
		if strings.TrimSpace(*upd.Name) == "" {
			return domain.ProjectDetail{}, ErrInvalidProject
		}
		project.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Status != nil {
		if !upd.Status.Valid() {
			return domain.ProjectDetail{}, ErrInvalidProject
		}
		project.Status = *upd.Status
	}
	if upd.Notes != nil {
		project.Notes = strings.TrimSpace(*upd.Notes)
	}

	if err := s.Store.Projects().UpdateProject(ctx, project); err != nil {
		return domain.ProjectDetail{}, err
	}
	return s.GetProject(ctx, id, agencyID)
}

// DeleteProject refuses while the project still has reports.
func (s *ProjectService) DeleteProject(ctx context.Context, id, agencyID string) error {
	if _, err := s.GetProject(ctx, id, agencyID); err != nil {
		return err
	}

	n, err := s.Store.Reports().CountReportsByProject(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrProjectHasReports
	}

	return s.Store.Projects().DeleteProject(ctx, id)
}
