package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/Ivannn15/agencyroom/internal/domain"
)

type invitesRepo struct {
	db dbtx
}

const inviteColumns = `id, token_hash, client_id, agency_id, email, created_by_user_id, expires_at, used_at, created_at, updated_at`

func scanInvite(row interface{ Scan(...any) error }) (domain.ClientInvite, error) {
	var (
		inv    domain.ClientInvite
		usedAt sql.NullTime
	)
	err := row.Scan(&inv.ID, &inv.TokenHash, &inv.ClientID, &inv.AgencyID, &inv.Email,
		&inv.CreatedByUserID, &inv.ExpiresAt, &usedAt, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return domain.ClientInvite{}, err
	}
	inv.UsedAt = mapNullTimePtr(usedAt)
	return inv, nil
}

func (r *invitesRepo) CreateInvite(ctx context.Context, inv domain.ClientInvite) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO client_invites (id, token_hash, client_id, agency_id, email, created_by_user_id,
			expires_at, used_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.TokenHash, inv.ClientID, inv.AgencyID, inv.Email, inv.CreatedByUserID,
		inv.ExpiresAt, mapOptionalTime(inv.UsedAt), inv.CreatedAt, inv.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *invitesRepo) GetInviteByTokenHash(ctx context.Context, hash string) (domain.ClientInvite, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+inviteColumns+` FROM client_invites WHERE token_hash = ?`, hash)
	inv, err := scanInvite(row)
	return inv, mapNotFound(err)
}

func (r *invitesRepo) GetInviteByID(ctx context.Context, id string) (domain.ClientInvite, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+inviteColumns+` FROM client_invites WHERE id = ?`, id)
	inv, err := scanInvite(row)
	return inv, mapNotFound(err)
}

func (r *invitesRepo) MarkInviteUsed(ctx context.Context, id string, usedAt time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE client_invites SET used_at = ?, updated_at = ? WHERE id = ? AND used_at IS NULL`,
		usedAt, now(), id,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *invitesRepo) DeleteExpiredInvites(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM client_invites WHERE used_at IS NULL AND expires_at < ?`, now())
	return err
}
