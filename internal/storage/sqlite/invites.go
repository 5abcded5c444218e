package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/mmynk/mvptracker/internal/models"
	"github.com/mmynk/mvptracker/internal/storage"
)

// CreateInviteCode persists a new, unused invite code.
func (s *SQLiteStore) CreateInviteCode(ctx context.Context, code *models.InviteCode) error {
	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		taken, err := exists(ctx, tx, "invite_codes", "code", code.Code)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%w: invite code %s already exists", storage.ErrConflict, code.Code)
		}

		_, err = tx.ExecContext(ctx,
			"INSERT INTO invite_codes (code, created, used) VALUES (?, ?, ?)",
			code.Code, code.Created, code.Used,
		)
		if err != nil {
			return fmt.Errorf("failed to insert invite code: %w", err)
		}
		return nil
	})
}

// ListInviteCodes retrieves all invite codes, oldest first.
func (s *SQLiteStore) ListInviteCodes(ctx context.Context) ([]models.InviteCode, error) {
	codes := []models.InviteCode{}
	if err := s.db.SelectContext(ctx, &codes, "SELECT code, created, used FROM invite_codes ORDER BY rowid"); err != nil {
		return nil, fmt.Errorf("failed to list invite codes: %w", err)
	}
	return codes, nil
}

// RedeemInviteCode marks the code used and records the RSVP in one transaction.
func (s *SQLiteStore) RedeemInviteCode(ctx context.Context, rsvp *models.RSVP) error {
	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		var used bool
		err := tx.GetContext(ctx, &used, "SELECT used FROM invite_codes WHERE code = ?", rsvp.InviteCode)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: invite code %s", storage.ErrNotFound, rsvp.InviteCode)
		}
		if err != nil {
			return fmt.Errorf("failed to get invite code: %w", err)
		}
		if used {
			return fmt.Errorf("%w: invite code %s already used", storage.ErrConflict, rsvp.InviteCode)
		}

		if _, err := tx.ExecContext(ctx, "UPDATE invite_codes SET used = 1 WHERE code = ?", rsvp.InviteCode); err != nil {
			return fmt.Errorf("failed to mark invite code used: %w", err)
		}

		_, err = tx.NamedExecContext(ctx,
			`INSERT INTO rsvps (name, attending, invite_code, timestamp)
			 VALUES (:name, :attending, :invite_code, :timestamp)`,
			rsvp,
		)
		if err != nil {
			return fmt.Errorf("failed to insert rsvp: %w", err)
		}
		return nil
	})
}

// ListRSVPs retrieves all RSVPs in submission order.
func (s *SQLiteStore) ListRSVPs(ctx context.Context) ([]models.RSVP, error) {
	rsvps := []models.RSVP{}
	if err := s.db.SelectContext(ctx, &rsvps,
		"SELECT name, attending, invite_code, timestamp FROM rsvps ORDER BY rowid",
	); err != nil {
		return nil, fmt.Errorf("failed to list rsvps: %w", err)
	}
	return rsvps, nil
}
