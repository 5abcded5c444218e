package tracker

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mmynk/mvptracker/internal/access"
	"github.com/mmynk/mvptracker/internal/models"
	"github.com/mmynk/mvptracker/internal/storage"
)

// maxCodeAttempts bounds regeneration after a code collision.
const maxCodeAttempts = 8

// GenerateInviteCode creates and stores a fresh unused invite code. Admin only.
func (t *Tracker) GenerateInviteCode(ctx context.Context) (string, error) {
	identity, err := t.authorize(ctx, access.ActionAdmin)
	if err != nil {
		return "", err
	}

	for range maxCodeAttempts {
		code := &models.InviteCode{Code: t.newCode(), Created: t.timestamp()}
		err := t.store.CreateInviteCode(ctx, code)
		if errors.Is(err, storage.ErrConflict) {
			t.logger.Debug("Invite code collision, regenerating", "code", code.Code)
			continue
		}
		if err != nil {
			return "", err
		}

		t.logger.Info("Invite code generated", "code", code.Code, "identity", identity)
		return code.Code, nil
	}
	return "", fmt.Errorf("failed to generate a unique invite code after %d attempts", maxCodeAttempts)
}

// SubmitRSVP redeems code and records the answer. Anyone holding an unused
// code may call it; each code is accepted exactly once.
func (t *Tracker) SubmitRSVP(ctx context.Context, name string, attending bool, code string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return invalidArgument("name is required")
	}
	if code == "" {
		return fmt.Errorf("%w: empty code", ErrInvalidCode)
	}

	rsvp := &models.RSVP{
		Name:       name,
		Attending:  attending,
		InviteCode: code,
		Timestamp:  t.timestamp(),
	}
	err := t.store.RedeemInviteCode(ctx, rsvp)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("%w: unknown code %s", ErrInvalidCode, code)
	case errors.Is(err, storage.ErrConflict):
		return fmt.Errorf("%w: code %s already used", ErrInvalidCode, code)
	case err != nil:
		return err
	}

	t.logger.Info("RSVP recorded", "code", code, "attending", attending)
	return nil
}

// GetAllRSVPs lists every RSVP in submission order. Admin only.
func (t *Tracker) GetAllRSVPs(ctx context.Context) ([]models.RSVP, error) {
	if _, err := t.authorize(ctx, access.ActionAdmin); err != nil {
		return nil, err
	}
	return t.store.ListRSVPs(ctx)
}

// GetInviteCodes lists every invite code with its used flag. Admin only.
func (t *Tracker) GetInviteCodes(ctx context.Context) ([]models.InviteCode, error) {
	if _, err := t.authorize(ctx, access.ActionAdmin); err != nil {
		return nil, err
	}
	return t.store.ListInviteCodes(ctx)
}
