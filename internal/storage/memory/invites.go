package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/mmynk/mvptracker/internal/models"
	"github.com/mmynk/mvptracker/internal/storage"
)

func (s *Store) CreateInviteCode(ctx context.Context, code *models.InviteCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.invites.get(code.Code); taken {
		return fmt.Errorf("%w: invite code %s already exists", storage.ErrConflict, code.Code)
	}
	s.invites.insert(code.Code, *code)
	return nil
}

func (s *Store) ListInviteCodes(ctx context.Context) ([]models.InviteCode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.invites.values(), nil
}

// RedeemInviteCode flips the code to used and records the RSVP together.
func (s *Store) RedeemInviteCode(ctx context.Context, rsvp *models.RSVP) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	code, ok := s.invites.get(rsvp.InviteCode)
	if !ok {
		return fmt.Errorf("%w: invite code %s", storage.ErrNotFound, rsvp.InviteCode)
	}
	if code.Used {
		return fmt.Errorf("%w: invite code %s already used", storage.ErrConflict, rsvp.InviteCode)
	}
	code.Used = true
	s.invites.rows[code.Code] = code
	s.rsvps = append(s.rsvps, *rsvp)
	return nil
}

func (s *Store) ListRSVPs(ctx context.Context) ([]models.RSVP, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.rsvps), nil
}
