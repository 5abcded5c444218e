// Package memory provides a map-backed implementation of the storage.Store
// interface. All state lives behind a single RWMutex, so every mutation is
// linearizable and readers never see a half-applied write.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/mmynk/mvptracker/internal/models"
	"github.com/mmynk/mvptracker/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// ordered is a map that remembers insertion order.
type ordered[T any] struct {
	keys []string
	rows map[string]T
}

func newOrdered[T any]() ordered[T] {
	return ordered[T]{rows: make(map[string]T)}
}

func (o *ordered[T]) get(key string) (T, bool) {
	v, ok := o.rows[key]
	return v, ok
}

func (o *ordered[T]) insert(key string, v T) {
	o.keys = append(o.keys, key)
	o.rows[key] = v
}

func (o *ordered[T]) remove(key string) {
	delete(o.rows, key)
	if i := slices.Index(o.keys, key); i >= 0 {
		o.keys = slices.Delete(o.keys, i, i+1)
	}
}

func (o *ordered[T]) values() []T {
	out := make([]T, 0, len(o.keys))
	for _, k := range o.keys {
		out = append(out, o.rows[k])
	}
	return out
}

// Store implements storage.Store in memory.
type Store struct {
	mu sync.RWMutex

	useCases ordered[models.UseCase]
	phases   ordered[models.Phase]
	releases ordered[models.Release]
	invites  ordered[models.InviteCode]
	rsvps    []models.RSVP
	profiles map[string]models.UserProfile
	roles    map[string]models.UserRole
	config   *models.AppConfig

	newID func() string
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		useCases: newOrdered[models.UseCase](),
		phases:   newOrdered[models.Phase](),
		releases: newOrdered[models.Release](),
		invites:  newOrdered[models.InviteCode](),
		profiles: make(map[string]models.UserProfile),
		roles:    make(map[string]models.UserRole),
		newID:    uuid.NewString,
	}
}

// Close is a no-op.
func (s *Store) Close() error { return nil }

// checkRefs must be called with s.mu held.
func (s *Store) checkRefs(phaseID, releaseID string) error {
	if _, ok := s.phases.get(phaseID); !ok {
		return fmt.Errorf("%w: phase %s", storage.ErrNotFound, phaseID)
	}
	if _, ok := s.releases.get(releaseID); !ok {
		return fmt.Errorf("%w: release %s", storage.ErrNotFound, releaseID)
	}
	return nil
}

// CreateUseCase stores a new use case under a freshly generated ID.
func (s *Store) CreateUseCase(ctx context.Context, uc *models.UseCase) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkRefs(uc.PhaseID, uc.MvpReleaseID); err != nil {
		return err
	}

	id := s.newID()
	for {
		if _, taken := s.useCases.get(id); !taken {
			break
		}
		id = s.newID()
	}
	uc.UcID = id
	s.useCases.insert(id, *uc)
	return nil
}

func (s *Store) GetUseCase(ctx context.Context, ucID string) (*models.UseCase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	uc, ok := s.useCases.get(ucID)
	if !ok {
		return nil, fmt.Errorf("%w: use case %s", storage.ErrNotFound, ucID)
	}
	return &uc, nil
}

func (s *Store) UpdateUseCase(ctx context.Context, uc *models.UseCase) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.useCases.get(uc.UcID)
	if !ok {
		return fmt.Errorf("%w: use case %s", storage.ErrNotFound, uc.UcID)
	}
	if err := s.checkRefs(uc.PhaseID, uc.MvpReleaseID); err != nil {
		return err
	}
	uc.CreatedDate = existing.CreatedDate
	s.useCases.rows[uc.UcID] = *uc
	return nil
}

func (s *Store) DeleteUseCase(ctx context.Context, ucID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.useCases.get(ucID); !ok {
		return fmt.Errorf("%w: use case %s", storage.ErrNotFound, ucID)
	}
	s.useCases.remove(ucID)
	return nil
}

func (s *Store) ListUseCases(ctx context.Context) ([]models.UseCase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.useCases.values(), nil
}

func (s *Store) CreatePhase(ctx context.Context, phase *models.Phase) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.phases.get(phase.PhaseID); taken {
		return fmt.Errorf("%w: phase %s already exists", storage.ErrConflict, phase.PhaseID)
	}
	if _, ok := s.releases.get(phase.ReleaseID); !ok {
		return fmt.Errorf("%w: release %s", storage.ErrNotFound, phase.ReleaseID)
	}
	s.phases.insert(phase.PhaseID, *phase)
	return nil
}

func (s *Store) GetPhase(ctx context.Context, phaseID string) (*models.Phase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	phase, ok := s.phases.get(phaseID)
	if !ok {
		return nil, fmt.Errorf("%w: phase %s", storage.ErrNotFound, phaseID)
	}
	return &phase, nil
}

func (s *Store) UpdatePhase(ctx context.Context, phase *models.Phase) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.phases.get(phase.PhaseID); !ok {
		return fmt.Errorf("%w: phase %s", storage.ErrNotFound, phase.PhaseID)
	}
	if _, ok := s.releases.get(phase.ReleaseID); !ok {
		return fmt.Errorf("%w: release %s", storage.ErrNotFound, phase.ReleaseID)
	}
	s.phases.rows[phase.PhaseID] = *phase
	return nil
}

// DeletePhase removes the phase only. Use cases that reference it keep the
// dangling PhaseID.
func (s *Store) DeletePhase(ctx context.Context, phaseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.phases.get(phaseID); !ok {
		return fmt.Errorf("%w: phase %s", storage.ErrNotFound, phaseID)
	}
	s.phases.remove(phaseID)
	return nil
}

func (s *Store) ListPhases(ctx context.Context) ([]models.Phase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phases.values(), nil
}

func (s *Store) CreateRelease(ctx context.Context, release *models.Release) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.releases.get(release.ReleaseID); taken {
		return fmt.Errorf("%w: release %s already exists", storage.ErrConflict, release.ReleaseID)
	}
	s.releases.insert(release.ReleaseID, *release)
	return nil
}

func (s *Store) GetRelease(ctx context.Context, releaseID string) (*models.Release, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	release, ok := s.releases.get(releaseID)
	if !ok {
		return nil, fmt.Errorf("%w: release %s", storage.ErrNotFound, releaseID)
	}
	return &release, nil
}

func (s *Store) UpdateRelease(ctx context.Context, release *models.Release) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.releases.get(release.ReleaseID); !ok {
		return fmt.Errorf("%w: release %s", storage.ErrNotFound, release.ReleaseID)
	}
	s.releases.rows[release.ReleaseID] = *release
	return nil
}

func (s *Store) DeleteRelease(ctx context.Context, releaseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.releases.get(releaseID); !ok {
		return fmt.Errorf("%w: release %s", storage.ErrNotFound, releaseID)
	}
	s.releases.remove(releaseID)
	return nil
}

func (s *Store) ListReleases(ctx context.Context) ([]models.Release, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.releases.values(), nil
}

func (s *Store) Snapshot(ctx context.Context) (*models.MVPRelease, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return &models.MVPRelease{
		UseCases: s.useCases.values(),
		Releases: s.releases.values(),
		Phases:   s.phases.values(),
	}, nil
}
