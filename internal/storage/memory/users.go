package memory

import (
	"context"
	"fmt"

	"github.com/mmynk/mvptracker/internal/models"
	"github.com/mmynk/mvptracker/internal/storage"
)

func (s *Store) GetProfile(ctx context.Context, identity string) (*models.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.profiles[identity]
	if !ok {
		return nil, nil
	}
	return &profile, nil
}

func (s *Store) SaveProfile(ctx context.Context, identity string, profile *models.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[identity] = *profile
	return nil
}

func (s *Store) GetRole(ctx context.Context, identity string) (models.UserRole, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	role, ok := s.roles[identity]
	return role, ok, nil
}

func (s *Store) SetRole(ctx context.Context, identity string, role models.UserRole) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roles[identity] = role
	return nil
}

func (s *Store) CountAdmins(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, role := range s.roles {
		if role == models.RoleAdmin {
			n++
		}
	}
	return n, nil
}

func (s *Store) GetAppConfig(ctx context.Context) (*models.AppConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.config == nil {
		return nil, fmt.Errorf("%w: app config", storage.ErrNotFound)
	}
	cfg := *s.config
	return &cfg, nil
}

func (s *Store) InitAppConfig(ctx context.Context, cfg *models.AppConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.config != nil {
		return fmt.Errorf("%w: app config already initialized", storage.ErrConflict)
	}
	c := *cfg
	s.config = &c
	return nil
}

func (s *Store) PutAppConfig(ctx context.Context, cfg *models.AppConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.config == nil {
		return fmt.Errorf("%w: app config", storage.ErrNotFound)
	}
	c := *cfg
	s.config = &c
	return nil
}
