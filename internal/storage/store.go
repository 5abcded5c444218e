// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/mvptracker/internal/models"
)

var (
	// ErrNotFound is returned when an identifier does not name a live record.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a caller-supplied identifier is already taken,
	// or when an invite code has already been redeemed.
	ErrConflict = errors.New("conflict")
)

// Store defines the interface for tracker storage operations.
// This abstraction allows swapping storage backends (memory, SQLite)
// without changing the tracker layer.
//
// Every mutating method is atomic: referential checks and the write they guard
// happen in one critical section, so no caller observes a partial write.
type Store interface {
	// CreateUseCase assigns a fresh UcID, checks that PhaseID and MvpReleaseID
	// resolve, and persists the use case. uc.UcID is populated on success.
	CreateUseCase(ctx context.Context, uc *models.UseCase) error

	// GetUseCase returns ErrNotFound if no use case has the given ID.
	GetUseCase(ctx context.Context, ucID string) (*models.UseCase, error)

	// UpdateUseCase replaces every mutable field. CreatedDate is preserved from
	// the stored record regardless of the value passed in.
	UpdateUseCase(ctx context.Context, uc *models.UseCase) error

	DeleteUseCase(ctx context.Context, ucID string) error

	// ListUseCases returns use cases in insertion order.
	ListUseCases(ctx context.Context) ([]models.UseCase, error)

	CreatePhase(ctx context.Context, phase *models.Phase) error
	GetPhase(ctx context.Context, phaseID string) (*models.Phase, error)
	UpdatePhase(ctx context.Context, phase *models.Phase) error
	DeletePhase(ctx context.Context, phaseID string) error
	ListPhases(ctx context.Context) ([]models.Phase, error)

	CreateRelease(ctx context.Context, release *models.Release) error
	GetRelease(ctx context.Context, releaseID string) (*models.Release, error)
	UpdateRelease(ctx context.Context, release *models.Release) error
	DeleteRelease(ctx context.Context, releaseID string) error
	ListReleases(ctx context.Context) ([]models.Release, error)

	// Snapshot reads all three planning collections consistently.
	Snapshot(ctx context.Context) (*models.MVPRelease, error)

	// CreateInviteCode returns ErrConflict if the code already exists.
	CreateInviteCode(ctx context.Context, code *models.InviteCode) error
	ListInviteCodes(ctx context.Context) ([]models.InviteCode, error)

	// RedeemInviteCode marks the code used and appends the RSVP in one step.
	// It returns ErrNotFound for an unknown code and ErrConflict for a used one.
	RedeemInviteCode(ctx context.Context, rsvp *models.RSVP) error
	ListRSVPs(ctx context.Context) ([]models.RSVP, error)

	// GetProfile returns nil and no error when the identity has no profile.
	GetProfile(ctx context.Context, identity string) (*models.UserProfile, error)
	SaveProfile(ctx context.Context, identity string, profile *models.UserProfile) error

	// GetRole returns ok=false when the identity has no explicit assignment.
	GetRole(ctx context.Context, identity string) (role models.UserRole, ok bool, err error)
	SetRole(ctx context.Context, identity string, role models.UserRole) error
	// CountAdmins reports how many identities hold the admin role.
	CountAdmins(ctx context.Context) (int, error)

	// GetAppConfig returns ErrNotFound until the config has been initialized.
	GetAppConfig(ctx context.Context) (*models.AppConfig, error)
	// InitAppConfig stores the singleton only if it does not exist yet;
	// otherwise it returns ErrConflict.
	InitAppConfig(ctx context.Context, cfg *models.AppConfig) error
	// PutAppConfig overwrites the singleton, returning ErrNotFound if it was
	// never initialized.
	PutAppConfig(ctx context.Context, cfg *models.AppConfig) error

	// Close releases any resources held by the store.
	Close() error
}
