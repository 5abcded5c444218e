// Package tracker implements every tracker operation: it authorizes the
// caller through the access gate, then reads or writes the store.
//
// The caller identity is taken from the context (see auth.WithIdentity).
package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/mvptracker/internal/access"
	"github.com/mmynk/mvptracker/internal/auth"
	"github.com/mmynk/mvptracker/internal/storage"
)

// Error kinds. Every error returned by Tracker wraps at most one of these.
var (
	ErrNotFound        = storage.ErrNotFound
	ErrConflict        = storage.ErrConflict
	ErrForbidden       = access.ErrForbidden
	ErrInvalidCode     = errors.New("invalid invite code")
	ErrInvalidState    = errors.New("invalid state")
	ErrInvalidArgument = errors.New("invalid argument")
)

// Tracker is the backend service for use cases, phases and releases.
type Tracker struct {
	store  storage.Store
	gate   *access.Gate
	logger *slog.Logger
	now    func() time.Time

	// newCode generates invite code candidates.
	newCode func() string

	// configMu serializes the app config lifecycle and the admin bootstrap
	// that rides on it.
	configMu sync.Mutex
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithCodeGenerator overrides invite code generation.
func WithCodeGenerator(gen func() string) Option {
	return func(t *Tracker) { t.newCode = gen }
}

// New creates a Tracker over store.
func New(store storage.Store, logger *slog.Logger, opts ...Option) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	t := &Tracker{
		store:   store,
		gate:    access.NewGate(store),
		logger:  logger,
		now:     time.Now,
		newCode: defaultInviteCode,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tracker) timestamp() int64 {
	return t.now().UnixNano()
}

// authorize resolves the caller and checks action against the gate.
func (t *Tracker) authorize(ctx context.Context, action access.Action) (string, error) {
	identity := auth.Identity(ctx)
	if _, err := t.gate.Authorize(ctx, identity, action); err != nil {
		if errors.Is(err, access.ErrForbidden) {
			t.logger.Warn("Request denied", "identity", identity, "action", action.String())
		}
		return identity, err
	}
	return identity, nil
}

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func requireID(kind, id string) error {
	if strings.TrimSpace(id) == "" {
		return invalidArgument("%s id is required", kind)
	}
	return nil
}

func defaultInviteCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}
