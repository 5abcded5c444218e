// Package service implements the tracker RPC handlers on top of tracker.Tracker.
package service

import (
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/mvptracker/internal/auth"
	"github.com/mmynk/mvptracker/internal/metrics"
	"github.com/mmynk/mvptracker/internal/models"
	"github.com/mmynk/mvptracker/internal/tracker"
	"github.com/mmynk/mvptracker/pkg/api"
)

// Ensure TrackerService implements the generated-style handler interface.
var _ api.TrackerServiceHandler = (*TrackerService)(nil)

// TrackerService implements api.TrackerServiceHandler.
type TrackerService struct {
	tracker    *tracker.Tracker
	jwtManager *auth.JWTManager
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

// NewTrackerService creates the RPC service. jwtManager and m may be nil: a
// nil jwtManager disables re-issuing tokens after passcode verification.
func NewTrackerService(t *tracker.Tracker, jwtManager *auth.JWTManager, m *metrics.Metrics, logger *slog.Logger) *TrackerService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TrackerService{
		tracker:    t,
		jwtManager: jwtManager,
		metrics:    m,
		logger:     logger,
	}
}

// toConnectError maps tracker errors onto connect codes and tags them with
// their kind.
func toConnectError(err error) error {
	switch {
	case errors.Is(err, tracker.ErrNotFound):
		return api.NewError(api.KindNotFound, err)
	case errors.Is(err, tracker.ErrConflict):
		return api.NewError(api.KindConflict, err)
	case errors.Is(err, tracker.ErrForbidden):
		return api.NewError(api.KindForbidden, err)
	case errors.Is(err, tracker.ErrInvalidCode):
		return api.NewError(api.KindInvalidCode, err)
	case errors.Is(err, tracker.ErrInvalidState):
		return api.NewError(api.KindInvalidState, err)
	case errors.Is(err, tracker.ErrInvalidArgument), errors.Is(err, models.ErrInvalidEnum):
		return api.NewError(api.KindInvalidArgument, err)
	}
	return api.NewError(api.KindInternal, err)
}

func empty() *connect.Response[api.Empty] {
	return connect.NewResponse(&api.Empty{})
}
