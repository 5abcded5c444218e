package service

import (
	"context"

	"connectrpc.com/connect"

	"github.com/mmynk/mvptracker/pkg/api"
)

func (s *TrackerService) CreatePhase(ctx context.Context, req *connect.Request[api.PhaseRequest]) (*connect.Response[api.Empty], error) {
	s.logger.Debug("CreatePhase request received", "phase_id", req.Msg.Phase.PhaseID)

	if err := s.tracker.CreatePhase(ctx, req.Msg.Phase); err != nil {
		return nil, toConnectError(err)
	}
	return empty(), nil
}

func (s *TrackerService) GetPhase(ctx context.Context, req *connect.Request[api.PhaseIDRequest]) (*connect.Response[api.PhaseResponse], error) {
	phase, err := s.tracker.GetPhase(ctx, req.Msg.PhaseID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.PhaseResponse{Phase: *phase}), nil
}

func (s *TrackerService) UpdatePhase(ctx context.Context, req *connect.Request[api.PhaseRequest]) (*connect.Response[api.Empty], error) {
	if err := s.tracker.UpdatePhase(ctx, req.Msg.Phase); err != nil {
		return nil, toConnectError(err)
	}
	return empty(), nil
}

func (s *TrackerService) ChangePhaseRelease(ctx context.Context, req *connect.Request[api.ChangePhaseReleaseRequest]) (*connect.Response[api.Empty], error) {
	if err := s.tracker.ChangePhaseRelease(ctx, req.Msg.PhaseID, req.Msg.NewReleaseID); err != nil {
		return nil, toConnectError(err)
	}
	return empty(), nil
}

// DeletePhase removes a phase without touching the use cases in it.
func (s *TrackerService) DeletePhase(ctx context.Context, req *connect.Request[api.PhaseIDRequest]) (*connect.Response[api.Empty], error) {
	s.logger.Debug("DeletePhase request received", "phase_id", req.Msg.PhaseID)

	if err := s.tracker.DeletePhase(ctx, req.Msg.PhaseID); err != nil {
		return nil, toConnectError(err)
	}
	return empty(), nil
}

func (s *TrackerService) GetAllPhases(ctx context.Context, _ *connect.Request[api.Empty]) (*connect.Response[api.PhasesResponse], error) {
	phases, err := s.tracker.GetAllPhases(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.PhasesResponse{Phases: phases}), nil
}
