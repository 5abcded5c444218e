package service

import (
	"context"

	"connectrpc.com/connect"

	"github.com/mmynk/mvptracker/internal/models"
	"github.com/mmynk/mvptracker/pkg/api"
)

func useCasesResponse(useCases []models.UseCase, err error) (*connect.Response[api.UseCasesResponse], error) {
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.UseCasesResponse{UseCases: useCases}), nil
}

func phasesResponse(phases []models.Phase, err error) (*connect.Response[api.PhasesResponse], error) {
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.PhasesResponse{Phases: phases}), nil
}

func (s *TrackerService) FilterUseCasesByPhase(ctx context.Context, req *connect.Request[api.PhaseIDRequest]) (*connect.Response[api.UseCasesResponse], error) {
	return useCasesResponse(s.tracker.FilterUseCasesByPhase(ctx, req.Msg.PhaseID))
}

func (s *TrackerService) FilterUseCasesByRelease(ctx context.Context, req *connect.Request[api.ReleaseIDRequest]) (*connect.Response[api.UseCasesResponse], error) {
	return useCasesResponse(s.tracker.FilterUseCasesByRelease(ctx, req.Msg.ReleaseID))
}

func (s *TrackerService) FilterUseCasesByPriority(ctx context.Context, req *connect.Request[api.PriorityRequest]) (*connect.Response[api.UseCasesResponse], error) {
	return useCasesResponse(s.tracker.FilterUseCasesByPriority(ctx, req.Msg.Priority))
}

func (s *TrackerService) FilterUseCasesByStatus(ctx context.Context, req *connect.Request[api.StatusRequest]) (*connect.Response[api.UseCasesResponse], error) {
	return useCasesResponse(s.tracker.FilterUseCasesByStatus(ctx, req.Msg.Status))
}

func (s *TrackerService) SortUseCasesByLastUpdated(ctx context.Context, _ *connect.Request[api.Empty]) (*connect.Response[api.UseCasesResponse], error) {
	return useCasesResponse(s.tracker.SortUseCasesByLastUpdated(ctx))
}

func (s *TrackerService) SortPhasesByStatus(ctx context.Context, _ *connect.Request[api.Empty]) (*connect.Response[api.PhasesResponse], error) {
	return phasesResponse(s.tracker.SortPhasesByStatus(ctx))
}

func (s *TrackerService) SortReleasesByStatus(ctx context.Context, _ *connect.Request[api.Empty]) (*connect.Response[api.ReleasesResponse], error) {
	releases, err := s.tracker.SortReleasesByStatus(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.ReleasesResponse{Releases: releases}), nil
}

func (s *TrackerService) GetPhasesByReleaseID(ctx context.Context, req *connect.Request[api.ReleaseIDRequest]) (*connect.Response[api.PhasesResponse], error) {
	return phasesResponse(s.tracker.GetPhasesByReleaseID(ctx, req.Msg.ReleaseID))
}

// GetAllMVPReleases returns use cases, releases and phases from one snapshot.
func (s *TrackerService) GetAllMVPReleases(ctx context.Context, _ *connect.Request[api.Empty]) (*connect.Response[api.MVPRelease], error) {
	plan, err := s.tracker.GetAllMVPReleases(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(plan), nil
}

func (s *TrackerService) SearchUseCases(ctx context.Context, req *connect.Request[api.SearchCriteria]) (*connect.Response[api.UseCasesResponse], error) {
	return useCasesResponse(s.tracker.SearchUseCases(ctx, *req.Msg))
}

func (s *TrackerService) GetDashboardStats(ctx context.Context, _ *connect.Request[api.Empty]) (*connect.Response[api.DashboardStats], error) {
	stats, err := s.tracker.GetDashboardStats(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(stats), nil
}
