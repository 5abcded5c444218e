package service

import (
	"context"

	"connectrpc.com/connect"

	"github.com/mmynk/mvptracker/pkg/api"
)

func (s *TrackerService) CreateRelease(ctx context.Context, req *connect.Request[api.ReleaseRequest]) (*connect.Response[api.Empty], error) {
	s.logger.Debug("CreateRelease request received", "release_id", req.Msg.Release.ReleaseID)

	if err := s.tracker.CreateRelease(ctx, req.Msg.Release); err != nil {
		return nil, toConnectError(err)
	}
	return empty(), nil
}

func (s *TrackerService) GetRelease(ctx context.Context, req *connect.Request[api.ReleaseIDRequest]) (*connect.Response[api.ReleaseResponse], error) {
	release, err := s.tracker.GetRelease(ctx, req.Msg.ReleaseID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.ReleaseResponse{Release: *release}), nil
}

func (s *TrackerService) UpdateRelease(ctx context.Context, req *connect.Request[api.ReleaseRequest]) (*connect.Response[api.Empty], error) {
	if err := s.tracker.UpdateRelease(ctx, req.Msg.Release); err != nil {
		return nil, toConnectError(err)
	}
	return empty(), nil
}

func (s *TrackerService) DeleteRelease(ctx context.Context, req *connect.Request[api.ReleaseIDRequest]) (*connect.Response[api.Empty], error) {
	s.logger.Debug("DeleteRelease request received", "release_id", req.Msg.ReleaseID)

	if err := s.tracker.DeleteRelease(ctx, req.Msg.ReleaseID); err != nil {
		return nil, toConnectError(err)
	}
	return empty(), nil
}

func (s *TrackerService) GetAllReleases(ctx context.Context, _ *connect.Request[api.Empty]) (*connect.Response[api.ReleasesResponse], error) {
	releases, err := s.tracker.GetAllReleases(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.ReleasesResponse{Releases: releases}), nil
}
