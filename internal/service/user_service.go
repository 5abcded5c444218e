package service

import (
	"context"

	"connectrpc.com/connect"

	"github.com/mmynk/mvptracker/internal/auth"
	"github.com/mmynk/mvptracker/pkg/api"
)

func (s *TrackerService) GetCallerUserRole(ctx context.Context, _ *connect.Request[api.Empty]) (*connect.Response[api.RoleResponse], error) {
	role, err := s.tracker.GetCallerUserRole(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.RoleResponse{Role: role}), nil
}

func (s *TrackerService) IsCallerAdmin(ctx context.Context, _ *connect.Request[api.Empty]) (*connect.Response[api.IsAdminResponse], error) {
	isAdmin, err := s.tracker.IsCallerAdmin(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.IsAdminResponse{
		IsAdmin:      isAdmin,
		AdminSession: auth.AdminSession(ctx),
	}), nil
}

func (s *TrackerService) AssignCallerUserRole(ctx context.Context, req *connect.Request[api.AssignRoleRequest]) (*connect.Response[api.Empty], error) {
	if err := s.tracker.AssignCallerUserRole(ctx, req.Msg.Identity, req.Msg.Role); err != nil {
		return nil, toConnectError(err)
	}
	return empty(), nil
}

// GetCallerUserProfile returns a nil profile when the caller has none.
func (s *TrackerService) GetCallerUserProfile(ctx context.Context, _ *connect.Request[api.Empty]) (*connect.Response[api.ProfileResponse], error) {
	profile, err := s.tracker.GetCallerUserProfile(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.ProfileResponse{Profile: profile}), nil
}

func (s *TrackerService) SaveCallerUserProfile(ctx context.Context, req *connect.Request[api.SaveProfileRequest]) (*connect.Response[api.Empty], error) {
	if err := s.tracker.SaveCallerUserProfile(ctx, req.Msg.Profile); err != nil {
		return nil, toConnectError(err)
	}
	return empty(), nil
}

func (s *TrackerService) GetUserProfile(ctx context.Context, req *connect.Request[api.UserProfileRequest]) (*connect.Response[api.ProfileResponse], error) {
	profile, err := s.tracker.GetUserProfile(ctx, req.Msg.Identity)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.ProfileResponse{Profile: profile}), nil
}
