package service

import (
	"context"

	"connectrpc.com/connect"

	"github.com/mmynk/mvptracker/internal/auth"
	"github.com/mmynk/mvptracker/pkg/api"
)

func (s *TrackerService) GetAppConfig(ctx context.Context, _ *connect.Request[api.Empty]) (*connect.Response[api.AppConfigResponse], error) {
	cfg, err := s.tracker.GetAppConfig(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.AppConfigResponse{Config: *cfg}), nil
}

func (s *TrackerService) InitializeAppConfig(ctx context.Context, req *connect.Request[api.AppConfigRequest]) (*connect.Response[api.Empty], error) {
	if err := s.tracker.InitializeAppConfig(ctx, req.Msg.Config); err != nil {
		return nil, toConnectError(err)
	}
	return empty(), nil
}

func (s *TrackerService) UpdateAppConfig(ctx context.Context, req *connect.Request[api.AppConfigRequest]) (*connect.Response[api.Empty], error) {
	if err := s.tracker.UpdateAppConfig(ctx, req.Msg.Config); err != nil {
		return nil, toConnectError(err)
	}
	return empty(), nil
}

// VerifyAdminPasscode checks the admin passcode. On a match an identified
// caller gets a fresh token carrying the admin session flag. The flag is
// display state only; it never changes the caller's role.
func (s *TrackerService) VerifyAdminPasscode(ctx context.Context, req *connect.Request[api.VerifyPasscodeRequest]) (*connect.Response[api.VerifyPasscodeResponse], error) {
	ok, err := s.tracker.VerifyAdminPasscode(ctx, req.Msg.Passcode)
	if err != nil {
		return nil, toConnectError(err)
	}

	resp := &api.VerifyPasscodeResponse{Valid: ok}
	identity := auth.Identity(ctx)
	if ok && identity != "" && s.jwtManager != nil {
		token, err := s.jwtManager.Generate(identity, true)
		if err != nil {
			s.logger.Error("Failed to generate token", "identity", identity, "error", err)
			return nil, connect.NewError(connect.CodeInternal, err)
		}
		resp.Token = token
	}
	return connect.NewResponse(resp), nil
}
