package service

import (
	"context"
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/mvptracker/internal/tracker"
	"github.com/mmynk/mvptracker/pkg/api"
)

func (s *TrackerService) GenerateInviteCode(ctx context.Context, _ *connect.Request[api.Empty]) (*connect.Response[api.InviteCodeResponse], error) {
	code, err := s.tracker.GenerateInviteCode(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.InviteCodeResponse{Code: code}), nil
}

// SubmitRSVP redeems an invite code. Each code is accepted once.
func (s *TrackerService) SubmitRSVP(ctx context.Context, req *connect.Request[api.SubmitRSVPRequest]) (*connect.Response[api.Empty], error) {
	err := s.tracker.SubmitRSVP(ctx, req.Msg.Name, req.Msg.Attending, req.Msg.InviteCode)
	if s.metrics != nil {
		switch {
		case err == nil:
			s.metrics.ObserveRedemption("accepted")
		case errors.Is(err, tracker.ErrInvalidCode):
			s.metrics.ObserveRedemption("rejected")
		}
	}
	if err != nil {
		return nil, toConnectError(err)
	}
	return empty(), nil
}

func (s *TrackerService) GetAllRSVPs(ctx context.Context, _ *connect.Request[api.Empty]) (*connect.Response[api.RSVPsResponse], error) {
	rsvps, err := s.tracker.GetAllRSVPs(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.RSVPsResponse{RSVPs: rsvps}), nil
}

func (s *TrackerService) GetInviteCodes(ctx context.Context, _ *connect.Request[api.Empty]) (*connect.Response[api.InviteCodesResponse], error) {
	codes, err := s.tracker.GetInviteCodes(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.InviteCodesResponse{InviteCodes: codes}), nil
}
