package service

import (
	"context"

	"connectrpc.com/connect"

	"github.com/mmynk/mvptracker/pkg/api"
)

// CreateUseCase creates a use case and returns its server-assigned ID.
func (s *TrackerService) CreateUseCase(ctx context.Context, req *connect.Request[api.UseCaseRequest]) (*connect.Response[api.CreateUseCaseResponse], error) {
	s.logger.Debug("CreateUseCase request received", "title", req.Msg.UseCase.Title)

	id, err := s.tracker.CreateUseCase(ctx, req.Msg.UseCase)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.CreateUseCaseResponse{UcID: id}), nil
}

// GetUseCase retrieves a use case by ID.
func (s *TrackerService) GetUseCase(ctx context.Context, req *connect.Request[api.UseCaseIDRequest]) (*connect.Response[api.UseCaseResponse], error) {
	uc, err := s.tracker.GetUseCase(ctx, req.Msg.UcID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.UseCaseResponse{UseCase: *uc}), nil
}

func (s *TrackerService) UpdateUseCase(ctx context.Context, req *connect.Request[api.UseCaseRequest]) (*connect.Response[api.Empty], error) {
	s.logger.Debug("UpdateUseCase request received", "uc_id", req.Msg.UseCase.UcID)

	if err := s.tracker.UpdateUseCase(ctx, req.Msg.UseCase); err != nil {
		return nil, toConnectError(err)
	}
	return empty(), nil
}

func (s *TrackerService) ChangeUseCasePhase(ctx context.Context, req *connect.Request[api.ChangeUseCasePhaseRequest]) (*connect.Response[api.Empty], error) {
	if err := s.tracker.ChangeUseCasePhase(ctx, req.Msg.UcID, req.Msg.NewPhaseID); err != nil {
		return nil, toConnectError(err)
	}
	return empty(), nil
}

func (s *TrackerService) DeleteUseCase(ctx context.Context, req *connect.Request[api.UseCaseIDRequest]) (*connect.Response[api.Empty], error) {
	s.logger.Debug("DeleteUseCase request received", "uc_id", req.Msg.UcID)

	if err := s.tracker.DeleteUseCase(ctx, req.Msg.UcID); err != nil {
		return nil, toConnectError(err)
	}
	return empty(), nil
}

// GetAllUseCases lists use cases in insertion order.
func (s *TrackerService) GetAllUseCases(ctx context.Context, _ *connect.Request[api.Empty]) (*connect.Response[api.UseCasesResponse], error) {
	useCases, err := s.tracker.GetAllUseCases(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.UseCasesResponse{UseCases: useCases}), nil
}
