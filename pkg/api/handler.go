package api

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

// TrackerServiceHandler is implemented by the server side of the service.
type TrackerServiceHandler interface {
	// CreateUseCase stores a new use case and returns its server-assigned ID.
	CreateUseCase(context.Context, *connect.Request[UseCaseRequest]) (*connect.Response[CreateUseCaseResponse], error)
	GetUseCase(context.Context, *connect.Request[UseCaseIDRequest]) (*connect.Response[UseCaseResponse], error)
	UpdateUseCase(context.Context, *connect.Request[UseCaseRequest]) (*connect.Response[Empty], error)
	ChangeUseCasePhase(context.Context, *connect.Request[ChangeUseCasePhaseRequest]) (*connect.Response[Empty], error)
	DeleteUseCase(context.Context, *connect.Request[UseCaseIDRequest]) (*connect.Response[Empty], error)
	GetAllUseCases(context.Context, *connect.Request[Empty]) (*connect.Response[UseCasesResponse], error)
	CreatePhase(context.Context, *connect.Request[PhaseRequest]) (*connect.Response[Empty], error)
	GetPhase(context.Context, *connect.Request[PhaseIDRequest]) (*connect.Response[PhaseResponse], error)
	UpdatePhase(context.Context, *connect.Request[PhaseRequest]) (*connect.Response[Empty], error)
	ChangePhaseRelease(context.Context, *connect.Request[ChangePhaseReleaseRequest]) (*connect.Response[Empty], error)
	DeletePhase(context.Context, *connect.Request[PhaseIDRequest]) (*connect.Response[Empty], error)
	GetAllPhases(context.Context, *connect.Request[Empty]) (*connect.Response[PhasesResponse], error)
	CreateRelease(context.Context, *connect.Request[ReleaseRequest]) (*connect.Response[Empty], error)
	GetRelease(context.Context, *connect.Request[ReleaseIDRequest]) (*connect.Response[ReleaseResponse], error)
	UpdateRelease(context.Context, *connect.Request[ReleaseRequest]) (*connect.Response[Empty], error)
	DeleteRelease(context.Context, *connect.Request[ReleaseIDRequest]) (*connect.Response[Empty], error)
	GetAllReleases(context.Context, *connect.Request[Empty]) (*connect.Response[ReleasesResponse], error)
	FilterUseCasesByPhase(context.Context, *connect.Request[PhaseIDRequest]) (*connect.Response[UseCasesResponse], error)
	FilterUseCasesByRelease(context.Context, *connect.Request[ReleaseIDRequest]) (*connect.Response[UseCasesResponse], error)
	FilterUseCasesByPriority(context.Context, *connect.Request[PriorityRequest]) (*connect.Response[UseCasesResponse], error)
	FilterUseCasesByStatus(context.Context, *connect.Request[StatusRequest]) (*connect.Response[UseCasesResponse], error)
	SortUseCasesByLastUpdated(context.Context, *connect.Request[Empty]) (*connect.Response[UseCasesResponse], error)
	SortPhasesByStatus(context.Context, *connect.Request[Empty]) (*connect.Response[PhasesResponse], error)
	SortReleasesByStatus(context.Context, *connect.Request[Empty]) (*connect.Response[ReleasesResponse], error)
	GetPhasesByReleaseID(context.Context, *connect.Request[ReleaseIDRequest]) (*connect.Response[PhasesResponse], error)
	GetAllMVPReleases(context.Context, *connect.Request[Empty]) (*connect.Response[MVPRelease], error)
	SearchUseCases(context.Context, *connect.Request[SearchCriteria]) (*connect.Response[UseCasesResponse], error)
	GetDashboardStats(context.Context, *connect.Request[Empty]) (*connect.Response[DashboardStats], error)
	GenerateInviteCode(context.Context, *connect.Request[Empty]) (*connect.Response[InviteCodeResponse], error)
	SubmitRSVP(context.Context, *connect.Request[SubmitRSVPRequest]) (*connect.Response[Empty], error)
	GetAllRSVPs(context.Context, *connect.Request[Empty]) (*connect.Response[RSVPsResponse], error)
	GetInviteCodes(context.Context, *connect.Request[Empty]) (*connect.Response[InviteCodesResponse], error)
	GetCallerUserRole(context.Context, *connect.Request[Empty]) (*connect.Response[RoleResponse], error)
	IsCallerAdmin(context.Context, *connect.Request[Empty]) (*connect.Response[IsAdminResponse], error)
	AssignCallerUserRole(context.Context, *connect.Request[AssignRoleRequest]) (*connect.Response[Empty], error)
	GetCallerUserProfile(context.Context, *connect.Request[Empty]) (*connect.Response[ProfileResponse], error)
	SaveCallerUserProfile(context.Context, *connect.Request[SaveProfileRequest]) (*connect.Response[Empty], error)
	GetUserProfile(context.Context, *connect.Request[UserProfileRequest]) (*connect.Response[ProfileResponse], error)
	GetAppConfig(context.Context, *connect.Request[Empty]) (*connect.Response[AppConfigResponse], error)
	InitializeAppConfig(context.Context, *connect.Request[AppConfigRequest]) (*connect.Response[Empty], error)
	UpdateAppConfig(context.Context, *connect.Request[AppConfigRequest]) (*connect.Response[Empty], error)
	VerifyAdminPasscode(context.Context, *connect.Request[VerifyPasscodeRequest]) (*connect.Response[VerifyPasscodeResponse], error)
}

// NewTrackerServiceHandler builds an HTTP handler for every procedure of svc.
// It returns the path prefix to mount the handler on.
func NewTrackerServiceHandler(svc TrackerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSONCodec()}, opts...)

	mux := http.NewServeMux()
	mux.Handle(CreateUseCaseProcedure, connect.NewUnaryHandler(CreateUseCaseProcedure, svc.CreateUseCase, opts...))
	mux.Handle(GetUseCaseProcedure, connect.NewUnaryHandler(GetUseCaseProcedure, svc.GetUseCase, opts...))
	mux.Handle(UpdateUseCaseProcedure, connect.NewUnaryHandler(UpdateUseCaseProcedure, svc.UpdateUseCase, opts...))
	mux.Handle(ChangeUseCasePhaseProcedure, connect.NewUnaryHandler(ChangeUseCasePhaseProcedure, svc.ChangeUseCasePhase, opts...))
	mux.Handle(DeleteUseCaseProcedure, connect.NewUnaryHandler(DeleteUseCaseProcedure, svc.DeleteUseCase, opts...))
	mux.Handle(GetAllUseCasesProcedure, connect.NewUnaryHandler(GetAllUseCasesProcedure, svc.GetAllUseCases, opts...))
	mux.Handle(CreatePhaseProcedure, connect.NewUnaryHandler(CreatePhaseProcedure, svc.CreatePhase, opts...))
	mux.Handle(GetPhaseProcedure, connect.NewUnaryHandler(GetPhaseProcedure, svc.GetPhase, opts...))
	mux.Handle(UpdatePhaseProcedure, connect.NewUnaryHandler(UpdatePhaseProcedure, svc.UpdatePhase, opts...))
	mux.Handle(ChangePhaseReleaseProcedure, connect.NewUnaryHandler(ChangePhaseReleaseProcedure, svc.ChangePhaseRelease, opts...))
	mux.Handle(DeletePhaseProcedure, connect.NewUnaryHandler(DeletePhaseProcedure, svc.DeletePhase, opts...))
	mux.Handle(GetAllPhasesProcedure, connect.NewUnaryHandler(GetAllPhasesProcedure, svc.GetAllPhases, opts...))
	mux.Handle(CreateReleaseProcedure, connect.NewUnaryHandler(CreateReleaseProcedure, svc.CreateRelease, opts...))
	mux.Handle(GetReleaseProcedure, connect.NewUnaryHandler(GetReleaseProcedure, svc.GetRelease, opts...))
	mux.Handle(UpdateReleaseProcedure, connect.NewUnaryHandler(UpdateReleaseProcedure, svc.UpdateRelease, opts...))
	mux.Handle(DeleteReleaseProcedure, connect.NewUnaryHandler(DeleteReleaseProcedure, svc.DeleteRelease, opts...))
	mux.Handle(GetAllReleasesProcedure, connect.NewUnaryHandler(GetAllReleasesProcedure, svc.GetAllReleases, opts...))
	mux.Handle(FilterUseCasesByPhaseProcedure, connect.NewUnaryHandler(FilterUseCasesByPhaseProcedure, svc.FilterUseCasesByPhase, opts...))
	mux.Handle(FilterUseCasesByReleaseProcedure, connect.NewUnaryHandler(FilterUseCasesByReleaseProcedure, svc.FilterUseCasesByRelease, opts...))
	mux.Handle(FilterUseCasesByPriorityProcedure, connect.NewUnaryHandler(FilterUseCasesByPriorityProcedure, svc.FilterUseCasesByPriority, opts...))
	mux.Handle(FilterUseCasesByStatusProcedure, connect.NewUnaryHandler(FilterUseCasesByStatusProcedure, svc.FilterUseCasesByStatus, opts...))
	mux.Handle(SortUseCasesByLastUpdatedProcedure, connect.NewUnaryHandler(SortUseCasesByLastUpdatedProcedure, svc.SortUseCasesByLastUpdated, opts...))
	mux.Handle(SortPhasesByStatusProcedure, connect.NewUnaryHandler(SortPhasesByStatusProcedure, svc.SortPhasesByStatus, opts...))
	mux.Handle(SortReleasesByStatusProcedure, connect.NewUnaryHandler(SortReleasesByStatusProcedure, svc.SortReleasesByStatus, opts...))
	mux.Handle(GetPhasesByReleaseIDProcedure, connect.NewUnaryHandler(GetPhasesByReleaseIDProcedure, svc.GetPhasesByReleaseID, opts...))
	mux.Handle(GetAllMVPReleasesProcedure, connect.NewUnaryHandler(GetAllMVPReleasesProcedure, svc.GetAllMVPReleases, opts...))
	mux.Handle(SearchUseCasesProcedure, connect.NewUnaryHandler(SearchUseCasesProcedure, svc.SearchUseCases, opts...))
	mux.Handle(GetDashboardStatsProcedure, connect.NewUnaryHandler(GetDashboardStatsProcedure, svc.GetDashboardStats, opts...))
	mux.Handle(GenerateInviteCodeProcedure, connect.NewUnaryHandler(GenerateInviteCodeProcedure, svc.GenerateInviteCode, opts...))
	mux.Handle(SubmitRSVPProcedure, connect.NewUnaryHandler(SubmitRSVPProcedure, svc.SubmitRSVP, opts...))
	mux.Handle(GetAllRSVPsProcedure, connect.NewUnaryHandler(GetAllRSVPsProcedure, svc.GetAllRSVPs, opts...))
	mux.Handle(GetInviteCodesProcedure, connect.NewUnaryHandler(GetInviteCodesProcedure, svc.GetInviteCodes, opts...))
	mux.Handle(GetCallerUserRoleProcedure, connect.NewUnaryHandler(GetCallerUserRoleProcedure, svc.GetCallerUserRole, opts...))
	mux.Handle(IsCallerAdminProcedure, connect.NewUnaryHandler(IsCallerAdminProcedure, svc.IsCallerAdmin, opts...))
	mux.Handle(AssignCallerUserRoleProcedure, connect.NewUnaryHandler(AssignCallerUserRoleProcedure, svc.AssignCallerUserRole, opts...))
	mux.Handle(GetCallerUserProfileProcedure, connect.NewUnaryHandler(GetCallerUserProfileProcedure, svc.GetCallerUserProfile, opts...))
	mux.Handle(SaveCallerUserProfileProcedure, connect.NewUnaryHandler(SaveCallerUserProfileProcedure, svc.SaveCallerUserProfile, opts...))
	mux.Handle(GetUserProfileProcedure, connect.NewUnaryHandler(GetUserProfileProcedure, svc.GetUserProfile, opts...))
	mux.Handle(GetAppConfigProcedure, connect.NewUnaryHandler(GetAppConfigProcedure, svc.GetAppConfig, opts...))
	mux.Handle(InitializeAppConfigProcedure, connect.NewUnaryHandler(InitializeAppConfigProcedure, svc.InitializeAppConfig, opts...))
	mux.Handle(UpdateAppConfigProcedure, connect.NewUnaryHandler(UpdateAppConfigProcedure, svc.UpdateAppConfig, opts...))
	mux.Handle(VerifyAdminPasscodeProcedure, connect.NewUnaryHandler(VerifyAdminPasscodeProcedure, svc.VerifyAdminPasscode, opts...))
	return "/" + ServiceName + "/", mux
}
