package api

// ServiceName is the fully-qualified name of the tracker service.
const ServiceName = "tracker.v1.TrackerService"

// Procedure paths, one per operation.
const (
	CreateUseCaseProcedure      = "/" + ServiceName + "/CreateUseCase"
	GetUseCaseProcedure         = "/" + ServiceName + "/GetUseCase"
	UpdateUseCaseProcedure      = "/" + ServiceName + "/UpdateUseCase"
	ChangeUseCasePhaseProcedure = "/" + ServiceName + "/ChangeUseCasePhase"
	DeleteUseCaseProcedure      = "/" + ServiceName + "/DeleteUseCase"
	GetAllUseCasesProcedure     = "/" + ServiceName + "/GetAllUseCases"

	CreatePhaseProcedure        = "/" + ServiceName + "/CreatePhase"
	GetPhaseProcedure           = "/" + ServiceName + "/GetPhase"
	UpdatePhaseProcedure        = "/" + ServiceName + "/UpdatePhase"
	ChangePhaseReleaseProcedure = "/" + ServiceName + "/ChangePhaseRelease"
	DeletePhaseProcedure        = "/" + ServiceName + "/DeletePhase"
	GetAllPhasesProcedure       = "/" + ServiceName + "/GetAllPhases"

	CreateReleaseProcedure  = "/" + ServiceName + "/CreateRelease"
	GetReleaseProcedure     = "/" + ServiceName + "/GetRelease"
	UpdateReleaseProcedure  = "/" + ServiceName + "/UpdateRelease"
	DeleteReleaseProcedure  = "/" + ServiceName + "/DeleteRelease"
	GetAllReleasesProcedure = "/" + ServiceName + "/GetAllReleases"

	FilterUseCasesByPhaseProcedure     = "/" + ServiceName + "/FilterUseCasesByPhase"
	FilterUseCasesByReleaseProcedure   = "/" + ServiceName + "/FilterUseCasesByRelease"
	FilterUseCasesByPriorityProcedure  = "/" + ServiceName + "/FilterUseCasesByPriority"
	FilterUseCasesByStatusProcedure    = "/" + ServiceName + "/FilterUseCasesByStatus"
	SortUseCasesByLastUpdatedProcedure = "/" + ServiceName + "/SortUseCasesByLastUpdated"
	SortPhasesByStatusProcedure        = "/" + ServiceName + "/SortPhasesByStatus"
	SortReleasesByStatusProcedure      = "/" + ServiceName + "/SortReleasesByStatus"
	GetPhasesByReleaseIDProcedure      = "/" + ServiceName + "/GetPhasesByReleaseId"
	GetAllMVPReleasesProcedure         = "/" + ServiceName + "/GetAllMVPReleases"
	SearchUseCasesProcedure            = "/" + ServiceName + "/SearchUseCases"
	GetDashboardStatsProcedure         = "/" + ServiceName + "/GetDashboardStats"

	GenerateInviteCodeProcedure = "/" + ServiceName + "/GenerateInviteCode"
	SubmitRSVPProcedure         = "/" + ServiceName + "/SubmitRSVP"
	GetAllRSVPsProcedure        = "/" + ServiceName + "/GetAllRSVPs"
	GetInviteCodesProcedure     = "/" + ServiceName + "/GetInviteCodes"

	GetCallerUserRoleProcedure     = "/" + ServiceName + "/GetCallerUserRole"
	IsCallerAdminProcedure         = "/" + ServiceName + "/IsCallerAdmin"
	AssignCallerUserRoleProcedure  = "/" + ServiceName + "/AssignCallerUserRole"
	GetCallerUserProfileProcedure  = "/" + ServiceName + "/GetCallerUserProfile"
	SaveCallerUserProfileProcedure = "/" + ServiceName + "/SaveCallerUserProfile"
	GetUserProfileProcedure        = "/" + ServiceName + "/GetUserProfile"

	GetAppConfigProcedure        = "/" + ServiceName + "/GetAppConfig"
	InitializeAppConfigProcedure = "/" + ServiceName + "/InitializeAppConfig"
	UpdateAppConfigProcedure     = "/" + ServiceName + "/UpdateAppConfig"
	VerifyAdminPasscodeProcedure = "/" + ServiceName + "/VerifyAdminPasscode"
)
