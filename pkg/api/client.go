package api

import (
	"context"
	"strings"
	"sync"

	"connectrpc.com/connect"
)

// Client calls the tracker service. It is safe for concurrent use.
type Client struct {
	httpClient connect.HTTPClient
	baseURL    string
	opts       []connect.ClientOption

	mu    sync.RWMutex
	token string
}

// NewClient creates a client for the service at baseURL.
func NewClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		opts:       append([]connect.ClientOption{WithJSONCodec()}, opts...),
	}
}

// SetToken sets the bearer token sent with every call. An empty token makes
// calls anonymous.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Invoke calls procedure with req and returns the response message.
func Invoke[Req, Res any](ctx context.Context, c *Client, procedure string, req *Req) (*Res, error) {
	client := connect.NewClient[Req, Res](c.httpClient, c.baseURL+procedure, c.opts...)

	r := connect.NewRequest(req)
	if token := c.bearer(); token != "" {
		r.Header().Set("Authorization", "Bearer "+token)
	}
	resp, err := client.CallUnary(ctx, r)
	if err != nil {
		return nil, err
	}
	return resp.Msg, nil
}

func (c *Client) CreateUseCase(ctx context.Context, req *UseCaseRequest) (*CreateUseCaseResponse, error) {
	return Invoke[UseCaseRequest, CreateUseCaseResponse](ctx, c, CreateUseCaseProcedure, req)
}

func (c *Client) GetUseCase(ctx context.Context, req *UseCaseIDRequest) (*UseCaseResponse, error) {
	return Invoke[UseCaseIDRequest, UseCaseResponse](ctx, c, GetUseCaseProcedure, req)
}

func (c *Client) UpdateUseCase(ctx context.Context, req *UseCaseRequest) (*Empty, error) {
	return Invoke[UseCaseRequest, Empty](ctx, c, UpdateUseCaseProcedure, req)
}

func (c *Client) ChangeUseCasePhase(ctx context.Context, req *ChangeUseCasePhaseRequest) (*Empty, error) {
	return Invoke[ChangeUseCasePhaseRequest, Empty](ctx, c, ChangeUseCasePhaseProcedure, req)
}

func (c *Client) DeleteUseCase(ctx context.Context, req *UseCaseIDRequest) (*Empty, error) {
	return Invoke[UseCaseIDRequest, Empty](ctx, c, DeleteUseCaseProcedure, req)
}

func (c *Client) GetAllUseCases(ctx context.Context) (*UseCasesResponse, error) {
	return Invoke[Empty, UseCasesResponse](ctx, c, GetAllUseCasesProcedure, &Empty{})
}

func (c *Client) CreatePhase(ctx context.Context, req *PhaseRequest) (*Empty, error) {
	return Invoke[PhaseRequest, Empty](ctx, c, CreatePhaseProcedure, req)
}

func (c *Client) GetPhase(ctx context.Context, req *PhaseIDRequest) (*PhaseResponse, error) {
	return Invoke[PhaseIDRequest, PhaseResponse](ctx, c, GetPhaseProcedure, req)
}

func (c *Client) UpdatePhase(ctx context.Context, req *PhaseRequest) (*Empty, error) {
	return Invoke[PhaseRequest, Empty](ctx, c, UpdatePhaseProcedure, req)
}

func (c *Client) ChangePhaseRelease(ctx context.Context, req *ChangePhaseReleaseRequest) (*Empty, error) {
	return Invoke[ChangePhaseReleaseRequest, Empty](ctx, c, ChangePhaseReleaseProcedure, req)
}

func (c *Client) DeletePhase(ctx context.Context, req *PhaseIDRequest) (*Empty, error) {
	return Invoke[PhaseIDRequest, Empty](ctx, c, DeletePhaseProcedure, req)
}

func (c *Client) GetAllPhases(ctx context.Context) (*PhasesResponse, error) {
	return Invoke[Empty, PhasesResponse](ctx, c, GetAllPhasesProcedure, &Empty{})
}

func (c *Client) CreateRelease(ctx context.Context, req *ReleaseRequest) (*Empty, error) {
	return Invoke[ReleaseRequest, Empty](ctx, c, CreateReleaseProcedure, req)
}

func (c *Client) GetRelease(ctx context.Context, req *ReleaseIDRequest) (*ReleaseResponse, error) {
	return Invoke[ReleaseIDRequest, ReleaseResponse](ctx, c, GetReleaseProcedure, req)
}

func (c *Client) UpdateRelease(ctx context.Context, req *ReleaseRequest) (*Empty, error) {
	return Invoke[ReleaseRequest, Empty](ctx, c, UpdateReleaseProcedure, req)
}

func (c *Client) DeleteRelease(ctx context.Context, req *ReleaseIDRequest) (*Empty, error) {
	return Invoke[ReleaseIDRequest, Empty](ctx, c, DeleteReleaseProcedure, req)
}

func (c *Client) GetAllReleases(ctx context.Context) (*ReleasesResponse, error) {
	return Invoke[Empty, ReleasesResponse](ctx, c, GetAllReleasesProcedure, &Empty{})
}

func (c *Client) FilterUseCasesByPhase(ctx context.Context, req *PhaseIDRequest) (*UseCasesResponse, error) {
	return Invoke[PhaseIDRequest, UseCasesResponse](ctx, c, FilterUseCasesByPhaseProcedure, req)
}

func (c *Client) FilterUseCasesByRelease(ctx context.Context, req *ReleaseIDRequest) (*UseCasesResponse, error) {
	return Invoke[ReleaseIDRequest, UseCasesResponse](ctx, c, FilterUseCasesByReleaseProcedure, req)
}

func (c *Client) FilterUseCasesByPriority(ctx context.Context, req *PriorityRequest) (*UseCasesResponse, error) {
	return Invoke[PriorityRequest, UseCasesResponse](ctx, c, FilterUseCasesByPriorityProcedure, req)
}

func (c *Client) FilterUseCasesByStatus(ctx context.Context, req *StatusRequest) (*UseCasesResponse, error) {
	return Invoke[StatusRequest, UseCasesResponse](ctx, c, FilterUseCasesByStatusProcedure, req)
}

func (c *Client) SortUseCasesByLastUpdated(ctx context.Context) (*UseCasesResponse, error) {
	return Invoke[Empty, UseCasesResponse](ctx, c, SortUseCasesByLastUpdatedProcedure, &Empty{})
}

func (c *Client) SortPhasesByStatus(ctx context.Context) (*PhasesResponse, error) {
	return Invoke[Empty, PhasesResponse](ctx, c, SortPhasesByStatusProcedure, &Empty{})
}

func (c *Client) SortReleasesByStatus(ctx context.Context) (*ReleasesResponse, error) {
	return Invoke[Empty, ReleasesResponse](ctx, c, SortReleasesByStatusProcedure, &Empty{})
}

func (c *Client) GetPhasesByReleaseID(ctx context.Context, req *ReleaseIDRequest) (*PhasesResponse, error) {
	return Invoke[ReleaseIDRequest, PhasesResponse](ctx, c, GetPhasesByReleaseIDProcedure, req)
}

func (c *Client) GetAllMVPReleases(ctx context.Context) (*MVPRelease, error) {
	return Invoke[Empty, MVPRelease](ctx, c, GetAllMVPReleasesProcedure, &Empty{})
}

func (c *Client) SearchUseCases(ctx context.Context, req *SearchCriteria) (*UseCasesResponse, error) {
	return Invoke[SearchCriteria, UseCasesResponse](ctx, c, SearchUseCasesProcedure, req)
}

func (c *Client) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	return Invoke[Empty, DashboardStats](ctx, c, GetDashboardStatsProcedure, &Empty{})
}

func (c *Client) GenerateInviteCode(ctx context.Context) (*InviteCodeResponse, error) {
	return Invoke[Empty, InviteCodeResponse](ctx, c, GenerateInviteCodeProcedure, &Empty{})
}

func (c *Client) SubmitRSVP(ctx context.Context, req *SubmitRSVPRequest) (*Empty, error) {
	return Invoke[SubmitRSVPRequest, Empty](ctx, c, SubmitRSVPProcedure, req)
}

func (c *Client) GetAllRSVPs(ctx context.Context) (*RSVPsResponse, error) {
	return Invoke[Empty, RSVPsResponse](ctx, c, GetAllRSVPsProcedure, &Empty{})
}

func (c *Client) GetInviteCodes(ctx context.Context) (*InviteCodesResponse, error) {
	return Invoke[Empty, InviteCodesResponse](ctx, c, GetInviteCodesProcedure, &Empty{})
}

func (c *Client) GetCallerUserRole(ctx context.Context) (*RoleResponse, error) {
	return Invoke[Empty, RoleResponse](ctx, c, GetCallerUserRoleProcedure, &Empty{})
}

func (c *Client) IsCallerAdmin(ctx context.Context) (*IsAdminResponse, error) {
	return Invoke[Empty, IsAdminResponse](ctx, c, IsCallerAdminProcedure, &Empty{})
}

func (c *Client) AssignCallerUserRole(ctx context.Context, req *AssignRoleRequest) (*Empty, error) {
	return Invoke[AssignRoleRequest, Empty](ctx, c, AssignCallerUserRoleProcedure, req)
}

func (c *Client) GetCallerUserProfile(ctx context.Context) (*ProfileResponse, error) {
	return Invoke[Empty, ProfileResponse](ctx, c, GetCallerUserProfileProcedure, &Empty{})
}

func (c *Client) SaveCallerUserProfile(ctx context.Context, req *SaveProfileRequest) (*Empty, error) {
	return Invoke[SaveProfileRequest, Empty](ctx, c, SaveCallerUserProfileProcedure, req)
}

func (c *Client) GetUserProfile(ctx context.Context, req *UserProfileRequest) (*ProfileResponse, error) {
	return Invoke[UserProfileRequest, ProfileResponse](ctx, c, GetUserProfileProcedure, req)
}

func (c *Client) GetAppConfig(ctx context.Context) (*AppConfigResponse, error) {
	return Invoke[Empty, AppConfigResponse](ctx, c, GetAppConfigProcedure, &Empty{})
}

func (c *Client) InitializeAppConfig(ctx context.Context, req *AppConfigRequest) (*Empty, error) {
	return Invoke[AppConfigRequest, Empty](ctx, c, InitializeAppConfigProcedure, req)
}

func (c *Client) UpdateAppConfig(ctx context.Context, req *AppConfigRequest) (*Empty, error) {
	return Invoke[AppConfigRequest, Empty](ctx, c, UpdateAppConfigProcedure, req)
}

func (c *Client) VerifyAdminPasscode(ctx context.Context, req *VerifyPasscodeRequest) (*VerifyPasscodeResponse, error) {
	return Invoke[VerifyPasscodeRequest, VerifyPasscodeResponse](ctx, c, VerifyAdminPasscodeProcedure, req)
}
