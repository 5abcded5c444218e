// Package api is the wire contract of the tracker RPC service: message
// types, procedure names, the JSON codec, the handler constructor and a
// typed client.
package api

import (
	"github.com/mmynk/mvptracker/internal/models"
	"github.com/mmynk/mvptracker/internal/query"
)

// Records travel on the wire exactly as the domain defines them.
type (
	UseCase     = models.UseCase
	Phase       = models.Phase
	Release     = models.Release
	MVPRelease  = models.MVPRelease
	InviteCode  = models.InviteCode
	RSVP        = models.RSVP
	UserProfile = models.UserProfile
	UserRole    = models.UserRole
	AppConfig   = models.AppConfig

	UseCasePriority = models.UseCasePriority
	UseCaseStatus   = models.UseCaseStatus

	SearchCriteria = query.Criteria
	DashboardStats = query.Stats
)

// Empty is the request or response of procedures that carry no payload.
type Empty struct{}

type UseCaseRequest struct {
	UseCase UseCase `json:"useCase"`
}

type UseCaseIDRequest struct {
	UcID string `json:"ucId"`
}

type CreateUseCaseResponse struct {
	UcID string `json:"ucId"`
}

type UseCaseResponse struct {
	UseCase UseCase `json:"useCase"`
}

type UseCasesResponse struct {
	UseCases []UseCase `json:"useCases"`
}

type ChangeUseCasePhaseRequest struct {
	UcID       string `json:"ucId"`
	NewPhaseID string `json:"newPhaseId"`
}

type PhaseRequest struct {
	Phase Phase `json:"phase"`
}

type PhaseIDRequest struct {
	PhaseID string `json:"phaseId"`
}

type PhaseResponse struct {
	Phase Phase `json:"phase"`
}

type PhasesResponse struct {
	Phases []Phase `json:"phases"`
}

type ChangePhaseReleaseRequest struct {
	PhaseID      string `json:"phaseId"`
	NewReleaseID string `json:"newReleaseId"`
}

type ReleaseRequest struct {
	Release Release `json:"release"`
}

type ReleaseIDRequest struct {
	ReleaseID string `json:"releaseId"`
}

type ReleaseResponse struct {
	Release Release `json:"release"`
}

type ReleasesResponse struct {
	Releases []Release `json:"releases"`
}

type PriorityRequest struct {
	Priority UseCasePriority `json:"priority"`
}

type StatusRequest struct {
	Status UseCaseStatus `json:"status"`
}

type InviteCodeResponse struct {
	Code string `json:"code"`
}

type InviteCodesResponse struct {
	InviteCodes []InviteCode `json:"inviteCodes"`
}

type SubmitRSVPRequest struct {
	Name       string `json:"name"`
	Attending  bool   `json:"attending"`
	InviteCode string `json:"inviteCode"`
}

type RSVPsResponse struct {
	RSVPs []RSVP `json:"rsvps"`
}

type RoleResponse struct {
	Role UserRole `json:"role"`
}

// IsAdminResponse reports the durable role check. AdminSession echoes the
// passcode flag of the caller's token for display and grants nothing.
type IsAdminResponse struct {
	IsAdmin      bool `json:"isAdmin"`
	AdminSession bool `json:"adminSession"`
}

type AssignRoleRequest struct {
	Identity string   `json:"identity"`
	Role     UserRole `json:"role"`
}

// ProfileResponse carries a nil Profile when the identity has none.
type ProfileResponse struct {
	Profile *UserProfile `json:"profile"`
}

type SaveProfileRequest struct {
	Profile UserProfile `json:"profile"`
}

type UserProfileRequest struct {
	Identity string `json:"identity"`
}

type AppConfigRequest struct {
	Config AppConfig `json:"config"`
}

type AppConfigResponse struct {
	Config AppConfig `json:"config"`
}

type VerifyPasscodeRequest struct {
	Passcode string `json:"passcode"`
}

// VerifyPasscodeResponse carries a re-issued token with the admin session
// flag when Valid is true and the caller was identified.
type VerifyPasscodeResponse struct {
	Valid bool   `json:"valid"`
	Token string `json:"token,omitempty"`
}
