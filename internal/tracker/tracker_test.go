package tracker

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/mvptracker/internal/auth"
	"github.com/mmynk/mvptracker/internal/models"
	"github.com/mmynk/mvptracker/internal/query"
	"github.com/mmynk/mvptracker/internal/storage/memory"
)

const (
	adminID = "admin-1"
	userID  = "user-1"
)

// tickingClock advances one second per call.
func tickingClock() func() time.Time {
	var n atomic.Int64
	base := time.Unix(1_700_000_000, 0)
	return func() time.Time {
		return base.Add(time.Duration(n.Add(1)) * time.Second)
	}
}

func setupTracker(t *testing.T, released bool) (*Tracker, *memory.Store) {
	t.Helper()
	store := memory.New()
	tr := New(store, slog.New(slog.NewTextHandler(io.Discard, nil)), WithClock(tickingClock()))

	ctx := as(adminID)
	require.NoError(t, tr.InitializeAppConfig(ctx, models.AppConfig{Version: "1", AdminPasscode: "s3cret", IsReleased: released}))
	require.NoError(t, tr.AssignCallerUserRole(ctx, userID, models.RoleUser))
	return tr, store
}

func as(identity string) context.Context {
	return auth.WithIdentity(context.Background(), identity)
}

// newUseCase fills every enum with its first member.
func newUseCase(title, phaseID, releaseID string) models.UseCase {
	return models.UseCase{
		Title: title, PhaseID: phaseID, MvpReleaseID: releaseID,
		Priority: models.PriorityP0, Status: models.UseCaseProposed,
		Value: models.ValueLow, Effort: models.EffortS,
	}
}

func seedPlan(t *testing.T, tr *Tracker) string {
	t.Helper()
	ctx := as(adminID)
	require.NoError(t, tr.CreateRelease(ctx, models.Release{ReleaseID: "R1", ReleaseName: "Beta", Status: models.ReleasePlanned}))
	require.NoError(t, tr.CreatePhase(ctx, models.Phase{PhaseID: "P1", PhaseName: "Build", ReleaseID: "R1", Status: models.PhasePlanned}))
	id, err := tr.CreateUseCase(ctx, newUseCase("Login", "P1", "R1"))
	require.NoError(t, err)
	return id
}

func TestScenarioNoCascade(t *testing.T) {
	tr, _ := setupTracker(t, false)
	ctx := as(adminID)
	id := seedPlan(t, tr)

	plan, err := tr.GetAllMVPReleases(ctx)
	require.NoError(t, err)
	require.Len(t, plan.UseCases, 1)
	require.Len(t, plan.Phases, 1)
	require.Len(t, plan.Releases, 1)
	assert.Equal(t, "Login", plan.UseCases[0].Title)
	assert.Equal(t, "P1", plan.Phases[0].PhaseID)
	assert.Equal(t, "Beta", plan.Releases[0].ReleaseName)

	byRelease, err := tr.FilterUseCasesByRelease(ctx, "R1")
	require.NoError(t, err)
	require.Len(t, byRelease, 1)
	assert.Equal(t, id, byRelease[0].UcID)

	require.NoError(t, tr.DeletePhase(ctx, "P1"))
	uc, err := tr.GetUseCase(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "P1", uc.PhaseID)
}

func TestCreateUseCaseAssignsServerFields(t *testing.T) {
	tr, _ := setupTracker(t, false)
	ctx := as(adminID)
	seedPlan(t, tr)

	id, err := tr.CreateUseCase(ctx, models.UseCase{
		UcID: "ignored", Title: "Export", PhaseID: "P1", MvpReleaseID: "R1",
		CreatedDate: 1, LastUpdated: 1, Priority: models.PriorityP2,
		Status: models.UseCaseProposed, Value: models.ValueLow, Effort: models.EffortS,
	})
	require.NoError(t, err)
	assert.NotEqual(t, "ignored", id)

	uc, err := tr.GetUseCase(ctx, id)
	require.NoError(t, err)
	assert.Greater(t, uc.CreatedDate, int64(1))
	assert.Equal(t, uc.CreatedDate, uc.LastUpdated)
	assert.Equal(t, models.PriorityP2, uc.Priority)
}

func TestUpdateUseCaseMonotonic(t *testing.T) {
	tr, _ := setupTracker(t, false)
	ctx := as(adminID)
	id := seedPlan(t, tr)

	before, err := tr.GetUseCase(ctx, id)
	require.NoError(t, err)

	changed := *before
	changed.Title = "Login v2"
	changed.CreatedDate = 42
	changed.Status = models.UseCaseApproved
	require.NoError(t, tr.UpdateUseCase(ctx, changed))

	after, err := tr.GetUseCase(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Login v2", after.Title)
	assert.Equal(t, before.CreatedDate, after.CreatedDate)
	assert.GreaterOrEqual(t, after.LastUpdated, before.LastUpdated)
}

func TestUpdateUseCaseNeverMovesBackwards(t *testing.T) {
	store := memory.New()
	now := time.Unix(1_700_000_000, 0)
	clock := func() time.Time { return now }
	tr := New(store, nil, WithClock(clock))
	ctx := as(adminID)
	require.NoError(t, tr.InitializeAppConfig(ctx, models.AppConfig{Version: "1"}))
	id := seedPlan(t, tr)

	now = now.Add(-time.Hour)
	uc, err := tr.GetUseCase(ctx, id)
	require.NoError(t, err)
	stamp := uc.LastUpdated
	require.NoError(t, tr.UpdateUseCase(ctx, *uc))

	uc, err = tr.GetUseCase(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, stamp, uc.LastUpdated)
}

func TestUseCaseValidation(t *testing.T) {
	tr, _ := setupTracker(t, false)
	ctx := as(adminID)
	seedPlan(t, tr)

	_, err := tr.CreateUseCase(ctx, models.UseCase{Title: "x", PhaseID: "P1", MvpReleaseID: "R1", Priority: 9, Status: models.UseCaseProposed, Value: models.ValueLow, Effort: models.EffortS})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = tr.CreateUseCase(ctx, newUseCase("x", "", "R1"))
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = tr.CreateUseCase(ctx, newUseCase("x", "nope", "R1"))
	assert.ErrorIs(t, err, ErrNotFound)

	bare := newUseCase("x", "P1", "R1")
	bare.Priority = models.PriorityUnspecified
	_, err = tr.CreateUseCase(ctx, bare)
	assert.ErrorIs(t, err, ErrInvalidArgument, "priority must be set")

	bare = newUseCase("x", "P1", "R1")
	bare.Effort = models.EffortUnspecified
	_, err = tr.CreateUseCase(ctx, bare)
	assert.ErrorIs(t, err, ErrInvalidArgument, "effort must be set")

	err = tr.CreatePhase(ctx, models.Phase{PhaseID: "P2", ReleaseID: "R1"})
	assert.ErrorIs(t, err, ErrInvalidArgument, "phase status must be set")
	err = tr.CreateRelease(ctx, models.Release{ReleaseID: "R2"})
	assert.ErrorIs(t, err, ErrInvalidArgument, "release status must be set")

	_, err = tr.FilterUseCasesByStatus(ctx, models.UseCaseStatusUnspecified)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = tr.FilterUseCasesByPriority(ctx, models.PriorityUnspecified)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	unset := models.UseCaseStatusUnspecified
	_, err = tr.SearchUseCases(ctx, query.Criteria{Status: &unset})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	missing := newUseCase("x", "P1", "R1")
	missing.UcID = "missing"
	err = tr.UpdateUseCase(ctx, missing)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAuthorizationMatrix(t *testing.T) {
	for _, released := range []bool{false, true} {
		tr, _ := setupTracker(t, released)
		id := seedPlan(t, tr)
		user := as(userID)

		_, err := tr.CreateUseCase(user, newUseCase("by user", "P1", "R1"))
		uc, getErr := tr.GetUseCase(user, id)
		require.NoError(t, getErr, "reads are always allowed")
		updErr := tr.UpdateUseCase(user, *uc)

		if released {
			assert.NoError(t, err)
			assert.NoError(t, updErr)
		} else {
			assert.ErrorIs(t, err, ErrForbidden)
			assert.ErrorIs(t, updErr, ErrForbidden)
		}
		assert.ErrorIs(t, tr.DeleteUseCase(user, id), ErrForbidden)
		assert.ErrorIs(t, tr.DeletePhase(user, "P1"), ErrForbidden)
		assert.ErrorIs(t, tr.DeleteRelease(user, "R1"), ErrForbidden)

		// Unassigned identities are guests and follow the same table.
		guestErr := tr.CreateRelease(as("stranger"), models.Release{ReleaseID: "G", Status: models.ReleasePlanned})
		if released {
			assert.NoError(t, guestErr)
		} else {
			assert.ErrorIs(t, guestErr, ErrForbidden)
		}

		admin := as(adminID)
		assert.NoError(t, tr.DeleteUseCase(admin, id))
	}
}

func TestPhaseAndReleaseLifecycle(t *testing.T) {
	tr, _ := setupTracker(t, false)
	ctx := as(adminID)
	seedPlan(t, tr)

	assert.ErrorIs(t, tr.CreateRelease(ctx, models.Release{ReleaseID: "R1", Status: models.ReleasePlanned}), ErrConflict)
	assert.ErrorIs(t, tr.CreatePhase(ctx, models.Phase{PhaseID: "P1", ReleaseID: "R1", Status: models.PhasePlanned}), ErrConflict)
	assert.ErrorIs(t, tr.CreatePhase(ctx, models.Phase{PhaseID: "P2", ReleaseID: "nope", Status: models.PhasePlanned}), ErrNotFound)
	assert.ErrorIs(t, tr.CreateRelease(ctx, models.Release{ReleaseID: " ", Status: models.ReleasePlanned}), ErrInvalidArgument)
	assert.ErrorIs(t, tr.UpdatePhase(ctx, models.Phase{PhaseID: "P9", ReleaseID: "R1", Status: models.PhasePlanned}), ErrNotFound)

	require.NoError(t, tr.CreateRelease(ctx, models.Release{ReleaseID: "R2", Status: models.ReleaseInProgress}))
	require.NoError(t, tr.ChangePhaseRelease(ctx, "P1", "R2"))
	p, err := tr.GetPhase(ctx, "P1")
	require.NoError(t, err)
	assert.Equal(t, "R2", p.ReleaseID)
	assert.ErrorIs(t, tr.ChangePhaseRelease(ctx, "P1", "R404"), ErrNotFound)

	phases, err := tr.GetPhasesByReleaseID(ctx, "R2")
	require.NoError(t, err)
	assert.Len(t, phases, 1)

	phases, err = tr.GetPhasesByReleaseID(ctx, "unknown")
	require.NoError(t, err)
	assert.Empty(t, phases)

	require.NoError(t, tr.DeleteRelease(ctx, "R2"))
	_, err = tr.GetRelease(ctx, "R2")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, tr.DeleteRelease(ctx, "R2"), ErrNotFound)
}

func TestChangeUseCasePhase(t *testing.T) {
	tr, _ := setupTracker(t, false)
	ctx := as(adminID)
	id := seedPlan(t, tr)
	require.NoError(t, tr.CreatePhase(ctx, models.Phase{PhaseID: "P2", ReleaseID: "R1", Status: models.PhasePlanned}))

	before, err := tr.GetUseCase(ctx, id)
	require.NoError(t, err)
	require.NoError(t, tr.ChangeUseCasePhase(ctx, id, "P2"))

	after, err := tr.GetUseCase(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "P2", after.PhaseID)
	assert.Greater(t, after.LastUpdated, before.LastUpdated)

	assert.ErrorIs(t, tr.ChangeUseCasePhase(ctx, id, "P404"), ErrNotFound)
	assert.ErrorIs(t, tr.ChangeUseCasePhase(as(userID), id, "P1"), ErrForbidden)
}

func TestQueries(t *testing.T) {
	tr, _ := setupTracker(t, false)
	ctx := as(adminID)
	first := seedPlan(t, tr)
	second, err := tr.CreateUseCase(ctx, models.UseCase{
		Title: "Search", Owner: "lee", PhaseID: "P1", MvpReleaseID: "R1",
		Priority: models.PriorityP1, Status: models.UseCaseDone,
		Value: models.ValueLow, Effort: models.EffortS,
	})
	require.NoError(t, err)

	sorted, err := tr.SortUseCasesByLastUpdated(ctx)
	require.NoError(t, err)
	require.Len(t, sorted, 2)
	assert.Equal(t, second, sorted[0].UcID)
	assert.Equal(t, first, sorted[1].UcID)

	done, err := tr.FilterUseCasesByStatus(ctx, models.UseCaseDone)
	require.NoError(t, err)
	assert.Len(t, done, 1)

	p3, err := tr.FilterUseCasesByPriority(ctx, models.PriorityP3)
	require.NoError(t, err)
	assert.NotNil(t, p3)
	assert.Empty(t, p3)

	inPhase, err := tr.FilterUseCasesByPhase(ctx, "P1")
	require.NoError(t, err)
	assert.Len(t, inPhase, 2)

	found, err := tr.SearchUseCases(ctx, query.Criteria{Text: "LEE"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, second, found[0].UcID)

	stats, err := tr.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalUseCases)
	assert.Equal(t, 1, stats.UseCasesByStatus["done"])
	assert.Equal(t, 2, stats.UseCasesByPhase["P1"])
}

func TestInviteCodesSingleUse(t *testing.T) {
	tr, _ := setupTracker(t, false)
	admin := as(adminID)

	code, err := tr.GenerateInviteCode(admin)
	require.NoError(t, err)
	assert.Len(t, code, 8)
	assert.Regexp(t, "^[0-9A-F]{8}$", code)

	require.NoError(t, tr.SubmitRSVP(context.Background(), "Dana", true, code))
	assert.ErrorIs(t, tr.SubmitRSVP(context.Background(), "Lee", false, code), ErrInvalidCode)
	assert.ErrorIs(t, tr.SubmitRSVP(context.Background(), "Lee", false, "NOPE0000"), ErrInvalidCode)
	assert.ErrorIs(t, tr.SubmitRSVP(context.Background(), "  ", false, code), ErrInvalidArgument)

	codes, err := tr.GetInviteCodes(admin)
	require.NoError(t, err)
	require.Len(t, codes, 1)
	assert.True(t, codes[0].Used)

	rsvps, err := tr.GetAllRSVPs(admin)
	require.NoError(t, err)
	require.Len(t, rsvps, 1)
	assert.Equal(t, "Dana", rsvps[0].Name)
	assert.Equal(t, code, rsvps[0].InviteCode)

	_, err = tr.GenerateInviteCode(as(userID))
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = tr.GetAllRSVPs(as(userID))
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = tr.GetInviteCodes(context.Background())
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestInviteCodeCollisionRegenerates(t *testing.T) {
	codes := []string{"AAAAAAAA", "AAAAAAAA", "BBBBBBBB"}
	var i int
	gen := func() string {
		c := codes[i]
		i++
		return c
	}
	store := memory.New()
	tr := New(store, nil, WithCodeGenerator(gen))
	ctx := as(adminID)
	require.NoError(t, tr.InitializeAppConfig(ctx, models.AppConfig{}))

	first, err := tr.GenerateInviteCode(ctx)
	require.NoError(t, err)
	second, err := tr.GenerateInviteCode(ctx)
	require.NoError(t, err)
	assert.Equal(t, "AAAAAAAA", first)
	assert.Equal(t, "BBBBBBBB", second)
}

func TestConcurrentRSVPSucceedsOnce(t *testing.T) {
	tr, _ := setupTracker(t, false)
	code, err := tr.GenerateInviteCode(as(adminID))
	require.NoError(t, err)

	var wg sync.WaitGroup
	var ok atomic.Int32
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if tr.SubmitRSVP(context.Background(), "guest", true, code) == nil {
				ok.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), ok.Load())
}

func TestAppConfigLifecycle(t *testing.T) {
	tr := New(memory.New(), nil)
	ctx := as("first")

	_, err := tr.GetAppConfig(ctx)
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.ErrorIs(t, tr.UpdateAppConfig(ctx, models.AppConfig{}), ErrForbidden)

	require.NoError(t, tr.InitializeAppConfig(ctx, models.AppConfig{Version: "1", AdminPasscode: "pw"}))
	isAdmin, err := tr.IsCallerAdmin(ctx)
	require.NoError(t, err)
	assert.True(t, isAdmin, "first initializer becomes admin")

	// A second initializer is treated as an update and must be admin.
	err = tr.InitializeAppConfig(as("second"), models.AppConfig{Version: "2", IsReleased: true})
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, tr.InitializeAppConfig(ctx, models.AppConfig{Version: "2", AdminPasscode: "pw", IsReleased: true}))
	cfg, err := tr.GetAppConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2", cfg.Version)
	assert.Equal(t, "pw", cfg.AdminPasscode)
	assert.True(t, cfg.IsReleased)

	cfg, err = tr.GetAppConfig(as("second"))
	require.NoError(t, err)
	assert.Empty(t, cfg.AdminPasscode)
	assert.True(t, cfg.IsReleased)

	role, err := tr.GetCallerUserRole(as("second"))
	require.NoError(t, err)
	assert.Equal(t, models.RoleGuest, role)
}

func TestAnonymousInitializerIsNotPromoted(t *testing.T) {
	store := memory.New()
	tr := New(store, nil)
	require.NoError(t, tr.InitializeAppConfig(context.Background(), models.AppConfig{Version: "1"}))

	admins, err := store.CountAdmins(context.Background())
	require.NoError(t, err)
	assert.Zero(t, admins)
}

func TestBootstrapAdmins(t *testing.T) {
	tr := New(memory.New(), nil)
	require.NoError(t, tr.BootstrapAdmins(context.Background(), []string{"ops", " ", "lead"}))

	for _, id := range []string{"ops", "lead"} {
		ok, err := tr.IsCallerAdmin(as(id))
		require.NoError(t, err)
		assert.True(t, ok, id)
	}

	// An existing admin means the initializer is not promoted.
	require.NoError(t, tr.InitializeAppConfig(as("ops"), models.AppConfig{}))
	ok, err := tr.IsCallerAdmin(as("someone"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyAdminPasscode(t *testing.T) {
	tr := New(memory.New(), nil)
	_, err := tr.VerifyAdminPasscode(context.Background(), "pw")
	assert.ErrorIs(t, err, ErrInvalidState)

	require.NoError(t, tr.InitializeAppConfig(as(adminID), models.AppConfig{AdminPasscode: "pw"}))

	ok, err := tr.VerifyAdminPasscode(as(userID), "pw")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = tr.VerifyAdminPasscode(as(userID), "PW")
	require.NoError(t, err)
	assert.False(t, ok)

	// The session flag never grants rights.
	isAdmin, err := tr.IsCallerAdmin(auth.WithAdminSession(as(userID), true))
	require.NoError(t, err)
	assert.False(t, isAdmin)
}

func TestRolesAndProfiles(t *testing.T) {
	tr, _ := setupTracker(t, false)
	admin := as(adminID)
	user := as(userID)

	assert.ErrorIs(t, tr.AssignCallerUserRole(user, "x", models.RoleAdmin), ErrForbidden)
	assert.ErrorIs(t, tr.AssignCallerUserRole(admin, "", models.RoleAdmin), ErrInvalidArgument)
	assert.ErrorIs(t, tr.AssignCallerUserRole(admin, "x", models.UserRole(7)), ErrInvalidArgument)

	role, err := tr.GetCallerUserRole(user)
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, role)

	role, err = tr.GetCallerUserRole(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.RoleGuest, role)

	profile, err := tr.GetCallerUserProfile(user)
	require.NoError(t, err)
	assert.Nil(t, profile)

	require.NoError(t, tr.SaveCallerUserProfile(user, models.UserProfile{Name: "Dana"}))
	profile, err = tr.GetCallerUserProfile(user)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Dana", profile.Name)

	assert.ErrorIs(t, tr.SaveCallerUserProfile(context.Background(), models.UserProfile{Name: "anon"}), ErrForbidden)

	profile, err = tr.GetUserProfile(admin, userID)
	require.NoError(t, err)
	assert.Equal(t, "Dana", profile.Name)

	profile, err = tr.GetUserProfile(user, userID)
	require.NoError(t, err)
	assert.Equal(t, "Dana", profile.Name)

	_, err = tr.GetUserProfile(as("other"), userID)
	assert.ErrorIs(t, err, ErrForbidden)
}
