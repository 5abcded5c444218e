// Package storetest holds the behaviour every storage.Store must share.
// Backends run it from their own tests:
//
//	func TestConformance(t *testing.T) {
//		storetest.Run(t, func(t *testing.T) storage.Store { return memory.New() })
//	}
package storetest

import (
	"context"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/mmynk/mvptracker/internal/models"
	"github.com/mmynk/mvptracker/internal/storage"
)

// Factory returns a fresh, empty store. The suite closes it.
type Factory func(t *testing.T) storage.Store

// Run executes the conformance suite against stores built by newStore.
func Run(t *testing.T, newStore Factory) {
	suite.Run(t, &storeSuite{newStore: newStore})
}

type storeSuite struct {
	suite.Suite
	newStore Factory
	store    storage.Store
	ctx      context.Context
}

func (s *storeSuite) SetupTest() {
	s.store = s.newStore(s.T())
	s.ctx = context.Background()
}

func (s *storeSuite) TearDownTest() {
	s.Require().NoError(s.store.Close())
}

func (s *storeSuite) seedPlan() (models.Release, models.Phase) {
	release := models.Release{ReleaseID: "R1", ReleaseName: "Beta", TargetDate: "Q3", Status: models.ReleasePlanned}
	s.Require().NoError(s.store.CreateRelease(s.ctx, &release))
	phase := models.Phase{PhaseID: "P1", PhaseName: "Discovery", Status: models.PhaseInProgress, ReleaseID: "R1"}
	s.Require().NoError(s.store.CreatePhase(s.ctx, &phase))
	return release, phase
}

func (s *storeSuite) newUseCase(title string) *models.UseCase {
	return &models.UseCase{
		Title:        title,
		Description:  title + " flow",
		Owner:        "dana",
		Tags:         "auth, web",
		PhaseID:      "P1",
		MvpReleaseID: "R1",
		Priority:     models.PriorityP1,
		Status:       models.UseCaseApproved,
		Value:        models.ValueHigh,
		Effort:       models.EffortM,
		CreatedDate:  100,
		LastUpdated:  100,
	}
}

func (s *storeSuite) TestReleaseRoundTrip() {
	release, _ := s.seedPlan()

	got, err := s.store.GetRelease(s.ctx, "R1")
	s.Require().NoError(err)
	s.Empty(cmp.Diff(release, *got))
}

func (s *storeSuite) TestCreateReleaseConflict() {
	s.seedPlan()
	err := s.store.CreateRelease(s.ctx, &models.Release{ReleaseID: "R1", ReleaseName: "Again", Status: models.ReleasePlanned})
	s.ErrorIs(err, storage.ErrConflict)

	got, err := s.store.GetRelease(s.ctx, "R1")
	s.Require().NoError(err)
	s.Equal("Beta", got.ReleaseName, "conflicting create must not overwrite")
}

func (s *storeSuite) TestCreatePhaseConflict() {
	s.seedPlan()
	err := s.store.CreatePhase(s.ctx, &models.Phase{PhaseID: "P1", ReleaseID: "R1", Status: models.PhasePlanned})
	s.ErrorIs(err, storage.ErrConflict)
}

func (s *storeSuite) TestCreatePhaseRequiresRelease() {
	err := s.store.CreatePhase(s.ctx, &models.Phase{PhaseID: "P9", ReleaseID: "missing", Status: models.PhasePlanned})
	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *storeSuite) TestUseCaseRoundTrip() {
	s.seedPlan()
	uc := s.newUseCase("Login")
	s.Require().NoError(s.store.CreateUseCase(s.ctx, uc))
	s.NotEmpty(uc.UcID)

	got, err := s.store.GetUseCase(s.ctx, uc.UcID)
	s.Require().NoError(err)
	s.Empty(cmp.Diff(*uc, *got))
}

func (s *storeSuite) TestUseCaseIDsAreUnique() {
	s.seedPlan()
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		uc := s.newUseCase("uc")
		s.Require().NoError(s.store.CreateUseCase(s.ctx, uc))
		s.False(seen[uc.UcID], "duplicate id %s", uc.UcID)
		seen[uc.UcID] = true
	}
}

func (s *storeSuite) TestCreateUseCaseRequiresReferences() {
	s.seedPlan()

	uc := s.newUseCase("Orphan")
	uc.PhaseID = "nope"
	s.ErrorIs(s.store.CreateUseCase(s.ctx, uc), storage.ErrNotFound)

	uc = s.newUseCase("Orphan")
	uc.MvpReleaseID = "nope"
	s.ErrorIs(s.store.CreateUseCase(s.ctx, uc), storage.ErrNotFound)

	all, err := s.store.ListUseCases(s.ctx)
	s.Require().NoError(err)
	s.Empty(all)
}

func (s *storeSuite) TestUpdateUseCaseKeepsCreatedDate() {
	s.seedPlan()
	uc := s.newUseCase("Login")
	s.Require().NoError(s.store.CreateUseCase(s.ctx, uc))

	changed := *uc
	changed.Title = "Login v2"
	changed.CreatedDate = 999
	changed.LastUpdated = 200
	s.Require().NoError(s.store.UpdateUseCase(s.ctx, &changed))

	got, err := s.store.GetUseCase(s.ctx, uc.UcID)
	s.Require().NoError(err)
	s.Equal("Login v2", got.Title)
	s.Equal(int64(100), got.CreatedDate)
	s.Equal(int64(200), got.LastUpdated)
}

func (s *storeSuite) TestUpdateUnknownRecords() {
	s.seedPlan()
	uc := s.newUseCase("ghost")
	uc.UcID = "ghost"
	s.ErrorIs(s.store.UpdateUseCase(s.ctx, uc), storage.ErrNotFound)
	s.ErrorIs(s.store.UpdatePhase(s.ctx, &models.Phase{PhaseID: "ghost", ReleaseID: "R1", Status: models.PhasePlanned}), storage.ErrNotFound)
	s.ErrorIs(s.store.UpdateRelease(s.ctx, &models.Release{ReleaseID: "ghost", Status: models.ReleasePlanned}), storage.ErrNotFound)
}

func (s *storeSuite) TestDeleteUnknownRecords() {
	s.ErrorIs(s.store.DeleteUseCase(s.ctx, "ghost"), storage.ErrNotFound)
	s.ErrorIs(s.store.DeletePhase(s.ctx, "ghost"), storage.ErrNotFound)
	s.ErrorIs(s.store.DeleteRelease(s.ctx, "ghost"), storage.ErrNotFound)
}

func (s *storeSuite) TestDeleteDoesNotCascade() {
	s.seedPlan()
	uc := s.newUseCase("Login")
	s.Require().NoError(s.store.CreateUseCase(s.ctx, uc))

	s.Require().NoError(s.store.DeletePhase(s.ctx, "P1"))
	s.Require().NoError(s.store.DeleteRelease(s.ctx, "R1"))

	got, err := s.store.GetUseCase(s.ctx, uc.UcID)
	s.Require().NoError(err)
	s.Equal("P1", got.PhaseID)
	s.Equal("R1", got.MvpReleaseID)

	_, err = s.store.GetPhase(s.ctx, "P1")
	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *storeSuite) TestListsKeepInsertionOrder() {
	for _, id := range []string{"R3", "R1", "R2"} {
		s.Require().NoError(s.store.CreateRelease(s.ctx, &models.Release{ReleaseID: id, Status: models.ReleasePlanned}))
	}
	releases, err := s.store.ListReleases(s.ctx)
	s.Require().NoError(err)
	ids := make([]string, len(releases))
	for i, r := range releases {
		ids[i] = r.ReleaseID
	}
	s.Equal([]string{"R3", "R1", "R2"}, ids)
}

func (s *storeSuite) TestSnapshot() {
	s.seedPlan()
	uc := s.newUseCase("Login")
	s.Require().NoError(s.store.CreateUseCase(s.ctx, uc))

	snap, err := s.store.Snapshot(s.ctx)
	s.Require().NoError(err)
	s.Len(snap.UseCases, 1)
	s.Len(snap.Releases, 1)
	s.Len(snap.Phases, 1)
}

func (s *storeSuite) TestInviteRedemption() {
	code := models.InviteCode{Code: "ABCD1234", Created: 5}
	s.Require().NoError(s.store.CreateInviteCode(s.ctx, &code))
	s.ErrorIs(s.store.CreateInviteCode(s.ctx, &code), storage.ErrConflict)

	rsvp := models.RSVP{Name: "Sam", Attending: true, InviteCode: "ABCD1234", Timestamp: 10}
	s.Require().NoError(s.store.RedeemInviteCode(s.ctx, &rsvp))
	s.ErrorIs(s.store.RedeemInviteCode(s.ctx, &rsvp), storage.ErrConflict)

	missing := models.RSVP{Name: "Lee", InviteCode: "NOPE"}
	s.ErrorIs(s.store.RedeemInviteCode(s.ctx, &missing), storage.ErrNotFound)

	codes, err := s.store.ListInviteCodes(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(codes, 1)
	s.True(codes[0].Used)

	rsvps, err := s.store.ListRSVPs(s.ctx)
	s.Require().NoError(err)
	s.Equal([]models.RSVP{rsvp}, rsvps)
}

func (s *storeSuite) TestConcurrentRedemptionSucceedsOnce() {
	s.Require().NoError(s.store.CreateInviteCode(s.ctx, &models.InviteCode{Code: "RACE"}))

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.store.RedeemInviteCode(s.ctx, &models.RSVP{Name: "x", InviteCode: "RACE"})
			if err == nil {
				mu.Lock()
				success++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	s.Equal(1, success)
}

func (s *storeSuite) TestProfilesAndRoles() {
	profile, err := s.store.GetProfile(s.ctx, "alice")
	s.Require().NoError(err)
	s.Nil(profile)

	s.Require().NoError(s.store.SaveProfile(s.ctx, "alice", &models.UserProfile{Name: "Alice"}))
	s.Require().NoError(s.store.SaveProfile(s.ctx, "alice", &models.UserProfile{Name: "Alice B"}))
	profile, err = s.store.GetProfile(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal("Alice B", profile.Name)

	_, ok, err := s.store.GetRole(s.ctx, "alice")
	s.Require().NoError(err)
	s.False(ok)

	s.Require().NoError(s.store.SetRole(s.ctx, "alice", models.RoleAdmin))
	s.Require().NoError(s.store.SetRole(s.ctx, "bob", models.RoleUser))
	role, ok, err := s.store.GetRole(s.ctx, "alice")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(models.RoleAdmin, role)

	n, err := s.store.CountAdmins(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, n)
}

func (s *storeSuite) TestAppConfigLifecycle() {
	_, err := s.store.GetAppConfig(s.ctx)
	s.ErrorIs(err, storage.ErrNotFound)
	s.ErrorIs(s.store.PutAppConfig(s.ctx, &models.AppConfig{}), storage.ErrNotFound)

	cfg := models.AppConfig{Version: "0.1", AdminPasscode: "open-sesame"}
	s.Require().NoError(s.store.InitAppConfig(s.ctx, &cfg))
	s.ErrorIs(s.store.InitAppConfig(s.ctx, &cfg), storage.ErrConflict)

	cfg.IsReleased = true
	s.Require().NoError(s.store.PutAppConfig(s.ctx, &cfg))

	got, err := s.store.GetAppConfig(s.ctx)
	s.Require().NoError(err)
	s.Equal(cfg, *got)
}

// RequireEmpty is a helper for backends that want to assert a fresh store.
func RequireEmpty(t *testing.T, store storage.Store) {
	t.Helper()
	snap, err := store.Snapshot(context.Background())
	require.NoError(t, err)
	require.Empty(t, snap.UseCases)
	require.Empty(t, snap.Phases)
	require.Empty(t, snap.Releases)
}
