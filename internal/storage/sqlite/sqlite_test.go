package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/mvptracker/internal/models"
	"github.com/mmynk/mvptracker/internal/storage"
	"github.com/mmynk/mvptracker/internal/storage/storetest"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "Failed to create store")
	return store
}

func TestConformance(t *testing.T) {
	storetest.Run(t, func(t *testing.T) storage.Store {
		return newTestStore(t)
	})
}

func TestNewIsIdempotentAcrossRestarts(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "tracker.db")
	ctx := context.Background()

	store, err := New(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.CreateRelease(ctx, &models.Release{ReleaseID: "R1", ReleaseName: "Beta", Status: models.ReleasePlanned}))
	require.NoError(t, store.Close())

	reopened, err := New(dbPath)
	require.NoError(t, err, "migrations must tolerate an already-migrated database")
	defer reopened.Close()

	got, err := reopened.GetRelease(ctx, "R1")
	require.NoError(t, err)
	assert.Equal(t, "Beta", got.ReleaseName)
}

func TestQueryFailuresAreNotReportedAsNotFound(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	store := newWithDB(sqlx.NewDb(mockDB, "sqlmock"))
	boom := errors.New("disk I/O error")

	mock.ExpectQuery("FROM use_cases WHERE uc_id").
		WithArgs("uc-1").
		WillReturnError(boom)

	_, err = store.GetUseCase(context.Background(), "uc-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, storage.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedeemRollsBackOnInsertFailure(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	store := newWithDB(sqlx.NewDb(mockDB, "sqlmock"))

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT used FROM invite_codes").
		WithArgs("CODE").
		WillReturnRows(sqlmock.NewRows([]string{"used"}).AddRow(false))
	mock.ExpectExec("UPDATE invite_codes SET used = 1").
		WithArgs("CODE").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO rsvps").
		WillReturnError(errors.New("constraint failed"))
	mock.ExpectRollback()

	err = store.RedeemInviteCode(context.Background(), &models.RSVP{Name: "Sam", InviteCode: "CODE"})
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMissingRowsMapToNotFound(t *testing.T) {
	store := newTestStore(t)
	defer store.Close()

	_, err := store.GetUseCase(context.Background(), "nonexistent-id")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
