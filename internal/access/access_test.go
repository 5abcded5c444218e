package access

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/mvptracker/internal/models"
	"github.com/mmynk/mvptracker/internal/storage/memory"
)

func TestAllowTable(t *testing.T) {
	released := &models.AppConfig{IsReleased: true}
	prerelease := &models.AppConfig{IsReleased: false}

	tests := []struct {
		action Action
		role   models.UserRole
		cfg    *models.AppConfig
		want   bool
	}{
		{ActionRead, models.RoleGuest, nil, true},
		{ActionRead, models.RoleUser, prerelease, true},

		{ActionCreate, models.RoleUser, prerelease, false},
		{ActionUpdate, models.RoleUser, prerelease, false},
		{ActionCreate, models.RoleUser, released, true},
		{ActionUpdate, models.RoleUser, released, true},
		{ActionCreate, models.RoleGuest, released, true},
		{ActionCreate, models.RoleUser, nil, false},

		{ActionDelete, models.RoleUser, released, false},
		{ActionDelete, models.RoleUser, prerelease, false},
		{ActionDelete, models.RoleGuest, released, false},
		{ActionAdmin, models.RoleUser, released, false},

		{ActionCreate, models.RoleAdmin, prerelease, true},
		{ActionUpdate, models.RoleAdmin, nil, true},
		{ActionDelete, models.RoleAdmin, prerelease, true},
		{ActionDelete, models.RoleAdmin, released, true},
		{ActionAdmin, models.RoleAdmin, prerelease, true},
	}

	for _, tt := range tests {
		name := fmt.Sprintf("%s/%s/released=%v", tt.role, tt.action, tt.cfg != nil && tt.cfg.IsReleased)
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allow(tt.action, tt.role, tt.cfg))
		})
	}
}

func TestGateRoleDefaults(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	gate := NewGate(store)

	role, err := gate.Role(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, models.RoleGuest, role)

	role, err = gate.Role(ctx, "stranger")
	require.NoError(t, err)
	assert.Equal(t, models.RoleGuest, role)

	require.NoError(t, store.SetRole(ctx, "ops", models.RoleUser))
	role, err = gate.Role(ctx, "ops")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, role)
}

func TestGateFollowsReleaseFlag(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	gate := NewGate(store)
	require.NoError(t, store.SetRole(ctx, "ops", models.RoleUser))

	_, err := gate.Authorize(ctx, "ops", ActionCreate)
	assert.ErrorIs(t, err, ErrForbidden, "uninitialized config counts as pre-release")

	require.NoError(t, store.InitAppConfig(ctx, &models.AppConfig{IsReleased: true}))
	_, err = gate.Authorize(ctx, "ops", ActionCreate)
	assert.NoError(t, err)

	_, err = gate.Authorize(ctx, "ops", ActionDelete)
	assert.ErrorIs(t, err, ErrForbidden)
}
