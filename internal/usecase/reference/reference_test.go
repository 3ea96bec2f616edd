package reference

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/hairlogy/barber-booking/internal/infra/memstore"
	"github.com/hairlogy/barber-booking/internal/models"
)

func TestSeed_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := memstore.NewReference()
	seed := NewSeed(repo, "admin123", zap.NewNop(), time.Now)

	require.NoError(t, seed.Execute(ctx))
	require.NoError(t, seed.Execute(ctx))

	barbers, err := NewListBarbers(repo).Execute(ctx)
	require.NoError(t, err)
	require.Len(t, barbers, 2)
	assert.Equal(t, models.BarberID(1), barbers[0].ID)

	services, err := NewListServices(repo).Execute(ctx)
	require.NoError(t, err)
	assert.Len(t, services, 5)

	yasin, barber, err := NewGetStaff(repo).Execute(ctx, "yasin")
	require.NoError(t, err)
	require.NotNil(t, barber)
	assert.Equal(t, "Hıdır Yasin Gökçeoğlu", barber.Name)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(yasin.PasswordHash), []byte("admin123")))

	admin, barber, err := NewGetStaff(repo).Execute(ctx, "admin")
	require.NoError(t, err)
	assert.Nil(t, admin.BarberID)
	assert.Nil(t, barber)
}

func TestSeed_KeepsExistingStaffPassword(t *testing.T) {
	ctx := context.Background()
	repo := memstore.NewReference()
	_, err := repo.EnsureStaff(ctx, &models.StaffUser{Username: "admin", PasswordHash: "custom"})
	require.NoError(t, err)

	require.NoError(t, NewSeed(repo, "admin123", zap.NewNop(), time.Now).Execute(ctx))

	u, err := repo.GetStaff(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "custom", u.PasswordHash)
}
