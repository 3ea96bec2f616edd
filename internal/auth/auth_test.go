package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hairlogy/barber-booking/internal/domain/reference"
	"github.com/hairlogy/barber-booking/internal/httperr"
	"github.com/hairlogy/barber-booking/internal/models"
)

type staffMap map[string]models.StaffUser

func (m staffMap) GetStaff(_ context.Context, username string) (*models.StaffUser, error) {
	u, ok := m[username]
	if !ok {
		return nil, reference.ErrNotFound
	}
	return &u, nil
}

func newService(t *testing.T) *Service {
	t.Helper()

	hash, err := HashPassword("admin123")
	require.NoError(t, err)

	barber := models.BarberID(1)
	staff := staffMap{
		"yasin": {Username: "yasin", PasswordHash: hash, BarberID: &barber},
		"admin": {Username: "admin", PasswordHash: hash},
	}
	return NewService(staff, "secret", 24*time.Hour)
}

func TestLogin_RoundTrip(t *testing.T) {
	s := newService(t)

	res, err := s.Login(context.Background(), "yasin", "admin123")
	require.NoError(t, err)
	require.NotNil(t, res.BarberID)
	assert.Equal(t, models.BarberID(1), *res.BarberID)

	claims, err := s.Parse(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "yasin", claims.Username)
	require.NotNil(t, claims.BarberID)
	assert.Equal(t, models.BarberID(1), *claims.BarberID)
}

func TestLogin_UnscopedStaff(t *testing.T) {
	s := newService(t)

	res, err := s.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)

	claims, err := s.Parse(res.Token)
	require.NoError(t, err)
	assert.Nil(t, claims.BarberID)
}

func TestLogin_Failures(t *testing.T) {
	s := newService(t)

	_, err := s.Login(context.Background(), "yasin", "wrong")
	assert.True(t, httperr.IsBusiness(err, "invalid_credentials"))

	_, err = s.Login(context.Background(), "ghost", "admin123")
	assert.True(t, httperr.IsBusiness(err, "invalid_credentials"))

	_, err = s.Login(context.Background(), "", "")
	assert.True(t, httperr.IsBusiness(err, "invalid_request"))
}

func TestParse_Expired(t *testing.T) {
	s := newService(t)
	res, err := s.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)

	s.now = func() time.Time { return time.Now().Add(25 * time.Hour) }

	_, err = s.Parse(res.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_WrongSecret(t *testing.T) {
	s := newService(t)
	res, err := s.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)

	other := NewService(staffMap{}, "other", time.Hour)
	_, err = other.Parse(res.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
