package reference

import (
	"context"
	"errors"

	"github.com/hairlogy/barber-booking/internal/models"
)

var ErrNotFound = errors.New("reference record not found")

type Repository interface {
	// List methods return active rows only.

	// -------- Barbers --------
	ListBarbers(ctx context.Context) ([]models.Barber, error)
	GetBarber(ctx context.Context, id models.BarberID) (*models.Barber, error)
	EnsureBarber(ctx context.Context, b *models.Barber) (bool, error)

	// -------- Services --------
	ListServices(ctx context.Context) ([]models.Service, error)
	GetServiceByName(ctx context.Context, name string) (*models.Service, error)
	EnsureService(ctx context.Context, s *models.Service) (bool, error)

	// -------- Staff --------
	GetStaff(ctx context.Context, username string) (*models.StaffUser, error)
	EnsureStaff(ctx context.Context, u *models.StaffUser) (bool, error)
}
