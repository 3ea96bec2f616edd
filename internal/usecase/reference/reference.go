package reference

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/hairlogy/barber-booking/internal/auth"
	domain "github.com/hairlogy/barber-booking/internal/domain/reference"
	"github.com/hairlogy/barber-booking/internal/models"
)

func barberPtr(id models.BarberID) *models.BarberID { return &id }

var defaultBarbers = []models.Barber{
	{
		ID:         1,
		Name:       "Hıdır Yasin Gökçeoğlu",
		Experience: "15+ Yıl Deneyim",
		Specialty:  "Klasik & Modern Kesimler",
		ImageURL:   "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400&fit=crop",
		Active:     true,
	},
	{
		ID:         2,
		Name:       "Emir Gökçeoğlu",
		Experience: "10+ Yıl Deneyim",
		Specialty:  "Fade & Sakal Tasarımı",
		ImageURL:   "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=400&h=400&fit=crop",
		Active:     true,
	},
}

var defaultServices = []models.Service{
	{ID: 1, Name: "Saç Kesimi", DurationMin: 30, Price: 150, Active: true},
	{ID: 2, Name: "Saç ve Sakal", DurationMin: 45, Price: 200, Active: true},
	{ID: 3, Name: "Sakal", DurationMin: 20, Price: 100, Active: true},
	{ID: 4, Name: "Çocuk Tıraşı", DurationMin: 25, Price: 120, Active: true},
	{ID: 5, Name: "Bakım/Mask", DurationMin: 30, Price: 180, Active: true},
}

var defaultStaff = []struct {
	username string
	barberID *models.BarberID
}{
	{"yasin", barberPtr(1)},
	{"emir", barberPtr(2)},
	{"admin", nil},
}

// Seed inserts whatever default barbers, services and staff accounts are
// missing. Existing rows are left untouched.
type Seed struct {
	repo     domain.Repository
	password string
	log      *zap.Logger
	now      func() time.Time
}

func NewSeed(repo domain.Repository, password string, log *zap.Logger, now func() time.Time) *Seed {
	return &Seed{repo: repo, password: password, log: log, now: now}
}

func (uc *Seed) Execute(ctx context.Context) error {
	for _, b := range defaultBarbers {
		b := b
		created, err := uc.repo.EnsureBarber(ctx, &b)
		if err != nil {
			return err
		}
		if created {
			uc.log.Info("default barber created", zap.String("name", b.Name))
		}
	}

	for _, s := range defaultServices {
		s := s
		if _, err := uc.repo.EnsureService(ctx, &s); err != nil {
			return err
		}
	}

	hash, err := auth.HashPassword(uc.password)
	if err != nil {
		return err
	}

	for _, st := range defaultStaff {
		created, err := uc.repo.EnsureStaff(ctx, &models.StaffUser{
			Username:     st.username,
			PasswordHash: hash,
			BarberID:     st.barberID,
			CreatedAt:    uc.now(),
		})
		if err != nil {
			return err
		}
		if created {
			uc.log.Info("staff user created", zap.String("username", st.username))
		}
	}

	return nil
}

type ListBarbers struct {
	repo domain.Repository
}

func NewListBarbers(repo domain.Repository) *ListBarbers {
	return &ListBarbers{repo: repo}
}

func (uc *ListBarbers) Execute(ctx context.Context) ([]models.Barber, error) {
	return uc.repo.ListBarbers(ctx)
}

type ListServices struct {
	repo domain.Repository
}

func NewListServices(repo domain.Repository) *ListServices {
	return &ListServices{repo: repo}
}

func (uc *ListServices) Execute(ctx context.Context) ([]models.Service, error) {
	return uc.repo.ListServices(ctx)
}

// GetStaff backs the staff profile endpoint.
type GetStaff struct {
	repo domain.Repository
}

func NewGetStaff(repo domain.Repository) *GetStaff {
	return &GetStaff{repo: repo}
}

func (uc *GetStaff) Execute(ctx context.Context, username string) (*models.StaffUser, *models.Barber, error) {
	u, err := uc.repo.GetStaff(ctx, username)
	if err != nil {
		return nil, nil, err
	}
	if u.BarberID == nil {
		return u, nil, nil
	}

	b, err := uc.repo.GetBarber(ctx, *u.BarberID)
	if err != nil {
		return u, nil, nil
	}
	return u, b, nil
}
