package closeddate

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hairlogy/barber-booking/internal/audit"
	domain "github.com/hairlogy/barber-booking/internal/domain/closeddate"
	"github.com/hairlogy/barber-booking/internal/httperr"
	"github.com/hairlogy/barber-booking/internal/models"
	"github.com/hairlogy/barber-booking/internal/timezone"
)

type CreateInput struct {
	StartDate string
	EndDate   string
	Reason    string
	CreatedBy string
}

type Overlap struct {
	ID        string `json:"id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// ======================================================
// CREATE
// ======================================================

type Create struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCreate(repo domain.Repository, audit *audit.Dispatcher, now func() time.Time) *Create {
	return &Create{repo: repo, audit: audit, now: now}
}

func (uc *Create) Execute(ctx context.Context, in CreateInput) (*models.ClosedDateRange, error) {
	start := strings.TrimSpace(in.StartDate)
	end := strings.TrimSpace(in.EndDate)

	if start == "" || end == "" {
		return nil, httperr.Validation("invalid_request", "Start date and end date are required")
	}

	s, errS := timezone.ParseDate(start)
	e, errE := timezone.ParseDate(end)
	if errS != nil || errE != nil {
		return nil, httperr.Validation("invalid_date", "Invalid date format")
	}
	if s.After(e) {
		return nil, httperr.Validation("invalid_range", "Start date must be before or equal to end date")
	}

	existing, err := uc.repo.FindOverlapping(ctx, start, end)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		overlaps := make([]Overlap, 0, len(existing))
		for _, r := range existing {
			overlaps = append(overlaps, Overlap{ID: r.ID, StartDate: r.StartDate, EndDate: r.EndDate})
		}
		return nil, httperr.Conflict(
			"closed_dates_overlap",
			"This date range overlaps with existing closed dates",
			map[string]any{"overlaps": overlaps},
		)
	}

	r := &models.ClosedDateRange{
		ID:        uuid.NewString(),
		StartDate: start,
		EndDate:   end,
		Reason:    strings.TrimSpace(in.Reason),
		CreatedBy: in.CreatedBy,
		CreatedAt: uc.now(),
	}
	if err := uc.repo.Create(ctx, r); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    in.CreatedBy,
		Action:   "closed_dates_created",
		Entity:   "closed_date_range",
		EntityID: r.ID,
		Metadata: map[string]string{"start": start, "end": end},
	})

	return r, nil
}

// ======================================================
// LIST / DELETE
// ======================================================

type List struct {
	repo domain.Repository
}

func NewList(repo domain.Repository) *List {
	return &List{repo: repo}
}

func (uc *List) Execute(ctx context.Context) ([]models.ClosedDateRange, error) {
	return uc.repo.List(ctx)
}

type Delete struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDelete(repo domain.Repository, audit *audit.Dispatcher) *Delete {
	return &Delete{repo: repo, audit: audit}
}

func (uc *Delete) Execute(ctx context.Context, id string, actor string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return httperr.NotFound("closed_date_not_found", "Closed date range not found")
		}
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "closed_dates_deleted",
		Entity:   "closed_date_range",
		EntityID: id,
	})
	return nil
}
