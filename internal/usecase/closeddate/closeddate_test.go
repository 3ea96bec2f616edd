package closeddate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hairlogy/barber-booking/internal/audit"
	"github.com/hairlogy/barber-booking/internal/httperr"
	"github.com/hairlogy/barber-booking/internal/infra/memstore"
)

func setup(t *testing.T) (*Create, *List, *Delete) {
	t.Helper()

	repo := memstore.NewClosedDates()
	d := audit.NewDispatcher(audit.New(memstore.NewAuditLogs()), zap.NewNop())
	t.Cleanup(d.Close)

	now := func() time.Time { return time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC) }
	return NewCreate(repo, d, now), NewList(repo), NewDelete(repo, d)
}

func TestCreate_RejectsOverlapAndReportsIt(t *testing.T) {
	create, _, _ := setup(t)
	ctx := context.Background()

	first, err := create.Execute(ctx, CreateInput{StartDate: "2025-06-10", EndDate: "2025-06-15", Reason: "Bayram"})
	require.NoError(t, err)

	_, err = create.Execute(ctx, CreateInput{StartDate: "2025-06-12", EndDate: "2025-06-20"})
	be, ok := httperr.AsBusiness(err)
	require.True(t, ok)
	assert.Equal(t, "closed_dates_overlap", be.Code)
	assert.Equal(t, 400, be.Status)

	overlaps := be.Details["overlaps"].([]Overlap)
	require.Len(t, overlaps, 1)
	assert.Equal(t, first.ID, overlaps[0].ID)
}

func TestCreate_AdjacentSharingADayIsRejected(t *testing.T) {
	create, _, _ := setup(t)
	ctx := context.Background()

	_, err := create.Execute(ctx, CreateInput{StartDate: "2025-06-10", EndDate: "2025-06-15"})
	require.NoError(t, err)

	_, err = create.Execute(ctx, CreateInput{StartDate: "2025-06-15", EndDate: "2025-06-18"})
	assert.True(t, httperr.IsBusiness(err, "closed_dates_overlap"))

	_, err = create.Execute(ctx, CreateInput{StartDate: "2025-06-16", EndDate: "2025-06-18"})
	assert.NoError(t, err)
}

func TestCreate_Validation(t *testing.T) {
	create, _, _ := setup(t)
	ctx := context.Background()

	_, err := create.Execute(ctx, CreateInput{StartDate: "2025-06-10"})
	assert.True(t, httperr.IsBusiness(err, "invalid_request"))

	_, err = create.Execute(ctx, CreateInput{StartDate: "2025-06-10", EndDate: "10-06-2025"})
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))

	_, err = create.Execute(ctx, CreateInput{StartDate: "2025-06-10", EndDate: "2025-06-09"})
	assert.True(t, httperr.IsBusiness(err, "invalid_range"))
}

func TestListAndDelete(t *testing.T) {
	create, list, del := setup(t)
	ctx := context.Background()

	late, err := create.Execute(ctx, CreateInput{StartDate: "2025-08-01", EndDate: "2025-08-02"})
	require.NoError(t, err)
	_, err = create.Execute(ctx, CreateInput{StartDate: "2025-07-01", EndDate: "2025-07-01"})
	require.NoError(t, err)

	all, err := list.Execute(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "2025-07-01", all[0].StartDate)

	require.NoError(t, del.Execute(ctx, late.ID, "admin"))
	assert.True(t, httperr.IsBusiness(del.Execute(ctx, late.ID, "admin"), "closed_date_not_found"))
}
