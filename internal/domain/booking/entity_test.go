package booking

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hairlogy/barber-booking/internal/models"
)

func TestParseStatus(t *testing.T) {
	for _, s := range AllStatuses() {
		got, err := ParseStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParseStatus("done")
	assert.Error(t, err)
}

func TestStatus_HoldsSlot(t *testing.T) {
	assert.True(t, StatusPending.HoldsSlot())
	assert.True(t, StatusCompleted.HoldsSlot())
	assert.False(t, StatusCancelled.HoldsSlot())
}

func TestBarberID_AcceptsNumberAndString(t *testing.T) {
	var in struct {
		A models.BarberID `json:"a"`
		B models.BarberID `json:"b"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"a": 1, "b": "1"}`), &in))
	assert.Equal(t, in.A, in.B)

	assert.Error(t, json.Unmarshal([]byte(`{"a": "one"}`), &in))
}

func TestShouldAutoComplete(t *testing.T) {
	loc := time.FixedZone("TRT", 3*3600)
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, loc)

	past := &models.Booking{AppointmentDate: "2025-06-10", AppointmentTime: "11:00", Status: string(StatusConfirmed)}
	exact := &models.Booking{AppointmentDate: "2025-06-10", AppointmentTime: "12:00", Status: string(StatusConfirmed)}
	future := &models.Booking{AppointmentDate: "2025-06-10", AppointmentTime: "13:00", Status: string(StatusConfirmed)}
	cancelled := &models.Booking{AppointmentDate: "2025-06-01", AppointmentTime: "11:00", Status: string(StatusCancelled)}

	assert.True(t, ShouldAutoComplete(past, now))
	assert.False(t, ShouldAutoComplete(exact, now))
	assert.False(t, ShouldAutoComplete(future, now))
	assert.False(t, ShouldAutoComplete(cancelled, now))
}

func TestSlotKey_String(t *testing.T) {
	b := &models.Booking{BarberID: 2, AppointmentDate: "2025-06-10", AppointmentTime: "11:00"}

	assert.Equal(t, "2:2025-06-10:11:00", KeyOf(b).String())
}
