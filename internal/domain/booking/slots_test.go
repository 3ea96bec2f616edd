package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultGrid(t *testing.T) {
	all := DefaultGrid.All()

	assert.Len(t, all, 11)
	assert.Equal(t, "10:00", all[0])
	assert.Equal(t, "20:00", all[len(all)-1])
	assert.True(t, DefaultGrid.IsBreak("16:00"))
	assert.False(t, DefaultGrid.IsBreak("15:00"))
	assert.Equal(t, []string{"16:00"}, DefaultGrid.Breaks())
	assert.NotContains(t, DefaultGrid.Bookable(), "16:00")
	assert.Len(t, DefaultGrid.Bookable(), 10)
}

func TestGrid_Contains(t *testing.T) {
	assert.True(t, DefaultGrid.Contains("11:00"))
	assert.False(t, DefaultGrid.Contains("11:30"))
	assert.False(t, DefaultGrid.Contains("09:00"))
}

func TestGrid_AllReturnsCopy(t *testing.T) {
	all := DefaultGrid.All()
	all[0] = "x"

	assert.Equal(t, "10:00", DefaultGrid.All()[0])
}

func TestGrid_Upcoming(t *testing.T) {
	loc := time.FixedZone("TRT", 3*3600)
	now := time.Date(2025, 6, 10, 13, 30, 0, 0, loc)
	labels := []string{"10:00", "13:00", "14:00", "20:00"}

	assert.Equal(t, []string{"14:00", "20:00"}, DefaultGrid.Upcoming(labels, "2025-06-10", now))
	assert.Equal(t, labels, DefaultGrid.Upcoming(labels, "2025-06-11", now))
}
