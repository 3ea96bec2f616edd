package closeddate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hairlogy/barber-booking/internal/models"
)

func TestOverlaps(t *testing.T) {
	existing := models.ClosedDateRange{StartDate: "2025-06-10", EndDate: "2025-06-15"}

	cases := []struct {
		name       string
		start, end string
		want       bool
	}{
		{"inside", "2025-06-11", "2025-06-12", true},
		{"covering", "2025-06-01", "2025-06-30", true},
		{"adjacent after", "2025-06-15", "2025-06-20", true},
		{"adjacent before", "2025-06-05", "2025-06-10", true},
		{"before", "2025-06-01", "2025-06-09", false},
		{"after", "2025-06-16", "2025-06-20", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.start, tc.end, existing))
		})
	}
}

func TestCovers(t *testing.T) {
	r := models.ClosedDateRange{StartDate: "2025-06-10", EndDate: "2025-06-10"}

	assert.True(t, Covers(r, "2025-06-10"))
	assert.False(t, Covers(r, "2025-06-11"))
}
