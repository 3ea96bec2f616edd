package booking

import (
	"fmt"
	"time"

	"github.com/hairlogy/barber-booking/internal/timezone"
)

// Grid is the fixed daily sequence of bookable hour labels.
type Grid struct {
	labels []string
	breaks map[string]bool
}

// DefaultGrid is the shop's working day: 10:00 to 20:00 hourly with a
// break at 16:00.
var DefaultGrid = NewGrid(10, 20, "16:00")

func NewGrid(firstHour, lastHour int, breaks ...string) Grid {
	labels := make([]string, 0, lastHour-firstHour+1)
	for h := firstHour; h <= lastHour; h++ {
		labels = append(labels, fmt.Sprintf("%02d:00", h))
	}

	b := make(map[string]bool, len(breaks))
	for _, label := range breaks {
		b[label] = true
	}

	return Grid{labels: labels, breaks: b}
}

func (g Grid) All() []string {
	out := make([]string, len(g.labels))
	copy(out, g.labels)
	return out
}

func (g Grid) IsBreak(label string) bool {
	return g.breaks[label]
}

func (g Grid) Contains(label string) bool {
	for _, l := range g.labels {
		if l == label {
			return true
		}
	}
	return false
}

func (g Grid) Breaks() []string {
	var out []string
	for _, l := range g.labels {
		if g.breaks[l] {
			out = append(out, l)
		}
	}
	return out
}

// Bookable returns All minus the break labels.
func (g Grid) Bookable() []string {
	out := make([]string, 0, len(g.labels))
	for _, l := range g.labels {
		if !g.breaks[l] {
			out = append(out, l)
		}
	}
	return out
}

// Upcoming drops labels that have already started when date is today in
// now's location. Other dates are returned unchanged.
func (g Grid) Upcoming(labels []string, date string, now time.Time) []string {
	if timezone.FormatDate(now) != date {
		return labels
	}

	out := make([]string, 0, len(labels))
	for _, l := range labels {
		t, err := timezone.ParseDateTimeIn(date, l, now.Location())
		if err != nil {
			continue
		}
		if t.After(now) {
			out = append(out, l)
		}
	}
	return out
}
