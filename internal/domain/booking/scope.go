package booking

import "github.com/hairlogy/barber-booking/internal/models"

// StaffScope is the logged-in staff member. A non-nil BarberID limits the
// default view to that barber's bookings unless ShowAll is set.
type StaffScope struct {
	Username string
	BarberID *models.BarberID
	ShowAll  bool
}

// Barber returns the barber the view is restricted to, or nil.
func (s StaffScope) Barber() *models.BarberID {
	if s.ShowAll || s.BarberID == nil {
		return nil
	}
	return s.BarberID
}
