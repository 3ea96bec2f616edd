package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/hairlogy/barber-booking/internal/domain/booking"
	"github.com/hairlogy/barber-booking/internal/httperr"
	"github.com/hairlogy/barber-booking/internal/httpresp"
	"github.com/hairlogy/barber-booking/internal/models"
	"github.com/hairlogy/barber-booking/internal/timezone"
	ucBooking "github.com/hairlogy/barber-booking/internal/usecase/booking"
	ucReference "github.com/hairlogy/barber-booking/internal/usecase/reference"
)

// ======================================================
// HANDLER
// ======================================================

type PublicHandler struct {
	listBarbers  *ucReference.ListBarbers
	listServices *ucReference.ListServices
	availability *ucBooking.GetAvailability
	create       *ucBooking.CreateBooking
	reminder     *ucBooking.MarkReminderSent
	now          timezone.Clock
}

func NewPublicHandler(
	listBarbers *ucReference.ListBarbers,
	listServices *ucReference.ListServices,
	availability *ucBooking.GetAvailability,
	create *ucBooking.CreateBooking,
	reminder *ucBooking.MarkReminderSent,
	now timezone.Clock,
) *PublicHandler {
	return &PublicHandler{
		listBarbers:  listBarbers,
		listServices: listServices,
		availability: availability,
		create:       create,
		reminder:     reminder,
		now:          now,
	}
}

// ======================================================
// REFERENCE DATA
// ======================================================

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	barbers, err := h.listBarbers.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Slice(c, barbers)
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	services, err := h.listServices.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Slice(c, services)
}

// ======================================================
// AVAILABILITY
// ======================================================

// AvailableTimes returns the raw server view. With upcoming=true the labels
// that already started today are dropped from availableTimes as well.
func (h *PublicHandler) AvailableTimes(c *gin.Context) {
	barberRaw := c.Query("barberId")
	date := c.Query("date")
	if barberRaw == "" || date == "" {
		httperr.BadRequest(c, "invalid_request", "barberId and date are required")
		return
	}

	barberID, err := models.ParseBarberID(barberRaw)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber", "barberId must be a positive number")
		return
	}

	out, err := h.availability.Execute(c.Request.Context(), barberID, date)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if c.Query("upcoming") == "true" {
		out.Available = domain.DefaultGrid.Upcoming(out.Available, date, h.now())
	}

	httpresp.OK(c, out)
}

// ======================================================
// BOOKINGS
// ======================================================

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req ucBooking.CreateBookingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Geçersiz istek.")
		return
	}

	b, err := h.create.Execute(c.Request.Context(), req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"id":      b.ID,
		"message": "Booking created successfully",
	})
}

func (h *PublicHandler) SendReminder(c *gin.Context) {
	if err := h.reminder.Execute(c.Request.Context(), c.Param("id")); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, "Reminder sent successfully")
}

func Health(now timezone.Clock) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": now().UTC().Format(time.RFC3339),
		})
	}
}
