package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hairlogy/barber-booking/internal/httperr"
	"github.com/hairlogy/barber-booking/internal/httpresp"
	"github.com/hairlogy/barber-booking/internal/models"
	ucBooking "github.com/hairlogy/barber-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	list   *ucBooking.ListBookings
	get    *ucBooking.GetBooking
	update *ucBooking.UpdateStatus
	delete *ucBooking.DeleteBooking
	stats  *ucBooking.GetStats
}

func NewBookingHandler(
	list *ucBooking.ListBookings,
	get *ucBooking.GetBooking,
	update *ucBooking.UpdateStatus,
	remove *ucBooking.DeleteBooking,
	stats *ucBooking.GetStats,
) *BookingHandler {
	return &BookingHandler{
		list:   list,
		get:    get,
		update: update,
		delete: remove,
		stats:  stats,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	in := ucBooking.ListBookingsInput{
		Status: c.Query("status"),
		Date:   c.Query("date"),
		Scope:  staffScope(c),
	}

	if raw := c.Query("barberId"); raw != "" && raw != "all" {
		id, err := models.ParseBarberID(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_barber", "barberId must be a positive number")
			return
		}
		in.BarberID = &id
	}

	bookings, err := h.list.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Slice(c, bookings)
}

// ======================================================
// SINGLE BOOKING
// ======================================================

func (h *BookingHandler) Get(c *gin.Context) {
	b, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, b)
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body")
		return
	}

	if err := h.update.Execute(c.Request.Context(), c.Param("id"), req.Status, actor(c)); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "Booking updated successfully")
}

func (h *BookingHandler) Delete(c *gin.Context) {
	if err := h.delete.Execute(c.Request.Context(), c.Param("id"), actor(c)); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, "Booking deleted successfully")
}

// ======================================================
// STATS
// ======================================================

func (h *BookingHandler) Stats(c *gin.Context) {
	stats, err := h.stats.Execute(c.Request.Context(), staffScope(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, stats)
}
