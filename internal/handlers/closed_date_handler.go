package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hairlogy/barber-booking/internal/httperr"
	"github.com/hairlogy/barber-booking/internal/httpresp"
	ucClosed "github.com/hairlogy/barber-booking/internal/usecase/closeddate"
)

type ClosedDateHandler struct {
	create *ucClosed.Create
	list   *ucClosed.List
	delete *ucClosed.Delete
}

func NewClosedDateHandler(create *ucClosed.Create, list *ucClosed.List, remove *ucClosed.Delete) *ClosedDateHandler {
	return &ClosedDateHandler{create: create, list: list, delete: remove}
}

type CreateClosedDateRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

func (h *ClosedDateHandler) List(c *gin.Context) {
	ranges, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Slice(c, ranges)
}

func (h *ClosedDateHandler) Create(c *gin.Context) {
	var req CreateClosedDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body")
		return
	}

	cr, err := h.create.Execute(c.Request.Context(), ucClosed.CreateInput{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
		CreatedBy: actor(c),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"id":         cr.ID,
		"start_date": cr.StartDate,
		"end_date":   cr.EndDate,
		"reason":     cr.Reason,
		"message":    "Closed date range created successfully",
	})
}

func (h *ClosedDateHandler) Delete(c *gin.Context) {
	if err := h.delete.Execute(c.Request.Context(), c.Param("id"), actor(c)); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, "Closed date range deleted successfully")
}
