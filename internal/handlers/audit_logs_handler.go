package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hairlogy/barber-booking/internal/audit"
	"github.com/hairlogy/barber-booking/internal/httperr"
	"github.com/hairlogy/barber-booking/internal/httpresp"
	"github.com/hairlogy/barber-booking/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	store audit.Store
}

func NewAuditLogsHandler(store audit.Store) *AuditLogsHandler {
	return &AuditLogsHandler{store: store}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	q := audit.Query{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Offset: (page - 1) * limit,
		Limit:  limit,
	}

	// --------------------------------------------------
	// Optional date window
	// --------------------------------------------------
	if from, err := timezone.ParseDate(c.Query("from")); err == nil {
		q.From = &from
	}
	if to, err := timezone.ParseDate(c.Query("to")); err == nil {
		end := to.Add(24 * time.Hour)
		q.To = &end
	}

	logs, total, err := h.store.List(c.Request.Context(), q)
	if err != nil {
		httperr.Internal(c, "audit_list_failed", "Failed to list audit logs")
		return
	}

	httpresp.Page(c, page, limit, total, logs)
}
