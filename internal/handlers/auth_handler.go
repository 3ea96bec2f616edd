package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hairlogy/barber-booking/internal/auth"
	"github.com/hairlogy/barber-booking/internal/domain/reference"
	"github.com/hairlogy/barber-booking/internal/httperr"
	"github.com/hairlogy/barber-booking/internal/httpresp"
	"github.com/hairlogy/barber-booking/internal/middleware"
	ucReference "github.com/hairlogy/barber-booking/internal/usecase/reference"
)

type AuthHandler struct {
	auth     *auth.Service
	getStaff *ucReference.GetStaff
}

func NewAuthHandler(svc *auth.Service, getStaff *ucReference.GetStaff) *AuthHandler {
	return &AuthHandler{auth: svc, getStaff: getStaff}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Username and password are required")
		return
	}

	res, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, res)
}

func (h *AuthHandler) Me(c *gin.Context) {
	scope, ok := middleware.Staff(c)
	if !ok {
		httperr.Write(c, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}

	user, barber, err := h.getStaff.Execute(c.Request.Context(), scope.Username)
	if errors.Is(err, reference.ErrNotFound) {
		httperr.Write(c, http.StatusNotFound, "staff_not_found", "Staff user not found")
		return
	}
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"username":  user.Username,
		"barber_id": user.BarberID,
		"barber":    barber,
	})
}
