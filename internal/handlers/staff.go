package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/hairlogy/barber-booking/internal/domain/booking"
	"github.com/hairlogy/barber-booking/internal/middleware"
)

// staffScope reads the authenticated staff member and applies showAll.
func staffScope(c *gin.Context) domain.StaffScope {
	scope, _ := middleware.Staff(c)
	scope.ShowAll = c.Query("showAll") == "true"
	return scope
}

func actor(c *gin.Context) string {
	scope, _ := middleware.Staff(c)
	return scope.Username
}
