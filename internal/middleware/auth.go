package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hairlogy/barber-booking/internal/auth"
	"github.com/hairlogy/barber-booking/internal/domain/booking"
	"github.com/hairlogy/barber-booking/internal/httperr"
)

const ContextStaff = "staff"

type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

func AuthMiddleware(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing_authorization_header", "Authorization header required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			abortUnauthorized(c, "invalid_authorization_header", "Invalid authorization header")
			return
		}

		claims, err := tokens.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			abortUnauthorized(c, "invalid_token", "Invalid or expired token")
			return
		}

		c.Set(ContextStaff, booking.StaffScope{
			Username: claims.Username,
			BarberID: claims.BarberID,
		})

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, code, message string) {
	httperr.Write(c, http.StatusUnauthorized, code, message)
	c.Abort()
}

// Staff returns the scope set by AuthMiddleware.
func Staff(c *gin.Context) (booking.StaffScope, bool) {
	v, ok := c.Get(ContextStaff)
	if !ok {
		return booking.StaffScope{}, false
	}
	scope, ok := v.(booking.StaffScope)
	return scope, ok
}
