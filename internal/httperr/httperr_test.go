package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respond(t *testing.T, err error) (int, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Respond(c, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestRespond_RateLimited(t *testing.T) {
	code, body := respond(t, RateLimited("too many bookings", 1.96))

	assert.Equal(t, http.StatusTooManyRequests, code)
	assert.Equal(t, "device_limit_reached", body["error_code"])
	assert.Equal(t, 2.0, body["hoursRemaining"])
}

func TestRespond_WrappedBusinessError(t *testing.T) {
	err := fmt.Errorf("create: %w", NotFound("booking_not_found", "booking not found"))

	code, body := respond(t, err)

	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "booking not found", body["error"])
}

func TestRespond_ConflictIs400WithDetails(t *testing.T) {
	code, body := respond(t, Conflict("closed_dates_overlap", "overlap", map[string]any{"overlaps": []string{"a"}}))

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, []any{"a"}, body["overlaps"])
}

func TestRespond_UnexpectedErrorSurfacesMessage(t *testing.T) {
	code, body := respond(t, errors.New("connection refused"))

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "connection refused", body["error"])
}

func TestIsBusiness(t *testing.T) {
	assert.True(t, IsBusiness(Conflict("slot_taken", "taken", nil), "slot_taken"))
	assert.False(t, IsBusiness(errors.New("slot_taken"), "slot_taken"))
}
