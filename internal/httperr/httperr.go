package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Error string `json:"error"`
	Code  string `json:"error_code"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Error: message,
		Code:  code,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// Respond translates err into a response. Business errors keep their own
// status and details; anything else is a 500 carrying the error text.
func Respond(c *gin.Context, err error) {
	be, ok := AsBusiness(err)
	if !ok {
		Internal(c, "internal_error", err.Error())
		return
	}

	status := be.Status
	if status == 0 {
		status = http.StatusBadRequest
	}

	if len(be.Details) == 0 {
		Write(c, status, be.Code, be.Error())
		return
	}

	body := gin.H{
		"error":      be.Error(),
		"error_code": be.Code,
	}
	for k, v := range be.Details {
		body[k] = v
	}
	c.JSON(status, body)
}
