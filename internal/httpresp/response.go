// Package httpresp renders the JSON envelope every action response uses:
// {success, message?, data?, count?}.
package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docterbee/membership-system/internal/httperr"
	"github.com/docterbee/membership-system/internal/logger"
)

type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

func OKMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message})
}

func OKMessageData(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

// List renders a data slice plus its length in the count field.
func List[T any](c *gin.Context, data []T) {
	n := len(data)
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data, Count: &n})
}

// Fail converts a service error into the envelope. Store errors keep their
// detail out of the response and in the server log.
func Fail(c *gin.Context, err error) {
	if httperr.StatusOf(err) == http.StatusInternalServerError {
		log := logger.Get()
		log.Error().Err(err).
			Str("path", c.FullPath()).
			Msg("request failed")
	}
	c.JSON(httperr.StatusOf(err), Envelope{Success: false, Message: httperr.MessageOf(err)})
}
