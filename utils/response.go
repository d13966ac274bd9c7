package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"hotel-reservation/services"
)

var offered = []string{binding.MIMEJSON, binding.MIMEXML}

// Negotiate writes jsonData or xmlData depending on the Accept header.
// JSON is the default.
func Negotiate(c *gin.Context, code int, jsonData, xmlData interface{}) {
	c.Negotiate(code, gin.Negotiate{
		Offered:  offered,
		JSONData: jsonData,
		XMLData:  xmlData,
	})
}

// StatusFor maps a service error kind to its HTTP status.
func StatusFor(err error) int {
	switch services.KindOf(err) {
	case services.KindNotFound:
		return http.StatusNotFound
	case services.KindBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func JSONError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"success": false, "error": message})
}

// ServiceError answers with the status for err and a client-safe message.
func ServiceError(c *gin.Context, err error) {
	msg := http.StatusText(StatusFor(err))
	var se *services.Error
	if errors.As(err, &se) {
		msg = se.PublicMessage()
	}
	JSONError(c, StatusFor(err), msg)
}
