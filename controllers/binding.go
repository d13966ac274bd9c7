package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// bindEntity decodes the body as XML when the request says so, JSON otherwise.
func bindEntity(c *gin.Context, obj interface{}) error {
	if c.ContentType() == binding.MIMEXML || c.ContentType() == binding.MIMEXML2 {
		return c.ShouldBindXML(obj)
	}
	return c.ShouldBindJSON(obj)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
