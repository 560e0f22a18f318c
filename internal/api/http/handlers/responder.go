package handlers

import (
	"github.com/abrshewube/Google-Flights-Clone/internal/api/http/dto"
	"github.com/gin-gonic/gin"
)

func writeJSON(c *gin.Context, status int, payload interface{}) {
	if payload == nil {
		c.Status(status)
		return
	}
	c.JSON(status, payload)
}

func writeError(c *gin.Context, status int, code, message string) {
	writeJSON(c, status, dto.ErrorResponse{Error: code, Message: message})
}
