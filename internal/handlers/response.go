// Package handlers contains HTTP request handlers for the auth service.
package handlers

import (
	"log"

	"github.com/gin-gonic/gin"
)

// ServiceResponse is the uniform envelope returned by every endpoint.
type ServiceResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func respond(c *gin.Context, status int, message string, data any) {
	c.JSON(status, ServiceResponse{Message: message, Data: data})
}

func respondError(c *gin.Context, status int, message string) {
	respond(c, status, message, nil)
}

func logAndRespondError(c *gin.Context, status int, err error, message string) {
	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	respondError(c, status, message)
}
