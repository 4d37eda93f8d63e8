// Package handlers contains HTTP request handlers for the ticket service.
package handlers

import (
	"log"

	"github.com/gin-gonic/gin"
)

// RespondError writes a JSON error response.
func RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// LogAndRespondError logs the underlying error server-side and writes a
// generic JSON error response so internals never leak to the client.
func LogAndRespondError(c *gin.Context, status int, err error, message string) {
	log.Printf("%s %s: %s: %v", c.Request.Method, c.Request.URL.Path, message, err)
	RespondError(c, status, message)
}
