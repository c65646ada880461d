// internal/stub/response.go
package stub

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The stub speaks the production wire format: every payload carries a
// success flag at the top level, and failures carry a message.

func ok(c *gin.Context, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

func badRequest(c *gin.Context, message string) {
	fail(c, http.StatusBadRequest, message)
}

func unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "authentication required"
	}
	fail(c, http.StatusUnauthorized, message)
}

func notFound(c *gin.Context, message string) {
	fail(c, http.StatusNotFound, message)
}
