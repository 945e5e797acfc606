package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const AdminSecretHeader = "X-Admin-API-Secret"

// CORS sets permissive CORS headers on every response and answers
// preflight requests with 204.
func CORS(methods string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", methods)
		h.Set("Access-Control-Allow-Headers", "Content-Type, "+AdminSecretHeader)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
