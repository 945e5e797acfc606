package middlewares

import (
	"crypto/subtle"
	"net/http"

	"cardapio_digital/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

var (
	errSecretNotConfigured = pkg.NewDomainErrorSimple("CONFIGURATION_ERROR", "Configuration error on server.", http.StatusInternalServerError)
	errSecretMismatch      = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unauthorized: Missing or invalid API secret.", http.StatusUnauthorized)
)

// AdminSecret guards machine-to-machine admin endpoints with a shared secret
// sent in the X-Admin-API-Secret header.
func AdminSecret(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			log.Printf("[admin][middleware] ADMIN_API_SECRET is not set path=%s", c.FullPath())
			c.AbortWithStatusJSON(errSecretNotConfigured.HTTPStatus, errSecretNotConfigured.ToHTTPError())
			return
		}

		provided := c.GetHeader(AdminSecretHeader)
		if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			state := "missing"
			if provided != "" {
				state = "provided but incorrect"
			}
			log.Printf("[admin][middleware] unauthorized access attempt path=%s secret=%s", c.FullPath(), state)
			c.AbortWithStatusJSON(errSecretMismatch.HTTPStatus, errSecretMismatch.ToHTTPError())
			return
		}
		c.Next()
	}
}
