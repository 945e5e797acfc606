package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"cardapio_digital/internal/domain/entities"
	"cardapio_digital/internal/usecase"
	"cardapio_digital/pkg"

	"github.com/gin-gonic/gin"
)

const sessionContextKey = "session"

var (
	errSessionRequired = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Sessão inválida ou expirada.", http.StatusUnauthorized)
	errAdminRequired   = pkg.NewDomainErrorSimple("FORBIDDEN", "Acesso restrito a administradores.", http.StatusForbidden)
)

// BearerToken extracts the token of an "Authorization: Bearer <token>"
// header, or "" when absent.
func BearerToken(c *gin.Context) string {
	h := strings.TrimSpace(c.GetHeader("Authorization"))
	const prefix = "bearer "
	if len(h) <= len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(h[len(prefix):])
}

// RequireAdmin admits requests carrying a live session of an admin user and
// stores the session in the gin context.
func RequireAdmin(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := auth.IsAdmin(c.Request.Context(), BearerToken(c))
		if err != nil {
			var appErr *pkg.AppError
			switch {
			case errors.Is(err, usecase.ErrUnauthorized):
				appErr = errSessionRequired
			case errors.Is(err, usecase.ErrForbidden):
				appErr = errAdminRequired
			default:
				appErr = pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
			}
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Set(sessionContextKey, session)
		c.Next()
	}
}

// SessionFrom returns the session stored by RequireAdmin.
func SessionFrom(c *gin.Context) (entities.Session, bool) {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return entities.Session{}, false
	}
	s, ok := v.(entities.Session)
	return s, ok
}
