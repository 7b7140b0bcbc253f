package middleware

import (
	"context"
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"travelbooker/internal/domain"
)

// CallerHeader names the header carrying the caller's user id. The id is
// trusted as-is: there is no token auth on this API.
const CallerHeader = "X-User-ID"

type UserGetter interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// RequireRole denies the request unless the caller resolves to a stored
// user holding exactly the given role. A missing header, an unknown id and
// a wrong role all produce the same response, so the caller learns nothing
// about which check failed.
func RequireRole(users UserGetter, role domain.Role) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		callerID := c.GetHeader(CallerHeader)
		if callerID == "" {
			deny(c)
			return
		}

		user, err := users.GetByID(c.Request.Context(), callerID)
		if err != nil || user.Role != role {
			deny(c)
			return
		}

		c.Next()
	}
}

func deny(c *ginext.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": "Access denied"})
}
