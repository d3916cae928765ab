package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskflow/internal/core/domain"
	"taskflow/internal/core/ports"
	"taskflow/pkg/apierrors"
)

const (
	UserIDHeader = "X-User-ID"
	principalKey = "principal"
)

// IdentityMiddleware resolves the X-User-ID header into a principal. The
// header is trusted as-is; requests without a usable value stop with 401.
func IdentityMiddleware(authService ports.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := authService.ResolvePrincipal(c.GetHeader(UserIDHeader))
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, GetLang(c)),
			)
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

func GetPrincipal(c *gin.Context) (domain.Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return domain.Principal{}, false
	}
	principal, ok := value.(domain.Principal)
	return principal, ok
}
