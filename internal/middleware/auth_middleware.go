package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gicotto/MyTaskApp/internal/auth"
)

const identityKey = "identity"

// RequireAuth validates the auth_token cookie and stores the resolved
// Identity in the request context. Anonymous requests never see
// protected content: they are redirected to the login page.
func RequireAuth(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie("auth_token")
		if err != nil || tokenStr == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		identity, err := svc.Authenticate(c.Request.Context(), tokenStr)
		if err != nil {
			c.SetCookie("auth_token", "", -1, "/", "", false, true)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// RequirePermission rejects sessions that do not carry the named need.
// It runs after RequireAuth: an authenticated user without the
// permission gets 403, never a redirect.
func RequirePermission(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := IdentityFrom(c)
		if identity == nil || !identity.HasPermission(name) {
			c.String(http.StatusForbidden, "Forbidden: %s permission required", name)
			c.Abort()
			return
		}
		c.Next()
	}
}

// IdentityFrom returns the Identity stored by RequireAuth, or nil when
// the request is anonymous.
func IdentityFrom(c *gin.Context) *auth.Identity {
	if v, ok := c.Get(identityKey); ok {
		if id, ok := v.(*auth.Identity); ok {
			return id
		}
	}
	return nil
}
