package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// bridge runs a net/http middleware inside the gin chain.
func bridge(mw func(http.Handler) http.Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Bridge handler to allow net/http middleware execution
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c.Request = r
			c.Next()
		})

		mw(next).ServeHTTP(c.Writer, c.Request)

		// If the middleware already handled the response, stop Gin chain
		if c.Writer.Written() {
			c.Abort()
		}
	}
}

// GinLoadSession adapts LoadSession to Gin.
func GinLoadSession(auth *AuthMiddleware) gin.HandlerFunc {
	return bridge(auth.LoadSession)
}

// GinRequireAuth adapts RequireAuth to Gin.
func GinRequireAuth(auth *AuthMiddleware) gin.HandlerFunc {
	return bridge(auth.RequireAuth)
}

// GinRequireAuthRedirect sends anonymous browsers to target instead of
// answering 401. Used for HTML screens.
func GinRequireAuthRedirect(target string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !StateFromContext(c.Request.Context()).Authenticated() {
			c.Redirect(http.StatusSeeOther, target)
			c.Abort()
			return
		}
		c.Next()
	}
}
