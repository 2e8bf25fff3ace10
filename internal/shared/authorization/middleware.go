package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sanad/internal/shared/constants"
	"sanad/internal/shared/utils"
)

// RequireAdmin rejects callers whose token does not carry the admin panel
// permission. It must run after the auth middleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(constants.ContextKeyIsAdmin) {
			utils.ErrorResponse(c, http.StatusForbidden, "Permission denied")
			c.Abort()
			return
		}
		c.Next()
	}
}
