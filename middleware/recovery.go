package middleware

import (
	"net/http"

	"github.com/titobalza/apirest-starwars/utils"

	"github.com/gin-gonic/gin"
)

// RecoveryMiddleware logs panics and converts them into a JSON 500, so a
// failing handler never takes more than its own request down.
func RecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		utils.LogPanic(recovered, "HTTP Request")

		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		c.Abort()
	})
}
