package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"vdcdisplay/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Recovery middleware catches panic and converts it to standard error response.
// The polling front-end always gets a JSON body back; the stack trace is only
// exposed in debug mode.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				stack := debug.Stack()

				logger.ErrorCtx(c.Request.Context(),
					"panic recovered: %v\nstack:\n%s",
					err,
					string(stack),
				)

				if gin.Mode() == gin.DebugMode {
					c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
						"error": fmt.Sprintf("%v", err),
						"stack": string(stack),
					})
					return
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "internal server error",
				})
			}
		}()

		c.Next()
	}
}
