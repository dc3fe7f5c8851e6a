package middleware

import (
	"blog-api/helper"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ErrorHandler turns the last error pushed with c.Error into a JSON response
// when the handler did not write one itself.
func ErrorHandler(h *helper.HTTPHelper) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		h.SendServiceError(c, c.Errors.Last().Err)
	}
}

// Recovery answers a panicking handler with a generic 500.
func Recovery(h *helper.HTTPHelper) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		h.Log.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"panic":  recovered,
		}).Error("Recovered from panic")
		h.SendServerError(c)
	})
}
