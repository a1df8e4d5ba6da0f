package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger writes one line per request with the status and latency.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		line := "%s %s %s %d %s"
		if len(c.Errors) > 0 {
			log.Printf(line+" errors=%s", c.Request.Method, c.Request.URL.Path, c.ClientIP(), status, time.Since(start), c.Errors.String())
			return
		}
		log.Printf(line, c.Request.Method, c.Request.URL.Path, c.ClientIP(), status, time.Since(start))
	}
}
