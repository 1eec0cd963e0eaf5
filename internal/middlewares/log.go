package middlewares

import (
	"log/slog"
	"time"

	"github.com/btmxh/tikgrab/internal/stores"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func LogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.New()
		stores.SetRequestId(c, id)

		slog.Info("Handling request",
			"id", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)
		slog.Info("Finish handling request",
			"id", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"time", elapsed,
		)
	}
}
