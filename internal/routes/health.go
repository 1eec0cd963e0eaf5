package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func HealthRouter(g *gin.RouterGroup) {
	g.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
