package routes

import (
	"html/template"
	"log/slog"

	"github.com/btmxh/tikgrab/internal/html"
	"github.com/btmxh/tikgrab/internal/middlewares"
	"github.com/gin-gonic/gin"
)

func Banner(c *gin.Context, kind html.BannerKind, title template.HTML, description template.HTML) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := html.RenderBanner(c.Writer, kind, title, description); err != nil {
		slog.Warn("Unable to render banner", "err", err)
	}
}

// BannerErrorMiddleware renders accumulated request errors as an error
// banner for htmx fragment requests, or as the full error page
// otherwise.
func BannerErrorMiddleware() gin.HandlerFunc {
	return middlewares.ErrorMiddleware(renderErrorResponse)
}

func renderErrorResponse(c *gin.Context, title, description template.HTML) {
	if c.GetHeader("HX-Request") == "true" {
		Banner(c, html.BannerError, title, description)
	} else {
		html.RenderError(c, title, description)
	}
}

func BannerRouter(g *gin.RouterGroup) {
	g.GET("/error", func(c *gin.Context) {
		Banner(c, html.BannerError, "Test error message", "Hello, World!")
	})
	g.GET("/info", func(c *gin.Context) {
		Banner(c, html.BannerInfo, "Test info message", "Hello, World!")
	})
}
