package routes

import (
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/btmxh/tikgrab/internal/html"
	"github.com/btmxh/tikgrab/internal/middlewares"
	"github.com/btmxh/tikgrab/internal/stores"
	"github.com/btmxh/tikgrab/internal/ui"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func getTemplate(name string, paths ...string) *template.Template {
	return html.GetTemplate(name, paths...)
}

func getPartial(name string, paths ...string) *template.Template {
	return html.GetPartial(name, paths...)
}

func CreateMainRouter() http.Handler {
	router := gin.New()
	router.Use(gin.CustomRecovery(recoverHandler))

	gzipMode, err := strconv.Atoi(os.Getenv("GZIP_MODE"))
	if err != nil {
		slog.Warn("Invalid value for GZIP_MODE environment variable", "err", err)
		gzipMode = 0
	}

	router.Use(gzip.Gzip(gzipMode))
	router.Use(middlewares.LogMiddleware())
	router.Use(BannerErrorMiddleware())

	router.GET("/", HomeRouter)
	ResolveRouter(router.Group("/resolve"))
	HealthRouter(router.Group("/healthz"))

	// only enabled in debug mode
	if gin.Mode() != gin.ReleaseMode {
		BannerRouter(router.Group("/banner"))
	}

	router.Static("/styles", "./www/styles")
	router.StaticFile("/libs/htmx.min.js", "./node_modules/htmx.org/dist/htmx.min.js")

	return router
}

func recoverHandler(c *gin.Context, err any) {
	slog.Error("Panic while handling request",
		"id", stores.GetRequestId(c),
		"path", c.Request.URL.Path,
		"err", err,
	)
	renderErrorResponse(c, "Error", html.StringAsHTML(ui.MsgFetchFailed))
	c.Abort()
}
