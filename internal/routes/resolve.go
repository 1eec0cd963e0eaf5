package routes

import (
	"errors"
	"net/http"

	"github.com/btmxh/tikgrab/internal/errs"
	"github.com/btmxh/tikgrab/internal/html"
	"github.com/btmxh/tikgrab/internal/media"
	"github.com/btmxh/tikgrab/internal/ui"
	"github.com/gin-gonic/gin"
)

var resultTemplate = getPartial("result", "templates/result.tmpl")

func ResolveRouter(g *gin.RouterGroup) {
	g.POST("", resolveHandler)
}

func resolveHandler(c *gin.Context) {
	handler := errs.NewGinErrorHandler(c, "Unable to resolve link")
	state := ui.Submit(c.Request.Context(), media.DefaultResolver, c.PostForm("link"))

	switch state.Phase {
	case ui.PhaseSuccess:
		html.Render(resultTemplate, c, "content", gin.H{"Media": state.Media})
	case ui.PhaseError:
		handler.PublicError(http.StatusUnprocessableEntity, errors.New(state.Message))
	}
}
