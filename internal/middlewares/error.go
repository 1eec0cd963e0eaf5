package middlewares

import (
	"html/template"
	"log/slog"
	"strings"

	"github.com/btmxh/tikgrab/internal/html"
	"github.com/btmxh/tikgrab/internal/stores"
	"github.com/dchest/uniuri"
	"github.com/gin-gonic/gin"
)

// ErrorMiddleware collects errors accumulated during the request and
// hands the displayable ones to the callback after the handler chain
// finishes. Private errors are logged under a short reference code
// that also shows up in the fallback message.
func ErrorMiddleware(callback func(c *gin.Context, title, desc template.HTML)) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			title := stores.GetErrorTitle(c)
			ref := uniuri.NewLen(8)
			slog.Warn("Error handling request", "title", title, "ref", ref, "errors", c.Errors)

			var descriptions []string
			for _, err := range c.Errors {
				if err.Type == gin.ErrorTypePublic {
					descriptions = append(descriptions, string(html.StringAsHTML(err.Error())))
				}
			}

			var description template.HTML
			if len(descriptions) > 0 {
				description = template.HTML(strings.Join(descriptions, "<br>"))
			} else {
				description = html.StringAsHTML("Internal server error (ref " + ref + ")")
			}

			callback(c, title, description)
		}
	}
}
