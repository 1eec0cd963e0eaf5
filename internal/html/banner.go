package html

import (
	"html/template"
	"io"

	"github.com/gin-gonic/gin"
)

var bannerTemplate = template.Must(template.ParseFS(templateFS, "templates/notifications/banner.tmpl"))

type BannerKind string

const (
	BannerError BannerKind = "error"
	BannerInfo  BannerKind = "info"
)

func RenderBanner(w io.Writer, kind BannerKind, title template.HTML, description template.HTML) error {
	return bannerTemplate.ExecuteTemplate(w, "content", gin.H{
		"Title":       title,
		"Description": description,
		"Kind":        kind,
	})
}
