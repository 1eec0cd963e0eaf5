package html

import (
	"embed"
	"html/template"
	"maps"

	"github.com/gin-gonic/gin"
)

//go:embed templates
var templateFS embed.FS

var useCDN = false

func SetUseCDN(use bool) {
	useCDN = use
}

func StringAsHTML(s string) template.HTML {
	return template.HTML(template.HTMLEscapeString(s))
}

func CombineArgs(args ...gin.H) gin.H {
	all := gin.H{}
	for _, arg := range args {
		maps.Copy(all, arg)
	}
	return all
}

func Render(tmpl *template.Template, c *gin.Context, block string, arg gin.H) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(c.Writer, block, CombineArgs(gin.H{"Context": c, "UseCDN": useCDN}, arg)); err != nil {
		c.Error(err).SetType(gin.ErrorTypeRender)
		return
	}
}

func DefaultFuncMap() template.FuncMap {
	return template.FuncMap{
		"Get": func(c *gin.Context, name string) string {
			if c.Request.Method == "POST" {
				return c.PostForm(name)
			} else {
				return c.Query(name)
			}
		},
	}
}

func GetTemplate(name string, paths ...string) *template.Template {
	paths = append(paths, "templates/layout.tmpl")
	return template.Must(template.New(name).Funcs(DefaultFuncMap()).ParseFS(templateFS, paths...))
}

// GetPartial parses a fragment template that is rendered without the
// page layout (htmx swap targets).
func GetPartial(name string, paths ...string) *template.Template {
	return template.Must(template.New(name).Funcs(DefaultFuncMap()).ParseFS(templateFS, paths...))
}
