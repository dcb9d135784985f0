package html

import (
	"embed"
	"html/template"
	"io"
	"log"

	"github.com/labstack/echo/v4"

	"warehouse.GO/html/parts"
)

//go:embed templates/*.html
var templateFS embed.FS

type Template struct {
	Templates *template.Template
}

func (t *Template) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.Templates.ExecuteTemplate(w, name, data)
}

var funcs = template.FuncMap{
	"num": Number,
	"css": parts.GetCriticalCSS,
}

// NewTemplate parses the embedded page templates.
func NewTemplate() *Template {
	t := &Template{
		Templates: template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")),
	}
	for _, tmpl := range t.Templates.Templates() {
		log.Println("Loaded template:", tmpl.Name())
	}
	return t
}
