// Package view wires the embedded HTML templates into echo's Renderer
// interface. Templates are parsed once at startup; every page receives
// a Notice (one-shot flash message) and the logged-in user's name via
// the data map assembled by the handlers.
package view

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer implements echo.Renderer over the embedded template set.
type Renderer struct {
	tpl *template.Template
}

// New parses the embedded templates. It is called once in main; a
// parse failure is a programming error and surfaces at startup.
func New() (*Renderer, error) {
	tpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tpl: tpl}, nil
}

// Render executes the named page template.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.tpl.ExecuteTemplate(w, name, data)
}
