// Package view renders the site's HTML pages.  Templates are embedded into
// the binary and exposed to Echo through its Renderer interface, so
// handlers render with c.Render(status, "name.html", data).
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
	templates *template.Template
}

// New parses every embedded template.  Parsing happens once at startup; a
// broken template is a build problem, not a per-request one.
func New() (*Renderer, error) {
	t, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t}, nil
}

// Render executes the named template with the given data.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
