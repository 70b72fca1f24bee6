package server

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates
var fsys embed.FS

type htmlTemplates struct {
	t *template.Template
}

type initPage struct {
	AuthURL string
	Limit   int
}

type loginPage struct {
	Code string
}

type formPage struct {
	AccessToken string
	Message     string
}

func loadTemplates() (*htmlTemplates, error) {
	t, err := template.ParseFS(fsys, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &htmlTemplates{t: t}, nil
}

func (h *htmlTemplates) render(w io.Writer, name string, data any) error {
	return h.t.ExecuteTemplate(w, name, data)
}
