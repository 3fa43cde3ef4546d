package web

import (
	"embed"
	"html/template"
)

//go:embed templates
var templateFiles embed.FS

// Templates parses every page. Pages are addressed by the name they
// define, e.g. "states/index".
func Templates() (*template.Template, error) {
	return template.New("").ParseFS(templateFiles,
		"templates/*.html",
		"templates/states/*.html",
		"templates/cities/*.html",
		"templates/errors/*.html",
	)
}
