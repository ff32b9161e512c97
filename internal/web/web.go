// Package web holds the embedded html templates.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded template set.
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}
