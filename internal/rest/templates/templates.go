// Package templates embeds the board pages.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Parse returns every page, named by file name (index.html, detail.html ...).
func Parse() (*template.Template, error) {
	return template.ParseFS(files, "*.html")
}
