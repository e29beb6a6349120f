// Package templates содержит HTML-шаблоны страниц, встроенные в бинарник.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Parse разбирает все шаблоны; имя шаблона совпадает с именем файла
func Parse() (*template.Template, error) {
	return template.ParseFS(files, "*.html")
}
