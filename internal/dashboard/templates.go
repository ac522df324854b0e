package dashboard

import (
	"embed"
	"html/template"
)

//go:embed assets
var assetFS embed.FS

//go:embed templates/page.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html"))
