// Package web holds the HTML templates of the browser UI.
package web

import (
	"embed"
	"html/template"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

// Template names rendered by the delivery handlers.
const (
	PageIndex       = "index.html"
	PageLogTime     = "log_time.html"
	PageLogMultiple = "log_multiple.html"
	PageUpload      = "upload.html"
	PageResults     = "results.html"
	PageTimesheet   = "timesheet.html"
)

// Flash is one status message shown at the top of a page.
type Flash struct {
	Kind    string // success, danger, info
	Message string
}

var funcs = template.FuncMap{
	"lower": strings.ToLower,
	"flip": func(order string) string {
		if order == "desc" {
			return "asc"
		}
		return "desc"
	},
}

// Templates parses the embedded templates. It panics on a parse error since
// the templates are compiled into the binary.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}
