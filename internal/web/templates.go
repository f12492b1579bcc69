package web

import (
	"embed"
	"html/template"

	"gemini-nlp/internal/screen"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded screen templates.
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

type flash struct {
	Kind string // success, warning or error
	Text string
}

// page is the data every screen renders from.
type page struct {
	Screen screen.Screen
	Menu   []screen.Screen
	Flash  *flash

	Name  string
	Email string

	Ops    []opView
	Op     opView
	Text   string
	Result string
}

type opView struct {
	Slug       string
	Title      string
	InputLabel string
	Button     string
}
