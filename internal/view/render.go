package view

import (
	"embed"
	"html/template"
	"io"
	"time"

	"petjobs-engine/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page is everything the page template renders.
type Page struct {
	Requests []domain.JobRequest
	Draft    domain.Draft
	Catalog  domain.Catalog
	State    PanelState
	Layout   Layout
	// Notice is shown through a blocking alert when set.
	Notice string
	Year   int
}

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("page.html").Funcs(template.FuncMap{
		"formatDate":      FormatDate,
		"formatSubmitted": FormatSubmitted,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

func (r *Renderer) Render(w io.Writer, p Page) error {
	if p.Year == 0 {
		p.Year = time.Now().Year()
	}
	return r.tmpl.ExecuteTemplate(w, "page.html", p)
}
