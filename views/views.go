// Package views holds the page templates and static assets.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/mseongj/pondok-news/feed"
	"github.com/mseongj/pondok-news/models"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed public
var publicFS embed.FS

const SiteTitle = "Pondok Informatika News"

var pages = []string{"index", "article", "old-articles", "error"}

var funcs = template.FuncMap{
	"preview": func(s string) string {
		if s == "" {
			return "Baca selengkapnya..."
		}
		return feed.Preview(s, feed.PreviewLength)
	},
	"image":    func(a models.Article) string { return a.ImageOrPlaceholder() },
	"category": func(a models.Article) string { return a.CategoryOrDefault() },
	"date":     func(a models.Article) string { return a.DisplayDate() },
}

// Renderer executes named pages inside the shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render writes the page with the given status. The page is rendered to a
// buffer first so a template failure never leaves a half-written response.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data any) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// Static serves the embedded public directory.
func Static() http.Handler {
	sub, err := fs.Sub(publicFS, "public")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
