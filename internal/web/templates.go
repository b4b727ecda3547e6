package web

import (
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/erazemk/inventar/internal/db"
	"github.com/erazemk/inventar/internal/model"
	webembed "github.com/erazemk/inventar/web"
)

// placeholder is shown for NULL columns.
const placeholder = "—"

// Templates holds parsed HTML templates.
type Templates struct {
	templates map[string]*template.Template
}

// FuncMap returns the template function map.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"orDash": func(s *string) string {
			if s == nil || *s == "" {
				return placeholder
			}
			return *s
		},
		"qty": func(q *int64) string {
			if q == nil {
				return placeholder
			}
			return fmt.Sprintf("%d", *q)
		},
		"money": func(p *model.Price) string {
			if p == nil {
				return placeholder
			}
			return "$" + p.String()
		},
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
		"qtyValue": func(q *int64) string {
			if q == nil {
				return ""
			}
			return fmt.Sprintf("%d", *q)
		},
		"priceValue": func(p *model.Price) string {
			if p == nil {
				return ""
			}
			return p.String()
		},
		"date": func(t time.Time) string {
			return t.Format("Jan 02, 2006")
		},
	}
}

// LoadTemplates parses all page templates with the layout.
func LoadTemplates() (*Templates, error) {
	tfs := webembed.TemplatesFS()

	layoutBytes, err := fs.ReadFile(tfs, "layout.html")
	if err != nil {
		return nil, fmt.Errorf("reading layout template: %w", err)
	}

	pages := []string{
		"index.html",
		"setup.html",
	}

	ts := &Templates{templates: make(map[string]*template.Template)}

	for _, page := range pages {
		pageBytes, err := fs.ReadFile(tfs, page)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", page, err)
		}

		tmpl := template.New(page).Funcs(FuncMap())
		tmpl, err = tmpl.Parse(string(layoutBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing layout for %s: %w", page, err)
		}
		tmpl, err = tmpl.Parse(string(pageBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}

		ts.templates[page] = tmpl
	}

	return ts, nil
}

// Render renders a template with the given data and status code.
func (ts *Templates) Render(w http.ResponseWriter, status int, name string, data any) {
	tmpl, ok := ts.templates[name]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
	}
}

// PageData is the base data passed to all templates.
type PageData struct {
	Title string
}

// SetupView is rendered instead of the app when the database is unusable.
type SetupView struct {
	PageData
	Message       string
	DriverMissing bool
}

// Server holds all dependencies for page handlers.
type Server struct {
	DB        *db.Provider
	Templates *Templates
}
