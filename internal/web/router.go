package web

import (
	"net/http"

	"github.com/erazemk/inventar/internal/db"
	webembed "github.com/erazemk/inventar/web"
)

// NewRouter creates the web page router with all page routes registered.
func NewRouter(provider *db.Provider) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		DB:        provider,
		Templates: templates,
	}

	mux := http.NewServeMux()

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	mux.HandleFunc("GET /{$}", s.Index)
	mux.HandleFunc("POST /{$}", s.Index)

	return mux, nil
}
