package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/erazemk/inventar/internal/db"
)

// Index handles GET / and POST /.
func (s *Server) Index(w http.ResponseWriter, r *http.Request) {
	database, err := s.DB.DB(r.Context())
	if err != nil {
		s.Setup(w, err)
		return
	}

	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
	}

	out, err := Decide(r.Context(), database, r.Method, r.URL.Query(), r.PostForm)
	if err != nil {
		slog.Error("failed to handle inventory request", "method", r.Method, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if out.Redirect != "" {
		http.Redirect(w, r, out.Redirect, http.StatusSeeOther)
		return
	}
	s.Templates.Render(w, http.StatusOK, "index.html", out.View)
}

// Setup renders the database setup page for a connection or driver failure.
func (s *Server) Setup(w http.ResponseWriter, err error) {
	view := &SetupView{
		PageData: PageData{Title: "Setup Required"},
		Message:  err.Error(),
	}

	var missing *db.DriverMissingError
	var connErr *db.ConnectionError
	switch {
	case errors.As(err, &missing):
		view.DriverMissing = true
		slog.Error("database driver missing", "driver", missing.Driver)
	case errors.As(err, &connErr):
		slog.Error("database connection failed", "error", connErr.Err)
	default:
		slog.Error("database unavailable", "error", err)
	}

	s.Templates.Render(w, http.StatusServiceUnavailable, "setup.html", view)
}
