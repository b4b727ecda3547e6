package api

import (
	"net/http"

	"github.com/erazemk/inventar/internal/db"
)

// NewRouter creates the read-only JSON API router.
func NewRouter(provider *db.Provider) http.Handler {
	mux := http.NewServeMux()

	itemsHandler := &ItemsHandler{DB: provider}

	mux.HandleFunc("GET /healthz", itemsHandler.Health)
	mux.HandleFunc("GET /api/items", itemsHandler.List)
	mux.HandleFunc("GET /api/items/{id}", itemsHandler.Get)

	return mux
}
