package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/erazemk/inventar/internal/db"
	"github.com/erazemk/inventar/internal/model"
	"github.com/erazemk/inventar/internal/store"
)

// ItemsHandler serves item data as JSON.
type ItemsHandler struct {
	DB *db.Provider
}

type listItemsResponse struct {
	Items   []model.Item  `json:"items"`
	Summary model.Summary `json:"summary"`
}

// Health handles GET /healthz.
func (h *ItemsHandler) Health(w http.ResponseWriter, r *http.Request) {
	database, err := h.DB.DB(r.Context())
	if err != nil {
		h.unavailable(w, r, err)
		return
	}
	if err := database.PingContext(r.Context()); err != nil {
		h.unavailable(w, r, &db.ConnectionError{Err: err})
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"status": "ok", "driver": h.DB.Config().Driver})
}

// List handles GET /api/items.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	database, err := h.DB.DB(r.Context())
	if err != nil {
		h.unavailable(w, r, err)
		return
	}

	items, err := store.ListItems(r.Context(), database)
	if err != nil {
		slog.Error("failed to list items", "request", RequestID(r.Context()), "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list items")
		return
	}
	if items == nil {
		items = []model.Item{}
	}

	jsonResponse(w, http.StatusOK, listItemsResponse{
		Items:   items,
		Summary: model.Summarize(items),
	})
}

// Get handles GET /api/items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	database, err := h.DB.DB(r.Context())
	if err != nil {
		h.unavailable(w, r, err)
		return
	}

	item, err := store.GetItem(r.Context(), database, id)
	if err != nil {
		slog.Error("failed to get item", "request", RequestID(r.Context()), "id", id, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	jsonResponse(w, http.StatusOK, item)
}

func (h *ItemsHandler) unavailable(w http.ResponseWriter, r *http.Request, err error) {
	msg := "database unavailable"
	var missing *db.DriverMissingError
	if errors.As(err, &missing) {
		msg = "database driver missing"
	}
	slog.Error(msg, "request", RequestID(r.Context()), "error", err)
	jsonError(w, http.StatusServiceUnavailable, msg)
}
