package api

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/HEADSALESSDAD/inventory-mini/internal/inventory"
	"github.com/HEADSALESSDAD/inventory-mini/internal/model"
	"github.com/HEADSALESSDAD/inventory-mini/internal/store"
	"github.com/HEADSALESSDAD/inventory-mini/internal/validate"
)

// ItemsHandler handles item CRUD endpoints.
type ItemsHandler struct {
	DB *sql.DB
}

// List handles GET /api/items. skip and limit query parameters window the
// result; callers that omit them get the full set.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	var opt store.ListOptions
	q := r.URL.Query()
	if v := q.Get("skip"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			jsonError(w, http.StatusBadRequest, "invalid skip")
			return
		}
		opt.Skip = n
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			jsonError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		opt.Limit = n
	}

	items, err := inventory.List(r.Context(), h.DB, opt)
	if err != nil {
		slog.Error("listing items", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list items")
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// Create handles POST /api/items.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	item, err := inventory.Create(r.Context(), h.DB, r.Body)
	if err != nil {
		h.writeError(w, err, "failed to create item")
		return
	}
	jsonResponse(w, http.StatusCreated, item)
}

// Get handles GET /api/items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	item, err := inventory.Get(r.Context(), h.DB, id)
	if err != nil {
		h.writeError(w, err, "failed to get item")
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// Update handles PUT /api/items/{id}. The body is a partial update: only
// fields present in the payload are changed.
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	defer r.Body.Close()
	item, err := inventory.Update(r.Context(), h.DB, id, r.Body)
	if err != nil {
		h.writeError(w, err, "failed to update item")
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// Delete handles DELETE /api/items/{id}.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	if err := inventory.Delete(r.Context(), h.DB, id); err != nil {
		h.writeError(w, err, "failed to delete item")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "item deleted"})
}

// itemID parses the {id} path value, writing a 400 on failure.
func itemID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return 0, false
	}
	return id, true
}

// writeError maps orchestrator errors onto HTTP responses: validation
// failures carry field detail, missing ids are 404, everything else is a
// generic server fault.
func (h *ItemsHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	var verr *validate.Error
	switch {
	case errors.As(err, &verr):
		validationError(w, verr)
	case errors.Is(err, inventory.ErrNotFound):
		jsonError(w, http.StatusNotFound, "item not found")
	default:
		slog.Error(fallback, "error", err)
		jsonError(w, http.StatusInternalServerError, fallback)
	}
}
