package web

import (
	"log/slog"
	"net/http"

	"github.com/HEADSALESSDAD/inventory-mini/internal/inventory"
	"github.com/HEADSALESSDAD/inventory-mini/internal/model"
	"github.com/HEADSALESSDAD/inventory-mini/internal/store"
)

// Dashboard handles GET /.
func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	items, err := inventory.List(r.Context(), s.DB, store.ListOptions{})
	if err != nil {
		slog.Error("failed to list items for dashboard", "error", err)
	}

	s.Templates.Render(w, "dashboard.html", &struct {
		PageData
		Items   []model.Item
		Summary model.Summary
	}{
		PageData: PageData{Title: "Dashboard"},
		Items:    items,
		Summary:  model.Summarize(items),
	})
}
