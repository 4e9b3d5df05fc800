package web

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/HEADSALESSDAD/inventory-mini/internal/export"
	"github.com/HEADSALESSDAD/inventory-mini/internal/inventory"
	"github.com/HEADSALESSDAD/inventory-mini/internal/model"
	"github.com/HEADSALESSDAD/inventory-mini/internal/store"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportsPage handles GET /reports.
func (s *Server) ReportsPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "reports.html", &struct {
		PageData
	}{
		PageData: PageData{Title: "Reports"},
	})
}

// ExportXLSX handles GET /export/items.xlsx.
func (s *Server) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	s.serveExport(w, r, "inventory_items", "xlsx", xlsxContentType, export.ItemsXLSX)
}

// ExportPDF handles GET /export/items.pdf.
func (s *Server) ExportPDF(w http.ResponseWriter, r *http.Request) {
	s.serveExport(w, r, "inventory_items_A4", "pdf", "application/pdf", export.ItemsPDF)
}

// serveExport renders the full item list through the given exporter and
// streams it as an attachment.
func (s *Server) serveExport(w http.ResponseWriter, r *http.Request, prefix, ext, contentType string, render func([]model.Item) ([]byte, error)) {
	items, err := inventory.List(r.Context(), s.DB, store.ListOptions{})
	if err != nil {
		slog.Error("failed to list items for export", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	data, err := render(items)
	if err != nil {
		slog.Error("failed to render export", "format", ext, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(prefix, ext)))
	w.Write(data)
}
