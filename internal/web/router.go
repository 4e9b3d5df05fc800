package web

import (
	"database/sql"
	"net/http"

	webembed "github.com/HEADSALESSDAD/inventory-mini/web"
)

// NewRouter creates the web page router with all page routes registered.
func NewRouter(db *sql.DB) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		DB:        db,
		Templates: templates,
	}

	mux := http.NewServeMux()

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	// Pages.
	mux.HandleFunc("GET /{$}", s.Dashboard)
	mux.HandleFunc("GET /reports", s.ReportsPage)

	// Downloads.
	mux.HandleFunc("GET /export/items.xlsx", s.ExportXLSX)
	mux.HandleFunc("GET /export/items.pdf", s.ExportPDF)

	return mux, nil
}
