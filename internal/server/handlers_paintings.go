package server

import (
	"log"
	"net/http"

	"watercolour-archive/internal/db"
	"watercolour-archive/internal/web"

	"github.com/a-h/templ"
)

func (s *Server) handlePaintingList(w http.ResponseWriter, r *http.Request) {
	page, perPage := parsePagination(r.URL.Query(), s.cfg.DefaultPerPage, s.cfg.MaxPerPage)
	data := web.PaintingListData{
		Flash: s.sessions.PopFlash(w, r),
	}
	paintings, total, err := db.ListPaintings(s.db, page, perPage)
	if err != nil {
		log.Printf("list paintings: %v", err)
		data.Error = "Failed to load paintings from the database."
		templ.Handler(web.AdminPaintings(data)).ServeHTTP(w, r)
		return
	}
	data.Paintings = paintings
	data.Pagination = buildPaginationData("/admin/paintings", page, perPage, total)
	if len(paintings) == 0 {
		data.Notice = "No paintings found in the database."
	}
	templ.Handler(web.AdminPaintings(data)).ServeHTTP(w, r)
}
