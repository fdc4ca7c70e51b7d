package server

import (
	"log"
	"net/http"

	"watercolour-archive/internal/db"
	"watercolour-archive/internal/web"

	"github.com/a-h/templ"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	flash := s.sessions.PopFlash(w, r)
	templ.Handler(web.Home(flash)).ServeHTTP(w, r)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	data := web.DashboardData{
		Flash: s.sessions.PopFlash(w, r),
	}
	var err error
	if data.ImageCount, err = db.CountImages(s.db); err != nil {
		log.Printf("count images: %v", err)
		data.Error = "Failed to load archive counts."
	}
	if data.PaintingCount, err = db.CountPaintings(s.db); err != nil {
		log.Printf("count paintings: %v", err)
		data.Error = "Failed to load archive counts."
	}
	if events, err := db.RecentEvents(s.db, 10); err == nil {
		data.RecentEvents = events
	} else {
		log.Printf("recent events: %v", err)
	}
	templ.Handler(web.AdminDashboard(data)).ServeHTTP(w, r)
}
