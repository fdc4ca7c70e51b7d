package server

import (
	"net/http"

	"watercolour-archive/internal/config"

	"gorm.io/gorm"
)

type Server struct {
	db       *gorm.DB
	cfg      config.Config
	sessions *sessionStore
}

func New(conn *gorm.DB, cfg config.Config) *Server {
	return &Server{
		db:       conn,
		cfg:      cfg,
		sessions: newSessionStore(conn),
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /admin/login", s.handleLoginView)
	mux.HandleFunc("POST /admin/login", s.handleLogin)
	mux.HandleFunc("GET /admin/logout", s.handleLogout)
	mux.HandleFunc("GET /admin", s.requireAdmin(s.handleDashboard))
	mux.HandleFunc("GET /admin/images", s.requireAdmin(s.handleImageList))
	mux.HandleFunc("GET /admin/images/{id}", s.requireAdmin(s.handleImageDetail))
	mux.HandleFunc("POST /admin/images/{id}", s.requireAdmin(s.handleImageUpdate))
	mux.HandleFunc("GET /admin/images/{id}/thumbnail", s.requireAdmin(s.handleThumbnail))
	mux.HandleFunc("GET /admin/images/{id}/file", s.requireAdmin(s.handleImageFile))
	mux.HandleFunc("GET /admin/paintings", s.requireAdmin(s.handlePaintingList))
	mux.HandleFunc("GET /admin/ingest", s.requireAdmin(s.handleIngestView))
	mux.HandleFunc("POST /admin/ingest", s.requireAdmin(s.handleIngest))
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))
	return mux
}
