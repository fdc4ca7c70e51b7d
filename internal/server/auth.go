package server

import (
	"crypto/subtle"
	"log"
	"net/http"
	"strings"

	"watercolour-archive/internal/web"

	"github.com/a-h/templ"
)

// requireAdmin gates a handler behind the admin session flag. An empty
// configured password disables the gate entirely; the archive is a local
// single-user tool and tests run without credentials.
func (s *Server) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.cfg.AdminPassword != "" && !s.sessions.IsAdmin(w, r) {
			s.sessions.SetFlash(w, r, "Admin login required.")
			http.Redirect(w, r, "/admin/login", http.StatusFound)
			return
		}
		next(w, r)
	}
}

func (s *Server) handleLoginView(w http.ResponseWriter, r *http.Request) {
	flash := s.sessions.PopFlash(w, r)
	templ.Handler(web.AdminLogin(flash)).ServeHTTP(w, r)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	entered := strings.TrimSpace(r.PostFormValue("password"))
	expected := s.cfg.AdminPassword
	if expected == "" || subtle.ConstantTimeCompare([]byte(entered), []byte(expected)) != 1 {
		log.Printf("failed admin login from %s", r.RemoteAddr)
		s.sessions.SetFlash(w, r, "Wrong password.")
		http.Redirect(w, r, "/admin/login", http.StatusFound)
		return
	}
	s.sessions.SetAdmin(w, r, true)
	s.sessions.SetFlash(w, r, "Logged in as admin.")
	s.recordEvent("admin_login", map[string]any{"remote": r.RemoteAddr})
	http.Redirect(w, r, "/admin", http.StatusFound)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.sessions.SetAdmin(w, r, false)
	s.sessions.SetFlash(w, r, "Logged out.")
	s.recordEvent("admin_logout", map[string]any{"remote": r.RemoteAddr})
	http.Redirect(w, r, "/", http.StatusFound)
}
