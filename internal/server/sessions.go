package server

import (
	"crypto/rand"
	"fmt"
	"net/http"
	"sync"

	"watercolour-archive/internal/db"

	"gorm.io/gorm"
)

const sessionCookieName = "archive_session"

// sessionStore keeps the admin flag and one pending flash message per
// browser session. Sessions persist in the database when one is available,
// with an in-memory fallback for tests running handlers without a DB.
type sessionStore struct {
	db       *gorm.DB
	mu       sync.Mutex
	sessions map[string]sessionData
}

type sessionData struct {
	Flash   string
	IsAdmin bool
}

func newSessionStore(conn *gorm.DB) *sessionStore {
	return &sessionStore{
		db:       conn,
		sessions: make(map[string]sessionData),
	}
}

func (s *sessionStore) SetFlash(w http.ResponseWriter, r *http.Request, message string) {
	if message == "" {
		return
	}
	id := s.ensureSessionID(w, r)
	if s.db == nil {
		s.mu.Lock()
		data := s.sessions[id]
		data.Flash = message
		s.sessions[id] = data
		s.mu.Unlock()
		return
	}
	record := s.load(id)
	record.Flash = message
	record.UpdatedAt = db.Now()
	_ = s.db.Save(&record).Error
}

func (s *sessionStore) PopFlash(w http.ResponseWriter, r *http.Request) string {
	id := s.ensureSessionID(w, r)
	if s.db == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		data := s.sessions[id]
		message := data.Flash
		data.Flash = ""
		s.sessions[id] = data
		return message
	}
	var record db.Session
	if err := s.db.Where("id = ?", id).First(&record).Error; err != nil {
		return ""
	}
	if record.Flash == "" {
		return ""
	}
	message := record.Flash
	record.Flash = ""
	record.UpdatedAt = db.Now()
	_ = s.db.Save(&record).Error
	return message
}

func (s *sessionStore) SetAdmin(w http.ResponseWriter, r *http.Request, admin bool) {
	id := s.ensureSessionID(w, r)
	if s.db == nil {
		s.mu.Lock()
		data := s.sessions[id]
		data.IsAdmin = admin
		s.sessions[id] = data
		s.mu.Unlock()
		return
	}
	record := s.load(id)
	record.IsAdmin = admin
	record.UpdatedAt = db.Now()
	_ = s.db.Save(&record).Error
}

func (s *sessionStore) IsAdmin(w http.ResponseWriter, r *http.Request) bool {
	id := s.ensureSessionID(w, r)
	if s.db == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.sessions[id].IsAdmin
	}
	var record db.Session
	if err := s.db.Where("id = ?", id).First(&record).Error; err != nil {
		return false
	}
	return record.IsAdmin
}

func (s *sessionStore) load(id string) db.Session {
	var record db.Session
	if err := s.db.Where("id = ?", id).First(&record).Error; err != nil {
		record = db.Session{ID: id, CreatedAt: db.Now(), UpdatedAt: db.Now()}
	}
	return record
}

func (s *sessionStore) ensureSessionID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	id := newSessionID()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	// Later calls within the same request must see the same id.
	r.AddCookie(&http.Cookie{Name: sessionCookieName, Value: id})
	return id
}

func newSessionID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("fallback-%p", &buf)
	}
	return fmt.Sprintf("%x", buf)
}
