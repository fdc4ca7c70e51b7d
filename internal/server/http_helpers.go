package server

import (
	"log"
	"net/http"
	"strconv"

	"watercolour-archive/internal/db"
)

// parseID reads the {id} path value as a positive integer.
func parseID(r *http.Request) (uint, bool) {
	raw := r.PathValue("id")
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0, false
	}
	return uint(value), true
}

// recordEvent appends an audit row, logging rather than failing the request
// when the write does not stick.
func (s *Server) recordEvent(eventType string, payload any) {
	if s.db == nil {
		return
	}
	if err := db.RecordEvent(s.db, eventType, payload); err != nil {
		log.Printf("record %s event: %v", eventType, err)
	}
}
