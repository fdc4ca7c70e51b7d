package server

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"watercolour-archive/internal/ingest"
	"watercolour-archive/internal/web"

	"github.com/a-h/templ"
)

func (s *Server) handleIngestView(w http.ResponseWriter, r *http.Request) {
	data := web.IngestData{
		Folder:    s.cfg.DataDir,
		FileCount: ingest.CountCandidates(s.cfg.DataDir, s.cfg.RawExtension),
		Extension: s.cfg.RawExtension,
		Flash:     s.sessions.PopFlash(w, r),
	}
	templ.Handler(web.AdminIngest(data)).ServeHTTP(w, r)
}

func (s *Server) handleIngest(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	folder := strings.TrimSpace(r.PostFormValue("folder"))
	if info, err := os.Stat(folder); folder == "" || err != nil || !info.IsDir() {
		s.sessions.SetFlash(w, r, "Invalid folder.")
		http.Redirect(w, r, "/admin/ingest", http.StatusFound)
		return
	}
	stats, err := ingest.Run(s.db, []string{folder}, ingest.Options{
		Extensions:      []string{s.cfg.RawExtension},
		PipelineVersion: s.cfg.PipelineVersion,
	})
	if err != nil {
		log.Printf("ingest %s: %v", folder, err)
		s.sessions.SetFlash(w, r, fmt.Sprintf("Ingestion failed: %v", err))
		http.Redirect(w, r, "/admin/ingest", http.StatusFound)
		return
	}
	s.recordEvent("ingest_completed", map[string]any{
		"folder":     folder,
		"scanned":    stats.Scanned,
		"inserted":   stats.Inserted,
		"duplicates": stats.Duplicates,
	})
	s.sessions.SetFlash(w, r, fmt.Sprintf("Ingestion completed: %s", stats))
	http.Redirect(w, r, "/admin", http.StatusFound)
}
