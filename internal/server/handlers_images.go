package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	"watercolour-archive/internal/db"
	"watercolour-archive/internal/web"

	"github.com/a-h/templ"
)

func (s *Server) handleImageList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, perPage := parsePagination(query, s.cfg.DefaultPerPage, s.cfg.MaxPerPage)

	values := web.ImageFilterValues{
		Filename: strings.TrimSpace(query.Get("filename")),
		DateFrom: strings.TrimSpace(query.Get("date_from")),
		DateTo:   strings.TrimSpace(query.Get("date_to")),
		IsRaw:    strings.TrimSpace(query.Get("is_raw")),
		Cropped:  strings.TrimSpace(query.Get("cropped")),
		Rotated:  strings.TrimSpace(query.Get("rotated")),
	}
	filter := db.ImageFilter{
		Filename: values.Filename,
		DateFrom: values.DateFrom,
		DateTo:   values.DateTo,
		IsRaw:    optionalFlag(values.IsRaw),
		Cropped:  optionalFlag(values.Cropped),
		Rotated:  optionalFlag(values.Rotated),
	}

	data := web.ImageListData{
		Filter:  values,
		PerPage: perPage,
		Flash:   s.sessions.PopFlash(w, r),
	}
	images, total, err := db.ListImages(s.db, filter, page, perPage)
	if err != nil {
		log.Printf("list images: %v", err)
		data.Error = "Failed to load images from the database."
		templ.Handler(web.AdminImages(data)).ServeHTTP(w, r)
		return
	}
	data.Images = images
	data.Pagination = buildPaginationData(imageListBasePath(values), page, perPage, total)
	if len(images) == 0 {
		if total == 0 && !filter.HasConditions() {
			data.Notice = "No images found in the database."
		} else {
			data.Notice = "No images match your filters."
		}
	}
	templ.Handler(web.AdminImages(data)).ServeHTTP(w, r)
}

// imageListBasePath rebuilds the listing URL with the active filters so
// pagination links keep them.
func imageListBasePath(values web.ImageFilterValues) string {
	query := url.Values{}
	if values.Filename != "" {
		query.Set("filename", values.Filename)
	}
	if values.DateFrom != "" {
		query.Set("date_from", values.DateFrom)
	}
	if values.DateTo != "" {
		query.Set("date_to", values.DateTo)
	}
	if values.IsRaw != "" {
		query.Set("is_raw", values.IsRaw)
	}
	if values.Cropped != "" {
		query.Set("cropped", values.Cropped)
	}
	if values.Rotated != "" {
		query.Set("rotated", values.Rotated)
	}
	if len(query) == 0 {
		return "/admin/images"
	}
	return "/admin/images?" + query.Encode()
}

// optionalFlag maps a 0/1 query value onto a tri-state filter; anything
// else leaves the filter off.
func optionalFlag(raw string) *bool {
	value, err := parseFlag(raw)
	if raw == "" || err != nil {
		return nil
	}
	return &value
}

func (s *Server) handleImageDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	image, err := db.GetImage(s.db, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.sessions.SetFlash(w, r, "Image not found.")
			http.Redirect(w, r, "/admin/images", http.StatusFound)
			return
		}
		log.Printf("load image %d: %v", id, err)
		http.Error(w, "database error", http.StatusInternalServerError)
		return
	}
	data := web.ImageDetailData{
		Image:    image,
		EditMode: r.URL.Query().Get("edit") == "1",
		Flash:    s.sessions.PopFlash(w, r),
	}
	templ.Handler(web.AdminImageDetail(data)).ServeHTTP(w, r)
}

func (s *Server) handleImageUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	image, err := db.GetImage(s.db, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.sessions.SetFlash(w, r, "Image not found.")
			http.Redirect(w, r, "/admin/images", http.StatusFound)
			return
		}
		log.Printf("load image %d: %v", id, err)
		http.Error(w, "database error", http.StatusInternalServerError)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	form := map[string]string{
		"is_raw":           r.PostFormValue("is_raw"),
		"date_taken":       r.PostFormValue("date_taken"),
		"order_in_batch":   r.PostFormValue("order_in_batch"),
		"pipeline_version": r.PostFormValue("pipeline_version"),
		"flash_missing":    r.PostFormValue("flash_missing"),
		"cropped":          r.PostFormValue("cropped"),
	}
	updates, err := imageEditUpdates(image, form)
	if err != nil {
		data := web.ImageDetailData{
			Image:    image,
			EditMode: true,
			Error:    err.Error(),
			Draft:    form,
		}
		templ.Handler(web.AdminImageDetail(data), templ.WithStatus(http.StatusUnprocessableEntity)).ServeHTTP(w, r)
		return
	}
	if err := db.UpdateImageFields(s.db, id, updates); err != nil {
		log.Printf("update image %d: %v", id, err)
		data := web.ImageDetailData{
			Image:    image,
			EditMode: true,
			Error:    "The database rejected the update.",
			Draft:    form,
		}
		templ.Handler(web.AdminImageDetail(data), templ.WithStatus(http.StatusUnprocessableEntity)).ServeHTTP(w, r)
		return
	}
	s.recordEvent("image_updated", map[string]any{"image_id": id, "fields": updates})
	s.sessions.SetFlash(w, r, "Image updated.")
	http.Redirect(w, r, fmt.Sprintf("/admin/images/%d", id), http.StatusFound)
}

func (s *Server) handleThumbnail(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	image, err := db.GetImage(s.db, id)
	if err != nil {
		http.Error(w, "No thumbnail", http.StatusNotFound)
		return
	}
	sourcePath := ""
	if image.FilePath != nil {
		sourcePath = *image.FilePath
	}
	thumbPath, err := s.thumbnailFor(id, sourcePath)
	if err != nil {
		log.Printf("thumbnail for image %d: %v", id, err)
		http.Error(w, "No thumbnail", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	http.ServeFile(w, r, thumbPath)
}

func (s *Server) handleImageFile(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	image, err := db.GetImage(s.db, id)
	if err != nil || image.FilePath == nil {
		http.Error(w, "No file", http.StatusNotFound)
		return
	}
	if r.URL.Query().Get("download") == "1" {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", image.Filename))
	} else {
		w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", image.Filename))
	}
	http.ServeFile(w, r, *image.FilePath)
}
