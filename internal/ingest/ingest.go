// Package ingest scans directories of raw captures and catalogues them:
// checksum, EXIF capture date, duplicate detection. It never decodes or
// converts the raw data itself.
package ingest

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
	"gorm.io/gorm"

	"watercolour-archive/internal/db"
)

// Options controls a single ingestion run.
type Options struct {
	// Extensions lists the file extensions to catalogue, lowercase with
	// leading dot. Defaults to [".nef"].
	Extensions []string
	// PipelineVersion is recorded on every inserted row.
	PipelineVersion string
}

// Stats summarises an ingestion run.
type Stats struct {
	Scanned    int
	Inserted   int
	Duplicates int
	TotalPaths int
}

func (s Stats) String() string {
	return fmt.Sprintf("scanned=%d inserted=%d duplicates=%d paths=%d",
		s.Scanned, s.Inserted, s.Duplicates, s.TotalPaths)
}

// Run walks the given file or directory paths and inserts every matching
// file as a raw image, skipping checksums already catalogued.
func Run(conn *gorm.DB, paths []string, opts Options) (Stats, error) {
	extensions := opts.Extensions
	if len(extensions) == 0 {
		extensions = []string{".nef"}
	}
	if opts.PipelineVersion == "" {
		opts.PipelineVersion = "v0.1.0"
	}

	stats := Stats{TotalPaths: len(paths)}
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return stats, fmt.Errorf("invalid path %s: %w", path, err)
		}
		if !info.IsDir() {
			if err := processFile(conn, path, extensions, opts.PipelineVersion, &stats); err != nil {
				return stats, err
			}
			continue
		}
		err = filepath.WalkDir(path, func(entry string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			return processFile(conn, entry, extensions, opts.PipelineVersion, &stats)
		})
		if err != nil {
			return stats, err
		}
	}
	log.Printf("ingestion finished: %s", stats)
	return stats, nil
}

func processFile(conn *gorm.DB, path string, extensions []string, pipelineVersion string, stats *Stats) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !contains(extensions, ext) {
		return nil
	}
	stats.Scanned++

	checksum, err := ChecksumFile(path)
	if err != nil {
		return fmt.Errorf("checksum %s: %w", path, err)
	}
	dateTaken := ExtractDateTaken(path)

	image := db.Image{
		Filename:        filepath.Base(path),
		FilePath:        &path,
		MD5Checksum:     checksum,
		IsRaw:           true,
		DateTaken:       dateTaken,
		PipelineVersion: &pipelineVersion,
	}
	if err := db.InsertImage(conn, &image); err != nil {
		if errors.Is(err, db.ErrDuplicateImage) {
			stats.Duplicates++
			log.Printf("duplicate checksum for %s, skipping", path)
			return nil
		}
		return fmt.Errorf("insert %s: %w", path, err)
	}
	stats.Inserted++
	log.Printf("ingested %s (id=%d)", path, image.ID)
	return nil
}

// ChecksumFile computes the lowercase hex MD5 of a file's contents.
func ChecksumFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	hasher := md5.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// ExtractDateTaken reads the EXIF DateTimeOriginal tag and converts it to
// the archive's YYYY-MM-DDTHH:MM:SS form. Files without usable EXIF yield
// nil rather than an error.
func ExtractDateTaken(path string) *string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	meta, err := exif.Decode(f)
	if err != nil {
		return nil
	}
	tag, err := meta.Get(exif.DateTimeOriginal)
	if err != nil {
		return nil
	}
	raw, err := tag.StringVal()
	if err != nil {
		return nil
	}
	formatted, ok := FormatExifDate(raw)
	if !ok {
		return nil
	}
	return &formatted
}

// FormatExifDate converts an EXIF datetime ("2023:01:02 10:11:12") to
// "2023-01-02T10:11:12".
func FormatExifDate(raw string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(raw), " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	datePart := strings.ReplaceAll(parts[0], ":", "-")
	if len(datePart) != 10 || len(parts[1]) != 8 {
		return "", false
	}
	return datePart + "T" + parts[1], true
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

// CountCandidates reports how many files under dir match the extension.
// Used by the ingest form to preview a run.
func CountCandidates(dir, extension string) int {
	count := 0
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), extension) {
			count++
		}
	}
	return count
}
