package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const upTemplate = `-- Changes to the archive schema. Keep the conventions from the initial
-- migration: text timestamps in YYYY-MM-DDTHH:MM:SS form, explicit CHECK
-- constraints, FK actions spelled out.
`

const downTemplate = `-- Revert the matching up migration.
`

func main() {
	name := flag.String("name", "", "migration name, e.g. add_scan_dpi_column")
	dir := flag.String("dir", filepath.Join("db", "migrations"), "migrations directory")
	flag.Parse()

	slug := strings.ToLower(strings.TrimSpace(*name))
	slug = strings.ReplaceAll(slug, " ", "_")
	slug = strings.ReplaceAll(slug, "-", "_")
	if slug == "" {
		log.Fatal("migration name is required")
	}

	version := time.Now().UTC().Format("20060102150405")
	base := fmt.Sprintf("%s_%s", version, slug)
	upPath := filepath.Join(*dir, base+".up.sql")
	downPath := filepath.Join(*dir, base+".down.sql")

	if err := os.MkdirAll(*dir, 0o755); err != nil {
		log.Fatalf("create migrations dir: %v", err)
	}
	if err := writeNewFile(upPath, upTemplate); err != nil {
		log.Fatalf("create up migration: %v", err)
	}
	if err := writeNewFile(downPath, downTemplate); err != nil {
		log.Fatalf("create down migration: %v", err)
	}

	log.Printf("created %s and %s", upPath, downPath)
}

func writeNewFile(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("file already exists: %s", path)
	} else if !os.IsNotExist(err) {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
