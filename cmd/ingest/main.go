package main

import (
	"flag"
	"log"
	"strings"

	"watercolour-archive/internal/config"
	"watercolour-archive/internal/db"
	"watercolour-archive/internal/ingest"
)

func main() {
	extensions := flag.String("extensions", ".nef", "comma-separated list of file extensions to ingest")
	pipelineVersion := flag.String("pipeline-version", "", "pipeline version tag recorded on inserted rows")
	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatal("usage: ingest [flags] path [path...]")
	}

	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}
	cfg := config.Load()
	if *pipelineVersion == "" {
		*pipelineVersion = cfg.PipelineVersion
	}

	conn, err := db.Open(cfg.DatabaseURL, cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	var exts []string
	for _, ext := range strings.Split(*extensions, ",") {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}

	stats, err := ingest.Run(conn, flag.Args(), ingest.Options{
		Extensions:      exts,
		PipelineVersion: *pipelineVersion,
	})
	if err != nil {
		log.Fatalf("ingestion failed (%s): %v", stats, err)
	}
	log.Printf("ingestion completed: %s", stats)
}
