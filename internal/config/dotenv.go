package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file if present.
// Existing environment variables are not overwritten.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

type Config struct {
	DatabaseURL              string
	DBPath                   string
	DataDir                  string
	ThumbnailsDir            string
	AdminPassword            string
	RawExtension             string
	PipelineVersion          string
	ThumbnailMaxPx           int
	DefaultPerPage           int
	MaxPerPage               int
	DBMaxOpenConns           int
	DBMaxIdleConns           int
	DBConnMaxLifetimeSeconds int
	DBConnMaxIdleTimeSeconds int
}

func Default() Config {
	return Config{
		DBPath:                   "data/watercolours.db",
		DataDir:                  "data/raw",
		ThumbnailsDir:            "data/thumbnails",
		RawExtension:             ".nef",
		PipelineVersion:          "v0.1.0",
		ThumbnailMaxPx:           256,
		DefaultPerPage:           20,
		MaxPerPage:               200,
		DBMaxOpenConns:           10,
		DBMaxIdleConns:           10,
		DBConnMaxLifetimeSeconds: 300,
		DBConnMaxIdleTimeSeconds: 60,
	}
}

func Load() Config {
	cfg := Default()
	if raw := os.Getenv("DATABASE_URL"); raw != "" {
		cfg.DatabaseURL = raw
	}
	if raw := os.Getenv("DB_PATH"); raw != "" {
		cfg.DBPath = raw
	}
	if raw := os.Getenv("DATA_DIR"); raw != "" {
		cfg.DataDir = raw
	}
	if raw := os.Getenv("THUMBNAILS_DIR"); raw != "" {
		cfg.ThumbnailsDir = raw
	}
	if raw := os.Getenv("ADMIN_PASSWORD"); raw != "" {
		cfg.AdminPassword = raw
	}
	if raw := os.Getenv("RAW_EXTENSION"); raw != "" {
		cfg.RawExtension = raw
	}
	if raw := os.Getenv("PIPELINE_VERSION"); raw != "" {
		cfg.PipelineVersion = raw
	}
	if raw := os.Getenv("THUMBNAIL_MAX_PX"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.ThumbnailMaxPx = value
		}
	}
	if raw := os.Getenv("DEFAULT_PER_PAGE"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.DefaultPerPage = value
		}
	}
	if raw := os.Getenv("MAX_PER_PAGE"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.MaxPerPage = value
		}
	}
	if raw := os.Getenv("DB_MAX_OPEN_CONNS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.DBMaxOpenConns = value
		}
	}
	if raw := os.Getenv("DB_MAX_IDLE_CONNS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.DBMaxIdleConns = value
		}
	}
	if raw := os.Getenv("DB_CONN_MAX_LIFETIME_SECONDS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.DBConnMaxLifetimeSeconds = value
		}
	}
	if raw := os.Getenv("DB_CONN_MAX_IDLE_SECONDS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.DBConnMaxIdleTimeSeconds = value
		}
	}
	return cfg
}
