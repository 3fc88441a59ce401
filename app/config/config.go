package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/Anushervon04/SRM/app/storage"
)

type Config struct {
	Store      storage.Store
	ReportsDir string
	Addr       string
	// SessionSecret enables signed session cookies when non-empty. Leaving it
	// unset keeps the legacy unsigned username:role cookie.
	SessionSecret string
}

var AppConfig *Config

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Init loads the environment and opens the flat-file store. Call once from
// main before registering routes.
func Init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	dataDir := getenv("SRM_DATA_DIR", "./json")
	reportsDir := getenv("SRM_REPORTS_DIR", "./reports")

	store, err := storage.NewFileStore(dataDir)
	if err != nil {
		log.Fatal("Failed to open data directory:", err)
	}
	if err := os.MkdirAll(reportsDir, 0755); err != nil {
		log.Fatal("Failed to create reports directory:", err)
	}

	AppConfig = &Config{
		Store:         store,
		ReportsDir:    reportsDir,
		Addr:          getenv("SRM_ADDR", ":8000"),
		SessionSecret: os.Getenv("SRM_SESSION_SECRET"),
	}
	log.Printf("Data directory: %s, reports directory: %s", dataDir, reportsDir)
}

func GetStore() storage.Store {
	return AppConfig.Store
}

func GetReportsDir() string {
	return AppConfig.ReportsDir
}
