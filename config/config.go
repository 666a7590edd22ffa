package config

import (
	"os"
	"path/filepath"
)

// Service config
const DEFAULT_PORT = "5000"

// Menu source config
const CARDAPIO_PDF_URL = "https://cardapioru.onrender.com/static/cardapio.pdf"
const CARDAPIO_LOCAL_PATH = "static/cardapio.pdf"
const DOWNLOAD_TIMEOUT_SECONDS = 30

// Menu refresher config
// Daily, shortly before the restaurant opens for breakfast.
const MENU_REFRESHER_SCHEDULE = "0 6 * * *"

// Cache config
const MEALS_CACHE_FILE = "static/meals_cache.json"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Plot config
const PLOT_OUTPUT_PATH = "static/cardapio_overview.html"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const RAW_TABLES_RESOURCE = "raw_tables.json"

// Port returns the service port, from the PORT env var or the default.
func Port() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return DEFAULT_PORT
}

// PDFURL returns the menu PDF location, overridable via CARDAPIO_PDF_URL.
func PDFURL() string {
	if url := os.Getenv("CARDAPIO_PDF_URL"); url != "" {
		return url
	}
	return CARDAPIO_PDF_URL
}

// RefresherSchedule returns the cron expression of the periodic refresh.
func RefresherSchedule() string {
	if schedule := os.Getenv("CARDAPIO_REFRESH_SCHEDULE"); schedule != "" {
		return schedule
	}
	return MENU_REFRESHER_SCHEDULE
}

// RedisAddr returns the Redis address when the Redis cache backend is
// enabled; empty means the on-disk cache file is used.
func RedisAddr() string {
	return os.Getenv("REDIS_ADDR")
}

// PlotEnabled reports whether the overview chart is rendered after refresh.
func PlotEnabled() bool {
	return os.Getenv("CARDAPIO_PLOT") == "1"
}

// BaseDir returns the absolute path of the project root directory.
func BaseDir() string {
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}
	return wd
}

// GetResourcePath resolves a resource file against the project root.
func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}
