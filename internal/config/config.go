package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	CronSpec      string
	BookmarksPath string
}

func Load() *Config {
	// .env 存在时先加载，便于本地开发；没有就直接用环境变量
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:       getEnv("APP_PORT", "9000"),
		CronSpec:      getEnv("CRON_SPEC", "@every 24h"),
		BookmarksPath: getEnv("BOOKMARKS_PATH", "bookmarks.json"),
	}

	log.Printf("config loaded: port=%s cron=%s bookmarks=%s", cfg.AppPort, cfg.CronSpec, cfg.BookmarksPath)
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
