package config

import (
	"os"
	"testing"
)

func TestGetEnvWithDefault(t *testing.T) {
	const key = "TEST_APP_PORT"

	// 环境变量未设置时，应该返回默认值
	_ = os.Unsetenv(key)
	if got := getEnv(key, "9000"); got != "9000" {
		t.Fatalf("getEnv(%q) = %q, want %q", key, got, "9000")
	}

	// 环境变量设置后，应优先返回环境变量
	if err := os.Setenv(key, "8080"); err != nil {
		t.Fatalf("Setenv error: %v", err)
	}
	if got := getEnv(key, "9000"); got != "8080" {
		t.Fatalf("getEnv(%q) = %q, want %q", key, got, "8080")
	}
}

func TestLoadReadsPortAndPaths(t *testing.T) {
	_ = os.Setenv("APP_PORT", "1234")
	_ = os.Setenv("CRON_SPEC", "@every 1h")
	_ = os.Setenv("BOOKMARKS_PATH", "/tmp/bm.json")
	defer func() {
		_ = os.Unsetenv("APP_PORT")
		_ = os.Unsetenv("CRON_SPEC")
		_ = os.Unsetenv("BOOKMARKS_PATH")
	}()

	cfg := Load()
	if cfg.AppPort != "1234" {
		t.Fatalf("AppPort = %q, want %q", cfg.AppPort, "1234")
	}
	if cfg.CronSpec != "@every 1h" || cfg.BookmarksPath != "/tmp/bm.json" {
		t.Fatalf("CronSpec/BookmarksPath not loaded correctly: %+v", cfg)
	}
}
