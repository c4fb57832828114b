package cfg

import (
	"testing"
)

func TestGetVersion(t *testing.T) {
	// Test default version
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}
}

func TestParseDefaults(t *testing.T) {
	cfg, err := parse([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Command != CommandIngest {
		t.Errorf("Expected default command '%s', got '%s'", CommandIngest, cfg.Command)
	}
	if cfg.DBPath != "data/vc_tool.db" {
		t.Errorf("Expected DB path 'data/vc_tool.db', got '%s'", cfg.DBPath)
	}
	if cfg.BackupPath != "data/news_clean.csv" {
		t.Errorf("Expected backup path 'data/news_clean.csv', got '%s'", cfg.BackupPath)
	}
	if cfg.FeedsDir != "./feeds" {
		t.Errorf("Expected feeds dir './feeds', got '%s'", cfg.FeedsDir)
	}
	if cfg.MaxItems != 0 {
		t.Errorf("Expected max items 0, got %d", cfg.MaxItems)
	}
	if cfg.SinceDays != 90 {
		t.Errorf("Expected since days 90, got %d", cfg.SinceDays)
	}
	if cfg.UserAgent != "Funding Radar/1.0" {
		t.Errorf("Expected user agent 'Funding Radar/1.0', got '%s'", cfg.UserAgent)
	}
	if cfg.Debug {
		t.Error("Expected debug to be disabled")
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := parse([]string{"--db-path", "/tmp/news.db", "--max-items", "20", "--since-days", "0", "--debug", "ingest"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.DBPath != "/tmp/news.db" {
		t.Errorf("Expected DB path '/tmp/news.db', got '%s'", cfg.DBPath)
	}
	if cfg.MaxItems != 20 {
		t.Errorf("Expected max items 20, got %d", cfg.MaxItems)
	}
	if cfg.SinceDays != 0 {
		t.Errorf("Expected since days 0, got %d", cfg.SinceDays)
	}
	if !cfg.Debug {
		t.Error("Expected debug to be enabled")
	}
	if cfg.Command != CommandIngest {
		t.Errorf("Expected command '%s', got '%s'", CommandIngest, cfg.Command)
	}
}

func TestParseServeCommand(t *testing.T) {
	cfg, err := parse([]string{"serve", "--port", "9090", "--schedule", "0 * * * *"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Command != CommandServe {
		t.Errorf("Expected command '%s', got '%s'", CommandServe, cfg.Command)
	}
	if cfg.Port != "9090" {
		t.Errorf("Expected port '9090', got '%s'", cfg.Port)
	}
	if cfg.Schedule != "0 * * * *" {
		t.Errorf("Expected schedule '0 * * * *', got '%s'", cfg.Schedule)
	}
}

func TestParseEnvironment(t *testing.T) {
	t.Setenv("BACKUP_PATH", "/var/lib/radar/backup.csv")
	t.Setenv("PORT", "7070")

	cfg, err := parse([]string{"serve"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.BackupPath != "/var/lib/radar/backup.csv" {
		t.Errorf("Expected backup path from environment, got '%s'", cfg.BackupPath)
	}
	if cfg.Port != "7070" {
		t.Errorf("Expected port '7070' from environment, got '%s'", cfg.Port)
	}
}

func TestParseInvalidValues(t *testing.T) {
	if _, err := parse([]string{"--max-items=-1"}); err == nil {
		t.Error("Expected error for negative max items")
	}
	if _, err := parse([]string{"--since-days=-3"}); err == nil {
		t.Error("Expected error for negative since days")
	}
	if _, err := parse([]string{"--unknown-flag"}); err == nil {
		t.Error("Expected error for unknown flag")
	}
}
