package config

import "testing"

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SIGNING_KEY", "secret")
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load("nonexistent.env")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Fatalf("default port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.MongoDB.DBName != "ceom" {
		t.Fatalf("default db name = %q, want ceom", cfg.MongoDB.DBName)
	}
	if cfg.JWT.ExpirationHours != 24 {
		t.Fatalf("default expiration = %d, want 24", cfg.JWT.ExpirationHours)
	}
	if cfg.Reporting.CronSchedule != "0 20 * * 5" {
		t.Fatalf("default cron = %q", cfg.Reporting.CronSchedule)
	}
	if cfg.Sheets.Enabled() {
		t.Fatal("sheets exporter must be disabled without credentials")
	}
}

func TestLoadMissingSigningKey(t *testing.T) {
	t.Setenv("JWT_SIGNING_KEY", "")
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")

	if _, err := Load("nonexistent.env"); err == nil {
		t.Fatal("expected error without JWT_SIGNING_KEY")
	}
}

func TestLoadBadExpiration(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_EXPIRATION_HOURS", "soon")

	if _, err := Load("nonexistent.env"); err == nil {
		t.Fatal("expected error for non-integer JWT_EXPIRATION_HOURS")
	}
}

func TestLoadHalfConfiguredSheets(t *testing.T) {
	setRequired(t)
	t.Setenv("GOOGLE_SHEET_REPORT_ID", "sheet-id")

	if _, err := Load("nonexistent.env"); err == nil {
		t.Fatal("expected error when only one sheets variable is set")
	}
}

func TestSheetsEnabled(t *testing.T) {
	setRequired(t)
	t.Setenv("GOOGLE_SHEET_REPORT_ID", "sheet-id")
	t.Setenv("GOOGLE_SHEETS_CREDENTIALS_PATH", "/tmp/credentials.json")

	cfg, err := Load("nonexistent.env")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Sheets.Enabled() {
		t.Fatal("sheets exporter should be enabled")
	}
}
