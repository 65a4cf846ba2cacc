package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeTemp(t, `
store:
  path: /var/lib/ledger/ledger.db
bigquery:
  project_id: my-project
  dataset: ledger
  table: transactions
match_window: 5m
log_level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Store.Path != "/var/lib/ledger/ledger.db" {
		t.Errorf("Store.Path = %q", cfg.Store.Path)
	}
	if !cfg.BigQuery.Enabled() {
		t.Error("BigQuery sink should be enabled")
	}
	if cfg.MatchWindow.Std() != 5*time.Minute {
		t.Errorf("MatchWindow = %s", cfg.MatchWindow)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestLoadKeepsDefaultsForOmittedKeys(t *testing.T) {
	path := writeTemp(t, "log_level: warn\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Default()
	if cfg.Store.Path != want.Store.Path {
		t.Errorf("Store.Path = %q, want default %q", cfg.Store.Path, want.Store.Path)
	}
	if cfg.BigQuery.Enabled() {
		t.Error("BigQuery sink enabled without a project")
	}
	if cfg.MatchWindow != want.MatchWindow {
		t.Errorf("MatchWindow = %s, want default %s", cfg.MatchWindow, want.MatchWindow)
	}
}

func TestLoadRejectsMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("Load accepted a missing file")
	}
}

func TestLoadRejectsNegativeWindow(t *testing.T) {
	path := writeTemp(t, "match_window: -1m\n")
	if _, err := Load(path); err == nil {
		t.Fatal("Load accepted a negative match window")
	}
}
