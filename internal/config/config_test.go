package config

import (
	"OpenSAT-Quiz-Backend/internal/client"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(New(""))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.OpenSAT.BaseURL != client.DefaultBankURL {
		t.Errorf("base url: %q", cfg.OpenSAT.BaseURL)
	}
	if cfg.OpenSAT.TimeoutSeconds != 15 {
		t.Errorf("timeout: %d", cfg.OpenSAT.TimeoutSeconds)
	}
	if cfg.Quiz.Domain != "Algebra" || cfg.Quiz.Section != "" {
		t.Errorf("quiz: %+v", cfg.Quiz)
	}
	if cfg.Server.Port != ":8080" {
		t.Errorf("port: %q", cfg.Server.Port)
	}
	if len(cfg.Catalog.Domains["math"]) != 4 {
		t.Errorf("catalog: %+v", cfg.Catalog.Domains)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quiz.yaml")
	content := "opensat:\n  timeout_seconds: 3\nquiz:\n  section: english\n  domain: Craft and Structure\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("OPENSAT_QUIZ_OPENSAT_BASE_URL", "http://localhost:9999/bank.json")

	cfg, err := Load(New(path))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.OpenSAT.TimeoutSeconds != 3 {
		t.Errorf("timeout: %d", cfg.OpenSAT.TimeoutSeconds)
	}
	if cfg.Quiz.Section != "english" || cfg.Quiz.Domain != "Craft and Structure" {
		t.Errorf("quiz: %+v", cfg.Quiz)
	}
	if cfg.OpenSAT.BaseURL != "http://localhost:9999/bank.json" {
		t.Errorf("env override ignored: %q", cfg.OpenSAT.BaseURL)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(New(filepath.Join(t.TempDir(), "missing.yaml"))); err == nil {
		t.Fatal("expected error for a missing explicit config file")
	}
}
