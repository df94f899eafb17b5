package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexhit.toml")
	writeFile(t, path, `
results_dir = "out"
optional = ["reward", "magic"]
discover = true
top = 5
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ResultsDir != "out" || cfg.Top != 5 || !cfg.Discover {
		t.Errorf("unexpected config %+v", cfg)
	}

	// defaults are kept for keys not in the file
	if len(cfg.Required) != 2 || cfg.Required[0] != "transgression" {
		t.Errorf("expected default required lexicons, got %v", cfg.Required)
	}
	if len(cfg.Optional) != 2 || cfg.Optional[1] != "magic" {
		t.Errorf("unexpected optional lexicons %v", cfg.Optional)
	}

	if cfg.SentencesPath() != filepath.Join("out", "sentences.csv") {
		t.Errorf("unexpected sentences path %q", cfg.SentencesPath())
	}
	if cfg.OutputPath() != "out" {
		t.Errorf("unexpected output path %q", cfg.OutputPath())
	}
}

func TestLoadUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexhit.toml")
	writeFile(t, path, "tpo = 5\n")

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "tpo") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []string{
		"top = -1\n",
		`required = ["transgression", "transgression"]` + "\n",
		"required = []\noptional = []\n",
		"top = \"many\"\n",
	}

	for _, src := range tests {
		path := filepath.Join(t.TempDir(), "lexhit.toml")
		writeFile(t, path, src)
		if _, err := Load(path); err == nil {
			t.Errorf("expected error for %q", src)
		}
	}
}

func TestLoadOptional(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "lexhit.toml")

	if _, err := Load(missing); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}

	cfg, err := LoadOptional(missing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Top != DefaultTop || cfg.LexiconDir == "" {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")

	if err := LoadEnv(path); err != nil {
		t.Fatalf("missing .env must be ignored, got %v", err)
	}

	writeFile(t, path, "LEXHIT_TEST_OUTPUT=results.db\nLEXHIT_TEST_KEEP=file\n")
	t.Setenv("LEXHIT_TEST_KEEP", "env")
	t.Setenv("LEXHIT_TEST_OUTPUT", "")
	os.Unsetenv("LEXHIT_TEST_OUTPUT")

	if err := LoadEnv(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := os.Getenv("LEXHIT_TEST_OUTPUT"); got != "results.db" {
		t.Errorf("expected results.db, got %q", got)
	}
	if got := os.Getenv("LEXHIT_TEST_KEEP"); got != "env" {
		t.Errorf("existing variable must not be overridden, got %q", got)
	}
}
