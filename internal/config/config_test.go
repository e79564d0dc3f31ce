package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewDefaultsWhenConfigMissing(t *testing.T) {
	baseDir := t.TempDir()
	c, err := New(baseDir)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if c.Currency() != "R$" {
		t.Fatalf("default currency = %q, want R$", c.Currency())
	}
	if c.DefaultPeriodMonths() != 1 {
		t.Fatalf("default period months = %d, want 1", c.DefaultPeriodMonths())
	}
	want := filepath.Join(baseDir, EstoqueDir, "database.json")
	if c.DataPath() != want {
		t.Fatalf("DataPath = %q, want %q", c.DataPath(), want)
	}
}

func TestNewParsesYaml(t *testing.T) {
	baseDir := t.TempDir()
	stateDir := filepath.Join(baseDir, EstoqueDir)
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		t.Fatal(err)
	}
	configYAML := strings.TrimSpace(`
version: 1
currency: "US$"
data_file: inventory.json
report:
  default_period_months: 3
`)
	if err := os.WriteFile(filepath.Join(stateDir, "config.yaml"), []byte(configYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := New(baseDir)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if c.Currency() != "US$" {
		t.Fatalf("currency = %q, want US$", c.Currency())
	}
	if got := c.DataPath(); filepath.Base(got) != "inventory.json" {
		t.Fatalf("DataPath = %q, want inventory.json under state dir", got)
	}
	if c.DefaultPeriodMonths() != 3 {
		t.Fatalf("period months = %d, want 3", c.DefaultPeriodMonths())
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	baseDir := t.TempDir()
	stateDir := filepath.Join(baseDir, EstoqueDir)
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		t.Fatal(err)
	}
	configYAML := "version: 1\nreport:\n  default_period_months: -2\n"
	if err := os.WriteFile(filepath.Join(stateDir, "config.yaml"), []byte(configYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := New(baseDir); err == nil {
		t.Fatal("expected validation error for negative period")
	}
}

func TestInitCreatesStructureAndDefaultConfig(t *testing.T) {
	baseDir := t.TempDir()
	if err := Init(baseDir); err != nil {
		t.Fatalf("Init returned error: %v", err)
	}
	for _, dir := range []string{
		filepath.Join(baseDir, EstoqueDir),
		filepath.Join(baseDir, EstoqueDir, "logs"),
	} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory %s", dir)
		}
	}
	data, err := os.ReadFile(filepath.Join(baseDir, EstoqueDir, "config.yaml"))
	if err != nil {
		t.Fatalf("expected default config.yaml: %v", err)
	}
	if !strings.Contains(string(data), "currency: R$") {
		t.Fatalf("default config missing currency, got:\n%s", data)
	}

	// A second Init must leave an edited config alone.
	edited := "version: 1\ncurrency: US$\n"
	path := filepath.Join(baseDir, EstoqueDir, "config.yaml")
	if err := os.WriteFile(path, []byte(edited), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Init(baseDir); err != nil {
		t.Fatalf("second Init returned error: %v", err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != edited {
		t.Fatalf("Init overwrote existing config")
	}
}
