package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rtimportacoes/estoque/internal/config"
	"github.com/rtimportacoes/estoque/internal/inventory"
	"github.com/shopspring/decimal"
)

func TestParseMoney(t *testing.T) {
	cases := map[string]string{
		"10.50": "10.5",
		"10,50": "10.5",
		" 3 ":   "3",
	}
	for input, want := range cases {
		got, err := parseMoney(input)
		if err != nil {
			t.Fatalf("parseMoney(%q) returned error: %v", input, err)
		}
		if !got.Equal(decimal.RequireFromString(want)) {
			t.Fatalf("parseMoney(%q) = %s, want %s", input, got, want)
		}
	}
	if _, err := parseMoney("abc"); err == nil {
		t.Fatal("expected error for non-numeric price")
	}
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("05/03/2025")
	if err != nil {
		t.Fatalf("parseDate returned error: %v", err)
	}
	want := time.Date(2025, 3, 5, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("parseDate = %v, want %v", got, want)
	}
	if _, err := parseDate("2025-03-05"); err == nil {
		t.Fatal("expected error for ISO-formatted input")
	}
}

func TestParsePeriodRejectsInvertedRange(t *testing.T) {
	if _, err := parsePeriod("05/03/2025", "01/03/2025"); err == nil {
		t.Fatal("expected error when start date is after end date")
	}
	period, err := parsePeriod("01/03/2025", "05/03/2025")
	if err != nil {
		t.Fatalf("parsePeriod returned error: %v", err)
	}
	inside := time.Date(2025, 3, 3, 12, 0, 0, 0, time.Local)
	if !period.Contains(inside) {
		t.Fatal("expected mid-range date to be inside the period")
	}
}

func newAppForTest(t *testing.T) *App {
	t.Helper()
	baseDir := t.TempDir()
	cfg, err := config.New(baseDir)
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	store, err := inventory.Open(filepath.Join(baseDir, "database.json"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return NewApp(cfg, store, nil)
}

func TestAppShowsProducts(t *testing.T) {
	app := newAppForTest(t)
	if _, err := app.store.AddProduct("Widget", decimal.RequireFromString("10.00"), 5); err != nil {
		t.Fatalf("add product: %v", err)
	}
	app.refreshTables()

	if rows := app.productTable.Rows(); len(rows) != 1 {
		t.Fatalf("product rows = %d, want 1", len(rows))
	}
	view := app.View()
	if view == "" {
		t.Fatal("expected non-empty view")
	}
}

func TestDeleteConfirmFlow(t *testing.T) {
	app := newAppForTest(t)
	if _, err := app.store.AddProduct("Widget", decimal.RequireFromString("10.00"), 5); err != nil {
		t.Fatalf("add product: %v", err)
	}
	if _, err := app.store.Sell("1", 2); err != nil {
		t.Fatalf("sell: %v", err)
	}
	app.refreshTables()

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	if app.state != viewConfirm {
		t.Fatalf("state = %v, want confirm", app.state)
	}
	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	if app.state != viewBrowse {
		t.Fatal("expected cancel to return to browse")
	}
	if got := len(app.store.Products("")); got != 1 {
		t.Fatalf("cancel must not delete, have %d products", got)
	}

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	if got := len(app.store.Products("")); got != 0 {
		t.Fatalf("expected delete, have %d products", got)
	}
	if got := len(app.store.Sales("", inventory.Period{})); got != 0 {
		t.Fatalf("expected cascade, have %d sales", got)
	}
}
