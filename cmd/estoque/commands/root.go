package commands

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rtimportacoes/estoque/internal/config"
	"github.com/rtimportacoes/estoque/internal/inventory"
	"github.com/rtimportacoes/estoque/internal/logbook"
	"github.com/rtimportacoes/estoque/internal/tui"
)

var (
	// Global flags
	baseDir    string
	jsonOutput bool
)

// rootCmd launches the interactive tracker. The subcommands exist for
// scripting; day-to-day use is the TUI.
var rootCmd = &cobra.Command{
	Use:   "estoque",
	Short: "Single-user inventory and sales tracker",
	Long: `Estoque tracks products and sales in a flat JSON document under .estoque/.

Running estoque with no arguments opens the interactive terminal UI.
The products, sales, and report subcommands read the same document
non-interactively for scripting and quick checks.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, store, err := openStore()
		if err != nil {
			return err
		}
		lb, err := logbook.New(cfg.JournalPath())
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		lb.Info("session", "opened %s", store.Path())

		p := tea.NewProgram(
			tui.NewApp(cfg, store, lb),
			tea.WithAltScreen(),
		)
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("run ui: %w", err)
		}
		lb.Info("session", "closed")
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseDir, "dir", ".", "Directory holding the .estoque data folder")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
}

// openStore initializes the .estoque directory and opens the inventory
// document for the configured base directory.
func openStore() (*config.Config, *inventory.Store, error) {
	dir, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, nil, err
	}
	if err := config.Init(dir); err != nil {
		return nil, nil, fmt.Errorf("initialize %s: %w", config.EstoqueDir, err)
	}
	cfg, err := config.New(dir)
	if err != nil {
		return nil, nil, err
	}
	store, err := inventory.Open(cfg.DataPath())
	if err != nil {
		return nil, nil, err
	}
	return cfg, store, nil
}
