package commands

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/rtimportacoes/estoque/internal/inventory"
)

const flagDateLayout = "2006-01-02"

var (
	listFilter string
	listFrom   string
	listTo     string
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List products",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, store, err := openStore()
		if err != nil {
			return err
		}
		products := store.Products(listFilter)
		if jsonOutput {
			return printJSON(cmd, products)
		}
		t := newListTable("ID", "NAME", "PRICE", "QUANTITY")
		for _, p := range products {
			t.Row(p.ID, p.Name, cfg.Currency()+p.Price.StringFixed(2), strconv.Itoa(p.Quantity))
		}
		cmd.Println(t.Render())
		return nil
	},
}

var salesCmd = &cobra.Command{
	Use:   "sales",
	Short: "List sales, optionally restricted to a date range",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, store, err := openStore()
		if err != nil {
			return err
		}
		period, err := flagPeriod()
		if err != nil {
			return err
		}
		sales := store.Sales(listFilter, period)
		if jsonOutput {
			return printJSON(cmd, sales)
		}
		t := newListTable("PRODUCT", "QTY", "TOTAL", "DATE", "PRODUCT ID")
		for _, s := range sales {
			name := s.ProductName
			if name == "" {
				name = "(deleted)"
			}
			t.Row(
				name,
				strconv.Itoa(s.QuantitySold),
				cfg.Currency()+s.Total.StringFixed(2),
				s.Date.Format("2006-01-02 15:04"),
				s.ProductID,
			)
		}
		cmd.Println(t.Render())
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{productsCmd, salesCmd} {
		cmd.Flags().StringVar(&listFilter, "filter", "", "Case-insensitive product name filter")
	}
	salesCmd.Flags().StringVar(&listFrom, "from", "", "Start date (inclusive), "+flagDateLayout)
	salesCmd.Flags().StringVar(&listTo, "to", "", "End date (inclusive), "+flagDateLayout)

	rootCmd.AddCommand(productsCmd)
	rootCmd.AddCommand(salesCmd)
}

func newListTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(headers...)
}

func flagPeriod() (inventory.Period, error) {
	var period inventory.Period
	if listFrom != "" {
		from, err := time.ParseInLocation(flagDateLayout, listFrom, time.Local)
		if err != nil {
			return inventory.Period{}, fmt.Errorf("invalid --from date %q, expected %s", listFrom, flagDateLayout)
		}
		period.From = from
	}
	if listTo != "" {
		to, err := time.ParseInLocation(flagDateLayout, listTo, time.Local)
		if err != nil {
			return inventory.Period{}, fmt.Errorf("invalid --to date %q, expected %s", listTo, flagDateLayout)
		}
		period.To = to
	}
	if !period.From.IsZero() && !period.To.IsZero() && period.From.After(period.To) {
		return inventory.Period{}, fmt.Errorf("--from is after --to")
	}
	return period, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	cmd.Println(string(encoded))
	return nil
}
