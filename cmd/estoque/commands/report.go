package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rtimportacoes/estoque/internal/inventory"
)

var (
	reportFrom string
	reportTo   string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Sum sale totals, optionally restricted to a date range",
	Long: `Report sums the totals of recorded sales. Without flags it covers every
sale; --from and --to restrict it to an inclusive date range compared at
day granularity.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, store, err := openStore()
		if err != nil {
			return err
		}
		period, err := reportPeriod()
		if err != nil {
			return err
		}
		total := store.TotalSales(period)
		if jsonOutput {
			return printJSON(cmd, reportResult{
				From:  reportFrom,
				To:    reportTo,
				Total: total,
			})
		}
		money := cfg.Currency() + total.StringFixed(2)
		switch {
		case period.IsZero():
			cmd.Printf("Total sold: %s\n", money)
		case period.From.IsZero():
			cmd.Printf("Total sold through %s: %s\n", reportTo, money)
		case period.To.IsZero():
			cmd.Printf("Total sold since %s: %s\n", reportFrom, money)
		default:
			cmd.Printf("Total sold from %s to %s: %s\n", reportFrom, reportTo, money)
		}
		return nil
	},
}

type reportResult struct {
	From  string          `json:"from,omitempty"`
	To    string          `json:"to,omitempty"`
	Total decimal.Decimal `json:"total"`
}

func init() {
	reportCmd.Flags().StringVar(&reportFrom, "from", "", "Start date (inclusive), "+flagDateLayout)
	reportCmd.Flags().StringVar(&reportTo, "to", "", "End date (inclusive), "+flagDateLayout)
	rootCmd.AddCommand(reportCmd)
}

func reportPeriod() (inventory.Period, error) {
	var period inventory.Period
	if reportFrom != "" {
		from, err := time.ParseInLocation(flagDateLayout, reportFrom, time.Local)
		if err != nil {
			return inventory.Period{}, fmt.Errorf("invalid --from date %q, expected %s", reportFrom, flagDateLayout)
		}
		period.From = from
	}
	if reportTo != "" {
		to, err := time.ParseInLocation(flagDateLayout, reportTo, time.Local)
		if err != nil {
			return inventory.Period{}, fmt.Errorf("invalid --to date %q, expected %s", reportTo, flagDateLayout)
		}
		period.To = to
	}
	if !period.From.IsZero() && !period.To.IsZero() && period.From.After(period.To) {
		return inventory.Period{}, fmt.Errorf("--from is after --to")
	}
	return period, nil
}
