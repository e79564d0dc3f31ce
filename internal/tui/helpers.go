package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// dateLayout matches how the operator types dates in forms.
const dateLayout = "02/01/2006"

func parseMoney(value string) (decimal.Decimal, error) {
	// Accept a comma as the decimal separator since operators type prices
	// both ways.
	normalized := strings.ReplaceAll(strings.TrimSpace(value), ",", ".")
	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid price %q", value)
	}
	return d, nil
}

func parseQuantity(value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid quantity %q", value)
	}
	return n, nil
}

func parseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, strings.TrimSpace(value), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected dd/mm/yyyy", value)
	}
	return t, nil
}

func formatMoney(currency string, d decimal.Decimal) string {
	return currency + d.StringFixed(2)
}

func formatDate(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}
