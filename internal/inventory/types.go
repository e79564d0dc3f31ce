// internal/inventory/types.go
//
// Record types for the inventory document. The JSON field names are the
// on-disk contract; existing database.json files keep loading unchanged.

package inventory

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices and totals are stored as bare JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product is a stock-keeping unit. ID and DateAdded are set at creation and
// never change afterwards.
type Product struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	DateAdded time.Time       `json:"date_added"`
}

// Sale records stock sold at a point in time. The total is frozen at the
// product's price when the sale happened; later price edits do not touch it.
type Sale struct {
	ProductID    string          `json:"product_id"`
	QuantitySold int             `json:"quantity_sold"`
	Total        decimal.Decimal `json:"total"`
	Date         time.Time       `json:"date"`
}

// SaleRecord is a Sale joined against the current product list for display.
// ProductName is empty when the referenced product no longer exists, which
// can only happen if the document was edited outside this program.
type SaleRecord struct {
	Sale
	ProductName string
}

// document is the durable on-disk representation. NextID carries the id
// counter across runs; documents written by older tools may omit it, in
// which case the counter is rebuilt from the highest numeric id on load.
type document struct {
	NextID   int64     `json:"next_id,omitempty"`
	Products []Product `json:"products"`
	Sales    []Sale    `json:"sales"`
}

// Period is an inclusive date range compared at day granularity. The zero
// value matches every sale.
type Period struct {
	From time.Time
	To   time.Time
}

// IsZero reports whether the period places no restriction at all.
func (p Period) IsZero() bool {
	return p.From.IsZero() && p.To.IsZero()
}

// Contains reports whether t falls inside the period. Bounds are inclusive
// and compared by calendar day, so a sale at 23:59 on the end date counts.
func (p Period) Contains(t time.Time) bool {
	day := dayOf(t)
	if !p.From.IsZero() && day.Before(dayOf(p.From)) {
		return false
	}
	if !p.To.IsZero() && day.After(dayOf(p.To)) {
		return false
	}
	return true
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
