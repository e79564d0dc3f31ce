// internal/inventory/store.go
//
// Store owns the product and sale collections and mirrors them to a single
// JSON document. Every mutation persists the whole document before the call
// returns; reads never touch the disk.

package inventory

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Store is instantiated once per process and handed to whatever presentation
// code needs it. It is not safe for concurrent use; the application is
// single-threaded by design.
type Store struct {
	path string
	doc  document
	now  func() time.Time
}

// StoreOption customizes a Store during construction.
type StoreOption func(*Store)

// WithClock overrides the clock used to stamp products and sales.
func WithClock(clock func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = clock
	}
}

// Open loads the inventory document at path. A missing file yields an empty
// store; a file that exists but cannot be parsed yields a *PersistenceError.
// Sales whose product no longer exists are swept on load, and the sweep is
// persisted immediately so the document stays consistent on disk.
func Open(path string, opts ...StoreOption) (*Store, error) {
	store := &Store{
		path: path,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(store)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, &PersistenceError{Op: "read", Path: path, Err: err}
		}
	} else if err := json.Unmarshal(data, &store.doc); err != nil {
		return nil, &PersistenceError{Op: "parse", Path: path, Err: err}
	}

	// Keep both collections non-nil so an empty store round-trips as JSON
	// arrays, never null.
	if store.doc.Products == nil {
		store.doc.Products = []Product{}
	}
	if store.doc.Sales == nil {
		store.doc.Sales = []Sale{}
	}
	if store.doc.NextID == 0 {
		store.doc.NextID = highestID(store.doc.Products) + 1
	}
	if swept := store.sweepOrphanSales(); swept > 0 {
		if err := store.Save(); err != nil {
			return nil, err
		}
	}
	return store, nil
}

// Path returns the file backing this store.
func (s *Store) Path() string {
	return s.path
}

// Now reads the store's clock, so callers computing default date ranges use
// the same clock that stamps sales.
func (s *Store) Now() time.Time {
	return s.now()
}

// Save serializes both collections to the document, fully overwriting it.
// There is no retry; callers surface the error and the in-memory state leads
// the file until the next successful save.
func (s *Store) Save() error {
	encoded, err := json.MarshalIndent(s.doc, "", "    ")
	if err != nil {
		return &PersistenceError{Op: "encode", Path: s.path, Err: err}
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return &PersistenceError{Op: "write", Path: s.path, Err: err}
	}
	if err := os.WriteFile(s.path, encoded, 0o644); err != nil {
		return &PersistenceError{Op: "write", Path: s.path, Err: err}
	}
	return nil
}

// AddProduct creates a product with the next sequential id and persists.
// Ids come from a counter that never moves backwards, so deleting a product
// and adding another cannot hand out the same id twice.
func (s *Store) AddProduct(name string, price decimal.Decimal, quantity int) (Product, error) {
	if err := validateProduct(name, price, quantity); err != nil {
		return Product{}, err
	}
	product := Product{
		ID:        strconv.FormatInt(s.doc.NextID, 10),
		Name:      strings.TrimSpace(name),
		Price:     price,
		Quantity:  quantity,
		DateAdded: s.now(),
	}
	s.doc.NextID++
	s.doc.Products = append(s.doc.Products, product)
	return product, s.Save()
}

// EditProduct overwrites name, price, and quantity in place. The id and
// creation date never change.
func (s *Store) EditProduct(id, name string, price decimal.Decimal, quantity int) (Product, error) {
	if err := validateProduct(name, price, quantity); err != nil {
		return Product{}, err
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return Product{}, fmt.Errorf("edit product %s: %w", id, ErrNotFound)
	}
	product := &s.doc.Products[idx]
	product.Name = strings.TrimSpace(name)
	product.Price = price
	product.Quantity = quantity
	return *product, s.Save()
}

// DeleteProduct removes the product and every sale that references it, then
// persists. Cascading keeps the sales list free of dangling product ids.
func (s *Store) DeleteProduct(id string) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("delete product %s: %w", id, ErrNotFound)
	}
	s.doc.Products = append(s.doc.Products[:idx], s.doc.Products[idx+1:]...)
	kept := s.doc.Sales[:0]
	for _, sale := range s.doc.Sales {
		if sale.ProductID != id {
			kept = append(kept, sale)
		}
	}
	s.doc.Sales = kept
	return s.Save()
}

// Sell decrements the product's stock and appends a sale frozen at the
// current price. Both changes land in one save, so the document never holds
// one without the other. The quantity check happens before any mutation;
// a rejected sale leaves the store untouched.
func (s *Store) Sell(id string, quantity int) (Sale, error) {
	if quantity <= 0 {
		return Sale{}, &ValidationError{Field: "quantity", Reason: "must be positive"}
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return Sale{}, fmt.Errorf("sell product %s: %w", id, ErrNotFound)
	}
	product := &s.doc.Products[idx]
	if quantity > product.Quantity {
		return Sale{}, &InsufficientStockError{
			ProductID: id,
			Requested: quantity,
			Available: product.Quantity,
		}
	}
	sale := Sale{
		ProductID:    id,
		QuantitySold: quantity,
		Total:        product.Price.Mul(decimal.NewFromInt(int64(quantity))),
		Date:         s.now(),
	}
	product.Quantity -= quantity
	s.doc.Sales = append(s.doc.Sales, sale)
	return sale, s.Save()
}

// Product returns the product with the given id.
func (s *Store) Product(id string) (Product, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Product{}, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	return s.doc.Products[idx], nil
}

// Products returns products whose name contains filter, case-insensitively,
// in insertion order. An empty filter returns everything. The returned slice
// is a copy; callers cannot mutate store state through it.
func (s *Store) Products(filter string) []Product {
	needle := strings.ToLower(strings.TrimSpace(filter))
	out := make([]Product, 0, len(s.doc.Products))
	for _, p := range s.doc.Products {
		if needle == "" || strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out
}

// Sales returns sales joined against the current product list, restricted to
// the period and, when filter is non-empty, to sales whose product name
// contains it. A sale whose product no longer resolves keeps an empty
// ProductName and is excluded once a name filter is active, since there is
// no name to match against.
func (s *Store) Sales(filter string, period Period) []SaleRecord {
	needle := strings.ToLower(strings.TrimSpace(filter))
	out := make([]SaleRecord, 0, len(s.doc.Sales))
	for _, sale := range s.doc.Sales {
		if !period.Contains(sale.Date) {
			continue
		}
		name := s.productName(sale.ProductID)
		if needle != "" && !strings.Contains(strings.ToLower(name), needle) {
			continue
		}
		out = append(out, SaleRecord{Sale: sale, ProductName: name})
	}
	return out
}

// TotalSales sums sale totals inside the period. Only sales whose product
// still resolves are counted; cascade-delete keeps the two in step, so the
// guard only matters for documents edited outside this program.
func (s *Store) TotalSales(period Period) decimal.Decimal {
	total := decimal.Zero
	for _, sale := range s.doc.Sales {
		if !period.Contains(sale.Date) {
			continue
		}
		if s.indexOf(sale.ProductID) < 0 {
			continue
		}
		total = total.Add(sale.Total)
	}
	return total
}

func (s *Store) indexOf(id string) int {
	for i := range s.doc.Products {
		if s.doc.Products[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) productName(id string) string {
	if idx := s.indexOf(id); idx >= 0 {
		return s.doc.Products[idx].Name
	}
	return ""
}

func (s *Store) sweepOrphanSales() int {
	kept := s.doc.Sales[:0]
	swept := 0
	for _, sale := range s.doc.Sales {
		if s.indexOf(sale.ProductID) < 0 {
			swept++
			continue
		}
		kept = append(kept, sale)
	}
	s.doc.Sales = kept
	return swept
}

func validateProduct(name string, price decimal.Decimal, quantity int) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if price.IsNegative() {
		return &ValidationError{Field: "price", Reason: "must not be negative"}
	}
	if quantity < 0 {
		return &ValidationError{Field: "quantity", Reason: "must not be negative"}
	}
	return nil
}

func highestID(products []Product) int64 {
	var highest int64
	for _, p := range products {
		if n, err := strconv.ParseInt(p.ID, 10, 64); err == nil && n > highest {
			highest = n
		}
	}
	return highest
}
