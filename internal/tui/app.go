// internal/tui/app.go
//
// The terminal front end for the inventory store. It follows The Elm
// Architecture the way bubbletea expects:
//
// 1. Model: the App struct holds all state
// 2. Update: reacts to key presses and window sizes
// 3. View: renders the current state to a string
//
// The store does the real work; this layer only collects input, invokes one
// store operation per action, and renders what comes back.

package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rtimportacoes/estoque/internal/config"
	"github.com/rtimportacoes/estoque/internal/inventory"
	"github.com/rtimportacoes/estoque/internal/logbook"
)

// viewState represents which "screen" we're on.
type viewState int

const (
	viewBrowse  viewState = iota // tables with search
	viewForm                     // modal input form
	viewConfirm                  // delete confirmation
)

type activeTab int

const (
	tabProducts activeTab = iota
	tabSales
)

// App is the main application model.
type App struct {
	cfg     *config.Config
	store   *inventory.Store
	logbook *logbook.Logbook

	state viewState
	tab   activeTab

	productTable  table.Model
	salesTable    table.Model
	productSearch textinput.Model
	salesSearch   textinput.Model
	searchFocused bool

	salesPeriod inventory.Period

	form        *form
	confirmID   string
	confirmName string

	statusMsg string
	statusErr bool

	width  int
	height int
}

// NewApp wires the presentation layer to an already-opened store. The store
// is passed by reference; the TUI never owns inventory state of its own.
func NewApp(cfg *config.Config, store *inventory.Store, lb *logbook.Logbook) *App {
	productSearch := textinput.New()
	productSearch.Placeholder = "Search products by name..."
	productSearch.Prompt = "/ "
	productSearch.CharLimit = 64

	salesSearch := textinput.New()
	salesSearch.Placeholder = "Search sales by product..."
	salesSearch.Prompt = "/ "
	salesSearch.CharLimit = 64

	app := &App{
		cfg:           cfg,
		store:         store,
		logbook:       lb,
		state:         viewBrowse,
		tab:           tabProducts,
		productTable:  newTable(productColumns()),
		salesTable:    newTable(salesColumns()),
		productSearch: productSearch,
		salesSearch:   salesSearch,
		statusMsg:     "Ready",
	}
	app.refreshTables()
	return app
}

func newTable(columns []table.Column) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorFaint).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(colorAccent).
		Bold(false)
	t.SetStyles(styles)
	return t
}

func productColumns() []table.Column {
	return []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Name", Width: 32},
		{Title: "Price", Width: 12},
		{Title: "Quantity", Width: 10},
	}
}

func salesColumns() []table.Column {
	return []table.Column{
		{Title: "Product", Width: 26},
		{Title: "Qty", Width: 6},
		{Title: "Total", Width: 12},
		{Title: "Date", Width: 18},
		{Title: "Product ID", Width: 10},
	}
}

func (a *App) refreshTables() {
	products := a.store.Products(a.productSearch.Value())
	productRows := make([]table.Row, 0, len(products))
	for _, p := range products {
		productRows = append(productRows, table.Row{
			p.ID,
			p.Name,
			formatMoney(a.cfg.Currency(), p.Price),
			fmt.Sprintf("%d", p.Quantity),
		})
	}
	a.productTable.SetRows(productRows)

	sales := a.store.Sales(a.salesSearch.Value(), a.salesPeriod)
	salesRows := make([]table.Row, 0, len(sales))
	for _, s := range sales {
		name := s.ProductName
		if name == "" {
			name = "(deleted)"
		}
		salesRows = append(salesRows, table.Row{
			name,
			fmt.Sprintf("%d", s.QuantitySold),
			formatMoney(a.cfg.Currency(), s.Total),
			formatDate(s.Date),
			s.ProductID,
		})
	}
	a.salesTable.SetRows(salesRows)
}

func (a *App) setStatus(format string, args ...any) {
	a.statusMsg = fmt.Sprintf(format, args...)
	a.statusErr = false
}

func (a *App) setError(err error) {
	a.statusMsg = err.Error()
	a.statusErr = true
	a.logError("error", "%v", err)
}

func (a *App) logInfo(op, format string, args ...any) {
	if a.logbook != nil {
		a.logbook.Info(op, format, args...)
	}
}

func (a *App) logError(op, format string, args ...any) {
	if a.logbook != nil {
		a.logbook.Error(op, format, args...)
	}
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		height := max(6, msg.Height-14)
		a.productTable.SetHeight(height)
		a.salesTable.SetHeight(height)
		return a, nil

	case tea.KeyMsg:
		switch a.state {
		case viewForm:
			return a.updateForm(msg)
		case viewConfirm:
			return a.updateConfirm(msg)
		default:
			return a.updateBrowse(msg)
		}
	}
	return a, nil
}

func (a *App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	done, status, cmd := a.form.Update(msg)
	if done {
		a.state = viewBrowse
		a.form = nil
		if status != "" {
			a.setStatus("%s", status)
		}
		a.refreshTables()
	}
	return a, cmd
}

func (a *App) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		if err := a.store.DeleteProduct(a.confirmID); err != nil {
			a.setError(err)
		} else {
			a.logInfo("delete-product", "%s (id %s)", a.confirmName, a.confirmID)
			a.setStatus("Deleted %s and its sales", a.confirmName)
		}
		a.state = viewBrowse
		a.refreshTables()
	case "n", "N", "esc":
		a.state = viewBrowse
		a.setStatus("Delete cancelled")
	}
	return a, nil
}

func (a *App) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if a.searchFocused {
		switch key {
		case "esc", "enter":
			a.searchFocused = false
			a.productSearch.Blur()
			a.salesSearch.Blur()
			return a, nil
		default:
			var cmd tea.Cmd
			if a.tab == tabProducts {
				a.productSearch, cmd = a.productSearch.Update(msg)
			} else {
				a.salesSearch, cmd = a.salesSearch.Update(msg)
			}
			a.refreshTables()
			return a, cmd
		}
	}

	switch key {
	case "ctrl+c", "q":
		return a, tea.Quit
	case "tab":
		if a.tab == tabProducts {
			a.tab = tabSales
		} else {
			a.tab = tabProducts
		}
		return a, nil
	case "/":
		a.searchFocused = true
		if a.tab == tabProducts {
			return a, a.productSearch.Focus()
		}
		return a, a.salesSearch.Focus()
	case "a":
		if a.tab == tabProducts {
			return a.beginAddProduct()
		}
	case "e":
		if a.tab == tabProducts {
			return a.beginEditProduct()
		}
	case "d":
		if a.tab == tabProducts {
			return a.beginDeleteProduct()
		}
	case "s":
		if a.tab == tabProducts {
			return a.beginSellProduct()
		}
	case "t":
		total := a.store.TotalSales(inventory.Period{})
		a.logInfo("report", "total sold %s", total.StringFixed(2))
		a.setStatus("Total sold: %s", formatMoney(a.cfg.Currency(), total))
		return a, nil
	case "p":
		return a.beginPeriodTotal()
	case "f":
		if a.tab == tabSales {
			return a.beginPeriodFilter()
		}
	case "c":
		if a.tab == tabSales {
			a.salesPeriod = inventory.Period{}
			a.salesSearch.SetValue("")
			a.refreshTables()
			a.setStatus("Sales filters cleared")
			return a, nil
		}
	}

	var cmd tea.Cmd
	if a.tab == tabProducts {
		a.productTable, cmd = a.productTable.Update(msg)
	} else {
		a.salesTable, cmd = a.salesTable.Update(msg)
	}
	return a, cmd
}

func (a *App) selectedProductID() (string, bool) {
	row := a.productTable.SelectedRow()
	if len(row) == 0 {
		a.setStatus("Select a product first")
		return "", false
	}
	return row[0], true
}

func (a *App) beginAddProduct() (tea.Model, tea.Cmd) {
	a.form = newForm("Add Product", func(values []string) (string, error) {
		price, err := parseMoney(values[1])
		if err != nil {
			return "", err
		}
		quantity, err := parseQuantity(values[2])
		if err != nil {
			return "", err
		}
		product, err := a.store.AddProduct(values[0], price, quantity)
		if err != nil {
			a.logError("add-product", "%v", err)
			return "", err
		}
		a.logInfo("add-product", "%s (id %s)", product.Name, product.ID)
		return fmt.Sprintf("Added %s with id %s", product.Name, product.ID), nil
	},
		fieldSpec{label: "Name", placeholder: "Product name"},
		fieldSpec{label: "Price", placeholder: "0.00"},
		fieldSpec{label: "Quantity", placeholder: "0"},
	)
	a.state = viewForm
	return a, nil
}

func (a *App) beginEditProduct() (tea.Model, tea.Cmd) {
	id, ok := a.selectedProductID()
	if !ok {
		return a, nil
	}
	product, err := a.store.Product(id)
	if err != nil {
		a.setError(err)
		return a, nil
	}
	a.form = newForm("Edit Product", func(values []string) (string, error) {
		price, err := parseMoney(values[1])
		if err != nil {
			return "", err
		}
		quantity, err := parseQuantity(values[2])
		if err != nil {
			return "", err
		}
		edited, err := a.store.EditProduct(id, values[0], price, quantity)
		if err != nil {
			a.logError("edit-product", "%v", err)
			return "", err
		}
		a.logInfo("edit-product", "%s (id %s)", edited.Name, edited.ID)
		return fmt.Sprintf("Updated %s", edited.Name), nil
	},
		fieldSpec{label: "Name", initial: product.Name},
		fieldSpec{label: "Price", initial: product.Price.StringFixed(2)},
		fieldSpec{label: "Quantity", initial: fmt.Sprintf("%d", product.Quantity)},
	)
	a.state = viewForm
	return a, nil
}

func (a *App) beginDeleteProduct() (tea.Model, tea.Cmd) {
	id, ok := a.selectedProductID()
	if !ok {
		return a, nil
	}
	product, err := a.store.Product(id)
	if err != nil {
		a.setError(err)
		return a, nil
	}
	a.confirmID = product.ID
	a.confirmName = product.Name
	a.state = viewConfirm
	return a, nil
}

func (a *App) beginSellProduct() (tea.Model, tea.Cmd) {
	id, ok := a.selectedProductID()
	if !ok {
		return a, nil
	}
	product, err := a.store.Product(id)
	if err != nil {
		a.setError(err)
		return a, nil
	}
	title := fmt.Sprintf("Sell %s (%d in stock)", product.Name, product.Quantity)
	a.form = newForm(title, func(values []string) (string, error) {
		quantity, err := parseQuantity(values[0])
		if err != nil {
			return "", err
		}
		sale, err := a.store.Sell(id, quantity)
		if err != nil {
			var stockErr *inventory.InsufficientStockError
			if errors.As(err, &stockErr) {
				a.logError("sell", "%s: %v", product.Name, err)
			}
			return "", err
		}
		a.logInfo("sell", "%d x %s for %s", sale.QuantitySold, product.Name, sale.Total.StringFixed(2))
		return fmt.Sprintf("Sold %d x %s for %s",
			sale.QuantitySold, product.Name, formatMoney(a.cfg.Currency(), sale.Total)), nil
	},
		fieldSpec{label: "Quantity", placeholder: "0"},
	)
	a.state = viewForm
	return a, nil
}

func (a *App) beginPeriodTotal() (tea.Model, tea.Cmd) {
	from, to := a.defaultPeriodBounds()
	a.form = newForm("Total by Period", func(values []string) (string, error) {
		period, err := parsePeriod(values[0], values[1])
		if err != nil {
			return "", err
		}
		total := a.store.TotalSales(period)
		a.logInfo("report", "total %s from %s to %s", total.StringFixed(2), values[0], values[1])
		return fmt.Sprintf("Total sold from %s to %s: %s",
			values[0], values[1], formatMoney(a.cfg.Currency(), total)), nil
	},
		fieldSpec{label: "From", initial: from},
		fieldSpec{label: "To", initial: to},
	)
	a.state = viewForm
	return a, nil
}

func (a *App) beginPeriodFilter() (tea.Model, tea.Cmd) {
	from, to := a.defaultPeriodBounds()
	a.form = newForm("Filter Sales by Date", func(values []string) (string, error) {
		period, err := parsePeriod(values[0], values[1])
		if err != nil {
			return "", err
		}
		a.salesPeriod = period
		return fmt.Sprintf("Showing sales from %s to %s", values[0], values[1]), nil
	},
		fieldSpec{label: "From", initial: from},
		fieldSpec{label: "To", initial: to},
	)
	a.state = viewForm
	return a, nil
}

func (a *App) defaultPeriodBounds() (string, string) {
	now := a.store.Now()
	from := now.AddDate(0, -a.cfg.DefaultPeriodMonths(), 0)
	return from.Format(dateLayout), now.Format(dateLayout)
}

// View renders the current state to a string.
func (a *App) View() string {
	header := headerStyle.Render("⬡ ESTOQUE")

	var body string
	switch a.state {
	case viewForm:
		body = a.form.View()
	case viewConfirm:
		body = a.renderConfirm()
	default:
		body = a.renderBrowse()
	}

	sections := []string{header, body}
	if logPanel := a.renderLogPanel(); logPanel != "" {
		sections = append(sections, logPanel)
	}
	status := a.statusMsg
	if a.statusErr {
		status = errorStyle.Render(status)
	} else {
		status = footerStyle.Render(status)
	}
	sections = append(sections, status)
	return strings.Join(sections, "\n")
}

func (a *App) renderBrowse() string {
	tabs := lipgloss.JoinHorizontal(lipgloss.Top,
		a.renderTab("Products", tabProducts),
		a.renderTab("Sales", tabSales),
	)

	var search, tableView, hints string
	if a.tab == tabProducts {
		search = a.productSearch.View()
		tableView = a.productTable.View()
		hints = "a add · e edit · d delete · s sell · t total · p total by period · / search · tab sales · q quit"
	} else {
		search = a.salesSearch.View()
		tableView = a.salesTable.View()
		hints = "f filter by date · c clear filters · t total · p total by period · / search · tab products · q quit"
		if !a.salesPeriod.IsZero() {
			search += footerStyle.Render(fmt.Sprintf("   [%s – %s]",
				a.salesPeriod.From.Format(dateLayout), a.salesPeriod.To.Format(dateLayout)))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		tabs,
		search,
		panelStyle.Render(tableView),
		hintStyle.Render(hints),
	)
}

func (a *App) renderTab(title string, t activeTab) string {
	if a.tab == t {
		return activeTabStyle.Render(title)
	}
	return tabStyle.Render(title)
}

func (a *App) renderConfirm() string {
	prompt := fmt.Sprintf("Delete %q and every sale referencing it?", a.confirmName)
	hint := hintStyle.Render("y → delete    n → cancel")
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		panelTitleStyle.Render("Delete Product"),
		prompt,
		hint,
	))
}

func (a *App) renderLogPanel() string {
	if a.logbook == nil {
		return ""
	}
	lines := a.logbook.Tail(5)
	if len(lines) == 0 {
		return ""
	}
	head := panelTitleStyle.Render("LOG · journey.log")
	body := footerStyle.Render(strings.Join(lines, "\n"))
	return panelStyle.Render(fmt.Sprintf("%s\n%s", head, body))
}

func parsePeriod(from, to string) (inventory.Period, error) {
	start, err := parseDate(from)
	if err != nil {
		return inventory.Period{}, err
	}
	end, err := parseDate(to)
	if err != nil {
		return inventory.Period{}, err
	}
	if start.After(end) {
		return inventory.Period{}, fmt.Errorf("start date is after the end date")
	}
	return inventory.Period{From: start, To: end}, nil
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
