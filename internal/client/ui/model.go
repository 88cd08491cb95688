package ui

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Devanandan1369/online-food-delivery/internal/client"
	"github.com/Devanandan1369/online-food-delivery/internal/logger"
	"github.com/Devanandan1369/online-food-delivery/internal/models"
)

// Backend is the slice of the API client the UI needs. *client.API
// satisfies it; tests substitute a stub.
type Backend interface {
	Restaurants(ctx context.Context) ([]models.Restaurant, error)
	Orders(ctx context.Context) ([]models.Order, error)
	PlaceOrder(ctx context.Context, order models.PlaceOrderRequest) (int, error)
	InvalidateOrders()
}

const requestTimeout = 10 * time.Second

// screen identifies which view is active.
type screen int

const (
	screenLoading screen = iota
	screenRestaurants
	screenMenu
	screenCart
	screenCheckout
	screenPayment
	screenHistory
)

// payment methods, in display order.
var paymentMethods = []string{"Credit Card", "Net Banking", "UPI"}

// restaurantsMsg delivers the catalog fetch result.
type restaurantsMsg struct {
	restaurants []models.Restaurant
	err         error
}

// ordersMsg delivers the order history fetch result.
type ordersMsg struct {
	orders []models.Order
	err    error
}

// placedMsg delivers the result of an order submission.
type placedMsg struct {
	orderID int
	err     error
}

// Model is the bubbletea model for the ordering client. All session
// state lives here; every user interaction flows through Update and
// triggers a full re-render.
type Model struct {
	backend Backend
	session *client.Session
	logger  *logger.Logger
	keys    keyMap

	screen screen
	width  int
	height int

	restaurants []models.Restaurant
	restCursor  int
	selected    int // index into restaurants, -1 until chosen

	itemCursor  int
	pendingQty  map[int]int // per-item quantity about to be added
	searchInput textinput.Model
	minInput    textinput.Model
	maxInput    textinput.Model
	filterFocus int // -1 = list, 0 = search, 1 = min, 2 = max

	cartCursor int

	nameInput     textinput.Model
	addrInput     textinput.Model
	checkoutFocus int

	payMethod int
	payFields [][]textinput.Model // one input set per payment method
	payFocus  int                 // -1 = method selector, else field index

	orders     []models.Order
	histCursor int

	banner      string
	bannerError bool
	loading     bool
	submitting  bool
}

// New creates the ordering client model.
func New(backend Backend, log *logger.Logger) *Model {
	search := textinput.New()
	search.Placeholder = "Search by name..."
	search.CharLimit = 50

	minIn := textinput.New()
	minIn.Placeholder = "Min price"
	minIn.CharLimit = 8

	maxIn := textinput.New()
	maxIn.Placeholder = "Max price"
	maxIn.CharLimit = 8

	name := textinput.New()
	name.Placeholder = "Your Name"
	name.CharLimit = 50

	addr := textinput.New()
	addr.Placeholder = "Delivery Address"
	addr.CharLimit = 200

	card := []textinput.Model{
		newPayField("Card Number", 16, false),
		newPayField("Cardholder Name", 50, false),
		newPayField("Expiry Date (MM/YY)", 5, false),
		newPayField("CVV", 4, true),
	}
	netBanking := []textinput.Model{
		newPayField("Bank", 30, false),
		newPayField("User ID", 30, false),
		newPayField("Password", 30, true),
	}
	upi := []textinput.Model{
		newPayField("UPI ID (e.g. name@bank)", 50, false),
	}

	return &Model{
		backend:     backend,
		session:     client.NewSession(),
		logger:      log,
		keys:        defaultKeyMap(),
		screen:      screenLoading,
		selected:    -1,
		pendingQty:  make(map[int]int),
		searchInput: search,
		minInput:    minIn,
		maxInput:    maxIn,
		filterFocus: -1,
		nameInput:   name,
		addrInput:   addr,
		payFields:   [][]textinput.Model{card, netBanking, upi},
		payFocus:    -1,
		loading:     true,
	}
}

func newPayField(placeholder string, limit int, masked bool) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	if masked {
		in.EchoMode = textinput.EchoPassword
	}
	return in
}

// Init kicks off the initial catalog fetch.
func (m *Model) Init() tea.Cmd {
	return m.loadRestaurants()
}

// Update processes one message and returns the next state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case restaurantsMsg:
		m.loading = false
		if msg.err != nil {
			m.logger.Error("catalog_fetch_failed", "Failed to load restaurants", "", msg.err, nil)
			m.setError("Failed to load restaurants. Please check if menu service is running.")
			m.screen = screenRestaurants
			return m, nil
		}
		m.restaurants = msg.restaurants
		if m.restCursor >= len(m.restaurants) {
			m.restCursor = 0
		}
		// The catalog may have shrunk out-of-band; a selection that no
		// longer indexes it is dropped rather than left dangling.
		if m.selected >= len(m.restaurants) {
			m.selected = -1
			m.itemCursor = 0
			if m.screen == screenMenu {
				m.screen = screenRestaurants
			}
		}
		if m.screen == screenLoading {
			m.screen = screenRestaurants
		}
		return m, nil

	case ordersMsg:
		m.loading = false
		if msg.err != nil {
			m.logger.Error("orders_fetch_failed", "Failed to load past orders", "", msg.err, nil)
			m.setError("Failed to load past orders.")
			return m, nil
		}
		// Sort a copy: the API hands out its cached slice by reference.
		m.orders = append([]models.Order(nil), msg.orders...)
		client.SortOrdersNewestFirst(m.orders)
		if m.histCursor >= len(m.orders) {
			m.histCursor = 0
		}
		return m, nil

	case placedMsg:
		m.submitting = false
		if msg.err != nil {
			m.logger.Error("order_submit_failed", "Failed to place order", "", msg.err, nil)
			m.setError("Error placing order: " + msg.err.Error())
			return m, nil
		}
		m.session.CompleteOrder()
		m.resetPaymentFields()
		m.setSuccess("Payment successful! Order #" + strconv.Itoa(msg.orderID) + " placed.")
		m.screen = screenHistory
		m.loading = true
		return m, m.loadOrders()

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c quits from anywhere, even inside a text field.
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.screen {
	case screenLoading:
		return m, nil
	case screenRestaurants:
		return m.updateRestaurants(msg)
	case screenMenu:
		return m.updateMenu(msg)
	case screenCart:
		return m.updateCart(msg)
	case screenCheckout:
		return m.updateCheckout(msg)
	case screenPayment:
		return m.updatePayment(msg)
	case screenHistory:
		return m.updateHistory(msg)
	}
	return m, nil
}

func (m *Model) updateRestaurants(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.clearBanner()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.restCursor > 0 {
			m.restCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.restCursor < len(m.restaurants)-1 {
			m.restCursor++
		}
	case key.Matches(msg, m.keys.Select):
		if len(m.restaurants) > 0 {
			m.selected = m.restCursor
			m.itemCursor = 0
			m.screen = screenMenu
		}
	case key.Matches(msg, m.keys.Cart):
		m.screen = screenCart
	case key.Matches(msg, m.keys.History):
		m.screen = screenHistory
		m.loading = true
		return m, m.loadOrders()
	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		return m, m.loadRestaurants()
	}
	return m, nil
}

func (m *Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A focused filter field consumes most keys.
	if m.filterFocus >= 0 {
		switch {
		case key.Matches(msg, m.keys.Back):
			m.blurFilters()
			return m, nil
		case key.Matches(msg, m.keys.NextField):
			m.focusFilter((m.filterFocus + 1) % 3)
			return m, nil
		case msg.Type == tea.KeyEnter:
			m.blurFilters()
			return m, nil
		}
		var cmd tea.Cmd
		switch m.filterFocus {
		case 0:
			m.searchInput, cmd = m.searchInput.Update(msg)
		case 1:
			m.minInput, cmd = m.minInput.Update(msg)
		case 2:
			m.maxInput, cmd = m.maxInput.Update(msg)
		}
		m.clampItemCursor()
		return m, cmd
	}

	m.clearBanner()
	items := m.filteredItems()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.screen = screenRestaurants
	case key.Matches(msg, m.keys.Up):
		if m.itemCursor > 0 {
			m.itemCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.itemCursor < len(items)-1 {
			m.itemCursor++
		}
	case key.Matches(msg, m.keys.Search):
		m.focusFilter(0)
	case key.Matches(msg, m.keys.Filter):
		m.focusFilter(1)
	case key.Matches(msg, m.keys.Increase):
		if item, ok := m.itemUnderCursor(items); ok {
			m.pendingQty[item.ID] = m.qtyFor(item.ID) + 1
		}
	case key.Matches(msg, m.keys.Decrease):
		if item, ok := m.itemUnderCursor(items); ok {
			if q := m.qtyFor(item.ID); q > 1 {
				m.pendingQty[item.ID] = q - 1
			}
		}
	case key.Matches(msg, m.keys.Add):
		if item, ok := m.itemUnderCursor(items); ok {
			qty := m.qtyFor(item.ID)
			m.session.AddToCart(item.ID, item.Name, item.Price, qty)
			m.setSuccess("Added " + strconv.Itoa(qty) + " x " + item.Name + " to cart")
			delete(m.pendingQty, item.ID)
		}
	case key.Matches(msg, m.keys.Cart):
		m.screen = screenCart
	case key.Matches(msg, m.keys.History):
		m.screen = screenHistory
		m.loading = true
		return m, m.loadOrders()
	}
	return m, nil
}

func (m *Model) updateCart(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.clearBanner()
	lines := m.session.Entries()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.screen = m.menuOrRestaurants()
	case key.Matches(msg, m.keys.Up):
		if m.cartCursor > 0 {
			m.cartCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cartCursor < len(lines)-1 {
			m.cartCursor++
		}
	case key.Matches(msg, m.keys.Increase):
		if line, ok := m.cartLineUnderCursor(lines); ok {
			m.session.UpdateQuantity(line.ItemID, line.Quantity+1)
		}
	case key.Matches(msg, m.keys.Decrease):
		if line, ok := m.cartLineUnderCursor(lines); ok {
			m.session.UpdateQuantity(line.ItemID, line.Quantity-1)
			m.clampCartCursor()
		}
	case key.Matches(msg, m.keys.Remove):
		if line, ok := m.cartLineUnderCursor(lines); ok {
			m.session.RemoveFromCart(line.ItemID)
			m.clampCartCursor()
		}
	case key.Matches(msg, m.keys.Checkout):
		if m.session.IsEmpty() {
			m.setError("Your cart is empty.")
			return m, nil
		}
		m.screen = screenCheckout
		m.checkoutFocus = 0
		m.nameInput.Focus()
		m.addrInput.Blur()
	case key.Matches(msg, m.keys.History):
		m.screen = screenHistory
		m.loading = true
		return m, m.loadOrders()
	}
	return m, nil
}

func (m *Model) updateCheckout(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.clearBanner()
		m.nameInput.Blur()
		m.addrInput.Blur()
		m.screen = screenCart
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		m.checkoutFocus = (m.checkoutFocus + 1) % 2
		if m.checkoutFocus == 0 {
			m.nameInput.Focus()
			m.addrInput.Blur()
		} else {
			m.addrInput.Focus()
			m.nameInput.Blur()
		}
		return m, nil
	case msg.Type == tea.KeyEnter:
		restaurant := ""
		if m.selected >= 0 && m.selected < len(m.restaurants) {
			restaurant = m.restaurants[m.selected].Name
		}
		if err := m.session.ConfirmOrder(m.nameInput.Value(), m.addrInput.Value(), restaurant); err != nil {
			m.setError(capitalize(err.Error()))
			return m, nil
		}
		m.clearBanner()
		m.nameInput.Blur()
		m.addrInput.Blur()
		m.screen = screenPayment
		m.payFocus = -1
		return m, nil
	}

	var cmd tea.Cmd
	if m.checkoutFocus == 0 {
		m.nameInput, cmd = m.nameInput.Update(msg)
	} else {
		m.addrInput, cmd = m.addrInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) updatePayment(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	fields := m.payFields[m.payMethod]

	// A focused detail field consumes keys until tab/esc/enter.
	if m.payFocus >= 0 {
		switch {
		case key.Matches(msg, m.keys.Back):
			fields[m.payFocus].Blur()
			m.payFocus = -1
			return m, nil
		case key.Matches(msg, m.keys.NextField):
			fields[m.payFocus].Blur()
			m.payFocus = (m.payFocus + 1) % len(fields)
			fields[m.payFocus].Focus()
			return m, nil
		case msg.Type == tea.KeyEnter:
			return m.submitOrder()
		}
		var cmd tea.Cmd
		fields[m.payFocus], cmd = fields[m.payFocus].Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		// Back to the cart: the pending snapshot is discarded, the
		// cart itself survives.
		m.session.CancelPayment()
		m.clearBanner()
		m.screen = screenCart
	case key.Matches(msg, m.keys.Left):
		if m.payMethod > 0 {
			m.payMethod--
		}
	case key.Matches(msg, m.keys.Right):
		if m.payMethod < len(paymentMethods)-1 {
			m.payMethod++
		}
	case key.Matches(msg, m.keys.NextField):
		m.payFocus = 0
		fields[0].Focus()
	case msg.Type == tea.KeyEnter:
		return m.submitOrder()
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.clearBanner()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.screen = m.menuOrRestaurants()
	case key.Matches(msg, m.keys.Up):
		if m.histCursor > 0 {
			m.histCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.histCursor < len(m.orders)-1 {
			m.histCursor++
		}
	case key.Matches(msg, m.keys.Refresh):
		m.backend.InvalidateOrders()
		m.loading = true
		return m, m.loadOrders()
	case key.Matches(msg, m.keys.Cart):
		m.screen = screenCart
	}
	return m, nil
}

// submitOrder builds the final payload from the pending snapshot and
// fires the asynchronous placement. Payment details are intentionally
// neither validated nor transmitted.
func (m *Model) submitOrder() (tea.Model, tea.Cmd) {
	if m.session.Pending() == nil {
		m.setError("No confirmed order to pay for.")
		return m, nil
	}
	req := m.session.BuildOrderRequest(time.Now())
	m.submitting = true
	backend := m.backend
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		id, err := backend.PlaceOrder(ctx, req)
		return placedMsg{orderID: id, err: err}
	}
}

func (m *Model) loadRestaurants() tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		restaurants, err := backend.Restaurants(ctx)
		return restaurantsMsg{restaurants: restaurants, err: err}
	}
}

func (m *Model) loadOrders() tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		orders, err := backend.Orders(ctx)
		return ordersMsg{orders: orders, err: err}
	}
}

// filteredItems applies the search and price-range filters to the
// selected restaurant's menu.
func (m *Model) filteredItems() []models.MenuItem {
	if m.selected < 0 || m.selected >= len(m.restaurants) {
		return nil
	}
	minPrice := parsePrice(m.minInput.Value(), 0)
	maxPrice := parsePrice(m.maxInput.Value(), math.MaxFloat64)
	return client.FilterItems(m.restaurants[m.selected].Items, m.searchInput.Value(), minPrice, maxPrice)
}

func parsePrice(s string, def float64) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return def
	}
	return v
}

func (m *Model) qtyFor(itemID int) int {
	if q, ok := m.pendingQty[itemID]; ok {
		return q
	}
	return 1
}

func (m *Model) itemUnderCursor(items []models.MenuItem) (models.MenuItem, bool) {
	if m.itemCursor < 0 || m.itemCursor >= len(items) {
		return models.MenuItem{}, false
	}
	return items[m.itemCursor], true
}

func (m *Model) cartLineUnderCursor(lines []client.CartLine) (client.CartLine, bool) {
	if m.cartCursor < 0 || m.cartCursor >= len(lines) {
		return client.CartLine{}, false
	}
	return lines[m.cartCursor], true
}

func (m *Model) clampItemCursor() {
	if n := len(m.filteredItems()); m.itemCursor >= n {
		m.itemCursor = max(0, n-1)
	}
}

func (m *Model) clampCartCursor() {
	if n := len(m.session.Entries()); m.cartCursor >= n {
		m.cartCursor = max(0, n-1)
	}
}

func (m *Model) menuOrRestaurants() screen {
	if m.selected >= 0 {
		return screenMenu
	}
	return screenRestaurants
}

func (m *Model) focusFilter(idx int) {
	m.blurFilters()
	m.filterFocus = idx
	switch idx {
	case 0:
		m.searchInput.Focus()
	case 1:
		m.minInput.Focus()
	case 2:
		m.maxInput.Focus()
	}
}

func (m *Model) blurFilters() {
	m.filterFocus = -1
	m.searchInput.Blur()
	m.minInput.Blur()
	m.maxInput.Blur()
}

func (m *Model) resetPaymentFields() {
	for i := range m.payFields {
		for j := range m.payFields[i] {
			m.payFields[i][j].SetValue("")
			m.payFields[i][j].Blur()
		}
	}
	m.payMethod = 0
	m.payFocus = -1
	m.nameInput.SetValue("")
	m.addrInput.SetValue("")
}

func (m *Model) setError(message string) {
	m.banner = message
	m.bannerError = true
}

func (m *Model) setSuccess(message string) {
	m.banner = message
	m.bannerError = false
}

func (m *Model) clearBanner() {
	m.banner = ""
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
