package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the active screen.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Online Food Delivery"))
	b.WriteString("\n")

	if m.banner != "" {
		style := successBannerStyle
		if m.bannerError {
			style = errorBannerStyle
		}
		b.WriteString(style.Render(m.banner))
		b.WriteString("\n\n")
	}

	switch m.screen {
	case screenLoading:
		b.WriteString(dimStyle.Render("Loading restaurants..."))
	case screenRestaurants:
		b.WriteString(m.viewRestaurants())
	case screenMenu:
		b.WriteString(m.viewMenu())
	case screenCart:
		b.WriteString(m.viewCart())
	case screenCheckout:
		b.WriteString(m.viewCheckout())
	case screenPayment:
		b.WriteString(m.viewPayment())
	case screenHistory:
		b.WriteString(m.viewHistory())
	}

	return b.String()
}

func (m *Model) viewRestaurants() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Select Restaurant"))
	b.WriteString("\n\n")

	if len(m.restaurants) == 0 {
		b.WriteString(dimStyle.Render("No restaurants available."))
	}
	for i, r := range m.restaurants {
		line := fmt.Sprintf("%s  %s", r.Name, dimStyle.Render(fmt.Sprintf("(%d items)", len(r.Items))))
		if i == m.restCursor {
			b.WriteString(cursorStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("enter select · c cart · o past orders · r refresh · q quit"))
	return b.String()
}

func (m *Model) viewMenu() string {
	if m.selected < 0 || m.selected >= len(m.restaurants) {
		return dimStyle.Render("This restaurant is no longer available.")
	}
	var b strings.Builder
	restaurant := m.restaurants[m.selected]
	b.WriteString(headerStyle.Render("Menu for " + restaurant.Name))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Search: %s   Min: %s   Max: %s\n\n",
		m.searchInput.View(), m.minInput.View(), m.maxInput.View()))

	items := m.filteredItems()
	if len(items) == 0 {
		b.WriteString(dimStyle.Render("No menu items match your search/filter criteria."))
		b.WriteString("\n")
	}
	for i, item := range items {
		qty := m.qtyFor(item.ID)
		line := fmt.Sprintf("%-24s %8s  qty %d", item.Name, priceStyle.Render(formatCurrency(item.Price)), qty)
		if i == m.itemCursor && m.filterFocus < 0 {
			b.WriteString(cursorStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
		if item.Description != "" {
			b.WriteString(dimStyle.Render("    " + item.Description))
			b.WriteString("\n")
		}
	}

	cartNote := fmt.Sprintf("Cart: %d items, %s", len(m.session.Entries()), formatCurrency(m.session.Total()))
	b.WriteString("\n" + totalStyle.Render(cartNote) + "\n")
	b.WriteString(helpStyle.Render("a add · +/- qty · / search · f price filter · c cart · o past orders · esc back"))
	return b.String()
}

func (m *Model) viewCart() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Cart Summary"))
	b.WriteString("\n\n")

	lines := m.session.Entries()
	if len(lines) == 0 {
		b.WriteString(dimStyle.Render("Your cart is empty."))
		b.WriteString("\n")
	}
	for i, line := range lines {
		subtotal := line.Price * float64(line.Quantity)
		row := fmt.Sprintf("%-24s %s x %d = %s",
			line.Name, formatCurrency(line.Price), line.Quantity, priceStyle.Render(formatCurrency(subtotal)))
		if i == m.cartCursor {
			b.WriteString(cursorStyle.Render("> " + row))
		} else {
			b.WriteString("  " + row)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n" + totalStyle.Render("Total: "+formatCurrency(m.session.Total())) + "\n")
	b.WriteString(helpStyle.Render("enter checkout · +/- qty · x remove · o past orders · esc back"))
	return b.String()
}

func (m *Model) viewCheckout() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Place Your Order"))
	b.WriteString("\n\n")

	b.WriteString("Your Name:        " + m.nameInput.View() + "\n")
	b.WriteString("Delivery Address: " + m.addrInput.View() + "\n")

	b.WriteString("\n" + totalStyle.Render("Total: "+formatCurrency(m.session.Total())) + "\n")
	b.WriteString(helpStyle.Render("tab next field · enter confirm order · esc back"))
	return b.String()
}

func (m *Model) viewPayment() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Payment"))
	b.WriteString("\n\n")

	pending := m.session.Pending()
	if pending != nil {
		summary := fmt.Sprintf("%s — %d items — %s",
			pending.Restaurant, len(pending.Items), formatCurrency(pending.Total))
		b.WriteString(boxStyle.Render(summary))
		b.WriteString("\n\n")
	}

	var methods []string
	for i, method := range paymentMethods {
		if i == m.payMethod {
			methods = append(methods, cursorStyle.Render("[ "+method+" ]"))
		} else {
			methods = append(methods, dimStyle.Render("  "+method+"  "))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, methods...))
	b.WriteString("\n\n")

	for i := range m.payFields[m.payMethod] {
		b.WriteString(m.payFields[m.payMethod][i].View())
		b.WriteString("\n")
	}

	if m.submitting {
		b.WriteString("\n" + dimStyle.Render("Placing order..."))
	}
	b.WriteString(helpStyle.Render("←/→ method · tab fields · enter pay now · esc back to cart"))
	return b.String()
}

func (m *Model) viewHistory() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Past Orders"))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(dimStyle.Render("Loading past orders..."))
		return b.String()
	}
	if len(m.orders) == 0 {
		b.WriteString(dimStyle.Render("No past orders found."))
		b.WriteString("\n")
	}

	for i, order := range m.orders {
		ts := order.Timestamp
		if parsed := order.ParseTimestamp(); !parsed.IsZero() {
			ts = parsed.Format("Jan 02, 2006, 3:04 PM")
		}
		header := fmt.Sprintf("Order #%d — %s (%s)", order.OrderID, order.Restaurant, ts)
		if i == m.histCursor {
			b.WriteString(cursorStyle.Render("> " + header))
			b.WriteString("\n")
			b.WriteString(fmt.Sprintf("    Customer: %s\n    Address:  %s\n", order.CustomerName, order.Address))
			for _, item := range order.Items {
				b.WriteString(fmt.Sprintf("    - %s x %d @ %s each\n", item.Name, item.Quantity, formatCurrency(item.Price)))
			}
			b.WriteString("    " + totalStyle.Render("Total Paid: "+formatCurrency(order.Total)) + "\n")
		} else {
			b.WriteString("  " + header + "\n")
		}
	}

	b.WriteString(helpStyle.Render("r refresh · c cart · esc back · q quit"))
	return b.String()
}
