package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/makemecoffee/internal/cart"
)

func (a *App) handleCartKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if ok, cmd := a.handleTabKey(m); ok {
		return a, cmd
	}

	lines := a.state.Cart.Lines()
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Up):
		if a.cartCur > 0 {
			a.cartCur--
		}
	case key.Matches(m, a.keys.Down):
		if a.cartCur < len(lines)-1 {
			a.cartCur++
		}
	case key.Matches(m, a.keys.Inc):
		if l, ok := selectedLine(lines, a.cartCur); ok {
			a.state.Cart.Increment(l.ID)
		}
	case key.Matches(m, a.keys.Dec):
		if l, ok := selectedLine(lines, a.cartCur); ok {
			a.state.Cart.Decrement(l.ID)
		}
	case key.Matches(m, a.keys.Remove):
		if l, ok := selectedLine(lines, a.cartCur); ok {
			a.state.Cart.Remove(l.ID)
			a.setStatus(l.Item.Name + " removed")
		}
	case key.Matches(m, a.keys.Checkout):
		order, ok := a.state.PlaceOrder()
		if !ok {
			a.setStatus("cart is empty")
			return a, nil
		}
		a.log.Info("order placed", zap.String("order_id", order.ID), zap.String("total", order.Total.String()))
		a.setStatus("order placed: " + a.formatPrice(order.Total))
	}
	return a, nil
}

const cartNameWidth = 20

func selectedLine(lines []cart.Line, i int) (cart.Line, bool) {
	if i < 0 || i >= len(lines) {
		return cart.Line{}, false
	}
	return lines[i], true
}

func (a *App) renderCart() string {
	lines := a.state.Cart.Lines()
	if len(lines) == 0 {
		return mutedStyle.Render("Your cart is empty. Add something from the menu.") + "\n"
	}

	var b strings.Builder
	for i, l := range lines {
		cursor := "  "
		if i == a.cartCur {
			cursor = cursorStyle.Render("▶ ")
		}
		b.WriteString(fmt.Sprintf("%s%s %s × %d  %s\n", cursor, nameStyle.Width(cartNameWidth).Render(l.Item.Name),
			mutedStyle.Render(a.formatPrice(l.Item.Price)), l.Quantity, priceStyle.Render(a.formatPrice(l.Subtotal()))))
	}

	total := a.formatPrice(a.state.Cart.Total())
	footer := strings.Join([]string{
		fmt.Sprintf("Items     %d", a.state.Cart.Count()),
		fmt.Sprintf("Subtotal  %s", total),
		fmt.Sprintf("Delivery  %s", statusStyle.Render("Free")),
		totalStyle.Render(fmt.Sprintf("Total     %s", total)),
	}, "\n")
	b.WriteString("\n" + cardStyle.Render(footer) + "\n")
	return b.String()
}
