package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

var errBlankName = errors.New("name must not be blank")

func (a *App) View() string {
	if a.view == viewAuth {
		return a.renderAuth()
	}

	var b strings.Builder
	b.WriteString(a.renderHeader() + "\n\n")

	var body string
	var bindings []key.Binding
	switch a.view {
	case viewMenu:
		body = a.renderMenu()
		switch {
		case a.searching:
			bindings = a.keys.searchHelp()
		case a.loadErr != nil:
			bindings = a.keys.menuErrorHelp()
		default:
			bindings = a.keys.menuHelp()
		}
	case viewCart:
		body = a.renderCart()
		bindings = a.keys.cartHelp()
	case viewProfile:
		body = a.renderProfile()
		bindings = a.keys.profileHelp()
		if a.editingName {
			bindings = a.keys.editHelp()
		}
	}
	b.WriteString(body)
	b.WriteString("\n" + a.help.ShortHelpView(bindings))

	if a.status != "" {
		style := statusStyle
		if a.isErr {
			style = statusErrStyle
		}
		b.WriteString("\n" + style.Render(a.status))
	}
	return b.String()
}

// renderHeader draws the tab bar. The cart tab carries the number of lines.
func (a *App) renderHeader() string {
	tabs := make([]string, 0, len(tabOrder)+1)
	tabs = append(tabs, brandStyle.Render("☕ Make Me Coffee"))
	for i, v := range tabOrder {
		label := fmt.Sprintf("%d %s", i+1, tabLabel(v))
		if v == viewCart {
			if n := a.state.Cart.Len(); n > 0 {
				label += " " + badgeStyle.Render(fmt.Sprintf("(%d)", n))
			}
		}
		style := inactiveTabStyle
		if v == a.view {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(label))
	}
	return strings.Join(tabs, " ")
}

func tabLabel(v appView) string {
	switch v {
	case viewMenu:
		return "Menu"
	case viewCart:
		return "Cart"
	case viewProfile:
		return "Profile"
	}
	return string(v)
}

// formatPrice renders whole currency units followed by the configured symbol.
func (a *App) formatPrice(d decimal.Decimal) string {
	s := d.StringFixed(0)
	if !d.Equal(d.Truncate(0)) {
		s = d.StringFixed(2)
	}
	if a.cfg.UI.CurrencySymbol == "" {
		return s
	}
	return s + " " + a.cfg.UI.CurrencySymbol
}
