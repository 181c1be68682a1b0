package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/makemecoffee/internal/catalog"
)

func (a *App) handleMenuKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.searching {
		return a.handleSearchKey(m)
	}
	if ok, cmd := a.handleTabKey(m); ok {
		return a, cmd
	}

	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Retry):
		if a.loadErr != nil && !a.loading {
			return a, a.loadCatalog()
		}
	case a.loading || a.loadErr != nil:
		return a, nil
	case key.Matches(m, a.keys.Up):
		if a.menuCur > 0 {
			a.menuCur--
		}
	case key.Matches(m, a.keys.Down):
		if a.menuCur < len(a.visibleItems())-1 {
			a.menuCur++
		}
	case key.Matches(m, a.keys.PrevCat):
		a.shiftCategory(-1)
	case key.Matches(m, a.keys.NextCat):
		a.shiftCategory(1)
	case key.Matches(m, a.keys.Add):
		item, ok := a.selectedItem()
		if !ok {
			return a, nil
		}
		line := a.state.Cart.Add(item)
		a.setStatus(fmt.Sprintf("%s added to cart, ×%d", item.Name, line.Quantity))
	case key.Matches(m, a.keys.Favorite):
		item, ok := a.selectedItem()
		if !ok {
			return a, nil
		}
		if a.state.Session.ToggleFavorite(item.ID) {
			a.setStatus(item.Name + " added to favorites")
		} else {
			a.setStatus(item.Name + " removed from favorites")
		}
	case key.Matches(m, a.keys.Search):
		a.searching = true
		a.search.SetValue("")
		a.menuCur = 0
		return a, a.search.Focus()
	}
	return a, nil
}

func (a *App) handleSearchKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Cancel):
		a.searching = false
		a.search.Blur()
		a.search.SetValue("")
		a.clampMenuCursor()
		return a, nil
	case key.Matches(m, a.keys.Submit):
		a.searching = false
		a.search.Blur()
		a.log.Debug("menu search", zap.String("query", a.search.Value()), zap.Int("hits", len(a.visibleItems())))
		return a, nil
	}
	var cmd tea.Cmd
	a.search, cmd = a.search.Update(m)
	a.menuCur = 0
	return a, cmd
}

// visibleItems is the search result across all categories when a query is
// set, otherwise the items of the selected category.
func (a *App) visibleItems() []catalog.Item {
	if q := strings.TrimSpace(a.search.Value()); q != "" {
		return catalog.Search(a.items, q)
	}
	return catalog.FilterByCategory(a.items, a.category)
}

func (a *App) selectedItem() (catalog.Item, bool) {
	items := a.visibleItems()
	if a.menuCur < 0 || a.menuCur >= len(items) {
		return catalog.Item{}, false
	}
	return items[a.menuCur], true
}

func (a *App) shiftCategory(delta int) {
	cats := catalog.Categories()
	for i, c := range cats {
		if c == a.category {
			a.category = cats[(i+delta+len(cats))%len(cats)]
			break
		}
	}
	a.menuCur = 0
}

func (a *App) clampMenuCursor() {
	n := len(a.visibleItems())
	if a.menuCur >= n {
		a.menuCur = n - 1
	}
	if a.menuCur < 0 {
		a.menuCur = 0
	}
}

func (a *App) renderMenu() string {
	var b strings.Builder
	switch {
	case a.loading:
		b.WriteString(mutedStyle.Render("Loading menu...") + "\n")
		return b.String()
	case a.loadErr != nil:
		b.WriteString(statusErrStyle.Render("Could not load the menu.") + "\n")
		b.WriteString(mutedStyle.Render("Press r to try again.") + "\n")
		return b.String()
	}

	chips := make([]string, 0, len(catalog.Categories()))
	for _, c := range catalog.Categories() {
		style := chipStyle
		if c == a.category && a.search.Value() == "" {
			style = activeChipStyle
		}
		chips = append(chips, style.Render(c.Label()))
	}
	b.WriteString(strings.Join(chips, " ") + "\n")
	if a.searching || a.search.Value() != "" {
		b.WriteString(a.search.View() + "\n")
	}
	b.WriteString("\n")

	items := a.visibleItems()
	if len(items) == 0 {
		b.WriteString(mutedStyle.Render("Nothing here.") + "\n")
		return b.String()
	}
	user, _ := a.state.Session.User()
	for i, it := range items {
		cursor := "  "
		if i == a.menuCur {
			cursor = cursorStyle.Render("▶ ")
		}
		fav := "  "
		if user.IsFavorite(it.ID) {
			fav = favoriteStyle.Render("♥ ")
		}
		inCart := ""
		if line, ok := a.state.Cart.LineForItem(it.ID); ok {
			inCart = mutedStyle.Render(fmt.Sprintf("  ×%d in cart", line.Quantity))
		}
		b.WriteString(fmt.Sprintf("%s%s%s  %s%s\n", cursor, fav, nameStyle.Render(it.Name),
			priceStyle.Render(a.formatPrice(it.Price)), inCart))
		if it.Description != "" {
			b.WriteString("      " + mutedStyle.Render(it.Description) + "\n")
		}
		if it.HasImage() {
			b.WriteString("      " + mutedStyle.Render("image: "+it.ImageRef) + "\n")
		}
	}
	return b.String()
}
