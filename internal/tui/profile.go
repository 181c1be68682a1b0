package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/makemecoffee/internal/catalog"
)

func (a *App) handleProfileKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.editingName {
		return a.handleNameKey(m)
	}
	if ok, cmd := a.handleTabKey(m); ok {
		return a, cmd
	}

	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Photo):
		a.state.Session.UpdatePhoto(placeholderPhoto)
		a.setStatus("photo updated")
	case key.Matches(m, a.keys.EditName):
		user, ok := a.state.Session.User()
		if !ok {
			return a, nil
		}
		a.editingName = true
		a.nameInput.SetValue(user.Name)
		a.nameInput.CursorEnd()
		return a, a.nameInput.Focus()
	case key.Matches(m, a.keys.SignOut):
		a.state.SignOut()
	}
	return a, nil
}

func (a *App) handleNameKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Cancel):
		a.editingName = false
		a.nameInput.Blur()
		return a, nil
	case key.Matches(m, a.keys.Submit):
		a.editingName = false
		a.nameInput.Blur()
		name := strings.TrimSpace(a.nameInput.Value())
		if name == "" {
			a.setError(errBlankName)
			return a, nil
		}
		a.state.Session.Rename(name)
		a.setStatus("name saved")
		return a, nil
	}
	var cmd tea.Cmd
	a.nameInput, cmd = a.nameInput.Update(m)
	return a, cmd
}

func (a *App) renderProfile() string {
	user, ok := a.state.Session.User()
	if !ok {
		return mutedStyle.Render("Signed out.") + "\n"
	}

	var b strings.Builder
	if a.editingName {
		b.WriteString(a.nameInput.View() + "\n")
	} else {
		b.WriteString(nameStyle.Render(user.Name) + "\n")
	}
	b.WriteString(mutedStyle.Render(user.Email) + "\n")
	photo := "no photo"
	if user.PhotoRef != "" {
		photo = "photo: " + user.PhotoRef
	}
	b.WriteString(mutedStyle.Render(photo) + "\n\n")

	b.WriteString(titleStyle.Render("Favorites") + "\n")
	if len(user.Favorites) == 0 {
		b.WriteString(mutedStyle.Render("none yet, press f on the menu") + "\n")
	}
	for _, id := range user.Favorites {
		name := id
		if it, ok := catalog.ByID(a.items, id); ok {
			name = it.Name
		}
		b.WriteString(favoriteStyle.Render("♥ ") + name + "\n")
	}

	b.WriteString("\n" + titleStyle.Render("Orders") + "\n")
	orders := a.state.Orders()
	if len(orders) == 0 {
		b.WriteString(mutedStyle.Render("no orders yet") + "\n")
	}
	for _, o := range orders {
		count := 0
		for _, l := range o.Lines {
			count += l.Quantity
		}
		b.WriteString(fmt.Sprintf("%s  %d items  %s\n", mutedStyle.Render(o.PlacedAt.Format("2006-01-02 15:04")),
			count, priceStyle.Render(a.formatPrice(o.Total))))
	}
	return b.String()
}
