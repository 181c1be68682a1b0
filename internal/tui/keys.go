package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit      key.Binding
	ForceQuit key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	Menu      key.Binding
	Cart      key.Binding
	Profile   key.Binding
	Up        key.Binding
	Down      key.Binding
	PrevCat   key.Binding
	NextCat   key.Binding
	Add       key.Binding
	Favorite  key.Binding
	Search    key.Binding
	Retry     key.Binding
	Inc       key.Binding
	Dec       key.Binding
	Remove    key.Binding
	Checkout  key.Binding
	Photo     key.Binding
	EditName  key.Binding
	SignOut   key.Binding

	Submit     key.Binding
	Cancel     key.Binding
	NextField  key.Binding
	PrevField  key.Binding
	ToggleAuth key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		NextTab:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		Menu:      key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "menu")),
		Cart:      key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "cart")),
		Profile:   key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "profile")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PrevCat:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev category")),
		NextCat:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next category")),
		Add:       key.NewBinding(key.WithKeys("enter", "a"), key.WithHelp("enter", "add to cart")),
		Favorite:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "favorite")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Retry:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
		Inc:       key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "more")),
		Dec:       key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "less")),
		Remove:    key.NewBinding(key.WithKeys("d", "delete", "backspace"), key.WithHelp("d", "remove")),
		Checkout:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "place order")),
		Photo:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "set photo")),
		EditName:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit name")),
		SignOut:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "sign out")),

		Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		NextField:  key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		PrevField:  key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		ToggleAuth: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "sign in / register")),
	}
}

func (k keyMap) authHelp() []key.Binding {
	return []key.Binding{k.Submit, k.NextField, k.ToggleAuth, k.ForceQuit}
}

func (k keyMap) menuHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PrevCat, k.NextCat, k.Add, k.Favorite, k.Search, k.NextTab, k.Quit}
}

func (k keyMap) menuErrorHelp() []key.Binding {
	return []key.Binding{k.Retry, k.NextTab, k.Quit}
}

func (k keyMap) searchHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel}
}

func (k keyMap) cartHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Inc, k.Dec, k.Remove, k.Checkout, k.NextTab, k.Quit}
}

func (k keyMap) profileHelp() []key.Binding {
	return []key.Binding{k.Photo, k.EditName, k.SignOut, k.NextTab, k.Quit}
}

func (k keyMap) editHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel}
}
