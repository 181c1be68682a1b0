package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/makemecoffee/internal/cart"
	"github.com/jask/makemecoffee/internal/catalog"
	"github.com/jask/makemecoffee/internal/config"
	"github.com/jask/makemecoffee/internal/session"
	"github.com/jask/makemecoffee/internal/state"
)

// App is the storefront tea.Model. It renders from the stores in state and
// only mutates them through their public operations.
type App struct {
	ctx   context.Context
	state *state.App
	cfg   config.Config
	log   *zap.Logger
	keys  keyMap
	help  help.Model

	view   appView
	status string
	isErr  bool

	// auth screen
	authMode authMode
	email    textinput.Model
	password textinput.Model
	authErr  string

	// menu
	items     []catalog.Item
	loading   bool
	loadErr   error
	category  catalog.Category
	menuCur   int
	searching bool
	search    textinput.Model

	// cart
	cartCur int

	// profile
	editingName bool
	nameInput   textinput.Model

	cartRev    int
	sessionRev int
	cancels    []func()
}

type appView string

const (
	viewAuth    appView = "auth"
	viewMenu    appView = "menu"
	viewCart    appView = "cart"
	viewProfile appView = "profile"
)

var tabOrder = []appView{viewMenu, viewCart, viewProfile}

type authMode string

const (
	authSignIn   authMode = "signIn"
	authRegister authMode = "register"
)

// placeholderPhoto stands in for a picked image; there is no image upload.
const placeholderPhoto = "dummy_url"

func New(ctx context.Context, cfg config.Config, st *state.App, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	a := &App{
		ctx:       ctx,
		state:     st,
		cfg:       cfg,
		log:       log,
		keys:      defaultKeyMap(),
		help:      help.New(),
		view:      viewAuth,
		authMode:  authSignIn,
		email:     newInput("email", "you@example.com"),
		password:  newInput("password", "password"),
		search:    newInput("search", "name or description"),
		nameInput: newInput("name", "display name"),
		category:  cfg.DefaultCategory(),
	}
	a.password.EchoMode = textinput.EchoPassword
	a.password.EchoCharacter = '•'
	a.email.Focus()
	if st.Session.Authenticated() {
		a.view = viewMenu
	}

	a.cancels = append(a.cancels,
		st.Cart.Subscribe(a.onCartChanged),
		st.Session.Subscribe(a.onSessionChanged),
	)
	return a
}

func newInput(prompt, placeholder string) textinput.Model {
	in := textinput.New()
	in.Prompt = prompt + ": "
	in.Placeholder = placeholder
	in.CharLimit = 128
	return in
}

// Close detaches the App from the stores.
func (a *App) Close() {
	for _, cancel := range a.cancels {
		cancel()
	}
	a.cancels = nil
}

func (a *App) onCartChanged(snap cart.Snapshot) {
	a.cartRev++
	if a.cartCur >= len(snap.Lines) {
		a.cartCur = max(len(snap.Lines)-1, 0)
	}
	a.log.Debug("cart changed",
		zap.Int("lines", len(snap.Lines)),
		zap.String("total", snap.Total.String()),
		zap.Int("revision", a.cartRev))
}

func (a *App) onSessionChanged(snap session.Snapshot) {
	a.sessionRev++
	a.log.Info("session changed", zap.Stringer("state", snap.State), zap.String("user_id", snap.User.ID))
	if snap.State == session.SignedOut {
		a.view = viewAuth
		a.editingName = false
		a.password.SetValue("")
		a.focusAuthField(0)
		return
	}
	if a.view == viewAuth {
		a.view = viewMenu
	}
}

func (a *App) Init() tea.Cmd {
	if a.state.Session.Authenticated() {
		return a.ensureCatalog()
	}
	return textinput.Blink
}

// ensureCatalog starts a load unless items are present or a load is running.
func (a *App) ensureCatalog() tea.Cmd {
	if a.items != nil || a.loading {
		return nil
	}
	return a.loadCatalog()
}

func (a *App) loadCatalog() tea.Cmd {
	a.loading = true
	a.loadErr = nil
	provider := a.state.Catalog
	ctx := a.ctx
	return func() tea.Msg {
		items, err := provider.Fetch(ctx)
		if err != nil {
			return catalogErrMsg{err}
		}
		return catalogMsg(items)
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.help.Width = m.Width
	case tea.KeyMsg:
		if key.Matches(m, a.keys.ForceQuit) {
			return a, tea.Quit
		}
		switch a.view {
		case viewAuth:
			return a.handleAuthKey(m)
		case viewMenu:
			return a.handleMenuKey(m)
		case viewCart:
			return a.handleCartKey(m)
		case viewProfile:
			return a.handleProfileKey(m)
		}
	case catalogMsg:
		a.loading = false
		a.items = []catalog.Item(m)
		a.clampMenuCursor()
		a.log.Info("catalog loaded", zap.Int("items", len(a.items)))
	case catalogErrMsg:
		a.loading = false
		a.loadErr = m.error
		a.log.Warn("catalog load failed", zap.Error(m.error))
	}
	return a, nil
}

// handleTabKey switches tabs and reports whether msg was a tab key.
func (a *App) handleTabKey(m tea.KeyMsg) (bool, tea.Cmd) {
	target := a.view
	switch {
	case key.Matches(m, a.keys.NextTab):
		target = a.shiftTab(1)
	case key.Matches(m, a.keys.PrevTab):
		target = a.shiftTab(-1)
	case key.Matches(m, a.keys.Menu):
		target = viewMenu
	case key.Matches(m, a.keys.Cart):
		target = viewCart
	case key.Matches(m, a.keys.Profile):
		target = viewProfile
	default:
		return false, nil
	}
	a.view = target
	a.status = ""
	if target == viewMenu {
		return true, a.ensureCatalog()
	}
	return true, nil
}

func (a *App) shiftTab(delta int) appView {
	for i, v := range tabOrder {
		if v == a.view {
			return tabOrder[(i+delta+len(tabOrder))%len(tabOrder)]
		}
	}
	return viewMenu
}

func (a *App) setStatus(s string) {
	a.status = s
	a.isErr = false
}

func (a *App) setError(err error) {
	a.status = "error: " + err.Error()
	a.isErr = true
}

// messages
type catalogMsg []catalog.Item

type catalogErrMsg struct{ error }
