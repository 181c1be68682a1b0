// Package state wires the stores the presentation layer renders from.
package state

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jask/makemecoffee/internal/cart"
	"github.com/jask/makemecoffee/internal/catalog"
	"github.com/jask/makemecoffee/internal/session"
)

// App is the application-scoped state. It is constructed once in main and
// passed by pointer to the UI; nothing else creates stores.
type App struct {
	Catalog catalog.Provider
	Cart    *cart.Store
	Session *session.Store

	orders []Order
	now    func() time.Time
}

// Order records a placed cart. No payment is taken.
type Order struct {
	ID       string
	Lines    []cart.Line
	Total    decimal.Decimal
	PlacedAt time.Time
}

// New builds the state. A nil provider serves the built-in menu; a nil auth
// uses the mock authenticator.
func New(provider catalog.Provider, auth session.Authenticator) *App {
	if provider == nil {
		provider = catalog.NewStaticProvider(catalog.DefaultLatency)
	}
	return &App{
		Catalog: provider,
		Cart:    cart.NewStore(),
		Session: session.NewStore(auth),
		now:     time.Now,
	}
}

// PlaceOrder snapshots the cart into the order history and clears it.
// It reports false when the cart is empty.
func (a *App) PlaceOrder() (Order, bool) {
	if a.Cart.Empty() {
		return Order{}, false
	}
	snap := a.Cart.Snapshot()
	o := Order{ID: uuid.NewString(), Lines: snap.Lines, Total: snap.Total, PlacedAt: a.now()}
	a.orders = append(a.orders, o)
	a.Cart.Clear()
	return o, true
}

// Orders returns placed orders, newest first.
func (a *App) Orders() []Order {
	out := make([]Order, len(a.orders))
	for i, o := range a.orders {
		out[len(a.orders)-1-i] = o
	}
	return out
}

// SignOut ends the session and forgets the order history of that user.
func (a *App) SignOut() {
	a.orders = nil
	a.Session.Logout()
}
