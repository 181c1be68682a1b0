package state

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jask/makemecoffee/internal/catalog"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	a := New(catalog.NewStaticProvider(0), nil)
	a.now = func() time.Time { return time.Date(2024, 12, 4, 9, 30, 0, 0, time.UTC) }
	return a
}

func TestNewDefaults(t *testing.T) {
	a := New(nil, nil)
	require.NotNil(t, a.Catalog)
	require.NotNil(t, a.Cart)
	require.NotNil(t, a.Session)
	require.False(t, a.Session.Authenticated())
}

func TestPlaceOrderClearsCart(t *testing.T) {
	a := newTestApp(t)
	items, err := a.Catalog.Fetch(context.Background())
	require.NoError(t, err)

	a.Cart.Add(items[0])
	a.Cart.Add(items[0])
	a.Cart.Add(items[4])

	o, ok := a.PlaceOrder()
	require.True(t, ok)
	require.NotEmpty(t, o.ID)
	require.Len(t, o.Lines, 2)
	require.True(t, o.Total.Equal(decimal.NewFromInt(577)))
	require.True(t, a.Cart.Empty())
	require.Len(t, a.Orders(), 1)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	a := newTestApp(t)
	_, ok := a.PlaceOrder()
	require.False(t, ok)
	require.Empty(t, a.Orders())
}

func TestOrdersNewestFirst(t *testing.T) {
	a := newTestApp(t)
	items, err := a.Catalog.Fetch(context.Background())
	require.NoError(t, err)

	a.Cart.Add(items[1])
	first, _ := a.PlaceOrder()
	a.Cart.Add(items[2])
	second, _ := a.PlaceOrder()

	orders := a.Orders()
	require.Equal(t, []string{second.ID, first.ID}, []string{orders[0].ID, orders[1].ID})
}

func TestSignOutForgetsOrders(t *testing.T) {
	a := newTestApp(t)
	require.NoError(t, a.Session.Login(context.Background(), "a@b.com", "x"))
	items, _ := a.Catalog.Fetch(context.Background())
	a.Cart.Add(items[0])
	a.PlaceOrder()

	a.SignOut()
	require.False(t, a.Session.Authenticated())
	require.Empty(t, a.Orders())
}
