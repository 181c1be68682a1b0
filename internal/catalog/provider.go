package catalog

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// DefaultLatency is the simulated load time of the built-in menu.
const DefaultLatency = 500 * time.Millisecond

// Provider loads the menu. Implementations return the same ordered items on
// every successful call and report failures as *LoadError.
type Provider interface {
	Fetch(ctx context.Context) ([]Item, error)
}

// ProviderFunc adapts a plain function to Provider.
type ProviderFunc func(ctx context.Context) ([]Item, error)

func (f ProviderFunc) Fetch(ctx context.Context) ([]Item, error) { return f(ctx) }

// LoadError marks a failed catalog fetch. The UI treats it as retryable.
type LoadError struct {
	Cause error
}

func (e *LoadError) Error() string {
	if e.Cause == nil {
		return "catalog: load failed"
	}
	return "catalog: load failed: " + e.Cause.Error()
}

func (e *LoadError) Unwrap() error { return e.Cause }

// Retryable is always true; a failed load can be attempted again.
func (e *LoadError) Retryable() bool { return true }

// IsLoadError reports whether err is or wraps a *LoadError.
func IsLoadError(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}

// StaticProvider serves the built-in menu after a fixed delay.
// It only reads immutable data and may be called concurrently.
type StaticProvider struct {
	Latency time.Duration
	items   []Item
}

// NewStaticProvider returns a provider over the built-in menu.
func NewStaticProvider(latency time.Duration) *StaticProvider {
	return &StaticProvider{Latency: latency, items: builtinMenu()}
}

func (p *StaticProvider) Fetch(ctx context.Context) ([]Item, error) {
	if p.Latency > 0 {
		timer := time.NewTimer(p.Latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, &LoadError{Cause: ctx.Err()}
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return nil, &LoadError{Cause: err}
	}
	items := p.items
	if items == nil {
		items = builtinMenu()
	}
	out := make([]Item, len(items))
	copy(out, items)
	return out, nil
}

func builtinMenu() []Item {
	return []Item{
		{ID: "1", Name: "Cappuccino", Description: "Classic cappuccino", Price: decimal.NewFromInt(159), Category: CategoryHotBeverage},
		{ID: "2", Name: "Latte", Description: "Coffee latte", Price: decimal.NewFromInt(169), Category: CategoryHotBeverage},
		{ID: "3", Name: "Espresso", Description: "Strong espresso", Price: decimal.NewFromInt(129), Category: CategoryHotBeverage},
		{ID: "4", Name: "Green tea", Description: "Chinese green tea", Price: decimal.NewFromInt(119), Category: CategoryTea},
		{ID: "5", Name: "Cheesecake", Description: "New York cheesecake", Price: decimal.NewFromInt(259), Category: CategoryDessert},
	}
}
