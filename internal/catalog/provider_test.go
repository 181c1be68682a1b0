package catalog

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestStaticProviderFetch(t *testing.T) {
	items, err := NewStaticProvider(0).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 5)

	var names []string
	for _, it := range items {
		names = append(names, it.Name)
		require.False(t, it.Price.IsNegative())
		require.True(t, it.Category.Valid())
	}
	require.Equal(t, []string{"Cappuccino", "Latte", "Espresso", "Green tea", "Cheesecake"}, names)
	require.True(t, items[0].Price.Equal(decimal.NewFromInt(159)))
}

func TestStaticProviderConcurrentFetchIsIdempotent(t *testing.T) {
	p := NewStaticProvider(10 * time.Millisecond)
	var (
		wg      sync.WaitGroup
		results [2][]Item
		errs    [2]error
	)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = p.Fetch(context.Background())
		}(i)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	require.Equal(t, results[0], results[1])
}

func TestStaticProviderReturnsCopy(t *testing.T) {
	p := NewStaticProvider(0)
	first, err := p.Fetch(context.Background())
	require.NoError(t, err)
	first[0].Name = "tampered"

	second, err := p.Fetch(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Cappuccino", second[0].Name)
}

func TestStaticProviderHonorsCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStaticProvider(time.Hour).Fetch(ctx)
	require.True(t, IsLoadError(err))
	require.ErrorIs(t, err, context.Canceled)

	_, err = NewStaticProvider(0).Fetch(ctx)
	require.True(t, IsLoadError(err))
}

func TestZeroValueStaticProvider(t *testing.T) {
	var p StaticProvider
	items, err := p.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 5)
}

func TestLoadError(t *testing.T) {
	cause := errors.New("disk gone")
	err := error(&LoadError{Cause: cause})

	require.True(t, IsLoadError(errors.Wrap(err, "menu")))
	require.ErrorIs(t, err, cause)
	require.Equal(t, "catalog: load failed: disk gone", err.Error())
	require.Equal(t, "catalog: load failed", (&LoadError{}).Error())
	require.True(t, (&LoadError{}).Retryable())
	require.False(t, IsLoadError(cause))
}

func TestProviderFunc(t *testing.T) {
	var p Provider = ProviderFunc(func(context.Context) ([]Item, error) {
		return nil, &LoadError{}
	})
	_, err := p.Fetch(context.Background())
	require.True(t, IsLoadError(err))
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory(" Tea ")
	require.NoError(t, err)
	require.Equal(t, CategoryTea, c)

	_, err = ParseCategory("soup")
	require.ErrorIs(t, err, ErrUnknownCategory)
}

func TestCategoryLabels(t *testing.T) {
	var labels []string
	for _, c := range Categories() {
		labels = append(labels, c.Label())
	}
	require.Equal(t, []string{"Coffee", "Tea", "Desserts", "Snacks"}, labels)
	require.Equal(t, "other", Category("other").Label())
}
