package cart

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jask/makemecoffee/internal/catalog"
)

var (
	cappuccino = catalog.Item{ID: "1", Name: "Cappuccino", Price: decimal.NewFromInt(159), Category: catalog.CategoryHotBeverage}
	latte      = catalog.Item{ID: "2", Name: "Latte", Price: decimal.NewFromInt(169), Category: catalog.CategoryHotBeverage}
	cheesecake = catalog.Item{ID: "5", Name: "Cheesecake", Price: decimal.RequireFromString("259.50"), Category: catalog.CategoryDessert}
)

func requireTotal(t *testing.T, s *Store, want string) {
	t.Helper()
	require.True(t, s.Total().Equal(decimal.RequireFromString(want)), "total = %s, want %s", s.Total(), want)
}

func sumLines(s *Store) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range s.Lines() {
		sum = sum.Add(l.Item.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return sum
}

func TestAddSameItemTwiceMergesLine(t *testing.T) {
	s := NewStore()
	first := s.Add(cappuccino)
	second := s.Add(cappuccino)

	require.Equal(t, 1, s.Len())
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, 2, s.Lines()[0].Quantity)
	requireTotal(t, s, "318")
}

func TestCartScenario(t *testing.T) {
	s := NewStore()
	line := s.Add(cappuccino)
	s.Add(cappuccino)
	s.Add(cappuccino)

	require.Equal(t, 1, s.Len())
	require.Equal(t, 3, s.Lines()[0].Quantity)
	requireTotal(t, s, "477")

	s.SetQuantity(line.ID, 1)
	requireTotal(t, s, "159")

	s.Remove(line.ID)
	require.True(t, s.Empty())
	requireTotal(t, s, "0")
}

func TestLinesKeepInsertionOrder(t *testing.T) {
	s := NewStore()
	s.Add(latte)
	s.Add(cheesecake)
	s.Add(latte)

	lines := s.Lines()
	require.Len(t, lines, 2)
	require.Equal(t, "2", lines[0].Item.ID)
	require.Equal(t, "5", lines[1].Item.ID)
	require.Equal(t, 3, s.Count())
	requireTotal(t, s, "597.50")
}

func TestSetQuantityZeroRemovesContribution(t *testing.T) {
	s := NewStore()
	s.Add(latte)
	c := s.Add(cheesecake)
	s.SetQuantity(c.ID, 4)
	before := s.Total()
	contribution, _ := s.Line(c.ID)

	s.SetQuantity(c.ID, 0)

	_, ok := s.Line(c.ID)
	require.False(t, ok)
	require.True(t, before.Sub(contribution.Subtotal()).Equal(s.Total()))
	requireTotal(t, s, "169")
}

func TestSetQuantityNegativeRemoves(t *testing.T) {
	s := NewStore()
	l := s.Add(latte)
	s.SetQuantity(l.ID, -3)
	require.True(t, s.Empty())
}

func TestRemoveUnknownLineIsNoop(t *testing.T) {
	s := NewStore()
	s.Add(latte)
	s.Add(cappuccino)
	before := s.Lines()
	total := s.Total()

	s.Remove("does-not-exist")
	s.SetQuantity("does-not-exist", 7)

	require.Equal(t, before, s.Lines())
	require.True(t, total.Equal(s.Total()))
}

func TestIncrementDecrement(t *testing.T) {
	s := NewStore()
	l := s.Add(cappuccino)

	s.Increment(l.ID)
	got, _ := s.Line(l.ID)
	require.Equal(t, 2, got.Quantity)

	s.Decrement(l.ID)
	s.Decrement(l.ID)
	require.True(t, s.Empty())

	s.Increment("missing")
	s.Decrement("missing")
	require.True(t, s.Empty())
}

func TestClear(t *testing.T) {
	s := NewStore()
	s.Add(latte)
	s.Add(cheesecake)
	s.Clear()
	require.True(t, s.Empty())
	requireTotal(t, s, "0")
}

func TestTotalMatchesLinesForRandomSequences(t *testing.T) {
	items := []catalog.Item{cappuccino, latte, cheesecake}
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		s := NewStore()
		for step := 0; step < 40; step++ {
			switch op := rng.Intn(4); {
			case op < 2 || s.Empty():
				s.Add(items[rng.Intn(len(items))])
			case op == 2:
				lines := s.Lines()
				s.SetQuantity(lines[rng.Intn(len(lines))].ID, rng.Intn(5)-1)
			default:
				lines := s.Lines()
				s.Remove(lines[rng.Intn(len(lines))].ID)
			}
			require.True(t, sumLines(s).Equal(s.Total()), "round %d step %d", round, step)
		}
	}
}

func TestAddOnlySequenceTotal(t *testing.T) {
	s := NewStore()
	counts := map[string]int{}
	seq := []catalog.Item{latte, cappuccino, latte, cheesecake, latte, cappuccino}
	for _, it := range seq {
		s.Add(it)
		counts[it.ID]++
	}
	require.Equal(t, len(counts), s.Len())
	for _, l := range s.Lines() {
		require.Equal(t, counts[l.Item.ID], l.Quantity)
	}
	// 3*169 + 2*159 + 259.50
	requireTotal(t, s, "1084.50")
}

func TestSubscribersSeeUpdatedState(t *testing.T) {
	s := NewStore()
	var seen []Snapshot
	cancel := s.Subscribe(func(snap Snapshot) {
		// state is already updated when observers run
		require.True(t, snap.Total.Equal(s.Total()))
		seen = append(seen, snap)
	})

	l := s.Add(cappuccino)
	s.SetQuantity(l.ID, 2)
	s.Remove("missing")
	s.Remove(l.ID)

	require.Len(t, seen, 4)
	require.Equal(t, 1, seen[0].Lines[0].Quantity)
	require.True(t, seen[1].Total.Equal(decimal.NewFromInt(318)))
	require.Empty(t, seen[3].Lines)

	cancel()
	s.Add(latte)
	require.Len(t, seen, 4)
}

func TestSnapshotIsCopy(t *testing.T) {
	s := NewStore()
	var snap Snapshot
	s.Subscribe(func(v Snapshot) { snap = v })
	s.Add(latte)

	snap.Lines[0].Quantity = 99
	got, _ := s.LineForItem(latte.ID)
	require.Equal(t, 1, got.Quantity)
}

func TestZeroValueStore(t *testing.T) {
	var s Store
	l := s.Add(latte)
	require.NotEmpty(t, l.ID)
	requireTotal(t, &s, "169")
}
